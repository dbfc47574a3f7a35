package catalog

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

func NewServiceUsecase(serviceRepository contracts.ServiceRepository, logger *zap.Logger) contracts.ServiceUsecase {
	return &serviceUsecase{
		ServiceRepository: serviceRepository,
		Log:               logger,
	}
}

func (uc *serviceUsecase) ListServices(ctx context.Context) ([]models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("serviceUsecase.ListServices error fetching services",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("serviceUsecase.ListServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingServicesCountKey, len(services)),
	)
	return services, nil
}
