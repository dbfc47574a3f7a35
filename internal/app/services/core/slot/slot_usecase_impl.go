package slot

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	ServiceRepository contracts.ServiceRepository
	BookingRepository contracts.BookingRepository
	Log               *zap.Logger
}

func NewAvailabilityUsecase(
	serviceRepository contracts.ServiceRepository,
	bookingRepository contracts.BookingRepository,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		ServiceRepository: serviceRepository,
		BookingRepository: bookingRepository,
		Log:               logger,
	}
}

// GetAvailableSlots reads the catalog and the bookings of date once each.
// Dates are compared as exact strings.
func (uc *availabilityUsecase) GetAvailableSlots(ctx context.Context, date string) ([]models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetAvailableSlots error fetching services",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetAvailableSlots error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := AvailableSlots(services, bookings)

	uc.Log.Info("availabilityUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingServicesCountKey, len(result)),
		zap.Int(constvars.LoggingBookingsCountKey, len(bookings)),
	)
	return result, nil
}
