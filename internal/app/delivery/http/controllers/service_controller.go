package controllers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var errMissingDate = errors.New("date is empty")

type ServiceController struct {
	Log                 *zap.Logger
	ServiceUsecase      contracts.ServiceUsecase
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

func NewServiceController(
	logger *zap.Logger,
	serviceUsecase contracts.ServiceUsecase,
	availabilityUsecase contracts.AvailabilityUsecase,
	internalConfig *config.InternalConfig,
) *ServiceController {
	return &ServiceController{
		Log:                 logger,
		ServiceUsecase:      serviceUsecase,
		AvailabilityUsecase: availabilityUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *ServiceController) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.ServiceUsecase.ListServices(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *ServiceController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	if strings.TrimSpace(date) == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errMissingDate, constvars.URLQueryParamDate))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetAvailableSlots(ctx, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
