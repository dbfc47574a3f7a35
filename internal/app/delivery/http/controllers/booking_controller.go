package controllers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

// CreateBooking answers 201 with the new id, or 200 with success false and the
// stored booking when the patient already holds that treatment on that date.
func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.IdempotencyKey = strings.TrimSpace(r.Header.Get(constvars.HeaderIdempotencyKey))

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	if !result.Success {
		utils.BuildJSONResponse(w, constvars.StatusOK, responses.CreateBooking{
			Success:  false,
			Message:  constvars.BookingAlreadyExistsMessage,
			Existing: result.Existing,
		})
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, responses.CreateBooking{
		Success: true,
		Message: constvars.CreateBookingSuccessMessage,
		ID:      result.ID,
	})
}

func (ctrl *BookingController) ListBookingsByPatient(w http.ResponseWriter, r *http.Request) {
	identity, ok := middlewares.GetIdentity(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrIdentityMissing(nil))
		return
	}
	patient := r.URL.Query().Get(constvars.URLQueryParamPatient)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.BookingUsecase.ListBookingsByPatient(ctx, identity, patient)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
