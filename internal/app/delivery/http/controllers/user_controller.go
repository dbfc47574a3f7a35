package controllers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

// UpsertUser accepts an empty body; the email always comes from the path.
func (ctrl *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertUser)
	err := utils.DecodeJSONBody(r, request)
	if err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Email = chi.URLParam(r, constvars.URLParamEmail)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.UpsertUser(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.ListUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, constvars.URLParamEmail)
	err := utils.ValidateEmail(email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamEmail))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.MakeAdmin(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, constvars.URLParamEmail)
	err := utils.ValidateEmail(email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamEmail))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.UserUsecase.CheckAdmin(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, mapUsecaseError(err))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
