package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	TokenManager   contracts.TokenManager
	Log            *zap.Logger
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		TokenManager:   tokenManager,
		Log:            logger,
	}
}

// UpsertUser stores the account and issues a fresh token for it.
func (uc *userUsecase) UpsertUser(ctx context.Context, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	result, err := uc.UserRepository.UpsertByEmail(ctx, &models.User{
		Email:   request.Email,
		Name:    request.Name,
		Profile: request.Profile,
	})
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error upserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeDatabase),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := uc.TokenManager.Issue(request.Email)
	if err != nil {
		uc.Log.Error("userUsecase.UpsertUser error issuing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypeAuth),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpsertUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMatchedCountKey, result.MatchedCount),
		zap.Bool(constvars.LoggingUpsertedKey, result.UpsertedCount > 0),
	)
	return &responses.UpsertUser{
		Result: *result,
		Token:  token,
	}, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.ListUsers error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.ListUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(users)),
	)
	return users, nil
}

// MakeAdmin expects the caller to have passed the admin guard already.
// An unknown email matches nothing and is reported through the counters.
func (uc *userUsecase) MakeAdmin(ctx context.Context, email string) (*responses.UpdateResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.MakeAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	matched, modified, err := uc.UserRepository.SetRole(ctx, email, constvars.RoleAdmin)
	if err != nil {
		uc.Log.Error("userUsecase.MakeAdmin error updating role",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.MakeAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMatchedCountKey, matched),
		zap.Int64(constvars.LoggingModifiedCountKey, modified),
	)
	return &responses.UpdateResult{
		MatchedCount:  matched,
		ModifiedCount: modified,
	}, nil
}

func (uc *userUsecase) CheckAdmin(ctx context.Context, email string) (*responses.AdminStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("userUsecase.CheckAdmin error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.AdminStatus{Admin: user.IsAdmin()}, nil
}
