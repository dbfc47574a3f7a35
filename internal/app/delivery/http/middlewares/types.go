package middlewares

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	TokenManager   contracts.TokenManager
	AccessPolicy   contracts.AccessPolicy
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	tokenManager contracts.TokenManager,
	accessPolicy contracts.AccessPolicy,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		TokenManager:   tokenManager,
		AccessPolicy:   accessPolicy,
		InternalConfig: internalConfig,
	}
}
