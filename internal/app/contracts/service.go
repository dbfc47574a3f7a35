package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

type ServiceUsecase interface {
	ListServices(ctx context.Context) ([]models.Service, error)
}

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
}
