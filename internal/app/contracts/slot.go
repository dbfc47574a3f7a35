package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, date string) ([]models.Service, error)
}
