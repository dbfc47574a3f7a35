package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	DeleteDoctorByEmail(ctx context.Context, email string) (*responses.DeleteResult, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) (deletedCount int64, err error)
}
