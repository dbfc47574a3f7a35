package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.BookingResult, error)
	ListBookingsByPatient(ctx context.Context, identity *models.Identity, patientEmail string) ([]models.Booking, error)
}

type BookingRepository interface {
	EnsureIndexes(ctx context.Context) error
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	FindByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// CreateBooking returns an error matching exceptions.ErrDuplicateKey when the unique index rejects the insert.
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
}

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *models.Booking) error
}
