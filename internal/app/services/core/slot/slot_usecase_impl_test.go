package slot

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBookingRepository) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	args := m.Called(ctx, treatment, date, patient)
	booking, _ := args.Get(0).(*models.Booking)
	return booking, args.Error(1)
}

func (m *MockBookingRepository) FindByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	args := m.Called(ctx, patientEmail)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func TestAvailabilityUsecase_GetAvailableSlots(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRepository)
	bookingRepo := new(MockBookingRepository)
	serviceRepo.On("FindAll", ctx).Return(testCatalog(), nil).Once()
	bookingRepo.On("FindByDate", ctx, "2023-01-05").Return([]models.Booking{
		{Treatment: "Dental", Date: "2023-01-05", Slot: "9:00 AM"},
	}, nil).Once()

	result, err := NewAvailabilityUsecase(serviceRepo, bookingRepo, zap.NewNop()).GetAvailableSlots(ctx, "2023-01-05")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, []string{"8:00 AM", "10:00 AM"}, result[0].Slots)
	serviceRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
}

func TestAvailabilityUsecase_GetAvailableSlotsPropagatesStoreFailure(t *testing.T) {
	ctx := context.Background()
	dbErr := exceptions.ErrMongoDBFindDocument(errors.New("timeout"))

	t.Run("catalog", func(t *testing.T) {
		serviceRepo := new(MockServiceRepository)
		bookingRepo := new(MockBookingRepository)
		serviceRepo.On("FindAll", ctx).Return(nil, dbErr)

		_, err := NewAvailabilityUsecase(serviceRepo, bookingRepo, zap.NewNop()).GetAvailableSlots(ctx, "2023-01-05")

		assert.Equal(t, dbErr, err)
		bookingRepo.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
	})

	t.Run("bookings", func(t *testing.T) {
		serviceRepo := new(MockServiceRepository)
		bookingRepo := new(MockBookingRepository)
		serviceRepo.On("FindAll", ctx).Return(testCatalog(), nil)
		bookingRepo.On("FindByDate", ctx, "2023-01-05").Return(nil, dbErr)

		result, err := NewAvailabilityUsecase(serviceRepo, bookingRepo, zap.NewNop()).GetAvailableSlots(ctx, "2023-01-05")

		assert.Nil(t, result)
		assert.Equal(t, dbErr, err)
	})
}
