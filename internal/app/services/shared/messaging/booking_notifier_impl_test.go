package messaging

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(ctx context.Context, queueName string, message interface{}) error {
	return m.Called(ctx, queueName, message).Error(0)
}

func TestBookingNotifier_NotifyBookingCreated(t *testing.T) {
	ctx := context.Background()
	booking := &models.Booking{
		ID:          "id-1",
		Treatment:   "Dental",
		Date:        "2023-01-05",
		Patient:     "a@x.com",
		PatientName: "Ada",
		Slot:        "9:00 AM",
	}

	publisher := new(MockMessagePublisher)
	publisher.On("Publish", ctx, "booking_notifications", mock.MatchedBy(func(message models.BookingCreatedMessage) bool {
		return message.Type == "booking.created" &&
			message.BookingID == "id-1" &&
			message.Treatment == "Dental" &&
			message.Date == "2023-01-05" &&
			message.Patient == "a@x.com" &&
			message.Slot == "9:00 AM" &&
			!message.OccurredAt.IsZero()
	})).Return(nil).Once()

	err := NewBookingNotifier(publisher, "booking_notifications").NotifyBookingCreated(ctx, booking)

	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestBookingNotifier_PropagatesPublishError(t *testing.T) {
	ctx := context.Background()
	publishErr := errors.New("channel closed")
	publisher := new(MockMessagePublisher)
	publisher.On("Publish", ctx, "q", mock.Anything).Return(publishErr)

	err := NewBookingNotifier(publisher, "q").NotifyBookingCreated(ctx, &models.Booking{ID: "id-1"})

	assert.Equal(t, publishErr, err)
}
