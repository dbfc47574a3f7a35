package messaging

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"time"
)

type bookingNotifier struct {
	Publisher contracts.MessagePublisher
	Queue     string
}

func NewBookingNotifier(publisher contracts.MessagePublisher, queue string) contracts.BookingNotifier {
	return &bookingNotifier{
		Publisher: publisher,
		Queue:     queue,
	}
}

func (n *bookingNotifier) NotifyBookingCreated(ctx context.Context, booking *models.Booking) error {
	message := models.BookingCreatedMessage{
		Type:        constvars.BookingCreatedMessageType,
		BookingID:   booking.ID,
		Treatment:   booking.Treatment,
		Date:        booking.Date,
		Slot:        booking.Slot,
		Patient:     booking.Patient,
		PatientName: booking.PatientName,
		OccurredAt:  time.Now().UTC(),
	}
	return n.Publisher.Publish(ctx, n.Queue, message)
}
