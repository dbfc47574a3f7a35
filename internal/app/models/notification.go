package models

import "time"

// BookingCreatedMessage is published after a booking is stored.
type BookingCreatedMessage struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"bookingId"`
	Treatment   string    `json:"treatment"`
	Date        string    `json:"date"`
	Slot        string    `json:"slot,omitempty"`
	Patient     string    `json:"patient"`
	PatientName string    `json:"patientName,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}
