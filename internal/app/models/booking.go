package models

import "time"

// Booking is never mutated after creation. (Treatment, Date, Patient) is unique.
type Booking struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Treatment   string    `json:"treatment" bson:"treatment"`
	Date        string    `json:"date" bson:"date"`
	Patient     string    `json:"patient" bson:"patient"`
	Slot        string    `json:"slot,omitempty" bson:"slot,omitempty"`
	PatientName string    `json:"patientName,omitempty" bson:"patientName,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Price       float64   `json:"price,omitempty" bson:"price,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingResult is the outcome of a booking attempt.
// Exactly one of ID or Existing is set.
type BookingResult struct {
	Success  bool     `json:"success"`
	ID       string   `json:"id,omitempty"`
	Existing *Booking `json:"existing,omitempty"`
}

// IdempotencyRecord pairs a stored result with the request that produced it.
type IdempotencyRecord struct {
	Fingerprint string         `json:"fingerprint"`
	Result      *BookingResult `json:"result"`
}
