package responses

import "doctors-portal-service/internal/app/models"

// CreateBooking is the whole response body, so clients can branch on success and read either id or existing.
type CreateBooking struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	ID       string          `json:"id,omitempty"`
	Existing *models.Booking `json:"existing,omitempty"`
}
