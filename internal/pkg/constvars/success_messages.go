package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	HealthMessage   = "Doctor's portal server running"

	// Booking
	CreateBookingSuccessMessage = "booking created successfully"
	BookingAlreadyExistsMessage = "booking already exists for this treatment and date"
)
