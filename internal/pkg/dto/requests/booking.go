package requests

type CreateBooking struct {
	Treatment   string  `json:"treatment" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Patient     string  `json:"patient" validate:"required,email"`
	Slot        string  `json:"slot" validate:"omitempty,slot_label"`
	PatientName string  `json:"patientName" validate:"omitempty,max=120"`
	Phone       string  `json:"phone" validate:"omitempty,max=32"`
	Price       float64 `json:"price" validate:"omitempty,min=0"`
	// IdempotencyKey is read from the header, never from the body
	IdempotencyKey string `json:"-"`
}
