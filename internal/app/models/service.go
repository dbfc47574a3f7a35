package models

// Service is a bookable treatment with its daily slot inventory.
// Slots are labels like "8:00 AM - 8:30 AM"; duplicates are allowed and kept.
type Service struct {
	ID          string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Slots       []string `json:"slots" bson:"slots"`
	Price       float64  `json:"price,omitempty" bson:"price,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
}
