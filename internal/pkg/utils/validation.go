package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_label", validateSlotLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateEmail checks a single value, used for path and query params.
func ValidateEmail(email string) error {
	return validate.Var(email, "required,email")
}

// slot labels are free text like "9:00 AM" but must not be blank
func validateSlotLabel(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
