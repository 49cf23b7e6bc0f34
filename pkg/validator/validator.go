package validator

import (
	"time"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func - registers the custom `clock` rule used by schedule
// request DTOs
func New() Validator {
	v := validators.New()
	_ = v.RegisterValidation("clock", validateClock)
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {
	return v.validator.Struct(inf)
}

// validateClock accepts "HH:MM" and "HH:MM:SS" time-of-day values
func validateClock(fl validators.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse("15:04:05", value); err == nil {
		return true
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
