package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const tagLogLevel = "log_level"

// New creates a new validator instance with the project's custom tags registered:
//   - log_level: the string parses as a zerolog level
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(tagLogLevel, func(fl validator.FieldLevel) bool {
		_, err := zerolog.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}
