package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Lockbox_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// Custom validation tags
const (
	TagAmount   = "amount"
	TagDuration = "duration"
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation(TagAmount, validateAmount)
	_ = v.RegisterValidation(TagDuration, validateDuration)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the lowercased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagAmount:
			errs[field] = "Must be a whole number of token units"
		case TagDuration:
			errs[field] = `Must be a duration such as "10s" or "24h"`
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateAmount accepts unsigned decimal integers that fit in 256 bits.
// Zero passes here; the ledger rejects it with its own error.
func validateAmount(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || len(s) > domain.MaxAmountDigits {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validateDuration accepts anything time.ParseDuration does. Sign is checked by the ledger.
func validateDuration(fl validator.FieldLevel) bool {
	_, err := time.ParseDuration(fl.Field().String())
	return err == nil
}
