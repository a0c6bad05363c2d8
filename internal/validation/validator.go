package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"fincompass/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with domain rules and error
// formatting. It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with the domain rules
// registered.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("score_variant", validateScoreVariant)
	_ = v.RegisterValidation("reference_date", validateReferenceDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FormatErrors flattens validator errors into a field→message map.
func FormatErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fieldError := range validationErrors {
		fieldErrors[fieldError.Field()] = messageForTag(fieldError)
	}

	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "transaction_type":
		return "must be income or expense"
	case "score_variant":
		return "must be advisor or metrics"
	case "reference_date":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidTransactionType(value)
}

func validateScoreVariant(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.IsValidScoreVariant(value)
}

func validateReferenceDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
