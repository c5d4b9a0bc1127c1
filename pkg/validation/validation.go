package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"

	"github.com/go-playground/validator/v10"
)

var (
	halfHourRegex = regexp.MustCompile(`^([01]\d|2[0-3]):(00|30)$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// New returns a validator with the restaurant's custom tags registered.
func New(log *logger.Logger) *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("half_hour", validateHalfHour); err != nil {
		log.Fatal("Failed to register 'half_hour' validator",
			"error", err,
		)
	}

	return v
}

// validateHalfHour accepts "HH:MM" starting on a full or half hour.
func validateHalfHour(fl validator.FieldLevel) bool {
	return halfHourRegex.MatchString(fl.Field().String())
}

// Struct validates s and translates field failures into ValidationErrors.
func Struct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return Translate(validationErrs)
		}
		return err
	}
	return nil
}

func Translate(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "e164":
			message = fmt.Sprintf("%s must be in E.164 format (e.g., +48601234567)", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "uuid4":
			message = fmt.Sprintf("%s must be a valid UUID", err.Field())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case "half_hour":
			message = fmt.Sprintf("%s must be a full or half hour (HH:00 or HH:30)", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

// ToAppError maps ValidationErrors to a VALIDATION_ERROR with one detail per
// field. Other errors are treated as internal.
func ToAppError(err error, message string) *apperrors.AppError {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string]any, len(validationErrs))
		for _, e := range validationErrs {
			details[e.Field] = e.Message
		}
		return apperrors.Validation(message, details)
	}
	return apperrors.Internal(message, err)
}
