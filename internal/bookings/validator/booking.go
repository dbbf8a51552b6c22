package validator

import (
	"errors"
	"fmt"
	"strings"

	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"

	"github.com/go-playground/validator/v10"
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

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// ValidateCreate checks a staging request for a new booking. Missing court,
// date or time makes the booking incomplete; an open match may additionally
// carry a target skill level.
func (v *BookingValidator) ValidateCreate(req *model.CreateBookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if req.MatchType == model.MatchTypeSpecific && req.TargetSkillLevel != "" {
		return ValidationErrors{
			ValidationError{
				Field:   "TargetSkillLevel",
				Message: "target_skill_level only applies to open matches",
			},
		}
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must match the %s format", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

// MissingRequiredFields reports whether the validation failure involves an
// absent court, date or time, which the service surfaces as an incomplete
// booking rather than a generic validation error.
func MissingRequiredFields(err error) bool {
	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		return false
	}
	for _, ve := range validationErrs {
		switch ve.Field {
		case "CourtID", "Date", "Time":
			if strings.HasSuffix(ve.Message, "is required") {
				return true
			}
		}
	}
	return false
}
