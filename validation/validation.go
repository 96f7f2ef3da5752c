// Package validation checks user input with go-playground/validator and
// renders every failure as a human-readable message.
package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator validates an input object. It reports whether the input is valid
// and, when it is not, one message per failing field.
type Validator interface {
	Validate(v any) (bool, []string)
}

var timeNow = time.Now

// earliestBirthdate bounds birthdates from below
var earliestBirthdate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// fieldLabels maps struct field names to labels used in messages
var fieldLabels = map[string]string{
	"DateOfBirth": "Date of birth",
}

type structValidator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom tags used by the forms registered
func New() Validator {
	v := validator.New()
	_ = v.RegisterValidation("birthdate", validBirthdate)
	return &structValidator{validate: v}
}

// Validate validates a struct and returns false with messages if invalid
func (s *structValidator) Validate(v any) (bool, []string) {
	err := s.validate.Struct(v)
	if err == nil {
		return true, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false, []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, message(fe))
	}
	return false, messages
}

// validBirthdate accepts dates from 1900 up to today
func validBirthdate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(earliestBirthdate) && !t.After(timeNow())
}

func label(fe validator.FieldError) string {
	if l, ok := fieldLabels[fe.StructField()]; ok {
		return l
	}
	return fe.StructField()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label(fe))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label(fe), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label(fe))
	case "birthdate":
		return fmt.Sprintf("%s must be between 01/01/1900 and today", label(fe))
	default:
		return fmt.Sprintf("%s is invalid", label(fe))
	}
}
