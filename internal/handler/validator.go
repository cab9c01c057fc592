package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rsnyderaustin/poe-craftsim/internal/crafting"
	"github.com/rsnyderaustin/poe-craftsim/internal/domain"
)

// Validator checks decoded request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce    sync.Once
	requestValidator *Validator
)

// GetValidator returns the shared request validator. Field names in its
// errors are the JSON names clients send.
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("action", validateAction)
		requestValidator = &Validator{validate: v}
	})
	return requestValidator
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failing field to a message for the client
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[e.Field()] = fieldMessage(e)
	}
	return errs
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "action":
		return fmt.Sprintf("Unknown action %q", e.Value())
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at least %s entries", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at most %s entries", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	default:
		return "Invalid value"
	}
}

// jsonFieldName reports a struct field under its JSON name
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// validateAction accepts ids present in the action registry
func validateAction(fl validator.FieldLevel) bool {
	return crafting.IsKnownAction(domain.ActionID(fl.Field().String()))
}
