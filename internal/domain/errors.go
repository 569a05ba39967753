// Package domain holds the entities of the editor (projects, characters,
// dialogue lines) in sub-packages, plus the errors shared across them.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when a record with the requested ID does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when an entity violates its field rules.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidReference is returned when a foreign key points at a missing record.
	ErrInvalidReference = errors.New("invalid reference")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("assetPath", validators.AssetPathValidation); err != nil {
		panic(fmt.Sprintf("failed to register assetPath validation: %v", err))
	}
	return v
}

// ValidateStruct runs the validator tags of s and reports every failed field
// wrapped in ErrValidation.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: [%s]", ErrValidation, strings.Join(messages, " "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
