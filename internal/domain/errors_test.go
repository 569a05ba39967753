//go:build unit
// +build unit

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required"`
	Color string `validate:"hexcolor"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sample{Name: "a", Color: "#abcdef"}))

	err := ValidateStruct(&sample{Color: "blue"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
	assert.Contains(t, err.Error(), "Field: Color, Tag: hexcolor")
}
