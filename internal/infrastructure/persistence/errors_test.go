//go:build unit
// +build unit

package persistence

import (
	"errors"
	"testing"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("disk I/O error")

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"translated foreign key", gorm.ErrForeignKeyViolated, domain.ErrInvalidReference},
		{"sqlite foreign key text", errors.New("FOREIGN KEY constraint failed"), domain.ErrInvalidReference},
		{"untranslated", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translateError(tt.err))
		})
	}
}
