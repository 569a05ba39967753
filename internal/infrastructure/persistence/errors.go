package persistence

import (
	"errors"
	"strings"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"

	"gorm.io/gorm"
)

// translateError maps driver errors onto the domain sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed"),
		strings.Contains(err.Error(), "violates foreign key constraint"):
		return domain.ErrInvalidReference
	}
	return err
}
