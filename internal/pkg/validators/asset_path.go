package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// AssetPathValidation accepts paths relative to the game directory of a
// Ren'Py project: forward slashes only, not absolute, no ".." segments.
func AssetPathValidation(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}
	if strings.HasPrefix(path, "/") || strings.Contains(path, `\`) || strings.Contains(path, ":") {
		return false
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return false
		}
	}
	return true
}
