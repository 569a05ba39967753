// Package strutil converts query string values.
package strutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertToInt parses s as a base-10 integer, ignoring surrounding spaces.
func ConvertToInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}
