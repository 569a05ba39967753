package renpy

import "strings"

var (
	quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`)

	// Ren'Py interpolates [var] and applies {text tags} in say text and
	// character names.
	textReplacer = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\r\n", `\n`,
		"\n", `\n`,
		"[", "[[",
		"{", "{{",
	)
)

// quote escapes s for use inside a double-quoted Python string.
func quote(s string) string {
	return quoteReplacer.Replace(s)
}

// escapeText escapes s for use as displayed text: say text and character names.
func escapeText(s string) string {
	return textReplacer.Replace(s)
}
