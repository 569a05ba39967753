package renpy

import (
	"strconv"
	"strings"
)

// Names a generated tag or attribute must not take: Python keywords,
// Ren'Py statement and clause keywords, and names Ren'Py binds in the store.
var reserved = map[string]bool{}

func init() {
	for _, words := range [][]string{
		{
			"and", "as", "assert", "async", "await", "break", "class", "continue",
			"def", "del", "elif", "else", "except", "exec", "finally", "for", "from",
			"global", "if", "import", "in", "is", "lambda", "nonlocal", "not", "or",
			"pass", "print", "raise", "return", "try", "while", "with", "yield",
		},
		{
			"at", "behind", "call", "camera", "default", "define", "expression",
			"hide", "image", "init", "jump", "label", "layeredimage", "menu", "nvl",
			"onlayer", "pause", "play", "python", "queue", "scene", "screen", "show",
			"stop", "style", "transform", "translate", "voice", "window", "zorder",
		},
		{
			"narrator", "config", "renpy", "store", "gui", "build", "extend",
			"preferences", "persistent", "character", "centered", "vcentered",
		},
	} {
		for _, word := range words {
			reserved[word] = true
		}
	}
}

// identifier lowercases name and replaces everything outside [a-z0-9_] with
// an underscore. Results that are empty, start with a digit or shadow a
// reserved name get prefix.
func identifier(name, prefix string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	id := b.String()
	if id == "" || (id[0] >= '0' && id[0] <= '9') || reserved[id] {
		id = prefix + id
	}
	return id
}

// tagSet hands out unique identifiers, suffixing repeats with _2, _3, ...
type tagSet map[string]bool

func (s tagSet) unique(base string) string {
	tag := base
	for n := 2; s[tag]; n++ {
		tag = base + "_" + strconv.Itoa(n)
	}
	s[tag] = true
	return tag
}
