package renpy

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
)

//go:embed script.rpy.tmpl
var scriptTemplate string

// Project config keys written as config.<key> statements, in output order
var settingKeys = []string{projects.ConfigScreenWidth, projects.ConfigScreenHeight}

type setting struct {
	Key   string
	Value string
}

type characterDef struct {
	Tag  string
	Args string
}

type imageDef struct {
	Tag       string
	Attribute string
	Path      string
}

type script struct {
	ProjectID  string
	Name       string
	Settings   []setting
	Characters []characterDef
	Images     []imageDef
	Statements []string
}

// speaker is a character as it appears in the script
type speaker struct {
	tag        string
	attributes map[string]string
}

// Writer renders projects with the embedded script template
type Writer struct {
	tmpl *template.Template
}

var _ export.ScriptRenderer = (*Writer)(nil)

// NewWriter parses the script template.
func NewWriter() (*Writer, error) {
	tmpl, err := template.New("script.rpy").
		Funcs(template.FuncMap{"quote": quote}).
		Parse(scriptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script template: %w", err)
	}
	return &Writer{tmpl: tmpl}, nil
}

// Render writes the script of project. Lines are emitted in the order given;
// lines whose character is not among characters are written as narration.
func (w *Writer) Render(project *projects.Project, chars []*characters.Character, lines []*dialogue.Line) (string, error) {
	s := script{
		ProjectID: project.ID,
		Name:      project.Name,
		Settings:  settings(project.Config),
	}

	tags := tagSet{}
	speakers := make(map[string]*speaker, len(chars))
	for _, c := range chars {
		sp := &speaker{
			tag:        tags.unique(identifier(c.Name, "c_")),
			attributes: make(map[string]string, len(c.Expressions)),
		}
		speakers[c.ID] = sp

		s.Characters = append(s.Characters, characterDef{Tag: sp.tag, Args: characterArgs(c)})

		attrs := tagSet{}
		for _, e := range c.Expressions {
			attr := attrs.unique(identifier(e.Name, "e_"))
			sp.attributes[e.Name] = attr
			s.Images = append(s.Images, imageDef{Tag: sp.tag, Attribute: attr, Path: e.ImagePath})
		}
	}

	for _, l := range lines {
		s.Statements = append(s.Statements, statements(l, speakers)...)
	}

	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("failed to render script: %w", err)
	}
	return buf.String(), nil
}

func statements(l *dialogue.Line, speakers map[string]*speaker) []string {
	text := `"` + escapeText(l.Text) + `"`

	if l.IsNarration() {
		return []string{text}
	}
	sp, ok := speakers[*l.CharacterID]
	if !ok {
		return []string{text}
	}

	var out []string
	if l.Expression != nil {
		if attr, ok := sp.attributes[*l.Expression]; ok {
			show := "show " + sp.tag + " " + attr
			if l.Position != "" {
				show += " at " + identifier(l.Position, "at_")
			}
			out = append(out, show)
		}
	}
	return append(out, sp.tag+" "+text)
}

func characterArgs(c *characters.Character) string {
	args := []string{`"` + escapeText(c.Name) + `"`}
	if c.Color != "" {
		args = append(args, `color="`+quote(c.Color)+`"`)
	}
	if c.VoiceTag != nil && *c.VoiceTag != "" {
		args = append(args, `voice_tag="`+quote(*c.VoiceTag)+`"`)
	}
	return strings.Join(args, ", ")
}

// settings picks the numeric display settings out of a project config.
func settings(config map[string]any) []setting {
	var out []setting
	for _, key := range settingKeys {
		if v, ok := number(config[key]); ok {
			out = append(out, setting{Key: key, Value: v})
		}
	}
	return out
}

func number(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case json.Number:
		if _, err := n.Float64(); err != nil {
			return "", false
		}
		return n.String(), true
	default:
		return "", false
	}
}
