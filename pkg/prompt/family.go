package prompt

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// DefaultFamilyName selects the built-in prompt family.
const DefaultFamilyName = "default"

const autoAgentTemplate = "templates/auto_agent.tmpl"

//go:embed templates/*.tmpl
var builtin embed.FS

// Family supplies the system prompts used by the research pipeline.
type Family interface {
	Name() string
	AutoAgentInstructions() string
}

// TemplateFamily renders its instructions from a template once, at construction.
type TemplateFamily struct {
	name         string
	instructions string
	digest       string
}

// Name returns the family identifier.
func (f *TemplateFamily) Name() string { return f.name }

// AutoAgentInstructions returns the rendered agent-selection system prompt.
func (f *TemplateFamily) AutoAgentInstructions() string { return f.instructions }

// Digest identifies the template source the instructions were rendered from.
func (f *TemplateFamily) Digest() string { return f.digest }

// NewFamily returns the family called name. A non-empty templatePath replaces
// the family's auto-agent template with a file on disk.
func NewFamily(name, templatePath string) (*TemplateFamily, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultFamilyName
	}

	var (
		tmpl *Template
		err  error
	)
	switch {
	case strings.TrimSpace(templatePath) != "":
		tmpl, err = NewTemplate(templatePath, templateFuncs())
	case name == DefaultFamilyName:
		tmpl, err = NewTemplateFS(builtin, autoAgentTemplate, templateFuncs())
	default:
		return nil, fmt.Errorf("prompt: unknown prompt family %q", name)
	}
	if err != nil {
		return nil, err
	}

	text, err := tmpl.Render(struct{ Now time.Time }{Now: time.Now().UTC()})
	if err != nil {
		return nil, err
	}
	return &TemplateFamily{
		name:         name,
		instructions: strings.TrimSpace(text),
		digest:       tmpl.Digest(),
	}, nil
}

// MustDefault returns the built-in family and panics if its template is broken.
func MustDefault() *TemplateFamily {
	f, err := NewFamily(DefaultFamilyName, "")
	if err != nil {
		panic(err)
	}
	return f
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string { return t.Format("January 2, 2006") },
		"trim": strings.TrimSpace,
	}
}
