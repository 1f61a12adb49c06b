package commands

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// TemplateData is what authored message templates can refer to.
type TemplateData struct {
	Noun      string // the word the player typed
	Item      string // an object involved, e.g. the key or the weapon
	Obstacle  string
	Direction string
}

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	// Quick check: if no template markers, return as-is
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// expandMessage expands an authored message. A template that does not
// expand is broken content rather than bad input.
func expandMessage(name, tmplStr string, data *TemplateData) (string, error) {
	s, err := ExpandTemplate(tmplStr, data)
	if err != nil {
		return "", fmt.Errorf("expanding %s message: %w", name, err)
	}
	return s, nil
}
