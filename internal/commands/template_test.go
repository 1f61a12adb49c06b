package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestExpandTemplate(t *testing.T) {
	tests := map[string]struct {
		tmpl   string
		data   *TemplateData
		exp    string
		expErr string
	}{
		"no markers": {
			tmpl: "There is a locked door in your way.",
			data: &TemplateData{},
			exp:  "There is a locked door in your way.",
		},
		"fields": {
			tmpl: "The {{ .Obstacle }} blocks the way {{ .Direction }}.",
			data: &TemplateData{Obstacle: "crocodile", Direction: "east"},
			exp:  "The crocodile blocks the way east.",
		},
		"sprig function": {
			tmpl: "{{ .Noun | title }}!",
			data: &TemplateData{Noun: "help"},
			exp:  "Help!",
		},
		"parse error": {
			tmpl:   "{{ .Noun ",
			data:   &TemplateData{},
			expErr: "parsing template",
		},
		"unknown field": {
			tmpl:   "{{ .Colour }}",
			data:   &TemplateData{},
			expErr: "executing template",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.tmpl, tt.data)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "result", got, tt.exp)
		})
	}
}
