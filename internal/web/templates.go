package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages rendered through the shared layout.
var pageNames = []string{
	"home",
	"register",
	"login",
	"view_workouts",
	"profile",
	"create_workout",
	"edit_workout",
}

// Templates holds all page templates, keyed by page name. Each page gets its
// own clone of the layout so the per-page {{define "content"}} blocks don't
// collide.
type Templates struct {
	pages map[string]*template.Template
}

// LoadTemplates parses the embedded layout and page templates.
func LoadTemplates() (*Templates, error) {
	layout, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing layout: %w", err)
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		t, err = t.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing page %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Templates{pages: pages}, nil
}

// Render writes the named page through the layout.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
