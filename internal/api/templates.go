package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/a-h/templ"

	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/widgets"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		// icon accepts an icons.Icon or a glyph name.
		"icon": func(v any, class string) (template.HTML, error) {
			switch i := v.(type) {
			case icons.Icon:
				return icons.Glyph(i, class), nil
			case string:
				ic, ok := icons.Named(i)
				if !ok {
					return "", fmt.Errorf("unknown icon %q", i)
				}
				return icons.Glyph(ic, class), nil
			}
			return "", fmt.Errorf("icon: unsupported %T", v)
		},
		"tone": func(t models.Tone) string { return widgets.Theme.ToneColour(t) },
		"theme": func() widgets.Palette {
			return widgets.Theme
		},
		"signals": func(v any) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
		"css": func(s string) template.CSS { return template.CSS(s) },
		"round": func(f float64) string {
			return fmt.Sprintf("%.0f", math.Round(f))
		},
		"signed": func(f float64) string { return fmt.Sprintf("%+.0f", f) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// fragment adapts a named template to a templ component so datastar can
// patch it.
func (s *Server) fragment(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return s.tmpl.ExecuteTemplate(w, name, data)
	})
}
