package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"path"
	"time"

	"github.com/Masterminds/sprig/v3"
)

//go:embed tpl/**/*.tmpl
//go:embed tpl/*.tmpl
var tplFS embed.FS

type Renderer struct {
	siteTitle string
}

func NewRenderer(siteTitle string) (*Renderer, error) {
	r := &Renderer{siteTitle: siteTitle}
	// fail at startup rather than on the first request
	if _, err := r.parse(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) parse(pages ...string) (*template.Template, error) {
	funcs := template.FuncMap{
		"nowUTC":    func() time.Time { return time.Now().UTC() },
		"siteTitle": func() string { return r.siteTitle },
	}
	t := template.New("root").Funcs(sprig.HtmlFuncMap()).Funcs(funcs)
	if _, err := t.ParseFS(tplFS, "tpl/base.tmpl", "tpl/partials/*.tmpl"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, p := range pages {
		if _, err := t.ParseFS(tplFS, path.Join("tpl/pages", p+".tmpl")); err != nil {
			return nil, fmt.Errorf("parse page %q: %w", p, err)
		}
	}
	return t, nil
}

// Render writes a full page: the base layout with the named page body.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, err := r.parse(name)
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render page %q: %w", name, err)
	}
	return nil
}

// Partial writes a single partial (e.g. "nav") without any layout.
func (r *Renderer) Partial(w io.Writer, name string, data any) error {
	t, err := r.parse()
	if err != nil {
		return err
	}
	if t.Lookup(name) == nil {
		return fmt.Errorf("render partial %q: %w", name, ErrUnknownPartial)
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render partial %q: %w", name, err)
	}
	return nil
}
