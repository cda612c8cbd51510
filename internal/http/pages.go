package http

import (
	"bytes"
	"net/http"

	"landingnav/internal/config"
	"landingnav/internal/logging"
	"landingnav/internal/web"
)

type HomeHandler struct {
	TPL  *web.Renderer
	Site config.SiteConfig
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := web.HomePage(h.Site.Title, h.Site.Headline, h.Site.Description)
	writeHTML(w, r, func(buf *bytes.Buffer) error { return h.TPL.Render(buf, "home", page) })
}

// PlaceholderHandler serves a page the nav links to until it has real
// content of its own.
type PlaceholderHandler struct {
	TPL  *web.Renderer
	Page web.Placeholder
}

func (h *PlaceholderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := web.PlaceholderPage(h.Page)
	writeHTML(w, r, func(buf *bytes.Buffer) error { return h.TPL.Render(buf, h.Page.Page, page) })
}

// NavFragmentHandler serves the navigation bar alone so other views can mount it.
type NavFragmentHandler struct {
	TPL *web.Renderer
}

func (h *NavFragmentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, r, func(buf *bytes.Buffer) error { return h.TPL.Partial(buf, "nav", web.Nav()) })
}

func writeHTML(w http.ResponseWriter, r *http.Request, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.From(r.Context()).Error("could not render", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
