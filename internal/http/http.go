package http

import (
	"log/slog"
	"net/http"
	"time"

	"landingnav/internal/config"
	"landingnav/internal/logging"
	"landingnav/internal/web"
	"landingnav/resources"
)

func NewMux(site config.SiteConfig) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	rend, err := web.NewRenderer(site.Title)
	if err != nil {
		return nil, err
	}

	mux.Handle("GET /{$}", &HomeHandler{TPL: rend, Site: site})
	for _, p := range web.Placeholders {
		mux.Handle("GET "+p.Path, &PlaceholderHandler{TPL: rend, Page: p})
	}
	mux.Handle("GET /fragments/nav", &NavFragmentHandler{TPL: rend})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(resources.FS)))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return mux, nil
}

func WithStandardMiddleware(next http.Handler) http.Handler {
	return requestLogger(securityHeaders(next))
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := slog.Default().With("method", r.Method, "path", r.URL.Path)
		ww := &wrapWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(ww, r.WithContext(logging.WithLogger(r.Context(), l)))
		l.Info("http.request",
			"status", ww.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type wrapWriter struct {
	http.ResponseWriter
	status int
}

func (w *wrapWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
