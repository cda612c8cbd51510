// Package export writes the site as static HTML files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"landingnav/internal/config"
	"landingnav/internal/web"
)

type file struct {
	name   string
	render func(*bytes.Buffer) error
}

// Site renders every hosted page into dir and returns the written paths.
func Site(ctx context.Context, rend *web.Renderer, site config.SiteConfig, dir string) ([]string, error) {
	files := []file{{
		name: "index.html",
		render: func(buf *bytes.Buffer) error {
			return rend.Render(buf, "home", web.HomePage(site.Title, site.Headline, site.Description))
		},
	}}
	for _, p := range web.Placeholders {
		files = append(files, file{
			name:   p.Page + ".html",
			render: func(buf *bytes.Buffer) error { return rend.Render(buf, p.Page, web.PlaceholderPage(p)) },
		})
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		var buf bytes.Buffer
		if err := f.render(&buf); err != nil {
			return written, err
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		slog.Debug("export.wrote", "path", path, "bytes", buf.Len())
		written = append(written, path)
	}
	return written, nil
}
