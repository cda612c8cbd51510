package resources

import "embed"

// FS exposes the static resource files served under /static/.
//
//go:embed logo.svg site.css
var FS embed.FS
