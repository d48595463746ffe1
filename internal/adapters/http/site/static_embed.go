package site

import (
	"embed"
	"html/template"
)

//go:embed static/index.html
var staticFS embed.FS

var indexTemplate = template.Must(template.ParseFS(staticFS, "static/index.html")) //nolint:gochecknoglobals // parsed once
