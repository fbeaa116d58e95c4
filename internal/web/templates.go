// Package web holds the embedded HTML views. Rendering is a pure
// function of session state; no business logic lives here.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded views for use with gin's HTML renderer.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
