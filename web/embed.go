// Package web embeds the HTML templates of the form UI.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parses the embedded templates. It panics on a malformed
// template since they are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))
}
