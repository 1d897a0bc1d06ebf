// api/web/web.go
package web

import (
	"embed"
	"html/template"

	"shoppersignal/api/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates. Embedding keeps the binary
// self-contained and makes handler tests independent of the working directory.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"pct": utils.FormatPercent,
	}).ParseFS(templatesFS, "templates/*.html"))
}
