package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Banner kinds.
const (
	BannerSuccess = "success"
	BannerError   = "error"
)

// Banner is a dismissible status message shown above the form.
type Banner struct {
	Kind    string
	Message string
}

// Page is the data rendered by index.html.
type Page struct {
	Form           *Form
	List           ListView
	Chart          MoodChart
	Banner         *Banner
	GratitudeLimit int
}

// SessionPage is the data rendered by session.html.
type SessionPage struct {
	Error string
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html"))
}
