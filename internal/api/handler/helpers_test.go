package handler

import (
	"html/template"
	"io"
	"testing"

	"github.com/labstack/echo/v4"
)

// testRenderer is a minimal echo.Renderer with just enough of each page to
// assert on; the real templates live in the api package.
type testRenderer struct {
	templates *template.Template
}

func (r *testRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func newTestRenderer(t *testing.T) *testRenderer {
	t.Helper()
	tmpl := template.New("")
	template.Must(tmpl.New("login.html").Parse(`login{{if .Error}} error: {{.Error}}{{end}}`))
	template.Must(tmpl.New("landing.html").Parse(`landing`))
	template.Must(tmpl.New("briefs.html").Parse(`{{range .Briefs}}[{{.Title}}|{{.Filename}}|{{.Date}}]{{end}}`))
	template.Must(tmpl.New("panel.html").Parse(`panel {{.Username}}{{range .Briefs}}[{{.Title}}]{{end}}`))
	return &testRenderer{templates: tmpl}
}
