package service

import (
	"bytes"
	"html/template"
)

// briefPage is the shell every generated brief is rendered into. The body
// fragment comes straight from the generation service and is embedded
// unescaped; the title is escaped normally.
var briefPage = template.Must(template.New("brief").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <div class="content">
        {{.Content}}
    </div>
    <p class="go-back"><a href="/documents">Back to index</a></p>
</body>
</html>
`))

// RenderBrief turns a title and a generated HTML fragment into a complete,
// self-contained document. Pure function, no I/O.
func RenderBrief(title, fragment string) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail, so neither can Execute here.
	_ = briefPage.Execute(&buf, struct {
		Title   string
		Content template.HTML
	}{Title: title, Content: template.HTML(fragment)})
	return buf.Bytes()
}
