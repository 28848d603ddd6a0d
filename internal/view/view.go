package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in model output is dropped; goldmark only emits it WithUnsafe.
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// Funcs are the helpers available to every page template
var Funcs = template.FuncMap{
	"markdown":   Markdown,
	"inc":        func(i int) int { return i + 1 },
	"pathEscape": url.PathEscape,
	"section":    func() Sections { return SummarySections },
}

// New parses the embedded page templates. Templates are addressed by file
// name, e.g. "search.html".
func New() (*template.Template, error) {
	tmpl, err := template.New("pages").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return tmpl, nil
}

// Markdown renders a chat reply to HTML
func Markdown(text string) template.HTML {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var out bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &out); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(out.String())
}
