package landing

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/saherflow/flowportal/internal/config"
	"github.com/saherflow/flowportal/internal/slideshow"
)

//go:embed templates/landing.html.tmpl
var pageTemplate string

//go:embed static/landing.js
var clientScript string

// WebSocketPath is where the page's live session connects.
const WebSocketPath = "/ws/landing"

// View is the per-mount state composed into markup.
type View struct {
	Classes      string            `json:"classes"`
	Theme        string            `json:"theme"`
	Current      int               `json:"slide"`
	Slides       []slideshow.Slide `json:"slides"`
	Fallback     string            `json:"fallback"`
	IntervalMS   int               `json:"interval_ms"`
	TransitionMS int               `json:"transition_ms"`
}

// Content is the static copy around the carousel, prepared for rendering.
type Content struct {
	Title    string
	Badge    string
	Headline []string
	Tagline  template.HTML
	Features []string
	Stats    []config.Stat
	Links    config.LinksConfig
}

// Page renders the landing page.
type Page struct {
	content Content
	tmpl    *template.Template
}

type pageData struct {
	Content
	View
	WebSocketPath string
	Script        template.JS
}

// NewPage renders the markdown copy once and parses the page template.
func NewPage(content config.ContentConfig, links config.LinksConfig) (*Page, error) {
	tagline, err := renderMarkdown(content.Tagline)
	if err != nil {
		return nil, fmt.Errorf("rendering tagline: %w", err)
	}

	tmpl, err := template.New("landing").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Page{
		content: Content{
			Title:    content.Title,
			Badge:    content.Badge,
			Headline: content.Headline,
			Tagline:  tagline,
			Features: content.Features,
			Stats:    content.Stats,
			Links:    links,
		},
		tmpl: tmpl,
	}, nil
}

// Content returns the prepared copy.
func (p *Page) Content() Content { return p.content }

// Render writes the full page for v.
func (p *Page) Render(w io.Writer, v View) error {
	data := pageData{
		Content:       p.content,
		View:          v,
		WebSocketPath: WebSocketPath,
		Script:        template.JS(clientScript),
	}
	if err := p.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
)

// renderMarkdown converts marketing copy to HTML. Raw HTML in the source is
// escaped by goldmark's default renderer.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
