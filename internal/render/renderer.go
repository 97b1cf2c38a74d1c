package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	TemplateHome     = "home"
	TemplateHub      = "hub"
	TemplateCity     = "city"
	TemplateCluster  = "cluster"
	TemplateStatic   = "static"
	TemplateNotFound = "notfound"
)

var pageTemplates = []string{
	TemplateHome,
	TemplateHub,
	TemplateCity,
	TemplateCluster,
	TemplateStatic,
	TemplateNotFound,
}

// Site is the publisher identity shown on every page.
type Site struct {
	Name         string
	BaseURL      string
	ContactEmail string
}

// URL joins path onto the site's base URL.
func (s Site) URL(path string) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return s.BaseURL + path
}

// Meta is the document head of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string // empty means indexable
}

// Page is a view model bound to a page template.
type Page struct {
	Template string
	Meta     Meta
	Body     any
}

type layoutData struct {
	Site   Site
	Meta   Meta
	Body   any
	Year   int
	JSONLD []map[string]any
}

// Renderer executes page templates inside the site layout.
type Renderer struct {
	site  Site
	pages map[string]*template.Template
	now   func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// New parses the embedded templates.
func New(site Site, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		site:  site,
		pages: make(map[string]*template.Template, len(pageTemplates)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, name := range pageTemplates {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Site returns the publisher identity the renderer was built with.
func (r *Renderer) Site() Site { return r.site }

// Render writes p as a complete HTML document to w.
func (r *Renderer) Render(w io.Writer, p Page) error {
	t, ok := r.pages[p.Template]
	if !ok {
		return fmt.Errorf("unknown page template %q", p.Template)
	}
	data := layoutData{
		Site:   r.site,
		Meta:   p.Meta,
		Body:   p.Body,
		Year:   r.now().Year(),
		JSONLD: []map[string]any{organizationJSONLD(r.site), websiteJSONLD(r.site)},
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// RenderBytes renders p into memory, so a failed page never leaves a partial
// document behind.
func (r *Renderer) RenderBytes(p Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NotFound writes the site's 404 document to w.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.Render(w, Page{
		Template: TemplateNotFound,
		Meta: Meta{
			Title:  "Page Not Found | " + r.site.Name,
			Robots: "noindex",
		},
	})
}
