package render

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() Site {
	return Site{Name: "City Law Guide", BaseURL: "https://example.test", ContactEmail: "info@example.test"}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r, err := New(testSite(), WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	return r
}

func TestSiteURL(t *testing.T) {
	s := testSite()
	assert.Equal(t, "https://example.test/dui-lawyer", s.URL("/dui-lawyer"))
	assert.Equal(t, "https://example.test/contact", s.URL("contact"))
	assert.Equal(t, "https://example.test/", s.URL(""))
}

func TestRenderLayout(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.RenderBytes(Page{
		Template: TemplateHome,
		Meta: Meta{
			Title:       "City Law Guide",
			Description: "Plain-language legal information",
			Canonical:   "https://example.test/",
		},
	})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>City Law Guide</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://example.test/">`)
	assert.Contains(t, html, `<meta name="description" content="Plain-language legal information">`)
	assert.NotContains(t, html, `name="robots"`)
	assert.Contains(t, html, "&copy; 2026 City Law Guide")
	assert.Contains(t, html, `"@type":"Organization"`)
	assert.Contains(t, html, `"@type":"WebSite"`)
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.RenderBytes(Page{Template: "missing"})
	require.Error(t, err)
}

func TestNotFound(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf))
	assert.Contains(t, buf.String(), "Page not found")
	assert.Contains(t, buf.String(), `<meta name="robots" content="noindex">`)
}

func TestRenderEscapesPackText(t *testing.T) {
	r := newTestRenderer(t)
	body := struct {
		HTML template.HTML
	}{HTML: template.HTML("<p>safe</p>")}
	out, err := r.RenderBytes(Page{
		Template: TemplateStatic,
		Meta:     Meta{Title: `Contact <script>`},
		Body:     body,
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<p>safe</p>")
	assert.Contains(t, string(out), "<title>Contact &lt;script&gt;</title>")
}

func TestMarkdownSanitizes(t *testing.T) {
	md := NewMarkdown()
	out, err := md.Render("**Notice** <script>alert(1)</script>\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>Notice</strong>")
	assert.Contains(t, string(out), "<table>")
	assert.NotContains(t, string(out), "<script>")
}

func TestStaticContent(t *testing.T) {
	for _, name := range []string{"contact", "editorial-policy", "sponsorship-disclosure"} {
		t.Run(name, func(t *testing.T) {
			src, err := StaticContent(name, "hello@example.test")
			require.NoError(t, err)
			assert.Contains(t, src, "hello@example.test")
			assert.NotContains(t, src, "{{contact_email}}")
		})
	}

	_, err := StaticContent("nope", "x@example.test")
	require.Error(t, err)
}
