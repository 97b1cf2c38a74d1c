package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed content/*.md
var contentFS embed.FS

// Markdown converts trusted or pack-supplied Markdown into sanitized HTML.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown returns a converter with GitHub-flavoured tables and lists.
func NewMarkdown() *Markdown {
	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts src to HTML.
func (m *Markdown) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(m.policy.SanitizeBytes(buf.Bytes())), nil
}

// StaticContent returns the embedded Markdown document name (without the .md
// extension) with {{contact_email}} replaced by email.
func StaticContent(name, email string) (string, error) {
	b, err := contentFS.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("static content %q: %w", name, err)
	}
	return strings.ReplaceAll(string(b), "{{contact_email}}", email), nil
}
