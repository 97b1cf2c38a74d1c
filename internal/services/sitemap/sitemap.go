package sitemap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"citylaw/internal/domain"
	"citylaw/internal/services/routes"
)

// ChangeFrequency is a sitemaps.org changefreq value.
type ChangeFrequency string

const (
	Weekly  ChangeFrequency = "weekly"
	Monthly ChangeFrequency = "monthly"
	Yearly  ChangeFrequency = "yearly"
)

// Entry is one <url> of the sitemap.
type Entry struct {
	Loc             string
	LastModified    time.Time
	ChangeFrequency ChangeFrequency
	Priority        float64
}

type policy struct {
	freq     ChangeFrequency
	priority float64
}

// Cluster pages carry noindex and never appear here.
var policies = map[routes.Class]policy{
	routes.ClassHome:   {Weekly, 1.0},
	routes.ClassHub:    {Weekly, 0.6},
	routes.ClassPolicy: {Yearly, 0.3},
	routes.ClassCity:   {Monthly, 0.8},
}

// Generator lists the indexable pages of the site.
type Generator struct {
	baseURL string
	cities  domain.CityStore
}

// New returns a Generator producing absolute URLs under baseURL.
func New(baseURL string, cities domain.CityStore) *Generator {
	return &Generator{baseURL: baseURL, cities: cities}
}

// Generate returns the static routes stamped with now followed by one entry
// per city pack stamped with its file modification time. Every city pack is
// validated; the first invalid pack fails generation.
func (g *Generator) Generate(now time.Time) ([]Entry, error) {
	var out []Entry
	for _, r := range routes.Static() {
		out = append(out, g.entry(r, now))
	}

	slugs, err := g.cities.ListCities()
	if err != nil {
		return nil, fmt.Errorf("list city packs: %w", err)
	}
	for _, slug := range slugs {
		if _, _, err := g.cities.LoadCity(slug); err != nil {
			return nil, err
		}
		mod, err := g.cities.CityModTime(slug)
		if err != nil {
			return nil, fmt.Errorf("stat city pack %q: %w", slug, err)
		}
		out = append(out, g.entry(routes.Route{Path: routes.CityPath(slug), Class: routes.ClassCity, Slug: slug.String()}, mod))
	}
	return out, nil
}

func (g *Generator) entry(r routes.Route, mod time.Time) Entry {
	p := policies[r.Class]
	return Entry{Loc: g.baseURL + r.Path, LastModified: mod, ChangeFrequency: p.freq, Priority: p.priority}
}

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Marshal encodes entries as a sitemaps.org urlset document.
func Marshal(entries []Entry) ([]byte, error) {
	set := urlset{Xmlns: xmlns, URLs: make([]url, len(entries))}
	for i, e := range entries {
		set.URLs[i] = url{
			Loc:        e.Loc,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
	}
	b, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(b, '\n')...), nil
}

// Robots returns robots.txt allowing everything except cluster pages.
func Robots(baseURL string) string {
	return "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /clusters/\n" +
		"\n" +
		"Sitemap: " + baseURL + "/sitemap.xml\n"
}
