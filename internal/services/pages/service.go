package pages

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"citylaw/internal/domain"
	"citylaw/internal/inventory"
	"citylaw/internal/logger"
	"citylaw/internal/metrics"
	"citylaw/internal/render"
	"citylaw/internal/services/routes"
)

// ErrNotFound is returned when a route has no backing page.
var ErrNotFound = errors.New("page not found")

// Service assembles pages from the data packs.
type Service struct {
	cities   domain.CityStore
	clusters domain.ClusterStore
	renderer *render.Renderer
	md       *render.Markdown
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for validation failures.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithMetrics sets the collectors updated on every render.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New returns a Service reading packs from cities and clusters.
func New(cities domain.CityStore, clusters domain.ClusterStore, r *render.Renderer, opts ...Option) *Service {
	s := &Service{
		cities:   cities,
		clusters: clusters,
		renderer: r,
		md:       render.NewMarkdown(),
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) site() render.Site { return s.renderer.Site() }

// HomePage returns the landing page.
func (s *Service) HomePage() render.Page {
	site := s.site()
	return render.Page{
		Template: render.TemplateHome,
		Meta: render.Meta{
			Title:       site.Name,
			Description: "Public-first legal information organized by city and practice. Clear guides, court and agency information, and step-by-step process explanations.",
			Canonical:   site.URL(routes.PathHome),
		},
	}
}

// HubPage returns the DUI overview page listing every city guide.
func (s *Service) HubPage() (render.Page, error) {
	slugs, err := s.cities.ListCities()
	if err != nil {
		return render.Page{}, fmt.Errorf("list city packs: %w", err)
	}
	view := HubView{Cities: make([]CityLink, 0, len(slugs))}
	for _, slug := range slugs {
		pack, err := s.loadCity(slug)
		if err != nil {
			return render.Page{}, err
		}
		view.Cities = append(view.Cities, CityLink{
			Name:      pack.City,
			StateAbbr: pack.StateAbbr,
			Slug:      pack.Slug,
			Href:      routes.CityPath(pack.Slug),
		})
	}
	return render.Page{
		Template: render.TemplateHub,
		Meta: render.Meta{
			Title:       "DUI Lawyer Information by City | City Law Guide",
			Description: "Learn how DUI charges work, what penalties may apply, and how DUI laws vary by city and state. Educational legal information only.",
			Canonical:   s.site().URL(routes.PathHub),
		},
		Body: view,
	}, nil
}

// CityPage returns the guide for slug. A city naming a cluster must be
// listed by that cluster.
func (s *Service) CityPage(slug domain.Slug) (render.Page, error) {
	pack, err := s.loadCity(slug)
	if err != nil {
		return render.Page{}, err
	}

	view := CityView{
		City:         pack.City,
		State:        pack.State,
		StateAbbr:    pack.StateAbbr,
		County:       pack.County,
		Slug:         pack.Slug,
		Agencies:     pack.LawEnforcement,
		Courts:       pack.Courts,
		DMVAgency:    pack.DMV.Agency,
		Consequences: duiConsequences,
	}
	if g := pack.Geography; g != nil {
		view.Metro = g.Metro
		view.NearbyCities = g.NearbyCities
	}
	if pack.DMV.Notes != "" {
		notes, err := s.md.Render(pack.DMV.Notes)
		if err != nil {
			return render.Page{}, fmt.Errorf("render dmv notes for %q: %w", slug, err)
		}
		view.DMVNotes = notes
	}

	if id, ok := pack.ClusterID(); ok {
		cluster, err := s.loadCluster(id)
		if errors.Is(err, ErrNotFound) {
			err = inventory.MissingFile(inventory.PackCluster, id.String(), path.Join("clusters", id.String()+".json"))
			s.recordInvalid(err, id.String())
			return render.Page{}, err
		}
		if err != nil {
			return render.Page{}, err
		}
		if err := inventory.AssertCityInCluster(cluster, pack.Slug); err != nil {
			s.recordInvalid(err, slug.String())
			return render.Page{}, err
		}
		view.ClusterName = pack.Cluster.Name
	}

	return render.Page{
		Template: render.TemplateCity,
		Meta: render.Meta{
			Title: fmt.Sprintf("DUI Lawyer Information in %s, %s | City Law Guide", pack.City, pack.StateAbbr),
			Description: fmt.Sprintf(
				"General information about DUI charges, court process, and driver’s license considerations in %s, %s. Educational content only.",
				pack.City, pack.StateAbbr),
			Canonical: s.site().URL(routes.CityPath(pack.Slug)),
		},
		Body: view,
	}, nil
}

// ClusterPage returns the inventory page for id. Cluster pages are not
// indexed.
func (s *Service) ClusterPage(id domain.ClusterID) (render.Page, error) {
	c, err := s.loadCluster(id)
	if err != nil {
		return render.Page{}, err
	}

	view := ClusterView{
		ID:        c.ClusterID,
		Name:      c.ClusterName,
		StateAbbr: c.StateAbbr,
		Counties:  strings.Join(c.Counties, ", "),
		Cities:    make([]CityLink, len(c.Cities)),
	}
	for i, city := range c.Cities {
		view.Cities[i] = CityLink{
			Name:      city.City,
			StateAbbr: city.StateAbbr,
			Slug:      city.Slug,
			Href:      routes.CityPath(city.Slug),
		}
	}
	for _, practice := range c.Practices() {
		sp := c.Sponsorship(practice)
		setup := sp.SetupUSD
		view.Rows = append(view.Rows, SponsorshipRow{
			Practice: practice.Label(),
			Status:   sp.Status.Label(),
			Monthly:  FormatUSD(sp.MonthlyUSD),
			Setup:    FormatUSD(&setup),
		})
	}

	return render.Page{
		Template: render.TemplateCluster,
		Meta: render.Meta{
			Title:       fmt.Sprintf("%s Cluster | City Law Guide", c.ClusterName),
			Description: fmt.Sprintf("Cluster overview for %s (%s). Cities included and sponsorship availability by practice.", c.ClusterName, c.StateAbbr),
			Canonical:   s.site().URL(routes.ClusterPath(c.ClusterID)),
			Robots:      "noindex, follow",
		},
		Body: view,
	}, nil
}

var staticPages = map[string]struct {
	content     string
	title       string
	description string
}{
	routes.PathContact: {
		content: "contact", title: "Contact | City Law Guide",
		description: "Contact City Law Guide.",
	},
	routes.PathEditorialPolicy: {
		content: "editorial-policy", title: "Editorial Policy | City Law Guide",
		description: "How City Law Guide creates, reviews, and presents legal information.",
	},
	routes.PathSponsorshipDisclosure: {
		content: "sponsorship-disclosure", title: "Sponsorship Disclosure | City Law Guide",
		description: "How sponsored and featured attorney placements appear on City Law Guide.",
	},
}

// StaticPage returns the Markdown page served at p.
func (s *Service) StaticPage(p string) (render.Page, error) {
	def, ok := staticPages[p]
	if !ok {
		return render.Page{}, ErrNotFound
	}
	site := s.site()
	src, err := render.StaticContent(def.content, site.ContactEmail)
	if err != nil {
		return render.Page{}, err
	}
	html, err := s.md.Render(src)
	if err != nil {
		return render.Page{}, fmt.Errorf("render %s: %w", def.content, err)
	}
	return render.Page{
		Template: render.TemplateStatic,
		Meta: render.Meta{
			Title:       def.title,
			Description: def.description,
			Canonical:   site.URL(p),
		},
		Body: StaticView{HTML: html},
	}, nil
}

// PageFor resolves a route to its page.
func (s *Service) PageFor(r routes.Route) (render.Page, error) {
	switch r.Class {
	case routes.ClassHome:
		return s.HomePage(), nil
	case routes.ClassHub:
		return s.HubPage()
	case routes.ClassPolicy:
		return s.StaticPage(r.Path)
	case routes.ClassCity:
		return s.CityPage(domain.Slug(r.Slug))
	case routes.ClassCluster:
		return s.ClusterPage(domain.ClusterID(r.Slug))
	default:
		return render.Page{}, fmt.Errorf("route %s: unknown class %q", r.Path, r.Class)
	}
}

// Render resolves r and renders it to a complete HTML document.
func (s *Service) Render(r routes.Route) ([]byte, error) {
	p, err := s.PageFor(r)
	if err != nil {
		return nil, err
	}
	b, err := s.renderer.RenderBytes(p)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", r.Path, err)
	}
	s.metrics.PageRendered(r.Class.String())
	return b, nil
}

// NotFound renders the 404 document.
func (s *Service) NotFound() ([]byte, error) {
	var buf strings.Builder
	if err := s.renderer.NotFound(&buf); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

func (s *Service) loadCity(slug domain.Slug) (domain.CityPack, error) {
	pack, ok, err := s.cities.LoadCity(slug)
	if err != nil {
		s.recordInvalid(err, slug.String())
		return domain.CityPack{}, err
	}
	if !ok {
		return domain.CityPack{}, ErrNotFound
	}
	return pack, nil
}

func (s *Service) loadCluster(id domain.ClusterID) (domain.ClusterFile, error) {
	c, ok, err := s.clusters.LoadCluster(id)
	if err != nil {
		s.recordInvalid(err, id.String())
		return domain.ClusterFile{}, err
	}
	if !ok {
		return domain.ClusterFile{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) recordInvalid(err error, slug string) {
	var ve *inventory.ValidationError
	if !errors.As(err, &ve) {
		return
	}
	s.metrics.ValidationFailed(string(ve.Pack), ve.Kind.String())
	s.log.Warn("invalid data pack", "slug", slug, "kind", ve.Kind.String(), "error", err)
}
