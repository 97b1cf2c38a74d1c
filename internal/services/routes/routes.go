package routes

import (
	"fmt"
	"path"
	"strings"

	"citylaw/internal/domain"
)

// Class groups routes that share a template and sitemap policy.
type Class string

const (
	ClassHome    Class = "home"
	ClassHub     Class = "hub"
	ClassPolicy  Class = "policy"
	ClassCity    Class = "city"
	ClassCluster Class = "cluster"
)

// String returns the string form of the class.
func (c Class) String() string { return string(c) }

// Fixed paths.
const (
	PathHome                  = "/"
	PathHub                   = "/dui-lawyer"
	PathContact               = "/contact"
	PathEditorialPolicy       = "/editorial-policy"
	PathSponsorshipDisclosure = "/sponsorship-disclosure"

	cityPrefix    = "/dui-lawyer/"
	clusterPrefix = "/clusters/"
)

// Route is one generated page.
type Route struct {
	Path  string
	Class Class
	Slug  string // city slug or cluster id; empty for fixed pages
}

// File returns the output path of the route relative to the build root,
// e.g. "dui-lawyer/apex-nc/index.html".
func (r Route) File() string {
	p := strings.Trim(r.Path, "/")
	if p == "" {
		return "index.html"
	}
	return path.Join(p, "index.html")
}

// CityPath returns the page path of a city guide.
func CityPath(slug domain.Slug) string { return cityPrefix + slug.String() }

// ClusterPath returns the page path of a cluster.
func ClusterPath(id domain.ClusterID) string { return clusterPrefix + id.String() }

// Static returns the fixed routes in sitemap order.
func Static() []Route {
	return []Route{
		{Path: PathHome, Class: ClassHome},
		{Path: PathEditorialPolicy, Class: ClassPolicy},
		{Path: PathSponsorshipDisclosure, Class: ClassPolicy},
		{Path: PathContact, Class: ClassPolicy},
		{Path: PathHub, Class: ClassHub},
	}
}

// Enumerator lists routes backed by data packs.
type Enumerator struct {
	cities   domain.CityStore
	clusters domain.ClusterStore
}

// New returns an Enumerator over the given stores.
func New(cities domain.CityStore, clusters domain.ClusterStore) *Enumerator {
	return &Enumerator{cities: cities, clusters: clusters}
}

// CityParams returns the slug of every city pack file.
func (e *Enumerator) CityParams() ([]domain.Slug, error) {
	slugs, err := e.cities.ListCities()
	if err != nil {
		return nil, fmt.Errorf("list city packs: %w", err)
	}
	return slugs, nil
}

// ClusterParams returns the id of every cluster file.
func (e *Enumerator) ClusterParams() ([]domain.ClusterID, error) {
	ids, err := e.clusters.ListClusters()
	if err != nil {
		return nil, fmt.Errorf("list clusters: %w", err)
	}
	return ids, nil
}

// Cities returns one route per city pack.
func (e *Enumerator) Cities() ([]Route, error) {
	slugs, err := e.CityParams()
	if err != nil {
		return nil, err
	}
	out := make([]Route, len(slugs))
	for i, s := range slugs {
		out[i] = Route{Path: CityPath(s), Class: ClassCity, Slug: s.String()}
	}
	return out, nil
}

// Clusters returns one route per cluster file.
func (e *Enumerator) Clusters() ([]Route, error) {
	ids, err := e.ClusterParams()
	if err != nil {
		return nil, err
	}
	out := make([]Route, len(ids))
	for i, id := range ids {
		out[i] = Route{Path: ClusterPath(id), Class: ClassCluster, Slug: id.String()}
	}
	return out, nil
}

// Enumerate returns the static routes followed by city and cluster routes.
func (e *Enumerator) Enumerate() ([]Route, error) {
	cities, err := e.Cities()
	if err != nil {
		return nil, err
	}
	clusters, err := e.Clusters()
	if err != nil {
		return nil, err
	}
	out := Static()
	out = append(out, cities...)
	return append(out, clusters...), nil
}
