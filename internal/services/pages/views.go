package pages

import (
	"html/template"
	"math"

	"github.com/dustin/go-humanize"

	"citylaw/internal/domain"
)

// CityView is the body of a city guide.
type CityView struct {
	City         string
	State        string
	StateAbbr    string
	County       string
	Slug         domain.Slug
	ClusterName  string
	Metro        string
	NearbyCities []string
	Agencies     []string
	Courts       []domain.Court
	DMVAgency    string
	DMVNotes     template.HTML
	Consequences []string
}

// CityLink points at a city guide.
type CityLink struct {
	Name      string
	StateAbbr string
	Slug      domain.Slug
	Href      string
}

// SponsorshipRow is one line of a cluster's availability table.
type SponsorshipRow struct {
	Practice string
	Status   string
	Monthly  string
	Setup    string
}

// ClusterView is the body of a cluster page.
type ClusterView struct {
	ID        domain.ClusterID
	Name      string
	StateAbbr string
	Counties  string
	Cities    []CityLink
	Rows      []SponsorshipRow
}

// HubView is the body of the DUI overview page.
type HubView struct {
	Cities []CityLink
}

// StaticView is the body of a Markdown page.
type StaticView struct {
	HTML template.HTML
}

var duiConsequences = []string{
	"Fines and court costs",
	"Driver’s license suspension or restriction",
	"Mandatory education or treatment programs",
	"Probation or incarceration in some cases",
	"Long-term insurance and employment impacts",
}

// FormatUSD renders an amount as whole US dollars, e.g. "$1,500". A nil
// amount renders as a dash.
func FormatUSD(n *float64) string {
	if n == nil {
		return "—"
	}
	v := int64(math.Round(*n))
	if v < 0 {
		return "-$" + humanize.Comma(-v)
	}
	return "$" + humanize.Comma(v)
}
