package types

import "sort"

// ClusterCity is a city entry inside a cluster file.
type ClusterCity struct {
	Slug      Slug   `json:"slug"`
	City      string `json:"city"`
	StateAbbr string `json:"state_abbr"`
}

// Pricing is the list price of one practice's sponsorship in a cluster.
type Pricing struct {
	MonthlyUSD float64  `json:"monthly_usd"`
	SetupUSD   *float64 `json:"setup_usd,omitempty"`
}

// ClusterMeta is bookkeeping carried by cluster files.
type ClusterMeta struct {
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Version   int    `json:"version,omitempty"`
}

// ClusterFile groups cities for shared sponsorship inventory, stored as
// clusters/{cluster_id}.json.
type ClusterFile struct {
	ClusterID    ClusterID                   `json:"cluster_id"`
	ClusterName  string                      `json:"cluster_name"`
	State        string                      `json:"state,omitempty"`
	StateAbbr    string                      `json:"state_abbr"`
	Counties     []string                    `json:"counties,omitempty"`
	Cities       []ClusterCity               `json:"cities"`
	Pricing      map[PracticeKey]Pricing     `json:"pricing,omitempty"`
	Sponsorships map[PracticeKey]Sponsorship `json:"sponsorships,omitempty"`
	Rules        map[string]bool             `json:"rules,omitempty"`
	Meta         *ClusterMeta                `json:"meta,omitempty"`
}

// HasCity reports whether slug is listed in the cluster's cities.
func (c ClusterFile) HasCity(slug Slug) bool {
	for _, city := range c.Cities {
		if city.Slug == slug {
			return true
		}
	}
	return false
}

// Practices returns the practices with sponsorship inventory, sorted by key.
func (c ClusterFile) Practices() []PracticeKey {
	out := make([]PracticeKey, 0, len(c.Sponsorships))
	for p := range c.Sponsorships {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Sponsorship joins the sponsorship and pricing entries for practice.
// Setup defaults to zero when the cluster lists no setup fee.
func (c ClusterFile) Sponsorship(practice PracticeKey) SponsorshipView {
	var v SponsorshipView
	if s, ok := c.Sponsorships[practice]; ok {
		v.Status = s.Status
	}
	if p, ok := c.Pricing[practice]; ok {
		monthly := p.MonthlyUSD
		v.MonthlyUSD = &monthly
		if p.SetupUSD != nil {
			v.SetupUSD = *p.SetupUSD
		}
	}
	return v
}
