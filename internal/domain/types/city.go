package types

// Court is a courthouse that hears cases arising in a city.
type Court struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// DMV names the licensing agency handling administrative actions.
type DMV struct {
	Agency string `json:"agency"`
	Notes  string `json:"notes,omitempty"`
}

// Geography carries optional regional context for a city.
type Geography struct {
	Metro        string   `json:"metro,omitempty"`
	NearbyCities []string `json:"nearby_cities,omitempty"`
}

// ClusterRef points a city pack at the cluster that sells its sponsorships.
type ClusterRef struct {
	ID   ClusterID `json:"id"`
	Name string    `json:"name"`
}

// CityPack is one city's practice content, stored as cities/{slug}.json.
type CityPack struct {
	City           string      `json:"city"`
	State          string      `json:"state"`
	StateAbbr      string      `json:"state_abbr"`
	County         string      `json:"county"`
	Slug           Slug        `json:"slug"`
	Practice       PracticeKey `json:"practice"`
	Courts         []Court     `json:"courts"`
	LawEnforcement []string    `json:"law_enforcement"`
	DMV            DMV         `json:"dmv"`
	Geography      *Geography  `json:"geography,omitempty"`
	Cluster        *ClusterRef `json:"cluster,omitempty"`
}

// ClusterID returns the referenced cluster, if any.
func (p CityPack) ClusterID() (ClusterID, bool) {
	if p.Cluster == nil || p.Cluster.ID == "" {
		return "", false
	}
	return p.Cluster.ID, true
}
