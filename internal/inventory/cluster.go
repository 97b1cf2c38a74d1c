package inventory

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"citylaw/internal/domain"
)

var clusterRequired = []string{"cluster_id", "cluster_name", "state_abbr", "cities"}

// DecodeCluster parses and validates the cluster file stored as {id}.json.
// Rules are checked in order: required keys, cluster_id, cities, then each
// sponsorship status by practice key. cluster_id and status are checked on the
// raw values so a wrong-typed value reports the rule it breaks.
func DecodeCluster(id domain.ClusterID, raw []byte) (domain.ClusterFile, error) {
	name := id.String()

	f, err := decodeFields(raw)
	if err != nil {
		return domain.ClusterFile{}, malformed(PackCluster, name, err)
	}
	if key, ok := f.missing(clusterRequired); ok {
		return domain.ClusterFile{}, missingField(PackCluster, name, key)
	}
	if s, ok := f.str("cluster_id"); !ok || s != name {
		return domain.ClusterFile{}, clusterIDMismatch(name, f.text("cluster_id"))
	}
	if !f.isArray("cities") {
		return domain.ClusterFile{}, emptyArray(PackCluster, name, "cities")
	}
	if sp, ok := f.objects("sponsorships"); ok {
		for _, practice := range slices.Sorted(maps.Keys(sp)) {
			s, ok := sp[practice].str("status")
			if !ok || !domain.SponsorshipStatus(s).Valid() {
				return domain.ClusterFile{}, invalidStatus(name, practice, sp[practice].text("status"))
			}
		}
	}

	var c domain.ClusterFile
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.ClusterFile{}, malformed(PackCluster, name, err)
	}
	if err := ValidateCluster(id, c); err != nil {
		return domain.ClusterFile{}, err
	}
	return c, nil
}

// ValidateCluster checks the value rules of a decoded cluster file against the
// filename it was loaded from.
func ValidateCluster(id domain.ClusterID, c domain.ClusterFile) error {
	name := id.String()

	if c.ClusterID != id {
		return clusterIDMismatch(name, fmt.Sprintf("%q", c.ClusterID))
	}
	if len(c.Cities) == 0 {
		return emptyArray(PackCluster, name, "cities")
	}
	for _, practice := range c.Practices() {
		if s := c.Sponsorships[practice]; !s.Status.Valid() {
			return invalidStatus(name, practice.String(), fmt.Sprintf("%q", s.Status))
		}
	}
	return nil
}

func clusterIDMismatch(name, got string) error {
	return &ValidationError{
		Kind: KindSlugMismatch, Pack: PackCluster, Slug: name, Field: "cluster_id",
		Detail: fmt.Sprintf("cluster_id mismatch: filename %q vs cluster_id %s", name, got),
	}
}

func invalidStatus(name, practice, got string) error {
	return &ValidationError{
		Kind: KindInvalidEnumValue, Pack: PackCluster, Slug: name,
		Field:  "sponsorships." + practice + ".status",
		Detail: fmt.Sprintf("invalid sponsorship status %s for %q", got, practice),
	}
}
