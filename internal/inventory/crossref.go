package inventory

import (
	"fmt"
	"sort"

	"citylaw/internal/domain"
)

// AssertCityInCluster fails when cluster does not list citySlug.
func AssertCityInCluster(cluster domain.ClusterFile, citySlug domain.Slug) error {
	if cluster.HasCity(citySlug) {
		return nil
	}
	return &ValidationError{
		Kind: KindCrossReference, Pack: PackCity, Slug: citySlug.String(), Field: "cluster.id",
		Detail: fmt.Sprintf(
			"city slug %q not found in cluster %q. Fix either the city pack cluster assignment or the cluster city list",
			citySlug, cluster.ClusterID),
	}
}

// Reason classifies an inventory inconsistency.
type Reason string

const (
	// ReasonUnknownCluster: a city pack names a cluster with no cluster file.
	ReasonUnknownCluster Reason = "unknown_cluster"
	// ReasonNotInCluster: a city pack names a cluster that does not list it.
	ReasonNotInCluster Reason = "not_in_cluster"
	// ReasonOrphanCity: a cluster lists a slug that has no city pack.
	ReasonOrphanCity Reason = "orphan_city"
)

// Inconsistency is a disagreement between city packs and cluster files.
type Inconsistency struct {
	Reason  Reason
	City    domain.Slug
	Cluster domain.ClusterID
}

// Error implements the error interface.
func (i Inconsistency) Error() string {
	switch i.Reason {
	case ReasonUnknownCluster:
		return fmt.Sprintf("city %q references missing cluster %q", i.City, i.Cluster)
	case ReasonNotInCluster:
		return fmt.Sprintf("city %q is not listed in cluster %q", i.City, i.Cluster)
	case ReasonOrphanCity:
		return fmt.Sprintf("cluster %q lists city %q which has no city pack", i.Cluster, i.City)
	default:
		return fmt.Sprintf("inconsistent city %q / cluster %q", i.City, i.Cluster)
	}
}

// Is lets errors.Is(inc, ErrCrossReference) match.
func (i Inconsistency) Is(target error) bool { return target == ErrCrossReference }

// CrossCheck compares every city pack against every cluster file and returns
// the inconsistencies in a stable order.
func CrossCheck(cities []domain.CityPack, clusters []domain.ClusterFile) []Inconsistency {
	byID := make(map[domain.ClusterID]domain.ClusterFile, len(clusters))
	for _, c := range clusters {
		byID[c.ClusterID] = c
	}
	known := make(map[domain.Slug]bool, len(cities))
	for _, p := range cities {
		known[p.Slug] = true
	}

	var out []Inconsistency
	for _, p := range cities {
		id, ok := p.ClusterID()
		if !ok {
			continue
		}
		c, exists := byID[id]
		switch {
		case !exists:
			out = append(out, Inconsistency{Reason: ReasonUnknownCluster, City: p.Slug, Cluster: id})
		case !c.HasCity(p.Slug):
			out = append(out, Inconsistency{Reason: ReasonNotInCluster, City: p.Slug, Cluster: id})
		}
	}
	for _, c := range clusters {
		for _, city := range c.Cities {
			if !known[city.Slug] {
				out = append(out, Inconsistency{Reason: ReasonOrphanCity, City: city.Slug, Cluster: c.ClusterID})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cluster != out[j].Cluster {
			return out[i].Cluster < out[j].Cluster
		}
		return out[i].City < out[j].City
	})
	return out
}
