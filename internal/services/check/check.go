package check

import (
	"context"
	"errors"
	"fmt"

	"citylaw/internal/domain"
	"citylaw/internal/inventory"
	"citylaw/internal/logger"
	"citylaw/internal/metrics"
)

// Report is the outcome of one inventory check.
type Report struct {
	Cities   int
	Clusters int
	Problems []error
}

// OK reports whether the inventory is free of problems.
func (r Report) OK() bool { return len(r.Problems) == 0 }

// Err joins every problem into one error, or returns nil.
func (r Report) Err() error { return errors.Join(r.Problems...) }

// Checker validates the data inventory.
type Checker struct {
	cities   domain.CityStore
	clusters domain.ClusterStore
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// New returns a Checker over the given stores. log and m may be nil.
func New(cities domain.CityStore, clusters domain.ClusterStore, log *logger.Logger, m *metrics.Metrics) *Checker {
	if log == nil {
		log = logger.NewNop()
	}
	return &Checker{cities: cities, clusters: clusters, log: log, metrics: m}
}

// Run loads every pack and collects its problems. Each pack stops at its
// first violation; the check continues with the next pack so one run reports
// every bad file. Packs that fail validation are left out of the
// cross-reference pass. A listed pack that cannot be loaded is a MissingFile
// problem. The returned error is reserved for I/O failures.
func (c *Checker) Run(ctx context.Context) (Report, error) {
	var (
		report   Report
		cities   []domain.CityPack
		clusters []domain.ClusterFile
	)

	slugs, err := c.cities.ListCities()
	if err != nil {
		return Report{}, fmt.Errorf("list city packs: %w", err)
	}
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		pack, ok, err := c.cities.LoadCity(slug)
		if err == nil && !ok {
			err = inventory.MissingFile(inventory.PackCity, slug.String(), slug.String()+".json")
		}
		if err != nil {
			if !c.problem(&report, err) {
				return Report{}, err
			}
			continue
		}
		cities = append(cities, pack)
	}
	report.Cities = len(slugs)

	ids, err := c.clusters.ListClusters()
	if err != nil {
		return Report{}, fmt.Errorf("list clusters: %w", err)
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		cluster, ok, err := c.clusters.LoadCluster(id)
		if err == nil && !ok {
			err = inventory.MissingFile(inventory.PackCluster, id.String(), id.String()+".json")
		}
		if err != nil {
			if !c.problem(&report, err) {
				return Report{}, err
			}
			continue
		}
		clusters = append(clusters, cluster)
	}
	report.Clusters = len(ids)

	for _, inc := range inventory.CrossCheck(cities, clusters) {
		c.metrics.ValidationFailed(string(inventory.PackCity), inventory.KindCrossReference.String())
		c.log.Warn("inventory inconsistency", "reason", string(inc.Reason), "city", inc.City.String(), "cluster", inc.Cluster.String())
		report.Problems = append(report.Problems, inc)
	}

	c.log.Info("inventory checked", "cities", report.Cities, "clusters", report.Clusters, "problems", len(report.Problems))
	return report, nil
}

// problem records err when it is a data pack violation and reports whether
// it did.
func (c *Checker) problem(r *Report, err error) bool {
	var ve *inventory.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	c.metrics.ValidationFailed(string(ve.Pack), ve.Kind.String())
	c.log.Warn("invalid data pack", "slug", ve.Slug, "kind", ve.Kind.String(), "error", err)
	r.Problems = append(r.Problems, err)
	return true
}
