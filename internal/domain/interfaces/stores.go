package interfaces

import (
	"time"

	domaintypes "citylaw/internal/domain/types"
)

// CityStore reads validated city packs from disk.
type CityStore interface {
	// LoadCity returns ok=false when no pack file exists for slug. A file that
	// exists but fails validation yields ok=true and a non-nil error.
	LoadCity(slug domaintypes.Slug) (domaintypes.CityPack, bool, error)
	ListCities() ([]domaintypes.Slug, error)
	CityModTime(slug domaintypes.Slug) (time.Time, error)
}

// ClusterStore reads validated cluster files from disk.
type ClusterStore interface {
	LoadCluster(id domaintypes.ClusterID) (domaintypes.ClusterFile, bool, error)
	ListClusters() ([]domaintypes.ClusterID, error)
	ClusterModTime(id domaintypes.ClusterID) (time.Time, error)
}

// OutputStore receives the files of a static build. Files written between
// Stage and Commit become visible together; Discard abandons them.
type OutputStore interface {
	Stage() error
	Commit() error
	Discard() error
	WriteFile(rel string, b []byte) error
	WriteJSON(rel string, v any) error
	Root() string
}
