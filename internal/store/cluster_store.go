package store

import (
	"os"
	"path/filepath"
	"time"

	"citylaw/internal/domain"
	"citylaw/internal/inventory"
)

const clustersDir = "clusters"

// ClusterFileStore reads cluster files from {dataDir}/clusters.
type ClusterFileStore struct {
	dir string
}

// NewClusterFileStore returns a ClusterFileStore rooted at dataDir.
func NewClusterFileStore(dataDir string) *ClusterFileStore {
	return &ClusterFileStore{dir: filepath.Join(dataDir, clustersDir)}
}

// Dir returns the directory holding the cluster files.
func (s *ClusterFileStore) Dir() string { return s.dir }

// Path returns the file path of the cluster file for id.
func (s *ClusterFileStore) Path(id domain.ClusterID) string {
	return filepath.Join(s.dir, id.String()+packExt)
}

// LoadCluster reads and validates the cluster file for id.
func (s *ClusterFileStore) LoadCluster(id domain.ClusterID) (domain.ClusterFile, bool, error) {
	if !validStem(id.String()) {
		return domain.ClusterFile{}, false, nil
	}
	b, err := readFile(s.Path(id))
	if err != nil {
		return domain.ClusterFile{}, false, err
	}
	if b == nil {
		return domain.ClusterFile{}, false, nil
	}
	c, err := inventory.DecodeCluster(id, b)
	if err != nil {
		return domain.ClusterFile{}, true, err
	}
	return c, true, nil
}

// ListClusters returns the ids of every cluster file, sorted.
func (s *ClusterFileStore) ListClusters() ([]domain.ClusterID, error) {
	stems, err := listStems(s.dir)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ClusterID, len(stems))
	for i, stem := range stems {
		out[i] = domain.ClusterID(stem)
	}
	return out, nil
}

// ClusterModTime returns the modification time of the cluster file for id.
func (s *ClusterFileStore) ClusterModTime(id domain.ClusterID) (time.Time, error) {
	fi, err := os.Stat(s.Path(id))
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

// Compile-time assertion that ClusterFileStore implements domain.ClusterStore.
var _ domain.ClusterStore = (*ClusterFileStore)(nil)
