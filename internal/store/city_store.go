package store

import (
	"os"
	"path/filepath"
	"time"

	"citylaw/internal/domain"
	"citylaw/internal/inventory"
)

const citiesDir = "cities"

// CityFileStore reads city packs from {dataDir}/cities.
type CityFileStore struct {
	dir string
}

// NewCityFileStore returns a CityFileStore rooted at dataDir.
func NewCityFileStore(dataDir string) *CityFileStore {
	return &CityFileStore{dir: filepath.Join(dataDir, citiesDir)}
}

// Dir returns the directory holding the city packs.
func (s *CityFileStore) Dir() string { return s.dir }

// Path returns the file path of the pack for slug.
func (s *CityFileStore) Path(slug domain.Slug) string {
	return filepath.Join(s.dir, slug.String()+packExt)
}

// LoadCity reads and validates the pack for slug.
func (s *CityFileStore) LoadCity(slug domain.Slug) (domain.CityPack, bool, error) {
	if !validStem(slug.String()) {
		return domain.CityPack{}, false, nil
	}
	b, err := readFile(s.Path(slug))
	if err != nil {
		return domain.CityPack{}, false, err
	}
	if b == nil {
		return domain.CityPack{}, false, nil
	}
	pack, err := inventory.DecodeCity(slug, b)
	if err != nil {
		return domain.CityPack{}, true, err
	}
	return pack, true, nil
}

// ListCities returns the slugs of every city pack, sorted.
func (s *CityFileStore) ListCities() ([]domain.Slug, error) {
	stems, err := listStems(s.dir)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Slug, len(stems))
	for i, stem := range stems {
		out[i] = domain.Slug(stem)
	}
	return out, nil
}

// CityModTime returns the modification time of the pack for slug.
func (s *CityFileStore) CityModTime(slug domain.Slug) (time.Time, error) {
	fi, err := os.Stat(s.Path(slug))
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

// Compile-time assertion that CityFileStore implements domain.CityStore.
var _ domain.CityStore = (*CityFileStore)(nil)
