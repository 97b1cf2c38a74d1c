package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citylaw/internal/domain"
	"citylaw/internal/inventory"
	"citylaw/internal/store"
	"citylaw/internal/testutil"
)

func TestCityFileStore_LoadCity_OK(t *testing.T) {
	data := t.TempDir()
	testutil.WriteCity(t, data, "apex-nc", testutil.ApexPack())

	var cities domain.CityStore = store.NewCityFileStore(data)

	pack, ok, err := cities.LoadCity("apex-nc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Apex", pack.City)
	assert.Equal(t, "North Carolina Division of Motor Vehicles", pack.DMV.Agency)
}

func TestCityFileStore_LoadCity_Missing(t *testing.T) {
	cities := store.NewCityFileStore(t.TempDir())

	_, ok, err := cities.LoadCity("apex-nc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCityFileStore_LoadCity_FilenameMismatch(t *testing.T) {
	data := t.TempDir()
	testutil.WriteCity(t, data, "cary-nc", testutil.ApexPack())

	_, ok, err := store.NewCityFileStore(data).LoadCity("cary-nc")
	assert.True(t, ok)
	assert.ErrorIs(t, err, inventory.ErrSlugMismatch)
}

func TestCityFileStore_LoadCity_RejectsTraversal(t *testing.T) {
	data := t.TempDir()
	testutil.WriteRaw(t, data, "secret.json", []byte(`{}`))

	cities := store.NewCityFileStore(data)
	for _, slug := range []domain.Slug{"../secret", "..", ".hidden", "a/b", ""} {
		_, ok, err := cities.LoadCity(slug)
		assert.NoError(t, err, slug)
		assert.False(t, ok, slug)
	}
}

func TestCityFileStore_ListCities(t *testing.T) {
	data := t.TempDir()
	testutil.WriteCity(t, data, "cary-nc", testutil.CityPack("cary-nc", "Cary"))
	testutil.WriteCity(t, data, "apex-nc", testutil.ApexPack())
	testutil.WriteRaw(t, data, "cities/README.md", []byte("notes"))
	testutil.WriteRaw(t, data, "cities/._apex-nc.json", []byte{0, 5, 22, 7})
	testutil.WriteRaw(t, data, "cities/.json", []byte(`{}`))
	require.NoError(t, os.MkdirAll(filepath.Join(data, "cities", "drafts.json"), 0o755))

	slugs, err := store.NewCityFileStore(data).ListCities()
	require.NoError(t, err)
	assert.Equal(t, []domain.Slug{"apex-nc", "cary-nc"}, slugs)
}

func TestClusterFileStore_ListClusters_SkipsHidden(t *testing.T) {
	data := t.TempDir()
	testutil.WriteCluster(t, data, "wake-nc", testutil.WakeCluster())
	testutil.WriteRaw(t, data, "clusters/._wake-nc.json", []byte{0, 5, 22, 7})

	ids, err := store.NewClusterFileStore(data).ListClusters()
	require.NoError(t, err)
	assert.Equal(t, []domain.ClusterID{"wake-nc"}, ids)
}

func TestCityFileStore_ListCities_MissingDir(t *testing.T) {
	slugs, err := store.NewCityFileStore(t.TempDir()).ListCities()
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestCityFileStore_CityModTime(t *testing.T) {
	data := t.TempDir()
	path := testutil.WriteCity(t, data, "apex-nc", testutil.ApexPack())
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, want, want))

	got, err := store.NewCityFileStore(data).CityModTime("apex-nc")
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %s", got)
}

func TestClusterFileStore_LoadCluster(t *testing.T) {
	data := t.TempDir()
	testutil.WriteCluster(t, data, "wake-nc", testutil.WakeCluster())

	var clusters domain.ClusterStore = store.NewClusterFileStore(data)

	c, ok, err := clusters.LoadCluster("wake-nc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Wake County", c.ClusterName)

	_, ok, err = clusters.LoadCluster("durham-nc")
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err := clusters.ListClusters()
	require.NoError(t, err)
	assert.Equal(t, []domain.ClusterID{"wake-nc"}, ids)
}

func TestClusterFileStore_InvalidStatus(t *testing.T) {
	data := t.TempDir()
	c := testutil.WakeCluster()
	c["sponsorships"] = map[string]any{"dui": map[string]any{"status": "pending"}}
	testutil.WriteCluster(t, data, "wake-nc", c)

	_, ok, err := store.NewClusterFileStore(data).LoadCluster("wake-nc")
	assert.True(t, ok)
	assert.ErrorIs(t, err, inventory.ErrInvalidEnumValue)
}

func TestOutputFileStore_StageAndCommit(t *testing.T) {
	root := filepath.Join(t.TempDir(), "public")
	out := store.NewOutputFileStore(root)
	require.NoError(t, out.Stage())

	require.NoError(t, out.WriteFile("dui-lawyer/apex-nc/index.html", []byte("<h1>Apex</h1>")))
	require.NoError(t, out.WriteJSON("build-manifest.json", map[string]int{"pages": 1}))
	assert.NoDirExists(t, root, "staged files stay hidden until commit")

	require.NoError(t, out.Commit())

	b, err := os.ReadFile(filepath.Join(root, "dui-lawyer", "apex-nc", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Apex</h1>", string(b))

	b, err = os.ReadFile(filepath.Join(root, "build-manifest.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pages": 1}`, string(b))

	entries, err := os.ReadDir(filepath.Join(root, "dui-lawyer", "apex-nc"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	// A second build replaces the tree wholesale.
	require.NoError(t, out.Stage())
	require.NoError(t, out.WriteFile("index.html", []byte("home")))
	require.NoError(t, out.Commit())

	entries, err = os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.html", entries[0].Name())

	siblings, err := os.ReadDir(filepath.Dir(root))
	require.NoError(t, err)
	assert.Len(t, siblings, 1, "staging directories are cleaned up")
}

func TestOutputFileStore_DiscardKeepsPublished(t *testing.T) {
	root := t.TempDir()
	testutil.WriteRaw(t, root, "index.html", []byte("previous"))
	out := store.NewOutputFileStore(root)

	require.NoError(t, out.Stage())
	require.NoError(t, out.WriteFile("index.html", []byte("half-built")))
	require.NoError(t, out.Discard())

	b, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "previous", string(b))

	assert.Error(t, out.Commit(), "nothing left to commit")
}

func TestOutputFileStore_RefusesRootlessStage(t *testing.T) {
	for _, dir := range []string{"", ".", "/"} {
		assert.Error(t, store.NewOutputFileStore(dir).Stage(), dir)
	}
}

func TestOutputFileStore_RejectsEscape(t *testing.T) {
	out := store.NewOutputFileStore(t.TempDir())
	assert.Error(t, out.WriteFile("../evil.html", []byte("x")))
	assert.Error(t, out.WriteFile("", []byte("x")))
}
