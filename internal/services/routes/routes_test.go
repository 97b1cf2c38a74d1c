package routes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citylaw/internal/store"
	"citylaw/internal/testutil"
)

func TestRouteFile(t *testing.T) {
	cases := map[string]string{
		"/":                   "index.html",
		"/dui-lawyer":         "dui-lawyer/index.html",
		"/dui-lawyer/apex-nc": "dui-lawyer/apex-nc/index.html",
		"/clusters/wake-nc":   "clusters/wake-nc/index.html",
	}
	for p, want := range cases {
		assert.Equal(t, want, Route{Path: p}.File(), p)
	}
}

func TestEnumerateEmptyData(t *testing.T) {
	dir := t.TempDir()
	e := New(store.NewCityFileStore(dir), store.NewClusterFileStore(dir))

	got, err := e.Enumerate()
	require.NoError(t, err)
	if diff := cmp.Diff(Static(), got); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerate(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteCity(t, dir, "cary-nc", testutil.CityPack("cary-nc", "Cary"))
	testutil.WriteCity(t, dir, "apex-nc", testutil.ApexPack())
	testutil.WriteCluster(t, dir, "wake-nc", testutil.WakeCluster())
	testutil.WriteRaw(t, dir, "cities/README.txt", []byte("ignored"))

	e := New(store.NewCityFileStore(dir), store.NewClusterFileStore(dir))
	got, err := e.Enumerate()
	require.NoError(t, err)

	want := append(Static(),
		Route{Path: "/dui-lawyer/apex-nc", Class: ClassCity, Slug: "apex-nc"},
		Route{Path: "/dui-lawyer/cary-nc", Class: ClassCity, Slug: "cary-nc"},
		Route{Path: "/clusters/wake-nc", Class: ClassCluster, Slug: "wake-nc"},
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}
