package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// ApexPack returns a well-formed city pack for Apex, NC in the wake-nc cluster.
func ApexPack() map[string]any {
	return map[string]any{
		"city":       "Apex",
		"state":      "North Carolina",
		"state_abbr": "NC",
		"county":     "Wake County",
		"slug":       "apex-nc",
		"practice":   "dui",
		"courts": []any{
			map[string]any{"name": "Wake County District Court", "location": "Raleigh, NC"},
			map[string]any{"name": "Wake County Superior Court", "location": "Raleigh, NC"},
		},
		"law_enforcement": []any{
			"Apex Police Department",
			"Wake County Sheriff's Office",
			"North Carolina State Highway Patrol",
		},
		"dmv": map[string]any{
			"agency": "North Carolina Division of Motor Vehicles",
			"notes":  "A **civil revocation** may follow a chemical test refusal.",
		},
		"geography": map[string]any{
			"metro":         "Raleigh-Durham",
			"nearby_cities": []any{"Cary", "Holly Springs"},
		},
		"cluster": map[string]any{"id": "wake-nc", "name": "Wake County"},
	}
}

// CityPack returns a minimal well-formed city pack for slug with no cluster.
func CityPack(slug, city string) map[string]any {
	return map[string]any{
		"city":            city,
		"state":           "North Carolina",
		"state_abbr":      "NC",
		"county":          "Wake County",
		"slug":            slug,
		"practice":        "dui",
		"courts":          []any{map[string]any{"name": city + " District Court", "location": city + ", NC"}},
		"law_enforcement": []any{city + " Police Department"},
		"dmv":             map[string]any{"agency": "North Carolina Division of Motor Vehicles"},
	}
}

// WakeCluster returns a well-formed cluster listing apex-nc and cary-nc.
func WakeCluster() map[string]any {
	return map[string]any{
		"cluster_id":   "wake-nc",
		"cluster_name": "Wake County",
		"state":        "North Carolina",
		"state_abbr":   "NC",
		"counties":     []any{"Wake", "Johnston"},
		"cities": []any{
			map[string]any{"slug": "apex-nc", "city": "Apex", "state_abbr": "NC"},
			map[string]any{"slug": "cary-nc", "city": "Cary", "state_abbr": "NC"},
		},
		"pricing": map[string]any{
			"dui":             map[string]any{"monthly_usd": 1500, "setup_usd": 250},
			"personal_injury": map[string]any{"monthly_usd": 2000},
		},
		"sponsorships": map[string]any{
			"dui":             map[string]any{"status": "available", "sponsor_id": nil, "effective_date": nil},
			"personal_injury": map[string]any{"status": "sold", "sponsor_id": "firm-42", "effective_date": "2026-01-01"},
		},
		"meta": map[string]any{"version": 1},
	}
}

// WriteCity writes pack to {dataDir}/cities/{slug}.json.
func WriteCity(t testing.TB, dataDir, slug string, pack any) string {
	t.Helper()
	return writePack(t, filepath.Join(dataDir, "cities", slug+".json"), pack)
}

// WriteCluster writes c to {dataDir}/clusters/{id}.json.
func WriteCluster(t testing.TB, dataDir, id string, c any) string {
	t.Helper()
	return writePack(t, filepath.Join(dataDir, "clusters", id+".json"), c)
}

// WriteRaw writes b verbatim to {dataDir}/{rel}.
func WriteRaw(t testing.TB, dataDir, rel string, b []byte) string {
	t.Helper()
	path := filepath.Join(dataDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func writePack(t testing.TB, path string, v any) string {
	t.Helper()
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal pack: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
