package queries

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhishtagatya/zomathon/pkg/zomato"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write queries file: %v", err)
	}
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	path := writeFile(t, "queries.yaml", `
queries:
  - id: bangalore-pizza
    description: Top rated pizza in Bangalore
    endpoint: Search
    params:
      q: pizza
      entity_id: 4
      entity_type: city
      sort: rating
      order: desc
  - id: mg-road
    endpoint: geocode
    params:
      coordinate: [12.9716, 77.5946]
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := len(reg.All()); got != 2 {
		t.Fatalf("expected 2 queries, got %d", got)
	}
	if ids := reg.IDs(); ids[0] != "bangalore-pizza" || ids[1] != "mg-road" {
		t.Fatalf("unexpected ids %v", ids)
	}

	q, ok := reg.ByID("bangalore-pizza")
	if !ok {
		t.Fatalf("expected query bangalore-pizza to be loaded")
	}
	if q.Endpoint != string(zomato.EndpointSearch) {
		t.Fatalf("expected endpoint to be normalized, got %q", q.Endpoint)
	}

	values, err := q.ZomatoParams().Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if values.Get("entity_id") != "4" || values.Get("sort") != "rating" {
		t.Fatalf("unexpected values %v", values)
	}

	geo, _ := reg.ByID("mg-road")
	values, err = geo.ZomatoParams().Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if values.Get("lat") != "12.9716" || values.Get("lon") != "77.5946" {
		t.Fatalf("expected coordinate to be split, got %v", values)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writeFile(t, "queries.json", `{"queries":[{"id":"cats","endpoint":"categories"}]}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	q, ok := reg.ByID(" cats ")
	if !ok {
		t.Fatalf("expected cats query")
	}
	if q.Params == nil {
		t.Fatalf("expected params to default to an empty map")
	}
}

func TestParamsCopyIsIsolated(t *testing.T) {
	reg, err := ParseRegistry([]byte(`{"queries":[{"id":"r","endpoint":"restaurant","params":{"res_id":1}}]}`), ".json")
	if err != nil {
		t.Fatalf("ParseRegistry: %v", err)
	}
	q, _ := reg.ByID("r")
	p := q.ZomatoParams()
	p["res_id"] = 2

	again, _ := reg.ByID("r")
	if again.Params["res_id"] == 2 {
		t.Fatalf("registry params mutated through copy")
	}
}

func TestLoadRegistryRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"duplicate": `
queries:
  - id: dup
    endpoint: cities
  - id: dup
    endpoint: cuisines
`,
		"unknown endpoint": `
queries:
  - id: x
    endpoint: menu
`,
		"missing id": `
queries:
  - endpoint: cities
`,
		"empty": `queries: []`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadRegistry(writeFile(t, "queries.yaml", content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	if _, err := LoadRegistry(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := ParseRegistry([]byte("x"), ".toml"); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}
