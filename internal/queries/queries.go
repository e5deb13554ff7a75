package queries

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhishtagatya/zomathon/pkg/zomato"
	"gopkg.in/yaml.v3"
)

// Query is a named, saved API call: one endpoint plus its parameters.
type Query struct {
	ID          string         `json:"id" yaml:"id"`
	Description string         `json:"description" yaml:"description"`
	Endpoint    string         `json:"endpoint" yaml:"endpoint"`
	Params      map[string]any `json:"params" yaml:"params"`
}

// ZomatoParams returns a fresh copy of the query parameters.
func (q Query) ZomatoParams() zomato.Params {
	return zomato.Params(q.Params).Clone()
}

type file struct {
	Queries []Query `json:"queries" yaml:"queries"`
}

// Registry holds saved queries keyed by id.
type Registry struct {
	queries []Query
	idx     map[string]Query
}

// LoadRegistry loads a saved-query registry from a YAML or JSON file.
func LoadRegistry(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("queries file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read queries file: %w", err)
	}

	return ParseRegistry(raw, filepath.Ext(path))
}

// ParseRegistry decodes data as YAML or JSON; ext picks the decoder when set.
func ParseRegistry(data []byte, ext string) (*Registry, error) {
	f, err := parseFile(data, ext)
	if err != nil {
		return nil, err
	}
	if len(f.Queries) == 0 {
		return nil, errors.New("queries file contains no queries entries")
	}

	reg := &Registry{
		queries: make([]Query, 0, len(f.Queries)),
		idx:     make(map[string]Query, len(f.Queries)),
	}
	for i := range f.Queries {
		q := sanitizeQuery(f.Queries[i])
		if err := validateQuery(q); err != nil {
			return nil, fmt.Errorf("query[%d]: %w", i, err)
		}
		if _, exists := reg.idx[q.ID]; exists {
			return nil, fmt.Errorf("duplicate query id %q", q.ID)
		}
		reg.queries = append(reg.queries, q)
		reg.idx[q.ID] = q
	}
	return reg, nil
}

type unmarshalFn func([]byte, any) error

func parseFile(data []byte, ext string) (file, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	var errs []error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var f file
		if err := d.fn(data, &f); err != nil {
			errs = append(errs, fmt.Errorf("decode %s queries: %w", d.name, err))
			continue
		}
		return f, nil
	}

	if len(errs) > 0 {
		return file{}, errors.Join(errs...)
	}
	return file{}, fmt.Errorf("queries file extension %q not recognized (expected .yaml, .yml or .json)", ext)
}

func sanitizeQuery(q Query) Query {
	q.ID = strings.TrimSpace(q.ID)
	q.Description = strings.TrimSpace(q.Description)
	q.Endpoint = strings.ToLower(strings.TrimSpace(q.Endpoint))
	if q.Params == nil {
		q.Params = map[string]any{}
	}
	return q
}

func validateQuery(q Query) error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	if q.Endpoint == "" {
		return fmt.Errorf("endpoint is required for query %q", q.ID)
	}
	if !zomato.KnownEndpoint(q.Endpoint) {
		return fmt.Errorf("unknown endpoint %q for query %q", q.Endpoint, q.ID)
	}
	return nil
}

// All returns a copy of the loaded queries in file order.
func (r *Registry) All() []Query {
	if r == nil {
		return nil
	}
	out := make([]Query, len(r.queries))
	copy(out, r.queries)
	return out
}

// IDs returns the sorted query ids.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.idx))
	for id := range r.idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByID returns the query with the given id, if loaded.
func (r *Registry) ByID(id string) (Query, bool) {
	if r == nil {
		return Query{}, false
	}
	q, ok := r.idx[strings.TrimSpace(id)]
	return q, ok
}
