package zomato

import (
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Params is the open set of query parameters forwarded to the API. Values may
// be strings, integers, floats, bools, fmt.Stringers or slices of those;
// slices are sent comma separated ("74,75,76"). A combined coordinate may be
// stored under CoordinateKey.
type Params map[string]any

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every entry of others into p, later maps winning.
func (p Params) Merge(others ...Params) Params {
	for _, o := range others {
		for k, v := range o {
			p[k] = v
		}
	}
	return p
}

func (p Params) setString(key, v string) {
	if v != "" {
		p[key] = v
	}
}

func (p Params) setInt(key string, v int) {
	if v != 0 {
		p[key] = v
	}
}

func (p Params) setFloat(key string, v float64) {
	if v != 0 {
		p[key] = v
	}
}

func (p Params) setInts(key string, v []int) {
	if len(v) > 0 {
		p[key] = v
	}
}

func (p Params) setCoordinate(c Coordinate) {
	if !c.IsZero() {
		p[CoordinateKey] = c
	}
}

// normalize splits a combined coordinate into "lat" and "lon" on a copy of p.
func (p Params) normalize() (Params, error) {
	out := p.Clone()
	raw, ok := out[CoordinateKey]
	if !ok {
		return out, nil
	}

	lat, lon, err := splitCoordinate(raw)
	if err != nil {
		return nil, err
	}
	delete(out, CoordinateKey)
	out["lat"] = lat
	out["lon"] = lon
	return out, nil
}

// Values normalizes p and renders it as a query string set. Nil values are
// skipped.
func (p Params) Values() (url.Values, error) {
	normalized, err := p.normalize()
	if err != nil {
		return nil, err
	}

	values := make(url.Values, len(normalized))
	for key, raw := range normalized {
		if raw == nil {
			continue
		}
		s, err := paramString(raw)
		if err != nil {
			return nil, &ParamError{Key: key, Value: raw, Err: err}
		}
		values.Set(key, s)
	}
	return values, nil
}

func paramString(v any) (string, error) {
	switch v.(type) {
	case string, []byte:
		return cast.ToStringE(v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := cast.ToStringE(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}
	return cast.ToStringE(v)
}
