package zomato

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// CoordinateKey is the Params key holding a combined coordinate. It is
// replaced by "lat" and "lon" before a request is sent.
const CoordinateKey = "coordinate"

// Coordinate is either a pre-formatted "<lat> <lon>" string or a structured
// latitude/longitude pair. The zero value means "not set".
type Coordinate struct {
	raw    string
	lat    float64
	lon    float64
	isPair bool
}

// CoordinateString wraps a whitespace separated "<lat> <lon>" string. It is
// not validated until the coordinate is used.
func CoordinateString(s string) Coordinate {
	return Coordinate{raw: s}
}

// CoordinatePair builds a coordinate from numeric latitude and longitude.
func CoordinatePair(lat, lon float64) Coordinate {
	return Coordinate{lat: lat, lon: lon, isPair: true}
}

// ParseCoordinate validates s eagerly.
func ParseCoordinate(s string) (Coordinate, error) {
	c := CoordinateString(s)
	if _, _, err := c.LatLon(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// IsZero reports whether c was never set.
func (c Coordinate) IsZero() bool {
	return !c.isPair && c.raw == ""
}

// LatLon returns the latitude and longitude query values. String forms are
// split on whitespace and the tokens returned verbatim.
func (c Coordinate) LatLon() (lat, lon string, err error) {
	if c.isPair {
		return cast.ToString(c.lat), cast.ToString(c.lon), nil
	}
	fields := strings.Fields(c.raw)
	if len(fields) != 2 {
		return "", "", &CoordinateError{Input: c.raw, Parts: len(fields)}
	}
	return fields[0], fields[1], nil
}

// String renders the combined "<lat> <lon>" form.
func (c Coordinate) String() string {
	if c.isPair {
		return cast.ToString(c.lat) + " " + cast.ToString(c.lon)
	}
	return c.raw
}

// splitCoordinate accepts every shape a caller may put under CoordinateKey:
// a Coordinate, a string, or any two element slice/array.
func splitCoordinate(v any) (lat, lon string, err error) {
	switch c := v.(type) {
	case Coordinate:
		return c.LatLon()
	case *Coordinate:
		if c == nil {
			return "", "", &CoordinateError{Parts: 0}
		}
		return c.LatLon()
	case string:
		return CoordinateString(c).LatLon()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return "", "", &CoordinateError{Input: cast.ToString(v), Parts: 1}
	}
	if rv.Len() != 2 {
		return "", "", &CoordinateError{Input: joinAny(rv), Parts: rv.Len()}
	}

	lat, err = cast.ToStringE(rv.Index(0).Interface())
	if err != nil {
		return "", "", &ParamError{Key: CoordinateKey, Value: v, Err: err}
	}
	lon, err = cast.ToStringE(rv.Index(1).Interface())
	if err != nil {
		return "", "", &ParamError{Key: CoordinateKey, Value: v, Err: err}
	}
	return lat, lon, nil
}

func joinAny(rv reflect.Value) string {
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts = append(parts, cast.ToString(rv.Index(i).Interface()))
	}
	return strings.Join(parts, " ")
}
