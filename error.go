package gqlres

import (
	"math"
	"math/big"
)

// Location is a line/column position in the request document that an error
// refers to.
type Location struct {
	Line   int
	Column int
}

// ResponseError is a single error entry from a GraphQL response. Path holds
// the raw steps as decoded from the wire: field names as strings and list
// indices as numbers. A nil Path means the error is not tied to any field.
type ResponseError struct {
	Message    string
	Path       []any
	Locations  []Location
	Extensions D
}

// PathString renders the error's path in the dotted form accepted by
// ParsePath, e.g. "me.friends[0].name". Empty when the error carries no path.
func (e *ResponseError) PathString() string {
	return e.parsedPath().String()
}

// parsedPath converts the raw wire steps into the same segment representation
// used for query paths. Steps that are neither strings nor integral numbers
// are skipped.
func (e *ResponseError) parsedPath() Path {
	path := make(Path, 0, len(e.Path))
	for _, step := range e.Path {
		if name, ok := step.(string); ok {
			path = append(path, FieldSegment(name))
			continue
		}
		if index, ok := toInt(step); ok {
			path = append(path, IndexSegment(index))
		}
	}
	return path
}

// appliesTo reports whether the error belongs to the field at query. The root
// query owns every error. Otherwise the error's own path must lie on the same
// lineage as the query: at it, on an ancestor of it, or nested below it.
// Errors on a diverging branch, or with no path at all, do not apply.
func (e *ResponseError) appliesTo(query Path) bool {
	if len(query) == 0 {
		return true
	}
	if e.Path == nil {
		return false
	}
	path := e.parsedPath()
	shared := min(len(path), len(query))
	for i := 0; i < shared; i++ {
		if path[i] != query[i] {
			return false
		}
	}
	return true
}

// toInt converts any numeric value the decoder produces to an int without
// precision loss. Reports false for non-numeric values, fractional floats,
// and integers outside the int range.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if int64(int(n)) != n {
			return 0, false
		}
		return int(n), true
	case float64:
		// float64(MaxInt64) rounds up to 2^63, which no int64 holds.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return toInt(int64(n))
	case *big.Int:
		if !n.IsInt64() {
			return 0, false
		}
		return toInt(n.Int64())
	}
	return 0, false
}
