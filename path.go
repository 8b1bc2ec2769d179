package gqlres

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath reports a field path string that does not conform to the
// dotted/bracketed grammar accepted by ParsePath.
var ErrInvalidPath = errors.New("invalid path")

// Segment is a single navigation step in a Path: either a named object field
// or a non-negative array index. The zero value is a field step with an empty
// name.
type Segment struct {
	// Name is the field name when the segment is a field step.
	Name string
	// Index is the array position when the segment is an index step.
	Index int
	// IsIndex discriminates index steps from field steps.
	IsIndex bool
}

// FieldSegment returns a Segment navigating into the named object field.
func FieldSegment(name string) Segment {
	return Segment{Name: name}
}

// IndexSegment returns a Segment navigating into position i of an array.
func IndexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Path is an ordered sequence of navigation steps through a response document.
// The empty Path addresses the document root.
type Path []Segment

// String renders the path in the same syntax ParsePath accepts: field names
// joined by '.', each index appended as "[n]" with no separator before it.
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		if seg.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Name)
	}
	return b.String()
}

// ParsePath parses a dotted field path such as "me.friends[1].name" into its
// segments. Field names are separated by '.' and may carry one or more
// "[digits]" index suffixes. Whitespace is not trimmed: " me . name " yields
// the field names " me " and " name ". An empty or all-whitespace path
// addresses the document root and parses to an empty Path.
//
// Malformed input fails with an error wrapping ErrInvalidPath whose message
// quotes the original string.
func ParsePath(path string) (Path, error) {
	if strings.TrimSpace(path) == "" {
		return Path{}, nil
	}
	var parsed Path
	for _, token := range strings.Split(path, ".") {
		segs, ok := parseToken(token)
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidPath, path)
		}
		parsed = append(parsed, segs...)
	}
	return parsed, nil
}

// parseToken parses one dot-separated token: a non-empty field name followed
// by zero or more well-formed "[digits]" groups. Anything else, including an
// empty token (produced by a leading, trailing, or doubled '.'), is rejected.
func parseToken(token string) ([]Segment, bool) {
	i := strings.IndexAny(token, "[]")
	if i < 0 {
		if token == "" {
			return nil, false
		}
		return []Segment{FieldSegment(token)}, true
	}
	// A bracket at position zero means an empty field name; a ']' before any
	// '[' is unmatched.
	if i == 0 || token[i] == ']' {
		return nil, false
	}
	segs := []Segment{FieldSegment(token[:i])}
	rest := token[i:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, false
		}
		index, ok := parseIndex(rest[1:end])
		if !ok {
			return nil, false
		}
		segs = append(segs, IndexSegment(index))
		rest = rest[end+1:]
	}
	return segs, true
}

// parseIndex accepts only unsigned decimal digits; strconv.Atoi alone would
// also admit a sign.
func parseIndex(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
