package gqlres

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch reports a path segment whose expected shape (object or
// array) disagrees with the value actually found at that position.
var ErrTypeMismatch = errors.New("type mismatch")

// navigate walks root along path. ok is false when the walk ends without a
// value: a null root, a missing key, an out-of-range index, or a null
// encountered before the final segment. A null is checked before any shape
// test, so a path reaching below a null ancestor is absent, never mismatched.
// A null arrived at through the final segment is still found; collapsing it to
// "no value" is the Field layer's call. Both D and map[string]any documents
// are supported, as are A and []any arrays.
func navigate(root any, path Path) (value any, ok bool, err error) {
	if root == nil {
		return nil, false, nil
	}
	current := root
	for i, seg := range path {
		if current == nil {
			return nil, false, nil
		}
		if seg.IsIndex {
			elems, isArray := asArray(current)
			if !isArray {
				return nil, false, mismatch(path, i, "an array")
			}
			if seg.Index >= len(elems) {
				return nil, false, nil
			}
			current = elems[seg.Index]
			continue
		}
		val, present, isObject := lookup(current, seg.Name)
		if !isObject {
			return nil, false, mismatch(path, i, "an object")
		}
		if !present {
			return nil, false, nil
		}
		current = val
	}
	return current, true, nil
}

func mismatch(path Path, i int, want string) error {
	return fmt.Errorf("%w: path '%s' expects %s at segment %d", ErrTypeMismatch, path, want, i)
}

func asArray(v any) ([]any, bool) {
	switch arr := v.(type) {
	case A:
		return arr, true
	case []any:
		return arr, true
	}
	return nil, false
}

func lookup(v any, key string) (val any, present bool, isObject bool) {
	switch doc := v.(type) {
	case D:
		val, present = doc.Get(key)
		return val, present, true
	case map[string]any:
		val, present = doc[key]
		return val, present, true
	}
	return nil, false, false
}
