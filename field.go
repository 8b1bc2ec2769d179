package gqlres

// Field is the result of resolving one path against a response: the parsed
// path, the value found there, and the errors that apply to it. A Field is
// built once and never mutated; callers own the result exclusively.
type Field struct {
	// Path is the parsed form of the query path.
	Path Path
	// Value is the value at Path, or nil when the path leads nowhere. An
	// explicit null at the target and a missing key are deliberately not
	// distinguished; both read as "no value".
	Value any
	// Errors holds, in response order, the errors whose own path points at or
	// below this field.
	Errors []*ResponseError
}

// NewField resolves path against a decoded response data tree and collects the
// applicable entries of errs. Fails with ErrInvalidPath when the path string
// violates the grammar, or with ErrTypeMismatch when the path disagrees with
// the shape of the data it traverses. Absence is not a failure: a Field with a
// nil Value is returned.
func NewField(data any, errs []*ResponseError, path string) (*Field, error) {
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	value, _, err := navigate(data, parsed)
	if err != nil {
		return nil, err
	}
	field := &Field{Path: parsed, Value: value}
	for _, e := range errs {
		if e.appliesTo(parsed) {
			field.Errors = append(field.Errors, e)
		}
	}
	return field, nil
}

// HasValue reports whether navigation produced a non-null value.
func (f *Field) HasValue() bool {
	return f.Value != nil
}
