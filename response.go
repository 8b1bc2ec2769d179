package gqlres

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// Response is a decoded GraphQL response envelope: the data tree, the error
// list, and any extensions the server attached. A missing "data" entry reads
// as a nil Data, the implicit null root.
type Response struct {
	Data       any
	Errors     []*ResponseError
	Extensions D
}

// ParseResponse decodes a raw GraphQL response body. Objects decode to D
// (field order preserved), arrays to A, and integral numbers to int64 or
// *big.Int so values like big-integer source locations survive the decode
// exactly.
func ParseResponse(body []byte) (*Response, error) {
	var doc D
	if err := json.Unmarshal(body, &doc, json.WithUnmarshalers(Unmarshalers())); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return NewResponse(doc)
}

// NewResponse builds a Response from an already-decoded envelope document.
func NewResponse(doc D) (*Response, error) {
	resp := &Response{}
	for _, entry := range doc {
		switch entry.Key {
		case "data":
			resp.Data = entry.Value
		case "errors":
			errs, err := decodeErrors(entry.Value)
			if err != nil {
				return nil, err
			}
			resp.Errors = errs
		case "extensions":
			if ext, ok := entry.Value.(D); ok {
				resp.Extensions = ext
			}
		}
	}
	return resp, nil
}

// Field resolves path against the response data and associates the errors
// that apply to it. The empty path addresses the whole data tree and owns
// every error.
func (r *Response) Field(path string) (*Field, error) {
	return NewField(r.Data, r.Errors, path)
}

// IsValid reports whether the response carries a non-null data entry. Requests
// that fail before execution, or whose root field errors, produce null data
// and are not valid.
func (r *Response) IsValid() bool {
	return r.Data != nil
}

func decodeErrors(v any) ([]*ResponseError, error) {
	items, ok := v.(A)
	if !ok {
		return nil, fmt.Errorf("decode errors: expected array, got %T", v)
	}
	errs := make([]*ResponseError, 0, len(items))
	for i, item := range items {
		entry, ok := item.(D)
		if !ok {
			return nil, fmt.Errorf("decode errors: entry %d: expected object, got %T", i, item)
		}
		errs = append(errs, newResponseError(entry))
	}
	return errs, nil
}

// newResponseError maps one decoded error object onto a ResponseError.
// Unknown or ill-typed entries are ignored rather than failing the whole
// response; servers are not uniformly careful about the errors section.
func newResponseError(entry D) *ResponseError {
	re := &ResponseError{}
	for _, field := range entry {
		switch field.Key {
		case "message":
			if msg, ok := field.Value.(string); ok {
				re.Message = msg
			}
		case "path":
			if steps, ok := field.Value.(A); ok {
				re.Path = []any(steps)
			}
		case "locations":
			re.Locations = decodeLocations(field.Value)
		case "extensions":
			if ext, ok := field.Value.(D); ok {
				re.Extensions = ext
			}
		}
	}
	return re
}

func decodeLocations(v any) []Location {
	items, ok := v.(A)
	if !ok {
		return nil
	}
	locs := make([]Location, 0, len(items))
	for _, item := range items {
		entry, ok := item.(D)
		if !ok {
			continue
		}
		var loc Location
		for _, field := range entry {
			switch field.Key {
			case "line":
				if n, ok := toInt(field.Value); ok {
					loc.Line = n
				}
			case "column":
				if n, ok := toInt(field.Value); ok {
					loc.Column = n
				}
			}
		}
		locs = append(locs, loc)
	}
	return locs
}
