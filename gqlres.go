package gqlres

// D represents a decoded JSON object, defined as an ordered collection of
// key-value pairs. Each entry in the document is represented by an E.
type D []E

// A represents a decoded JSON array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document. It consists of a string key and an
// associated value of any type.
type E struct {
	Key   string
	Value any
}

// Get returns the value stored under key and whether the key is present.
// Lookup is a linear scan; response documents are small trees, not indexes.
func (d D) Get(key string) (any, bool) {
	for _, entry := range d {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}
