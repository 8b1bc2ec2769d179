package gqlres

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns the full set of gqlres unmarshalers allowing decoding
// into:
//   - any/interface{} -> objects as D, arrays as A, numbers preserved exactly
//   - *D              -> direct ordered object decoding
//   - *A              -> direct array decoding
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalValue(),
		unmarshalDocument(),
		unmarshalCollection(),
	)
}

// unmarshalValue returns a custom JSON unmarshaller that:
//   - Wraps JSON objects as type D (ordered document) rather than map[string]any
//   - Wraps JSON arrays as type A so callers can distinguish from []any
//   - Decodes numbers without losing precision: integral literals become int64,
//     integers beyond int64 become *big.Int, everything else float64
//   - Leaves string, bool and null values to the default logic by returning
//     json.SkipFunc.
//
// Empty objects ({}) produce an empty D; empty arrays ([]) produce an empty A.
func unmarshalValue() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			doc, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = doc
			return nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		case '0':
			num, err := decodeNumber(dec)
			if err != nil {
				return err
			}
			*v = num
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// unmarshalDocument provides decoding of a JSON object into a *D when the
// target type is *D (ordered key preservation).
func unmarshalDocument() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *D) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		doc, err := decodeObject(dec)
		if err != nil {
			return err
		}
		*v = doc
		return nil
	})
}

// unmarshalCollection provides decoding of a JSON array into an *A when the
// target type is *A.
func unmarshalCollection() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *A) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		arr, err := decodeArray(dec)
		if err != nil {
			return err
		}
		*v = arr
		return nil
	})
}

// decodeObject decodes a JSON object into a D, preserving key order.
func decodeObject(dec *jsontext.Decoder) (D, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	doc := D{}
	for dec.PeekKind() != '}' {
		var key string
		if err := json.UnmarshalDecode(dec, &key); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var val any
		if err := json.UnmarshalDecode(dec, &val); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", key, err)
		}
		doc = append(doc, E{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return doc, nil
}

// decodeArray decodes a JSON array into A.
func decodeArray(dec *jsontext.Decoder) (A, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := A{}
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

// decodeNumber reads a number token and keeps integral values exact so they
// survive a decode/re-encode round trip unchanged.
func decodeNumber(dec *jsontext.Decoder) (any, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, fmt.Errorf("read number: %w", err)
	}
	lit := tok.String()
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return n, nil
		}
		if n, ok := new(big.Int).SetString(lit, 10); ok {
			return n, nil
		}
	}
	return tok.Float(), nil
}
