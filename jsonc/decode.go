package jsonc

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Unmarshal parses JSON that may include comments and stores the result in
// the value pointed to by v, like json.Unmarshal. Offsets in a
// *json.SyntaxError refer to the filtered text.
func Unmarshal(data []byte, v any) error {
	clean, err := Strip(data)
	if err != nil {
		return errors.Wrap(err, "jsonc: strip comments")
	}
	return json.Unmarshal(clean, v)
}

// NewDecoder returns a json.Decoder that reads from r through a comment
// filtering Reader.
func NewDecoder(r io.Reader, opts ...Option) *json.Decoder {
	return json.NewDecoder(NewReader(r, opts...))
}

// UnmarshalExact parses JSON that may include comments into generic values
// (map[string]any, []any, string, bool, nil) where numbers are Int or Decimal
// instead of float64.
func UnmarshalExact(data []byte) (any, error) {
	return DecodeExact(bytes.NewReader(data))
}

// DecodeExact is like UnmarshalExact but reads a single JSON value from r.
// Anything other than whitespace or comments after the value is an error.
func DecodeExact(r io.Reader, opts ...Option) (any, error) {
	dec := NewDecoder(r, opts...)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "jsonc: decode")
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return nil, errors.Wrap(err, "jsonc: decode")
	}
	return convertNumbers(v)
}

// Marshal encodes v as plain JSON without escaping HTML characters. Int and
// Decimal values are written as bare numbers.
func Marshal(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
