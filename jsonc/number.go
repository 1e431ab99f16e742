package jsonc

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/chandan-cmd-dev/jsonc-go/jsonc/internal/apdctx"
)

// Int is an arbitrary precision JSON integer.
type Int struct{ V *big.Int }

func IntFromString(s string) (Int, error) {
	z := new(big.Int)
	if _, ok := z.SetString(s, 10); !ok {
		return Int{}, fmt.Errorf("jsonc: bad integer %q", s)
	}
	return Int{V: z}, nil
}

func (i Int) String() string { return i.V.String() }

// MarshalJSON writes i as a bare JSON number.
func (i Int) MarshalJSON() ([]byte, error) { return []byte(i.V.String()), nil }

// Decimal is a JSON number with a fraction or an exponent, kept exactly.
type Decimal struct{ D apd.Decimal }

// DecFromString parses s. Literals with more significant digits than
// apdctx.Ctx can hold are rejected.
func DecFromString(s string) (Decimal, error) {
	var d apd.Decimal
	_, cond, err := apdctx.Ctx.SetString(&d, s)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "jsonc: bad decimal %q", s)
	}
	if cond.Inexact() {
		return Decimal{}, fmt.Errorf("jsonc: decimal %q exceeds %d significant digits", s, apdctx.Ctx.Precision)
	}
	return Decimal{D: d}, nil
}

func (d Decimal) String() string { return d.D.String() }

// MarshalJSON writes d as a bare JSON number.
func (d Decimal) MarshalJSON() ([]byte, error) { return []byte(d.D.String()), nil }

// ParseNumber converts a JSON number literal to an Int when it has neither a
// fraction nor an exponent, and to a Decimal otherwise. "-0" becomes a Decimal
// since big.Int has no negative zero.
func ParseNumber(n json.Number) (any, error) {
	s := n.String()
	if s != "-0" && !strings.ContainsAny(s, ".eE") {
		return IntFromString(s)
	}
	return DecFromString(s)
}

// convertNumbers replaces every json.Number in a value decoded with
// UseNumber by an Int or a Decimal.
func convertNumbers(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		return ParseNumber(x)
	case map[string]any:
		for k, e := range x {
			c, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			x[k] = c
		}
	case []any:
		for i, e := range x {
			c, err := convertNumbers(e)
			if err != nil {
				return nil, err
			}
			x[i] = c
		}
	}
	return v, nil
}
