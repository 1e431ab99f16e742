package apdctx

import "github.com/cockroachdb/apd/v3"

// Ctx is the context used to parse decimal literals: 34 digits
// (decimal128-like), bankers rounding. A literal that does not fit is
// reported as inexact rather than silently rounded.
var Ctx = apd.Context{
	Precision:   34,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Rounding:    apd.RoundHalfEven,
	Traps:       apd.DefaultTraps,
}
