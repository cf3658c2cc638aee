package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/richtext/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS font-size dimensions.
type DimenT struct {
	d     dimen.DU
	scale float64 // factor for relative dimensions
	flags uint32
}

/*
type DimenT
	= Inherit
	| Initial
	| JustDimen dimen
	| FontRel scale
	| Percentage scale
*/

// Inherit creates a dimension which takes the size of the surrounding text.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension which takes the default size.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// EM creates a dimension relative to the base font size.
func EM(scale float64) DimenT {
	return DimenT{scale: scale, flags: dimenEM}
}

// Percentage creates a CSS dimension with a %-relative value, where
// n = 100 denotes the base size.
func Percentage(n float64) DimenT {
	return DimenT{scale: n / 100, flags: dimenPercent}
}

// IsNone is true for the zero value.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsRelative is true for dimensions which need a base size to resolve.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Resolve computes the absolute size of d, given the base size. Inherit,
// initial and unset dimensions resolve to the base size.
func (d DimenT) Resolve(base dimen.DU) dimen.DU {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return d.d
	case d.IsRelative():
		return dimen.DU(math.Round(float64(base) * d.scale))
	}
	return base
}

func (d DimenT) String() string {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return fmt.Sprintf("%v", d.d)
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%g%%", d.scale*100)
	case d.flags&dimenEM > 0:
		return fmt.Sprintf("%gem", d.scale)
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	}
	return "none"
}

// --- Parsing ---------------------------------------------------------------

// CSS absolute-size keywords, relative to the default size ('medium').
var sizeKeywords = map[string]float64{
	"xx-small": 0.6,
	"x-small":  0.75,
	"small":    0.889,
	"medium":   1.0,
	"large":    1.2,
	"x-large":  1.5,
	"xx-large": 2.0,
}

// Units for absolute dimensions, in points.
var unitsInPoints = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
}

// ParseDimen parses a font-size property value, e.g. "12pt", "16px",
// "1.2em", "120%", "large" or "inherit". A bare number is taken as points.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	switch q := style.Property(s); {
	case q.IsEmpty():
		return DimenT{}, fmt.Errorf("empty dimension")
	case q.IsInherit():
		return Inherit(), nil
	case q.IsInitial():
		return Initial(), nil
	}
	if k, ok := sizeKeywords[s]; ok {
		return EM(k), nil
	}
	num, unit := splitUnit(s)
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("illegal dimension %q: %w", s, err)
	}
	if x < 0 {
		return DimenT{}, fmt.Errorf("negative dimension %q", s)
	}
	switch unit {
	case "%":
		return Percentage(x), nil
	case "em", "rem":
		return EM(x), nil
	case "":
		unit = "pt"
	}
	f, ok := unitsInPoints[unit]
	if !ok {
		return DimenT{}, fmt.Errorf("unknown unit %q in dimension %q", unit, s)
	}
	du := dimen.DU(math.Round(x * f * float64(dimen.PT)))
	tracer().Debugf("dimension %q = %v", s, du)
	return JustDimen(du), nil
}

func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 && (s[i-1] == '%' || (s[i-1] >= 'a' && s[i-1] <= 'z')) {
		i--
	}
	return s[:i], s[i:]
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results for each kind of dimension.
type DimenPatterns[T any] struct {
	Inherit  T
	Initial  T
	Just     T
	Relative T
	Default  T
}

// DimenPattern starts an expression match on a dimension.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr selects one of several results depending on a dimension's kind.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern result for the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.IsRelative():
		return patterns.Relative
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}
