package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// DefaultFamily is the family name used for fonts which have not been
// configured by the client. Presentation layers map it to whatever the
// platform considers its system UI font.
const DefaultFamily = "system-ui"

// DefaultFontSize is the size used if a Config does not state one.
const DefaultFontSize = 18 * dimen.PT

// Weight is a font weight on the CSS scale 100…900.
type Weight uint16

// Common font weights.
const (
	WeightUnset  Weight = 0
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// IsBold is true for weights of 600 and heavier.
func (w Weight) IsBold() bool {
	return w >= 600
}

// Slant is the slant of a font face.
type Slant uint8

// Font slants. Oblique faces map to SlantItalic.
const (
	SlantUnset Slant = iota
	SlantUpright
	SlantItalic
)

func (s Slant) String() string {
	switch s {
	case SlantUpright:
		return "upright"
	case SlantItalic:
		return "italic"
	}
	return "unset"
}

// Font is a font descriptor. The zero value is an unset font.
type Font struct {
	Family string   // font family, e.g. "Helvetica"
	Weight Weight   // CSS weight, 400 = normal, 700 = bold
	Slant  Slant    // upright or italic
	Size   dimen.DU // em-size of the font
}

// IsZero is true for an unset font.
func (f Font) IsZero() bool {
	return f == Font{}
}

func (f Font) String() string {
	if f.IsZero() {
		return "Font(unset)"
	}
	return fmt.Sprintf("Font(%s %d %s %v)", f.Family, f.Weight, f.Slant, f.Size)
}

// complete fills unset fields of a configured font with defaults.
// Weight and slant default to those of variant v.
func (f Font) complete(v Variant, size dimen.DU) Font {
	if f.Family == "" {
		f.Family = DefaultFamily
	}
	if f.Weight == WeightUnset {
		f.Weight = v.weight()
	}
	if f.Slant == SlantUnset {
		f.Slant = v.slant()
	}
	if f.Size == 0 {
		f.Size = size
	}
	return f
}

// --- Style state -----------------------------------------------------------

// State is the style active at a given position of a markup text.
// The zero value is plain text.
type State struct {
	Bold   bool
	Italic bool
}

// Variant returns the style variant for a state.
func (s State) Variant() Variant {
	v := Normal
	if s.Bold {
		v |= Bold
	}
	if s.Italic {
		v |= Italic
	}
	return v
}

// Variant enumerates the four styles a Config knows about.
type Variant uint8

// Style variants. BoldItalic is the combination of Bold and Italic.
const (
	Normal     Variant = 0
	Bold       Variant = 1
	Italic     Variant = 2
	BoldItalic Variant = Bold | Italic
)

// Variants lists all variants in canonical order.
var Variants = []Variant{Normal, Bold, Italic, BoldItalic}

func (v Variant) String() string {
	switch v {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

func (v Variant) weight() Weight {
	if v&Bold != 0 {
		return WeightBold
	}
	return WeightNormal
}

func (v Variant) slant() Slant {
	if v&Italic != 0 {
		return SlantItalic
	}
	return SlantUpright
}
