package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Property is a raw value for a CSS-like style property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

func (p Property) normalized() string {
	return strings.ToLower(strings.TrimSpace(string(p)))
}

// Color interprets a property as a color. Supported are color names
// ("red", "darkslategray"), hex notation ("#f0c", "#ff1034") and functional
// notation "rgb(255, 0, 0)" / "rgba(255, 0, 0, 0.5)".
func (p Property) Color() (color.Color, error) {
	s := p.normalized()
	switch {
	case s == "":
		return nil, fmt.Errorf("empty color value")
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("illegal hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 0xff}, nil
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// parseRGBFunc parses "rgb(r,g,b)" and "rgba(r,g,b,a)", with components
// in 0…255 and alpha in 0…1.
func parseRGBFunc(s string) (color.Color, error) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if lp < 0 || rp < lp {
		return nil, fmt.Errorf("malformed color function %q", s)
	}
	fn := strings.TrimSpace(s[:lp])
	args := strings.Split(s[lp+1:rp], ",")
	if (fn == "rgb" && len(args) != 3) || (fn == "rgba" && len(args) != 4) || (fn != "rgb" && fn != "rgba") {
		return nil, fmt.Errorf("malformed color function %q", s)
	}
	var comp [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(args[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("color component %q out of range in %q", args[i], s)
		}
		comp[i] = uint8(n)
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return nil, fmt.Errorf("alpha %q out of range in %q", args[3], s)
		}
		alpha = a
	}
	// color.NRGBA is not premultiplied, which is what CSS notation means
	return color.NRGBA{comp[0], comp[1], comp[2], uint8(alpha*255 + 0.5)}, nil
}

// Weight interprets a property as a font weight: "normal", "bold" or
// one of 100, 200, …, 900.
func (p Property) Weight() (Weight, error) {
	s := p.normalized()
	switch s {
	case "normal":
		return WeightNormal, nil
	case "bold":
		return WeightBold, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return WeightUnset, fmt.Errorf("illegal font weight %q", s)
	}
	return Weight(n), nil
}

// Slant interprets a property as a font style: "normal", "italic" or
// "oblique".
func (p Property) Slant() (Slant, error) {
	switch s := p.normalized(); s {
	case "normal":
		return SlantUpright, nil
	case "italic", "oblique":
		return SlantItalic, nil
	default:
		return SlantUnset, fmt.Errorf("illegal font style %q", s)
	}
}

// Family interprets a property as a font-family list and returns the first
// family, with quotes removed. Case is preserved.
func (p Property) Family() (string, error) {
	first := strings.Split(string(p), ",")[0]
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	if first == "" {
		return "", fmt.Errorf("empty font family in %q", string(p))
	}
	return first, nil
}

// ColorString returns a short, human readable name for a color. It is
// meant for debugging output.
func ColorString(c color.Color) string {
	if c == nil {
		return "unset"
	}
	r, g, b, a := c.RGBA()
	switch {
	case a == 0:
		return "transparent"
	case r == a && g == a && b == a:
		return "white"
	case r == 0 && g == 0 && b == 0:
		if a != 0xffff {
			return fmt.Sprintf("black/%d%%", a*100/0xffff)
		}
		return "black"
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}
