package style

import (
	"image/color"

	"github.com/npillmayer/tyse/core/dimen"
)

// Config maps style variants to fonts and colors. Fonts and colors which are
// left unset fall back to the normal variant or to system defaults, see
// package documentation.
//
// The field set is the complete configuration surface of the converter.
type Config struct {
	NormalFont      Font
	BoldFont        Font
	ItalicFont      Font
	BoldItalicFont  Font
	NormalColor     color.Color
	BoldColor       color.Color
	ItalicColor     color.Color
	BoldItalicColor color.Color
	DefaultFontSize dimen.DU // size for fonts not configured otherwise; 0 means 18pt
}

// NewConfig creates a configuration with every variant unset, a default
// font size of 18pt and black as the normal text color.
func NewConfig() *Config {
	return &Config{
		NormalColor:     color.Black,
		DefaultFontSize: DefaultFontSize,
	}
}

// Clone returns a shallow copy of conf. Colors are shared, which is fine
// as long as clients use immutable color values like color.RGBA.
func (conf *Config) Clone() *Config {
	c := *conf
	return &c
}

// FontSize returns the effective default font size.
func (conf *Config) FontSize() dimen.DU {
	if conf.DefaultFontSize <= 0 {
		return DefaultFontSize
	}
	return conf.DefaultFontSize
}

// Font returns the font configured for variant v, without any fallback.
func (conf *Config) Font(v Variant) Font {
	switch v {
	case Bold:
		return conf.BoldFont
	case Italic:
		return conf.ItalicFont
	case BoldItalic:
		return conf.BoldItalicFont
	}
	return conf.NormalFont
}

// SetFont sets the font for variant v.
func (conf *Config) SetFont(v Variant, f Font) {
	switch v {
	case Bold:
		conf.BoldFont = f
	case Italic:
		conf.ItalicFont = f
	case BoldItalic:
		conf.BoldItalicFont = f
	default:
		conf.NormalFont = f
	}
}

// Color returns the color configured for variant v, without any fallback.
func (conf *Config) Color(v Variant) color.Color {
	switch v {
	case Bold:
		return conf.BoldColor
	case Italic:
		return conf.ItalicColor
	case BoldItalic:
		return conf.BoldItalicColor
	}
	return conf.NormalColor
}

// SetColor sets the color for variant v.
func (conf *Config) SetColor(v Variant, c color.Color) {
	switch v {
	case Bold:
		conf.BoldColor = c
	case Italic:
		conf.ItalicColor = c
	case BoldItalic:
		conf.BoldItalicColor = c
	default:
		conf.NormalColor = c
	}
}

// Resolve returns the font and color to use for text in variant v.
// Resolve never returns an unset font or a nil color.
func (conf *Config) Resolve(v Variant) (Font, color.Color) {
	return conf.ResolveFont(v), conf.ResolveColor(v)
}

// ResolveFont returns the font for variant v, applying fallbacks:
// a configured variant font is used as is (with family and size completed
// from defaults), an unset variant font falls back to the normal font and,
// if that is unset too, to DefaultFamily with the weight and slant of v.
func (conf *Config) ResolveFont(v Variant) Font {
	size := conf.FontSize()
	if f := conf.Font(v); !f.IsZero() {
		return f.complete(v, size)
	}
	if v != Normal && !conf.NormalFont.IsZero() {
		tracer().Debugf("no font configured for %s, using normal font", v)
		return conf.NormalFont.complete(Normal, size)
	}
	return Font{}.complete(v, size)
}

// ResolveColor returns the color for variant v. Unset variant colors fall
// back to the normal color, an unset normal color to black.
func (conf *Config) ResolveColor(v Variant) color.Color {
	if c := conf.Color(v); c != nil {
		return c
	}
	if conf.NormalColor != nil {
		return conf.NormalColor
	}
	return color.Black
}
