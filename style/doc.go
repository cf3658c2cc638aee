/*
Package style holds the styling vocabulary for rich text runs: font
descriptors, colors, the bold/italic style state and a configuration which
maps every style variant to a concrete (font, color) pair.

A Config is what a presentation layer hands to the markup converter. It
carries four font/color pairs (normal, bold, italic, bold-italic) plus a
default font size. Variants left unset fall back in a well defined way:

	color: variant color → normal color → black
	font:  variant font  → normal font  → DefaultFamily at the default size,
	       with the weight and slant of the requested variant

Configs are plain values. The package never mutates a Config, so a single
Config may be shared between goroutines as long as clients do not change it
while conversions are in flight.

Status

Early draft—API may change frequently. Please stay patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.style'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.style")
}
