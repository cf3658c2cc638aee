/*
Package css provides CSS dimensions for font sizes.

Font sizes may be given as absolute values ("12pt", "16px"), relative to a
base size ("1.2em", "120%", "large") or by inheritance keywords. Type DimenT
is an option type capturing these variants; a base size resolves it to an
absolute dimension.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.css'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.css")
}
