/*
Package cssconf creates style configurations from CSS stylesheets.

Clients often keep the look of rich text labels in a stylesheet rather than in
code. Package cssconf reads a small, fixed subset of CSS and maps it to a
style.Config:

	body     { font-family: Helvetica; font-size: 14pt; color: #333 }
	b, strong { font-weight: bold; color: black }
	i, em    { font-style: italic; color: rgb(64, 64, 64) }
	b i      { color: darkred }
	:root    { font-size: 16px }

Selectors for the normal variant are body, p and (for everything but
font-size) html, :root and *. Font sizes on html, :root or * set the default
font size of the configuration; relative sizes everywhere else resolve against
it. Bold selectors are b and strong, italic selectors are i and em; a
descendant selector combining a bold and an italic element addresses the
bold-italic variant.

Properties are color, font-family, font-size, font-weight and font-style.
Anything else is reported as an error, but never keeps the rest of a
stylesheet from being applied. Parsing is done by
github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssconf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.style'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.style")
}
