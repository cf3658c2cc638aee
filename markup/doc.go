/*
Package markup converts a small subset of HTML into styled text runs.

Rich text labels are often fed with loosely authored snippets like

	<p>The <b>quick</b> brown fox <i>jumps</i> over the <b><i>lazy</i></b> dog</p>

Convert turns such a snippet into a Document, i.e. an ordered list of runs.
Every run carries a piece of text together with the font and color resolved
from a style.Config. A presentation layer concatenates the run texts, measures
each run with its font and paints it in its color.

Recognized Markup

Tag names are case-insensitive.

	<p>, </p>                    line separator (both open and close)
	<br>, <br/>, <br />, </br>   line separator
	<b>, <strong>                bold on
	</b>, </strong>              bold off
	<i>, <em>                    italic on
	</i>, </em>                  italic off

Every other tag is removed from the output without changing the style.
Attributes are ignored, entities are not decoded. As in HTML, a trailing
slash does not close a tag: "<b/>" switches bold on like "<b>".

Bold and italic are flags, not counters: in "<b>x<b>y</b>z</b>" the first
closing tag already switches bold off for "z". Closing tags without a
matching opening tag are harmless.

Malformed Input

Conversion never fails. A '<' without a closing '>' is taken literally, up
to the end of the input, so "abc<b" yields a single run "abc<b".

Concurrency

Convert is a pure function. It does not modify its configuration, so
concurrent conversions may share a style.Config.

Status

Early draft—API may change frequently. Please stay patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.markup'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.markup")
}
