package markup

import (
	"image/color"
	"strings"

	"github.com/npillmayer/richtext/style"
	"golang.org/x/net/html/atom"
)

// LineSeparator is the default character emitted for paragraphs and
// line breaks.
const LineSeparator = '\n'

// Option configures a conversion.
type Option func(*options)

type options struct {
	linesep  rune
	coalesce bool
}

// WithLineSeparator sets the character emitted for <p>, </p> and <br>.
// Clients preferring Unicode semantics may use U+2028 (LINE SEPARATOR).
func WithLineSeparator(sep rune) Option {
	return func(o *options) {
		o.linesep = sep
	}
}

// WithCoalescing merges adjacent runs which end up with identical fonts and
// colors. Without it, every tag ends a run.
func WithCoalescing() Option {
	return func(o *options) {
		o.coalesce = true
	}
}

// Convert converts markup into a styled document, using conf to resolve
// fonts and colors. It never fails on malformed markup, see package
// documentation for the recovery rules.
//
// conf must not be nil; a missing configuration is a programming error and
// Convert panics.
func Convert(input string, conf *style.Config, opts ...Option) *Document {
	if conf == nil {
		panic("markup: Convert called with nil style configuration")
	}
	o := options{linesep: LineSeparator}
	for _, opt := range opts {
		opt(&o)
	}
	c := &converter{conf: conf, linesep: string(o.linesep), doc: &Document{}}
	c.run(newScanner(input))
	if o.coalesce {
		return c.doc.Coalesce()
	}
	return c.doc
}

// converter holds the state of a single conversion.
type converter struct {
	conf     *style.Config
	linesep  string
	state    style.State
	buf      strings.Builder
	doc      *Document
	resolved [4]*resolvedStyle // per variant, filled lazily
}

type resolvedStyle struct {
	font  style.Font
	color color.Color
}

func (c *converter) run(sc *scanner) {
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		if tok.typ == textToken {
			c.buf.WriteString(tok.raw)
			continue
		}
		c.flush()
		c.interpret(tok)
	}
	c.flush()
}

// interpret applies a tag to the style state or emits a line separator.
func (c *converter) interpret(tok token) {
	switch tok.tag {
	case atom.P, atom.Br:
		c.emit(c.linesep)
	case atom.B, atom.Strong:
		c.state.Bold = !tok.closing
	case atom.I, atom.Em:
		c.state.Italic = !tok.closing
	default:
		tracer().Debugf("ignoring tag %s", tok.raw)
	}
}

// flush moves accumulated text into a new run with the current style.
func (c *converter) flush() {
	if c.buf.Len() == 0 {
		return
	}
	c.emit(c.buf.String())
	c.buf.Reset()
}

func (c *converter) emit(text string) {
	v := c.state.Variant()
	rs := c.resolved[v]
	if rs == nil {
		rs = &resolvedStyle{}
		rs.font, rs.color = c.conf.Resolve(v)
		c.resolved[v] = rs
	}
	c.doc.append(Run{Text: text, Variant: v, Font: rs.font, Color: rs.color})
}
