package markup

import (
	"strings"

	"golang.org/x/net/html/atom"
)

type tokenType uint8

const (
	textToken tokenType = iota // literal text
	tagToken                   // anything enclosed in '<' … '>'
)

// token is a piece of markup. For tag tokens, name is the lowercased
// tag name (empty if it is not a valid name) and tag is its atom (0 for
// names unknown to HTML).
type token struct {
	typ       tokenType
	raw       string // text, or tag including delimiters
	name      string
	tag       atom.Atom
	closing   bool // </name>
	selfClose bool // <name/>
}

func (t token) String() string {
	if t.typ == textToken {
		return "text:" + t.raw
	}
	return "tag:" + t.raw
}

// scanner splits markup into text and tag tokens in a single left-to-right
// pass. It is either between tags or positioned at a '<'.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

// next returns the next token, or false at the end of input.
func (sc *scanner) next() (token, bool) {
	if sc.pos >= len(sc.input) {
		return token{}, false
	}
	rest := sc.input[sc.pos:]
	if rest[0] != '<' { // in text
		n := strings.IndexByte(rest, '<')
		if n < 0 {
			n = len(rest)
		}
		sc.pos += n
		return token{typ: textToken, raw: rest[:n]}, true
	}
	// in tag
	n := strings.IndexByte(rest, '>')
	if n < 0 {
		tracer().Debugf("unterminated tag at position %d, taking it literally", sc.pos)
		sc.pos = len(sc.input)
		return token{typ: textToken, raw: rest}, true
	}
	sc.pos += n + 1
	return parseTag(rest[:n+1]), true
}

// parseTag interprets a raw tag "<…>". Attributes are skipped.
func parseTag(raw string) token {
	t := token{typ: tagToken, raw: raw}
	inner := raw[1 : len(raw)-1]
	if strings.HasPrefix(inner, "/") {
		t.closing = true
		inner = inner[1:]
	}
	if strings.HasSuffix(inner, "/") {
		t.selfClose = true
		inner = inner[:len(inner)-1]
	}
	i := 0
	for i < len(inner) && isNameByte(inner[i], i == 0) {
		i++
	}
	if i == 0 || (i < len(inner) && !isSpace(inner[i])) {
		return t // not a tag name
	}
	t.name = strings.ToLower(inner[:i])
	t.tag = atom.Lookup([]byte(t.name))
	return t
}

func isNameByte(c byte, first bool) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
		return true
	}
	return !first && '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
