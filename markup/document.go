package markup

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/richtext/style"
	tp "github.com/xlab/treeprint"
)

// Run is a span of text sharing one resolved style. Font and Color are
// snapshots taken at conversion time; changing the Config afterwards does
// not affect existing runs.
//
// Variant is the variant Font and Color have been resolved for. After
// Coalesce, a merged run keeps the Variant of its first part, while Font and
// Color hold for all of its text.
type Run struct {
	Text    string // never empty
	Variant style.Variant
	Font    style.Font
	Color   color.Color
}

func (r Run) String() string {
	return fmt.Sprintf("[%s %q]", r.Variant, r.Text)
}

// SameStyle is true if r and other have identical fonts and colors.
func (r Run) SameStyle(other Run) bool {
	return r.Font == other.Font && sameColor(r.Color, other.Color)
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// Document is the result of a conversion: runs in document order.
// A Document is owned by the client; package markup keeps no reference to it.
type Document struct {
	Runs []Run
}

// Len returns the number of runs.
func (doc *Document) Len() int {
	if doc == nil {
		return 0
	}
	return len(doc.Runs)
}

// Text concatenates the texts of all runs, including line separators.
func (doc *Document) Text() string {
	if doc == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range doc.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Coalesce returns a new document in which adjacent runs of identical style
// are merged. The concatenated text does not change. Runs of different
// variants may be merged if the configuration resolves them to the same
// style; the merged run carries the first run's Variant.
func (doc *Document) Coalesce() *Document {
	merged := &Document{}
	if doc == nil {
		return merged
	}
	for _, r := range doc.Runs {
		if n := len(merged.Runs); n > 0 && merged.Runs[n-1].SameStyle(r) {
			merged.Runs[n-1].Text += r.Text
			continue
		}
		merged.Runs = append(merged.Runs, r)
	}
	return merged
}

func (doc *Document) append(r Run) {
	doc.Runs = append(doc.Runs, r)
}

// Dump renders the runs of a document as a tree, for debugging. Each run is
// a branch holding its font and color.
func (doc *Document) Dump() string {
	printer := tp.New()
	branch := printer.AddBranch(fmt.Sprintf("document #runs=%d", doc.Len()))
	if doc != nil {
		for _, r := range doc.Runs {
			rb := branch.AddMetaBranch(r.Variant.String(), fmt.Sprintf("%q", r.Text))
			rb.AddNode(r.Font.String())
			rb.AddNode(style.ColorString(r.Color))
		}
	}
	return printer.String()
}
