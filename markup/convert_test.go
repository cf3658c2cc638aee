package markup_test

import (
	"image/color"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/richtext/markup"
	"github.com/npillmayer/richtext/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black  = color.RGBA{0, 0, 0, 0xff}
	red    = color.RGBA{0xff, 0, 0, 0xff}
	green  = color.RGBA{0, 0xff, 0, 0xff}
	blue   = color.RGBA{0, 0, 0xff, 0xff}
	purple = color.RGBA{0x80, 0, 0x80, 0xff}
)

// fullConfig has a distinct font and color for every variant.
func fullConfig() *style.Config {
	size := 12 * dimen.PT
	return &style.Config{
		NormalFont:      style.Font{Family: "Serif", Weight: style.WeightNormal, Slant: style.SlantUpright, Size: size},
		BoldFont:        style.Font{Family: "Serif", Weight: style.WeightBold, Slant: style.SlantUpright, Size: size},
		ItalicFont:      style.Font{Family: "Serif", Weight: style.WeightNormal, Slant: style.SlantItalic, Size: size},
		BoldItalicFont:  style.Font{Family: "Serif", Weight: style.WeightBold, Slant: style.SlantItalic, Size: size},
		NormalColor:     black,
		BoldColor:       red,
		ItalicColor:     green,
		BoldItalicColor: blue,
		DefaultFontSize: size,
	}
}

type want struct {
	text    string
	variant style.Variant
}

func assertRuns(t *testing.T, conf *style.Config, doc *markup.Document, runs ...want) {
	t.Helper()
	if !assert.Equal(t, len(runs), doc.Len(), "number of runs") {
		t.Logf("document:\n%s", doc.Dump())
		return
	}
	for i, w := range runs {
		r := doc.Runs[i]
		assert.Equal(t, w.text, r.Text, "text of run #%d", i)
		assert.Equal(t, w.variant, r.Variant, "variant of run #%d", i)
		f, c := conf.Resolve(w.variant)
		assert.Equal(t, f, r.Font, "font of run #%d", i)
		assert.Equal(t, c, r.Color, "color of run #%d", i)
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	doc := markup.Convert("", fullConfig())
	require.NotNil(t, doc)
	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, "", doc.Text())
}

func TestPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	for _, s := range []string{"a", "Hello, World", "Tom &amp; Jerry", "  spaces  ", "ünïcödé → ok"} {
		doc := markup.Convert(s, conf)
		assertRuns(t, conf, doc, want{s, style.Normal})
	}
}

func TestBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	assertRuns(t, conf, markup.Convert("<b>hello</b>", conf), want{"hello", style.Bold})
	assertRuns(t, conf, markup.Convert("<STRONG>hello</Strong>", conf), want{"hello", style.Bold})
	assertRuns(t, conf, markup.Convert("<em>hello</em>", conf), want{"hello", style.Italic})
	assert.Equal(t, red, markup.Convert("<b>hello</b>", conf).Runs[0].Color)
}

func TestNestedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	doc := markup.Convert("<b>a<i>b</i>c</b>", conf)
	assertRuns(t, conf, doc,
		want{"a", style.Bold},
		want{"b", style.BoldItalic},
		want{"c", style.Bold},
	)
	assert.Equal(t, blue, doc.Runs[1].Color)
}

func TestSameAxisNestingIsFlat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	doc := markup.Convert("<b>x<b>y</b>z</b>", conf)
	assertRuns(t, conf, doc,
		want{"x", style.Bold},
		want{"y", style.Bold},
		want{"z", style.Normal},
	)
}

func TestUnbalancedTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	assertRuns(t, conf, markup.Convert("a</b>b</em>c", conf),
		want{"a", style.Normal}, want{"b", style.Normal}, want{"c", style.Normal})
	assertRuns(t, conf, markup.Convert("<i>open", conf), want{"open", style.Italic})
	assertRuns(t, conf, markup.Convert("x<b><i>", conf), want{"x", style.Normal})
}

func TestSelfClosingStyleTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	assertRuns(t, conf, markup.Convert("a<b/>x", conf), want{"a", style.Normal}, want{"x", style.Bold})
	assertRuns(t, conf, markup.Convert("<i />y</i>z", conf), want{"y", style.Italic}, want{"z", style.Normal})
}

func TestLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	doc := markup.Convert("line1<br/>line2", conf)
	assertRuns(t, conf, doc,
		want{"line1", style.Normal},
		want{"\n", style.Normal},
		want{"line2", style.Normal},
	)
	assert.Equal(t, "line1\nline2", doc.Text())
	for _, br := range []string{"<br>", "<BR>", "<br />", "</br>"} {
		assert.Equal(t, "a\nb", markup.Convert("a"+br+"b", conf).Text(), "tag %s", br)
	}
}

func TestParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	doc := markup.Convert("<p>x</p><p>y</p>", conf)
	assert.Equal(t, "\nx\n\ny\n", doc.Text())
	assert.Equal(t, 4, strings.Count(doc.Text(), "\n"))
	assert.Equal(t, 6, doc.Len())
}

func TestSeparatorTakesActiveStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	doc := markup.Convert("<b>one<br>two</b>", conf)
	assertRuns(t, conf, doc,
		want{"one", style.Bold},
		want{"\n", style.Bold},
		want{"two", style.Bold},
	)
}

func TestCustomLineSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	doc := markup.Convert("a<br>b", fullConfig(), markup.WithLineSeparator(' '))
	assert.Equal(t, "a b", doc.Text())
}

func TestUnknownTagsAreStripped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	doc := markup.Convert(`<span class="x">a</span><b>b<blink>c</blink></b><>d`, conf)
	assertRuns(t, conf, doc,
		want{"a", style.Normal},
		want{"b", style.Bold},
		want{"c", style.Bold},
		want{"d", style.Normal},
	)
	assert.Equal(t, "abcd", doc.Text())
}

func TestMalformedTrailingTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	assertRuns(t, conf, markup.Convert("abc<b", conf), want{"abc<b", style.Normal})
	assertRuns(t, conf, markup.Convert("<i>a<b", conf), want{"a<b", style.Italic})
}

func TestFallbackToNormal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	normal := style.Font{Family: "Sans", Weight: style.WeightNormal, Slant: style.SlantUpright, Size: 10 * dimen.PT}
	conf := &style.Config{NormalFont: normal, NormalColor: purple}
	doc := markup.Convert("<b><i>z</i></b>", conf)
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, "z", doc.Runs[0].Text)
	assert.Equal(t, style.BoldItalic, doc.Runs[0].Variant)
	assert.Equal(t, normal, doc.Runs[0].Font)
	assert.Equal(t, purple, doc.Runs[0].Color)
}

func TestSystemDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	doc := markup.Convert("<b>x</b>", &style.Config{})
	require.Equal(t, 1, doc.Len())
	f := doc.Runs[0].Font
	assert.Equal(t, style.DefaultFamily, f.Family)
	assert.Equal(t, style.WeightBold, f.Weight)
	assert.Equal(t, style.DefaultFontSize, f.Size)
	assert.Equal(t, color.Black, doc.Runs[0].Color)
}

func TestNilConfigPanics(t *testing.T) {
	assert.Panics(t, func() {
		markup.Convert("x", nil)
	})
}

func TestRunTextRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.markup")
	defer teardown()
	//
	conf := fullConfig()
	tests := []struct{ in, out string }{
		{"The <b>quick</b> brown <i>fox</i>", "The quick brown fox"},
		{"<p>Para <em>one</em></p>two<br/>three", "\nPara one\ntwo\nthree"},
		{"a<x-foo bar>b</x-foo>c", "abc"},
		{"1 < 2 > 0", "1  0"},
		{"tail <", "tail <"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, markup.Convert(tt.in, conf).Text(), "input %q", tt.in)
	}
}

func TestConfigChangesDoNotAffectRuns(t *testing.T) {
	conf := fullConfig()
	doc := markup.Convert("<b>x</b>", conf)
	conf.BoldColor = green
	conf.BoldFont.Family = "Other"
	assert.Equal(t, red, doc.Runs[0].Color)
	assert.Equal(t, "Serif", doc.Runs[0].Font.Family)
}

func TestConcurrentConversions(t *testing.T) {
	conf := fullConfig()
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = markup.Convert("<p>a<b>b</b><i>c</i></p>", conf).Text()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "\nabc\n", r)
	}
}
