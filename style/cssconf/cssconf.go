package cssconf

import (
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/richtext/css"
	"github.com/npillmayer/richtext/style"
	"github.com/npillmayer/tyse/core/dimen"
	"go.uber.org/multierr"
)

// target is what a selector addresses.
type target struct {
	variant style.Variant
	root    bool // html, :root, *
}

// Load parses a stylesheet and applies its rules to a copy of base.
// If base is nil, style.NewConfig() is used.
//
// A stylesheet which cannot be parsed at all results in a nil config and an
// error. Otherwise Load returns a config, together with a (possibly
// combined) error for every declaration it had to skip.
func Load(stylesheet string, base *style.Config) (*style.Config, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	conf := style.NewConfig()
	if base != nil {
		conf = base.Clone()
	}
	rules := make([]Rule, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		rule := Rule(*r)
		if rule.IsAtRule() {
			tracer().Debugf("skipping @%s rule", rule.Name)
			continue
		}
		rules = append(rules, rule)
	}
	l := &loader{conf: conf, important: make(map[slot]bool)}
	// Root font sizes first, as relative sizes resolve against them.
	for _, rule := range rules {
		targets, _ := selectTargets(rule) // errors reported in second pass
		if hasRoot(targets) && !rule.Value("font-size").IsEmpty() {
			err = multierr.Append(err, l.applyRootSize(rule))
		}
	}
	for _, rule := range rules {
		targets, e := selectTargets(rule)
		err = multierr.Append(err, e)
		for _, t := range targets {
			err = multierr.Append(err, l.apply(rule, t))
		}
	}
	return conf, err
}

// LoadFile reads a stylesheet from a file and calls Load.
func LoadFile(path string, base *style.Config) (*style.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read stylesheet: %w", err)
	}
	return Load(string(b), base)
}

// --- Selectors -------------------------------------------------------------

var elementVariants = map[string]target{
	"html":   {style.Normal, true},
	":root":  {style.Normal, true},
	"*":      {style.Normal, true},
	"body":   {style.Normal, false},
	"p":      {style.Normal, false},
	"b":      {style.Bold, false},
	"strong": {style.Bold, false},
	"i":      {style.Italic, false},
	"em":     {style.Italic, false},
}

func selectTargets(rule Rule) ([]target, error) {
	var targets []target
	var err error
	for _, sel := range rule.SelectorList() {
		t, ok := selectorTarget(sel)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("unsupported selector %q", sel))
			continue
		}
		targets = append(targets, t)
	}
	return targets, err
}

func hasRoot(targets []target) bool {
	for _, t := range targets {
		if t.root {
			return true
		}
	}
	return false
}

// selectorTarget maps a single selector to a variant. Compound selectors
// are allowed if they combine elements of different variants, e.g. "b i"
// or "strong > em".
func selectorTarget(sel string) (target, bool) {
	sel = strings.ReplaceAll(strings.ToLower(sel), ">", " ")
	fields := strings.Fields(sel)
	switch len(fields) {
	case 1:
		t, ok := elementVariants[fields[0]]
		return t, ok
	case 2:
		t1, ok1 := elementVariants[fields[0]]
		t2, ok2 := elementVariants[fields[1]]
		if !ok1 || !ok2 || t1.root || t2.root {
			return target{}, false
		}
		if v := t1.variant | t2.variant; v == style.BoldItalic && t1.variant != t2.variant {
			return target{variant: style.BoldItalic}, true
		}
	}
	return target{}, false
}

// --- Declarations ----------------------------------------------------------

// slot identifies a property of a variant, for tracking "!important".
type slot struct {
	variant  style.Variant
	root     bool
	property string
}

// loader applies rules to a configuration. Declarations marked important
// are not overridden by later, unimportant ones.
type loader struct {
	conf      *style.Config
	important map[slot]bool
}

// overridable checks whether a declaration for key in rule may replace an
// earlier declaration of the same slot.
func (l *loader) overridable(rule Rule, s slot, key string) bool {
	if l.important[s] && !rule.IsImportant(key) {
		tracer().Debugf("%s: keeping important %s", rule.Selector(), s.property)
		return false
	}
	return true
}

func (l *loader) mark(rule Rule, s slot, key string) {
	if rule.IsImportant(key) {
		l.important[s] = true
	}
}

func (l *loader) applyRootSize(rule Rule) error {
	s := slot{variant: style.Normal, root: true, property: "font-size"}
	if !l.overridable(rule, s, "font-size") {
		return nil
	}
	d, err := css.ParseDimen(rule.Value("font-size"))
	if err != nil {
		return fmt.Errorf("font-size: %w", err)
	}
	// relative sizes build on the size set so far
	base := l.conf.FontSize()
	l.conf.DefaultFontSize = css.DimenPattern[dimen.DU](d).OneOf(css.DimenPatterns[dimen.DU]{
		Just:     d.Resolve(base),
		Relative: d.Resolve(base),
		Inherit:  base,
		Initial:  style.DefaultFontSize,
		Default:  base,
	})
	l.mark(rule, s, "font-size")
	tracer().Debugf("default font size set to %v", l.conf.DefaultFontSize)
	return nil
}

func (l *loader) apply(rule Rule, t target) error {
	var err error
	conf := l.conf
	font := conf.Font(t.variant)
	for _, key := range rule.Properties() {
		prop := strings.ToLower(key)
		if prop == "font-size" && t.root {
			continue // already set in first pass
		}
		s := slot{variant: t.variant, property: prop}
		if !l.overridable(rule, s, key) {
			continue
		}
		if e := l.declare(&font, t, prop, rule.Value(key)); e != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", key, e))
			continue
		}
		l.mark(rule, s, key)
	}
	if font != conf.Font(t.variant) {
		conf.SetFont(t.variant, font)
	}
	return err
}

// declare applies a single declaration to the font of a target or to the
// configuration.
func (l *loader) declare(font *style.Font, t target, prop string, p style.Property) error {
	switch prop {
	case "color":
		c, err := p.Color()
		if err != nil {
			return err
		}
		l.conf.SetColor(t.variant, c)
	case "font-family":
		fam, err := p.Family()
		if err != nil {
			return err
		}
		font.Family = fam
	case "font-size":
		d, err := css.ParseDimen(p)
		if err != nil {
			return err
		}
		// inherit takes the size of the normal text, initial leaves the
		// size unset, i.e. following the default size
		inherited := l.conf.FontSize()
		if t.variant != style.Normal && l.conf.NormalFont.Size > 0 {
			inherited = l.conf.NormalFont.Size
		}
		font.Size = css.DimenPattern[dimen.DU](d).OneOf(css.DimenPatterns[dimen.DU]{
			Just:     d.Resolve(inherited),
			Relative: d.Resolve(l.conf.FontSize()),
			Inherit:  inherited,
			Initial:  0,
			Default:  inherited,
		})
	case "font-weight":
		w, err := p.Weight()
		if err != nil {
			return err
		}
		font.Weight = w
	case "font-style":
		sl, err := p.Slant()
		if err != nil {
			return err
		}
		font.Slant = sl
	default:
		return fmt.Errorf("unsupported property")
	}
	return nil
}
