package cssconf

import (
	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/richtext/style"
)

// Rule is an adapter for douceur CSS rules.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// SelectorList returns the comma-separated parts of the prelude.
func (r Rule) SelectorList() []string {
	if len(r.Selectors) == 0 && r.Prelude != "" {
		return []string{r.Prelude}
	}
	return r.Selectors
}

// IsAtRule is true for @-rules like @media.
func (r Rule) IsAtRule() bool {
	return r.Kind == css.AtRule
}

// Properties returns the property keys of a rule,
// e.g. "font-size"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
// As with Value, the last declaration of key counts.
func (r Rule) IsImportant(key string) bool {
	imp := false
	for _, d := range r.Declarations {
		if d.Property == key {
			imp = d.Important
		}
	}
	return imp
}
