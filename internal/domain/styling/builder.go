// Package styling provides programmatic CSS construction for custom page
// styles and responsive breakpoints.
package styling

import "strings"

// rule is one selector with its declarations, kept in insertion order.
type rule struct {
	selector string
	props    []declaration
}

type declaration struct {
	property string
	value    string
}

// mediaQuery groups rules under one media condition.
type mediaQuery struct {
	media string
	rules []rule
}

// Builder accumulates CSS rules and media queries and renders them as one
// stylesheet string. Rule and declaration order follow insertion order.
type Builder struct {
	rules   []rule
	queries []mediaQuery
}

// NewBuilder creates an empty CSS builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddRule adds declarations for a selector. Properties apply in the order
// given; repeated selectors produce separate rules, as handwritten CSS would.
func (b *Builder) AddRule(selector string, props [][2]string) *Builder {
	r := rule{selector: selector}
	for _, p := range props {
		r.props = append(r.props, declaration{property: p[0], value: p[1]})
	}
	b.rules = append(b.rules, r)
	return b
}

// AddMediaQuery adds a rule set under a media condition.
func (b *Builder) AddMediaQuery(media, selector string, props [][2]string) *Builder {
	r := rule{selector: selector}
	for _, p := range props {
		r.props = append(r.props, declaration{property: p[0], value: p[1]})
	}

	for i := range b.queries {
		if b.queries[i].media == media {
			b.queries[i].rules = append(b.queries[i].rules, r)
			return b
		}
	}
	b.queries = append(b.queries, mediaQuery{media: media, rules: []rule{r}})
	return b
}

// Breakpoints declares responsive rules for a selector at the standard
// Bootstrap widths. Nil maps are skipped.
type Breakpoints struct {
	XS [][2]string
	SM [][2]string
	MD [][2]string
	LG [][2]string
	XL [][2]string
}

// ResponsiveBreakpoints adds a rule per populated breakpoint, using min-width
// media queries above the base size.
func (b *Builder) ResponsiveBreakpoints(selector string, bp Breakpoints) *Builder {
	if bp.XS != nil {
		b.AddRule(selector, bp.XS)
	}
	if bp.SM != nil {
		b.AddMediaQuery("(min-width: 576px)", selector, bp.SM)
	}
	if bp.MD != nil {
		b.AddMediaQuery("(min-width: 768px)", selector, bp.MD)
	}
	if bp.LG != nil {
		b.AddMediaQuery("(min-width: 992px)", selector, bp.LG)
	}
	if bp.XL != nil {
		b.AddMediaQuery("(min-width: 1200px)", selector, bp.XL)
	}
	return b
}

// Render produces the stylesheet text.
func (b *Builder) Render() string {
	var sb strings.Builder

	for _, r := range b.rules {
		writeRule(&sb, r, "")
	}

	for _, q := range b.queries {
		sb.WriteString("@media " + q.media + " {\n")
		for _, r := range q.rules {
			writeRule(&sb, r, "    ")
		}
		sb.WriteString("}\n\n")
	}

	return sb.String()
}

func writeRule(sb *strings.Builder, r rule, indent string) {
	sb.WriteString(indent + r.selector + " {\n")
	for _, d := range r.props {
		sb.WriteString(indent + "    " + d.property + ": " + d.value + ";\n")
	}
	sb.WriteString(indent + "}\n")
	if indent == "" {
		sb.WriteString("\n")
	}
}
