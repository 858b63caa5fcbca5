package styling

import "strings"

// Style is a fluent per-selector declaration builder.
type Style struct {
	selector string
	props    []declaration
}

// NewStyle creates a style block for the given selector.
func NewStyle(selector string) *Style {
	return &Style{selector: selector}
}

// Custom sets an arbitrary CSS property.
func (s *Style) Custom(property, value string) *Style {
	for i := range s.props {
		if s.props[i].property == property {
			s.props[i].value = value
			return s
		}
	}
	s.props = append(s.props, declaration{property: property, value: value})
	return s
}

func (s *Style) Color(v string) *Style           { return s.Custom("color", v) }
func (s *Style) BackgroundColor(v string) *Style { return s.Custom("background-color", v) }
func (s *Style) FontSize(v string) *Style        { return s.Custom("font-size", v) }
func (s *Style) FontWeight(v string) *Style      { return s.Custom("font-weight", v) }
func (s *Style) Margin(v string) *Style          { return s.Custom("margin", v) }
func (s *Style) Padding(v string) *Style         { return s.Custom("padding", v) }
func (s *Style) Width(v string) *Style           { return s.Custom("width", v) }
func (s *Style) Height(v string) *Style          { return s.Custom("height", v) }
func (s *Style) Display(v string) *Style         { return s.Custom("display", v) }
func (s *Style) TextAlign(v string) *Style       { return s.Custom("text-align", v) }
func (s *Style) Border(v string) *Style          { return s.Custom("border", v) }
func (s *Style) BorderRadius(v string) *Style    { return s.Custom("border-radius", v) }
func (s *Style) BoxShadow(v string) *Style       { return s.Custom("box-shadow", v) }

// Render produces the style block, or "" when no properties are set.
func (s *Style) Render() string {
	if len(s.props) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(s.selector + " {\n")
	for _, d := range s.props {
		sb.WriteString("    " + d.property + ": " + d.value + ";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Inline renders the declarations without the selector wrapper, suitable for
// a style attribute.
func (s *Style) Inline() string {
	parts := make([]string, 0, len(s.props))
	for _, d := range s.props {
		parts = append(parts, d.property+": "+d.value)
	}
	return strings.Join(parts, "; ")
}
