// Package elements provides the composable HTML element tree. Every node
// carries structural data only (tag, attributes, content shape); all markup
// is computed on demand by Render, so a node reconstructed from its
// serialized form renders identically to the original.
package elements

import (
	"sort"
	"strings"
)

// voidTags render without a closing tag.
var voidTags = map[string]struct{}{
	"img":   {},
	"input": {},
	"br":    {},
	"hr":    {},
	"meta":  {},
	"link":  {},
}

// Element is the unit of the tree. Kind names the concrete variant for
// round-trip reconstruction; rendering dispatches on it only where a variant
// needs a non-generic shape (lists, void tags).
type Element struct {
	Kind       string
	Tag        string
	Attributes map[string]string
	Content    Content

	// Children holds nested elements outside the main content flow,
	// rendered after Content (serialized as child_elements).
	Children []*Element

	// Fields holds form controls (serialized as fields).
	Fields []*Element

	// Columns holds row columns (serialized as columns).
	Columns []*Element
}

// New creates a generic element with the given tag.
func New(tag string) *Element {
	return &Element{
		Kind:       KindElement,
		Tag:        tag,
		Attributes: make(map[string]string),
	}
}

func newKind(kind, tag string) *Element {
	el := New(tag)
	el.Kind = kind
	return el
}

// SetAttribute sets an attribute and returns the element for chaining.
func (e *Element) SetAttribute(name, value string) *Element {
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[name] = value
	return e
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// AddClass appends a CSS class to the class attribute.
func (e *Element) AddClass(cssClass string) *Element {
	if current, ok := e.Attributes["class"]; ok && current != "" {
		return e.SetAttribute("class", current+" "+cssClass)
	}
	return e.SetAttribute("class", cssClass)
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) *Element {
	return e.SetAttribute("id", id)
}

// SetStyle replaces the inline style attribute.
func (e *Element) SetStyle(style string) *Element {
	return e.SetAttribute("style", style)
}

// AddStyle appends to the inline style attribute, inserting a semicolon
// separator if the existing declaration does not end with one.
func (e *Element) AddStyle(style string) *Element {
	current, ok := e.Attributes["style"]
	if !ok || current == "" {
		return e.SetAttribute("style", style)
	}
	if strings.HasSuffix(strings.TrimRight(current, " "), ";") {
		return e.SetAttribute("style", strings.TrimRight(current, " ")+" "+style)
	}
	return e.SetAttribute("style", current+"; "+style)
}

// SetEvent sets a JavaScript event handler attribute.
func (e *Element) SetEvent(event, handler string) *Element {
	return e.SetAttribute(event, handler)
}

// OnClick sets the onclick handler.
func (e *Element) OnClick(handler string) *Element { return e.SetEvent("onclick", handler) }

// OnSubmit sets the onsubmit handler.
func (e *Element) OnSubmit(handler string) *Element { return e.SetEvent("onsubmit", handler) }

// OnChange sets the onchange handler.
func (e *Element) OnChange(handler string) *Element { return e.SetEvent("onchange", handler) }

// OnHover sets the onmouseover handler.
func (e *Element) OnHover(handler string) *Element { return e.SetEvent("onmouseover", handler) }

// AddText appends raw markup text to the content.
func (e *Element) AddText(text string) *Element {
	e.Content = e.Content.Append(TextItem(text))
	return e
}

// AddContent appends a child element to the content flow.
func (e *Element) AddContent(child *Element) *Element {
	e.Content = e.Content.Append(NodeItem(child))
	return e
}

// AddChild appends a nested element outside the content flow.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return e
}

// RenderAttributes renders the attribute map in canonical order: class, id,
// style first, remaining attributes alphabetically. Attribute order carries
// no meaning in HTML; a fixed order keeps Render deterministic regardless of
// how the map was populated or reconstructed.
func (e *Element) RenderAttributes() string {
	if len(e.Attributes) == 0 {
		return ""
	}

	var sb strings.Builder
	writeAttr := func(name string) {
		if value, ok := e.Attributes[name]; ok {
			sb.WriteString(` ` + name + `="` + value + `"`)
		}
	}

	writeAttr("class")
	writeAttr("id")
	writeAttr("style")

	rest := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		if name == "class" || name == "id" || name == "style" {
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		writeAttr(name)
	}

	return sb.String()
}

// Render produces the element's HTML, recursively rendering content and
// children. It is pure: repeated calls on an unmutated element return
// identical output.
func (e *Element) Render() string {
	if fn, ok := renderOverrides[e.Kind]; ok {
		return fn(e)
	}
	return e.renderGeneric()
}

func (e *Element) renderGeneric() string {
	var sb strings.Builder
	sb.WriteString("<" + e.Tag)
	sb.WriteString(e.RenderAttributes())

	if _, void := voidTags[e.Tag]; void {
		sb.WriteString(">")
		return sb.String()
	}

	sb.WriteString(">")
	sb.WriteString(e.Content.render())
	for _, child := range e.Children {
		sb.WriteString(child.Render())
	}
	for _, field := range e.Fields {
		sb.WriteString(field.Render())
	}
	for _, col := range e.Columns {
		sb.WriteString(col.Render())
	}
	sb.WriteString("</" + e.Tag + ">")
	return sb.String()
}

// renderOverrides maps variant kinds whose markup shape differs from the
// generic open-content-close pattern.
var renderOverrides = map[string]func(*Element) string{}

func registerRenderOverride(kind string, fn func(*Element) string) {
	renderOverrides[kind] = fn
}
