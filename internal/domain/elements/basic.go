package elements

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument reports a programmer error in element construction,
// such as a heading level outside 1-6.
var ErrInvalidArgument = errors.New("invalid argument")

// NewText wraps raw markup text as a leaf element. Text leaves render their
// payload verbatim and serialize back to plain strings inside content lists.
func NewText(text string) *Element {
	el := newKind(KindText, "")
	el.Content = Text(text)
	return el
}

// NewParagraph creates a <p> element with the given text.
func NewParagraph(text string) *Element {
	el := newKind(KindParagraph, "p")
	el.Content = Text(text)
	return el
}

// NewHeading creates an <h1>-<h6> element. Levels outside 1-6 fail with
// ErrInvalidArgument.
func NewHeading(text string, level int) (*Element, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w: heading level must be between 1 and 6, got %d", ErrInvalidArgument, level)
	}
	el := newKind(KindHeading, "h"+strconv.Itoa(level))
	el.Content = Text(text)
	return el, nil
}

// HeadingLevel reports the level encoded in a heading's tag, or 0 when the
// tag is not a heading tag.
func HeadingLevel(el *Element) int {
	if len(el.Tag) == 2 && el.Tag[0] == 'h' {
		if level, err := strconv.Atoi(el.Tag[1:]); err == nil && level >= 1 && level <= 6 {
			return level
		}
	}
	return 0
}

// NewList creates a <ul> or <ol> element whose items each render inside an
// <li> wrapper.
func NewList(items []string, ordered bool) *Element {
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	el := newKind(KindHtmlList, tag)
	listItems := make([]Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, TextItem(item))
	}
	el.Content = Many(listItems...)
	return el
}

// AddItem appends a list item and returns the element for chaining.
func (e *Element) AddItem(item string) *Element {
	e.Content = e.Content.Append(TextItem(item))
	return e
}

// NewImage creates an <img> element.
func NewImage(src, alt string) *Element {
	el := newKind(KindImage, "img")
	el.SetAttribute("src", src)
	el.SetAttribute("alt", alt)
	return el
}

// NewLink creates an <a> element with the given text and href.
func NewLink(text, href string) *Element {
	el := newKind(KindLink, "a")
	el.Content = Text(text)
	el.SetAttribute("href", href)
	return el
}

// NewDiv creates a <div> container.
func NewDiv() *Element {
	return newKind(KindDiv, "div")
}

// NewSection creates a <section> container.
func NewSection() *Element {
	return newKind(KindSection, "section")
}

// NewContainer creates a Bootstrap container div. Pass fluid for a
// full-width container.
func NewContainer(fluid bool) *Element {
	el := newKind(KindContainer, "div")
	if fluid {
		el.AddClass("container-fluid")
	} else {
		el.AddClass("container")
	}
	return el
}

func init() {
	registerRenderOverride(KindText, func(e *Element) string {
		return e.Content.render()
	})

	registerRenderOverride(KindHtmlList, func(e *Element) string {
		var sb strings.Builder
		sb.WriteString("<" + e.Tag)
		sb.WriteString(e.RenderAttributes())
		sb.WriteString(">")
		for _, it := range contentItems(e.Content) {
			sb.WriteString("<li>")
			sb.WriteString(it.render())
			sb.WriteString("</li>")
		}
		sb.WriteString("</" + e.Tag + ">")
		return sb.String()
	})
}

// contentItems flattens any content shape into an item list, so list
// rendering does not care how the content was built.
func contentItems(c Content) []Item {
	switch {
	case c.IsMany():
		return c.Items()
	case c.IsText():
		if c.TextValue() == "" {
			return nil
		}
		return []Item{TextItem(c.TextValue())}
	case c.IsChild():
		if c.ChildValue() == nil {
			return nil
		}
		return []Item{NodeItem(c.ChildValue())}
	}
	return nil
}
