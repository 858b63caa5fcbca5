package elements

// contentKind discriminates the shape of an element's content.
type contentKind int

const (
	contentEmpty contentKind = iota
	contentText
	contentChild
	contentMany
)

// Item is one entry in a mixed content list: either raw markup text or a
// child element. Exactly one of the two is set.
type Item struct {
	text string
	node *Element
}

// TextItem wraps raw markup text as a content list entry.
func TextItem(text string) Item { return Item{text: text} }

// NodeItem wraps a child element as a content list entry.
func NodeItem(node *Element) Item { return Item{node: node} }

// IsNode reports whether the item holds a child element.
func (it Item) IsNode() bool { return it.node != nil }

// Node returns the child element, or nil for a text item.
func (it Item) Node() *Element { return it.node }

// Text returns the raw text, or "" for a node item.
func (it Item) Text() string { return it.text }

func (it Item) render() string {
	if it.node != nil {
		return it.node.Render()
	}
	return it.text
}

// Content is the tagged union an element carries: empty, plain text, a single
// child element, or an ordered list of text/element items. This replaces the
// free-form "string, node, or list of either" field with an explicit shape so
// rendering and serialization never need to type-sniff.
type Content struct {
	kind  contentKind
	text  string
	child *Element
	many  []Item
}

// Text builds text content.
func Text(s string) Content { return Content{kind: contentText, text: s} }

// Child builds single-element content.
func Child(el *Element) Content { return Content{kind: contentChild, child: el} }

// Many builds list content from the given items.
func Many(items ...Item) Content { return Content{kind: contentMany, many: items} }

// IsEmpty reports whether there is any content to render.
func (c Content) IsEmpty() bool {
	switch c.kind {
	case contentText:
		return c.text == ""
	case contentChild:
		return c.child == nil
	case contentMany:
		return len(c.many) == 0
	}
	return true
}

// IsText reports whether the content is plain text.
func (c Content) IsText() bool { return c.kind == contentText }

// IsChild reports whether the content is a single child element.
func (c Content) IsChild() bool { return c.kind == contentChild }

// IsMany reports whether the content is an item list.
func (c Content) IsMany() bool { return c.kind == contentMany }

// TextValue returns the text payload for text content.
func (c Content) TextValue() string { return c.text }

// ChildValue returns the single child element, or nil.
func (c Content) ChildValue() *Element { return c.child }

// Items returns the item list for list content.
func (c Content) Items() []Item { return c.many }

// Append adds an item, promoting the content shape as needed: empty becomes
// the item itself, text or child content becomes a list.
func (c Content) Append(it Item) Content {
	switch c.kind {
	case contentEmpty:
		if it.node != nil {
			return Child(it.node)
		}
		return Text(it.text)
	case contentText:
		return Many(TextItem(c.text), it)
	case contentChild:
		return Many(NodeItem(c.child), it)
	case contentMany:
		return Content{kind: contentMany, many: append(c.many, it)}
	}
	return c
}

func (c Content) render() string {
	switch c.kind {
	case contentText:
		return c.text
	case contentChild:
		if c.child == nil {
			return ""
		}
		return c.child.Render()
	case contentMany:
		var out string
		for _, it := range c.many {
			out += it.render()
		}
		return out
	}
	return ""
}
