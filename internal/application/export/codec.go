// Package export converts element trees and pages to and from generic
// document maps and JSON. Reconstruction goes through the variant registry,
// so plugin-registered variants round-trip without codec changes; unknown
// variant names degrade to the generic element.
package export

import (
	"fmt"

	"github.com/pageforge/pageforge-go/internal/domain/elements"
	"github.com/pageforge/pageforge-go/internal/domain/pages"
)

const (
	typeKey     = "type"
	typeElement = "Element"
	typePage    = "Page"
)

// Encode converts an element or page into a generic document map suitable
// for JSON marshaling. Any other value returns ErrUnsupportedType.
func Encode(v any) (map[string]any, error) {
	switch t := v.(type) {
	case *elements.Element:
		if t == nil {
			return nil, fmt.Errorf("encode: %w: nil element", ErrUnsupportedType)
		}
		return encodeElement(t), nil
	case *pages.Page:
		if t == nil {
			return nil, fmt.Errorf("encode: %w: nil page", ErrUnsupportedType)
		}
		return encodePage(t), nil
	default:
		return nil, fmt.Errorf("encode: %w: %T", ErrUnsupportedType, v)
	}
}

// Decode reconstructs an element or page from a document map produced by
// Encode. The returned value is *elements.Element or *pages.Page depending
// on the document's type marker.
func Decode(doc map[string]any) (any, error) {
	switch doc[typeKey] {
	case typeElement:
		return decodeElement(doc)
	case typePage:
		return decodePage(doc)
	case nil:
		return nil, deserErr(typeKey, "missing type marker")
	default:
		return nil, deserErr(typeKey, fmt.Sprintf("unknown type marker %v", doc[typeKey]))
	}
}

// DecodeElement reconstructs an element tree from its document map. The
// class_name selects the variant factory; names with no registered factory
// fall back to the generic element so documents written by newer or
// plugin-extended producers still load.
func DecodeElement(doc map[string]any) (*elements.Element, error) {
	return decodeElement(doc)
}

// DecodePage reconstructs a page from its document map.
func DecodePage(doc map[string]any) (*pages.Page, error) {
	return decodePage(doc)
}

func encodeElement(el *elements.Element) map[string]any {
	doc := map[string]any{
		typeKey:      typeElement,
		"class_name": el.Kind,
		"tag":        el.Tag,
	}

	rest := map[string]any{}
	for name, value := range el.Attributes {
		switch name {
		case "class":
			doc["css_class"] = value
		case "id":
			doc["id_attr"] = value
		case "style":
			doc["style"] = value
		default:
			rest[name] = value
		}
	}
	if len(rest) > 0 {
		doc["attributes"] = rest
	}

	if c := encodeContent(el.Content); c != nil {
		doc["content"] = c
	}
	if out := encodeElements(el.Children); out != nil {
		doc["child_elements"] = out
	}
	if out := encodeElements(el.Fields); out != nil {
		doc["fields"] = out
	}
	if out := encodeElements(el.Columns); out != nil {
		doc["columns"] = out
	}
	return doc
}

func encodeElements(els []*elements.Element) []any {
	if len(els) == 0 {
		return nil
	}
	out := make([]any, 0, len(els))
	for _, el := range els {
		out = append(out, encodeElement(el))
	}
	return out
}

func encodeContent(c elements.Content) any {
	switch {
	case c.IsText():
		return c.TextValue()
	case c.IsChild():
		if c.ChildValue() == nil {
			return nil
		}
		return encodeElement(c.ChildValue())
	case c.IsMany():
		items := make([]any, 0, len(c.Items()))
		for _, it := range c.Items() {
			if it.IsNode() {
				items = append(items, encodeElement(it.Node()))
			} else {
				items = append(items, it.Text())
			}
		}
		return items
	}
	return nil
}

func encodePage(p *pages.Page) map[string]any {
	doc := map[string]any{
		typeKey:           typePage,
		"title":           p.Title,
		"header_text":     p.HeaderText,
		"theme":           p.Theme,
		"header_class":    p.HeaderClass,
		"container_class": p.ContainerClass,
	}
	if p.LogoURL != "" {
		doc["logo_url"] = p.LogoURL
	}

	if links := p.NavLinks(); len(links) > 0 {
		out := make([]any, 0, len(links))
		for _, l := range links {
			out = append(out, map[string]any{"text": l.Text, "url": l.URL})
		}
		doc["nav_links"] = out
	}
	if tags := p.MetaTags(); len(tags) > 0 {
		out := make([]any, 0, len(tags))
		for _, t := range tags {
			out = append(out, map[string]any{"name": t.Name, "content": t.Content})
		}
		doc["meta_tags"] = out
	}
	if v := stringList(p.CSSLinks()); v != nil {
		doc["css_links"] = v
	}
	if v := stringList(p.Scripts()); v != nil {
		doc["scripts"] = v
	}
	if v := stringList(p.CustomCSS()); v != nil {
		doc["custom_css"] = v
	}
	if v := stringList(p.CustomJS()); v != nil {
		doc["custom_js"] = v
	}
	if v := stringList(p.BodyClasses()); v != nil {
		doc["body_classes"] = v
	}

	// Body fragments share the content-list shape: element documents as
	// maps, raw HTML fragments as strings.
	fragments := make([]any, 0, len(p.Content()))
	for _, f := range p.Content() {
		if f.IsElement() {
			fragments = append(fragments, encodeElement(f.Element()))
		} else {
			fragments = append(fragments, f.HTML())
		}
	}
	doc["content"] = fragments

	return doc
}

func stringList(in []string) []any {
	if len(in) == 0 {
		return nil
	}
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}

func decodeElement(doc map[string]any) (*elements.Element, error) {
	name, _ := doc["class_name"].(string)
	factory, ok := elements.VariantFactory(name)
	if !ok {
		factory, _ = elements.VariantFactory(elements.KindElement)
	}
	el := factory()
	if name != "" && ok {
		el.Kind = name
	}

	if tag, ok := doc["tag"].(string); ok && tag != "" {
		el.Tag = tag
	}
	if v, ok := doc["css_class"].(string); ok && v != "" {
		el.SetAttribute("class", v)
	}
	if v, ok := doc["id_attr"].(string); ok && v != "" {
		el.SetAttribute("id", v)
	}
	if v, ok := doc["style"].(string); ok && v != "" {
		el.SetAttribute("style", v)
	}
	if attrs, present := doc["attributes"]; present {
		m, ok := attrs.(map[string]any)
		if !ok {
			return nil, deserErr("attributes", fmt.Sprintf("expected object, got %T", attrs))
		}
		for name, raw := range m {
			value, ok := raw.(string)
			if !ok {
				return nil, deserErr("attributes", fmt.Sprintf("value for %q is %T, expected string", name, raw))
			}
			el.SetAttribute(name, value)
		}
	}

	if raw, present := doc["content"]; present && raw != nil {
		content, err := decodeContent(raw)
		if err != nil {
			return nil, err
		}
		el.Content = content
	}

	var err error
	if el.Children, err = decodeElementList(doc, "child_elements"); err != nil {
		return nil, err
	}
	if el.Fields, err = decodeElementList(doc, "fields"); err != nil {
		return nil, err
	}
	if el.Columns, err = decodeElementList(doc, "columns"); err != nil {
		return nil, err
	}

	// Older list documents carried their entries under a separate items key.
	if raw, present := doc["items"]; present {
		list, ok := raw.([]any)
		if !ok {
			return nil, deserErr("items", fmt.Sprintf("expected array, got %T", raw))
		}
		for _, entry := range list {
			it, err := decodeContentItem("items", entry)
			if err != nil {
				return nil, err
			}
			el.Content = el.Content.Append(it)
		}
	}

	return el, nil
}

func decodeElementList(doc map[string]any, key string) ([]*elements.Element, error) {
	raw, present := doc[key]
	if !present || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, deserErr(key, fmt.Sprintf("expected array, got %T", raw))
	}
	out := make([]*elements.Element, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, deserErr(key, fmt.Sprintf("expected object entry, got %T", entry))
		}
		el, err := decodeElement(m)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

func decodeContent(raw any) (elements.Content, error) {
	switch t := raw.(type) {
	case string:
		return elements.Text(t), nil
	case map[string]any:
		el, err := decodeElement(t)
		if err != nil {
			return elements.Content{}, err
		}
		return elements.Child(el), nil
	case []any:
		items := make([]elements.Item, 0, len(t))
		for _, entry := range t {
			it, err := decodeContentItem("content", entry)
			if err != nil {
				return elements.Content{}, err
			}
			items = append(items, it)
		}
		return elements.Many(items...), nil
	default:
		return elements.Content{}, deserErr("content", fmt.Sprintf("unexpected shape %T", raw))
	}
}

func decodeContentItem(key string, entry any) (elements.Item, error) {
	switch t := entry.(type) {
	case string:
		return elements.TextItem(t), nil
	case map[string]any:
		el, err := decodeElement(t)
		if err != nil {
			return elements.Item{}, err
		}
		return elements.NodeItem(el), nil
	default:
		return elements.Item{}, deserErr(key, fmt.Sprintf("unexpected entry %T", entry))
	}
}

func decodePage(doc map[string]any) (*pages.Page, error) {
	title, _ := doc["title"].(string)
	headerText, _ := doc["header_text"].(string)

	// Go through the constructor so theme assets and the container default
	// are registered; hand-authored documents rarely spell them out.
	p := pages.New(title, headerText)
	if v, ok := doc["logo_url"].(string); ok {
		p.LogoURL = v
	}
	if v, ok := doc["theme"].(string); ok {
		p.SetTheme(v)
	}
	if v, ok := doc["header_class"].(string); ok {
		p.HeaderClass = v
	}
	if v, ok := doc["container_class"].(string); ok {
		p.SetContainerClass(v)
	}

	if raw, present := doc["nav_links"]; present {
		list, ok := raw.([]any)
		if !ok {
			return nil, deserErr("nav_links", fmt.Sprintf("expected array, got %T", raw))
		}
		for _, entry := range list {
			m, ok := entry.(map[string]any)
			if !ok {
				return nil, deserErr("nav_links", fmt.Sprintf("expected object entry, got %T", entry))
			}
			text, _ := m["text"].(string)
			url, _ := m["url"].(string)
			p.AddNavLink(text, url)
		}
	}
	if raw, present := doc["meta_tags"]; present {
		list, ok := raw.([]any)
		if !ok {
			return nil, deserErr("meta_tags", fmt.Sprintf("expected array, got %T", raw))
		}
		for _, entry := range list {
			m, ok := entry.(map[string]any)
			if !ok {
				return nil, deserErr("meta_tags", fmt.Sprintf("expected object entry, got %T", entry))
			}
			name, _ := m["name"].(string)
			content, _ := m["content"].(string)
			p.AddMetaTag(name, content)
		}
	}

	var err error
	if err = eachString(doc, "css_links", func(s string) { p.AddCSSLink(s) }); err != nil {
		return nil, err
	}
	if err = eachString(doc, "scripts", func(s string) { p.AddScript(s) }); err != nil {
		return nil, err
	}
	if err = eachString(doc, "custom_css", func(s string) { p.AddCustomCSS(s) }); err != nil {
		return nil, err
	}
	if err = eachString(doc, "custom_js", func(s string) { p.AddCustomJS(s) }); err != nil {
		return nil, err
	}
	if err = eachString(doc, "body_classes", func(s string) { p.AddBodyClass(s) }); err != nil {
		return nil, err
	}

	if raw, present := doc["content"]; present && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, deserErr("content", fmt.Sprintf("expected array, got %T", raw))
		}
		for _, entry := range list {
			switch t := entry.(type) {
			case string:
				p.AddHTML(t)
			case map[string]any:
				el, err := decodeElement(t)
				if err != nil {
					return nil, err
				}
				p.AddElement(el)
			default:
				return nil, deserErr("content", fmt.Sprintf("unexpected entry %T", entry))
			}
		}
	}

	return p, nil
}

func eachString(doc map[string]any, key string, apply func(string)) error {
	raw, present := doc[key]
	if !present || raw == nil {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return deserErr(key, fmt.Sprintf("expected array, got %T", raw))
	}
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return deserErr(key, fmt.Sprintf("expected string entry, got %T", entry))
		}
		apply(s)
	}
	return nil
}
