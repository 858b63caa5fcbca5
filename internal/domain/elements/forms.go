package elements

import "strconv"

// NewForm creates a <form> element. Controls added via AddField are kept as
// structural children and serialized under the fields key.
func NewForm(action, method string) *Element {
	el := newKind(KindForm, "form")
	el.SetAttribute("action", action)
	if method == "" {
		method = "POST"
	}
	el.SetAttribute("method", method)
	return el
}

// AddField appends a form control and returns the form for chaining.
func (e *Element) AddField(field *Element) *Element {
	e.Fields = append(e.Fields, field)
	return e
}

// InputOptions configures an <input> control.
type InputOptions struct {
	Type        string
	Name        string
	Value       string
	Placeholder string
	Required    bool
	Label       string
}

// NewInput creates an <input> control, optionally wrapped with a form label.
func NewInput(opts InputOptions) *Element {
	inputType := opts.Type
	if inputType == "" {
		inputType = "text"
	}
	input := newKind(KindInput, "input")
	input.SetAttribute("type", inputType)
	input.SetAttribute("name", opts.Name)
	input.AddClass("form-control")
	if opts.Value != "" {
		input.SetAttribute("value", opts.Value)
	}
	if opts.Placeholder != "" {
		input.SetAttribute("placeholder", opts.Placeholder)
	}
	if opts.Required {
		input.SetAttribute("required", "required")
	}
	if opts.Label == "" {
		return input
	}
	return labelWrap(input, opts.Label, opts.Name)
}

// NewButton creates a <button> element.
func NewButton(text, buttonType string) *Element {
	if buttonType == "" {
		buttonType = "submit"
	}
	el := newKind(KindButton, "button")
	el.SetAttribute("type", buttonType)
	el.AddClass("btn btn-primary")
	el.Content = Text(text)
	return el
}

// NewTextArea creates a <textarea> control, optionally wrapped with a label.
func NewTextArea(name, value string, rows int, label string) *Element {
	if rows <= 0 {
		rows = 3
	}
	area := newKind(KindTextArea, "textarea")
	area.SetAttribute("name", name)
	area.SetAttribute("rows", strconv.Itoa(rows))
	area.AddClass("form-control")
	area.Content = Text(value)
	if label == "" {
		return area
	}
	return labelWrap(area, label, name)
}

// NewSelect creates a <select> control with one <option> per entry.
func NewSelect(name string, options []string, label string) *Element {
	sel := newKind(KindSelect, "select")
	sel.SetAttribute("name", name)
	sel.AddClass("form-select")
	for _, opt := range options {
		optEl := New("option")
		optEl.SetAttribute("value", opt)
		optEl.Content = Text(opt)
		sel.AddContent(optEl)
	}
	if label == "" {
		return sel
	}
	return labelWrap(sel, label, name)
}

// labelWrap wraps a control in a margin div with a leading <label>. The
// wrapper is plain structural data, so labeled controls round-trip through
// serialization like any other tree.
func labelWrap(control *Element, label, name string) *Element {
	labelEl := New("label")
	labelEl.AddClass("form-label")
	labelEl.SetAttribute("for", name)
	labelEl.Content = Text(label)

	wrapper := NewDiv()
	wrapper.AddClass("mb-3")
	wrapper.AddContent(labelEl)
	wrapper.AddContent(control)
	return wrapper
}
