package elements

import "strconv"

// NewRow creates a Bootstrap grid row. Columns added via AddColumn are kept
// as structural children and serialized under the columns key.
func NewRow() *Element {
	el := newKind(KindRow, "div")
	el.AddClass("row")
	return el
}

// AddColumn appends a column to a row and returns the row for chaining.
func (e *Element) AddColumn(col *Element) *Element {
	e.Columns = append(e.Columns, col)
	return e
}

// NewColumn creates a Bootstrap grid column. A width of 0 yields the
// auto-sizing "col" class, 1-12 the fixed "col-N" class.
func NewColumn(width int) *Element {
	el := newKind(KindColumn, "div")
	if width > 0 {
		el.AddClass("col-" + strconv.Itoa(width))
	} else {
		el.AddClass("col")
	}
	return el
}

var (
	flexJustify = map[string]string{
		"start":   "justify-content-start",
		"end":     "justify-content-end",
		"center":  "justify-content-center",
		"between": "justify-content-between",
		"around":  "justify-content-around",
		"evenly":  "justify-content-evenly",
	}
	flexAlign = map[string]string{
		"start":    "align-items-start",
		"end":      "align-items-end",
		"center":   "align-items-center",
		"baseline": "align-items-baseline",
		"stretch":  "align-items-stretch",
	}
)

// FlexOptions configures a flexbox container.
type FlexOptions struct {
	Direction string // "row", "column", "row-reverse", "column-reverse"
	Justify   string // keys of flexJustify
	Align     string // keys of flexAlign
	Wrap      bool
}

// NewFlex creates a flexbox container div.
func NewFlex(opts FlexOptions) *Element {
	el := newKind(KindFlex, "div")
	el.AddClass("d-flex")

	switch opts.Direction {
	case "column":
		el.AddClass("flex-column")
	case "row-reverse":
		el.AddClass("flex-row-reverse")
	case "column-reverse":
		el.AddClass("flex-column-reverse")
	}

	if class, ok := flexJustify[opts.Justify]; ok {
		el.AddClass(class)
	}
	if class, ok := flexAlign[opts.Align]; ok {
		el.AddClass(class)
	}
	if opts.Wrap {
		el.AddClass("flex-wrap")
	}

	return el
}
