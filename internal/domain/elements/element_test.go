package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_FluentChaining(t *testing.T) {
	el := New("div").AddClass("box").SetID("main").SetAttribute("data-role", "widget")

	assert.Equal(t, "box", el.Attributes["class"])
	assert.Equal(t, "main", el.Attributes["id"])
	assert.Equal(t, "widget", el.Attributes["data-role"])
}

func TestElement_AddClassAppends(t *testing.T) {
	el := New("div").AddClass("first").AddClass("second")
	assert.Equal(t, "first second", el.Attributes["class"])
}

func TestElement_AddStyleSeparator(t *testing.T) {
	el := New("div").SetStyle("color: red")
	el.AddStyle("font-size: 12px")
	assert.Equal(t, "color: red; font-size: 12px", el.Attributes["style"])

	// An existing trailing semicolon is not doubled.
	el2 := New("div").SetStyle("color: red;")
	el2.AddStyle("font-size: 12px")
	assert.Equal(t, "color: red; font-size: 12px", el2.Attributes["style"])
}

func TestElement_RenderAttributesCanonicalOrder(t *testing.T) {
	el := New("div").
		SetAttribute("title", "t").
		SetAttribute("data-x", "1").
		SetStyle("color: red").
		SetID("main").
		AddClass("box")

	// class, id, style first, then remaining attributes alphabetically,
	// regardless of insertion order.
	assert.Equal(t, ` class="box" id="main" style="color: red" data-x="1" title="t"`, el.RenderAttributes())
}

func TestElement_RenderGeneric(t *testing.T) {
	el := New("div").AddClass("wrap")
	el.AddContent(NewParagraph("hello"))

	assert.Equal(t, `<div class="wrap"><p>hello</p></div>`, el.Render())
}

func TestElement_RenderVoidTag(t *testing.T) {
	el := New("br")
	assert.Equal(t, "<br>", el.Render())

	img := NewImage("/a.png", "alt text")
	assert.Equal(t, `<img alt="alt text" src="/a.png">`, img.Render())
	assert.NotContains(t, img.Render(), "</img>")
}

func TestElement_RenderIdempotent(t *testing.T) {
	el := New("div").AddClass("box")
	el.AddContent(NewParagraph("one"))
	el.AddChild(NewParagraph("two"))

	first := el.Render()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, el.Render())
	}
}

func TestElement_RenderChildrenAfterContent(t *testing.T) {
	el := New("div")
	el.AddText("lead")
	el.AddChild(New("span").AddClass("extra"))

	assert.Equal(t, `<div>lead<span class="extra"></span></div>`, el.Render())
}

func TestElement_EventHandlers(t *testing.T) {
	el := New("button").OnClick("doThing()")
	assert.Equal(t, "doThing()", el.Attributes["onclick"])
	assert.Contains(t, el.Render(), `onclick="doThing()"`)

	form := NewForm("/submit", "").OnSubmit("return validate()")
	assert.Equal(t, "return validate()", form.Attributes["onsubmit"])
}

func TestContent_AppendPromotesShape(t *testing.T) {
	var c Content
	require.True(t, c.IsEmpty())

	c = c.Append(TextItem("a"))
	assert.True(t, c.IsText())

	c = c.Append(TextItem("b"))
	require.True(t, c.IsMany())
	assert.Len(t, c.Items(), 2)

	c = c.Append(NodeItem(New("span")))
	assert.Len(t, c.Items(), 3)
}
