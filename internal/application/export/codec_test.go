package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge-go/internal/domain/elements"
	"github.com/pageforge/pageforge-go/internal/domain/pages"
)

func roundTripElement(t *testing.T, el *elements.Element) *elements.Element {
	t.Helper()
	doc, err := Encode(el)
	require.NoError(t, err)
	out, err := DecodeElement(doc)
	require.NoError(t, err)
	return out
}

func TestEncode_ElementDocument(t *testing.T) {
	el := elements.New("div").
		AddClass("box").
		SetID("main").
		SetStyle("color: red").
		SetAttribute("data-x", "1")
	el.AddText("hello")

	doc, err := Encode(el)
	require.NoError(t, err)

	assert.Equal(t, "Element", doc["type"])
	assert.Equal(t, "Element", doc["class_name"])
	assert.Equal(t, "div", doc["tag"])
	assert.Equal(t, "box", doc["css_class"])
	assert.Equal(t, "main", doc["id_attr"])
	assert.Equal(t, "color: red", doc["style"])
	assert.Equal(t, map[string]any{"data-x": "1"}, doc["attributes"])
	assert.Equal(t, "hello", doc["content"])

	// Presentation attributes live under their own keys only.
	_, hasClass := doc["attributes"].(map[string]any)["class"]
	assert.False(t, hasClass)
}

func TestRoundTrip_RenderEquality(t *testing.T) {
	heading, err := elements.NewHeading("Deep", 3)
	require.NoError(t, err)

	form := elements.NewForm("/send", "").
		AddField(elements.NewInput(elements.InputOptions{Name: "email", Label: "Email", Required: true})).
		AddField(elements.NewButton("Send", ""))

	row := elements.NewRow().
		AddColumn(elements.NewColumn(6).AddContent(elements.NewCard("Card", "Body"))).
		AddColumn(elements.NewColumn(6).AddContent(form))

	root := elements.NewSection().AddClass("wrap")
	root.AddContent(heading)
	root.AddContent(elements.NewList([]string{"a", "b"}, true))
	root.AddContent(row)
	root.AddChild(elements.NewAlert("done", "success", true))

	rebuilt := roundTripElement(t, root)
	assert.Equal(t, root.Render(), rebuilt.Render())
	assert.Equal(t, root.Kind, rebuilt.Kind)
}

func TestRoundTrip_ListVariant(t *testing.T) {
	list := elements.NewList([]string{"one", "two"}, false)
	rebuilt := roundTripElement(t, list)

	assert.Equal(t, elements.KindHtmlList, rebuilt.Kind)
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", rebuilt.Render())
}

func TestRoundTrip_HeadingLevelSurvives(t *testing.T) {
	h, err := elements.NewHeading("T", 4)
	require.NoError(t, err)

	rebuilt := roundTripElement(t, h)
	assert.Equal(t, 4, elements.HeadingLevel(rebuilt))
	assert.Equal(t, "<h4>T</h4>", rebuilt.Render())
}

func TestDecode_UnknownVariantDegrades(t *testing.T) {
	out, err := DecodeElement(map[string]any{
		"type":       "Element",
		"class_name": "FancyWidget",
		"tag":        "div",
		"content":    "x",
	})
	require.NoError(t, err)

	assert.Equal(t, elements.KindElement, out.Kind)
	assert.Equal(t, "<div>x</div>", out.Render())
}

func TestDecode_LegacyItemsKey(t *testing.T) {
	out, err := DecodeElement(map[string]any{
		"type":       "Element",
		"class_name": "HtmlList",
		"tag":        "ul",
		"items":      []any{"one", "two"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", out.Render())
}

func TestEncode_UnsupportedValues(t *testing.T) {
	for _, v := range []any{42, "nope", struct{}{}, nil} {
		_, err := Encode(v)
		assert.ErrorIs(t, err, ErrUnsupportedType, "value %#v", v)
	}
}

func TestDecode_MissingTypeMarker(t *testing.T) {
	_, err := Decode(map[string]any{"tag": "div"})
	var derr *DeserializationError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "type", derr.Key)
}

func TestDecode_MalformedShapes(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
	}{
		{"attributes not object", map[string]any{"type": "Element", "attributes": "bad"}},
		{"attribute value not string", map[string]any{"type": "Element", "attributes": map[string]any{"k": 7}}},
		{"children not array", map[string]any{"type": "Element", "child_elements": "bad"}},
		{"child entry not object", map[string]any{"type": "Element", "child_elements": []any{42}}},
		{"content shape unknown", map[string]any{"type": "Element", "content": 3.14}},
		{"content entry unknown", map[string]any{"type": "Element", "content": []any{true}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.doc)
			var derr *DeserializationError
			assert.ErrorAs(t, err, &derr)
		})
	}
}

func TestPage_RoundTrip(t *testing.T) {
	p := pages.New("Landing", "Welcome")
	p.LogoURL = "/logo.png"
	p.AddMetaTag("description", "a page")
	p.AddNavLink("Docs", "/docs")
	p.AddCustomCSS(".hero { padding: 2rem; }")
	p.AddCustomJS("init();")
	p.AddBodyClass("landing")
	p.AddElement(elements.NewHeroSection("Big", "Small", "Go", "/go"))
	p.AddHTML("<!-- raw -->")

	doc, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, "Page", doc["type"])

	rebuilt, err := DecodePage(doc)
	require.NoError(t, err)
	assert.Equal(t, p.GenerateHTML(), rebuilt.GenerateHTML())
}

func TestDecodePage_ThemeRegistersFrameworkAssets(t *testing.T) {
	// Hand-authored documents name the theme without spelling out its assets.
	rebuilt, err := DecodePage(map[string]any{
		"type":        "Page",
		"title":       "T",
		"header_text": "H",
		"theme":       "bootstrap",
	})
	require.NoError(t, err)

	html := rebuilt.GenerateHTML()
	assert.Contains(t, html, "bootstrap.min.css")
	assert.Contains(t, html, "bootstrap.bundle.min.js")
	assert.Contains(t, html, `<main class="container mt-4">`)
}

func TestPage_RoundTripKeepsSingleThemeAssets(t *testing.T) {
	p := pages.New("T", "H")
	doc, err := Encode(p)
	require.NoError(t, err)

	rebuilt, err := DecodePage(doc)
	require.NoError(t, err)

	html := rebuilt.GenerateHTML()
	assert.Equal(t, 1, strings.Count(html, "bootstrap.min.css"))
	assert.Equal(t, 1, strings.Count(html, "bootstrap.bundle.min.js"))
}

func TestPage_FragmentShapesSurvive(t *testing.T) {
	p := pages.New("T", "H")
	p.AddElement(elements.NewParagraph("live"))
	p.AddHTML("<p>raw</p>")

	doc, err := Encode(p)
	require.NoError(t, err)
	rebuilt, err := DecodePage(doc)
	require.NoError(t, err)

	content := rebuilt.Content()
	require.Len(t, content, 2)
	assert.True(t, content[0].IsElement())
	assert.False(t, content[1].IsElement())
	assert.Equal(t, "<p>raw</p>", content[1].HTML())
}
