package pages

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge-go/internal/domain/elements"
)

func TestNew_RegistersBootstrapAssets(t *testing.T) {
	p := New("Home", "Welcome")

	assert.Equal(t, ThemeBootstrap, p.Theme)
	require.Len(t, p.CSSLinks(), 1)
	assert.Contains(t, p.CSSLinks()[0], "bootstrap")
	require.Len(t, p.Scripts(), 1)
	assert.Contains(t, p.Scripts()[0], "bootstrap")
}

func TestSetTheme_Idempotent(t *testing.T) {
	p := New("Home", "Welcome")
	p.SetTheme(ThemeBootstrap)
	p.SetTheme(ThemeBootstrap)

	assert.Len(t, p.CSSLinks(), 1)
	assert.Len(t, p.Scripts(), 1)
}

func TestGenerateHTML_DocumentStructure(t *testing.T) {
	p := New("My Page", "My Header")
	html := p.GenerateHTML()

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<html lang="en"`)
	assert.Contains(t, html, "<title>My Page</title>")
	assert.Contains(t, html, `<h1 class="h3 mb-0">My Header</h1>`)
	assert.True(t, strings.HasSuffix(html, "</html>"))

	// Title and header each appear exactly once.
	assert.Equal(t, 1, strings.Count(html, "My Page"))
	assert.Equal(t, 1, strings.Count(html, "My Header"))
}

func TestGenerateHTML_HeadOrderPreserved(t *testing.T) {
	p := New("T", "H")
	p.AddMetaTag("description", "first")
	p.AddMetaTag("keywords", "second")
	p.AddCSSLink("/a.css")
	p.AddCSSLink("/b.css")

	html := p.GenerateHTML()
	assert.Less(t, strings.Index(html, "description"), strings.Index(html, "keywords"))
	assert.Less(t, strings.Index(html, "/a.css"), strings.Index(html, "/b.css"))
}

func TestAddMetaTag_UpdatesInPlace(t *testing.T) {
	p := New("T", "H")
	p.AddMetaTag("description", "old")
	p.AddMetaTag("author", "me")
	p.AddMetaTag("description", "new")

	tags := p.MetaTags()
	require.Len(t, tags, 2)
	assert.Equal(t, "description", tags[0].Name)
	assert.Equal(t, "new", tags[0].Content)
}

func TestAddCSSLink_Deduplicates(t *testing.T) {
	p := New("T", "H")
	p.AddCSSLink("/a.css")
	p.AddCSSLink("/a.css")
	assert.Equal(t, 1, strings.Count(p.GenerateHTML(), "/a.css"))
}

func TestGenerateHTML_FragmentsInOrder(t *testing.T) {
	p := New("T", "H")
	heading, err := elements.NewHeading("Section", 2)
	require.NoError(t, err)
	p.AddElement(heading)
	p.AddHTML("<p>raw middle</p>")
	p.AddElement(elements.NewParagraph("last"))

	html := p.GenerateHTML()
	first := strings.Index(html, "<h2>Section</h2>")
	second := strings.Index(html, "<p>raw middle</p>")
	third := strings.Index(html, "<p>last</p>")

	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestGenerateHTML_RawFragmentsPassThrough(t *testing.T) {
	p := New("T", "H")
	p.AddHTML("<custom-widget unvalidated>")
	assert.Contains(t, p.GenerateHTML(), "<custom-widget unvalidated>")
}

func TestGenerateHTML_LazyFragmentRendering(t *testing.T) {
	p := New("T", "H")
	el := elements.NewParagraph("before")
	p.AddElement(el)

	// Mutating the element after adding it is reflected in later output.
	el.AddClass("highlight")
	assert.Contains(t, p.GenerateHTML(), `<p class="highlight">before</p>`)
}

func TestGenerateHTML_NavAndLogo(t *testing.T) {
	p := New("T", "H")
	p.LogoURL = "/logo.png"
	p.AddNavLink("Docs", "/docs")

	html := p.GenerateHTML()
	assert.Contains(t, html, `<img src="/logo.png"`)
	assert.Contains(t, html, `<a class="nav-link text-light" href="/docs">Docs</a>`)
}

func TestGenerateHTML_CustomCSSAndJS(t *testing.T) {
	p := New("T", "H")
	p.AddCustomCSS(".x { color: red; }")
	p.AddCustomJS("console.log('hi');")
	p.AddBodyClass("theme-dark")

	html := p.GenerateHTML()
	assert.Contains(t, html, ".x { color: red; }")
	assert.Contains(t, html, "console.log('hi');")
	assert.Contains(t, html, `<body class="theme-dark">`)

	// Inline scripts come after framework script tags.
	assert.Less(t, strings.Index(html, "bootstrap.bundle.min.js"), strings.Index(html, "console.log"))
}

func TestSaveToFile(t *testing.T) {
	p := New("Saved", "H")
	path := filepath.Join(t.TempDir(), "out.html")

	require.NoError(t, p.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p.GenerateHTML(), string(data))
}
