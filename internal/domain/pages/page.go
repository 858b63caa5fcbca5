// Package pages provides the Page aggregate that assembles complete HTML
// documents from element trees and raw markup fragments.
package pages

import (
	"os"
	"strings"

	"github.com/pageforge/pageforge-go/internal/domain/elements"
)

// ThemeBootstrap is the default CSS framework identifier.
const ThemeBootstrap = "bootstrap"

const (
	bootstrapCSSHref  = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css"
	bootstrapJSSrc    = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"
	defaultHeaderCSS  = "bg-dark text-light py-3"
	defaultContainerC = "container"
)

// Fragment is one body entry: a live element tree or pre-rendered markup.
// Pages keep fragments live and render them lazily in GenerateHTML, so a
// page round-trips structurally through serialization.
type Fragment struct {
	html string
	node *elements.Element
}

// HTMLFragment wraps raw markup as a body fragment.
func HTMLFragment(html string) Fragment { return Fragment{html: html} }

// ElementFragment wraps an element tree as a body fragment.
func ElementFragment(node *elements.Element) Fragment { return Fragment{node: node} }

// IsElement reports whether the fragment holds a live element tree.
func (f Fragment) IsElement() bool { return f.node != nil }

// Element returns the element tree, or nil for raw markup fragments.
func (f Fragment) Element() *elements.Element { return f.node }

// HTML returns the raw markup, or "" for element fragments.
func (f Fragment) HTML() string { return f.html }

func (f Fragment) render() string {
	if f.node != nil {
		return f.node.Render()
	}
	return f.html
}

// MetaTag is one named document meta tag. Pages keep tags in insertion order.
type MetaTag struct {
	Name    string
	Content string
}

// NavLink is one entry in the page header navigation.
type NavLink struct {
	Text string
	URL  string
}

// Page is the root aggregate: document metadata plus an ordered list of body
// fragments. Created once per generation request.
type Page struct {
	Title      string
	HeaderText string
	LogoURL    string
	Theme      string

	HeaderClass    string
	ContainerClass string

	navLinks    []NavLink
	content     []Fragment
	metaTags    []MetaTag
	cssLinks    []string
	scripts     []string
	customCSS   []string
	customJS    []string
	bodyClasses []string
}

// New creates a page with the default Bootstrap theme registered.
func New(title, headerText string) *Page {
	p := &Page{
		Title:          title,
		HeaderText:     headerText,
		ContainerClass: defaultContainerC,
	}
	p.SetTheme(ThemeBootstrap)
	return p
}

// SetTheme selects the CSS framework and registers its assets. Unknown theme
// names register nothing, leaving a bare document.
func (p *Page) SetTheme(theme string) *Page {
	p.Theme = theme
	if theme == ThemeBootstrap {
		p.AddCSSLink(bootstrapCSSHref)
		p.AddScript(bootstrapJSSrc)
	}
	return p
}

// AddMetaTag registers a named meta tag, updating in place when the name is
// already present so insertion order is stable.
func (p *Page) AddMetaTag(name, content string) *Page {
	for i := range p.metaTags {
		if p.metaTags[i].Name == name {
			p.metaTags[i].Content = content
			return p
		}
	}
	p.metaTags = append(p.metaTags, MetaTag{Name: name, Content: content})
	return p
}

// AddCSSLink registers an external stylesheet. An href that is already
// registered is skipped, so theme assets and caller links never double up.
func (p *Page) AddCSSLink(href string) *Page {
	for _, existing := range p.cssLinks {
		if existing == href {
			return p
		}
	}
	p.cssLinks = append(p.cssLinks, href)
	return p
}

// AddScript registers an external script. Already-registered sources are
// skipped, matching the AddCSSLink contract.
func (p *Page) AddScript(src string) *Page {
	for _, existing := range p.scripts {
		if existing == src {
			return p
		}
	}
	p.scripts = append(p.scripts, src)
	return p
}

// AddCustomCSS appends an inline CSS block.
func (p *Page) AddCustomCSS(css string) *Page {
	p.customCSS = append(p.customCSS, css)
	return p
}

// AddCustomJS appends an inline script block.
func (p *Page) AddCustomJS(js string) *Page {
	p.customJS = append(p.customJS, js)
	return p
}

// AddBodyClass appends a class to the <body> element.
func (p *Page) AddBodyClass(class string) *Page {
	p.bodyClasses = append(p.bodyClasses, class)
	return p
}

// SetContainerClass sets the class of the <main> content container.
func (p *Page) SetContainerClass(class string) *Page {
	p.ContainerClass = class
	return p
}

// AddNavLink appends a header navigation link.
func (p *Page) AddNavLink(text, url string) *Page {
	p.navLinks = append(p.navLinks, NavLink{Text: text, URL: url})
	return p
}

// AddElement appends a live element tree to the body.
func (p *Page) AddElement(el *elements.Element) *Page {
	p.content = append(p.content, ElementFragment(el))
	return p
}

// AddHTML appends pre-rendered markup to the body, passed through verbatim.
func (p *Page) AddHTML(html string) *Page {
	p.content = append(p.content, HTMLFragment(html))
	return p
}

// Content returns the ordered body fragments.
func (p *Page) Content() []Fragment { return p.content }

// MetaTags returns the registered meta tags in insertion order.
func (p *Page) MetaTags() []MetaTag { return p.metaTags }

// CSSLinks returns the registered stylesheet links in insertion order.
func (p *Page) CSSLinks() []string { return p.cssLinks }

// Scripts returns the registered script links in insertion order.
func (p *Page) Scripts() []string { return p.scripts }

// CustomCSS returns the inline CSS blocks.
func (p *Page) CustomCSS() []string { return p.customCSS }

// CustomJS returns the inline script blocks.
func (p *Page) CustomJS() []string { return p.customJS }

// NavLinks returns the header navigation links.
func (p *Page) NavLinks() []NavLink { return p.navLinks }

// BodyClasses returns the extra classes applied to the body tag.
func (p *Page) BodyClasses() []string { return p.bodyClasses }

func (p *Page) renderMetaTags() string {
	var sb strings.Builder
	for _, tag := range p.metaTags {
		sb.WriteString(`    <meta name="` + tag.Name + `" content="` + tag.Content + "\">\n")
	}
	return sb.String()
}

func (p *Page) renderCSSLinks() string {
	var sb strings.Builder
	for _, href := range p.cssLinks {
		sb.WriteString(`    <link rel="stylesheet" href="` + href + "\">\n")
	}
	return sb.String()
}

func (p *Page) renderScripts() string {
	var sb strings.Builder
	for _, src := range p.scripts {
		sb.WriteString(`    <script src="` + src + "\"></script>\n")
	}
	for _, js := range p.customJS {
		sb.WriteString("    <script>\n" + js + "\n    </script>\n")
	}
	return sb.String()
}

func (p *Page) renderNavbar() string {
	if len(p.navLinks) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<nav class="navbar-nav"><ul class="nav">`)
	for _, link := range p.navLinks {
		sb.WriteString(`<li class="nav-item"><a class="nav-link text-light" href="` + link.URL + `">` + link.Text + `</a></li>`)
	}
	sb.WriteString(`</ul></nav>`)
	return sb.String()
}

func (p *Page) renderHeader() string {
	headerClass := p.HeaderClass
	if headerClass == "" {
		headerClass = defaultHeaderCSS
	}

	logoHTML := ""
	if p.LogoURL != "" {
		logoHTML = `<img src="` + p.LogoURL + `" alt="Logo" class="logo me-3" style="height: 40px;">`
	}

	var sb strings.Builder
	sb.WriteString(`    <header class="` + headerClass + "\">\n")
	sb.WriteString("        <div class=\"container\">\n")
	sb.WriteString("            <div class=\"d-flex align-items-center justify-content-between\">\n")
	sb.WriteString(`                <div class="d-flex align-items-center">` + logoHTML + `<h1 class="h3 mb-0">` + p.HeaderText + "</h1></div>\n")
	if nav := p.renderNavbar(); nav != "" {
		sb.WriteString("                " + nav + "\n")
	}
	sb.WriteString("            </div>\n")
	sb.WriteString("        </div>\n")
	sb.WriteString("    </header>\n")
	return sb.String()
}

// GenerateHTML produces the complete document. Head entries keep their
// registration order; body fragments render in insertion order and pass
// through without validation.
func (p *Page) GenerateHTML() string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\" data-bs-theme=\"dark\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("    <title>" + p.Title + "</title>\n")
	sb.WriteString(p.renderMetaTags())
	sb.WriteString(p.renderCSSLinks())
	if len(p.customCSS) > 0 {
		sb.WriteString("    <style>\n")
		for _, css := range p.customCSS {
			sb.WriteString(css + "\n")
		}
		sb.WriteString("    </style>\n")
	}
	sb.WriteString("</head>\n")

	if len(p.bodyClasses) > 0 {
		sb.WriteString(`<body class="` + strings.Join(p.bodyClasses, " ") + "\">\n")
	} else {
		sb.WriteString("<body>\n")
	}

	sb.WriteString(p.renderHeader())

	sb.WriteString(`    <main class="` + p.ContainerClass + " mt-4\">\n")
	for _, fragment := range p.content {
		sb.WriteString("        " + fragment.render() + "\n")
	}
	sb.WriteString("    </main>\n")

	sb.WriteString(p.renderScripts())
	sb.WriteString("</body>\n")
	sb.WriteString("</html>")

	return sb.String()
}

// SaveToFile writes the generated document to disk.
func (p *Page) SaveToFile(path string) error {
	return os.WriteFile(path, []byte(p.GenerateHTML()), 0644)
}
