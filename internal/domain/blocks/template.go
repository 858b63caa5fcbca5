// Package blocks provides reusable named HTML templates with slot
// substitution.
package blocks

import "strings"

// Template is a reusable HTML block with named slots. Slots appear in the
// body as "{{ name }}" and are replaced at render time by provided content
// or their registered defaults.
type Template struct {
	Name string
	body string

	slotOrder []string
	defaults  map[string]string
}

// NewTemplate creates a template from raw HTML with slot placeholders.
func NewTemplate(name, body string) *Template {
	return &Template{
		Name:     name,
		body:     body,
		defaults: make(map[string]string),
	}
}

// DefineSlot registers a slot and its default content.
func (t *Template) DefineSlot(name, defaultContent string) *Template {
	if _, exists := t.defaults[name]; !exists {
		t.slotOrder = append(t.slotOrder, name)
	}
	t.defaults[name] = defaultContent
	return t
}

// Render substitutes each defined slot with the provided content, falling
// back to the slot default. Unknown keys in the map are ignored.
func (t *Template) Render(slots map[string]string) string {
	out := t.body
	for _, name := range t.slotOrder {
		content, ok := slots[name]
		if !ok {
			content = t.defaults[name]
		}
		out = strings.ReplaceAll(out, "{{ "+name+" }}", content)
	}
	return out
}

// Manager is a registry of templates by name.
type Manager struct {
	templates map[string]*Template
}

// NewManager creates an empty template registry.
func NewManager() *Manager {
	return &Manager{templates: make(map[string]*Template)}
}

// Register adds a template, replacing any previous one with the same name.
func (m *Manager) Register(t *Template) *Manager {
	m.templates[t.Name] = t
	return m
}

// Get returns a template by name.
func (m *Manager) Get(name string) (*Template, bool) {
	t, ok := m.templates[name]
	return t, ok
}

// Render renders a registered template. A missing template renders as an
// HTML comment placeholder rather than failing.
func (m *Manager) Render(name string, slots map[string]string) string {
	t, ok := m.templates[name]
	if !ok {
		return "<!-- Template '" + name + "' not found -->"
	}
	return t.Render(slots)
}

// HeroTemplate returns the built-in hero section template.
func HeroTemplate() *Template {
	t := NewTemplate("hero", `
    <div class="hero-section bg-primary text-white text-center py-5">
        <div class="container">
            <h1 class="display-4">{{ title }}</h1>
            <p class="lead">{{ subtitle }}</p>
            <div class="hero-actions">
                {{ actions }}
            </div>
        </div>
    </div>
    `)
	t.DefineSlot("title", "Welcome")
	t.DefineSlot("subtitle", "Your amazing website")
	t.DefineSlot("actions", "")
	return t
}

// CardGridTemplate returns the built-in card grid template.
func CardGridTemplate() *Template {
	t := NewTemplate("card_grid", `
    <div class="container my-5">
        <div class="row">
            <div class="col-12 text-center mb-4">
                <h2>{{ section_title }}</h2>
                <p class="text-muted">{{ section_subtitle }}</p>
            </div>
        </div>
        <div class="row">
            {{ cards }}
        </div>
    </div>
    `)
	t.DefineSlot("section_title", "Features")
	t.DefineSlot("section_subtitle", "Discover what we offer")
	t.DefineSlot("cards", "")
	return t
}

// FooterTemplate returns the built-in footer template.
func FooterTemplate() *Template {
	t := NewTemplate("footer", `
    <footer class="bg-dark text-white py-4 mt-5">
        <div class="container">
            <div class="row">
                <div class="col-md-6">
                    <h5>{{ company_name }}</h5>
                    <p>{{ company_description }}</p>
                </div>
                <div class="col-md-6">
                    <h5>Links</h5>
                    {{ links }}
                </div>
            </div>
            <hr class="my-3">
            <div class="text-center">
                <small>&copy; {{ company_name }}. {{ copyright_text }}</small>
            </div>
        </div>
    </footer>
    `)
	t.DefineSlot("company_name", "Your Company")
	t.DefineSlot("company_description", "Building amazing web experiences.")
	t.DefineSlot("links", "")
	t.DefineSlot("copyright_text", "All rights reserved.")
	return t
}

// DefaultManager returns a registry preloaded with the built-in templates.
func DefaultManager() *Manager {
	m := NewManager()
	m.Register(HeroTemplate())
	m.Register(CardGridTemplate())
	m.Register(FooterTemplate())
	return m
}
