package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	html := NewCard("Title", "Body text").Render()

	assert.Contains(t, html, `<div class="card">`)
	assert.Contains(t, html, `<h5 class="card-title">Title</h5>`)
	assert.Contains(t, html, `<p class="card-text">Body text</p>`)
}

func TestNewCard_EmptyParts(t *testing.T) {
	html := NewCard("", "only body").Render()
	assert.NotContains(t, html, "card-title")
	assert.Contains(t, html, "only body")
}

func TestNewAlert(t *testing.T) {
	html := NewAlert("careful now", "warning", false).Render()
	assert.Contains(t, html, "alert alert-warning")
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "careful now")
	assert.NotContains(t, html, "btn-close")
}

func TestNewAlert_Dismissible(t *testing.T) {
	html := NewAlert("bye", "danger", true).Render()
	assert.Contains(t, html, "alert-dismissible fade show")
	assert.Contains(t, html, "btn-close")
	assert.Contains(t, html, `data-bs-dismiss="alert"`)
}

func TestNewAlert_DefaultType(t *testing.T) {
	html := NewAlert("hi", "", false).Render()
	assert.Contains(t, html, "alert-info")
}

func TestNewBadge(t *testing.T) {
	assert.Equal(t, `<span class="badge bg-success">ok</span>`, NewBadge("ok", "success").Render())
	assert.Contains(t, NewBadge("x", "").Render(), "bg-secondary")
}

func TestNewProgressBar(t *testing.T) {
	html := NewProgressBar(ProgressBarOptions{Value: 25, MaxValue: 50, Label: "half"}).Render()

	assert.Contains(t, html, `<div class="progress">`)
	assert.Contains(t, html, "width: 50%")
	assert.Contains(t, html, `aria-valuenow="25"`)
	assert.Contains(t, html, `aria-valuemax="50"`)
	assert.Contains(t, html, "half")
}

func TestNewProgressBar_Defaults(t *testing.T) {
	html := NewProgressBar(ProgressBarOptions{Value: 30, Striped: true, Animated: true}).Render()
	assert.Contains(t, html, "bg-primary")
	assert.Contains(t, html, "progress-bar-striped")
	assert.Contains(t, html, "progress-bar-animated")
	assert.Contains(t, html, "width: 30%")
	assert.Contains(t, html, `aria-valuemax="100"`)
}

func TestAccordion_StableItemIDs(t *testing.T) {
	acc := NewAccordion("faq")
	acc.AddAccordionItem("Q1", "A1", true)
	acc.AddAccordionItem("Q2", "A2", false)

	html := acc.Render()
	assert.Contains(t, html, `id="faq-item-0"`)
	assert.Contains(t, html, `id="faq-item-1"`)
	assert.Contains(t, html, `data-bs-target="#faq-item-0"`)
	assert.Contains(t, html, `data-bs-parent="#faq"`)

	// First item expanded, second collapsed.
	assert.Contains(t, html, "accordion-collapse collapse show")
	assert.Contains(t, html, `class="accordion-button collapsed"`)
}

func TestNewModal(t *testing.T) {
	html := NewModal("confirm", "Confirm", "Are you sure?").Render()

	assert.Contains(t, html, `class="modal fade" id="confirm"`)
	assert.Contains(t, html, `tabindex="-1"`)
	assert.Contains(t, html, `<h5 class="modal-title">Confirm</h5>`)
	assert.Contains(t, html, "Are you sure?")
	assert.Contains(t, html, `data-bs-dismiss="modal"`)
}

func TestNewNavbar(t *testing.T) {
	nav := NewNavbar("Acme", "/", []NavItem{{Text: "Home", URL: "/"}, {Text: "About", URL: "/about"}}, "dark")
	html := nav.Render()

	require.Contains(t, html, "navbar navbar-expand-lg navbar-dark bg-dark")
	assert.Contains(t, html, `<a class="navbar-brand" href="/">Acme</a>`)
	assert.Contains(t, html, "navbar-toggler-icon")
	assert.Contains(t, html, `<a class="nav-link" href="/about">About</a>`)
}

func TestNewNavbar_LightTheme(t *testing.T) {
	html := NewNavbar("Acme", "/", nil, "light").Render()
	assert.Contains(t, html, "navbar-light bg-light")
}

func TestNewHeroSection(t *testing.T) {
	html := NewHeroSection("Welcome", "The subtitle", "Get Started", "/start").Render()

	assert.Contains(t, html, "hero-section bg-primary text-white text-center py-5")
	assert.Contains(t, html, `<h1 class="display-4">Welcome</h1>`)
	assert.Contains(t, html, `<p class="lead">The subtitle</p>`)
	assert.Contains(t, html, `href="/start"`)
}

func TestNewHeroSection_OptionalParts(t *testing.T) {
	html := NewHeroSection("Welcome", "", "", "").Render()
	assert.NotContains(t, html, "lead")
	assert.NotContains(t, html, "btn-light")

	// A button with no URL falls back to a fragment link.
	withButton := NewHeroSection("W", "", "Go", "").Render()
	assert.Contains(t, withButton, `href="#"`)
}
