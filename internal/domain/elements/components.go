package elements

import (
	"fmt"
	"strconv"
)

// NewCard creates a Bootstrap card. Title and body become structural child
// elements, so cards survive serialization without any cached markup.
func NewCard(title, body string) *Element {
	card := newKind(KindCard, "div")
	card.AddClass("card")

	cardBody := NewDiv()
	cardBody.AddClass("card-body")
	if title != "" {
		titleEl := New("h5")
		titleEl.AddClass("card-title")
		titleEl.Content = Text(title)
		cardBody.AddContent(titleEl)
	}
	if body != "" {
		textEl := New("p")
		textEl.AddClass("card-text")
		textEl.Content = Text(body)
		cardBody.AddContent(textEl)
	}

	card.Content = Child(cardBody)
	return card
}

// NewAlert creates a Bootstrap alert. Dismissible alerts carry a close
// button as a trailing content item.
func NewAlert(message, alertType string, dismissible bool) *Element {
	if alertType == "" {
		alertType = "info"
	}
	alert := newKind(KindAlert, "div")
	alert.AddClass("alert alert-" + alertType)
	alert.SetAttribute("role", "alert")
	alert.Content = Text(message)

	if dismissible {
		alert.AddClass("alert-dismissible fade show")
		closeBtn := New("button")
		closeBtn.AddClass("btn-close")
		closeBtn.SetAttribute("type", "button")
		closeBtn.SetAttribute("data-bs-dismiss", "alert")
		alert.AddContent(closeBtn)
	}

	return alert
}

// NewBadge creates a Bootstrap badge span.
func NewBadge(text, badgeType string) *Element {
	if badgeType == "" {
		badgeType = "secondary"
	}
	badge := newKind(KindBadge, "span")
	badge.AddClass("badge bg-" + badgeType)
	badge.Content = Text(text)
	return badge
}

// ProgressBarOptions configures a progress bar.
type ProgressBarOptions struct {
	Value    int
	MaxValue int
	Label    string
	BarType  string
	Striped  bool
	Animated bool
}

// NewProgressBar creates a Bootstrap progress bar. The filled width is
// derived from Value/MaxValue at construction; both values remain readable
// from the inner bar's aria attributes.
func NewProgressBar(opts ProgressBarOptions) *Element {
	if opts.MaxValue <= 0 {
		opts.MaxValue = 100
	}
	if opts.BarType == "" {
		opts.BarType = "primary"
	}

	outer := newKind(KindProgressBar, "div")
	outer.AddClass("progress")

	bar := NewDiv()
	bar.AddClass("progress-bar bg-" + opts.BarType)
	if opts.Striped {
		bar.AddClass("progress-bar-striped")
	}
	if opts.Animated {
		bar.AddClass("progress-bar-animated")
	}
	percentage := float64(opts.Value) / float64(opts.MaxValue) * 100
	bar.SetStyle(fmt.Sprintf("width: %.0f%%", percentage))
	bar.SetAttribute("role", "progressbar")
	bar.SetAttribute("aria-valuenow", strconv.Itoa(opts.Value))
	bar.SetAttribute("aria-valuemin", "0")
	bar.SetAttribute("aria-valuemax", strconv.Itoa(opts.MaxValue))
	bar.Content = Text(opts.Label)

	outer.Content = Child(bar)
	return outer
}

// NewAccordion creates a Bootstrap accordion. Items are nested children; ids
// for collapse targets derive from the accordion id and item index, so they
// are stable across rebuilds.
func NewAccordion(accordionID string) *Element {
	if accordionID == "" {
		accordionID = "accordion"
	}
	acc := newKind(KindAccordion, "div")
	acc.AddClass("accordion")
	acc.SetID(accordionID)
	return acc
}

// AddAccordionItem appends a titled collapsible section to an accordion.
func (e *Element) AddAccordionItem(title, content string, expanded bool) *Element {
	accordionID, _ := e.Attr("id")
	itemID := fmt.Sprintf("%s-item-%d", accordionID, len(e.Children))

	header := New("h2")
	header.AddClass("accordion-header")

	button := New("button")
	button.AddClass("accordion-button")
	if !expanded {
		button.AddClass("collapsed")
	}
	button.SetAttribute("type", "button")
	button.SetAttribute("data-bs-toggle", "collapse")
	button.SetAttribute("data-bs-target", "#"+itemID)
	button.Content = Text(title)
	header.AddContent(button)

	collapse := NewDiv()
	collapse.SetID(itemID)
	collapse.AddClass("accordion-collapse collapse")
	if expanded {
		collapse.AddClass("show")
	}
	collapse.SetAttribute("data-bs-parent", "#"+accordionID)

	body := NewDiv()
	body.AddClass("accordion-body")
	body.Content = Text(content)
	collapse.AddContent(body)

	item := NewDiv()
	item.AddClass("accordion-item")
	item.AddContent(header)
	item.AddContent(collapse)

	return e.AddChild(item)
}

// NewModal creates a Bootstrap modal dialog.
func NewModal(modalID, title, body string) *Element {
	modal := newKind(KindModal, "div")
	modal.AddClass("modal fade")
	modal.SetID(modalID)
	modal.SetAttribute("tabindex", "-1")

	titleEl := New("h5")
	titleEl.AddClass("modal-title")
	titleEl.Content = Text(title)

	closeBtn := New("button")
	closeBtn.AddClass("btn-close")
	closeBtn.SetAttribute("type", "button")
	closeBtn.SetAttribute("data-bs-dismiss", "modal")

	header := NewDiv()
	header.AddClass("modal-header")
	header.AddContent(titleEl)
	header.AddContent(closeBtn)

	bodyEl := NewDiv()
	bodyEl.AddClass("modal-body")
	bodyEl.Content = Text(body)

	contentEl := NewDiv()
	contentEl.AddClass("modal-content")
	contentEl.AddContent(header)
	contentEl.AddContent(bodyEl)

	dialog := NewDiv()
	dialog.AddClass("modal-dialog")
	dialog.AddContent(contentEl)

	modal.Content = Child(dialog)
	return modal
}

// NavItem is one navigation link in a navbar.
type NavItem struct {
	Text string
	URL  string
}

// NewNavbar creates a Bootstrap navbar with the given brand and links.
func NewNavbar(brandName, brandURL string, items []NavItem, theme string) *Element {
	if theme == "" {
		theme = "dark"
	}
	nav := newKind(KindNavbar, "nav")
	nav.AddClass("navbar navbar-expand-lg navbar-" + theme)
	if theme == "dark" {
		nav.AddClass("bg-dark")
	} else {
		nav.AddClass("bg-light")
	}

	brand := New("a")
	brand.AddClass("navbar-brand")
	brand.SetAttribute("href", brandURL)
	brand.Content = Text(brandName)

	toggler := New("button")
	toggler.AddClass("navbar-toggler")
	toggler.SetAttribute("type", "button")
	toggler.SetAttribute("data-bs-toggle", "collapse")
	toggler.SetAttribute("data-bs-target", "#navbarNav")
	togglerIcon := New("span")
	togglerIcon.AddClass("navbar-toggler-icon")
	toggler.AddContent(togglerIcon)

	list := New("ul")
	list.AddClass("navbar-nav ms-auto")
	for _, item := range items {
		link := New("a")
		link.AddClass("nav-link")
		link.SetAttribute("href", item.URL)
		link.Content = Text(item.Text)

		li := New("li")
		li.AddClass("nav-item")
		li.AddContent(link)
		list.AddContent(li)
	}

	collapse := NewDiv()
	collapse.AddClass("collapse navbar-collapse")
	collapse.SetID("navbarNav")
	collapse.AddContent(list)

	container := NewDiv()
	container.AddClass("container")
	container.AddContent(brand)
	container.AddContent(toggler)
	container.AddContent(collapse)

	nav.Content = Child(container)
	return nav
}

// NewHeroSection creates a hero banner with an optional subtitle and call to
// action.
func NewHeroSection(title, subtitle, buttonText, buttonURL string) *Element {
	hero := newKind(KindHeroSection, "div")
	hero.AddClass("hero-section bg-primary text-white text-center py-5")

	container := NewContainer(false)

	titleEl := New("h1")
	titleEl.AddClass("display-4")
	titleEl.Content = Text(title)
	container.AddContent(titleEl)

	if subtitle != "" {
		lead := New("p")
		lead.AddClass("lead")
		lead.Content = Text(subtitle)
		container.AddContent(lead)
	}
	if buttonText != "" {
		if buttonURL == "" {
			buttonURL = "#"
		}
		cta := New("a")
		cta.AddClass("btn btn-light btn-lg mt-3")
		cta.SetAttribute("href", buttonURL)
		cta.Content = Text(buttonText)
		container.AddContent(cta)
	}

	hero.Content = Child(container)
	return hero
}
