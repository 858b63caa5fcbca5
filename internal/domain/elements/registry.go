package elements

import "sync"

// Variant kind names. These are the class_name values used in serialized
// documents; the registry below maps each to its factory.
const (
	KindElement     = "Element"
	KindText        = "Text"
	KindParagraph   = "Paragraph"
	KindHeading     = "Heading"
	KindHtmlList    = "HtmlList"
	KindImage       = "Image"
	KindLink        = "Link"
	KindDiv         = "Div"
	KindSection     = "Section"
	KindCard        = "Card"
	KindContainer   = "Container"
	KindRow         = "Row"
	KindColumn      = "Column"
	KindFlex        = "Flex"
	KindForm        = "Form"
	KindInput       = "Input"
	KindButton      = "Button"
	KindTextArea    = "TextArea"
	KindSelect      = "Select"
	KindAlert       = "Alert"
	KindBadge       = "Badge"
	KindProgressBar = "ProgressBar"
	KindAccordion   = "Accordion"
	KindModal       = "Modal"
	KindNavbar      = "Navbar"
	KindHeroSection = "HeroSection"
)

// Factory produces a bare element of a concrete variant, ready for the
// deserializer (or a plugin) to fill with structural data.
type Factory func() *Element

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// RegisterVariant adds a variant factory to the registry. Intended for
// process-start registration; later registrations replace earlier ones.
func RegisterVariant(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// VariantFactory looks up a registered factory by variant name.
func VariantFactory(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	return factory, ok
}

// Variants lists all registered variant names.
func Variants() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func bare(kind, tag string) Factory {
	return func() *Element { return newKind(kind, tag) }
}

func init() {
	RegisterVariant(KindElement, bare(KindElement, "div"))
	RegisterVariant(KindText, bare(KindText, ""))
	RegisterVariant(KindParagraph, bare(KindParagraph, "p"))
	RegisterVariant(KindHeading, bare(KindHeading, "h1"))
	RegisterVariant(KindHtmlList, bare(KindHtmlList, "ul"))
	RegisterVariant(KindImage, bare(KindImage, "img"))
	RegisterVariant(KindLink, bare(KindLink, "a"))
	RegisterVariant(KindDiv, bare(KindDiv, "div"))
	RegisterVariant(KindSection, bare(KindSection, "section"))
	RegisterVariant(KindCard, bare(KindCard, "div"))
	RegisterVariant(KindContainer, bare(KindContainer, "div"))
	RegisterVariant(KindRow, bare(KindRow, "div"))
	RegisterVariant(KindColumn, bare(KindColumn, "div"))
	RegisterVariant(KindFlex, bare(KindFlex, "div"))
	RegisterVariant(KindForm, bare(KindForm, "form"))
	RegisterVariant(KindInput, bare(KindInput, "input"))
	RegisterVariant(KindButton, bare(KindButton, "button"))
	RegisterVariant(KindTextArea, bare(KindTextArea, "textarea"))
	RegisterVariant(KindSelect, bare(KindSelect, "select"))
	RegisterVariant(KindAlert, bare(KindAlert, "div"))
	RegisterVariant(KindBadge, bare(KindBadge, "span"))
	RegisterVariant(KindProgressBar, bare(KindProgressBar, "div"))
	RegisterVariant(KindAccordion, bare(KindAccordion, "div"))
	RegisterVariant(KindModal, bare(KindModal, "div"))
	RegisterVariant(KindNavbar, bare(KindNavbar, "nav"))
	RegisterVariant(KindHeroSection, bare(KindHeroSection, "div"))
}
