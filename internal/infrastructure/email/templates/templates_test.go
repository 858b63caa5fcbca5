package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetParagraph_EscapesHTML(t *testing.T) {
	out := GetParagraph(`<script>alert("x")</script> & more`)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp; more")
}

func TestGetButton_RejectsUnsafeScheme(t *testing.T) {
	out := GetButton(ButtonProps{Text: "View", URL: "javascript:alert(1)"})

	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `href="#"`)
}

func TestGetButton_InvalidColorsFallBack(t *testing.T) {
	out := GetButton(ButtonProps{
		Text:            "View",
		URL:             "https://example.com/p",
		BackgroundColor: "red;} body {",
		TextColor:       "#zzzzzz",
	})

	assert.Contains(t, out, "#0867ec")
	assert.Contains(t, out, "#ffffff")
	assert.NotContains(t, out, "body {")
}

func TestGetShareEmailContent_ComposesBody(t *testing.T) {
	out := GetShareEmailContent(ShareEmailProps{
		PageTitle:  "Launch <Plan>",
		PageURL:    "https://pageforge.dev/pages/launch.html",
		SenderNote: "Take a look",
	})

	assert.Contains(t, out, "Launch &lt;Plan&gt;")
	assert.Contains(t, out, "Take a look")
	assert.Contains(t, out, `href="https://pageforge.dev/pages/launch.html"`)
}

func TestGetEmailLayout_WrapsContentWithoutEscaping(t *testing.T) {
	out := GetEmailLayout(EmailLayoutProps{
		Preheader: "shared page",
		Content:   "<p>body</p>",
	})

	assert.Contains(t, out, "<p>body</p>")
	assert.Contains(t, out, "shared page")
	assert.Contains(t, out, "PageForge")
	assert.NotContains(t, out, "Unsubscribe")
}
