// Package templates provides the page share email template
package templates

import "fmt"

// ShareEmailProps contains the data for a page share email.
type ShareEmailProps struct {
	SenderNote string
	PageTitle  string
	PageURL    string
}

// GetShareEmailContent composes the body of a page share notification.
func GetShareEmailContent(props ShareEmailProps) string {
	content := GetParagraph(fmt.Sprintf("A page has been shared with you: %s", props.PageTitle))

	if props.SenderNote != "" {
		content += GetParagraph(props.SenderNote)
	}

	content += GetButton(ButtonProps{
		Text: "View the page",
		URL:  props.PageURL,
	})

	content += GetParagraph("If the button does not work, copy this link into your browser: " + props.PageURL)

	return content
}
