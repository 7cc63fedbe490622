package components

// Text shows a fixed block of text.
type Text struct {
	Body string
}

// NewText creates a text content.
func NewText(body string) *Text {
	return &Text{Body: body}
}

// Render wraps the text to the box width.
func (t *Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fit(mutedStyle.Width(width).Render(t.Body), width, height)
}
