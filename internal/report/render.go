package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Render formats Markdown for the terminal. width <= 0 disables wrapping.
func Render(md string, width int, dark bool) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
