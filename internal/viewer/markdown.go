// ABOUTME: Markdown to styled terminal lines via glamour
// ABOUTME: Output lines are ready for the pager; trailing blank lines are trimmed

package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md with the named glamour standard style ("dark",
// "light", "notty", ...) wrapped at wrap columns, and splits the result
// into lines.
func RenderMarkdown(md string, wrap int, style string) ([]string, error) {
	if md == "" {
		return nil, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	rendered = strings.TrimRight(rendered, "\n ")
	return strings.Split(rendered, "\n"), nil
}
