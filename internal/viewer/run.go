// ABOUTME: Entry point for the Bubble Tea pager
// ABOUTME: Runs the program on the given streams in the alternate screen until the user quits

package viewer

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows m full-screen and blocks until the user quits or ctx is done.
// A nil in reads keys from the controlling terminal, for content piped on stdin.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}
	if in == nil {
		opts = append(opts, tea.WithInputTTY())
	} else {
		opts = append(opts, tea.WithInput(in))
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
