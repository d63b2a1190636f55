// ABOUTME: Terminal size queries for choosing a default render width
// ABOUTME: Real terminals are measured with golang.org/x/term; Virtual serves tests

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a writer is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Sizer reports terminal dimensions in columns and rows.
type Sizer interface {
	Size() (width, height int, err error)
}

// File is a terminal reached through an open file descriptor.
type File struct {
	f *os.File
}

// Detect returns a File for w when w is an *os.File attached to a terminal.
func Detect(w io.Writer) (*File, error) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, ErrNotTerminal
	}
	return &File{f: f}, nil
}

// Size returns the current terminal dimensions.
func (t *File) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Virtual is a fixed-size terminal.
type Virtual struct {
	Width, Height int
}

// Size returns the configured dimensions.
func (v Virtual) Size() (width, height int, err error) {
	return v.Width, v.Height, nil
}

// Columns returns the width reported by s. It reports false when s is nil,
// fails, or reports no columns.
func Columns(s Sizer) (int, bool) {
	if s == nil {
		return 0, false
	}
	w, _, err := s.Size()
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
