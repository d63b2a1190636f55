// ABOUTME: Subcommands exposing the width engine over lines of input
// ABOUTME: Each command maps lines through internal/batch and writes text or JSON records

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/pi-natives-go/internal/batch"
	"github.com/mauromedda/pi-natives-go/internal/config"
	pilog "github.com/mauromedda/pi-natives-go/internal/log"
	"github.com/mauromedda/pi-natives-go/internal/termfix"
	"github.com/mauromedda/pi-natives-go/internal/viewer"
	"github.com/mauromedda/pi-natives-go/pkg/tui/terminal"
	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

// fallbackWidth is used when neither the terminal nor config gives a width.
const fallbackWidth = 80

type env struct {
	settings *config.Settings
	json     bool
	term     terminal.Sizer // nil when stdout is not a terminal
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

type command struct {
	name    string
	args    string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"width", "[file]", "Print the visible width of each line", runWidth},
		{"truncate", "[-w N] [-ellipsis S] [-pad] [file]", "Cut each line to a column width with an ellipsis", runTruncate},
		{"slice", "-start N -len N [-strict] [file]", "Print a column range of each line", runSlice},
		{"segments", "-before N -after-start N -after-len N [-strict] [file]", "Print the text around an overlay window", runSegments},
		{"strip", "[-codes] [file]", "Remove escape sequences, or list them", runStrip},
		{"view", "[-markdown] [file]", "Open lines in a scrollable pager", runView},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func mustCommand(name string) command {
	c, _ := lookupCommand(name)
	return c
}

// targetWidth resolves an unset width flag: terminal, then config, then 80.
func (e *env) targetWidth() int {
	if cols, ok := terminal.Columns(e.term); ok {
		return cols
	}
	if e.settings.Width > 0 {
		return e.settings.Width
	}
	pilog.Warn("output is not a terminal and no width is configured; using %d columns", fallbackWidth)
	return fallbackWidth
}

// input parses the optional file operand and reads its lines.
func (e *env) input(fsArgs []string) ([]string, string, error) {
	switch len(fsArgs) {
	case 0:
		lines, err := readLines(e.stdin)
		return lines, "stdin", err
	case 1:
		f, err := os.Open(fsArgs[0])
		if err != nil {
			return nil, "", fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		lines, err := readLines(f)
		return lines, filepath.Base(fsArgs[0]), err
	default:
		return nil, "", fmt.Errorf("expected at most one file, got %d", len(fsArgs))
	}
}

func runWidth(ctx context.Context, e *env, args []string) error {
	fs := newCommandFlags(e, mustCommand("width"))
	if err := fs.Parse(args); err != nil {
		return err
	}
	lines, _, err := e.input(fs.Args())
	if err != nil {
		return err
	}

	recs, err := batch.Map(ctx, lines, e.settings.Workers, func(_ context.Context, line string) (widthRecord, error) {
		w, err := width.VisibleWidthBytes([]byte(line))
		return widthRecord{Width: w}, err
	})
	if err != nil {
		return err
	}
	return writeRecords(e.stdout, recs, e.json)
}

func runTruncate(ctx context.Context, e *env, args []string) error {
	fs := newCommandFlags(e, mustCommand("truncate"))
	maxWidth := fs.Int("w", 0, "Maximum visible width (default terminal width, then config)")
	ellipsis := fs.String("ellipsis", e.settings.Ellipsis, "Appended to cut lines")
	pad := fs.Bool("pad", e.settings.PadEnabled(), "Pad every line to exactly the width")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *maxWidth < 0 {
		return fmt.Errorf("-w must not be negative, got %d", *maxWidth)
	}
	if *maxWidth == 0 {
		*maxWidth = e.targetWidth()
	}
	lines, _, err := e.input(fs.Args())
	if err != nil {
		return err
	}

	ell := []byte(*ellipsis)
	recs, err := batch.Map(ctx, lines, e.settings.Workers, func(_ context.Context, line string) (textRecord, error) {
		out, err := width.TruncateBytes([]byte(line), *maxWidth, ell, *pad)
		if err != nil {
			return textRecord{}, err
		}
		return textRecord{Text: out, Width: width.VisibleWidth(out)}, nil
	})
	if err != nil {
		return err
	}
	return writeRecords(e.stdout, recs, e.json)
}

func runSlice(ctx context.Context, e *env, args []string) error {
	fs := newCommandFlags(e, mustCommand("slice"))
	start := fs.Int("start", 0, "First column")
	length := fs.Int("len", 0, "Number of columns")
	strict := fs.Bool("strict", e.settings.StrictEnabled(), "Drop wide clusters cut by the range end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *start < 0 || *length < 0 {
		return fmt.Errorf("-start and -len must not be negative")
	}
	lines, _, err := e.input(fs.Args())
	if err != nil {
		return err
	}

	recs, err := batch.Map(ctx, lines, e.settings.Workers, func(_ context.Context, line string) (textRecord, error) {
		res, err := width.SliceBytes([]byte(line), *start, *length, *strict)
		return textRecord{Text: res.Text, Width: res.Width}, err
	})
	if err != nil {
		return err
	}
	return writeRecords(e.stdout, recs, e.json)
}

func runSegments(ctx context.Context, e *env, args []string) error {
	fs := newCommandFlags(e, mustCommand("segments"))
	before := fs.Int("before", 0, "End column of the before segment")
	afterStart := fs.Int("after-start", 0, "First column of the after segment")
	afterLen := fs.Int("after-len", 0, "Columns in the after segment; 0 skips it")
	strict := fs.Bool("strict", e.settings.StrictEnabled(), "Drop wide clusters cut by the after segment's end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *before < 0 || *afterStart < 0 || *afterLen < 0 {
		return fmt.Errorf("-before, -after-start and -after-len must not be negative")
	}
	lines, _, err := e.input(fs.Args())
	if err != nil {
		return err
	}

	recs, err := batch.Map(ctx, lines, e.settings.Workers, func(_ context.Context, line string) (segmentsRecord, error) {
		res, err := width.ExtractSegmentsBytes([]byte(line), *before, *afterStart, *afterLen, *strict)
		return segmentsRecord{SegmentsResult: res}, err
	})
	if err != nil {
		return err
	}
	return writeRecords(e.stdout, recs, e.json)
}

func runStrip(ctx context.Context, e *env, args []string) error {
	fs := newCommandFlags(e, mustCommand("strip"))
	codes := fs.Bool("codes", false, "List each line's escape sequences instead of the text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lines, _, err := e.input(fs.Args())
	if err != nil {
		return err
	}

	if *codes {
		recs, err := batch.Map(ctx, lines, e.settings.Workers, func(_ context.Context, line string) (codesRecord, error) {
			return codesRecord{Codes: width.ExtractANSI(line)}, nil
		})
		if err != nil {
			return err
		}
		return writeRecords(e.stdout, recs, e.json)
	}

	stripped, err := batch.Strings(ctx, lines, e.settings.Workers, width.StripANSI)
	if err != nil {
		return err
	}
	recs := make([]textRecord, len(stripped))
	for i, out := range stripped {
		recs[i] = textRecord{Text: out, Width: width.VisibleWidth(out)}
	}
	return writeRecords(e.stdout, recs, e.json)
}

func runView(ctx context.Context, e *env, args []string) error {
	fs := newCommandFlags(e, mustCommand("view"))
	markdown := fs.Bool("markdown", false, "Render the input as markdown first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if e.json {
		return fmt.Errorf("view does not support -json")
	}
	lines, title, err := e.input(fs.Args())
	if err != nil {
		return err
	}

	if *markdown {
		style := "light"
		if termfix.Dark() {
			style = "dark"
		}
		lines, err = viewer.RenderMarkdown(strings.Join(lines, "\n"), e.targetWidth(), style)
		if err != nil {
			return err
		}
	}
	pilog.Debug("viewing %d lines from %s", len(lines), title)

	// Log lines on a terminal stderr would draw over the pager.
	if _, err := terminal.Detect(e.stderr); err == nil {
		pilog.SetOutput(io.Discard)
	}

	// Keys come from the terminal when the content itself arrives on stdin.
	var in io.Reader
	if len(fs.Args()) > 0 {
		in = e.stdin
	}
	return viewer.Run(ctx, viewer.New(title, lines), in, e.stdout)
}
