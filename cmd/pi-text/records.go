// ABOUTME: Output records for each command, written as text or JSON Lines
// ABOUTME: JSON encoding goes through easyjson's jwriter with hand-written marshalers

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

// record is one command result for one input line.
type record interface {
	// marshalFields writes the record's JSON members, each preceded by a comma.
	marshalFields(w *jwriter.Writer)
	// plain is the text-mode rendering, without a trailing newline.
	plain() string
}

type widthRecord struct {
	Width int
}

func (r widthRecord) marshalFields(w *jwriter.Writer) {
	w.RawString(`,"width":`)
	w.Int(r.Width)
}

func (r widthRecord) plain() string { return strconv.Itoa(r.Width) }

type textRecord struct {
	Text  string
	Width int
}

func (r textRecord) marshalFields(w *jwriter.Writer) {
	w.RawString(`,"text":`)
	w.String(r.Text)
	w.RawString(`,"width":`)
	w.Int(r.Width)
}

func (r textRecord) plain() string { return r.Text }

// codesRecord lists the escape sequences of one line.
type codesRecord struct {
	Codes []string
}

func (r codesRecord) marshalFields(w *jwriter.Writer) {
	w.RawString(`,"codes":[`)
	for i, c := range r.Codes {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(c)
	}
	w.RawByte(']')
}

// plain quotes each sequence so the terminal shows it instead of acting on it.
func (r codesRecord) plain() string {
	quoted := make([]string, len(r.Codes))
	for i, c := range r.Codes {
		quoted[i] = strconv.Quote(c)
	}
	return strings.Join(quoted, " ")
}

type segmentsRecord struct {
	width.SegmentsResult
}

func (r segmentsRecord) marshalFields(w *jwriter.Writer) {
	w.RawString(`,"before":`)
	w.String(r.Before)
	w.RawString(`,"before_width":`)
	w.Int(r.BeforeWidth)
	w.RawString(`,"after":`)
	w.String(r.After)
	w.RawString(`,"after_width":`)
	w.Int(r.AfterWidth)
}

// plain separates the fragments with a tab; the before fragment is closed
// with a reset so its style does not bleed into the after fragment.
func (r segmentsRecord) plain() string {
	if r.After == "" {
		return r.Before
	}
	return r.Before + "\x1b[0m\t" + r.After
}

// lineRecord numbers a record with its 1-based input line.
type lineRecord struct {
	Line   int
	Record record
}

var _ easyjson.Marshaler = lineRecord{}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r lineRecord) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"line":`)
	w.Int(r.Line)
	r.Record.marshalFields(w)
	w.RawByte('}')
}

func writeRecords[R record](out io.Writer, recs []R, asJSON bool) error {
	bw := bufio.NewWriter(out)
	for i, r := range recs {
		if asJSON {
			if _, err := easyjson.MarshalToWriter(lineRecord{Line: i + 1, Record: r}, bw); err != nil {
				return fmt.Errorf("encoding line %d: %w", i+1, err)
			}
		} else {
			bw.WriteString(r.plain())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
