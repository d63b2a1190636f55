// ABOUTME: SGR state machine that tracks active text styling
// ABOUTME: Replays CSI SGR parameters left to right and emits a minimal restore sequence

package ansitrack

import (
	"strconv"
	"strings"
)

// ColorKind distinguishes the color encodings an SGR sequence can select.
type ColorKind uint8

const (
	// ColorDefault means no color is set; the terminal default applies.
	ColorDefault ColorKind = iota
	// ColorBasic is an 8/16-color index stored as its SGR code (30-37, 90-97, 40-47, 100-107).
	ColorBasic
	// ColorPalette is a 256-color palette index.
	ColorPalette
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color describes a foreground or background color.
type Color struct {
	Kind    ColorKind
	Code    int // SGR code for ColorBasic
	Index   uint8
	R, G, B uint8
}

// IsSet reports whether c selects a non-default color.
func (c Color) IsSet() bool {
	return c.Kind != ColorDefault
}

// params renders c as SGR parameters. base is 38 for foreground, 48 for background.
func (c Color) params(base int) string {
	switch c.Kind {
	case ColorBasic:
		return strconv.Itoa(c.Code)
	case ColorPalette:
		return strconv.Itoa(base) + ";5;" + strconv.Itoa(int(c.Index))
	case ColorRGB:
		return strconv.Itoa(base) + ";2;" + strconv.Itoa(int(c.R)) + ";" +
			strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	default:
		return ""
	}
}

// Tracker maintains the current SGR (Select Graphic Rendition) state.
// The zero value is the reset state.
type Tracker struct {
	bold          bool
	dim           bool
	italic        bool
	underline     bool
	blink         bool
	inverse       bool
	hidden        bool
	strikethrough bool
	fg            Color
	bg            Color
}

// Reset clears all SGR state.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Process applies an SGR escape sequence to the tracker state.
// The sequence should be a complete CSI SGR (e.g., "\x1b[31;1m"); anything
// else, including other CSI sequences, is ignored.
func (t *Tracker) Process(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") || len(seq) < 3 {
		return
	}
	params := seq[2 : len(seq)-1]
	if params == "" || params == "0" {
		t.Reset()
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); {
		if strings.IndexByte(parts[i], ':') >= 0 {
			t.applyColon(parts[i])
			i++
			continue
		}
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			i++
			continue
		}
		if code == 38 || code == 48 {
			if n, c, ok := extendedColor(parts[i+1:]); ok {
				t.setColor(code, c)
				i += 1 + n
				continue
			}
		}
		t.apply(code)
		i++
	}
}

// extendedColor parses the parameters following 38 or 48 in the
// semicolon form. It returns the number of parameters consumed.
// A well-shaped but unparsable color is consumed and reported with
// ColorDefault kind so the caller leaves the current color alone.
func extendedColor(rest []string) (int, Color, bool) {
	if len(rest) >= 2 && rest[0] == "5" {
		idx, ok := parseByte(rest[1])
		if !ok {
			return 2, Color{}, true
		}
		return 2, Color{Kind: ColorPalette, Index: idx}, true
	}
	if len(rest) >= 4 && rest[0] == "2" {
		r, okR := parseByte(rest[1])
		g, okG := parseByte(rest[2])
		b, okB := parseByte(rest[3])
		if !okR || !okG || !okB {
			return 4, Color{}, true
		}
		return 4, Color{Kind: ColorRGB, R: r, G: g, B: b}, true
	}
	return 0, Color{}, false
}

// applyColon handles ITU T.416 style sub-parameters ("38:2::255:0:0", "4:3").
func (t *Tracker) applyColon(part string) {
	sub := strings.Split(part, ":")
	code, err := strconv.Atoi(sub[0])
	if err != nil {
		return
	}
	switch code {
	case 38, 48:
		if len(sub) < 3 {
			return
		}
		switch sub[1] {
		case "5":
			if idx, ok := parseByte(sub[2]); ok {
				t.setColor(code, Color{Kind: ColorPalette, Index: idx})
			}
		case "2":
			// Optional color space id precedes the components.
			comps := sub[2:]
			if len(comps) > 3 {
				comps = comps[len(comps)-3:]
			}
			if len(comps) != 3 {
				return
			}
			r, okR := parseByte(comps[0])
			g, okG := parseByte(comps[1])
			b, okB := parseByte(comps[2])
			if okR && okG && okB {
				t.setColor(code, Color{Kind: ColorRGB, R: r, G: g, B: b})
			}
		}
	case 4:
		if len(sub) < 2 {
			return
		}
		style, err := strconv.Atoi(sub[1])
		if err != nil {
			return
		}
		t.underline = style > 0
	}
}

func (t *Tracker) setColor(base int, c Color) {
	if !c.IsSet() {
		return
	}
	if base == 38 {
		t.fg = c
	} else {
		t.bg = c
	}
}

// apply handles a single plain numeric SGR code.
func (t *Tracker) apply(code int) {
	switch {
	case code == 0:
		t.Reset()
	case code == 1:
		t.bold = true
	case code == 2:
		t.dim = true
	case code == 3:
		t.italic = true
	case code == 4:
		t.underline = true
	case code == 5:
		t.blink = true
	case code == 7:
		t.inverse = true
	case code == 8:
		t.hidden = true
	case code == 9:
		t.strikethrough = true
	case code == 21:
		t.bold = false
	case code == 22:
		t.bold = false
		t.dim = false
	case code == 23:
		t.italic = false
	case code == 24:
		t.underline = false
	case code == 25:
		t.blink = false
	case code == 27:
		t.inverse = false
	case code == 28:
		t.hidden = false
	case code == 29:
		t.strikethrough = false
	case code >= 30 && code <= 37, code >= 90 && code <= 97:
		t.fg = Color{Kind: ColorBasic, Code: code}
	case code >= 40 && code <= 47, code >= 100 && code <= 107:
		t.bg = Color{Kind: ColorBasic, Code: code}
	case code == 39:
		t.fg = Color{}
	case code == 49:
		t.bg = Color{}
	}
}

func parseByte(s string) (uint8, bool) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// ActiveCodes returns the shortest single SGR sequence that re-establishes
// the current state from a reset terminal. Returns "" if no styling is active.
func (t *Tracker) ActiveCodes() string {
	if !t.IsActive() {
		return ""
	}
	var b strings.Builder
	b.WriteString("\x1b[")
	n := 0
	add := func(p string) {
		if n > 0 {
			b.WriteByte(';')
		}
		b.WriteString(p)
		n++
	}
	flags := [...]struct {
		on   bool
		code string
	}{
		{t.bold, "1"},
		{t.dim, "2"},
		{t.italic, "3"},
		{t.underline, "4"},
		{t.blink, "5"},
		{t.inverse, "7"},
		{t.hidden, "8"},
		{t.strikethrough, "9"},
	}
	for _, f := range flags {
		if f.on {
			add(f.code)
		}
	}
	if t.fg.IsSet() {
		add(t.fg.params(38))
	}
	if t.bg.IsSet() {
		add(t.bg.params(48))
	}
	b.WriteByte('m')
	return b.String()
}

// IsActive returns true if any SGR state is set.
func (t *Tracker) IsActive() bool {
	return t.bold || t.dim || t.italic || t.underline || t.blink ||
		t.inverse || t.hidden || t.strikethrough || t.fg.IsSet() || t.bg.IsSet()
}
