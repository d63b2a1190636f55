// ABOUTME: Tests for the SGR state machine tracker
// ABOUTME: Covers attribute on/off codes, color forms, reset, and restore sequence generation

package ansitrack

import "testing"

func TestTracker_Bold(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[1m")

	if !tr.IsActive() {
		t.Error("expected active after bold")
	}
	got := tr.ActiveCodes()
	if got != "\x1b[1m" {
		t.Errorf("ActiveCodes() = %q, want %q", got, "\x1b[1m")
	}
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reset string
	}{
		{name: "explicit zero", reset: "\x1b[0m"},
		{name: "empty params", reset: "\x1b[m"},
		{name: "zero inside list", reset: "\x1b[4;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tr Tracker
			tr.Process("\x1b[1;3;38;5;200m")
			tr.Process(tt.reset)
			if tr.IsActive() {
				t.Error("expected inactive after reset")
			}
			if got := tr.ActiveCodes(); got != "" {
				t.Errorf("ActiveCodes() = %q, want empty", got)
			}
		})
	}
}

func TestTracker_Sequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seqs []string
		want string
	}{
		{name: "none", seqs: nil, want: ""},
		{name: "basic fg", seqs: []string{"\x1b[31m"}, want: "\x1b[31m"},
		{name: "bright fg and bg", seqs: []string{"\x1b[91;104m"}, want: "\x1b[91;104m"},
		{name: "all flags ordered", seqs: []string{"\x1b[9;8;7;5;4;3;2;1m"}, want: "\x1b[1;2;3;4;5;7;8;9m"},
		{name: "palette fg", seqs: []string{"\x1b[38;5;196m"}, want: "\x1b[38;5;196m"},
		{name: "rgb bg", seqs: []string{"\x1b[48;2;10;20;30m"}, want: "\x1b[48;2;10;20;30m"},
		{name: "palette then bold", seqs: []string{"\x1b[38;5;21;1m"}, want: "\x1b[1;38;5;21m"},
		{name: "rgb consumes five", seqs: []string{"\x1b[38;2;1;4;5;3m"}, want: "\x1b[3;38;2;1;4;5m"},
		{name: "later color wins", seqs: []string{"\x1b[31m", "\x1b[32m"}, want: "\x1b[32m"},
		{name: "fg default", seqs: []string{"\x1b[31;44m", "\x1b[39m"}, want: "\x1b[44m"},
		{name: "bg default", seqs: []string{"\x1b[31;44m", "\x1b[49m"}, want: "\x1b[31m"},
		{name: "21 bold off keeps dim", seqs: []string{"\x1b[1;2m", "\x1b[21m"}, want: "\x1b[2m"},
		{name: "22 bold and dim off", seqs: []string{"\x1b[1;2;3m", "\x1b[22m"}, want: "\x1b[3m"},
		{name: "individual offs", seqs: []string{"\x1b[3;4;5;7;8;9m", "\x1b[23;24;25;27;28;29m"}, want: ""},
		{name: "unknown codes ignored", seqs: []string{"\x1b[6;53;1m"}, want: "\x1b[1m"},
		{name: "non numeric ignored", seqs: []string{"\x1b[x;1m"}, want: "\x1b[1m"},
		{name: "non sgr csi ignored", seqs: []string{"\x1b[1m", "\x1b[2K", "\x1b[0G"}, want: "\x1b[1m"},
		{name: "osc ignored", seqs: []string{"\x1b]0;m\x07"}, want: ""},
		{name: "truncated 38 falls back", seqs: []string{"\x1b[38;5m"}, want: "\x1b[5m"},
		{name: "colon palette", seqs: []string{"\x1b[38:5:208m"}, want: "\x1b[38;5;208m"},
		{name: "colon rgb with colorspace", seqs: []string{"\x1b[48:2::1:2:3m"}, want: "\x1b[48;2;1;2;3m"},
		{name: "colon rgb without colorspace", seqs: []string{"\x1b[38:2:7:8:9m"}, want: "\x1b[38;2;7;8;9m"},
		{name: "curly underline", seqs: []string{"\x1b[4:3m"}, want: "\x1b[4m"},
		{name: "underline style off", seqs: []string{"\x1b[4m", "\x1b[4:0m"}, want: ""},
		{name: "out of range palette consumed", seqs: []string{"\x1b[38;5;999;1m"}, want: "\x1b[1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tr Tracker
			for _, s := range tt.seqs {
				tr.Process(s)
			}
			if got := tr.ActiveCodes(); got != tt.want {
				t.Errorf("ActiveCodes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTracker_ActiveCodesRoundTrip(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[1;4;91m")
	tr.Process("\x1b[48;2;0;128;255m")
	tr.Process("\x1b[24m")

	var replay Tracker
	replay.Process(tr.ActiveCodes())
	if replay != tr {
		t.Errorf("replaying %q produced %+v, want %+v", tr.ActiveCodes(), replay, tr)
	}
}

func TestTracker_Colors(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Process("\x1b[38;5;33;48;2;9;8;7m")

	if tr.fg.Kind != ColorPalette || tr.fg.Index != 33 {
		t.Errorf("fg = %+v, want palette 33", tr.fg)
	}
	if tr.bg.Kind != ColorRGB || tr.bg.R != 9 || tr.bg.G != 8 || tr.bg.B != 7 {
		t.Errorf("bg = %+v, want rgb 9,8,7", tr.bg)
	}
}

func TestTracker_MalformedExtendedColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  string
		want string
	}{
		{name: "palette index out of range", seq: "\x1b[38;5;300;1m", want: "\x1b[1;31;44m"},
		{name: "rgb component not a number", seq: "\x1b[48;2;1;x;3;4m", want: "\x1b[4;31;44m"},
		{name: "rgb component out of range", seq: "\x1b[38;2;1;2;256m", want: "\x1b[31;44m"},
		{name: "truncated palette read as plain codes", seq: "\x1b[38;5m", want: "\x1b[5;31;44m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var tr Tracker
			tr.Process("\x1b[31;44m")
			tr.Process(tt.seq)
			if got := tr.ActiveCodes(); got != tt.want {
				t.Errorf("after %q ActiveCodes() = %q, want %q", tt.seq, got, tt.want)
			}
		})
	}
}
