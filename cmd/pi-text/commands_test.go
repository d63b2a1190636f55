// ABOUTME: Tests for default width resolution and command lookup
// ABOUTME: Uses a virtual terminal so no tty is needed

package main

import (
	"testing"

	"github.com/mauromedda/pi-natives-go/internal/config"
	"github.com/mauromedda/pi-natives-go/pkg/tui/terminal"
)

func TestEnv_TargetWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		term     terminal.Sizer
		cfgWidth int
		want     int
	}{
		{name: "terminal wins", term: terminal.Virtual{Width: 132, Height: 50}, cfgWidth: 40, want: 132},
		{name: "config when no terminal", cfgWidth: 40, want: 40},
		{name: "config when terminal reports zero", term: terminal.Virtual{}, cfgWidth: 60, want: 60},
		{name: "fallback", want: fallbackWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := &env{settings: &config.Settings{Width: tt.cfgWidth}, term: tt.term}
			if got := e.targetWidth(); got != tt.want {
				t.Errorf("targetWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLookupCommand(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"width", "truncate", "slice", "segments", "strip", "view"} {
		if c, ok := lookupCommand(name); !ok || c.run == nil {
			t.Errorf("lookupCommand(%q) not found", name)
		}
	}
	if _, ok := lookupCommand("wrap"); ok {
		t.Error("lookupCommand(wrap) should fail")
	}
}
