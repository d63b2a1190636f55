// ABOUTME: Tests for COLORFGBG background detection and theme overrides
// ABOUTME: Apply mutates lipgloss globals, so the override test is not parallel

package termfix

import "testing"

func TestDarkFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"15;0", true},
		{"0;15", false},
		{"0;7", false},
		{"15;default;0", true},
		{"0;default;11", false},
		{"15;8", true},
		{"garbage", true},
		{"15;", true},
	}
	for _, tt := range tests {
		if got := darkFromEnv(tt.value); got != tt.want {
			t.Errorf("darkFromEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	orig := Dark()
	t.Cleanup(func() {
		if orig {
			Apply("dark")
		} else {
			Apply("light")
		}
	})

	Apply("light")
	if Dark() {
		t.Error("Dark() = true after Apply(light)")
	}
	Apply("DARK")
	if !Dark() {
		t.Error("Dark() = false after Apply(DARK)")
	}
	Apply("auto")
	if !Dark() {
		t.Error("Apply(auto) changed the background")
	}
}
