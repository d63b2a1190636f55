// ABOUTME: Tests for fuzzy search over styled lines
// ABOUTME: Verifies escapes are ignored and indexes point back into the input

package fuzzy

import "testing"

func TestLines_IgnoresEscapes(t *testing.T) {
	t.Parallel()

	lines := []string{
		"\x1b[38;5;208mplain orange\x1b[0m",
		"\x1b[1mapplication\x1b[0m log",
		"banana",
	}

	matches := Lines("app", lines)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].Line != 1 {
		t.Errorf("match line = %d, want 1", matches[0].Line)
	}
	if matches[0].Text != "application log" {
		t.Errorf("match text = %q, want escapes stripped", matches[0].Text)
	}

	// "38" only occurs inside an escape sequence.
	if got := Lines("38", lines); len(got) != 0 {
		t.Errorf("pattern inside an escape matched %+v", got)
	}
}

func TestLines_Ranking(t *testing.T) {
	t.Parallel()

	lines := []string{"a_p_p_l_e", "apple pie", "grape"}
	matches := Lines("apple", lines)

	if len(matches) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(matches))
	}
	if matches[0].Line != 1 {
		t.Errorf("best match line = %d, want 1 (contiguous)", matches[0].Line)
	}
}

func TestLines_Empty(t *testing.T) {
	t.Parallel()

	if got := Lines("", []string{"anything"}); got != nil {
		t.Errorf("Lines(\"\") = %+v, want nil", got)
	}
	if got := Lines("x", nil); len(got) != 0 {
		t.Errorf("Lines(x, nil) = %+v, want empty", got)
	}
}
