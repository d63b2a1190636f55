// ABOUTME: Tests for column slicing with pending-escape carry-forward
// ABOUTME: Covers strict and non-strict fitting of wide clusters at both edges

package width

import "testing"

func TestSliceWithWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		start     int
		length    int
		strict    bool
		wantText  string
		wantWidth int
	}{
		{name: "plain middle", line: "abcdef", start: 2, length: 3, strict: true, wantText: "cde", wantWidth: 3},
		{name: "style before range carried", line: "\x1b[31mabcdef", start: 2, length: 2, strict: true, wantText: "\x1b[31mcd", wantWidth: 2},
		{name: "pending kept verbatim", line: "\x1b[31m\x1b[0m\x1b[32mabcd", start: 3, length: 1, wantText: "\x1b[31m\x1b[0m\x1b[32md", wantWidth: 1},
		{name: "in-range escape precedes flushed pending", line: "\x1b[31mab\x1b[1mcd", start: 2, length: 2, wantText: "\x1b[1m\x1b[31mcd", wantWidth: 2},
		{name: "strict drops straddling wide", line: "a你b", start: 0, length: 2, strict: true, wantText: "a", wantWidth: 1},
		{name: "non-strict keeps straddling wide", line: "a你b", start: 0, length: 2, wantText: "a你", wantWidth: 3},
		{name: "wide before start skipped", line: "你好", start: 1, length: 2, wantText: "好", wantWidth: 2},
		{name: "wide before start strict", line: "你好", start: 1, length: 2, strict: true, wantText: "", wantWidth: 0},
		{name: "line exhausted", line: "abc", start: 1, length: 10, strict: true, wantText: "bc", wantWidth: 2},
		{name: "zero length", line: "abc", start: 0, length: 0, wantText: "", wantWidth: 0},
		{name: "start past end", line: "abc", start: 5, length: 2, wantText: "", wantWidth: 0},
		{name: "trailing escape in range", line: "ab\x1b[0m", start: 0, length: 5, wantText: "ab\x1b[0m", wantWidth: 2},
		{name: "escape after range dropped", line: "ab\x1b[0mcd", start: 0, length: 2, wantText: "ab", wantWidth: 2},
		{name: "tab", line: "a\tb", start: 1, length: 3, strict: true, wantText: "\t", wantWidth: 3},
		{name: "tab straddles strict", line: "a\tb", start: 0, length: 2, strict: true, wantText: "a", wantWidth: 1},
		{name: "negative start", line: "abc", start: -4, length: 2, wantText: "ab", wantWidth: 2},
		{name: "unrecognized esc is text", line: "\x1b(Babc", start: 0, length: 2, wantText: "\x1b(B", wantWidth: 2},
		{name: "combining mark stays attached", line: "aéb", start: 1, length: 1, strict: true, wantText: "é", wantWidth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SliceWithWidth(tt.line, tt.start, tt.length, tt.strict)
			if got.Text != tt.wantText || got.Width != tt.wantWidth {
				t.Errorf("SliceWithWidth(%q, %d, %d, %v) = {%q, %d}, want {%q, %d}",
					tt.line, tt.start, tt.length, tt.strict, got.Text, got.Width, tt.wantText, tt.wantWidth)
			}
		})
	}
}

func BenchmarkSliceWithWidth(b *testing.B) {
	s := "\x1b[31;1mColored\x1b[0m and \x1b[4munderlined\x1b[0m 你好 text that runs long"
	for b.Loop() {
		SliceWithWidth(s, 10, 20, true)
	}
}
