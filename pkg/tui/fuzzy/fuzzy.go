// ABOUTME: Fuzzy search over the visible text of styled lines via sahilm/fuzzy
// ABOUTME: Escape sequences are stripped before matching so SGR parameters never match

package fuzzy

import (
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/pi-natives-go/pkg/tui/width"
)

// Match is one line that matched a pattern.
type Match struct {
	Line  int    // index into the searched lines
	Text  string // line text with escape sequences removed
	Score int
}

// Lines returns the lines matching pattern, best score first. An empty
// pattern matches nothing.
func Lines(pattern string, lines []string) []Match {
	if pattern == "" {
		return nil
	}
	plain := make([]string, len(lines))
	for i, l := range lines {
		plain[i] = width.StripANSI(l)
	}
	results := fuzzy.Find(pattern, plain)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Line: r.Index, Text: r.Str, Score: r.Score}
	}
	return matches
}
