// ABOUTME: ANSI escape sequence scanning, stripping, and extraction
// ABOUTME: Recognizes CSI (m/G/K/H/J terminators) and OSC (BEL or ST); other ESC bytes pass through

package width

import "strings"

const (
	esc = '\x1b'
	bel = '\x07'

	// resetSGR clears all styling.
	resetSGR = "\x1b[0m"
)

// ANSICodeLen reports the byte length of the escape sequence starting at
// s[pos]. It recognizes CSI sequences ending in one of m, G, K, H or J and
// OSC sequences ending in BEL or ST (ESC \). For anything else, including
// an unterminated sequence, it returns (0, false) and callers treat the ESC
// byte as ordinary zero-width text.
func ANSICodeLen(s string, pos int) (int, bool) {
	if pos < 0 || pos+1 >= len(s) || s[pos] != esc {
		return 0, false
	}

	switch s[pos+1] {
	case '[':
		for j := pos + 2; j < len(s); j++ {
			switch s[j] {
			case 'm', 'G', 'K', 'H', 'J':
				return j + 1 - pos, true
			}
		}
	case ']':
		for j := pos + 2; j < len(s); j++ {
			if s[j] == bel {
				return j + 1 - pos, true
			}
			if s[j] == esc && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2 - pos, true
			}
		}
	}
	return 0, false
}

// nextANSIStart returns the offset of the first recognized escape sequence
// at or after pos, or len(s) if there is none.
func nextANSIStart(s string, pos int) int {
	for pos < len(s) {
		idx := strings.IndexByte(s[pos:], esc)
		if idx < 0 {
			return len(s)
		}
		pos += idx
		if _, ok := ANSICodeLen(s, pos); ok {
			return pos
		}
		pos++
	}
	return len(s)
}

// containsESC is a fast check for the presence of ESC (0x1B).
func containsESC(s string) bool {
	return strings.IndexByte(s, esc) >= 0
}

// StripANSI removes all recognized escape sequences from s.
// Unrecognized ESC bytes are kept.
func StripANSI(s string) string {
	if !containsESC(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if n, ok := ANSICodeLen(s, i); ok {
			i += n
			continue
		}
		next := nextANSIStart(s, i+1)
		b.WriteString(s[i:next])
		i = next
	}
	return b.String()
}

// ExtractANSI returns all recognized escape sequences found in s, in order.
func ExtractANSI(s string) []string {
	if !containsESC(s) {
		return nil
	}
	var seqs []string
	i := 0
	for i < len(s) {
		if n, ok := ANSICodeLen(s, i); ok {
			seqs = append(seqs, s[i:i+n])
			i += n
			continue
		}
		i = nextANSIStart(s, i+1)
	}
	return seqs
}
