// ABOUTME: Settles the lipgloss background from COLORFGBG at init, then from the configured theme
// ABOUTME: An explicit background keeps lipgloss from querying the terminal while the pager reads input

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// With the background set, lipgloss never sends its OSC 10/11 query,
	// whose reply would otherwise race with bubbletea's input reader.
	lipgloss.SetHasDarkBackground(darkFromEnv(os.Getenv("COLORFGBG")))
}

// darkFromEnv interprets a COLORFGBG value ("fg;bg" or "fg;default;bg").
// Unknown or missing values are treated as dark.
func darkFromEnv(v string) bool {
	if v == "" {
		return true
	}
	fields := strings.Split(v, ";")
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return true
	}
	return bg != 7 && (bg < 9 || bg > 15)
}

// Apply overrides the detected background with a configured theme:
// "dark" or "light". Any other value keeps the detected background.
func Apply(theme string) {
	switch strings.ToLower(theme) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

// Dark reports the background lipgloss currently renders for.
func Dark() bool {
	return lipgloss.HasDarkBackground()
}
