package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The grid must stay readable on both light and dark terminal backgrounds,
// so colors are adaptive throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted     = ac("240", "243")
	colorHeaderFg  = ac("235", "255")
	colorActiveBg  = ac("#e9e9e9", "#262626")
	colorActiveFg  = ac("235", "255")
	colorRangeBg   = ac("#f3f3f3", "#1c1c1c")
	colorCheckedFg = ac("28", "77")
	colorErrorFg   = ac("124", "203")
	colorStatusFg  = ac("26", "39")

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorHeaderFg)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleActive = lipgloss.NewStyle().Background(colorActiveBg).Foreground(colorActiveFg).Bold(true)
	styleRange  = lipgloss.NewStyle().Background(colorRangeBg)
	styleCheck  = lipgloss.NewStyle().Foreground(colorCheckedFg)
	styleError  = lipgloss.NewStyle().Foreground(colorErrorFg)
	styleStatus = lipgloss.NewStyle().Foreground(colorStatusFg)
)

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. Only NO_COLOR is honored as an opt-out; otherwise the
// terminal's capabilities decide (CLICOLOR is for non-interactive output
// and would wrongly strip a TUI).
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}
