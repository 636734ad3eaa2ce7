// Package ui provides the visual styling for the Breza storefront TUI.
// The palette follows the Breza web storefront: near-black zinc surfaces,
// warm stone text, and the amber accent used for prices and actions.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Dark mode colors (default - the storefront brand is dark)
	DarkBackground = lipgloss.Color("#09090b") // zinc-950
	DarkForeground = lipgloss.Color("#e7e5e4") // stone-200
	DarkPrimary    = lipgloss.Color("#fbbf24") // amber-400
	DarkAccent     = lipgloss.Color("#f59e0b") // amber-500
	DarkSecondary  = lipgloss.Color("#27272a") // zinc-800
	DarkMuted      = lipgloss.Color("#a8a29e") // stone-400
	DarkBorder     = lipgloss.Color("#3f3f46") // zinc-700
	DarkCard       = lipgloss.Color("#18181b") // zinc-900

	// Light mode colors
	LightBackground = lipgloss.Color("#fafaf9") // stone-50
	LightForeground = lipgloss.Color("#1c1917") // stone-900
	LightPrimary    = lipgloss.Color("#b45309") // amber-700
	LightAccent     = lipgloss.Color("#d97706") // amber-600
	LightSecondary  = lipgloss.Color("#e7e5e4") // stone-200
	LightMuted      = lipgloss.Color("#78716c") // stone-500
	LightBorder     = lipgloss.Color("#d6d3d1") // stone-300
	LightCard       = lipgloss.Color("#f5f5f4") // stone-100

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#f87171") // red-400
	Success     = lipgloss.Color("#4ade80") // green-400
	Warning     = lipgloss.Color("#facc15") // yellow-400
	Info        = lipgloss.Color("#60a5fa") // blue-400
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// ThemeByName resolves a configured theme name. "auto" falls through to
// terminal detection; anything unrecognized gets the brand default (dark).
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme picks a theme from the terminal background if it can.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; ANSI 0-6 and 8 are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if bgIdx == 7 || (bgIdx >= 9 && bgIdx <= 15) {
					return LightTheme()
				}
			}
		}
	}

	if os.Getenv("BREZA_LIGHT_MODE") == "1" {
		return LightTheme()
	}

	// The storefront brand is dark.
	return DarkTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Storefront
	Price         lipgloss.Style
	StrikePrice   lipgloss.Style
	Badge         lipgloss.Style
	Selected      lipgloss.Style
	Card          lipgloss.Style
	NavActive     lipgloss.Style
	NavInactive   lipgloss.Style
	FilterChipOn  lipgloss.Style
	FilterChipOff lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Spinner lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Price: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		StrikePrice: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Strikethrough(true),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(theme.Background).
			Padding(0, 1).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Bold(true),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		NavActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true),

		NavInactive: lipgloss.NewStyle().
			Foreground(theme.Muted),

		FilterChipOn: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(theme.Background).
			Padding(0, 1),

		FilterChipOff: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Logo returns the Breza wordmark.
func Logo(s Styles) string {
	logo := `
 ▀█████▄  ██▀███  ▓█████ ▒███████▒ ▄▄▄
  ██ ▄██ ▓██ ▒ ██ ▓█   ▀ ▒ ▒ ▒ ▄▀ ▒████▄
  ██▀▀█▄ ▓██ ░▄█  ▒███   ░ ▒ ▄▀▒ ░▒██  ▀█▄
 ░██  ██ ▒██▀▀█▄  ▒▓█  ▄   ▄▀▒   ░░██▄▄▄▄██
 ░▀████▀ ░██▓ ▒██ ░▒████ ▒███████▒ ▓█   ▓██
`
	return s.Title.Render(logo)
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
