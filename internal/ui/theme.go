package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/deafcat/adaptation/internal/catalog"
)

// Theme defines colors for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Cards and table body
	Portrait   string // Card image area

	// Header tabs
	HeaderBg  string
	TabActive string
	TabText   string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Episode status badges: foreground / background per class
	Badges map[catalog.StatusClass]BadgeColors
}

// BadgeColors is the pair used to draw a status badge.
type BadgeColors struct {
	Fg string
	Bg string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HeaderBg)).
			Foreground(lipgloss.Color(t.TabText)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TabText)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		badges:     t.Badges,
		background: t.Background,
		muted:      t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
	Card   lipgloss.Style

	badges     map[catalog.StatusClass]BadgeColors
	background string
	muted      string
}

// BadgeStyle returns the pill style for a status class.
func (s Styles) BadgeStyle(class catalog.StatusClass) lipgloss.Style {
	colors, ok := s.badges[class]
	if !ok {
		colors = BadgeColors{Fg: s.background, Bg: s.muted}
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Fg)).
		Background(lipgloss.Color(colors.Bg)).
		Bold(true).
		Padding(0, 1)
}

// WithBackground returns a copy of Styles whose text styles paint bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

var themes = map[string]Theme{
	"Indigo":   indigoTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Indigo", "Nightfox", "Slate"}

// GetTheme returns a theme by name, falling back to Indigo.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return indigoTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func indigoTheme() Theme {
	// Tailwind gray/indigo, the palette of the web dashboard
	return Theme{
		Name: "Indigo",

		Background: "#111827", // gray-900
		Surface:    "#1f2937", // gray-800
		SurfaceAlt: "#111827", // gray-900
		Portrait:   "#374151", // gray-700

		HeaderBg:  "#4f46e5", // indigo-600
		TabActive: "#4338ca", // indigo-700
		TabText:   "#ffffff",

		Border:      "#374151", // gray-700
		BorderFocus: "#6366f1", // indigo-500

		Text:    "#f9fafb", // gray-50
		Muted:   "#9ca3af", // gray-400
		Faint:   "#6b7280", // gray-500
		Accent:  "#818cf8", // indigo-400
		Success: "#22c55e", // green-500
		Warning: "#eab308", // yellow-500
		Danger:  "#ef4444", // red-500

		Badges: map[catalog.StatusClass]BadgeColors{
			catalog.StatusDone:       {Fg: "#166534", Bg: "#dcfce7"}, // green-800 on green-100
			catalog.StatusInProgress: {Fg: "#854d0e", Bg: "#fef9c3"}, // yellow-800 on yellow-100
			catalog.StatusToDo:       {Fg: "#1f2937", Bg: "#f3f4f6"}, // gray-800 on gray-100
		},
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		Portrait:   "#29394f", // bg3

		HeaderBg:  "#29394f", // bg3
		TabActive: "#39506d", // bg4
		TabText:   "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		Badges: map[catalog.StatusClass]BadgeColors{
			catalog.StatusDone:       {Fg: "#131a24", Bg: "#81b29a"}, // green
			catalog.StatusInProgress: {Fg: "#131a24", Bg: "#dbc074"}, // yellow
			catalog.StatusToDo:       {Fg: "#131a24", Bg: "#738091"}, // comment
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		Portrait:   "#283548",

		HeaderBg:  "#0284c7", // sky-600
		TabActive: "#0369a1", // sky-700
		TabText:   "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		Badges: map[catalog.StatusClass]BadgeColors{
			catalog.StatusDone:       {Fg: "#020617", Bg: "#16a34a"}, // green-600
			catalog.StatusInProgress: {Fg: "#020617", Bg: "#f59e0b"}, // amber-500
			catalog.StatusToDo:       {Fg: "#020617", Bg: "#64748b"}, // slate-500
		},
	}
}
