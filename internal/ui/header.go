package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deafcat/adaptation/internal/loader"
)

const appTitle = "DeafCat Adaptation"

// renderHeader renders the title bar: logo, tab bar and status tags.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.HeaderBg)
	bg := NewBgStyle(m.theme.HeaderBg)
	compact := m.width < 80

	title := appTitle
	if compact {
		title = "DeafCat"
	}
	parts := []string{bg.Render(title, styles.Logo)}

	tabs := make([]string, 0, 2)
	for _, t := range []Tab{TabCharacters, TabEpisodes} {
		tabs = append(tabs, m.renderTab(t))
	}
	parts = append(parts, strings.Join(tabs, bg.Space()))

	if status := m.statusTags(styles, bg); status != "" {
		parts = append(parts, status)
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderTab draws one tab label, highlighted when active.
func (m Model) renderTab(t Tab) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.TabText)).
		Padding(0, 1)
	if t == m.tab {
		style = style.Background(lipgloss.Color(m.theme.TabActive)).Bold(true)
	} else {
		style = style.Background(lipgloss.Color(m.theme.HeaderBg))
	}
	return style.Render(t.Title())
}

// statusTags summarizes the data behind the active tab.
func (m Model) statusTags(styles Styles, bg BgStyle) string {
	var parts []string

	switch m.tab {
	case TabCharacters:
		r := m.roster.result
		if !r.IsLoading() {
			parts = append(parts, bg.Render(m.characterCountLabel(), styles.Logo))
		}
		if r.State == loader.Fallback {
			parts = append(parts, bg.Render("sample data", styles.WarningText.Bold(true)))
		}
	case TabEpisodes:
		r := m.episodes.result
		if !r.IsLoading() {
			parts = append(parts, bg.Render(fmt.Sprintf("Episodes (%d)", len(r.Rows())), styles.Logo))
		}
	}

	if m.unconfigured {
		parts = append(parts, bg.Render("! not configured", styles.DangerText))
	}
	return bg.Join(parts, "  ")
}

// characterCountLabel returns "Characters (total)", or
// "Characters (visible/total)" while a search is active.
func (m Model) characterCountLabel() string {
	all := m.roster.result.Rows()
	search := m.search.Value()
	if search == "" {
		return fmt.Sprintf("Characters (%d)", len(all))
	}
	return fmt.Sprintf("Characters (%d/%d)", len(m.visibleCharacters()), len(all))
}

// renderCommandBar renders the command hints for the active tab.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.searching:
		commands = []cmd{
			{"enter", "Keep"},
			{"esc", "Leave"},
			{"ctrl+u", "Clear"},
		}
	case m.tab == TabEpisodes:
		commands = []cmd{
			{"1", "Characters"},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"?", "More"},
			{"q", "Quit"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"2", "Episodes"},
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Footer.Width(m.width).Render(bg.Join(segments, "  "))
}
