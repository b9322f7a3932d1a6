package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deafcat/adaptation/internal/catalog"
)

const (
	cardGap          = 2
	descriptionLines = 3
	portraitHeight   = 3
)

// gridColumns maps terminal width to the number of card columns.
func gridColumns(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 100:
		return 2
	case width < 140:
		return 3
	default:
		return 4
	}
}

// visibleCharacters applies the search string to the roster snapshot.
func (m Model) visibleCharacters() []catalog.Character {
	return catalog.FilterCharacters(m.roster.result.Rows(), m.search.Value())
}

// renderRoster renders the Character Bible tab.
func (m Model) renderRoster() string {
	styles := m.theme.Styles()
	bodyHeight := m.bodyHeight()

	searchLine := m.renderSearchLine()
	if m.roster.result.IsLoading() {
		return searchLine + "\n\n" + renderPlaceholder(styles.MutedText, "Loading characters...", m.width, bodyHeight)
	}
	return searchLine + "\n\n" + m.viewport.View()
}

// renderSearchLine draws the search box and the match count.
func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()

	input := m.search.View()
	if !m.searching && m.search.Value() == "" {
		input = styles.FaintText.Render("/ Search characters...")
	}

	border := m.theme.Border
	if m.searching {
		border = m.theme.BorderFocus
	}
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(border)).
		PaddingLeft(1).
		Render(input)

	if m.roster.result.IsLoading() || m.search.Value() == "" {
		return box
	}
	visible := len(m.visibleCharacters())
	total := len(m.roster.result.Rows())
	return box + "  " + styles.MutedText.Render(matchLabel(visible, total))
}

func matchLabel(visible, total int) string {
	if visible == 1 {
		return fmt.Sprintf("1 match of %d", total)
	}
	return fmt.Sprintf("%d matches of %d", visible, total)
}

// characterGrid lays out one card per visible character in rows.
func (m Model) characterGrid(width int) string {
	styles := m.theme.Styles()
	chars := m.visibleCharacters()
	if m.roster.result.IsLoading() {
		return ""
	}
	if len(chars) == 0 {
		return styles.MutedText.Render(fmt.Sprintf("No characters match %q", m.search.Value()))
	}

	cols := gridColumns(width)
	cardWidth := max((width-cardGap*(cols-1))/cols, 16)

	var rows []string
	for start := 0; start < len(chars); start += cols {
		end := min(start+cols, len(chars))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.renderCard(chars[i], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one character card of the given outer width.
func (m Model) renderCard(c catalog.Character, width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 8) // border + padding

	var lines []string
	lines = append(lines, m.renderPortrait(c, inner))
	lines = append(lines, styles.Text.Bold(true).Render(truncate(c.Name, inner)))

	secondary := styles.MutedText
	if c.ArabicName == "" {
		secondary = styles.FaintText.Italic(true)
	}
	lines = append(lines, secondary.Render(truncate(c.SecondaryLabel(), inner)))

	actor := styles.AccentText
	if c.VoiceActor == "" {
		actor = styles.FaintText
	}
	lines = append(lines, actor.Render(truncate("🎙 "+c.VoiceActorLabel(), inner)))

	desc := clampLines(c.Description, inner, descriptionLines)
	for len(desc) < descriptionLines {
		desc = append(desc, "")
	}
	for _, line := range desc {
		lines = append(lines, styles.Text.Render(line))
	}

	return styles.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderPortrait stands in for the character image.
func (m Model) renderPortrait(c catalog.Character, width int) string {
	label := "👤"
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	if c.HasImage() {
		label = "▣ " + truncate(imageLabel(c.ImageURL), max(width-2, 1))
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Portrait)).
		Width(width).
		Height(portraitHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(style.Background(lipgloss.Color(m.theme.Portrait)).Render(label))
}
