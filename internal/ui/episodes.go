package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deafcat/adaptation/internal/catalog"
)

const (
	emptyEpisodesMessage = "No episodes found. Add some in Supabase!"
	episodesBoxTitle     = "Production Status"
	columnGap            = "  "
)

// episodeColumns holds the cell widths of the episode table.
type episodeColumns struct {
	number   int
	title    int
	status   int
	assignee int
}

// layoutEpisodeColumns widens the status column to fit the longest badge so
// raw status strings are never clipped.
func layoutEpisodeColumns(width int, rows []catalog.Episode) episodeColumns {
	cols := episodeColumns{number: 4, status: 15, assignee: 18}
	for _, e := range rows {
		cols.status = max(cols.status, lipgloss.Width(e.BadgeText())+2) // badge padding
	}
	fixed := cols.number + cols.status + cols.assignee + 3*len(columnGap)
	cols.title = max(width-fixed, 8)
	return cols
}

// episodeTableWidth is the usable width inside the table box.
func (m Model) episodeTableWidth() int {
	return max(m.width-4, 20) // borders + inner padding
}

// renderEpisodes renders the Episodes tab.
func (m Model) renderEpisodes() string {
	styles := m.theme.Styles()
	height := max(m.height-2, 3)

	if m.episodes.result.IsLoading() {
		return renderPlaceholder(styles.MutedText, "Loading episodes...", m.width, height)
	}

	width := m.episodeTableWidth()
	head := m.episodeHeaderRow(layoutEpisodeColumns(width, m.episodes.result.Rows()))
	rule := styles.FaintText.Render(strings.Repeat("─", width))
	content := head + "\n" + rule + "\n" + m.viewport.View()
	return m.renderTitledBox(episodesBoxTitle, content, m.width, height)
}

func (m Model) episodeHeaderRow(cols episodeColumns) string {
	style := m.theme.Styles().MutedText.Bold(true)
	cells := []string{
		style.Render(fitCell("#", cols.number)),
		style.Render(fitCell("TITLE", cols.title)),
		style.Render(fitCell("STATUS", cols.status)),
		style.Render(fitCell("ASSIGNEE", cols.assignee)),
	}
	return strings.Join(cells, columnGap)
}

// episodeRows renders the table body, or the empty-state message.
func (m Model) episodeRows(width int) string {
	rows := m.episodes.result.Rows()
	if m.episodes.result.IsLoading() {
		return ""
	}
	if len(rows) == 0 {
		styles := m.theme.Styles()
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.MutedText.Render(emptyEpisodesMessage))
	}

	cols := layoutEpisodeColumns(width, rows)
	lines := make([]string, 0, len(rows))
	for _, e := range rows {
		lines = append(lines, m.episodeRow(e, cols))
	}
	return strings.Join(lines, "\n")
}

func (m Model) episodeRow(e catalog.Episode, cols episodeColumns) string {
	styles := m.theme.Styles()

	assignee := styles.Text
	if e.Assignee == "" {
		assignee = styles.FaintText
	}
	badge := styles.BadgeStyle(e.StatusClass()).Render(e.BadgeText())

	cells := []string{
		styles.MutedText.Render(fitCell(strconv.Itoa(e.EpisodeNumber), cols.number)),
		styles.Text.Render(fitCell(e.DisplayTitle(), cols.title)),
		padRight(badge, cols.status),
		assignee.Render(fitCell(e.AssigneeLabel(), cols.assignee)),
	}
	return strings.Join(cells, columnGap)
}
