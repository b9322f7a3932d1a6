package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/deafcat/adaptation/internal/catalog"
	"github.com/deafcat/adaptation/internal/loader"
	"github.com/deafcat/adaptation/internal/supabase"
)

const (
	sampleDataNotice  = "Showing sample data: the characters table is empty or unreachable."
	noEpisodesMessage = "No episodes found. Add some in Supabase!"
	descriptionWidth  = 48
)

var (
	accent      = lipgloss.Color("99")
	headerStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

// WriteCharacters prints the roster, filtered by search, as a table. Fetch
// failures fall back to the sample roster exactly as the dashboard does.
func WriteCharacters(ctx context.Context, w io.Writer, log *zap.Logger, q supabase.Querier, search string) error {
	result := catalog.LoadCharacters(ctx, log, q)
	if result.State == loader.Canceled {
		return ctx.Err()
	}

	if result.State == loader.Fallback {
		if _, err := fmt.Fprintln(w, sampleDataNotice); err != nil {
			return err
		}
	}

	chars := catalog.FilterCharacters(result.Rows(), search)
	if len(chars) == 0 {
		_, err := fmt.Fprintf(w, "No characters match %q.\n", search)
		return err
	}

	t := newTable("ID", "Name", "Arabic name", "Voice actor", "Description")
	for _, c := range chars {
		t.Row(c.ID.String(), c.Name, c.SecondaryLabel(), c.VoiceActorLabel(), clip(c.Description, descriptionWidth))
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

// WriteEpisodes prints the episode status table ordered by episode number.
func WriteEpisodes(ctx context.Context, w io.Writer, log *zap.Logger, q supabase.Querier) error {
	result := catalog.LoadEpisodes(ctx, log, q)
	if result.State == loader.Canceled {
		return ctx.Err()
	}

	rows := result.Rows()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, noEpisodesMessage)
		return err
	}

	t := newTable("#", "Title", "Status", "Assignee")
	for _, e := range rows {
		t.Row(strconv.Itoa(e.EpisodeNumber), e.DisplayTitle(), e.BadgeText(), e.AssigneeLabel())
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

func clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
