package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/deafcat/adaptation/internal/loader"
	"github.com/deafcat/adaptation/internal/supabase"
)

// Remote tables read by the dashboard.
const (
	CharactersTable    = "characters"
	EpisodesTable      = "episodes"
	EpisodeOrderColumn = "episode_number"
)

// CharacterQuery selects every character row. No ordering is requested.
func CharacterQuery(q supabase.Querier) loader.Query[Character] {
	return func(ctx context.Context) ([]Character, error) {
		var rows []Character
		if err := q.SelectAll(ctx, CharactersTable, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
}

// EpisodeQuery selects every episode ordered by episode number.
func EpisodeQuery(q supabase.Querier) loader.Query[Episode] {
	return func(ctx context.Context) ([]Episode, error) {
		var rows []Episode
		if err := q.SelectOrdered(ctx, EpisodesTable, EpisodeOrderColumn, &rows); err != nil {
			return nil, err
		}
		SortEpisodes(rows)
		return rows, nil
	}
}

// LoadCharacters fetches the roster. Failures and empty tables yield the
// sample roster.
func LoadCharacters(ctx context.Context, log *zap.Logger, q supabase.Querier) loader.Result[Character] {
	return loader.Load(ctx, log, CharacterQuery(q), loader.WithFallback(CharactersTable, FallbackCharacters()))
}

// LoadEpisodes fetches the episode list. Failures and empty tables yield the
// empty state.
func LoadEpisodes(ctx context.Context, log *zap.Logger, q supabase.Querier) loader.Result[Episode] {
	return loader.Load(ctx, log, EpisodeQuery(q), loader.EmptyOnFailure[Episode](EpisodesTable))
}
