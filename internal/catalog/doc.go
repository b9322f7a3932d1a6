// Package catalog holds the production data the dashboard shows: the
// character bible and the episode list.
//
// Rows are decoded straight from the Supabase tables. Optional text columns
// are plain strings, so a JSON null and an empty string render the same way.
//
// Display rules live next to the types so the TUI and the CLI print identical
// labels:
//
//   - Character.SecondaryLabel / VoiceActorLabel fill in "No Arabic name" and
//     "Unassigned".
//   - Episode.DisplayTitle falls back to "Episode N", BadgeText to "To Do",
//     AssigneeLabel to "-".
//   - ClassifyStatus recognizes exactly "Done" and "In Progress".
//
// LoadCharacters and LoadEpisodes wrap the loader with the two policies the
// views use. Characters fall back to a two-entry sample roster; episodes
// fall back to the empty state.
package catalog
