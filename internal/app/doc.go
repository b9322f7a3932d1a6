// Package app is the composition root for DeafCat.
//
// Bootstrap reads the config, builds the zap logger and the Supabase client.
// Run hands them to the dashboard and blocks until it exits. The CLI
// subcommands reuse Bootstrap and print through WriteCharacters and
// WriteEpisodes, which apply the same fallback and empty-state rules as the
// dashboard views.
//
// Only startup problems are fatal: an unreadable or invalid config file, a
// logger that cannot be created, or an unusable base URL. Missing credentials
// are logged as a warning and the client is built against placeholders, so
// every fetch fails and the views show their failure states.
package app
