// Package ui provides the terminal dashboard for the DeafCat adaptation.
//
// # Architecture Overview
//
// The dashboard is a Bubble Tea program. Model is the shell: it owns the
// active tab, the search box, and the character roster, and it mounts the
// episode view whenever that tab becomes active. Rendering uses Lipgloss
// and the theme palettes in theme.go.
//
// # Package Structure
//
//   - app.go: Model, Options, the Update loop and Run
//   - mount.go: tab switching, per-view load commands and stale result guards
//   - header.go: title bar with tabs and the command hint bar
//   - roster.go: search box and the responsive character card grid
//   - episodes.go: episode status table with colored badges
//   - layout.go: titled box and placeholder helpers
//   - help.go: keyboard shortcut overlay
//   - theme.go, style_helpers.go, strings.go: styling and text utilities
//
// # Views
//
//   - Character Bible: cards for every character matching the search string.
//     Falls back to two sample characters when the remote table is empty or
//     unreachable.
//   - Episodes: production status table ordered by episode number. Shows an
//     empty state when the remote table is empty or unreachable.
//
// # Loading
//
// Every fetch runs in a tea.Cmd under a context derived from the program
// context. Each mount gets a fresh generation number and its own cancel
// func; results tagged with an older generation, or reporting cancellation,
// are dropped so an unmounted view never changes state.
//
// # Key Bindings
//
//   - 1/c, 2/e: switch tab; tab/shift+tab toggles
//   - /: focus search (Character Bible); enter/esc leaves the box
//   - j/k, g/G, ctrl+d/u, pgup/pgdown: scroll
//   - T: cycle theme, ?: help, q/ctrl+c: quit
package ui
