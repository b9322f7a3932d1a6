package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/deafcat/adaptation/internal/catalog"
	"github.com/deafcat/adaptation/internal/loader"
	"github.com/deafcat/adaptation/internal/prefs"
)

// fakeQuerier serves fixed rows and counts calls per table.
type fakeQuerier struct {
	characters []catalog.Character
	episodes   []catalog.Episode
	err        error

	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeQuerier) record(table string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[table]++
}

func (f *fakeQuerier) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[table]
}

func (f *fakeQuerier) SelectAll(_ context.Context, table string, dest any) error {
	f.record(table)
	if f.err != nil {
		return f.err
	}
	if d, ok := dest.(*[]catalog.Character); ok {
		*d = append([]catalog.Character(nil), f.characters...)
	}
	return nil
}

func (f *fakeQuerier) SelectOrdered(_ context.Context, table, _ string, dest any) error {
	f.record(table)
	if f.err != nil {
		return f.err
	}
	if d, ok := dest.(*[]catalog.Episode); ok {
		*d = append([]catalog.Episode(nil), f.episodes...)
	}
	return nil
}

var testRoster = []catalog.Character{
	{ID: "1", Name: "Omar", ArabicName: "عمر", VoiceActor: "Karim", Description: "Older brother, quiet."},
	{ID: "2", Name: "Layla", ImageURL: "https://cdn.example.com/portraits/layla.png"},
}

func newTestModel(t *testing.T, q *fakeQuerier, tab Tab) (Model, tea.Cmd) {
	t.Helper()
	m := New(Options{
		Context:    context.Background(),
		Client:     q,
		Logger:     zap.NewNop(),
		InitialTab: tab,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, m.Init()
}

// startedModel builds a model and delivers its initial fetch results.
func startedModel(t *testing.T, q *fakeQuerier, tab Tab) Model {
	t.Helper()
	m, init := newTestModel(t, q, tab)
	for _, msg := range runCmd(init) {
		m = update(t, m, msg)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestStartsOnCharactersAndFetchesRosterOnce(t *testing.T) {
	q := &fakeQuerier{characters: testRoster}
	m := startedModel(t, q, TabCharacters)

	if m.ActiveTab() != TabCharacters {
		t.Fatalf("ActiveTab = %v, want characters", m.ActiveTab())
	}
	if got := q.count(catalog.CharactersTable); got != 1 {
		t.Fatalf("characters fetched %d times, want 1", got)
	}
	if got := q.count(catalog.EpisodesTable); got != 0 {
		t.Fatalf("episodes fetched %d times before the tab was shown", got)
	}

	view := m.View()
	for _, want := range []string{"Omar", "عمر", "Karim", "Layla", "No Arabic name", "Unassigned", "layla.png", "Characters (2)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "sample data") {
		t.Fatalf("remote roster should not be tagged as sample data")
	}
}

func TestLoadingPlaceholders(t *testing.T) {
	m, _ := newTestModel(t, &fakeQuerier{}, TabCharacters)
	if view := m.View(); !strings.Contains(view, "Loading characters...") {
		t.Fatalf("view missing characters placeholder:\n%s", view)
	}

	m, _ = newTestModel(t, &fakeQuerier{}, TabEpisodes)
	if view := m.View(); !strings.Contains(view, "Loading episodes...") {
		t.Fatalf("view missing episodes placeholder:\n%s", view)
	}
}

func TestRosterFallsBackToSampleData(t *testing.T) {
	cases := map[string]*fakeQuerier{
		"fetch error": {err: errors.New("connection refused")},
		"empty table": {},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			m := startedModel(t, q, TabCharacters)
			if m.roster.result.State != loader.Fallback {
				t.Fatalf("roster state = %v, want fallback", m.roster.result.State)
			}
			view := m.View()
			for _, want := range []string{"John Doe", "Sarah Smith", "sample data"} {
				if !strings.Contains(view, want) {
					t.Fatalf("view missing %q:\n%s", want, view)
				}
			}
		})
	}
}

func TestSearchFiltersCards(t *testing.T) {
	m := startedModel(t, &fakeQuerier{characters: testRoster}, TabCharacters)

	m, _ = press(t, m, "/")
	if !m.searching {
		t.Fatalf("/ should focus the search box")
	}
	m, _ = press(t, m, "LAY")

	if got := m.SearchValue(); got != "LAY" {
		t.Fatalf("SearchValue = %q, want LAY", got)
	}
	view := m.View()
	if !strings.Contains(view, "Layla") || strings.Contains(view, "Karim") {
		t.Fatalf("search LAY should show only Layla:\n%s", view)
	}
	if !strings.Contains(view, "Characters (1/2)") {
		t.Fatalf("header should show visible/total count:\n%s", view)
	}

	m, _ = press(t, m, "enter")
	if m.searching {
		t.Fatalf("enter should leave the search box")
	}
	if got := m.SearchValue(); got != "LAY" {
		t.Fatalf("leaving the box cleared the search: %q", got)
	}
}

func TestSearchMatchesArabicName(t *testing.T) {
	m := startedModel(t, &fakeQuerier{characters: testRoster}, TabCharacters)
	m, _ = press(t, m, "/")
	m, _ = press(t, m, "عمر")

	chars := m.visibleCharacters()
	if len(chars) != 1 || chars[0].Name != "Omar" {
		t.Fatalf("visibleCharacters = %+v, want only Omar", chars)
	}
}

func TestSearchKeepsLongQueries(t *testing.T) {
	roster := []catalog.Character{{ID: "1", Name: strings.Repeat("a", 130)}}
	m := startedModel(t, &fakeQuerier{characters: roster}, TabCharacters)
	m, _ = press(t, m, "/")

	query := strings.Repeat("a", 120) + "zzz"
	m, _ = press(t, m, query)

	if got := m.SearchValue(); got != query {
		t.Fatalf("SearchValue has %d runes, want %d", len([]rune(got)), len([]rune(query)))
	}
	if chars := m.visibleCharacters(); len(chars) != 0 {
		t.Fatalf("visibleCharacters = %d, want 0", len(chars))
	}
}

func TestSearchBoxSwallowsGlobalKeys(t *testing.T) {
	m := startedModel(t, &fakeQuerier{characters: testRoster}, TabCharacters)
	m, _ = press(t, m, "/")
	m, cmd := press(t, m, "q")

	if got := m.SearchValue(); got != "q" {
		t.Fatalf("q should be typed into the box, value = %q", got)
	}
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			t.Fatalf("q inside the search box must not quit")
		}
	}
	m, _ = press(t, m, "2")
	if m.ActiveTab() != TabCharacters {
		t.Fatalf("2 inside the search box must not switch tabs")
	}
}

func TestEpisodesRemountOnEverySwitch(t *testing.T) {
	q := &fakeQuerier{characters: testRoster}
	m := startedModel(t, q, TabCharacters)

	m, cmd := press(t, m, "2")
	if cmd == nil {
		t.Fatalf("switching to episodes should start a fetch")
	}
	for _, msg := range runCmd(cmd) {
		m = update(t, m, msg)
	}

	m, cmd = press(t, m, "e")
	if cmd != nil {
		t.Fatalf("re-selecting the active tab must not remount")
	}

	m, _ = press(t, m, "1")
	m, cmd = press(t, m, "tab")
	if m.ActiveTab() != TabEpisodes {
		t.Fatalf("tab should toggle back to episodes")
	}
	runCmd(cmd)

	if got := q.count(catalog.EpisodesTable); got != 2 {
		t.Fatalf("episodes fetched %d times, want 2", got)
	}
	if got := q.count(catalog.CharactersTable); got != 1 {
		t.Fatalf("characters fetched %d times, want 1 for the shell lifetime", got)
	}
}

func TestStaleEpisodeResultIsDiscarded(t *testing.T) {
	q := &fakeQuerier{episodes: []catalog.Episode{{ID: "9", EpisodeNumber: 1, Title: "Pilot"}}}
	m := startedModel(t, q, TabCharacters)

	m, first := press(t, m, "2")
	staleGen := m.episodes.gen
	m, _ = press(t, m, "1")
	m, second := press(t, m, "2")

	late := episodesLoadedMsg{
		gen:    staleGen,
		result: loader.Result[catalog.Episode]{State: loader.Success, Data: []catalog.Episode{{EpisodeNumber: 99, Title: "Ghost"}}},
	}
	m = update(t, m, late)
	if !m.episodes.result.IsLoading() {
		t.Fatalf("stale result changed state to %v", m.episodes.result.State)
	}

	// The first mount's context was cancelled by the unmount.
	msgs := runCmd(first)
	if len(msgs) != 1 {
		t.Fatalf("first fetch produced %d messages", len(msgs))
	}
	if got := msgs[0].(episodesLoadedMsg).result.State; got != loader.Canceled {
		t.Fatalf("unmounted fetch state = %v, want canceled", got)
	}
	m = update(t, m, msgs[0])
	if !m.episodes.result.IsLoading() {
		t.Fatalf("cancelled result changed state")
	}

	for _, msg := range runCmd(second) {
		m = update(t, m, msg)
	}
	view := m.View()
	if !strings.Contains(view, "Pilot") || strings.Contains(view, "Ghost") {
		t.Fatalf("view should show only the current mount's rows:\n%s", view)
	}
}

func TestEpisodeTableRendering(t *testing.T) {
	q := &fakeQuerier{episodes: []catalog.Episode{
		{ID: "3", EpisodeNumber: 3, Status: "In Progress"},
		{ID: "1", EpisodeNumber: 1, Title: "Pilot", Status: "Done", Assignee: "Mona"},
		{ID: "2", EpisodeNumber: 2, Title: "The Market", Status: "Blocked"},
		{ID: "4", EpisodeNumber: 4, Title: "Finale"},
	}}
	m := startedModel(t, q, TabEpisodes)

	view := m.View()
	for _, want := range []string{"TITLE", "STATUS", "ASSIGNEE", "Pilot", "Mona", "Episode 3", "In Progress", "Done", "Blocked", "To Do", "Episodes (4)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Index(view, "Pilot") > strings.Index(view, "The Market") ||
		strings.Index(view, "The Market") > strings.Index(view, "Episode 3") {
		t.Fatalf("rows are not ordered by episode number:\n%s", view)
	}
}

func TestEpisodeStatusIsNotClipped(t *testing.T) {
	status := "Waiting on Voice Recording"
	q := &fakeQuerier{episodes: []catalog.Episode{
		{ID: "1", EpisodeNumber: 1, Title: "Pilot", Status: status},
		{ID: "2", EpisodeNumber: 2, Title: "The Market", Status: "Done"},
	}}
	m := startedModel(t, q, TabEpisodes)

	if view := m.View(); !strings.Contains(view, status) {
		t.Fatalf("view should show the full status %q:\n%s", status, view)
	}
	cols := layoutEpisodeColumns(116, q.episodes)
	if cols.status < len(status)+2 {
		t.Fatalf("status column = %d, want at least %d", cols.status, len(status)+2)
	}
	if cols := layoutEpisodeColumns(116, nil); cols.status != 15 {
		t.Fatalf("default status column = %d, want 15", cols.status)
	}
}

func TestUnconfiguredRunRendersSampleRoster(t *testing.T) {
	q := &fakeQuerier{err: errors.New("dial tcp: lookup placeholder.supabase.co: no such host")}
	m := New(Options{
		Context:      context.Background(),
		Client:       q,
		Logger:       zap.NewNop(),
		PrefsPath:    filepath.Join(t.TempDir(), "prefs.toml"),
		Unconfigured: true,
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	for _, msg := range runCmd(m.Init()) {
		m = update(t, m, msg)
	}

	if m.roster.result.State != loader.Fallback {
		t.Fatalf("roster state = %v, want fallback", m.roster.result.State)
	}
	view := m.View()
	for _, want := range []string{"! not configured", "sample data", "John Doe", "Sarah Smith"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEpisodesEmptyState(t *testing.T) {
	cases := map[string]*fakeQuerier{
		"fetch error": {err: errors.New("boom")},
		"empty table": {},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			m := startedModel(t, q, TabEpisodes)
			if m.episodes.result.State != loader.Empty {
				t.Fatalf("episodes state = %v, want empty", m.episodes.result.State)
			}
			if view := m.View(); !strings.Contains(view, "No episodes found. Add some in Supabase!") {
				t.Fatalf("view missing empty state:\n%s", view)
			}
		})
	}
}

func TestQuitCancelsOutstandingFetches(t *testing.T) {
	q := &fakeQuerier{characters: testRoster}
	m, init := newTestModel(t, q, TabCharacters)

	m, cmd := press(t, m, "q")
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q should quit")
	}

	for _, msg := range runCmd(init) {
		loaded, ok := msg.(charactersLoadedMsg)
		if !ok {
			continue
		}
		if loaded.result.State != loader.Canceled {
			t.Fatalf("roster fetch after quit = %v, want canceled", loaded.result.State)
		}
	}
	if got := q.count(catalog.CharactersTable); got != 0 {
		t.Fatalf("cancelled fetch still queried the remote %d times", got)
	}
}

func TestThemeCycleSavesPrefs(t *testing.T) {
	m := startedModel(t, &fakeQuerier{characters: testRoster}, TabCharacters)
	m, _ = press(t, m, "T")

	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Nightfox" {
		t.Fatalf("saved theme = %q, want Nightfox", got)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := startedModel(t, &fakeQuerier{characters: testRoster}, TabCharacters)
	m, _ = press(t, m, "?")
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown:\n%s", view)
	}
	m, _ = press(t, m, "x")
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestParseTab(t *testing.T) {
	cases := map[string]Tab{
		"":           TabCharacters,
		"characters": TabCharacters,
		" Episodes ": TabEpisodes,
		"e":          TabEpisodes,
	}
	for in, want := range cases {
		got, err := ParseTab(in)
		if err != nil || got != want {
			t.Fatalf("ParseTab(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseTab("logs"); err == nil {
		t.Fatalf("ParseTab(logs) should fail")
	}
}
