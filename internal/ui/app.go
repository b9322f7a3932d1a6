package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/deafcat/adaptation/internal/catalog"
	"github.com/deafcat/adaptation/internal/prefs"
	"github.com/deafcat/adaptation/internal/supabase"
)

// Tab identifies the active view.
type Tab int

const (
	TabCharacters Tab = iota
	TabEpisodes
)

func (t Tab) String() string {
	switch t {
	case TabEpisodes:
		return "episodes"
	default:
		return "characters"
	}
}

// Title is the label shown on the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabEpisodes:
		return "Episodes"
	default:
		return "Character Bible"
	}
}

// ParseTab maps a CLI value to a Tab.
func ParseTab(value string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "characters", "character", "c":
		return TabCharacters, nil
	case "episodes", "episode", "e":
		return TabEpisodes, nil
	default:
		return TabCharacters, errors.New("tab must be characters or episodes")
	}
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Client  supabase.Querier
	Logger  *zap.Logger

	InitialTab Tab
	ThemeName  string
	PrefsPath  string

	// Unconfigured marks a run on placeholder credentials.
	Unconfigured bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	client       supabase.Querier
	log          *zap.Logger
	keys         keyMap
	prefsPath    string
	unconfigured bool

	// UI state
	theme    Theme
	tab      Tab
	width    int
	height   int
	ready    bool
	showHelp bool
	viewport viewport.Model

	// Search box, owned by the shell with the roster
	search    textinput.Model
	searching bool

	// Mounted views
	generation uint64
	roster     mount[catalog.Character]
	episodes   mount[catalog.Episode]

	pending []tea.Cmd
}

// New creates a new Bubble Tea model. The roster fetch, and the episode fetch
// when starting on that tab, are issued by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search characters..."
	search.CharLimit = 0

	m := Model{
		ctx:          ctx,
		client:       opts.Client,
		log:          log,
		keys:         DefaultKeyMap(),
		prefsPath:    prefsPath,
		unconfigured: opts.Unconfigured,
		theme:        GetTheme(themeName),
		tab:          TabCharacters,
		search:       search,
	}

	m.pending = append(m.pending, m.mountRoster())
	if opts.InitialTab == TabEpisodes {
		m.tab = TabEpisodes
		m.pending = append(m.pending, m.mountEpisodes())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pending...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.bodyHeight())
		}
		m.ready = true
		m.refreshViewport()
		return m, nil

	case charactersLoadedMsg:
		m.handleCharacters(msg)
		return m, nil

	case episodesLoadedMsg:
		m.handleEpisodes(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn("save prefs", zap.Error(err))
		}
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.Characters):
		return m, m.selectTab(TabCharacters)

	case key.Matches(msg, m.keys.Episodes):
		return m, m.selectTab(TabEpisodes)

	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		return m, m.selectTab(m.tab.other())

	case key.Matches(msg, m.keys.Search):
		if m.tab != TabCharacters {
			return m, nil
		}
		m.searching = true
		m.refreshViewport()
		return m, m.search.Focus()
	}

	m.scroll(msg)
	return m, nil
}

// handleSearchKey routes keys to the search box while it has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.refreshViewport()
		return m, nil
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.viewport.GotoTop()
		m.refreshViewport()
	}
	return m, cmd
}

// scroll applies navigation keys to the active view.
func (m *Model) scroll(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
	}
}

// SearchValue returns the current character filter.
func (m Model) SearchValue() string {
	return m.search.Value()
}

// ActiveTab returns the tab currently shown.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the active tab.
func (m Model) renderContent() string {
	switch m.tab {
	case TabEpisodes:
		return m.renderEpisodes()
	default:
		return m.renderRoster()
	}
}

// bodyHeight is the number of rows left for the scrolling body.
func (m Model) bodyHeight() int {
	h := m.height - 2 // header + cmdbar
	switch m.tab {
	case TabCharacters:
		h -= 2 // search line + spacer
	case TabEpisodes:
		h -= 4 // box borders + column header + rule
	}
	return max(h, 1)
}

// refreshViewport re-renders the scrolling body for the active tab.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.Height = m.bodyHeight()
	switch m.tab {
	case TabEpisodes:
		m.viewport.Width = m.episodeTableWidth()
		m.viewport.SetContent(m.episodeRows(m.viewport.Width))
	default:
		m.viewport.Width = m.width
		m.viewport.SetContent(m.characterGrid(m.width))
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.shutdown()
	}
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
