package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/deafcat/adaptation/internal/catalog"
	"github.com/deafcat/adaptation/internal/loader"
)

// Messages

type charactersLoadedMsg struct {
	gen    uint64
	result loader.Result[catalog.Character]
}

type episodesLoadedMsg struct {
	gen    uint64
	result loader.Result[catalog.Episode]
}

// mount tracks one live view and the fetch that feeds it. A zero gen means
// the view is not mounted.
type mount[T any] struct {
	gen    uint64
	cancel context.CancelFunc
	result loader.Result[T]
}

// start replaces any previous mount and returns the context for its fetch.
func (v *mount[T]) start(parent context.Context, gen uint64) context.Context {
	v.stop()
	ctx, cancel := context.WithCancel(parent)
	v.gen = gen
	v.cancel = cancel
	v.result = loader.Pending[T]()
	return ctx
}

func (v *mount[T]) stop() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen = 0
}

func (v mount[T]) mounted() bool {
	return v.gen != 0
}

// accepts reports whether a result tagged gen belongs to the current mount.
func (v mount[T]) accepts(gen uint64, r loader.Result[T]) bool {
	return v.mounted() && gen == v.gen && r.State != loader.Canceled
}

func (t Tab) other() Tab {
	if t == TabCharacters {
		return TabEpisodes
	}
	return TabCharacters
}

func (m *Model) nextGeneration() uint64 {
	m.generation++
	return m.generation
}

// mountRoster starts the roster fetch. The roster lives as long as the shell.
func (m *Model) mountRoster() tea.Cmd {
	gen := m.nextGeneration()
	ctx := m.roster.start(m.ctx, gen)
	client, log := m.client, m.log
	log.Debug("mount view", zap.Stringer("tab", TabCharacters), zap.Uint64("generation", gen))

	return func() tea.Msg {
		return charactersLoadedMsg{gen: gen, result: catalog.LoadCharacters(ctx, log, client)}
	}
}

// mountEpisodes starts a fresh episode fetch.
func (m *Model) mountEpisodes() tea.Cmd {
	gen := m.nextGeneration()
	ctx := m.episodes.start(m.ctx, gen)
	client, log := m.client, m.log
	log.Debug("mount view", zap.Stringer("tab", TabEpisodes), zap.Uint64("generation", gen))

	return func() tea.Msg {
		return episodesLoadedMsg{gen: gen, result: catalog.LoadEpisodes(ctx, log, client)}
	}
}

func (m *Model) unmountEpisodes() {
	if !m.episodes.mounted() {
		return
	}
	m.log.Debug("unmount view", zap.Stringer("tab", TabEpisodes), zap.Uint64("generation", m.episodes.gen))
	m.episodes.stop()
	m.episodes.result = loader.Pending[catalog.Episode]()
}

// selectTab makes t the active tab. Selecting the active tab does nothing.
func (m *Model) selectTab(t Tab) tea.Cmd {
	if t == m.tab {
		return nil
	}
	m.log.Debug("switch tab", zap.Stringer("from", m.tab), zap.Stringer("to", t))

	var cmd tea.Cmd
	switch t {
	case TabEpisodes:
		if m.searching {
			m.searching = false
			m.search.Blur()
		}
		cmd = m.mountEpisodes()
	case TabCharacters:
		m.unmountEpisodes()
	}

	m.tab = t
	m.viewport.GotoTop()
	m.refreshViewport()
	return cmd
}

func (m *Model) handleCharacters(msg charactersLoadedMsg) {
	if !m.roster.accepts(msg.gen, msg.result) {
		m.log.Debug("discard stale result",
			zap.String("table", catalog.CharactersTable),
			zap.Uint64("generation", msg.gen),
			zap.Stringer("state", msg.result.State))
		return
	}
	m.roster.result = msg.result
	if m.tab == TabCharacters {
		m.refreshViewport()
	}
}

func (m *Model) handleEpisodes(msg episodesLoadedMsg) {
	if !m.episodes.accepts(msg.gen, msg.result) {
		m.log.Debug("discard stale result",
			zap.String("table", catalog.EpisodesTable),
			zap.Uint64("generation", msg.gen),
			zap.Stringer("state", msg.result.State))
		return
	}
	m.episodes.result = msg.result
	if m.tab == TabEpisodes {
		m.refreshViewport()
	}
}

// shutdown cancels every outstanding fetch.
func (m *Model) shutdown() {
	m.roster.stop()
	m.episodes.stop()
}
