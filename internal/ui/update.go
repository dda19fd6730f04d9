package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// action labels a navigation transition. The viewer is a one-state
// machine: every key maps to exactly one of these and the loop stays
// in its idle state for all but actionQuit.
type action int

const (
	actionIgnore action = iota
	actionNext
	actionPrevious
	actionReload
	actionQuit
)

// transition maps one key press onto its transition label. Pure: no
// state is touched, so the key protocol is testable without a
// terminal. With no pages loaded only quit means anything.
func (m Model) transition(msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return actionQuit
	case len(m.pages) == 0:
		return actionIgnore
	case key.Matches(msg, m.keys.Next):
		return actionNext
	case key.Matches(msg, m.keys.Previous):
		return actionPrevious
	case key.Matches(msg, m.keys.Reload):
		return actionReload
	default:
		return actionIgnore
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.transition(msg) {
		case actionQuit:
			return m, tea.Quit
		case actionNext:
			m.index = (m.index + 1) % len(m.pages)
		case actionPrevious:
			m.index = (m.index - 1 + len(m.pages)) % len(m.pages)
		case actionReload:
			m = m.applyReload()
		}
		// Ignored keys fall through to a plain re-render, which is how
		// the header clock advances while the viewer sits idle.
		return m, nil
	}
	return m, nil
}

// applyReload swaps in a freshly loaded page set. The pages, matrices
// and index change as one assignment, and only when the reload
// produced something; an empty result keeps the current set.
func (m Model) applyReload() Model {
	if m.reload == nil {
		return m
	}
	newPages, newMatrices := m.reload()
	if len(newPages) == 0 {
		m.log.Warn("reload produced no pages, keeping current set")
		return m
	}
	m.pages = newPages
	m.matrices = newMatrices
	m.index = 0
	m.log.Info("pages reloaded", "count", len(newPages))
	return m
}
