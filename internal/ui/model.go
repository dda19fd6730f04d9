package ui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rowanheath/ceefax/internal/logging"
	"github.com/rowanheath/ceefax/internal/pages"
)

// ReloadFunc rebuilds the page set from its source and returns the new
// pages paired with their compiled matrices as one unit. An empty
// result means "no change": the previous set stays in place.
type ReloadFunc func() ([]pages.Page, [][]string)

// Options configure a viewer Model.
type Options struct {
	Pages    []pages.Page
	Matrices [][]string
	Reload   ReloadFunc
	Logger   *slog.Logger
}

// Model is the Bubble Tea model for the viewer. It is the only owner
// of the page/matrix pair and the current index; matrices[i] is always
// the compiled form of pages[i] and the two are replaced together.
type Model struct {
	pages    []pages.Page
	matrices [][]string
	index    int

	width  int
	height int

	keys    keyMap
	palette Palette
	reload  ReloadFunc
	now     func() time.Time
	log     *slog.Logger
}

// NewModel builds a viewer over an already loaded page set. The
// palette is fixed here, from the terminal the program will draw to,
// and threaded through to every render.
func NewModel(opts Options) Model {
	m := Model{
		pages:    opts.Pages,
		matrices: opts.Matrices,
		keys:     defaultKeyMap(),
		palette:  NewPalette(lipgloss.DefaultRenderer()),
		reload:   opts.Reload,
		now:      time.Now,
		log:      opts.Logger,
	}
	if m.log == nil {
		m.log = logging.New("viewer")
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}
