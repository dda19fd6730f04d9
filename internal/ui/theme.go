package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette holds the fixed set of styles used to paint a page. It is
// built once at startup and passed into the renderer; nothing here is
// process-global.
type Palette struct {
	Header  lipgloss.Style // header and banner rows
	Body    lipgloss.Style // matrix content
	Heading lipgloss.Style // section heading row
	Rule    lipgloss.Style // separator under the heading
	Status  lipgloss.Style // bottom status line

	// Fastext accents, in bar order.
	Red    lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Blue   lipgloss.Style

	// Color reports whether the palette carries colours. The fastext
	// bar falls back to a plain concatenated line when it does not.
	Color bool
}

// Classic teletext accents, as ANSI base colours.
const (
	ansiRed    = lipgloss.Color("1")
	ansiGreen  = lipgloss.Color("2")
	ansiYellow = lipgloss.Color("3")
	ansiBlue   = lipgloss.Color("4")
)

// NewPalette builds the palette matching the renderer's colour
// capability: the full Ceefax colours where the terminal supports
// them, attribute-only equivalents otherwise.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r.ColorProfile() == termenv.Ascii {
		return MonoPalette(r)
	}
	return ColorPalette(r)
}

// ColorPalette is the classic look: yellow-on-blue header, yellow body
// text, blue rule, four bold fastext accents.
func ColorPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Header:  r.NewStyle().Foreground(ansiYellow).Background(ansiBlue).Bold(true),
		Body:    r.NewStyle().Foreground(ansiYellow),
		Heading: r.NewStyle().Foreground(ansiYellow).Bold(true),
		Rule:    r.NewStyle().Foreground(ansiBlue),
		Status:  r.NewStyle().Reverse(true),
		Red:     r.NewStyle().Foreground(ansiRed).Bold(true),
		Green:   r.NewStyle().Foreground(ansiGreen).Bold(true),
		Yellow:  r.NewStyle().Foreground(ansiYellow).Bold(true),
		Blue:    r.NewStyle().Foreground(ansiBlue).Bold(true),
		Color:   true,
	}
}

// MonoPalette substitutes text attributes for colour: bold for
// emphasis, underline for the rule, reverse for the status line.
func MonoPalette(r *lipgloss.Renderer) Palette {
	plain := r.NewStyle()
	return Palette{
		Header:  r.NewStyle().Bold(true),
		Body:    plain,
		Heading: r.NewStyle().Bold(true),
		Rule:    r.NewStyle().Underline(true),
		Status:  r.NewStyle().Reverse(true),
		Red:     plain,
		Green:   plain,
		Yellow:  plain,
		Blue:    plain,
		Color:   false,
	}
}
