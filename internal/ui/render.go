package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rowanheath/ceefax/internal/pages"
)

const (
	tooSmallMsg = "Terminal too small. Need at least 40x24."
	noPagesMsg  = "No pages loaded. Press q to quit."
)

// Decorative banner drawn under the header, clipped to the frame width.
var banner = []string{
	"████████████████████████████████████████",
	"██            C E E F A X             ██",
	"████████████████████████████████████████",
}

// renderPage paints one compiled page as a full terminal worth of rows.
// The matrix's row 0 is ignored; the header is synthesised here so the
// clock is sampled fresh on every draw.
func renderPage(pal Palette, geom FrameGeometry, pg pages.Page, matrix []string, index, total, width, height int, now time.Time) string {
	rows := make([]string, height)
	pad := strings.Repeat(" ", geom.OffsetX)

	put := func(y int, line string) {
		if y >= 0 && y < height {
			rows[y] = line
		}
	}

	put(geom.OffsetY, pad+pal.Header.Render(headerLine(pg, now)))

	row := geom.OffsetY + 1
	for _, line := range banner {
		if row >= geom.OffsetY+FrameHeight {
			break
		}
		put(row, pad+pal.Header.Render(fitLine(line, FrameWidth)))
		row++
	}

	// Timestamp row from the compiled matrix.
	if len(matrix) > 1 {
		put(row, pad+pal.Body.Render(clipLine(matrix[1], FrameWidth)))
	}
	row++

	// Section heading with a rule beneath it, then the body lines,
	// hard-clipped at the frame's row budget.
	if len(matrix) > 2 {
		put(row, pad+pal.Heading.Render(clipLine(matrix[2], FrameWidth)))
		row++
		put(row, pad+pal.Rule.Render(strings.Repeat("-", FrameWidth)))
		row++
		for _, line := range matrix[3:min(len(matrix), FrameHeight)] {
			if row >= geom.OffsetY+FrameHeight {
				break
			}
			put(row, pad+pal.Body.Render(clipLine(line, FrameWidth)))
			row++
		}
	}

	// Fastext bar, only when the row above the status line sits below
	// the frame.
	fastextY := height - 2
	if fastextY > geom.OffsetY+FrameHeight {
		put(fastextY, fastextBar(pal, width))
	}

	status := fmt.Sprintf("Page %s  (%d/%d)  n/p: next/prev  r: reload  q: quit", pg.PageID, index+1, total)
	put(height-1, pal.Status.Render(clipLine(status, width)))

	return strings.Join(rows, "\n")
}

// headerLine builds the synthesised header, always exactly FrameWidth
// cells: "CEEFAX", the page number right-justified to 3, the title
// upper-cased and cut to 20, and the clock right-justified into what
// remains. The clock slot is narrower than the clock itself, so its
// tail is clipped at the frame edge.
func headerLine(pg pages.Page, now time.Time) string {
	clock := strings.ToUpper(now.Format("15:04 02 Jan"))
	title := runewidth.Truncate(strings.ToUpper(pg.Title), 20, "")
	text := fmt.Sprintf("CEEFAX %3s %-20s%9s", pg.Number, title, clock)
	return fitLine(text, FrameWidth)
}

// fastextBar renders the four quick-navigation segments. With colour,
// each label gets its accent; without, the same labels collapse to one
// plain line. Either way the bar never overruns the terminal width.
func fastextBar(pal Palette, width int) string {
	if !pal.Color {
		return clipLine("RED  GREEN  YELLOW  BLUE", width)
	}

	segments := []struct {
		label string
		style lipgloss.Style
	}{
		{" RED ", pal.Red},
		{" GREEN ", pal.Green},
		{" YELLOW ", pal.Yellow},
		{" BLUE ", pal.Blue},
	}

	var b strings.Builder
	x := 0
	for _, seg := range segments {
		if x >= width {
			break
		}
		label := clipLine(seg.label, width-x)
		b.WriteString(seg.style.Render(label))
		x += runewidth.StringWidth(label)
	}
	return b.String()
}

// clipLine truncates to the given display width without padding.
func clipLine(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// fitLine truncates and pads to exactly the given display width.
func fitLine(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
