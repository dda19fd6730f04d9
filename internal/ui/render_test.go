package ui

import (
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/rowanheath/ceefax/internal/pages"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func fixedClock() time.Time {
	return time.Date(2024, time.December, 6, 12, 34, 0, 0, time.UTC)
}

func TestHeaderLine_AlwaysExactlyFrameWidth(t *testing.T) {
	cases := []struct {
		name  string
		title string
	}{
		{"tiny_title", "TV"},
		{"long_title", strings.Repeat("News Headlines And More ", 3)},
		{"empty_title", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := headerLine(pages.Page{Number: "100", Title: tc.title}, fixedClock())
			if w := runewidth.StringWidth(got); w != FrameWidth {
				t.Fatalf("header width = %d, want %d (%q)", w, FrameWidth, got)
			}
		})
	}
}

func TestHeaderLine_Content(t *testing.T) {
	got := headerLine(pages.Page{Number: "1", Title: "News Headlines"}, fixedClock())

	if !strings.HasPrefix(got, "CEEFAX   1 NEWS HEADLINES") {
		t.Fatalf("header = %q, want CEEFAX prefix with right-justified number and upper title", got)
	}
	// The 12-cell clock overflows its 9-cell slot and is clipped at
	// the frame edge, exactly as the frame contract demands.
	if !strings.Contains(got, "12:34 06 ") {
		t.Fatalf("header = %q, want the clipped clock", got)
	}
}

func renderBoth(t *testing.T, width, height int) (colored, mono string) {
	t.Helper()
	pgs, matrices := testPages(3)
	geom, ok := computeFrame(height, width)
	if !ok {
		t.Fatalf("computeFrame(%d, %d) too-small", height, width)
	}
	r := colorRenderer()
	colored = renderPage(ColorPalette(r), geom, pgs[0], matrices[0], 0, 3, width, height, fixedClock())
	mono = renderPage(MonoPalette(r), geom, pgs[0], matrices[0], 0, 3, width, height, fixedClock())
	return colored, mono
}

func TestRenderPage_FillsExactlyTheTerminal(t *testing.T) {
	const width, height = 80, 30
	colored, _ := renderBoth(t, width, height)

	rows := strings.Split(colored, "\n")
	if len(rows) != height {
		t.Fatalf("render produced %d rows, want %d", len(rows), height)
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w > width {
			t.Fatalf("row %d is %d cells wide, exceeds terminal width %d", i, w, width)
		}
	}
}

func TestRenderPage_RowPlacement(t *testing.T) {
	const width, height = 80, 30
	colored, _ := renderBoth(t, width, height)
	geom, _ := computeFrame(height, width)

	rows := strings.Split(colored, "\n")
	for y := 0; y < geom.OffsetY; y++ {
		if rows[y] != "" {
			t.Fatalf("row %d above the frame is not empty: %q", y, rows[y])
		}
	}
	if !strings.Contains(stripANSI(rows[geom.OffsetY]), "CEEFAX 100") {
		t.Fatalf("header row = %q, want synthesised CEEFAX header", stripANSI(rows[geom.OffsetY]))
	}
	if !strings.Contains(stripANSI(rows[geom.OffsetY+4]), "Updated") {
		t.Fatalf("timestamp row = %q, want matrix row 1", stripANSI(rows[geom.OffsetY+4]))
	}
	if !strings.Contains(stripANSI(rows[geom.OffsetY+6]), strings.Repeat("-", FrameWidth)) {
		t.Fatalf("rule row = %q, want full-width rule", stripANSI(rows[geom.OffsetY+6]))
	}
	status := stripANSI(rows[height-1])
	if !strings.Contains(status, "Page page-0  (1/3)  n/p: next/prev  r: reload  q: quit") {
		t.Fatalf("status row = %q", status)
	}
}

func TestRenderPage_ColorAndMonoAreStructurallyEquivalent(t *testing.T) {
	const width, height = 80, 30
	colored, mono := renderBoth(t, width, height)

	colorRows := strings.Split(colored, "\n")
	monoRows := strings.Split(mono, "\n")
	if len(colorRows) != len(monoRows) {
		t.Fatalf("row counts differ: %d vs %d", len(colorRows), len(monoRows))
	}

	fastextY := height - 2
	for y := range colorRows {
		if y == fastextY {
			continue
		}
		if stripANSI(colorRows[y]) != stripANSI(monoRows[y]) {
			t.Fatalf("row %d text differs between color and mono:\n%q\n%q",
				y, stripANSI(colorRows[y]), stripANSI(monoRows[y]))
		}
	}

	// Both modes must present all four fastext segments; only the
	// styling differs.
	for _, label := range []string{"RED", "GREEN", "YELLOW", "BLUE"} {
		if !strings.Contains(stripANSI(colorRows[fastextY]), label) {
			t.Fatalf("color fastext row %q missing %s", stripANSI(colorRows[fastextY]), label)
		}
		if !strings.Contains(monoRows[fastextY], label) {
			t.Fatalf("mono fastext row %q missing %s", monoRows[fastextY], label)
		}
	}
	if colorRows[fastextY] == monoRows[fastextY] {
		t.Fatalf("fastext row identical in both modes, want styled vs plain")
	}
}

func TestRenderPage_FastextBarOmittedWhenFrameReachesBottom(t *testing.T) {
	const width, height = 80, 25
	colored, _ := renderBoth(t, width, height)

	rows := strings.Split(colored, "\n")
	if strings.Contains(stripANSI(rows[height-2]), "RED") {
		t.Fatalf("fastext bar drawn inside the frame area: %q", stripANSI(rows[height-2]))
	}
}

func TestFastextBar_TruncatesAtTerminalEdge(t *testing.T) {
	r := colorRenderer()
	bar := fastextBar(ColorPalette(r), 12)
	if w := lipgloss.Width(bar); w > 12 {
		t.Fatalf("fastext bar width = %d, want <= 12", w)
	}
	if !strings.Contains(stripANSI(bar), "RED") {
		t.Fatalf("truncated bar %q lost its first segment", stripANSI(bar))
	}
}

func TestView_TooSmallAndNoPages(t *testing.T) {
	m := testModel(t, 3)
	m.width, m.height = 45, 10
	if got := m.View(); got != tooSmallMsg {
		t.Fatalf("undersized View = %q, want warning", got)
	}

	// A terminal narrower than the warning clips it rather than
	// overflowing.
	m.width, m.height = 20, 10
	if got := m.View(); runewidth.StringWidth(got) > 20 {
		t.Fatalf("clipped warning %q wider than terminal", got)
	}

	m = testModel(t, 0)
	m.width, m.height = 80, 30
	if got := m.View(); got != noPagesMsg {
		t.Fatalf("no-pages View = %q, want %q", got, noPagesMsg)
	}

	m = testModel(t, 0)
	m.width, m.height = 0, 0
	if got := m.View(); got != "" {
		t.Fatalf("zero-size View = %q, want empty", got)
	}
}
