package pages

import (
	"time"

	"github.com/mattn/go-runewidth"
)

// Matrix dimensions. Every compiled line is exactly Columns cells wide
// and a matrix never exceeds Rows lines.
const (
	Columns = 40
	Rows    = 24
)

// Compile turns a page into its display matrix. Row 0 is reserved for
// the synthesised header, row 1 carries the compile timestamp, row 2
// the title heading, and the content follows from row 3. Content that
// would not fit the Rows budget is dropped.
func Compile(pg Page) []string {
	return compileAt(pg, time.Now())
}

func compileAt(pg Page, now time.Time) []string {
	matrix := make([]string, 0, Rows)
	matrix = append(matrix, fit(""))
	matrix = append(matrix, fit("Updated "+now.Format("15:04 02 Jan 2006")))
	matrix = append(matrix, fit(pg.Title))
	for _, line := range pg.Lines {
		if len(matrix) >= Rows {
			break
		}
		matrix = append(matrix, fit(line))
	}
	return matrix
}

// fit clips and pads a line to exactly Columns display cells.
func fit(s string) string {
	return runewidth.FillRight(runewidth.Truncate(s, Columns, ""), Columns)
}
