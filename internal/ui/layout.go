package ui

import "github.com/rowanheath/ceefax/internal/pages"

// Frame dimensions, fixed by the page matrix contract.
const (
	FrameWidth  = pages.Columns
	FrameHeight = pages.Rows
)

// FrameGeometry places the fixed frame inside the terminal.
type FrameGeometry struct {
	OffsetY int
	OffsetX int
}

// computeFrame centres the frame in a terminal of the given size. ok is
// false when the terminal cannot hold the frame, in which case the
// caller must draw the too-small warning and nothing else.
func computeFrame(height, width int) (FrameGeometry, bool) {
	if height < FrameHeight || width < FrameWidth {
		return FrameGeometry{}, false
	}
	return FrameGeometry{
		OffsetY: max((height-FrameHeight)/2, 0),
		OffsetX: max((width-FrameWidth)/2, 0),
	}, true
}
