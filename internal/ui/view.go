package ui

// View draws one full cycle: gate on terminal size, then paint the
// current page with a freshly sampled clock. Geometry is recomputed on
// every call, which is all the resize handling the viewer needs.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.pages) == 0 {
		return clipLine(noPagesMsg, m.width)
	}
	geom, ok := computeFrame(m.height, m.width)
	if !ok {
		return clipLine(tooSmallMsg, m.width)
	}
	return renderPage(m.palette, geom, m.pages[m.index], m.matrices[m.index], m.index, len(m.pages), m.width, m.height, m.now())
}
