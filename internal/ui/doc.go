// Package ui renders teletext pages into a framed, centred region of
// the terminal and drives the page-navigation loop.
//
// # Architecture Overview
//
// The package is a Bubble Tea program with a single steady state:
// render the current page, wait for one key, apply the transition,
// repeat. There is no autonomous refresh; the header clock advances
// because View samples the time after every message, including keys
// that map to no transition.
//
// # Package Structure
//
//   - model.go: the Model holding the page set, compiled matrices and current index
//   - update.go: the pure key-to-action transition function and its application
//   - view.go: size gating and the per-cycle draw
//   - layout.go: centring of the fixed 40x24 frame in the terminal
//   - render.go: header, banner, body, fastext bar and status line rows
//   - theme.go: the colour/monochrome style palette
//   - keys.go: key bindings
//
// # State Ownership
//
// The Model owns the page/matrix pair exclusively. Reload replaces
// both sequences and the index as one assignment; an empty reload
// result leaves the previous set untouched. Nothing else writes viewer
// state, so rendering reads it without synchronisation.
//
// # Key Bindings
//
//   - n / right / pgdown: next page (wraps)
//   - p / left / pgup: previous page (wraps)
//   - r: reload pages from disk
//   - q or Ctrl+C: quit
package ui
