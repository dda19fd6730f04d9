// Package app provides the orchestration layer for the ceefax viewer.
//
// # Overview
//
// This package wires together configuration, page loading and the UI.
// It is the composition root: dependencies are initialised here and
// handed to the Bubble Tea program, which then owns the process until
// the user quits.
//
// # Architecture
//
// Run follows a simple initialisation pattern:
//
//  1. Load configuration from ~/.config/ceefax/config.toml
//  2. Load page definitions from the page directory and compile each
//     one to its display matrix
//  3. Build the viewer model, handing it a reload closure
//  4. Start the TUI in the alt screen and block until quit
//
// # Reloading
//
// The reload closure is the only path that rebuilds viewer state after
// startup. It re-reads the config, reloads and recompiles the whole
// page set, and returns pages and matrices together so the viewer can
// swap them in as one unit. There is no background refresh of any
// kind; everything happens on the key-event cycle.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable or invalid config, and
// terminal setup failures from the TUI runtime. Everything else
// degrades: an unreadable or empty page directory produces an empty
// set, which the viewer presents as "No pages loaded".
package app
