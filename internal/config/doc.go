// Package config handles loading and parsing the ceefax configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/ceefax/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but page_dir is missing/empty, use the default
//
// # TOML Format
//
// Example config.toml:
//
//	[general]
//	page_dir = "~/.local/share/ceefax/pages"
//
// The field is optional. Tilde expansion is performed automatically, and
// relative paths are converted to absolute based on the current directory.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist, which triggers defaults), and TOML parsing
// errors. A missing config file is NOT an error: the viewer works
// out-of-the-box without configuration.
//
// The package is read-only and stateless: configuration is loaded once at
// startup (and again on reload) and returned as an immutable Config
// struct. No global state is used.
package config
