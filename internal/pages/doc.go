// Package pages loads teletext page definitions from disk and compiles
// them into fixed-size text matrices ready for row-by-row rendering.
//
// # Page Format
//
// A page is a single TOML file in the page directory:
//
//	page_id = "news-headlines"
//	page = "100"
//	title = "News Headlines"
//	content = """
//	PM announces new rail investment plan
//	Markets steady after quiet trading day
//	"""
//
// page_id is required; everything else is optional. Files that fail to
// parse are logged and skipped so a bad page never takes down the
// viewer. LoadAll returns the surviving pages sorted by page number,
// and an empty set when the directory is missing or holds no pages.
//
// # Matrix Contract
//
// Compile turns one Page into at most 24 lines of exactly 40 cells
// each. The renderer relies on this layout:
//
//	row 0   reserved (the renderer synthesises its own header)
//	row 1   "compiled at" timestamp
//	row 2   section heading (the page title)
//	row 3+  content lines
//
// Matrices are recomputed wholesale on reload and never mutated in
// place; the viewer owns the compiled set exclusively.
package pages
