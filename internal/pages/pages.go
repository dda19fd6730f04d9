package pages

// Page identifies one screen of displayable content.
type Page struct {
	// PageID is the stable identifier shown in the status line.
	PageID string
	// Number is the numeric-ish teletext page label, e.g. "100".
	Number string
	// Title is the human-readable name shown in the header.
	Title string
	// Lines holds the raw content before compilation.
	Lines []string
}
