package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
//
// The zero value renders the exact reproducible format tools match on:
// no color, no underline. Both extras are opt-in and purely additive; the
// three base lines stay byte-identical either way.
type PrettyOpts struct {
	// Color applies ANSI color to the severity label.
	Color bool
	// Underline adds a caret row under single-line spans, aligned by
	// display width so wide runes stay covered.
	Underline bool
	// ShowNotes renders attached notes after the primary block.
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col pairs next to byte offsets
	IncludeNotes     bool
	Max              int // output truncation, does not touch the Bag
}
