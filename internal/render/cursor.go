package render

// Cursor is the layout position threaded through section renderers.
// Sections render strictly downward: each takes the cursor it was
// given and returns the cursor for whatever comes next. Value
// semantics keep renders free of shared mutable state.
type Cursor struct {
	X, Y float64
	// Page is the zero-based page index, meaningful for the
	// multi-page vehicle list.
	Page int
}

// Advance returns a cursor moved down by dy points.
func (c Cursor) Advance(dy float64) Cursor {
	c.Y += dy
	return c
}
