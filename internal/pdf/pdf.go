// Package pdf abstracts the PDF-authoring backend behind small
// capability interfaces so the layout engine and its tests never
// depend on a concrete library.
package pdf

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

// TextStyle selects the font weight, size and fill color for a text
// draw. The document carries exactly two font weights.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color Color
}

// FontMetrics measures text against the embedded font so truncation
// can be tested independent of any rendering backend. Widths are in
// points at the given size, regular weight.
type FontMetrics interface {
	WidthOf(text string, size float64) float64
}

// DrawSurface exposes the primitive draw operations on the current
// page. Coordinates are in points from the top-left corner; text is
// positioned at its baseline.
type DrawSurface interface {
	Text(x, y float64, text string, style TextStyle)
	TextRotated(x, y float64, text string, style TextStyle, angle float64)
	Line(x1, y1, x2, y2, width float64, color Color)
	Rect(x, y, w, h, lineWidth float64, color Color)
	FillRect(x, y, w, h float64, fill Color)
	Image(name string, x, y, w, h float64)
}

// Document owns the page list and embedded resources and serializes
// the finished document to an in-memory buffer. Implementations hold
// no state outside the document itself, so independent documents may
// be built concurrently.
type Document interface {
	AddPage()
	PageCount() int
	// EmbedPNG registers a decoded PNG under a document-unique name
	// for later placement via DrawSurface.Image.
	EmbedPNG(name string, data []byte) error
	Surface() DrawSurface
	Metrics() FontMetrics
	Serialize() ([]byte, error)
}
