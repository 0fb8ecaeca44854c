package render

import "github.com/fleetform/fleetform/internal/pdf"

// widthTolerance absorbs metric rounding when deciding whether text
// fits a column.
const widthTolerance = 0.5

// truncateToWidth returns s unchanged when its measured width fits
// within maxWidth, otherwise the longest prefix that, with a trailing
// ellipsis, still fits. Degenerate columns narrower than the ellipsis
// itself yield the empty string.
func truncateToWidth(m pdf.FontMetrics, s string, size, maxWidth float64) string {
	if m.WidthOf(s, size) <= maxWidth+widthTolerance {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		candidate := string(r) + truncateEllipsis
		if m.WidthOf(candidate, size) <= maxWidth+widthTolerance {
			return candidate
		}
	}
	if m.WidthOf(truncateEllipsis, size) <= maxWidth+widthTolerance {
		return truncateEllipsis
	}
	return ""
}
