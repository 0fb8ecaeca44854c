// Package render turns validated form records into paginated PDF
// documents. Each entry point builds one document, renders its
// sections while threading a layout cursor, then serializes to an
// in-memory buffer. Calls are independent and safe to run in
// parallel.
package render

import "github.com/fleetform/fleetform/internal/pdf"

// Page geometry, US Letter in points. Immutable for the lifetime of a
// render.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 40.0

	contentWidth = pageWidth - 2*margin
	// contentBottom is the nominal lower bound for section content.
	// The checkout form may draw past it (warning-only overflow).
	contentBottom  = pageHeight - margin
	footerBaseline = 772.0
)

// Font sizes.
const (
	titleSize     = 16.0
	sectionSize   = 11.0
	bodySize      = 9.0
	smallSize     = 8.0
	tableSize     = 7.5
	footerSize    = 7.0
	watermarkSize = 52.0
)

// Checkout form layout.
const (
	titleBlockHeight  = 46.0
	sectionGap        = 14.0
	labelLineHeight   = 14.0
	gridRowHeight     = 18.0
	commentLineHeight = 14.0
	commentIndent     = 18.0
	checkboxSize      = 10.0

	// Fixed x-offsets of the three checkbox columns.
	passColX = margin + 352
	failColX = margin + 408
	naColX   = margin + 464

	decisionBoxHeight  = 34.0
	signatureRowHeight = 64.0
	signatureImgWidth  = 120.0
	signatureImgHeight = 36.0
)

// Vehicle list layout.
const (
	rowsPerPage      = 12
	tableHeaderH     = 20.0
	tableRowH        = 22.0
	cellPadX         = 3.0
	continuationGap  = 10.0
	truncateEllipsis = "..."
)

// Palette.
var (
	colorBlack   = pdf.Color{R: 0, G: 0, B: 0}
	colorGreen   = pdf.Color{R: 34, G: 139, B: 34}
	colorRed     = pdf.Color{R: 200, G: 30, B: 30}
	colorGray    = pdf.Color{R: 120, G: 120, B: 120}
	colorShade   = pdf.Color{R: 240, G: 240, B: 240}
	colorRule    = pdf.Color{R: 60, G: 60, B: 60}
	colorWMark   = pdf.Color{R: 215, G: 215, B: 215}
	colorHoldBG  = pdf.Color{R: 250, G: 228, B: 228}
	colorClearBG = pdf.Color{R: 230, G: 244, B: 230}
)

// tableColumn is one fixed-width column of the vehicle table.
type tableColumn struct {
	title string
	width float64
}

// vehicleColumns are the eleven fixed columns; widths sum to
// contentWidth (532 pt).
var vehicleColumns = []tableColumn{
	{"CLASS", 50},
	{"MAKE", 55},
	{"CATEGORY", 45},
	{"FEATURES", 60},
	{"AGENCY/OWNER", 55},
	{"OPERATOR", 55},
	{"LICENSE/ID", 45},
	{"ASSIGNMENT", 50},
	{"START", 40},
	{"RELEASE", 40},
	{"REF", 37},
}
