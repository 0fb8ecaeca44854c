package render

import (
	"time"

	"github.com/fleetform/fleetform/internal/forms"
	"github.com/fleetform/fleetform/internal/pdf"
)

// drawVehicleTable renders one page-scoped slice of the inventory:
// the shaded header row followed by a fixed-height row per entry,
// alternating row shading and a full cell grid. Cell text is
// truncated against the measured column width; empty optional fields
// render nothing. startIndex is the absolute index of the first entry
// so shading parity stays stable across page boundaries.
func drawVehicleTable(s pdf.DrawSurface, m pdf.FontMetrics, cur Cursor, entries []forms.VehicleEntry, startIndex int) Cursor {
	x := margin
	s.FillRect(margin, cur.Y, contentWidth, tableHeaderH, colorShade)
	for _, col := range vehicleColumns {
		s.Rect(x, cur.Y, col.width, tableHeaderH, 0.7, colorRule)
		title := truncateToWidth(m, col.title, tableSize, col.width-2*cellPadX)
		s.Text(x+cellPadX, cur.Y+13, title, pdf.TextStyle{Size: tableSize, Bold: true, Color: colorBlack})
		x += col.width
	}
	cur = cur.Advance(tableHeaderH)

	for i, entry := range entries {
		if (startIndex+i)%2 == 1 {
			s.FillRect(margin, cur.Y, contentWidth, tableRowH, colorShade)
		}
		x = margin
		for c, val := range vehicleCells(entry) {
			col := vehicleColumns[c]
			s.Rect(x, cur.Y, col.width, tableRowH, 0.7, colorRule)
			if val != "" {
				cell := truncateToWidth(m, foldLatin(val), tableSize, col.width-2*cellPadX)
				s.Text(x+cellPadX, cur.Y+14, cell, pdf.TextStyle{Size: tableSize, Color: colorBlack})
			}
			x += col.width
		}
		cur = cur.Advance(tableRowH)
	}
	return cur
}

// vehicleCells maps an entry onto the eleven column values in order.
func vehicleCells(e forms.VehicleEntry) []string {
	return []string{
		e.Classification,
		e.Make,
		e.Category,
		e.Features,
		e.AgencyOwner,
		e.OperatorName,
		e.LicenseOrID,
		e.Assignment,
		formatShortTime(e.StartAt),
		formatShortTime(e.ReleasedAt),
		deref(e.ReferenceID),
	}
}

func formatShortTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("01/02 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
