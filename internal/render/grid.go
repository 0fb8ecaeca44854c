package render

import (
	"fmt"
	"strings"

	"github.com/fleetform/fleetform/internal/forms"
	"github.com/fleetform/fleetform/internal/pdf"
)

// markKind selects the glyph drawn inside a marked checkbox.
type markKind int

const (
	markCheck markKind = iota
	markCross
	markDash
)

// drawInspectionGrid renders the 17-item checklist: description on
// the left, three bordered checkboxes per row at fixed x-offsets, a
// mark in exactly the column matching the item's status. Safety items
// render bold with a leading alert glyph. Items with a comment get an
// indented extra line, so row height is not constant.
func drawInspectionGrid(s pdf.DrawSurface, m pdf.FontMetrics, cur Cursor, items []forms.InspectionItem) Cursor {
	cur = drawSectionHeader(s, cur, "INSPECTION CHECKLIST")

	headerStyle := pdf.TextStyle{Size: smallSize, Bold: true, Color: colorBlack}
	s.Text(margin, cur.Y+8, "ITEM", headerStyle)
	s.Text(passColX-2, cur.Y+8, "PASS", headerStyle)
	s.Text(failColX-2, cur.Y+8, "FAIL", headerStyle)
	s.Text(naColX, cur.Y+8, "N/A", headerStyle)
	cur = cur.Advance(labelLineHeight)

	for _, item := range items {
		baseline := cur.Y + 12
		desc := fmt.Sprintf("%d. %s", item.Number, item.Description)
		style := pdf.TextStyle{Size: bodySize, Color: colorBlack}
		if item.IsSafetyItem {
			style.Bold = true
			desc = "! " + desc
		}
		desc = truncateToWidth(m, foldLatin(desc), bodySize, passColX-margin-10)
		s.Text(margin, baseline, desc, style)

		boxY := cur.Y + 3
		drawCheckbox(s, passColX, boxY, item.Status == forms.StatusPass, markCheck)
		drawCheckbox(s, failColX, boxY, item.Status == forms.StatusFail, markCross)
		drawCheckbox(s, naColX, boxY, item.Status == forms.StatusNA, markDash)
		cur = cur.Advance(gridRowHeight)

		if item.Comment != nil && strings.TrimSpace(*item.Comment) != "" {
			note := "Comment: " + *item.Comment
			note = truncateToWidth(m, foldLatin(note), smallSize, contentWidth-commentIndent)
			s.Text(margin+commentIndent, cur.Y+9, note, pdf.TextStyle{Size: smallSize, Color: colorGray})
			cur = cur.Advance(commentLineHeight)
		}
	}
	return cur.Advance(sectionGap - 6)
}

// drawCheckbox draws one bordered box, plus the interior mark when
// the box is the item's active column.
func drawCheckbox(s pdf.DrawSurface, x, y float64, marked bool, kind markKind) {
	s.Rect(x, y, checkboxSize, checkboxSize, 0.8, colorRule)
	if !marked {
		return
	}
	switch kind {
	case markCheck:
		s.Line(x+2, y+5.5, x+4, y+8, 1.2, colorGreen)
		s.Line(x+4, y+8, x+8, y+2.5, 1.2, colorGreen)
	case markCross:
		s.Line(x+2, y+2, x+8, y+8, 1.2, colorRed)
		s.Line(x+8, y+2, x+2, y+8, 1.2, colorRed)
	case markDash:
		s.Line(x+2, y+5, x+8, y+5, 1.2, colorGray)
	}
}
