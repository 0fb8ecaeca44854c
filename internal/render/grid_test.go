package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetform/fleetform/internal/forms"
)

// Mark glyphs are drawn as line segments: two per check, two per
// cross, one per dash. Counting colored segments therefore counts
// marks exactly.

func TestDrawInspectionGrid_OneMarkPerItem_AllPass(t *testing.T) {
	doc := newRecordingDoc()
	doc.AddPage()

	drawInspectionGrid(doc, doc, Cursor{X: margin, Y: margin}, createTestItems(0))

	assert.Len(t, doc.linesWithColor(colorGreen), 2*forms.InspectionItemCount)
	assert.Empty(t, doc.linesWithColor(colorRed))
	assert.Empty(t, doc.linesWithColor(colorGray))
	// Three bordered boxes per item regardless of status.
	assert.Len(t, doc.rectsOnPage(0, checkboxSize, false), 3*forms.InspectionItemCount)
}

func TestDrawInspectionGrid_OneMarkPerItem_MixedStatuses(t *testing.T) {
	items := createTestItems(0)
	items[1].Status = forms.StatusFail
	items[4].Status = forms.StatusFail
	items[7].Status = forms.StatusNA

	doc := newRecordingDoc()
	doc.AddPage()
	drawInspectionGrid(doc, doc, Cursor{X: margin, Y: margin}, items)

	assert.Len(t, doc.linesWithColor(colorGreen), 2*14, "14 passing items")
	assert.Len(t, doc.linesWithColor(colorRed), 2*2, "2 failing items")
	assert.Len(t, doc.linesWithColor(colorGray), 1, "1 n/a item")
}

func TestDrawInspectionGrid_SafetyItemsBoldWithAlertGlyph(t *testing.T) {
	items := createTestItems(0)
	doc := newRecordingDoc()
	doc.AddPage()
	drawInspectionGrid(doc, doc, Cursor{X: margin, Y: margin}, items)

	var safety, plain int
	for _, op := range doc.texts {
		switch {
		case strings.HasPrefix(op.text, "! "):
			assert.True(t, op.style.Bold, "safety row %q must be bold", op.text)
			safety++
		case strings.HasPrefix(op.text, "3. "), strings.HasPrefix(op.text, "5. "):
			plain++
		}
	}
	assert.Equal(t, 2, safety, "items 1 and 2 are flagged as safety items")
	assert.Equal(t, 2, plain)
}

func TestDrawInspectionGrid_CommentAddsOneLine(t *testing.T) {
	base := createTestItems(0)
	withComment := createTestItems(0)
	note := "pressure slightly low, topped up"
	withComment[3].Comment = &note

	docA := newRecordingDoc()
	docA.AddPage()
	endA := drawInspectionGrid(docA, docA, Cursor{X: margin, Y: margin}, base)

	docB := newRecordingDoc()
	docB.AddPage()
	endB := drawInspectionGrid(docB, docB, Cursor{X: margin, Y: margin}, withComment)

	assert.InDelta(t, commentLineHeight, endB.Y-endA.Y, 0.001)
	indented := docB.textsContaining("Comment: pressure")
	require.Len(t, indented, 1)
	assert.Equal(t, margin+commentIndent, indented[0].x)
}

func TestDrawInspectionGrid_BlankCommentIgnored(t *testing.T) {
	items := createTestItems(0)
	blank := "   "
	items[0].Comment = &blank

	doc := newRecordingDoc()
	doc.AddPage()
	end := drawInspectionGrid(doc, doc, Cursor{X: margin, Y: margin}, items)

	ref := newRecordingDoc()
	ref.AddPage()
	refEnd := drawInspectionGrid(ref, ref, Cursor{X: margin, Y: margin}, createTestItems(0))
	assert.Equal(t, refEnd.Y, end.Y)
}

// createTestItems builds the 17-item checklist with every status
// pass, except the item whose 1-based number equals failNumber, which
// fails. Items 1 and 2 are safety items.
func createTestItems(failNumber int) []forms.InspectionItem {
	items := make([]forms.InspectionItem, forms.InspectionItemCount)
	for i := range items {
		status := forms.StatusPass
		if i+1 == failNumber {
			status = forms.StatusFail
		}
		items[i] = forms.InspectionItem{
			Number:       i + 1,
			Description:  "Checklist item",
			Status:       status,
			IsSafetyItem: i < 2,
		}
	}
	return items
}
