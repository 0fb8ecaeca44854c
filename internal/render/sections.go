package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetform/fleetform/internal/pdf"
)

// placeholderNA is rendered for missing optional fields at the
// section level. The vehicle table does not use it; empty cells stay
// empty.
const placeholderNA = "N/A"

// orNA substitutes the section-level placeholder for blank values.
func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return placeholderNA
	}
	return v
}

// fieldPair is one label/value cell of an info section.
type fieldPair struct {
	label string
	value string
}

// drawTitleBlock renders the form title with a subtitle line and a
// separating rule.
func drawTitleBlock(s pdf.DrawSurface, cur Cursor, title, subtitle string) Cursor {
	s.Text(margin, cur.Y+titleSize, title, pdf.TextStyle{Size: titleSize, Bold: true, Color: colorBlack})
	s.Text(margin, cur.Y+titleSize+13, foldLatin(subtitle), pdf.TextStyle{Size: smallSize, Color: colorGray})
	ruleY := cur.Y + titleBlockHeight - 6
	s.Line(margin, ruleY, pageWidth-margin, ruleY, 1.2, colorBlack)
	return cur.Advance(titleBlockHeight)
}

// drawContinuationHeader is the abbreviated header used on pages 2..n
// of the vehicle list: form name and incident name only.
func drawContinuationHeader(s pdf.DrawSurface, cur Cursor, incidentName string) Cursor {
	s.Text(margin, cur.Y+sectionSize, "INCIDENT VEHICLE LIST (continued)", pdf.TextStyle{Size: sectionSize, Bold: true, Color: colorBlack})
	s.Text(margin, cur.Y+sectionSize+12, foldLatin(incidentName), pdf.TextStyle{Size: smallSize, Color: colorGray})
	ruleY := cur.Y + sectionSize + 18
	s.Line(margin, ruleY, pageWidth-margin, ruleY, 0.8, colorBlack)
	return cur.Advance(sectionSize + 18 + continuationGap)
}

// drawSectionHeader renders a bold section caption.
func drawSectionHeader(s pdf.DrawSurface, cur Cursor, caption string) Cursor {
	s.Text(margin, cur.Y+sectionSize, caption, pdf.TextStyle{Size: sectionSize, Bold: true, Color: colorBlack})
	return cur.Advance(sectionSize + 6)
}

// drawFieldRows lays label/value pairs out two per line. Values are
// folded and truncated to their half-width cell.
func drawFieldRows(s pdf.DrawSurface, m pdf.FontMetrics, cur Cursor, pairs []fieldPair) Cursor {
	const halfWidth = contentWidth / 2
	for i := 0; i < len(pairs); i += 2 {
		row := pairs[i : min(i+2, len(pairs))]
		for j, p := range row {
			x := margin + float64(j)*halfWidth
			label := p.label + ":"
			s.Text(x, cur.Y+10, label, pdf.TextStyle{Size: smallSize, Bold: true, Color: colorBlack})
			labelW := m.WidthOf(label, smallSize) + 6
			value := truncateToWidth(m, foldLatin(p.value), bodySize, halfWidth-labelW-10)
			s.Text(x+labelW, cur.Y+10, value, pdf.TextStyle{Size: bodySize, Color: colorBlack})
		}
		cur = cur.Advance(labelLineHeight)
	}
	return cur.Advance(8)
}

// drawCommentsSection renders the free-text comments inside a fixed
// bordered box, word-wrapped to the content width.
func drawCommentsSection(s pdf.DrawSurface, m pdf.FontMetrics, cur Cursor, comments string) Cursor {
	const (
		boxHeight = 42.0
		maxLines  = 2
	)
	cur = drawSectionHeader(s, cur, "COMMENTS")
	s.Rect(margin, cur.Y, contentWidth, boxHeight, 0.8, colorRule)
	lines := wrapToWidth(m, foldLatin(orNA(comments)), bodySize, contentWidth-12, maxLines)
	for i, line := range lines {
		s.Text(margin+6, cur.Y+14+float64(i)*labelLineHeight, line, pdf.TextStyle{Size: bodySize, Color: colorBlack})
	}
	return cur.Advance(boxHeight + sectionGap)
}

// drawDecisionBox renders the color-coded release indicator. The hold
// flag comes from the item list alone, never from the record's
// release field.
func drawDecisionBox(s pdf.DrawSurface, cur Cursor, hold bool) Cursor {
	label, accent, bg := "RELEASED", colorGreen, colorClearBG
	if hold {
		label, accent, bg = "HOLD FOR REPAIRS", colorRed, colorHoldBG
	}
	s.FillRect(margin, cur.Y, contentWidth, decisionBoxHeight, bg)
	s.Rect(margin, cur.Y, contentWidth, decisionBoxHeight, 1.5, accent)
	s.Text(margin+12, cur.Y+22, label, pdf.TextStyle{Size: 14, Bold: true, Color: accent})
	return cur.Advance(decisionBoxHeight + sectionGap)
}

// drawFooter renders the per-page footer: document identity on the
// left, page counter on the right.
func drawFooter(s pdf.DrawSurface, m pdf.FontMetrics, page, total int, generatedAt time.Time, docID string) {
	s.Line(margin, footerBaseline-10, pageWidth-margin, footerBaseline-10, 0.5, colorGray)
	left := fmt.Sprintf("%s - generated %s", docID, generatedAt.Format("2006-01-02 15:04"))
	s.Text(margin, footerBaseline, foldLatin(left), pdf.TextStyle{Size: footerSize, Color: colorGray})
	right := fmt.Sprintf("Page %d of %d", page, total)
	s.Text(pageWidth-margin-m.WidthOf(right, footerSize), footerBaseline, right, pdf.TextStyle{Size: footerSize, Color: colorGray})
}

// drawWatermark stamps an oversized DRAFT diagonally across the page.
// It is drawn before the page content so everything else paints over
// it.
func drawWatermark(s pdf.DrawSurface) {
	s.TextRotated(150, 560, "DRAFT", pdf.TextStyle{Size: watermarkSize, Bold: true, Color: colorWMark}, 45)
}

// wrapToWidth greedily word-wraps s against the metrics, returning at
// most maxLines lines; an overflowing final line is truncated with an
// ellipsis.
func wrapToWidth(m pdf.FontMetrics, s string, size, maxWidth float64, maxLines int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if m.WidthOf(candidate, size) <= maxWidth+widthTolerance {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	lines = append(lines, line)
	if len(lines) > maxLines {
		// Fold the overflow into the last visible line so the
		// ellipsis reflects the hidden text.
		lines[maxLines-1] = strings.Join(lines[maxLines-1:], " ")
		lines = lines[:maxLines]
	}
	last := len(lines) - 1
	lines[last] = truncateToWidth(m, lines[last], size, maxWidth)
	return lines
}
