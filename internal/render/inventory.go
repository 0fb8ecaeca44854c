package render

import (
	"fmt"
	"time"

	"github.com/fleetform/fleetform/internal/forms"
	"github.com/fleetform/fleetform/internal/pdf"
)

// VehicleListForm renders the multi-page incident vehicle inventory:
// twelve table rows per page, the full header on page one and an
// abbreviated header on continuation pages, the preparer signature on
// the final page only, and a page counter footer on every page. An
// empty vehicle list still yields one page with the header row.
func VehicleListForm(rec forms.Inventory, opts Options) (*Result, error) {
	generatedAt := opts.now()
	doc, err := pdf.NewDocument(generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	composeVehicleList(doc, rec, opts, generatedAt)
	data, err := doc.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	return &Result{
		Buffer:      data,
		Filename:    buildFilename(rec.IncidentName, "vehicle-list", generatedAt),
		Size:        int64(len(data)),
		GeneratedAt: generatedAt,
	}, nil
}

// composeVehicleList drives pagination: one table slice per page,
// header variant by page index.
func composeVehicleList(doc pdf.Document, rec forms.Inventory, opts Options, generatedAt time.Time) {
	totalPages := (len(rec.Vehicles) + rowsPerPage - 1) / rowsPerPage
	if totalPages == 0 {
		totalPages = 1
	}
	s, m := doc.Surface(), doc.Metrics()
	docID := fmt.Sprintf("Vehicle List %s", rec.IncidentNumber)

	for page := 0; page < totalPages; page++ {
		doc.AddPage()
		// The watermark intentionally applies to the first page only.
		if page == 0 && opts.Watermark {
			drawWatermark(s)
		}

		cur := Cursor{X: margin, Y: margin, Page: page}
		if page == 0 {
			cur = drawTitleBlock(s, cur, "INCIDENT VEHICLE LIST", rec.IncidentName)
			cur = drawSectionHeader(s, cur, "INCIDENT")
			cur = drawFieldRows(s, m, cur, []fieldPair{
				{"Incident Name", orNA(rec.IncidentName)},
				{"Incident Number", orNA(rec.IncidentNumber)},
				{"Prepared By", orNA(rec.PreparedBy)},
				{"Prepared", formatDateOrNA(rec.PreparedAt)},
			})
		} else {
			cur = drawContinuationHeader(s, cur, rec.IncidentName)
		}

		start := page * rowsPerPage
		end := min(start+rowsPerPage, len(rec.Vehicles))
		cur = drawVehicleTable(s, m, cur, rec.Vehicles[start:end], start)

		if page == totalPages-1 {
			cur = cur.Advance(sectionGap)
			cur = drawSignatureRow(doc, s, m, cur, []signer{
				{role: "Preparer", name: rec.PreparedBy, at: signedAtOr(rec.PreparerSignature, rec.PreparedAt), sig: rec.PreparerSignature},
			})
		}

		drawFooter(s, m, page+1, totalPages, generatedAt, docID)
	}
}

func formatDateOrNA(t time.Time) string {
	if t.IsZero() {
		return placeholderNA
	}
	return t.Format("2006-01-02")
}
