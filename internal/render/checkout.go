package render

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetform/fleetform/internal/forms"
	"github.com/fleetform/fleetform/internal/pdf"
)

// CheckoutForm renders the single-page vehicle checkout inspection
// and returns the finished document. The record must arrive
// validated; the renderer applies no business rules beyond the
// placeholder policy for blank optional fields.
//
// The form never paginates. When the checklist comments push content
// past the page capacity, a warning is logged and drawing continues
// past the boundary.
func CheckoutForm(rec forms.Inspection, opts Options) (*Result, error) {
	generatedAt := opts.now()
	doc, err := pdf.NewDocument(generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	composeCheckout(doc, rec, opts, generatedAt)
	data, err := doc.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	return &Result{
		Buffer:      data,
		Filename:    buildFilename(rec.VehicleID, "checkout", generatedAt),
		Size:        int64(len(data)),
		GeneratedAt: generatedAt,
	}, nil
}

// composeCheckout draws every section in its fixed order, threading
// the cursor downward.
func composeCheckout(doc pdf.Document, rec forms.Inspection, opts Options, generatedAt time.Time) {
	doc.AddPage()
	s, m := doc.Surface(), doc.Metrics()
	if opts.Watermark {
		drawWatermark(s)
	}

	cur := Cursor{X: margin, Y: margin}
	cur = drawTitleBlock(s, cur, "VEHICLE / EQUIPMENT CHECKOUT FORM", rec.IncidentName)

	cur = drawSectionHeader(s, cur, "INCIDENT")
	cur = drawFieldRows(s, m, cur, []fieldPair{
		{"Incident Name", orNA(rec.IncidentName)},
		{"Incident Number", orNA(rec.IncidentNumber)},
	})

	cur = drawSectionHeader(s, cur, "VEHICLE")
	cur = drawFieldRows(s, m, cur, []fieldPair{
		{"Vehicle ID", orNA(rec.VehicleID)},
		{"Make / Model", orNA(joinNonEmpty(rec.VehicleMake, rec.VehicleModel))},
		{"Year", orNA(rec.VehicleYear)},
		{"License Plate", orNA(rec.LicensePlate)},
		{"VIN", orNA(rec.VIN)},
		{"Odometer", orNA(rec.Odometer)},
		{"Agency / Owner", orNA(rec.AgencyOwner)},
		{"Operator", orNA(rec.OperatorName)},
	})

	cur = drawInspectionGrid(s, m, cur, rec.Items)
	cur = drawCommentsSection(s, m, cur, rec.Comments)
	cur = drawDecisionBox(s, cur, rec.HasFailedSafetyItem())
	cur = drawSignatureRow(doc, s, m, cur, []signer{
		{role: "Inspector", name: rec.InspectorName, at: rec.InspectedAt, sig: rec.InspectorSignature},
		{role: "Operator", name: rec.OperatorName, at: signedAtOr(rec.OperatorSignature, rec.InspectedAt), sig: rec.OperatorSignature},
	})

	if cur.Y > contentBottom {
		opts.logger().Warn("checkout form content exceeds single-page capacity",
			slog.String("vehicle_id", rec.VehicleID),
			slog.Float64("content_y", cur.Y),
			slog.Float64("limit", contentBottom))
	}

	docID := fmt.Sprintf("Checkout %s / %s", rec.VehicleID, rec.IncidentNumber)
	drawFooter(s, m, 1, 1, generatedAt, docID)
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}

func signedAtOr(sig *forms.Signature, fallback time.Time) time.Time {
	if sig != nil && !sig.SignedAt.IsZero() {
		return sig.SignedAt
	}
	return fallback
}
