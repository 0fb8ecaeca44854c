package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetform/fleetform/internal/forms"
)

// ============================================================================
// DECISION BOX
// ============================================================================

func TestComposeCheckout_AllPass_Released(t *testing.T) {
	rec := createTestInspection(0)
	rec.ReleaseStatus = forms.ReleaseRelease

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	require.Len(t, doc.textsContaining("RELEASED"), 1)
	assert.Empty(t, doc.textsContaining("HOLD FOR REPAIRS"))
	released := doc.textsContaining("RELEASED")[0]
	assert.Equal(t, colorGreen, released.style.Color)
	// No red marks anywhere on the page.
	assert.Empty(t, doc.linesWithColor(colorRed))
}

func TestComposeCheckout_FailedSafetyItem_HoldsDespiteReleaseFlag(t *testing.T) {
	// Regression: the caller's release decision must never override
	// the derived state of the checklist.
	rec := createTestInspection(5)
	rec.Items[4].IsSafetyItem = true
	rec.ReleaseStatus = forms.ReleaseRelease

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	require.Len(t, doc.textsContaining("HOLD FOR REPAIRS"), 1)
	assert.Empty(t, doc.textsContaining("RELEASED"))
	hold := doc.textsContaining("HOLD FOR REPAIRS")[0]
	assert.Equal(t, colorRed, hold.style.Color)
}

func TestComposeCheckout_FailedNonSafetyItem_StillReleased(t *testing.T) {
	rec := createTestInspection(9)
	rec.Items[8].IsSafetyItem = false

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	assert.Len(t, doc.textsContaining("RELEASED"), 1)
	assert.Empty(t, doc.textsContaining("HOLD FOR REPAIRS"))
}

// ============================================================================
// SIGNATURES
// ============================================================================

func TestComposeCheckout_MalformedSignatureFallsBackToPlaceholder(t *testing.T) {
	rec := createTestInspection(0)
	rec.InspectorSignature = &forms.Signature{
		ImageBase64: "!!!not-base64!!!",
		SignerName:  rec.InspectorName,
		SignedAt:    testClock(),
	}

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	assert.Len(t, doc.textsContaining(signaturePlaceholder), 1)
	assert.Empty(t, doc.images)
}

func TestComposeCheckout_ValidSignatureEmbedsImage(t *testing.T) {
	rec := createTestInspection(0)
	rec.InspectorSignature = &forms.Signature{
		ImageBase64: "data:image/png;base64," + testPNGBase64(t),
		SignerName:  rec.InspectorName,
		SignedAt:    testClock(),
	}

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	require.Len(t, doc.images, 1)
	assert.Equal(t, signatureImgWidth, doc.images[0].w)
	assert.Empty(t, doc.textsContaining(signaturePlaceholder))
}

func TestComposeCheckout_AbsentSignatureLeavesSlotBlank(t *testing.T) {
	rec := createTestInspection(0)
	rec.InspectorSignature = nil
	rec.OperatorSignature = nil

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	assert.Empty(t, doc.images)
	assert.Empty(t, doc.textsContaining(signaturePlaceholder))
	// The signature rules and role captions still render.
	assert.Len(t, doc.textsContaining("Inspector Signature"), 1)
	assert.Len(t, doc.textsContaining("Operator Signature"), 1)
}

// ============================================================================
// OVERFLOW AND PLACEHOLDERS
// ============================================================================

func TestComposeCheckout_OverflowWarnsAndKeepsDrawing(t *testing.T) {
	rec := createTestInspection(0)
	note := "long remark recorded during the walkaround inspection"
	for i := range rec.Items {
		rec.Items[i].Comment = &note
	}

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{Logger: logger}, testClock())

	assert.Contains(t, logBuf.String(), "exceeds single-page capacity")
	// Rendering proceeded: the footer is still drawn.
	assert.NotEmpty(t, doc.textsContaining("Page 1 of 1"))
	assert.Equal(t, 1, doc.PageCount())
}

func TestComposeCheckout_NoOverflowNoWarning(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	doc := newRecordingDoc()
	composeCheckout(doc, createTestInspection(0), Options{Logger: logger}, testClock())

	assert.Empty(t, logBuf.String())
}

func TestComposeCheckout_MissingOptionalFieldsRenderNA(t *testing.T) {
	rec := createTestInspection(0)
	rec.VehicleYear = ""
	rec.Odometer = ""
	rec.Comments = ""

	doc := newRecordingDoc()
	composeCheckout(doc, rec, Options{}, testClock())

	assert.GreaterOrEqual(t, len(doc.textsContaining(placeholderNA)), 3)
}

func TestComposeCheckout_WatermarkOnRequest(t *testing.T) {
	doc := newRecordingDoc()
	composeCheckout(doc, createTestInspection(0), Options{Watermark: true}, testClock())

	marks := doc.textsContaining("DRAFT")
	require.Len(t, marks, 1)
	assert.True(t, marks[0].rotated)
}

// ============================================================================
// FULL RENDER
// ============================================================================

func TestCheckoutForm_ProducesPDFResult(t *testing.T) {
	rec := createTestInspection(0)
	res, err := CheckoutForm(rec, Options{Now: testClock})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(res.Buffer, []byte("%PDF")), "buffer must start with the PDF header")
	assert.Equal(t, int64(len(res.Buffer)), res.Size)
	assert.Equal(t, "application/pdf", res.ContentType())
	assert.Equal(t, testClock(), res.GeneratedAt)
	assert.True(t, strings.HasPrefix(res.Filename, "e-4411-checkout-2025-03-01-"), res.Filename)
	assert.True(t, strings.HasSuffix(res.Filename, ".pdf"))
}

func TestCheckoutForm_DeterministicApartFromFilename(t *testing.T) {
	rec := createTestInspection(3)
	rec.InspectorSignature = &forms.Signature{
		ImageBase64: testPNGBase64(t),
		SignerName:  rec.InspectorName,
		SignedAt:    testClock(),
	}

	a, err := CheckoutForm(rec, Options{Now: testClock})
	require.NoError(t, err)
	b, err := CheckoutForm(rec, Options{Now: testClock})
	require.NoError(t, err)

	assert.Equal(t, a.Buffer, b.Buffer, "pinned clock must yield identical bytes")
	assert.NotEqual(t, a.Filename, b.Filename, "random fragment keeps filenames collision-free")
}

// ============================================================================
// HELPERS
// ============================================================================

func testClock() time.Time {
	return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
}

func createTestInspection(failNumber int) forms.Inspection {
	return forms.Inspection{
		IncidentName:   "Cedar Creek Fire",
		IncidentNumber: "OR-WIF-220417",
		VehicleID:      "E-4411",
		VehicleMake:    "Ford",
		VehicleModel:   "F-550",
		VehicleYear:    "2021",
		LicensePlate:   "E441892",
		VIN:            "1FDUF5HT3MDA04417",
		Odometer:       "48,312",
		AgencyOwner:    "Lane County Fire Defense",
		OperatorName:   "M. Alvarez",
		Items:          createTestItems(failNumber),
		Comments:       "Full fuel, all equipment accounted for.",
		ReleaseStatus:  forms.ReleaseRelease,
		InspectorName:  "T. Nakamura",
		InspectedAt:    testClock(),
	}
}

func testPNGBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
