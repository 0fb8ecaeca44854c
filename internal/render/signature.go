package render

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/fleetform/fleetform/internal/forms"
	"github.com/fleetform/fleetform/internal/pdf"
)

// signaturePlaceholder is drawn verbatim when a captured signature
// cannot be decoded. Decode failures never abort a render.
const signaturePlaceholder = "[Digital Signature Present]"

// signer pairs a signature slot on the form with its metadata.
type signer struct {
	role string
	name string
	at   time.Time
	sig  *forms.Signature
}

// drawSignatureRow renders the signature slots side by side: image or
// placeholder, signature rule, signer role, name and timestamp.
// Absent signatures leave the slot blank for a wet signature.
func drawSignatureRow(doc pdf.Document, s pdf.DrawSurface, m pdf.FontMetrics, cur Cursor, signers []signer) Cursor {
	slotWidth := contentWidth / float64(len(signers))
	for i, sg := range signers {
		x := margin + float64(i)*slotWidth
		if sg.sig != nil {
			drawSignatureImage(doc, s, sg.sig, signatureImageName(sg.role, cur.Page), x, cur.Y)
		}
		ruleY := cur.Y + signatureImgHeight + 4
		s.Line(x, ruleY, x+slotWidth-24, ruleY, 0.8, colorBlack)
		s.Text(x, ruleY+11, sg.role+" Signature", pdf.TextStyle{Size: smallSize, Bold: true, Color: colorBlack})
		detail := orNA(sg.name)
		if !sg.at.IsZero() {
			detail += " - " + sg.at.Format("2006-01-02 15:04")
		}
		detail = truncateToWidth(m, foldLatin(detail), smallSize, slotWidth-24)
		s.Text(x, ruleY+23, detail, pdf.TextStyle{Size: smallSize, Color: colorGray})
	}
	// Last section on the page; no trailing gap.
	return cur.Advance(signatureRowHeight)
}

// drawSignatureImage places the raster at its fixed box. Any decode
// or embedding failure degrades to the literal placeholder string;
// this path never reports an error.
func drawSignatureImage(doc pdf.Document, s pdf.DrawSurface, sig *forms.Signature, name string, x, y float64) {
	data, err := decodeSignaturePNG(sig.ImageBase64)
	if err == nil {
		if err = doc.EmbedPNG(name, data); err == nil {
			s.Image(name, x, y, signatureImgWidth, signatureImgHeight)
			return
		}
	}
	s.Text(x, y+signatureImgHeight-8, signaturePlaceholder, pdf.TextStyle{Size: bodySize, Color: colorGray})
}

// decodeSignaturePNG accepts a bare base64 payload or a full data URL
// and returns the decoded image bytes.
func decodeSignaturePNG(payload string) ([]byte, error) {
	if i := strings.Index(payload, "base64,"); i >= 0 {
		payload = payload[i+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
}

// signatureImageName keys the embedded resource per slot and page so
// repeated slots never collide inside one document.
func signatureImageName(role string, page int) string {
	return "sig-" + strings.ToLower(strings.ReplaceAll(role, " ", "-")) + "-" + strconv.Itoa(page)
}
