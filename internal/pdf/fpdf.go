package pdf

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"
)

// fontFamily is the standard-14 family carried in both weights. Its
// Latin metrics ship with the format, so no font program is read from
// disk.
const fontFamily = "Helvetica"

// Doc is the fpdf-backed Document. It also implements DrawSurface and
// FontMetrics; draw calls apply to the page most recently added.
type Doc struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

// NewDocument creates an empty US-Letter portrait document measured in
// points. The creation timestamp is fixed up front so identical input
// yields identical bytes.
func NewDocument(created time.Time) (*Doc, error) {
	p := fpdf.New("P", "pt", "Letter", "")
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.SetCreationDate(created)
	p.SetModificationDate(created)
	p.SetCreator("fleetform", false)
	p.SetFont(fontFamily, "", 9)
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("init document: %w", err)
	}
	return &Doc{
		pdf:       p,
		translate: p.UnicodeTranslatorFromDescriptor(""),
	}, nil
}

// AddPage appends a blank page and makes it current.
func (d *Doc) AddPage() {
	d.pdf.AddPage()
}

// PageCount returns the number of pages added so far.
func (d *Doc) PageCount() int {
	return d.pdf.PageCount()
}

// EmbedPNG validates the payload as PNG and registers it with the
// backend. Validation runs first because the backend records a sticky
// error on bad image data, which would poison the whole document.
func (d *Doc) EmbedPNG(name string, data []byte) error {
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("decode png %q: %w", name, err)
	}
	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("register png %q: %w", name, err)
	}
	return nil
}

// Surface returns the draw surface for the current page.
func (d *Doc) Surface() DrawSurface { return d }

// Metrics returns the measurement view of the embedded fonts.
func (d *Doc) Metrics() FontMetrics { return d }

// Serialize closes the document and returns its bytes.
func (d *Doc) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

// WidthOf measures text at the given size in the regular weight.
func (d *Doc) WidthOf(text string, size float64) float64 {
	d.pdf.SetFont(fontFamily, "", size)
	return d.pdf.GetStringWidth(d.translate(text))
}

func (d *Doc) Text(x, y float64, text string, style TextStyle) {
	d.applyText(style)
	d.pdf.Text(x, y, d.translate(text))
}

func (d *Doc) TextRotated(x, y float64, text string, style TextStyle, angle float64) {
	d.applyText(style)
	d.pdf.TransformBegin()
	d.pdf.TransformRotate(angle, x, y)
	d.pdf.Text(x, y, d.translate(text))
	d.pdf.TransformEnd()
}

func (d *Doc) Line(x1, y1, x2, y2, width float64, color Color) {
	d.pdf.SetLineWidth(width)
	d.pdf.SetDrawColor(color.R, color.G, color.B)
	d.pdf.Line(x1, y1, x2, y2)
}

func (d *Doc) Rect(x, y, w, h, lineWidth float64, color Color) {
	d.pdf.SetLineWidth(lineWidth)
	d.pdf.SetDrawColor(color.R, color.G, color.B)
	d.pdf.Rect(x, y, w, h, "D")
}

func (d *Doc) FillRect(x, y, w, h float64, fill Color) {
	d.pdf.SetFillColor(fill.R, fill.G, fill.B)
	d.pdf.Rect(x, y, w, h, "F")
}

func (d *Doc) Image(name string, x, y, w, h float64) {
	d.pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (d *Doc) applyText(style TextStyle) {
	weight := ""
	if style.Bold {
		weight = "B"
	}
	d.pdf.SetFont(fontFamily, weight, style.Size)
	d.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
}
