package render

import (
	"bytes"
	"image/png"
	"strings"

	"github.com/fleetform/fleetform/internal/pdf"
)

// The recording document captures draw operations so layout behavior
// can be asserted without parsing PDF bytes. Widths are measured with
// a fixed-per-rune fake metric, keeping truncation assertions exact.

type textOp struct {
	page    int
	x, y    float64
	text    string
	style   pdf.TextStyle
	rotated bool
}

type lineOp struct {
	page           int
	x1, y1, x2, y2 float64
	color          pdf.Color
}

type rectOp struct {
	page       int
	x, y, w, h float64
	color      pdf.Color
	filled     bool
}

type imageOp struct {
	page       int
	name       string
	x, y, w, h float64
}

type recordingDoc struct {
	pages    int
	texts    []textOp
	lines    []lineOp
	rects    []rectOp
	images   []imageOp
	embedded map[string][]byte
}

func newRecordingDoc() *recordingDoc {
	return &recordingDoc{embedded: map[string][]byte{}}
}

func (d *recordingDoc) AddPage()       { d.pages++ }
func (d *recordingDoc) PageCount() int { return d.pages }

func (d *recordingDoc) EmbedPNG(name string, data []byte) error {
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return err
	}
	d.embedded[name] = data
	return nil
}

func (d *recordingDoc) Surface() pdf.DrawSurface { return d }
func (d *recordingDoc) Metrics() pdf.FontMetrics { return d }

func (d *recordingDoc) Serialize() ([]byte, error) { return []byte("%PDF-fake"), nil }

// WidthOf charges half the font size per rune.
func (d *recordingDoc) WidthOf(text string, size float64) float64 {
	return 0.5 * size * float64(len([]rune(text)))
}

func (d *recordingDoc) page() int { return d.pages - 1 }

func (d *recordingDoc) Text(x, y float64, text string, style pdf.TextStyle) {
	d.texts = append(d.texts, textOp{page: d.page(), x: x, y: y, text: text, style: style})
}

func (d *recordingDoc) TextRotated(x, y float64, text string, style pdf.TextStyle, angle float64) {
	d.texts = append(d.texts, textOp{page: d.page(), x: x, y: y, text: text, style: style, rotated: true})
}

func (d *recordingDoc) Line(x1, y1, x2, y2, width float64, color pdf.Color) {
	d.lines = append(d.lines, lineOp{page: d.page(), x1: x1, y1: y1, x2: x2, y2: y2, color: color})
}

func (d *recordingDoc) Rect(x, y, w, h, lineWidth float64, color pdf.Color) {
	d.rects = append(d.rects, rectOp{page: d.page(), x: x, y: y, w: w, h: h, color: color})
}

func (d *recordingDoc) FillRect(x, y, w, h float64, fill pdf.Color) {
	d.rects = append(d.rects, rectOp{page: d.page(), x: x, y: y, w: w, h: h, color: fill, filled: true})
}

func (d *recordingDoc) Image(name string, x, y, w, h float64) {
	d.images = append(d.images, imageOp{page: d.page(), name: name, x: x, y: y, w: w, h: h})
}

func (d *recordingDoc) textsContaining(substr string) []textOp {
	var out []textOp
	for _, op := range d.texts {
		if strings.Contains(op.text, substr) {
			out = append(out, op)
		}
	}
	return out
}

func (d *recordingDoc) linesWithColor(c pdf.Color) []lineOp {
	var out []lineOp
	for _, op := range d.lines {
		if op.color == c {
			out = append(out, op)
		}
	}
	return out
}

func (d *recordingDoc) rectsOnPage(page int, height float64, filled bool) []rectOp {
	var out []rectOp
	for _, op := range d.rects {
		if op.page == page && op.h == height && op.filled == filled {
			out = append(out, op)
		}
	}
	return out
}
