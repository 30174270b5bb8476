package ink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF renders the whole drawing (not just the visible view) as a
// single-page vector PDF, tessellated with the same geometry as the
// screen. Returns the PDF bytes.
func ExportPDF(d *Document) ([]byte, error) {
	bounds, ok := documentBounds(d)
	if !ok {
		// An empty drawing still exports: one blank A4-ish page.
		bounds = Rect{Max: Vec{X: 595, Y: 842}}
	}
	bounds = bounds.Inflate(20)

	w := math.Max(1, bounds.Width())
	h := math.Max(1, bounds.Height())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()

	paper := Paper
	pdf.SetFillColor(int(paper.R*255), int(paper.G*255), int(paper.B*255))
	pdf.Rect(0, 0, w, h, "F")

	for _, s := range d.Strokes {
		drawStrokePDF(pdf, s, bounds.Min)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("ink: pdf export: %w", err)
	}
	return buf.Bytes(), nil
}

// drawStrokePDF emits one stroke as width-varying line segments with
// round caps.
func drawStrokePDF(pdf *gofpdf.Fpdf, s *Stroke, origin Vec) {
	c := s.Config.rgba()
	pdf.SetDrawColor(int(c.R*255), int(c.G*255), int(c.B*255))
	pdf.SetFillColor(int(c.R*255), int(c.G*255), int(c.B*255))
	pdf.SetAlpha(c.A, "Normal")
	pdf.SetLineCapStyle("round")

	if len(s.Points) == 1 {
		p := s.Points[0].Pos().Sub(origin)
		r := dotWidth(s.Config, s.Points[0]) / 2
		pdf.Circle(p.X, p.Y, r, "F")
		pdf.SetAlpha(1, "Normal")
		return
	}

	for _, seg := range Tessellate(s.Points, s.Config) {
		a := seg.A.Sub(origin)
		b := seg.B.Sub(origin)
		pdf.SetLineWidth(seg.Width)
		pdf.Line(a.X, a.Y, b.X, b.Y)
	}
	pdf.SetAlpha(1, "Normal")
}

// documentBounds returns the union of all stroke bounds.
func documentBounds(d *Document) (Rect, bool) {
	if len(d.Strokes) == 0 {
		return Rect{}, false
	}
	r := d.Strokes[0].Bounds()
	for _, s := range d.Strokes[1:] {
		r = r.Union(s.Bounds())
	}
	return r, true
}
