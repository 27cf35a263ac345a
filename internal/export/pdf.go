package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
)

// PDF is a vector surface: one page the size of the canvas, one point per
// pixel, strokes kept as round-capped PDF lines.
type PDF struct {
	doc           *gofpdf.Fpdf
	width, height int
}

var _ render.Surface = (*PDF)(nil)

func NewPDF(width, height int) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")
	return &PDF{doc: doc, width: width, height: height}
}

func (p *PDF) Size() (int, int) { return p.width, p.height }

func (p *PDF) Fill(color string) {
	c := state.Color(color)
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	p.doc.Rect(0, 0, float64(p.width), float64(p.height), "F")
}

func (p *PDF) DrawLine(from, to state.Point, width int, color string) {
	if width <= 0 {
		return
	}
	c := state.Color(color)
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetLineWidth(float64(width))
	p.doc.Line(from.X, from.Y, to.X, to.Y)
}

// Output writes the finished document.
func (p *PDF) Output(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF replays the log onto a fresh PDF page and writes it to w.
func WritePDF(w io.Writer, width, height int, background string, segs []state.Segment) error {
	p := NewPDF(width, height)
	render.Rebuild(p, background, segs)
	return p.Output(w)
}
