package render

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"LocalPaint/internal/state"
)

// Raster is an in-memory RGBA surface stroked with rasterx.
type Raster struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

var _ Surface = (*Raster)(nil)

func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Raster{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// Render replays segs on a fresh raster of the given size.
func Render(width, height int, background string, segs []state.Segment) *Raster {
	r := NewRaster(width, height)
	Rebuild(r, background, segs)
	return r
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Fill(color string) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(state.Color(color)), image.Point{}, draw.Src)
}

// DrawLine strokes from-to with round caps. A zero-length line still
// leaves a round dot, as a canvas stroke would.
func (r *Raster) DrawLine(from, to state.Point, width int, color string) {
	if width <= 0 {
		return
	}
	c := state.Color(color)
	if from == to {
		r.filler.Clear()
		r.filler.SetColor(c)
		rasterx.AddCircle(from.X, from.Y, float64(width)/2, r.filler)
		r.filler.Draw()
		r.filler.Clear()
		return
	}

	d := r.dasher
	d.Clear()
	d.SetColor(c)
	d.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	d.Start(rasterx.ToFixedP(from.X, from.Y))
	d.Line(rasterx.ToFixedP(to.X, to.Y))
	d.Stop(false)
	d.Draw()
	d.Clear()
}
