package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/board"
	"LocalPaint/internal/state"
)

// BoardWidget shows the board's bitmap and feeds it pointer events.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board
	image *canvas.Image
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{board: b}
	w.image = canvas.NewImageFromImage(b.Image())
	w.image.FillMode = canvas.ImageFillOriginal
	w.image.ScaleMode = canvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.image)
}

// Refresh redraws the bitmap after the board changed it in place.
func (w *BoardWidget) Refresh() {
	w.image.Image = w.board.Image()
	w.image.Refresh()
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.board.PointerDown(w.toCanvas(e.Position))
}

func (w *BoardWidget) MouseUp(*desktop.MouseEvent) {
	w.board.PointerUp()
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.board.PointerMove(w.toCanvas(e.Position))
}

func (w *BoardWidget) DragEnd() {
	w.board.PointerUp()
}

// toCanvas maps a widget position to bitmap pixels, which differ from
// fyne units on scaled displays.
func (w *BoardWidget) toCanvas(pos fyne.Position) state.Point {
	size := w.Size()
	pw, ph := w.board.Size()
	sx, sy := 1.0, 1.0
	if size.Width > 0 && size.Height > 0 {
		sx = float64(pw) / float64(size.Width)
		sy = float64(ph) / float64(size.Height)
	}
	return state.Point{X: float64(pos.X) * sx, Y: float64(pos.Y) * sy}
}
