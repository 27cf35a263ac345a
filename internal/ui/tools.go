package ui

import (
	"image/color"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/board"
	"LocalPaint/internal/export"
	"LocalPaint/internal/state"
)

// Toolbar holds the controls above the canvas. Every action goes to the
// board and then resyncs the controls from the board's tool state.
type Toolbar struct {
	board  *board.Board
	view   *BoardWidget
	win    fyne.Window
	status *Status

	sizeLabel    *widget.Label
	slider       *widget.Slider
	brushSwatch  *canvas.Rectangle
	bucketSwatch *canvas.Rectangle

	// FileName is offered when downloading the JPEG.
	FileName string
}

func NewToolbar(b *board.Board, view *BoardWidget, win fyne.Window) *Toolbar {
	t := &Toolbar{
		board:        b,
		view:         view,
		win:          win,
		status:       NewStatus(b.ToolLabel),
		sizeLabel:    widget.NewLabel(b.SizeLabel()),
		slider:       widget.NewSlider(state.MinSize, state.MaxSize),
		brushSwatch:  canvas.NewRectangle(state.Color(b.BrushColor())),
		bucketSwatch: canvas.NewRectangle(state.Color(b.Background())),
		FileName:     export.FileName,
	}
	t.slider.Step = 1
	t.slider.SetValue(float64(b.Tool().Size))
	t.slider.OnChanged = func(v float64) {
		t.board.SetBrushSize(int(v))
		t.sizeLabel.SetText(t.board.SizeLabel())
	}
	t.brushSwatch.SetMinSize(fyne.NewSize(20, 20))
	t.bucketSwatch.SetMinSize(fyne.NewSize(20, 20))
	return t
}

func (t *Toolbar) Status() *Status { return t.status }

// Object lays the controls out in one row.
func (t *Toolbar) Object() fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.UseBrush),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), t.UseEraser),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), t.ClearCanvas),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.Save),
		widget.NewToolbarAction(theme.FolderOpenIcon(), t.Load),
		widget.NewToolbarAction(theme.DeleteIcon(), t.ClearSaved),
		widget.NewToolbarAction(theme.DownloadIcon(), t.Download),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), t.DownloadPDF),
	)
	brushBtn := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		t.pickColor("Brush Color", t.board.BrushColor(), t.SetBrushColor)
	})
	bucketBtn := widget.NewButtonWithIcon("", theme.ColorChromaticIcon(), func() {
		t.pickColor("Background Color", t.board.Background(), t.SetBackground)
	})
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.slider)

	return container.NewHBox(
		t.status.Label,
		widget.NewSeparator(),
		brushBtn, t.brushSwatch,
		widget.NewLabel("Size:"), sliderBox, t.sizeLabel,
		widget.NewSeparator(),
		bucketBtn, t.bucketSwatch,
		layout.NewSpacer(),
		tb,
	)
}

func (t *Toolbar) UseBrush() {
	t.board.UseBrush()
	t.sync()
}

func (t *Toolbar) UseEraser() {
	t.board.UseEraser()
	t.sync()
}

func (t *Toolbar) SetBrushColor(c color.Color) {
	if err := t.board.SetBrushColor(state.Hex(c)); err != nil {
		log.Printf("[UI] Brush color: %v", err)
		return
	}
	t.sync()
}

func (t *Toolbar) SetBackground(c color.Color) {
	if err := t.board.SetBackground(state.Hex(c)); err != nil {
		log.Printf("[UI] Background color: %v", err)
		return
	}
	t.sync()
}

func (t *Toolbar) ClearCanvas() { t.flash(t.board.Clear()) }
func (t *Toolbar) Save() { t.flash(t.board.Save()) }
func (t *Toolbar) Load() { t.flash(t.board.Load()) }
func (t *Toolbar) ClearSaved() { t.flash(t.board.ClearSaved()) }

func (t *Toolbar) Download() {
	t.saveFile(t.FileName, "Download", t.board.Download)
}

func (t *Toolbar) DownloadPDF() {
	t.saveFile(export.PDFFileName, "Download", t.board.DownloadPDF)
}

func (t *Toolbar) saveFile(name, action string, write func(io.Writer) board.Flash) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			t.flash(t.board.Failed(action, err))
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("[UI] Closing %s: %v", w.URI(), err)
			}
		}()
		t.flash(write(w))
		log.Printf("[UI] Wrote %s", w.URI())
	}, t.win)
	d.SetFileName(name)
	d.Show()
}

func (t *Toolbar) pickColor(title, current string, apply func(color.Color)) {
	picker := dialog.NewColorPicker(title, "", apply, t.win)
	picker.Advanced = true
	picker.SetColor(state.Color(current))
	picker.Show()
}

func (t *Toolbar) flash(f board.Flash) {
	t.status.Flash(f)
	t.syncControls()
}

// sync refreshes the controls and the tool label.
func (t *Toolbar) sync() {
	t.status.Idle()
	t.syncControls()
}

func (t *Toolbar) syncControls() {
	size := float64(t.board.Tool().Size)
	if t.slider.Value != size {
		t.slider.SetValue(size)
	}
	t.sizeLabel.SetText(t.board.SizeLabel())
	t.brushSwatch.FillColor = state.Color(t.board.BrushColor())
	t.brushSwatch.Refresh()
	t.bucketSwatch.FillColor = state.Color(t.board.Background())
	t.bucketSwatch.Refresh()
	if t.view != nil {
		t.view.Refresh()
	}
}
