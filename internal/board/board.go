// Package board is the single actor that handles pointer and toolbar
// events: it owns the session, the recorder, the visible raster and the
// snapshot store.
package board

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"LocalPaint/internal/export"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
	"LocalPaint/internal/store"
)

// Flash is a transient status message. When Restore is set the label goes
// back to whatever it showed before; otherwise it goes back to the active
// tool name.
type Flash struct {
	Text     string
	Duration time.Duration
	Restore  bool
}

// Options size the canvas and set tool defaults and status timings.
type Options struct {
	Width, Height  int
	Defaults       state.Defaults
	StatusDuration time.Duration
	RevertDuration time.Duration
	JPEGQuality    int
}

func DefaultOptions() Options {
	return Options{
		Width:          1024,
		Height:         718,
		Defaults:       state.DefaultSettings(),
		StatusDuration: 1500 * time.Millisecond,
		RevertDuration: 1000 * time.Millisecond,
		JPEGQuality:    export.DefaultQuality,
	}
}

// Board is not safe for concurrent use; every call must come from the
// event loop.
type Board struct {
	opts     Options
	session  *state.Session
	recorder *state.Recorder
	surface  *render.Raster
	snaps    *store.Snapshots

	// OnSegment is called for every appended segment.
	OnSegment func(seg state.Segment)
	// OnReset is called whenever the canvas is repainted from scratch.
	OnReset func(background string, segs []state.Segment)
	// OnChange is called after the bitmap changed.
	OnChange func()
}

func New(opts Options, snaps *store.Snapshots) *Board {
	session := state.NewSession(state.NewTools(opts.Defaults))
	surface := render.NewRaster(opts.Width, opts.Height)
	b := &Board{
		opts:     opts,
		session:  session,
		recorder: state.NewRecorder(session, surface),
		surface:  surface,
		snaps:    snaps,
	}
	surface.Fill(session.Background())
	log.Printf("[BOARD] Session %s started, %dx%d canvas", session.ID, opts.Width, opts.Height)
	return b
}

func (b *Board) SessionID() string { return b.session.ID }
func (b *Board) Image() image.Image { return b.surface.Image() }
func (b *Board) Segments() []state.Segment { return b.session.Segments() }
func (b *Board) Background() string { return b.session.Background() }
func (b *Board) Tool() state.ToolState { return b.session.Tools.State() }
func (b *Board) ToolLabel() string { return b.session.Tools.Mode().String() }
func (b *Board) SizeLabel() string { return b.session.Tools.SizeLabel() }
func (b *Board) BrushColor() string { return b.session.Tools.BrushColor() }
func (b *Board) Size() (width, height int) { return b.surface.Size() }
func (b *Board) Drawing() bool { return b.recorder.Active() }

// PointerDown starts a stroke.
func (b *Board) PointerDown(p state.Point) {
	b.recorder.Begin(p)
}

// PointerMove extends the active stroke; moves without a press are
// ignored.
func (b *Board) PointerMove(p state.Point) {
	added := b.recorder.Extend(p)
	if len(added) == 0 {
		return
	}
	if b.OnSegment != nil {
		for _, seg := range added {
			b.OnSegment(seg)
		}
	}
	b.changed()
}

func (b *Board) PointerUp() {
	b.recorder.End()
}

// SetBrushColor picks a brush color and leaves eraser mode.
func (b *Board) SetBrushColor(hex string) error {
	c, err := state.NormalizeHex(hex)
	if err != nil {
		return err
	}
	b.session.Tools.SetBrushColor(c)
	return nil
}

func (b *Board) SetBrushSize(n int) {
	b.session.Tools.SetSize(n)
}

// SetBackground changes the bucket color, repaints everything and
// switches back to the brush.
func (b *Board) SetBackground(hex string) error {
	c, err := state.NormalizeHex(hex)
	if err != nil {
		return err
	}
	b.session.Tools.SetBackground(c)
	b.repaint()
	b.session.Tools.UseBrush()
	return nil
}

func (b *Board) UseEraser() { b.session.Tools.UseEraser() }
func (b *Board) UseBrush() { b.session.Tools.UseBrush() }

// Clear empties the log and repaints the background.
func (b *Board) Clear() Flash {
	b.session.Clear()
	b.repaint()
	return b.done("Canvas Cleared")
}

func (b *Board) Save() Flash {
	if err := b.snaps.Save(b.session.Segments()); err != nil {
		log.Printf("[BOARD] Save failed: %v", err)
		return b.restore("Save Failed")
	}
	return b.done("Canvas Saved")
}

// Load replaces the log with the saved snapshot and repaints.
func (b *Board) Load() Flash {
	segs, err := b.snaps.Load()
	if err != nil {
		return b.restore("No Canvas Found")
	}
	b.session.Replace(segs)
	b.repaint()
	return b.done("Canvas Loaded")
}

func (b *Board) ClearSaved() Flash {
	if err := b.snaps.Clear(); err != nil {
		if !errors.Is(err, store.ErrNoCanvas) {
			log.Printf("[BOARD] Clearing storage failed: %v", err)
		}
		return b.restore("No Canvas to delete")
	}
	return b.done("Local Storage Cleared")
}

// Download writes the current bitmap to w as a JPEG.
func (b *Board) Download(w io.Writer) Flash {
	if err := export.WriteJPEG(w, b.surface.Image(), b.opts.JPEGQuality); err != nil {
		log.Printf("[BOARD] Download failed: %v", err)
		return b.restore("Download Failed")
	}
	return b.done("Image File Saved")
}

// DownloadPDF replays the log onto a vector page and writes it to w.
func (b *Board) DownloadPDF(w io.Writer) Flash {
	width, height := b.surface.Size()
	if err := export.WritePDF(w, width, height, b.session.Background(), b.session.Segments()); err != nil {
		log.Printf("[BOARD] PDF export failed: %v", err)
		return b.restore("Download Failed")
	}
	return b.done("PDF File Saved")
}

// Failed reports an error from outside the board, such as a file dialog.
func (b *Board) Failed(action string, err error) Flash {
	log.Printf("[BOARD] %s failed: %v", action, err)
	return b.restore(fmt.Sprintf("%s Failed", action))
}

func (b *Board) repaint() {
	bg := b.session.Background()
	segs := b.session.Segments()
	render.Rebuild(b.surface, bg, segs)
	if b.OnReset != nil {
		b.OnReset(bg, segs)
	}
	b.changed()
}

// done switches back to the brush, as every completed action does.
func (b *Board) done(text string) Flash {
	b.session.Tools.UseBrush()
	return Flash{Text: text, Duration: b.opts.StatusDuration}
}

func (b *Board) restore(text string) Flash {
	return Flash{Text: text, Duration: b.opts.RevertDuration, Restore: true}
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
