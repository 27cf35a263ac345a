package board

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
	"LocalPaint/internal/store"
)

func newTestBoard(t *testing.T) (*Board, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	opts := DefaultOptions()
	opts.Width, opts.Height = 120, 80
	return New(opts, store.NewSnapshots(mem, store.DefaultKey)), mem
}

func drag(b *Board, pts ...state.Point) {
	b.PointerDown(pts[0])
	for _, p := range pts[1:] {
		b.PointerMove(p)
	}
	b.PointerUp()
}

func rgbaAt(b *Board, x, y int) color.RGBA {
	r, g, bl, a := b.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
}

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestBoardStartsWithBackground(t *testing.T) {
	b, _ := newTestBoard(t)

	assert.Equal(t, white, rgbaAt(b, 0, 0))
	assert.Equal(t, "Brush", b.ToolLabel())
	assert.Equal(t, "10", b.SizeLabel())
	assert.NotEmpty(t, b.SessionID())
}

func TestBoardDrawsLiveAndNotifies(t *testing.T) {
	b, _ := newTestBoard(t)
	var got []state.Segment
	changes := 0
	b.OnSegment = func(seg state.Segment) { got = append(got, seg) }
	b.OnChange = func() { changes++ }

	b.PointerMove(state.Point{X: 5, Y: 5})
	drag(b, state.Point{X: 20, Y: 40}, state.Point{X: 60, Y: 40}, state.Point{X: 100, Y: 40})

	assert.Len(t, got, 3)
	assert.Equal(t, 2, changes)
	assert.Equal(t, got, b.Segments())
	assert.Equal(t, color.RGBA{R: 0xA5, G: 0x1D, B: 0xAB, A: 0xFF}, rgbaAt(b, 50, 40))
	assert.False(t, b.Drawing())
}

func TestBoardClear(t *testing.T) {
	b, _ := newTestBoard(t)
	require.NoError(t, b.SetBackground("#00ff00"))
	drag(b, state.Point{X: 20, Y: 40}, state.Point{X: 60, Y: 40})
	b.UseEraser()

	f := b.Clear()

	assert.Equal(t, Flash{Text: "Canvas Cleared", Duration: 1500 * time.Millisecond}, f)
	assert.Empty(t, b.Segments())
	assert.Equal(t, "Brush", b.ToolLabel())
	w, h := b.Size()
	for _, p := range [][2]int{{0, 0}, {40, 40}, {w - 1, h - 1}} {
		assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, rgbaAt(b, p[0], p[1]))
	}
}

func TestBoardSaveLoad(t *testing.T) {
	b, _ := newTestBoard(t)
	drag(b, state.Point{X: 20, Y: 40}, state.Point{X: 60, Y: 40})
	saved := b.Segments()

	assert.Equal(t, "Canvas Saved", b.Save().Text)
	b.Clear()
	f := b.Load()

	assert.Equal(t, "Canvas Loaded", f.Text)
	assert.False(t, f.Restore)
	assert.Equal(t, saved, b.Segments())
	assert.Equal(t, color.RGBA{R: 0xA5, G: 0x1D, B: 0xAB, A: 0xFF}, rgbaAt(b, 40, 40))
}

func TestBoardLoadWithoutSnapshot(t *testing.T) {
	b, mem := newTestBoard(t)
	drag(b, state.Point{X: 20, Y: 40}, state.Point{X: 60, Y: 40})
	b.UseEraser()

	f := b.Load()
	assert.Equal(t, Flash{Text: "No Canvas Found", Duration: time.Second, Restore: true}, f)
	assert.Len(t, b.Segments(), 2)
	assert.Equal(t, "Eraser", b.ToolLabel())

	mem.Set(store.DefaultKey, "garbage")
	assert.Equal(t, "No Canvas Found", b.Load().Text)
	assert.Len(t, b.Segments(), 2)
}

func TestBoardClearSaved(t *testing.T) {
	b, mem := newTestBoard(t)

	assert.Equal(t, "No Canvas to delete", b.ClearSaved().Text)

	b.Save()
	f := b.ClearSaved()
	assert.Equal(t, "Local Storage Cleared", f.Text)
	_, ok := mem.Get(store.DefaultKey)
	assert.False(t, ok)
}

func TestBoardBackgroundRepaintsEraser(t *testing.T) {
	b, _ := newTestBoard(t)
	var resets int
	b.OnReset = func(bg string, segs []state.Segment) { resets++ }
	drag(b, state.Point{X: 20, Y: 40}, state.Point{X: 100, Y: 40})
	b.UseEraser()
	drag(b, state.Point{X: 60, Y: 20}, state.Point{X: 60, Y: 60})

	require.NoError(t, b.SetBackground("#0000FF"))

	assert.Equal(t, 1, resets)
	assert.Equal(t, color.RGBA{B: 0xFF, A: 0xFF}, rgbaAt(b, 60, 40))
	assert.Equal(t, color.RGBA{R: 0xA5, G: 0x1D, B: 0xAB, A: 0xFF}, rgbaAt(b, 25, 40))
	assert.Equal(t, "#FFFFFF", b.Segments()[2].Color)

	assert.Equal(t, "Brush", b.ToolLabel())
	assert.Equal(t, state.ToolState{Color: "#A51DAB", Size: 10, Mode: state.ModeBrush}, b.Tool())
}

func TestBoardRejectsBadColors(t *testing.T) {
	b, _ := newTestBoard(t)

	assert.ErrorIs(t, b.SetBrushColor("purple"), state.ErrBadColor)
	assert.ErrorIs(t, b.SetBackground("#12"), state.ErrBadColor)
	assert.Equal(t, "#A51DAB", b.BrushColor())
}

func TestBoardToolTransitions(t *testing.T) {
	b, _ := newTestBoard(t)
	require.NoError(t, b.SetBrushColor("#123456"))
	b.SetBrushSize(5)
	assert.Equal(t, "05", b.SizeLabel())

	b.UseEraser()
	assert.Equal(t, state.ToolState{Color: "#FFFFFF", Size: 50, Mode: state.ModeEraser}, b.Tool())

	b.UseBrush()
	assert.Equal(t, state.ToolState{Color: "#123456", Size: 10, Mode: state.ModeBrush}, b.Tool())
}

func TestBoardDownload(t *testing.T) {
	b, _ := newTestBoard(t)
	b.UseEraser()
	var buf bytes.Buffer

	f := b.Download(&buf)

	assert.Equal(t, "Image File Saved", f.Text)
	assert.Equal(t, "Brush", b.ToolLabel())
	img, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestBoardDownloadPDF(t *testing.T) {
	b, _ := newTestBoard(t)
	drag(b, state.Point{X: 20, Y: 40}, state.Point{X: 60, Y: 40})
	var buf bytes.Buffer

	f := b.DownloadPDF(&buf)

	assert.Equal(t, "PDF File Saved", f.Text)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestBoardFailed(t *testing.T) {
	b, _ := newTestBoard(t)
	f := b.Failed("Download", assert.AnError)
	assert.Equal(t, Flash{Text: "Download Failed", Duration: time.Second, Restore: true}, f)
}
