package state

import "fmt"

const (
	MinSize = 1
	MaxSize = 99
)

// Defaults are the tool settings a fresh board starts with.
type Defaults struct {
	BrushColor string
	BrushSize  int
	EraserSize int
	Background string
}

func DefaultSettings() Defaults {
	return Defaults{
		BrushColor: "#A51DAB",
		BrushSize:  10,
		EraserSize: 50,
		Background: "#FFFFFF",
	}
}

// Tools holds the current ToolState and background color. Only UI events
// mutate it; the Recorder and Replayer read copies.
type Tools struct {
	defaults   Defaults
	brushColor string
	size       int
	mode       Mode
	background string
}

func NewTools(d Defaults) *Tools {
	return &Tools{
		defaults:   d,
		brushColor: d.BrushColor,
		size:       clampSize(d.BrushSize),
		mode:       ModeBrush,
		background: d.Background,
	}
}

// State returns the tool settings a segment captured now would carry.
// In eraser mode the color is the current background.
func (t *Tools) State() ToolState {
	ts := ToolState{Color: t.brushColor, Size: t.size, Mode: t.mode}
	if t.mode == ModeEraser {
		ts.Color = t.background
	}
	return ts
}

func (t *Tools) Mode() Mode { return t.mode }
func (t *Tools) Size() int { return t.size }
func (t *Tools) BrushColor() string { return t.brushColor }
func (t *Tools) Background() string { return t.background }
func (t *Tools) Defaults() Defaults { return t.defaults }
func (t *Tools) SizeLabel() string { return FormatSize(t.size) }
func (t *Tools) SetBackground(hex string) { t.background = hex }

// SetBrushColor picks a brush color and leaves eraser mode. The size is
// left as it is, so picking a color straight after the eraser keeps the
// eraser width.
func (t *Tools) SetBrushColor(hex string) {
	t.brushColor = hex
	t.mode = ModeBrush
}

// SetSize changes the stroke width in either mode, clamped to 1..99.
func (t *Tools) SetSize(n int) {
	t.size = clampSize(n)
}

// UseEraser switches to eraser mode with the fixed eraser width.
func (t *Tools) UseEraser() {
	t.mode = ModeEraser
	t.size = clampSize(t.defaults.EraserSize)
}

// UseBrush switches back to the brush with the default width and the last
// picked brush color.
func (t *Tools) UseBrush() {
	t.mode = ModeBrush
	t.size = clampSize(t.defaults.BrushSize)
}

// FormatSize renders a brush size with two digits.
func FormatSize(n int) string {
	return fmt.Sprintf("%02d", n)
}

func clampSize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}
