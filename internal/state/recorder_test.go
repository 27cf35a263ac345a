package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawnLine struct {
	from, to Point
	width    int
	color    string
}

type lineLog struct{ lines []drawnLine }

func (l *lineLog) DrawLine(from, to Point, width int, color string) {
	l.lines = append(l.lines, drawnLine{from, to, width, color})
}

func newTestSession() *Session {
	return NewSession(NewTools(DefaultSettings()))
}

func TestRecorderDragScenario(t *testing.T) {
	s := newTestSession()
	live := &lineLog{}
	r := NewRecorder(s, live)

	r.Begin(Point{0, 0})
	r.Extend(Point{10, 0})
	r.Extend(Point{20, 0})
	r.End()

	want := []Segment{
		{X: 0, Y: 0, Size: 10, Color: "#A51DAB", Start: true},
		{X: 10, Y: 0, Size: 10, Color: "#A51DAB"},
		{X: 20, Y: 0, Size: 10, Color: "#A51DAB"},
	}
	assert.Equal(t, want, s.Segments())
	assert.Equal(t, []drawnLine{
		{Point{0, 0}, Point{10, 0}, 10, "#A51DAB"},
		{Point{10, 0}, Point{20, 0}, 10, "#A51DAB"},
	}, live.lines)
}

func TestRecorderBarePressRecordsNothing(t *testing.T) {
	s := newTestSession()
	r := NewRecorder(s, nil)

	r.Begin(Point{5, 5})
	r.End()

	assert.Zero(t, s.Len())
	assert.False(t, r.Active())
}

// Hover moves without a press record nothing. This differs from logs
// written by the web page, which appended a placeholder segment with no
// position on every hover move; here stroke starts carry Start instead, and
// store.Decode turns old placeholders into start markers.
func TestRecorderIgnoresMovesWithoutPress(t *testing.T) {
	s := newTestSession()
	live := &lineLog{}
	r := NewRecorder(s, live)

	added := r.Extend(Point{3, 4})

	assert.Nil(t, added)
	assert.Zero(t, s.Len())
	assert.Empty(t, live.lines)
}

func TestRecorderEndIsIdempotent(t *testing.T) {
	s := newTestSession()
	r := NewRecorder(s, nil)

	r.End()
	r.Begin(Point{1, 1})
	r.Extend(Point{2, 2})
	r.End()
	r.End()

	assert.Equal(t, 2, s.Len())
	assert.Nil(t, r.Extend(Point{9, 9}))
	assert.Equal(t, 2, s.Len())
}

func TestRecorderMarksEachStrokeStart(t *testing.T) {
	s := newTestSession()
	r := NewRecorder(s, nil)

	r.Begin(Point{0, 0})
	r.Extend(Point{1, 0})
	r.End()
	r.Begin(Point{50, 50})
	added := r.Extend(Point{51, 50})
	r.End()

	require.Len(t, added, 2)
	segs := s.Segments()
	require.Len(t, segs, 4)
	assert.True(t, segs[0].Start)
	assert.False(t, segs[1].Start)
	assert.True(t, segs[2].Start)
	assert.Equal(t, Point{50, 50}, segs[2].Point())
}

func TestRecorderEraserCapturesBackground(t *testing.T) {
	s := newTestSession()
	s.Tools.SetBackground("#112233")
	s.Tools.UseEraser()
	live := &lineLog{}
	r := NewRecorder(s, live)

	r.Begin(Point{0, 0})
	r.Extend(Point{5, 0})

	segs := s.Segments()
	require.Len(t, segs, 2)
	for _, seg := range segs {
		assert.True(t, seg.Eraser)
		assert.Equal(t, 50, seg.Size)
		assert.Equal(t, "#112233", seg.Color)
	}
	assert.Equal(t, "#112233", live.lines[0].color)
}

func TestToolChangesDoNotAlterCapturedSegments(t *testing.T) {
	s := newTestSession()
	r := NewRecorder(s, nil)

	r.Begin(Point{0, 0})
	r.Extend(Point{10, 10})
	before := s.Segments()

	s.Tools.SetBrushColor("#000000")
	s.Tools.SetSize(42)
	s.Tools.UseEraser()
	s.Tools.SetBackground("#00FF00")

	assert.Equal(t, before, s.Segments())
	r.Extend(Point{20, 20})
	after := s.Segments()
	assert.Equal(t, before, after[:2])
	assert.True(t, after[2].Eraser)
	assert.Equal(t, 50, after[2].Size)
}

func TestSessionSegmentsIsACopy(t *testing.T) {
	s := newTestSession()
	s.Append(Segment{X: 1, Y: 1, Size: 3, Color: "#000000"})

	segs := s.Segments()
	segs[0].Color = "#FFFFFF"

	assert.Equal(t, "#000000", s.Segments()[0].Color)
	assert.NotEmpty(t, s.ID)
}

func TestSessionReplaceAndClear(t *testing.T) {
	s := newTestSession()
	in := []Segment{{X: 1}, {X: 2}}
	s.Replace(in)
	in[0].X = 99

	assert.Equal(t, 1.0, s.Segments()[0].X)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.NotNil(t, s.Segments())
}
