package state

// LineDrawer paints the live feedback for a segment while it is captured.
type LineDrawer interface {
	DrawLine(from, to Point, width int, color string)
}

// Recorder turns a pointer drag into segments appended to a Session.
//
// A press only positions the pen. The first move of a stroke appends a
// start marker at the press position followed by the moved-to segment, so
// a press without movement records nothing and replay never joins two
// strokes together. Moves while no drag is active are ignored.
type Recorder struct {
	session *Session
	live    LineDrawer
	active  bool
	started bool
	pen     Point
}

// NewRecorder creates a recorder; live may be nil when no immediate
// feedback is wanted.
func NewRecorder(s *Session, live LineDrawer) *Recorder {
	return &Recorder{session: s, live: live}
}

func (r *Recorder) Active() bool { return r.active }

// Begin starts a stroke at p without recording anything.
func (r *Recorder) Begin(p Point) {
	r.active = true
	r.started = false
	r.pen = p
}

// Extend draws from the pen to p with the current tool state and appends
// the captured segments. It returns what was appended: nothing while no
// drag is active, the start marker plus p on a stroke's first move, just p
// afterwards.
func (r *Recorder) Extend(p Point) []Segment {
	if !r.active {
		return nil
	}
	ts := r.session.Tools.State()
	eraser := ts.Mode == ModeEraser

	added := make([]Segment, 0, 2)
	if !r.started {
		added = append(added, Segment{
			X: r.pen.X, Y: r.pen.Y,
			Size: ts.Size, Color: ts.Color, Eraser: eraser,
			Start: true,
		})
		r.started = true
	}
	added = append(added, Segment{
		X: p.X, Y: p.Y,
		Size: ts.Size, Color: ts.Color, Eraser: eraser,
	})

	if r.live != nil {
		r.live.DrawLine(r.pen, p, ts.Size, ts.Color)
	}
	for _, seg := range added {
		r.session.Append(seg)
	}
	r.pen = p
	return added
}

// End finishes the stroke. Calling it with no active drag is a no-op.
func (r *Recorder) End() {
	r.active = false
	r.started = false
}
