package state

import "github.com/google/uuid"

// Session is the drawing state passed to the Recorder and the Replayer:
// the tool controller plus the ordered segment log. Segments are never
// changed once appended.
type Session struct {
	ID       string
	Tools    *Tools
	segments []Segment
}

func NewSession(tools *Tools) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Tools:    tools,
		segments: make([]Segment, 0),
	}
}

// Segments returns a copy of the log in drawing order.
func (s *Session) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Session) Len() int { return len(s.segments) }

func (s *Session) Background() string { return s.Tools.Background() }

func (s *Session) Append(seg Segment) {
	s.segments = append(s.segments, seg)
}

// Replace swaps the whole log, as a load from storage does.
func (s *Session) Replace(segs []Segment) {
	s.segments = make([]Segment, len(segs))
	copy(s.segments, segs)
}

func (s *Session) Clear() {
	s.segments = make([]Segment, 0)
}
