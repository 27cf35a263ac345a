package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/board"
)

// Status is the active-tool label, which also shows short flashes.
// Flashes are never cancelled: if two overlap, whichever expires last
// decides the final text.
type Status struct {
	Label *widget.Label
	idle  func() string
	after func(d time.Duration, f func())
}

func NewStatus(idle func() string) *Status {
	return &Status{
		Label: widget.NewLabel(idle()),
		idle:  idle,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, func() { fyne.Do(f) })
		},
	}
}

// Idle shows the active tool.
func (s *Status) Idle() {
	s.Label.SetText(s.idle())
}

func (s *Status) Flash(f board.Flash) {
	prev := s.Label.Text
	s.Label.SetText(f.Text)
	s.after(f.Duration, func() {
		if f.Restore {
			s.Label.SetText(prev)
			return
		}
		s.Idle()
	})
}
