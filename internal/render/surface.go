// Package render replays a segment log onto a drawing surface.
package render

import "LocalPaint/internal/state"

// Surface is the 2D target strokes are painted on. DrawLine strokes a
// single round-capped line; Fill covers the whole surface.
type Surface interface {
	state.LineDrawer
	Size() (width, height int)
	Fill(color string)
}

// Rebuild paints background over the whole surface, then draws each
// segment as a line from its predecessor. Segment 0 and start markers only
// ever serve as the start point of the next line, so a lone point leaves
// no mark. Eraser segments take the background passed here, not the one
// they were captured with.
func Rebuild(s Surface, background string, segs []state.Segment) {
	s.Fill(background)
	for i := 1; i < len(segs); i++ {
		cur := segs[i]
		if cur.Start {
			continue
		}
		s.DrawLine(segs[i-1].Point(), cur.Point(), cur.Size, cur.StrokeColor(background))
	}
}
