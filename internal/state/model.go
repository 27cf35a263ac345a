package state

// Point is a pixel position on the canvas.
type Point struct{ X, Y float64 }

// Mode selects how new segments are painted.
type Mode int

const (
	ModeBrush Mode = iota
	ModeEraser
)

func (m Mode) String() string {
	if m == ModeEraser {
		return "Eraser"
	}
	return "Brush"
}

// ToolState is a copy of the tool settings taken when a segment is captured.
type ToolState struct {
	Color string
	Size  int
	Mode  Mode
}

// Segment is one recorded endpoint of a freehand stroke. It is drawn as a
// line from the previous segment's endpoint unless Start is set.
type Segment struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   int     `json:"size"`
	Color  string  `json:"color"`
	Eraser bool    `json:"eraser"`
	Start  bool    `json:"start,omitempty"`
}

func (s Segment) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// StrokeColor is the color the segment paints with against background.
// Eraser segments always take the background they are replayed on.
func (s Segment) StrokeColor(background string) string {
	if s.Eraser {
		return background
	}
	return s.Color
}
