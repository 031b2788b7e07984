// Package canvas defines the 2D drawing surface the face mask renderer paints on
// and provides a rasterx based software implementation of it.
//
// The coordinate system follows the browser canvas: origin at the top-left corner,
// x increasing to the right, y increasing downwards, one unit per device pixel.
package canvas

import "image/color"

// LineJoin determines the shape used to join two connected line segments.
type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

func (j LineJoin) String() string {
	switch j {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "miter"
}

// LineCap determines the shape drawn at the ends of open subpaths.
type LineCap int

const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (c LineCap) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "butt"
}

// Context is an immediate mode 2D drawing context.
//
// Save pushes the current style state (fill and stroke color, line width, join and cap)
// onto a stack and Restore pops it. The current path is not part of the saved state.
// A Context is not safe for concurrent use.
type Context interface {
	Width() int
	Height() int

	Save()
	Restore()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Circle adds a closed circular subpath centered at (x, y).
	Circle(x, y, r float64)
	// Rect adds a closed rectangular subpath with its top-left corner at (x, y).
	Rect(x, y, w, h float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetLineJoin(j LineJoin)
	SetLineCap(c LineCap)

	// Fill paints the interior of the current path using the non-zero winding rule.
	// Open subpaths are implicitly closed.
	Fill()
	// Stroke paints the outline of the current path.
	Stroke()
}

// Clearer is implemented by contexts which can wipe their pixel content.
type Clearer interface {
	Clear()
}

type state struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	join      LineJoin
	cap       LineCap
}

func defaultState() state {
	return state{
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		join:      MiterJoin,
		cap:       ButtCap,
	}
}
