package facecanvas

import (
	"image/color"

	"github.com/esimov/facecanvas/canvas"
)

// Shape is the marker drawn for every point of a PointInstruction.
type Shape string

const (
	Circle Shape = "circle"
	Square Shape = "square"
)

// Instruction is a single step of a draw program.
// The implementations are PathInstruction and PointInstruction.
type Instruction interface {
	// Target returns the region the instruction draws.
	Target() Region
	draw(ctx canvas.Context, pts []point)
}

// point is a landmark already mapped to pixel space.
type point struct {
	x, y float64
}

// PathInstruction connects the region points in order with straight segments.
type PathInstruction struct {
	Region    Region
	Color     color.NRGBA
	LineWidth float64
	Fill      bool
	Stroke    bool
	Close     bool
}

// Target returns the region the instruction draws.
func (in PathInstruction) Target() Region { return in.Region }

func (in PathInstruction) draw(ctx canvas.Context, pts []point) {
	ctx.SetStrokeColor(in.Color)
	ctx.SetFillColor(in.Color)
	ctx.SetLineJoin(canvas.RoundJoin)
	ctx.SetLineWidth(in.LineWidth)

	ctx.BeginPath()
	for i, p := range pts {
		if i == 0 {
			ctx.MoveTo(p.x, p.y)
		} else {
			ctx.LineTo(p.x, p.y)
		}
	}
	if in.Close {
		ctx.ClosePath()
	}
	if in.Fill {
		ctx.Fill()
	}
	if in.Stroke {
		ctx.Stroke()
	}
}

// PointInstruction draws an independent marker centered on every region point.
type PointInstruction struct {
	Region Region
	Color  color.NRGBA
	Radius float64
	Shape  Shape
	Fill   bool
	Stroke bool
}

// Target returns the region the instruction draws.
func (in PointInstruction) Target() Region { return in.Region }

func (in PointInstruction) draw(ctx canvas.Context, pts []point) {
	ctx.SetFillColor(in.Color)
	ctx.SetLineJoin(canvas.RoundJoin)
	ctx.SetStrokeColor(in.Color)

	r := in.Radius
	for _, p := range pts {
		ctx.BeginPath()
		switch in.Shape {
		case Square:
			ctx.Rect(p.x-r, p.y-r, r*2, r*2)
		default:
			ctx.Circle(p.x, p.y, r)
		}
		if in.Stroke {
			ctx.Stroke()
		}
		if in.Fill {
			ctx.Fill()
		}
	}
}
