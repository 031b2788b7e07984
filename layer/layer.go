// Package layer implements the free-hand drawing layers painted on top of the face mask.
package layer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/esimov/facecanvas/canvas"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Brush is the pen a layer is drawn with.
type Brush struct {
	Color string  `json:"color"` // for example "rgb(255,0,0)"
	Size  float64 `json:"size"`
}

// Point is a position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a single stroke of the pen between two consecutive pointer positions.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Layer is a set of segments sharing the same brush.
type Layer struct {
	Brush  Brush     `json:"brush"`
	Points []Segment `json:"points"`
}

// Decode reads a JSON object mapping layer ids to layers.
func Decode(r io.Reader) (map[string]Layer, error) {
	layers := make(map[string]Layer)
	if err := json.NewDecoder(r).Decode(&layers); err != nil {
		return nil, fmt.Errorf("unable to decode the drawing layers: %w", err)
	}
	return layers, nil
}

// Draw strokes every segment of the layer with round caps and joins, using the
// brush color and size. The context style state is left untouched.
// A segment starting and ending on the same point leaves a dot of the brush size.
func Draw(ctx canvas.Context, l Layer) error {
	col, err := canvas.ParseColor(l.Brush.Color)
	if err != nil {
		return fmt.Errorf("invalid brush: %w", err)
	}
	if l.Brush.Size <= 0 || len(l.Points) == 0 {
		return nil
	}

	ctx.Save()
	defer ctx.Restore()

	ctx.SetStrokeColor(col)
	ctx.SetFillColor(col)
	ctx.SetLineWidth(l.Brush.Size)
	ctx.SetLineCap(canvas.RoundCap)
	ctx.SetLineJoin(canvas.RoundJoin)

	for _, s := range l.Points {
		ctx.BeginPath()
		if s.From == s.To {
			ctx.Circle(s.From.X, s.From.Y, l.Brush.Size/2)
			ctx.Fill()
			continue
		}
		ctx.MoveTo(s.From.X, s.From.Y)
		ctx.LineTo(s.To.X, s.To.Y)
		ctx.Stroke()
	}
	return nil
}

// DrawAll draws the layers ordered by their id.
// It stops at the first layer with an invalid brush.
func DrawAll(ctx canvas.Context, layers map[string]Layer) error {
	for _, id := range IDs(layers) {
		if err := Draw(ctx, layers[id]); err != nil {
			return fmt.Errorf("layer %q: %w", id, err)
		}
	}
	return nil
}

// IDs returns the sorted layer ids.
func IDs(layers map[string]Layer) []string {
	ids := maps.Keys(layers)
	slices.Sort(ids)

	return ids
}
