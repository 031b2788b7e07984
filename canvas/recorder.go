package canvas

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpCircle
	OpRect
	OpFillColor
	OpStrokeColor
	OpLineWidth
	OpLineJoin
	OpFill
	OpStroke
	OpLineCap
)

var opNames = [...]string{
	OpSave:        "save",
	OpRestore:     "restore",
	OpBeginPath:   "beginPath",
	OpMoveTo:      "moveTo",
	OpLineTo:      "lineTo",
	OpClosePath:   "closePath",
	OpCircle:      "circle",
	OpRect:        "rect",
	OpFillColor:   "fillStyle",
	OpStrokeColor: "strokeStyle",
	OpLineWidth:   "lineWidth",
	OpLineJoin:    "lineJoin",
	OpFill:        "fill",
	OpStroke:      "stroke",
	OpLineCap:     "lineCap",
}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("op(%d)", int(k))
	}
	return opNames[k]
}

// Op is a single recorded drawing call.
// Args holds the numeric arguments in call order; Color, Join and Cap are set
// for the style calls which take them.
type Op struct {
	Kind  OpKind
	Args  []float64
	Color color.Color
	Join  LineJoin
	Cap   LineCap
}

func (op Op) String() string {
	switch op.Kind {
	case OpFillColor, OpStrokeColor:
		return fmt.Sprintf("%v(%v)", op.Kind, op.Color)
	case OpLineJoin:
		return fmt.Sprintf("%v(%v)", op.Kind, op.Join)
	case OpLineCap:
		return fmt.Sprintf("%v(%v)", op.Kind, op.Cap)
	}
	return fmt.Sprintf("%v%v", op.Kind, op.Args)
}

var _ Context = (*Recorder)(nil)

// Recorder is a Context which only records the calls made on it.
// It is mostly useful for inspecting a render program and for replaying
// it later onto another Context.
type Recorder struct {
	width, height int
	ops           []Op
}

// NewRecorder creates a recorder reporting the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset drops every recorded call.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Filter returns the recorded calls of the given kinds, keeping their order.
func (r *Recorder) Filter(kinds ...OpKind) []Op {
	var res []Op
	for _, op := range r.ops {
		for _, k := range kinds {
			if op.Kind == k {
				res = append(res, op)
				break
			}
		}
	}
	return res
}

// Playback replays the recorded calls onto dst.
func (r *Recorder) Playback(dst Context) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpSave:
			dst.Save()
		case OpRestore:
			dst.Restore()
		case OpBeginPath:
			dst.BeginPath()
		case OpMoveTo:
			dst.MoveTo(op.Args[0], op.Args[1])
		case OpLineTo:
			dst.LineTo(op.Args[0], op.Args[1])
		case OpClosePath:
			dst.ClosePath()
		case OpCircle:
			dst.Circle(op.Args[0], op.Args[1], op.Args[2])
		case OpRect:
			dst.Rect(op.Args[0], op.Args[1], op.Args[2], op.Args[3])
		case OpFillColor:
			dst.SetFillColor(op.Color)
		case OpStrokeColor:
			dst.SetStrokeColor(op.Color)
		case OpLineWidth:
			dst.SetLineWidth(op.Args[0])
		case OpLineJoin:
			dst.SetLineJoin(op.Join)
		case OpLineCap:
			dst.SetLineCap(op.Cap)
		case OpFill:
			dst.Fill()
		case OpStroke:
			dst.Stroke()
		}
	}
}

func (r *Recorder) record(kind OpKind, args ...float64) {
	r.ops = append(r.ops, Op{Kind: kind, Args: args})
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Save()                    { r.record(OpSave) }
func (r *Recorder) Restore()                 { r.record(OpRestore) }
func (r *Recorder) BeginPath()               { r.record(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64)      { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)      { r.record(OpLineTo, x, y) }
func (r *Recorder) ClosePath()               { r.record(OpClosePath) }
func (r *Recorder) Circle(x, y, rad float64) { r.record(OpCircle, x, y, rad) }
func (r *Recorder) Rect(x, y, w, h float64)  { r.record(OpRect, x, y, w, h) }
func (r *Recorder) SetLineWidth(w float64)   { r.record(OpLineWidth, w) }
func (r *Recorder) Fill()                    { r.record(OpFill) }
func (r *Recorder) Stroke()                  { r.record(OpStroke) }

func (r *Recorder) SetFillColor(c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpStrokeColor, Color: c})
}

func (r *Recorder) SetLineJoin(j LineJoin) {
	r.ops = append(r.ops, Op{Kind: OpLineJoin, Join: j})
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.ops = append(r.ops, Op{Kind: OpLineCap, Cap: c})
}
