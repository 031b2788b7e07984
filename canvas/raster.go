package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/facecanvas/utils"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// miterLimit matches the default miter limit of the HTML canvas.
const miterLimit = 10

var _ Context = (*Raster)(nil)

// Raster is a software Context drawing into an *image.RGBA.
// Fills and strokes are anti-aliased and composited with the source-over operator.
type Raster struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher

	path rasterx.Path
	open bool
	cur  fixed.Point26_6

	state state
	stack []state
}

// NewRaster creates a transparent raster canvas of the given dimensions.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width, height = utils.Max(width, 0), utils.Max(height, 0)
	return NewRasterFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterFor creates a raster canvas drawing directly onto img.
func NewRasterFor(img *image.RGBA) *Raster {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())

	return &Raster{
		img:     img,
		scanner: scanner,
		dasher:  rasterx.NewDasher(w, h, scanner),
		state:   defaultState(),
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Width returns the canvas width in pixels.
func (r *Raster) Width() int { return r.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (r *Raster) Height() int { return r.img.Bounds().Dy() }

// Clear resets every pixel to transparent black. The path and the style state are kept.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Save pushes the current style state onto the stack.
func (r *Raster) Save() {
	r.stack = append(r.stack, r.state)
}

// Restore pops the last saved style state. It is a no-op on an empty stack.
func (r *Raster) Restore() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

// BeginPath discards the current path.
func (r *Raster) BeginPath() {
	r.path.Clear()
	r.open = false
}

// MoveTo starts a new subpath at (x, y).
func (r *Raster) MoveTo(x, y float64) {
	r.endSubpath()
	r.cur = toFixed(x, y)
	r.path.Start(r.cur)
	r.open = true
}

// LineTo adds a straight segment from the current point to (x, y).
// Without a current point it behaves like MoveTo. Zero length segments
// do not change the geometry and are dropped.
func (r *Raster) LineTo(x, y float64) {
	if !r.open {
		r.MoveTo(x, y)
		return
	}
	p := toFixed(x, y)
	if p == r.cur {
		return
	}
	r.path.Line(p)
	r.cur = p
}

// ClosePath closes the current subpath back to its starting point.
func (r *Raster) ClosePath() {
	if r.open {
		r.path.Stop(true)
		r.open = false
	}
}

// Circle adds a closed circle subpath.
func (r *Raster) Circle(x, y, radius float64) {
	r.endSubpath()
	rasterx.AddCircle(x, y, radius, &r.path)
}

// Rect adds a closed rectangle subpath.
func (r *Raster) Rect(x, y, w, h float64) {
	r.endSubpath()
	rasterx.AddRect(x, y, x+w, y+h, 0, &r.path)
}

// endSubpath terminates the current subpath without closing it.
func (r *Raster) endSubpath() {
	if r.open {
		r.path.Stop(false)
		r.open = false
	}
}

func (r *Raster) SetFillColor(c color.Color)   { r.state.fill = c }
func (r *Raster) SetStrokeColor(c color.Color) { r.state.stroke = c }
func (r *Raster) SetLineJoin(j LineJoin)       { r.state.join = j }
func (r *Raster) SetLineCap(c LineCap)         { r.state.cap = c }

// SetLineWidth sets the stroke width. Non-positive values are ignored, as on the HTML canvas.
func (r *Raster) SetLineWidth(w float64) {
	if w > 0 {
		r.state.lineWidth = w
	}
}

// Fill paints the current path with the fill color. The path is preserved.
func (r *Raster) Fill() {
	if r.empty() {
		return
	}
	f := &r.dasher.Filler
	f.SetWinding(true)
	r.path.AddTo(f)
	f.SetColor(r.state.fill)
	f.Draw()
	f.Clear()
}

// Stroke outlines the current path with the stroke color and line width. The path is preserved.
func (r *Raster) Stroke() {
	if r.empty() {
		return
	}
	r.dasher.SetStroke(
		fixed.Int26_6(r.state.lineWidth*64),
		fixed.I(miterLimit),
		capFunc(r.state.cap), nil, nil, joinMode(r.state.join),
		nil, 0,
	)
	r.dasher.SetWinding(true)
	r.path.AddTo(r.dasher)
	r.dasher.SetColor(r.state.stroke)
	r.dasher.Draw()
	r.dasher.Clear()
}

func (r *Raster) empty() bool {
	return len(r.path) == 0 || r.Width() == 0 || r.Height() == 0
}

func joinMode(j LineJoin) rasterx.JoinMode {
	switch j {
	case RoundJoin:
		return rasterx.Round
	case BevelJoin:
		return rasterx.Bevel
	}
	return rasterx.Miter
}

func capFunc(c LineCap) rasterx.CapFunc {
	switch c {
	case RoundCap:
		return rasterx.RoundCap
	case SquareCap:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

// toFixed converts a pixel coordinate to 26.6 fixed point.
func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}
