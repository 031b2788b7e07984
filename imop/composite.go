package imop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/facecanvas/utils"
)

// Porter-Duff composition operators.
const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// factors returns the Porter-Duff coefficients applied to the
// source and the backdrop, given their alpha values.
type factors func(as, ab float64) (fa, fb float64)

var compOps = map[string]factors{
	Clear:   func(as, ab float64) (float64, float64) { return 0, 0 },
	Copy:    func(as, ab float64) (float64, float64) { return 1, 0 },
	Dst:     func(as, ab float64) (float64, float64) { return 0, 1 },
	SrcOver: func(as, ab float64) (float64, float64) { return 1, 1 - as },
	DstOver: func(as, ab float64) (float64, float64) { return 1 - ab, 1 },
	SrcIn:   func(as, ab float64) (float64, float64) { return ab, 0 },
	DstIn:   func(as, ab float64) (float64, float64) { return 0, as },
	SrcOut:  func(as, ab float64) (float64, float64) { return 1 - ab, 0 },
	DstOut:  func(as, ab float64) (float64, float64) { return 0, 1 - as },
	SrcAtop: func(as, ab float64) (float64, float64) { return ab, 1 - as },
	DstAtop: func(as, ab float64) (float64, float64) { return 1 - ab, as },
	Xor:     func(as, ab float64) (float64, float64) { return 1 - ab, 1 - as },
}

// CompositeOps lists the supported composition operators.
func CompositeOps() []string {
	return []string{Clear, Copy, Dst, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}
}

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composition operator.
type Composite struct {
	current string
}

// InitOp initializes a new Composite using the source-over operator.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported composition operators.
func (op *Composite) Set(cop string) error {
	if _, ok := compOps[cop]; !ok {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the currently active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// Draw composites src over the dst backdrop into bitmap, using the active operator.
// When blend is not nil the source colors are first mixed with the backdrop
// using the blend mode, as described by W3C Compositing and Blending Level 1.
// All three images are addressed from their own bounds minimum; the bitmap size wins.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	fn := compOps[op.current]
	mix := blend.fn()

	b := bitmap.Img.Bounds()
	so, do := src.Bounds().Min, dst.Bounds().Min
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			cs := toColor(nrgbaAt(src, so.X+x, so.Y+y))
			cb := toColor(nrgbaAt(dst, do.X+x, do.Y+y))

			if mix != nil {
				cs = cs.mix(cb, mix)
			}
			fa, fb := fn(cs.A, cb.A)

			ao := cs.A*fa + cb.A*fb
			var out Color
			if ao > 0 {
				out = Color{
					R: (cs.A*fa*cs.R + cb.A*fb*cb.R) / ao,
					G: (cs.A*fa*cs.G + cb.A*fb*cb.G) / ao,
					B: (cs.A*fa*cs.B + cb.A*fb*cb.B) / ao,
					A: ao,
				}
			}
			bitmap.Img.SetNRGBA(b.Min.X+x, b.Min.Y+y, out.nrgba())
		}
	}
}

// Color is a non-premultiplied color with components in the [0, 1] range.
type Color struct {
	R, G, B, A float64
}

func toColor(c color.NRGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (c Color) nrgba() color.NRGBA {
	conv := func(v float64) uint8 {
		return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: conv(c.A)}
}

// mix applies the blend function between the source c and the backdrop cb.
func (c Color) mix(cb Color, fn func(cb, cs float64) float64) Color {
	blend := func(b, s float64) float64 {
		return (1-cb.A)*s + cb.A*fn(b, s)
	}
	return Color{
		R: blend(cb.R, c.R),
		G: blend(cb.G, c.G),
		B: blend(cb.B, c.B),
		A: c.A,
	}
}

func nrgbaAt(img *image.NRGBA, x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return color.NRGBA{}
	}
	return img.NRGBAAt(x, y)
}
