package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red         = color.RGBA{R: 0xff, A: 0xff}
	green       = color.RGBA{G: 0xff, A: 0xff}
	blue        = color.RGBA{B: 0xff, A: 0xff}
	transparent = color.RGBA{}
)

func TestRaster_Dimensions(t *testing.T) {
	r := NewRaster(200, 100)
	assert.Equal(t, 200, r.Width())
	assert.Equal(t, 100, r.Height())

	r = NewRaster(-5, 10)
	assert.Equal(t, 0, r.Width())
}

func TestRaster_FillRect(t *testing.T) {
	assert := assert.New(t)
	r := NewRaster(20, 20)

	r.SetFillColor(red)
	r.BeginPath()
	r.Rect(5, 5, 10, 10)
	r.Fill()

	assert.Equal(red, r.Image().At(10, 10))
	assert.Equal(red, r.Image().At(5, 5))
	assert.Equal(transparent, r.Image().At(1, 1))
	assert.Equal(transparent, r.Image().At(16, 16))
}

func TestRaster_FillClosesOpenPath(t *testing.T) {
	r := NewRaster(20, 20)

	r.SetFillColor(green)
	r.BeginPath()
	r.MoveTo(0, 0)
	r.LineTo(20, 0)
	r.LineTo(20, 20)
	r.LineTo(0, 20)
	r.Fill()

	assert.Equal(t, green, r.Image().At(10, 10))
}

func TestRaster_StrokeLine(t *testing.T) {
	assert := assert.New(t)
	r := NewRaster(20, 20)

	r.SetStrokeColor(blue)
	r.SetLineWidth(4)
	r.BeginPath()
	r.MoveTo(2, 10)
	r.LineTo(18, 10)
	r.Stroke()

	assert.Equal(blue, r.Image().At(10, 9))
	assert.Equal(blue, r.Image().At(10, 10))
	assert.Equal(transparent, r.Image().At(10, 15))
	assert.Equal(transparent, r.Image().At(10, 4))
}

func TestRaster_LineCap(t *testing.T) {
	stroke := func(c LineCap) *Raster {
		r := NewRaster(30, 20)
		r.SetStrokeColor(red)
		r.SetLineWidth(6)
		r.SetLineCap(c)
		r.BeginPath()
		r.MoveTo(10, 10)
		r.LineTo(20, 10)
		r.Stroke()
		return r
	}

	assert.Equal(t, transparent, stroke(ButtCap).Image().At(8, 10))
	assert.Equal(t, red, stroke(RoundCap).Image().At(8, 10))
	assert.Equal(t, red, stroke(SquareCap).Image().At(7, 7))
	assert.Equal(t, "round", RoundCap.String())
	assert.Equal(t, "butt", LineCap(7).String())
}

func TestRaster_StrokeDoesNotFill(t *testing.T) {
	r := NewRaster(40, 40)

	r.SetStrokeColor(blue)
	r.SetLineWidth(2)
	r.BeginPath()
	r.Rect(5, 5, 30, 30)
	r.Stroke()

	assert.Equal(t, transparent, r.Image().At(20, 20))
	assert.Equal(t, blue, r.Image().At(20, 5))
}

func TestRaster_Circle(t *testing.T) {
	r := NewRaster(20, 20)

	r.SetFillColor(red)
	r.BeginPath()
	r.Circle(10, 10, 4)
	r.Fill()

	assert.Equal(t, red, r.Image().At(10, 10))
	assert.Equal(t, transparent, r.Image().At(1, 1))
	assert.Equal(t, transparent, r.Image().At(10, 16))
}

func TestRaster_SaveRestore(t *testing.T) {
	r := NewRaster(10, 10)

	r.SetFillColor(red)
	r.Save()
	r.SetFillColor(green)
	r.SetLineWidth(8)
	r.SetLineJoin(RoundJoin)
	r.Restore()

	assert.Equal(t, red, r.state.fill)
	assert.Equal(t, 1.0, r.state.lineWidth)
	assert.Equal(t, MiterJoin, r.state.join)

	// Unbalanced restores are ignored.
	r.Restore()
	r.Restore()
	assert.Equal(t, red, r.state.fill)
}

func TestRaster_SetLineWidthIgnoresNonPositive(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetLineWidth(3)
	r.SetLineWidth(0)
	r.SetLineWidth(-2)
	assert.Equal(t, 3.0, r.state.lineWidth)
}

func TestRaster_ZeroAreaIsNoop(t *testing.T) {
	r := NewRaster(0, 0)

	assert.NotPanics(t, func() {
		r.BeginPath()
		r.MoveTo(0, 0)
		r.LineTo(10, 10)
		r.Fill()
		r.Stroke()
		r.Circle(1, 1, 2)
		r.Fill()
	})
}

func TestRaster_Clear(t *testing.T) {
	r := NewRaster(10, 10)
	r.SetFillColor(red)
	r.Rect(0, 0, 10, 10)
	r.Fill()
	assert.Equal(t, red, r.Image().At(5, 5))

	r.Clear()
	assert.Equal(t, transparent, r.Image().At(5, 5))
}

func TestRaster_LaterDrawsPaintOver(t *testing.T) {
	r := NewRaster(20, 20)

	r.SetFillColor(red)
	r.BeginPath()
	r.Rect(0, 0, 20, 20)
	r.Fill()

	r.SetFillColor(blue)
	r.BeginPath()
	r.Rect(5, 5, 10, 10)
	r.Fill()

	assert.Equal(t, blue, r.Image().At(10, 10))
	assert.Equal(t, red, r.Image().At(2, 2))
}
