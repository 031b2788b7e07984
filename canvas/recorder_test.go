package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_RecordsCalls(t *testing.T) {
	assert := assert.New(t)
	rec := NewRecorder(200, 100)

	rec.Save()
	rec.SetStrokeColor(red)
	rec.SetLineWidth(4)
	rec.SetLineJoin(RoundJoin)
	rec.BeginPath()
	rec.MoveTo(1, 2)
	rec.LineTo(3, 4)
	rec.ClosePath()
	rec.Stroke()
	rec.Restore()

	assert.Equal(200, rec.Width())
	assert.Equal(100, rec.Height())

	kinds := make([]OpKind, 0, len(rec.Ops()))
	for _, op := range rec.Ops() {
		kinds = append(kinds, op.Kind)
	}
	assert.Equal([]OpKind{
		OpSave, OpStrokeColor, OpLineWidth, OpLineJoin, OpBeginPath,
		OpMoveTo, OpLineTo, OpClosePath, OpStroke, OpRestore,
	}, kinds)

	moves := rec.Filter(OpMoveTo, OpLineTo)
	assert.Equal([]float64{1, 2}, moves[0].Args)
	assert.Equal([]float64{3, 4}, moves[1].Args)
	assert.Equal("lineJoin(round)", rec.Ops()[3].String())

	rec.Reset()
	assert.Empty(rec.Ops())
}

func TestRecorder_PlaybackMatchesDirectDrawing(t *testing.T) {
	draw := func(c Context) {
		c.Save()
		c.SetFillColor(color.NRGBA{R: 10, G: 200, B: 180, A: 255})
		c.BeginPath()
		c.Circle(8, 8, 5)
		c.Rect(20, 20, 6, 6)
		c.Fill()
		c.SetStrokeColor(green)
		c.SetLineWidth(3)
		c.SetLineCap(RoundCap)
		c.BeginPath()
		c.MoveTo(0, 30)
		c.LineTo(30, 0)
		c.Stroke()
		c.Restore()
	}

	direct := NewRaster(32, 32)
	draw(direct)

	rec := NewRecorder(32, 32)
	draw(rec)
	replayed := NewRaster(32, 32)
	rec.Playback(replayed)

	assert.Equal(t, direct.Image().Pix, replayed.Image().Pix)
}

func TestRecorder_OpKindString(t *testing.T) {
	assert.Equal(t, "moveTo", OpMoveTo.String())
	assert.Equal(t, "op(99)", OpKind(99).String())
	assert.Equal(t, "lineCap(square)", Op{Kind: OpLineCap, Cap: SquareCap}.String())
}
