package facecanvas

import (
	"fmt"

	"github.com/esimov/facecanvas/canvas"
)

// Render draws the program of the given mode for a single face onto ctx.
//
// An unknown mode fails with ErrUnknownMode before the context is touched.
// Instructions run in program order; before each one every landmark it references
// is resolved, and a missing landmark aborts the render with an *IndexError
// (matching ErrIndexOutOfRange) without issuing any call for that instruction.
// What previous instructions already painted stays on the canvas.
// A canvas without area is left alone and nil is returned.
func Render(ctx canvas.Context, lms Landmarks, mode Mode) error {
	prog, ok := programs[mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return RenderProgram(ctx, lms, prog)
}

// RenderProgram runs an arbitrary sequence of draw instructions, with the same
// guarantees as Render.
func RenderProgram(ctx canvas.Context, lms Landmarks, prog []Instruction) error {
	w, h := ctx.Width(), ctx.Height()
	if w <= 0 || h <= 0 {
		return nil
	}

	for _, in := range prog {
		pts, err := resolve(in.Target(), lms, w, h)
		if err != nil {
			return err
		}
		withState(ctx, func() {
			in.draw(ctx, pts)
		})
	}
	return nil
}

// withState runs fn between a Save and a Restore of the context style state.
// The state is restored even if fn panics.
func withState(ctx canvas.Context, fn func()) {
	ctx.Save()
	defer ctx.Restore()
	fn()
}

// resolve maps the region landmarks into pixel space.
func resolve(r Region, lms Landmarks, w, h int) ([]point, error) {
	idx, ok := topology[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, r)
	}
	pts := make([]point, len(idx))
	for i, id := range idx {
		if id < 0 || id >= len(lms) {
			return nil, &IndexError{Region: r, Index: id, Len: len(lms)}
		}
		pts[i].x, pts[i].y = lms[id].Pixel(w, h)
	}
	return pts, nil
}
