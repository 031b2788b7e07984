package facecanvas

import (
	"context"
	"sync"

	"github.com/esimov/facecanvas/canvas"
)

// RedrawOptions configures a Redrawer.
type RedrawOptions struct {
	// Clear wipes the canvas before every render, when the canvas supports it.
	Clear bool
	// OnRender, if set, is called from the worker goroutine after every render.
	OnRender func(Mode, error)
}

type redrawRequest struct {
	lms  Landmarks
	mode Mode
}

// Redrawer serializes the renders of a single canvas on a worker goroutine.
//
// Requests never block the caller. A request arriving while a render is in
// flight replaces any request still waiting, so only the latest one is drawn
// once the worker is free again.
type Redrawer struct {
	canvas canvas.Context
	opts   RedrawOptions

	mu      sync.Mutex
	pending *redrawRequest
	wake    chan struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRedrawer starts a worker drawing onto c. The worker stops when ctx is
// canceled or Close is called.
func NewRedrawer(ctx context.Context, c canvas.Context, opts RedrawOptions) *Redrawer {
	ctx, cancel := context.WithCancel(ctx)
	r := &Redrawer{
		canvas: c,
		opts:   opts,
		wake:   make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go r.run(ctx)

	return r
}

// Request schedules a render of the landmarks in the given mode.
// The landmark list is copied, the caller is free to reuse it.
func (r *Redrawer) Request(lms Landmarks, mode Mode) {
	r.mu.Lock()
	r.pending = &redrawRequest{lms: lms.Clone(), mode: mode}
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Close stops the worker and waits for the render in flight to finish.
// Requests still waiting are dropped.
func (r *Redrawer) Close() {
	r.cancel()
	<-r.done
}

func (r *Redrawer) run(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.wake:
		}

		r.mu.Lock()
		req := r.pending
		r.pending = nil
		r.mu.Unlock()

		if req == nil || ctx.Err() != nil {
			continue
		}
		if c, ok := r.canvas.(canvas.Clearer); ok && r.opts.Clear {
			c.Clear()
		}
		err := Render(r.canvas, req.lms, req.mode)
		if r.opts.OnRender != nil {
			r.opts.OnRender(req.mode, err)
		}
	}
}
