// Package store holds the shared application state as a set of observable values.
package store

import (
	"image"
	"sync"

	"github.com/esimov/facecanvas/canvas"
	"github.com/esimov/facecanvas/layer"
)

// Writable is a value which notifies its subscribers on every change.
// It is safe for concurrent use. Subscribers are called synchronously,
// in subscription order, from the goroutine changing the value; they must
// not subscribe or unsubscribe from within the callback.
type Writable[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]func(T)
	order []int
	next  int
}

// NewWritable returns a writable holding the initial value v.
func NewWritable[T any](v T) *Writable[T] {
	return &Writable[T]{value: v}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.value
}

// Set replaces the value and notifies the subscribers.
func (w *Writable[T]) Set(v T) {
	w.Update(func(T) T { return v })
}

// Update replaces the value with the result of fn applied on the current one
// and notifies the subscribers.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	w.value = fn(w.value)
	v := w.value
	subs := w.subscribers()
	w.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn and calls it right away with the current value.
// The returned function removes the subscription; calling it more than once is harmless.
func (w *Writable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	w.mu.Lock()
	if w.subs == nil {
		w.subs = make(map[int]func(T))
	}
	id := w.next
	w.next++
	w.subs[id] = fn
	w.order = append(w.order, id)
	v := w.value
	w.mu.Unlock()

	fn(v)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		if _, ok := w.subs[id]; !ok {
			return
		}
		delete(w.subs, id)
		for i, sid := range w.order {
			if sid == id {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}
}

func (w *Writable[T]) subscribers() []func(T) {
	subs := make([]func(T), 0, len(w.order))
	for _, id := range w.order {
		subs = append(subs, w.subs[id])
	}
	return subs
}

// Store groups the values shared between the processing steps.
type Store struct {
	// DrawingLayers maps layer ids to the free-hand drawings.
	DrawingLayers *Writable[map[string]layer.Layer]
	// ResultImage is the data URL of the last composed image.
	ResultImage *Writable[string]
	// CurrentCanvas is the canvas the mask is currently drawn on.
	CurrentCanvas *Writable[canvas.Context]
	// SelectedImage is the decoded source image.
	SelectedImage *Writable[image.Image]
}

// New returns a store with an empty layer set and the other values unset.
func New() *Store {
	return &Store{
		DrawingLayers: NewWritable(make(map[string]layer.Layer)),
		ResultImage:   NewWritable(""),
		CurrentCanvas: NewWritable[canvas.Context](nil),
		SelectedImage: NewWritable[image.Image](nil),
	}
}
