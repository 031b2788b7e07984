package store

import (
	"image"
	"sync"
	"testing"

	"github.com/esimov/facecanvas/canvas"
	"github.com/esimov/facecanvas/layer"
	"github.com/stretchr/testify/assert"
)

func TestWritable_SubscribeGetsCurrentValue(t *testing.T) {
	w := NewWritable(1)

	var got []int
	unsubscribe := w.Subscribe(func(v int) { got = append(got, v) })
	w.Set(2)
	w.Update(func(v int) int { return v * 10 })

	assert.Equal(t, []int{1, 2, 20}, got)
	assert.Equal(t, 20, w.Get())

	unsubscribe()
	unsubscribe()
	w.Set(3)
	assert.Equal(t, []int{1, 2, 20}, got)
}

func TestWritable_SubscriptionOrder(t *testing.T) {
	w := NewWritable("")

	var calls []string
	w.Subscribe(func(v string) { calls = append(calls, "a:"+v) })
	unsubscribe := w.Subscribe(func(v string) { calls = append(calls, "b:"+v) })
	w.Subscribe(func(v string) { calls = append(calls, "c:"+v) })

	calls = nil
	unsubscribe()
	w.Set("x")
	assert.Equal(t, []string{"a:x", "c:x"}, calls)
}

func TestWritable_ConcurrentUpdates(t *testing.T) {
	w := NewWritable(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, w.Get())
}

func TestStore_New(t *testing.T) {
	s := New()

	assert.NotNil(t, s.DrawingLayers.Get())
	assert.Empty(t, s.DrawingLayers.Get())
	assert.Equal(t, "", s.ResultImage.Get())
	assert.Nil(t, s.CurrentCanvas.Get())
	assert.Nil(t, s.SelectedImage.Get())

	var img image.Image
	s.SelectedImage.Subscribe(func(v image.Image) { img = v })
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	s.SelectedImage.Set(src)
	assert.Same(t, src, img)

	c := canvas.NewRaster(2, 2)
	s.CurrentCanvas.Set(c)
	assert.Equal(t, 2, s.CurrentCanvas.Get().Width())

	s.DrawingLayers.Update(func(m map[string]layer.Layer) map[string]layer.Layer {
		m["1"] = layer.Layer{Brush: layer.Brush{Color: "rgb(1,2,3)", Size: 1}}
		return m
	})
	assert.Equal(t, []string{"1"}, layer.IDs(s.DrawingLayers.Get()))
}
