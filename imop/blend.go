// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// It is used to merge the rendered face mask overlay onto the source picture,
// optionally mixing the mask colors with the backdrop through a blend mode.
package imop

import (
	"fmt"
)

// Separable blend modes.
const (
	Normal   = "normal"
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

var blendModes = map[string]func(cb, cs float64) float64{
	Normal:   func(cb, cs float64) float64 { return cs },
	Darken:   darken,
	Lighten:  lighten,
	Multiply: func(cb, cs float64) float64 { return cb * cs },
	Screen:   screen,
	Overlay:  overlay,
}

func darken(cb, cs float64) float64 {
	if cb < cs {
		return cb
	}
	return cs
}

func lighten(cb, cs float64) float64 {
	if cb > cs {
		return cb
	}
	return cs
}

func screen(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

// overlay is hard-light with the layers swapped.
func overlay(cb, cs float64) float64 {
	if cb <= 0.5 {
		return cs * 2 * cb
	}
	return screen(cs, 2*cb-1)
}

// BlendModes lists the supported blend modes.
func BlendModes() []string {
	return []string{Normal, Darken, Lighten, Multiply, Screen, Overlay}
}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (o *Blend) Set(opType string) error {
	if _, ok := blendModes[opType]; !ok {
		return fmt.Errorf("unsupported blend mode: %q", opType)
	}
	o.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (o *Blend) Get() string {
	return o.OpType
}

// fn returns the blend function, nil when no blending should be applied.
func (o *Blend) fn() func(cb, cs float64) float64 {
	if o == nil || o.OpType == "" || o.OpType == Normal {
		return nil
	}
	return blendModes[o.OpType]
}
