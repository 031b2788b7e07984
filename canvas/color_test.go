package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_Parse(t *testing.T) {
	testCases := []struct {
		in   string
		want color.NRGBA
	}{
		{"magenta", color.NRGBA{R: 255, B: 255, A: 255}},
		{"Lime", color.NRGBA{G: 255, A: 255}},
		{"orange", color.NRGBA{R: 255, G: 165, A: 255}},
		{"rgb(180, 200, 10)", color.NRGBA{R: 180, G: 200, B: 10, A: 255}},
		{" rgb(10,200,250) ", color.NRGBA{R: 10, G: 200, B: 250, A: 255}},
		{"rgba(0, 0, 0, 0.5)", color.NRGBA{A: 128}},
		{"rgb(300, -4, 0)", color.NRGBA{R: 255, A: 255}},
		{"#0f0", color.NRGBA{G: 255, A: 255}},
		{"#0a14c8", color.NRGBA{R: 10, G: 20, B: 200, A: 255}},
		{"#00000080", color.NRGBA{A: 128}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColor_ParseErrors(t *testing.T) {
	for _, in := range []string{"", "nocolor", "rgb(1, 2)", "rgb(a, b, c)", "rgba(1, 2, 3, x)", "#12345", "#ggg"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
	assert.Panics(t, func() { MustParseColor("nocolor") })
}
