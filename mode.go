package facecanvas

import (
	"fmt"
	"image/color"

	"github.com/esimov/facecanvas/canvas"
)

// Mode selects one of the fixed draw programs.
type Mode string

const (
	ModeLandmarks  Mode = "landmarks"
	ModePoints     Mode = "points"
	ModeCrucibleAI Mode = "crucibleAI"
)

// Modes returns the supported drawing modes.
func Modes() []Mode {
	return []Mode{ModeLandmarks, ModePoints, ModeCrucibleAI}
}

// ParseMode converts the mode identifier used by the UI into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := programs[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

func (m Mode) String() string { return string(m) }

const (
	lineWidth   = 4
	pointRadius = 2
)

var (
	rgb = canvas.MustParseColor

	magenta = rgb("magenta")
	yellow  = rgb("yellow")
	cyan    = rgb("cyan")
	blue    = rgb("blue")
	orange  = rgb("orange")
	lime    = rgb("lime")
	black   = rgb("black")
)

func outline(r Region, c color.NRGBA, closed bool) PathInstruction {
	return PathInstruction{Region: r, Color: c, LineWidth: lineWidth, Stroke: true, Close: closed}
}

func solid(r Region, c color.NRGBA) PathInstruction {
	return PathInstruction{Region: r, Color: c, LineWidth: lineWidth, Fill: true, Close: true}
}

func marker(r Region, c color.NRGBA, s Shape) PointInstruction {
	return PointInstruction{Region: r, Color: c, Radius: pointRadius, Shape: s, Fill: true}
}

// programs maps every mode to its ordered draw instructions.
// Later instructions paint over earlier ones.
var programs = map[Mode][]Instruction{
	ModeLandmarks: {
		solid(LeftEye, magenta),
		solid(RightEye, magenta),
		outline(RightEyeBrowTop, yellow, false),
		outline(LeftEyeBrowTop, yellow, false),
		solid(OuterLips, cyan),
		solid(InnerLips, blue),
		outline(NoseTop, orange, false),
		outline(NoseBase, orange, false),
		outline(Silhouette, lime, false),
	},
	ModePoints: {
		marker(LeftEye, black, Circle),
		marker(RightEye, black, Circle),
		marker(RightEyeBrowTop, black, Circle),
		marker(LeftEyeBrowTop, black, Circle),
		marker(OuterLips, black, Circle),
		marker(InnerLips, black, Circle),
		marker(NoseTop, black, Circle),
		marker(NoseBase, black, Circle),
		marker(Silhouette, black, Circle),
	},
	ModeCrucibleAI: {
		outline(LeftEye, rgb("rgb(180, 200, 10)"), true),
		outline(RightEye, rgb("rgb(10, 200, 180)"), true),
		outline(RightEyeBrowTop, rgb("rgb(10, 200, 180)"), false),
		outline(RightEyeBrowBottom, rgb("rgb(10, 200, 180)"), false),
		outline(LeftEyeBrowTop, rgb("rgb(180, 200, 10)"), false),
		outline(LeftEyeBrowBottom, rgb("rgb(180, 200, 10)"), false),
		outline(OuterLips, rgb("rgb(10, 180, 10)"), true),
		outline(InnerLips, rgb("rgb(10, 180, 10)"), true),
		outline(FaceOval, rgb("rgb(10, 200, 10)"), true),
		marker(LeftIris, rgb("rgb(250, 200, 10)"), Square),
		marker(RightIris, rgb("rgb(10, 200, 250)"), Square),
	},
}

// Program returns a copy of the draw instructions of the mode.
func Program(m Mode) ([]Instruction, error) {
	prog, ok := programs[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, m)
	}
	return append([]Instruction(nil), prog...), nil
}
