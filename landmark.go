package facecanvas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Landmark is a face mesh point normalized to the [0, 1] range relative
// to the source image width and height. Z is carried along but never drawn.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Pixel maps the normalized landmark onto a canvas of the given size.
// Each axis is converted independently.
func (l Landmark) Pixel(width, height int) (x, y float64) {
	return l.X * float64(width), l.Y * float64(height)
}

// Landmarks is the ordered landmark list of a single face, as produced by the detector.
type Landmarks []Landmark

// At returns the landmark at index i.
func (lms Landmarks) At(i int) (Landmark, error) {
	if i < 0 || i >= len(lms) {
		return Landmark{}, &IndexError{Index: i, Len: len(lms)}
	}
	return lms[i], nil
}

// Clone returns a copy of the landmark list.
func (lms Landmarks) Clone() Landmarks {
	if lms == nil {
		return nil
	}
	return append(Landmarks(nil), lms...)
}

// faceMeshResults mirrors the results object of the MediaPipe face mesh
// solution and of the newer face landmarker task.
type faceMeshResults struct {
	MultiFaceLandmarks []Landmarks `json:"multiFaceLandmarks"`
	FaceLandmarks      []Landmarks `json:"faceLandmarks"`
}

// DecodeLandmarks reads landmark data encoded as JSON and returns one landmark list per face.
// It accepts either a bare list of {x, y, z} objects or a detector results object
// holding the faces under "multiFaceLandmarks" or "faceLandmarks".
func DecodeLandmarks(r io.Reader) ([]Landmarks, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read landmark data: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty landmark data")
	}

	switch data[0] {
	case '[':
		var lms Landmarks
		if err := json.Unmarshal(data, &lms); err != nil {
			return nil, fmt.Errorf("unable to decode the landmark list: %w", err)
		}
		return []Landmarks{lms}, nil
	case '{':
		var res faceMeshResults
		if err := json.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("unable to decode the face mesh results: %w", err)
		}
		if res.MultiFaceLandmarks != nil {
			return res.MultiFaceLandmarks, nil
		}
		return res.FaceLandmarks, nil
	}
	return nil, fmt.Errorf("unexpected landmark data starting with %q", data[0])
}
