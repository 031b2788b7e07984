package facecanvas

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMode is returned when the drawing mode is not registered.
	ErrUnknownMode = errors.New("unknown drawing mode")
	// ErrUnknownRegion is returned when an instruction references a region missing from the topology.
	ErrUnknownRegion = errors.New("unknown landmark region")
	// ErrIndexOutOfRange is returned when a region references a landmark the list does not have.
	ErrIndexOutOfRange = errors.New("landmark index out of range")
)

// IndexError reports a landmark index outside of the supplied landmark list.
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Region Region // empty on direct lookups
	Index  int
	Len    int
}

func (e *IndexError) Error() string {
	if e.Region == "" {
		return fmt.Sprintf("landmark index %d out of range [0, %d)", e.Index, e.Len)
	}
	return fmt.Sprintf("region %s: landmark index %d out of range [0, %d)", e.Region, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
