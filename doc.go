/*
Package facecanvas draws face mesh annotations on a 2D canvas. Given the landmark list of a face,
as produced by a MediaPipe compatible face landmark detector, it renders one of the predefined
masks: the colored landmark mesh, a point cloud or the stylized crucibleAI mask.

The renderer paints on any canvas.Context. The canvas package provides a software rasterizer
and a recorder useful for inspecting the drawing calls.

The package also provides a command line interface which composes the mask on the source image.
To check the supported commands type:

	$ facecanvas --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/facecanvas"
	)

	func main() {
		p := &facecanvas.Processor{
			Mode:          facecanvas.ModeCrucibleAI,
			LandmarksPath: "face.json",
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error drawing the face mask: %s", err.Error())
		}
	}
*/
package facecanvas
