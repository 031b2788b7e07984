package facecanvas

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// jpegQuality is used for jpeg destinations.
const jpegQuality = 95

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded in the format matching their extension,
// any other writer receives a png image.
func encodeImg(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		format, err := imaging.FormatFromFilename(w.Name())
		if err != nil {
			if w == os.Stdout {
				return imaging.Encode(w, img, imaging.PNG)
			}
			return fmt.Errorf("unsupported image format: %w", err)
		}
		return imaging.Encode(w, img, format, imaging.JPEGQuality(jpegQuality))
	default:
		return imaging.Encode(w, img, imaging.PNG)
	}
}

// DataURL encodes the image as a base64 png data URL.
func DataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("unable to encode the image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// isSupportedFormat reports whether the file name has an extension the encoder supports.
func isSupportedFormat(fname string) bool {
	_, err := imaging.FormatFromFilename(fname)
	return err == nil
}
