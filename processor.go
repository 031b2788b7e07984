package facecanvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/disintegration/imaging"
	"github.com/esimov/facecanvas/canvas"
	"github.com/esimov/facecanvas/imop"
	"github.com/esimov/facecanvas/layer"
	"github.com/esimov/facecanvas/store"
	"github.com/esimov/facecanvas/utils"
)

// Backdrop selects the picture the face mask is composed on.
type Backdrop string

const (
	BackdropImage Backdrop = "image"
	BackdropGray  Backdrop = "gray"
	BackdropBlur  Backdrop = "blur"
	BackdropNone  Backdrop = "none"
)

// Backdrops returns the supported backdrops.
func Backdrops() []Backdrop {
	return []Backdrop{BackdropImage, BackdropGray, BackdropBlur, BackdropNone}
}

// defaultBlurSigma is used by the blur backdrop when BlurSigma is not set.
const defaultBlurSigma = 4

// Processor options
type Processor struct {
	Mode          Mode
	LandmarksPath string
	LayersPath    string
	Backdrop      Backdrop
	Composite     string
	Blend         string
	BlurSigma     float64
	MaxWidth      int
	MaxHeight     int

	// Faces, when not nil, is used instead of reading LandmarksPath.
	Faces []Landmarks
	// Layers, when not nil, is used instead of reading LayersPath.
	Layers map[string]layer.Layer

	Store   *store.Store
	Spinner *utils.Spinner
}

// Process decodes the source image, draws the face mask of every face and the
// drawing layers on a transparent overlay, composes the overlay on the backdrop
// and encodes the result into w.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	mode, err := p.mode()
	if err != nil {
		return err
	}
	comp, blend, err := p.operators()
	if err != nil {
		return err
	}

	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("unable to decode the source image: %w", err)
	}

	faces, err := p.faces()
	if err != nil {
		return err
	}
	layers, err := p.layers()
	if err != nil {
		return err
	}

	overlay, err := p.Draw(src.Bounds().Size(), faces, mode, layers)
	if err != nil {
		return err
	}

	backdrop, err := p.backdrop(src)
	if err != nil {
		return err
	}
	bitmap := imop.NewBitmap(backdrop.Bounds())
	comp.Draw(bitmap, imaging.Clone(overlay.Image()), backdrop, blend)

	res := p.fit(bitmap.Img)
	if p.Store != nil {
		if err := p.publish(src, overlay, layers, res); err != nil {
			return err
		}
	}

	return encodeImg(w, res)
}

// Draw renders the faces and the drawing layers on a new transparent canvas of the given size.
func (p *Processor) Draw(size image.Point, faces []Landmarks, mode Mode, layers map[string]layer.Layer) (*canvas.Raster, error) {
	c := canvas.NewRaster(size.X, size.Y)

	for i, lms := range faces {
		if err := Render(c, lms, mode); err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
	}
	if err := layer.DrawAll(c, layers); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Processor) mode() (Mode, error) {
	if p.Mode == "" {
		return ModeLandmarks, nil
	}
	return ParseMode(string(p.Mode))
}

func (p *Processor) operators() (*imop.Composite, *imop.Blend, error) {
	comp := imop.InitOp()
	if p.Composite != "" {
		if err := comp.Set(p.Composite); err != nil {
			return nil, nil, err
		}
	}
	blend := imop.NewBlend()
	if p.Blend != "" {
		if err := blend.Set(p.Blend); err != nil {
			return nil, nil, err
		}
	}
	return comp, blend, nil
}

// backdrop returns the picture the overlay is composed on.
func (p *Processor) backdrop(src image.Image) (*image.NRGBA, error) {
	switch p.Backdrop {
	case "", BackdropImage:
		return imaging.Clone(src), nil
	case BackdropGray:
		return imaging.Grayscale(src), nil
	case BackdropBlur:
		sigma := p.BlurSigma
		if sigma <= 0 {
			sigma = defaultBlurSigma
		}
		return imaging.Blur(src, sigma), nil
	case BackdropNone:
		return image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy())), nil
	}
	return nil, fmt.Errorf("unsupported backdrop: %q", p.Backdrop)
}

// fit scales down the image to the maximum dimensions, keeping the aspect ratio.
// A zero maximum leaves the corresponding dimension unbounded.
func (p *Processor) fit(img *image.NRGBA) *image.NRGBA {
	if p.MaxWidth <= 0 && p.MaxHeight <= 0 {
		return img
	}
	mw, mh := p.MaxWidth, p.MaxHeight
	if mw <= 0 {
		mw = img.Bounds().Dx()
	}
	if mh <= 0 {
		mh = img.Bounds().Dy()
	}
	return imaging.Fit(img, mw, mh, imaging.Lanczos)
}

func (p *Processor) publish(src image.Image, c canvas.Context, layers map[string]layer.Layer, res image.Image) error {
	url, err := DataURL(res)
	if err != nil {
		return err
	}
	p.Store.SelectedImage.Set(src)
	p.Store.CurrentCanvas.Set(c)
	if layers != nil {
		p.Store.DrawingLayers.Set(layers)
	}
	p.Store.ResultImage.Set(url)

	return nil
}

func (p *Processor) faces() ([]Landmarks, error) {
	if p.Faces != nil {
		return p.Faces, nil
	}
	if p.LandmarksPath == "" {
		return nil, errors.New("no landmark data provided")
	}
	f, err := os.Open(p.LandmarksPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open the landmark file: %w", err)
	}
	defer closeFile(f)

	return DecodeLandmarks(f)
}

func (p *Processor) layers() (map[string]layer.Layer, error) {
	if p.Layers != nil || p.LayersPath == "" {
		return p.Layers, nil
	}
	f, err := os.Open(p.LayersPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open the layers file: %w", err)
	}
	defer closeFile(f)

	return layer.Decode(f)
}

func closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		log.Printf("could not close the opened file: %v", err)
	}
}
