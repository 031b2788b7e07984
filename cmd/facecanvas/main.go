package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/esimov/facecanvas"
	"github.com/esimov/facecanvas/imop"
	"github.com/esimov/facecanvas/utils"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌─┐┌─┐┌─┐┌┐┌┬  ┬┌─┐┌─┐
├┤ ├─┤│  ├┤ │  ├─┤│││└┐┌┘├─┤└─┐
└  ┴ ┴└─┘└─┘└─┘┴ ┴┘└┘ └┘ ┴ ┴└─┘

Face mesh annotation renderer.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image or directory")
	destination = flag.String("out", pipeName, "Destination image or directory")
	landmarks   = flag.String("landmarks", "", "Landmark file, or directory of landmark files in batch mode")
	layers      = flag.String("layers", "", "Drawing layers file")
	mode        = flag.String("mode", string(facecanvas.ModeLandmarks), "Drawing mode: "+join(facecanvas.Modes()))
	backdrop    = flag.String("backdrop", string(facecanvas.BackdropImage), "Backdrop: "+join(facecanvas.Backdrops()))
	composite   = flag.String("comp", imop.SrcOver, "Composite operation: "+strings.Join(imop.CompositeOps(), ", "))
	blend       = flag.String("blend", imop.Normal, "Blend mode: "+strings.Join(imop.BlendModes(), ", "))
	blurSigma   = flag.Float64("sigma", 4, "Blur backdrop strength")
	maxWidth    = flag.Int("width", 0, "Maximum width of the output image")
	maxHeight   = flag.Int("height", 0, "Maximum height of the output image")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	m, err := facecanvas.ParseMode(*mode)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid drawing mode: %v", utils.ErrorMessage), err)
	}
	if *landmarks == "" && *source != pipeName {
		if fi, err := os.Stat(*source); err == nil && !fi.IsDir() {
			flag.Usage()
			log.Fatal(utils.DecorateText("\nPlease provide the landmark file with the -landmarks flag!", utils.ErrorMessage))
		}
	}

	proc := &facecanvas.Processor{
		Mode:          m,
		LandmarksPath: *landmarks,
		LayersPath:    *layers,
		Backdrop:      facecanvas.Backdrop(*backdrop),
		Composite:     *composite,
		Blend:         *blend,
		BlurSigma:     *blurSigma,
		MaxWidth:      *maxWidth,
		MaxHeight:     *maxHeight,
		Spinner: utils.NewSpinner(
			utils.StatusText("◉ FACECANVAS", "is drawing the face mask...", utils.DefaultMessage),
			time.Millisecond*80,
		),
	}

	op := &facecanvas.Ops{
		Src:       *source,
		Dst:       *destination,
		Landmarks: *landmarks,
		PipeName:  pipeName,
		Workers:   *workers,
	}
	if err := proc.Execute(op); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError drawing the face mask: %s", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

func join[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
