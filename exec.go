package facecanvas

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/facecanvas/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// badge prefixes the status messages.
const badge = "◉ FACECANVAS"

// SourceExtensions are the image file extensions picked up in directory mode.
var SourceExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Ops describes the files an Execute call works on.
//
// Src and Dst are either files, the pipe name, or directories. In directory mode
// every image found under Src is processed into Dst and is paired with the landmark
// file of the same base name with a .json extension found in the Landmarks
// directory (or next to the image when Landmarks is empty).
type Ops struct {
	Src, Dst, PipeName string
	Landmarks          string
	Workers            int
}

// result holds the relevant information about the processing of a single image.
type result struct {
	path string
	err  error
}

// Execute runs the processor over the files described by op and reports
// the outcome of each one on stderr.
func (p *Processor) Execute(op *Ops) error {
	if p.Spinner == nil {
		p.Spinner = utils.NewSpinner(utils.StatusText(badge, "⇢ drawing the face mask...", utils.DefaultMessage), time.Millisecond*80)
	}

	var (
		fs  os.FileInfo
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if op.Src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(op.Src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalChan)
		close(signalChan)
	}()
	go func() {
		if _, ok := <-signalChan; ok {
			p.Spinner.RestoreCursor()
			os.Exit(1)
		}
	}()

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}

		// Limit the concurrently running workers to maxWorkers.
		workers := op.Workers
		if workers <= 0 || workers > maxWorkers {
			workers = runtime.NumCPU()
		}

		// Process recursively the image files from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		paths, errc := walkDir(done, op.Src, SourceExtensions)

		// A single spinner runs for the whole batch.
		p.Spinner.StopMsg = utils.StatusText(badge, "⇢ batch finished", utils.DefaultMessage)
		p.Spinner.Start()

		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(p, ch, done, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		var failed int
		for res := range ch {
			if res.err != nil {
				failed++
			}
			op.printOpStatus(res.path, res.err)
		}
		p.Spinner.Stop()
		if err := <-errc; err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d image(s) could not be processed", failed)
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		if op.Dst != op.PipeName && !isSupportedFormat(op.Dst) {
			return fmt.Errorf("%v file type not supported", filepath.Ext(op.Dst))
		}
		fp := *p
		if op.Landmarks != "" {
			fp.LandmarksPath = op.Landmarks
		}
		err := op.process(&fp, op.Src, op.Dst)
		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unsupported source: %s", op.Src)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// landmarksFor returns the landmark file paired with the source image.
func (op *Ops) landmarksFor(src string) string {
	dir := op.Landmarks
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, utils.Stem(src)+".json")
}

// consumer reads the path names from the paths channel and runs the processor against the source image.
// Every image gets its own copy of the processor, with the paired landmark file.
func (op *Ops) consumer(
	p *Processor,
	res chan<- result,
	done <-chan interface{},
	paths <-chan string,
) {
	for src := range paths {
		fp := *p
		fp.Faces = nil
		fp.Spinner = nil
		fp.LandmarksPath = op.landmarksFor(src)

		dst := filepath.Join(op.Dst, filepath.Base(src))
		err := op.process(&fp, src, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process calls the processor over the source image and returns the error in case exists.
func (op *Ops) process(p *Processor, in, out string) error {
	successMsg := fmt.Sprintf("%s %s",
		utils.StatusText(badge, "⇢", utils.DefaultMessage),
		utils.DecorateText("the face mask has been drawn successfully ✔", utils.SuccessMessage),
	)
	errorMsg := fmt.Sprintf("%s %s",
		utils.StatusText(badge, "drawing the face mask failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	stop := func(msg string) {
		if p.Spinner != nil {
			p.Spinner.StopMsg = msg
			// Stop the progress indicator.
			p.Spinner.Stop()
		}
	}
	if p.Spinner != nil {
		// Start the progress indicator.
		p.Spinner.Start()
	}

	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		stop(errorMsg)
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			closeFile(f)
		}
	}()

	err = p.Process(src, dst)
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		closeFile(f)
		if err != nil {
			// remove the generated image file in case of an error
			os.Remove(f.Name())
		}
	}

	if err != nil {
		stop(errorMsg)
	} else {
		stop(successMsg)
	}
	return err
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
	)
	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		if !utils.IsImage(in) {
			return nil, nil, fmt.Errorf("%s is not an image file", in)
		}
		f, err := os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
		}
		src = f
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			closeReader(src)
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			closeReader(src)
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
		dst = f
	}
	return src, dst, nil
}

func closeReader(r io.Reader) {
	if f, ok := r.(*os.File); ok && f != os.Stdin {
		closeFile(f)
	}
}

// printOpStatus displays the relevant information about the processing of an image.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s%s",
			utils.DecorateText("\nError drawing the face mask: "+filepath.Base(fname), utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nThe image has been saved as: %s %s\n\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() || !utils.HasExtension(f.Name(), srcExts) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
