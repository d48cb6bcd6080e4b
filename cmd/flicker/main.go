package main

import (
	"flag"
	"fmt"
	"github.com/32bitkid/flicker"
	"github.com/32bitkid/flicker/frame"
	"github.com/32bitkid/flicker/playback"
	"github.com/32bitkid/flicker/screen"
	"github.com/go-stack/stack"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/karlmutch/envflag"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"
	"os"
	"path"
	"time"
)

var (
	logger = logxi.New("flicker")

	verbose    = flag.Bool("v", false, "When enabled will print internal logging for this tool")
	dir        = flag.String("dir", ".", "Directory holding the numbered frame files")
	ext        = flag.String("ext", flicker.DefaultExt, "File extension of the frame files")
	frames     = flag.Int("frames", 4, "Number of frames in the stimulus")
	width      = flag.Int("width", 512, "Width in pixels of every frame")
	height     = flag.Int("height", 512, "Height in pixels of every frame")
	mode       = flag.String("mode", playback.DefaultMode, "Display mode as WIDTHxHEIGHT[:DEPTH][@REFRESH]")
	fullscreen = flag.Bool("fullscreen", true, "Run full screen rather than in a window")
	header     = flag.String("header", "fixed", "How frame headers are skipped, 'fixed' skips 54 bytes, 'declared' uses the offset stored in the file")
	padded     = flag.Bool("padded", false, "Frame rows are padded to a multiple of 4 bytes")
	background = flag.String("background", "", "Background colour as #rrggbb, 50% grey when empty")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "flicker plays a sequence of numbered 24-bit bitmaps (1.bmp, 2.bmp, ...) as fast as the display allows.")
	fmt.Fprintln(os.Stderr, "Press q to quit and print the achieved frame rate.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {
	if !flag.Parsed() {
		envflag.Parse()
	}

	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	p, err := setup()
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer p.dispose()

	if errGo := ebiten.RunGame(p); errGo != nil && errGo != ebiten.Termination {
		logger.Fatal(errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime()).Error())
	}

	fmt.Println(p.state.Report(time.Now()))
}

// setup loads every frame and prepares the display. Any failure aborts
// startup before the display loop runs.
func setup() (*player, error) {
	m, errGo := playback.ParseMode(*mode)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	bg := screen.Gray(0.5)
	if *background != "" {
		if bg, errGo = screen.ParseColor(*background); errGo != nil {
			return nil, errors.Wrap(errGo).With("background", *background).With("stack", stack.Trace().TrimRuntime())
		}
	}

	headerMode, errGo := frame.ParseHeaderMode(*header)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	root := flicker.NewRoot(*dir)
	root.Ext = *ext
	root.Options = frame.Options{Header: headerMode, RowPadding: *padded}

	start := time.Now()
	set, err := root.LoadFrameSet(*frames, *width, *height)
	if err != nil {
		return nil, err
	}
	logger.Debug("frames loaded", "count", len(set), "elapsed", time.Since(start))

	// Depth and refresh cannot be requested from the display loop, they
	// are only reported.
	logger.Debug("display mode", "mode", m.String(), "fullscreen", *fullscreen)

	ebiten.SetWindowTitle("flicker")
	ebiten.SetWindowSize(m.Width, m.Height)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return newPlayer(set, m, bg), nil
}
