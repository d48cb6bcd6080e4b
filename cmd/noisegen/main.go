package main

// noisegen writes a netpbm bitmap of random black or white squares for use
// as a visual noise stimulus.

import (
	"flag"
	"fmt"
	"github.com/32bitkid/flicker/pbm"
	"github.com/32bitkid/flicker/screen"
	"github.com/go-stack/stack"
	"github.com/karlmutch/envflag"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"
	"io"
	"math/rand"
	"os"
	"path"
	"strconv"
	"time"
)

var (
	logger = logxi.New("noisegen")

	verbose = flag.Bool("v", false, "When enabled will print internal logging for this tool")
	seed    = flag.Int64("seed", 0, "Seed for the random noise, the clock is used when zero")
	raw     = flag.Bool("raw", false, "Write a packed P4 bitmap rather than the plain P1 text form")
)

const comment = "Created by the noisegen noise stimulus generator"

type config struct {
	output string
	width  int
	height int
	seed   int64
	raw    bool
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:", path.Base(os.Args[0]), "[options] OUTPUT_FILENAME WIDTH HEIGHT")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "On completion prints \"<n> black squares, <m> white squares\". Black squares are the")
	fmt.Fprintln(w, "pixels written as 1, following netpbm, so n counts the 1s and m counts the 0s.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
}

func usage() {
	printUsage(os.Stderr)
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

	cfg, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		flag.Usage()
		os.Exit(1)
	}
	cfg.seed = *seed
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	cfg.raw = *raw

	logger.Debug("generating noise", "file", cfg.output, "width", cfg.width, "height", cfg.height, "seed", cfg.seed)

	black, white, err := generate(cfg)
	if err != nil {
		logger.Fatal(err.Error())
	}

	fmt.Printf("%d black squares, %d white squares\n", black, white)
}

func parseArgs(args []string) (cfg config, err errors.Error) {
	if len(args) != 3 {
		return cfg, errors.New("expected exactly three arguments").With("count", len(args))
	}

	cfg.output = args[0]
	if cfg.width, err = dimension(args[1], "width"); err != nil {
		return cfg, err
	}
	if cfg.height, err = dimension(args[2], "height"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func dimension(s, name string) (int, errors.Error) {
	v, errGo := strconv.Atoi(s)
	if errGo != nil {
		return 0, errors.Wrap(errGo).With(name, s)
	}
	if v <= 0 {
		return 0, errors.New(name+" must be positive").With(name, v)
	}
	return v, nil
}

// generate writes the noise file and returns the number of black and white
// pixels written.
func generate(cfg config) (black, white int, err errors.Error) {
	img := screen.Noise(cfg.width, cfg.height, rand.New(rand.NewSource(cfg.seed)))

	file, errGo := os.Create(cfg.output)
	if errGo != nil {
		return 0, 0, errors.Wrap(errGo).With("file", cfg.output).With("stack", stack.Trace().TrimRuntime())
	}
	defer file.Close()

	encode := pbm.Encode
	if cfg.raw {
		encode = pbm.EncodeRaw
	}
	if errGo = encode(file, img, comment); errGo != nil {
		return 0, 0, errors.Wrap(errGo).With("file", cfg.output).With("stack", stack.Trace().TrimRuntime())
	}
	if errGo = file.Close(); errGo != nil {
		return 0, 0, errors.Wrap(errGo).With("file", cfg.output).With("stack", stack.Trace().TrimRuntime())
	}

	black, white = pbm.Count(img)
	return black, white, nil
}
