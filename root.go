// Package flicker loads numbered bitmap frames for a full-screen stimulus
// player.
//
// A stimulus is a directory of 24-bit bitmap files named by a 1-based
// sequence number ("1.bmp", "2.bmp", ...). Every frame is decoded once at
// startup into an RGBA pixel buffer and handed to the display loop, which
// keeps only the uploaded textures.

package flicker

import (
	"github.com/32bitkid/flicker/frame"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"
)

var logger = logxi.New("flicker")

const DefaultExt = "bmp"

// Root is a reference to the directory holding a stimulus.
type Root struct {
	Path    string
	Ext     string
	Options frame.Options
}

func NewRoot(path string) Root {
	return Root{
		Path: path,
		Ext:  DefaultExt,
	}
}

// FrameSet holds the pixel buffers of a stimulus in display order; element
// 0 holds the frame from source index 1.
type FrameSet []frame.PixelBuffer

// LoadFrameSet loads sources 1 through count, in order. The first failure
// aborts the load and no partial set is returned; a failed frame is
// reported as a *LoadError.
func (root *Root) LoadFrameSet(count, width, height int) (FrameSet, error) {
	if count <= 0 {
		return nil, errors.New("no frames requested").With("count", count).With("stack", stack.Trace().TrimRuntime())
	}

	set := make(FrameSet, 0, count)
	for index := 1; index <= count; index++ {
		buf, err := root.Load(index, width, height)
		if err != nil {
			return nil, err
		}
		set = append(set, buf)
	}

	return set, nil
}

// Load decodes the frame with the given 1-based index.
func (root *Root) Load(index, width, height int) (frame.PixelBuffer, error) {
	src, err := root.Source(index)
	if err != nil {
		return frame.PixelBuffer{}, err
	}
	return src.Load(width, height)
}
