package flicker

import (
	"fmt"
	"github.com/32bitkid/flicker/frame"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"path/filepath"
)

// Source is a numbered frame file.
type Source interface {
	Index() int
	Path() string

	Load(width, height int) (frame.PixelBuffer, error)
}

// LoadError reports a frame that failed to load. The frame error kind, such
// as frame.ErrSourceNotFound or frame.ErrTruncatedSource, stays reachable
// through errors.Is.
type LoadError struct {
	Index int
	File  string
	Err   error

	kv errors.Error
}

func (e *LoadError) Error() string { return e.kv.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

type diskSource struct {
	index   int
	path    string
	options frame.Options
}

func (root *Root) Source(index int) (Source, errors.Error) {
	if index < 1 {
		return nil, errors.New("frame index must be positive").With("index", index).With("stack", stack.Trace().TrimRuntime())
	}

	ext := root.Ext
	if ext == "" {
		ext = DefaultExt
	}

	return &diskSource{
		index:   index,
		path:    filepath.Join(root.Path, fmt.Sprintf("%d.%s", index, ext)),
		options: root.Options,
	}, nil
}

func (src *diskSource) Index() int   { return src.index }
func (src *diskSource) Path() string { return src.path }

func (src *diskSource) Load(width, height int) (frame.PixelBuffer, error) {
	buf, errGo := frame.Open(src.path, width, height, src.options)
	if errGo != nil {
		return frame.PixelBuffer{}, &LoadError{
			Index: src.index,
			File:  src.path,
			Err:   errGo,
			kv:    errors.Wrap(errGo).With("index", src.index).With("file", src.path).With("stack", stack.Trace().TrimRuntime()),
		}
	}

	logger.Debug("frame loaded", "index", src.index, "file", src.path, "bytes", len(buf.Pix))
	return buf, nil
}
