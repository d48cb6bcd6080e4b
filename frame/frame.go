// Package frame decodes 24-bit uncompressed bitmap files into RGBA pixel
// buffers ready to be uploaded as textures.
//
// The assumed source format is 3 bytes per pixel stored B, G, R, rows
// bottom-to-top, no compression and a HeaderSize byte header. Width and
// height are supplied by the caller and never read from the file. Rows are
// kept in file order, which matches a texture whose origin is the bottom
// left corner.
package frame

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
)

const (
	BytesPerPixel       = 4
	SourceBytesPerPixel = 3

	// Opaque is written to every alpha slot; the source carries no
	// transparency.
	Opaque = 0xFF
)

type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// RGBA wraps the buffer as an image without copying it.
func (b PixelBuffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

type Options struct {
	Header HeaderMode

	// RowPadding honours the BMP rule that every row is padded to a
	// multiple of 4 bytes. Off by default: rows are read back to back.
	RowPadding bool
}

// Load reads one frame from r. The header is skipped according to the
// options, then width*height pixels are read and reordered from B,G,R to
// R,G,B,A. A source holding fewer bytes than required fails with
// ErrTruncatedSource and no buffer.
func Load(r io.Reader, width, height int, options ...Options) (PixelBuffer, error) {
	var opts Options
	for _, o := range options {
		if o.Header != HeaderFixed {
			opts.Header = o.Header
		}
		if o.RowPadding {
			opts.RowPadding = true
		}
	}

	if width <= 0 || height <= 0 {
		return PixelBuffer{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	skip, ok := HeaderSkippers[opts.Header]
	if !ok {
		return PixelBuffer{}, fmt.Errorf("unhandled header mode: %s", opts.Header)
	}

	src := bufio.NewReader(r)
	if err := skip(src); err != nil {
		return PixelBuffer{}, err
	}

	rowBytes := width * SourceBytesPerPixel
	padding := 0
	if opts.RowPadding {
		padding = (4 - rowBytes%4) % 4
	}

	row := make([]uint8, rowBytes)
	pix := make([]uint8, width*height*BytesPerPixel)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(src, row); err != nil {
			return PixelBuffer{}, truncated(err, fmt.Sprintf("row %d", y))
		}

		dst := pix[y*width*BytesPerPixel : (y+1)*width*BytesPerPixel]
		for s, d := 0, 0; s < rowBytes; s, d = s+SourceBytesPerPixel, d+BytesPerPixel {
			dst[d+0] = row[s+2]
			dst[d+1] = row[s+1]
			dst[d+2] = row[s+0]
			dst[d+3] = Opaque
		}

		// Padding after the last row is tolerated when missing.
		if padding > 0 && y < height-1 {
			if err := discard(src, int64(padding), fmt.Sprintf("row %d padding", y)); err != nil {
				return PixelBuffer{}, err
			}
		}
	}

	return PixelBuffer{Width: width, Height: height, Pix: pix}, nil
}

// Open loads the frame stored in the named file. The file is closed before
// Open returns. A file that cannot be opened or read fails with
// ErrSourceNotFound.
func Open(name string, width, height int, options ...Options) (PixelBuffer, error) {
	file, err := os.Open(name)
	if err != nil {
		return PixelBuffer{}, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	defer file.Close()

	buf, err := Load(file, width, height, options...)
	if err != nil {
		if !isKnown(err) {
			err = fmt.Errorf("%w: %s: %w", ErrSourceNotFound, name, err)
		}
		return PixelBuffer{}, err
	}
	return buf, nil
}
