// Package pbm reads and writes netpbm bitmaps, in both the plain (P1) and
// the packed (P4) encodings.
package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/32bitkid/bitreader"
	"image"
	"image/color"
	"io"
	"strconv"
)

var ErrFormat = errors.New("pbm: invalid format")

// Palette is the palette of decoded images. A pixel's index is its bit
// value: 1 is black.
var Palette = color.Palette{color.White, color.Black}

const (
	plainMagic = "P1"
	rawMagic   = "P4"

	// MaxPixels bounds the raster a header may declare.
	MaxPixels = 1 << 28
)

// set reports whether the pixel at (x, y) is written as a 1.
func set(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 0x80
}

func writeHeader(w io.Writer, magic string, b image.Rectangle, comment string) error {
	if _, err := fmt.Fprintf(w, "%s\n", magic); err != nil {
		return err
	}
	if comment != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", comment); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d %d\n", b.Dx(), b.Dy())
	return err
}

// Encode writes img as a plain P1 bitmap: one text line per row holding a
// space separated 0 or 1 per pixel. Dark pixels are written as 1.
func Encode(w io.Writer, img image.Image, comment string) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	if err := writeHeader(bw, plainMagic, b, comment); err != nil {
		return err
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x > b.Min.X {
				bw.WriteByte(' ')
			}
			if set(img, x, y) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// EncodeRaw writes img as a packed P4 bitmap, eight pixels per byte with
// every row padded to a whole byte.
func EncodeRaw(w io.Writer, img image.Image, comment string) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	if err := writeHeader(bw, rawMagic, b, comment); err != nil {
		return err
	}

	row := make([]byte, (b.Dx()+7)/8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			if set(img, x, y) {
				i := x - b.Min.X
				row[i>>3] |= 0x80 >> uint(i&7)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode reads a P1 or P4 bitmap.
func Decode(r io.Reader) (*image.Paletted, error) {
	src := bufio.NewReader(r)

	magic, err := token(src)
	if err != nil {
		return nil, err
	}
	if magic != plainMagic && magic != rawMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrFormat, magic)
	}

	width, err := dimension(src)
	if err != nil {
		return nil, err
	}
	height, err := dimension(src)
	if err != nil {
		return nil, err
	}

	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrFormat, width, height)
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), Palette)
	if magic == plainMagic {
		err = decodePlain(src, img)
	} else {
		err = decodeRaw(src, img)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

func decodePlain(src *bufio.Reader, img *image.Paletted) error {
	for i := range img.Pix {
		c, err := skipSpace(src)
		if err != nil {
			return unexpected(err)
		}
		switch c {
		case '0':
			img.Pix[i] = 0
		case '1':
			img.Pix[i] = 1
		default:
			return fmt.Errorf("%w: unexpected %q in raster", ErrFormat, c)
		}
	}
	return nil
}

func decodeRaw(src io.Reader, img *image.Paletted) error {
	width, height := img.Rect.Dx(), img.Rect.Dy()
	pad := uint((8 - width%8) % 8)

	br := bitreader.NewReader(src)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bit, err := br.Read1()
			if err != nil {
				return unexpected(err)
			}
			if bit {
				img.Pix[y*img.Stride+x] = 1
			}
		}
		if pad > 0 && y < height-1 {
			if err := br.Skip(pad); err != nil {
				return unexpected(err)
			}
		}
	}
	return nil
}

// Count returns the number of pixels written as 1 and as 0.
func Count(img image.Image) (ones, zeros int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if set(img, x, y) {
				ones++
			} else {
				zeros++
			}
		}
	}
	return
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// skipSpace returns the next byte that is neither whitespace nor part of a
// comment.
func skipSpace(src *bufio.Reader) (byte, error) {
	for {
		c, err := src.ReadByte()
		if err != nil {
			return 0, err
		}
		switch {
		case c == '#':
			if _, err := src.ReadString('\n'); err != nil {
				return 0, err
			}
		case isSpace(c):
		default:
			return c, nil
		}
	}
}

// token reads a header token and the single whitespace byte ending it.
func token(src *bufio.Reader) (string, error) {
	c, err := skipSpace(src)
	if err != nil {
		return "", unexpected(err)
	}

	tok := []byte{c}
	for {
		c, err := src.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		} else if err != nil {
			return "", err
		}
		if isSpace(c) {
			return string(tok), nil
		}
		tok = append(tok, c)
	}
}

func dimension(src *bufio.Reader) (int, error) {
	tok, err := token(src)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: dimension %q", ErrFormat, tok)
	}
	return v, nil
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
