package frame

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the header length assumed by HeaderFixed: a 14 byte
// BITMAPFILEHEADER followed by a 40 byte BITMAPINFOHEADER. The header is
// never checked against it, so a file with a longer header decodes shifted.
const HeaderSize = 0x36

const fileHeaderSize = 14

type HeaderSkipFn = func(r io.Reader) error

type HeaderSkipperLUT map[HeaderMode]HeaderSkipFn

// fileHeader is the BITMAPFILEHEADER that opens every BMP file.
type fileHeader struct {
	Magic   [2]byte
	Size    uint32
	_       uint16
	_       uint16
	OffBits uint32
}

func SkipFixed(r io.Reader) error {
	return discard(r, HeaderSize, "header")
}

// SkipDeclared reads the file header and skips to the pixel array offset it
// declares, so headers other than the 54 byte BITMAPINFOHEADER variant
// decode in place.
func SkipDeclared(r io.Reader) error {
	var h fileHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return truncated(err, "file header")
	}
	if h.Magic != [2]byte{'B', 'M'} {
		return fmt.Errorf("%w: signature %q is not BM", ErrInvalidHeader, h.Magic[:])
	}
	if h.OffBits < fileHeaderSize {
		return fmt.Errorf("%w: pixel offset %d lies inside the file header", ErrInvalidHeader, h.OffBits)
	}
	return discard(r, int64(h.OffBits)-fileHeaderSize, "header")
}

var HeaderSkippers = HeaderSkipperLUT{
	HeaderFixed:    SkipFixed,
	HeaderDeclared: SkipDeclared,
}

func discard(r io.Reader, n int64, what string) error {
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return truncated(err, what)
	}
	return nil
}

func truncated(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: short %s", ErrTruncatedSource, what)
	}
	return err
}
