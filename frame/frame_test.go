package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"golang.org/x/image/bmp"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// bitmapHeader returns a header of n bytes carrying the BM signature and a
// pixel offset of n.
func bitmapHeader(n int) []byte {
	h := make([]byte, n)
	h[0], h[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(h[10:14], uint32(n))
	return h
}

func source(header []byte, pixels ...byte) *bytes.Reader {
	return bytes.NewReader(append(append([]byte{}, header...), pixels...))
}

func TestLoadSwapsChannels(t *testing.T) {
	r := source(bitmapHeader(HeaderSize),
		10, 20, 30, 40, 50, 60,
		70, 80, 90, 100, 110, 120,
	)

	buf, err := Load(r, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	expected := []byte{
		30, 20, 10, 255, 60, 50, 40, 255,
		90, 80, 70, 255, 120, 110, 100, 255,
	}
	if !bytes.Equal(buf.Pix, expected) {
		t.Fatalf("expected %v, got %v", expected, buf.Pix)
	}
	if buf.Width != 2 || buf.Height != 2 {
		t.Errorf("unexpected dimensions %dx%d", buf.Width, buf.Height)
	}
}

func TestLoadLengthAndAlpha(t *testing.T) {
	const w, h = 7, 5
	pixels := make([]byte, w*h*SourceBytesPerPixel)
	for i := range pixels {
		pixels[i] = byte(i * 7)
	}

	buf, err := Load(source(bitmapHeader(HeaderSize), pixels...), w, h)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf.Pix) != w*h*BytesPerPixel {
		t.Fatalf("expected %d bytes, got %d", w*h*BytesPerPixel, len(buf.Pix))
	}
	for i := 0; i < w*h; i++ {
		s, d := i*3, i*4
		if a := buf.Pix[d+3]; a != 255 {
			t.Fatalf("pixel %d: alpha %d", i, a)
		}
		if buf.Pix[d] != pixels[s+2] || buf.Pix[d+1] != pixels[s+1] || buf.Pix[d+2] != pixels[s] {
			t.Fatalf("pixel %d: got %v from %v", i, buf.Pix[d:d+4], pixels[s:s+3])
		}
	}
}

func TestLoadTruncated(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", bitmapHeader(HeaderSize)[:20]},
		{"header only", bitmapHeader(HeaderSize)},
		{"short pixels", append(bitmapHeader(HeaderSize), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
	}

	for _, tc := range cases {
		buf, err := Load(bytes.NewReader(tc.data), 2, 2)
		if !errors.Is(err, ErrTruncatedSource) {
			t.Errorf("%s: expected ErrTruncatedSource, got %v", tc.name, err)
		}
		if buf.Pix != nil {
			t.Errorf("%s: partial buffer returned", tc.name)
		}
	}
}

func TestLoadInvalidDimensions(t *testing.T) {
	for _, dim := range [][2]int{{0, 1}, {1, 0}, {-2, 2}} {
		_, err := Load(source(bitmapHeader(HeaderSize)), dim[0], dim[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%v: expected ErrInvalidDimensions, got %v", dim, err)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	buf, err := Open(filepath.Join(t.TempDir(), "1.bmp"), 2, 2)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
	if buf.Pix != nil {
		t.Fatal("partial buffer returned")
	}
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "1.bmp")
	data := append(bitmapHeader(HeaderSize), 1, 2, 3)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := Open(fn, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Pix, []byte{3, 2, 1, 255}) {
		t.Fatalf("unexpected pixels %v", buf.Pix)
	}
}

func TestDeclaredHeader(t *testing.T) {
	header := bitmapHeader(HeaderSize + 16)
	pixels := []byte{1, 2, 3, 4, 5, 6}

	buf, err := Load(source(header, pixels...), 2, 1, Options{Header: HeaderDeclared})
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{3, 2, 1, 255, 6, 5, 4, 255}
	if !bytes.Equal(buf.Pix, expected) {
		t.Fatalf("expected %v, got %v", expected, buf.Pix)
	}

	// The fixed skip lands inside the longer header.
	shifted, err := Load(source(header, pixels...), 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(shifted.Pix, expected) {
		t.Fatal("fixed header skip should not find the declared pixel array")
	}
}

func TestDeclaredHeaderInvalid(t *testing.T) {
	bad := bitmapHeader(HeaderSize)
	bad[0] = 'X'
	if _, err := Load(source(bad, 1, 2, 3), 1, 1, Options{Header: HeaderDeclared}); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("expected ErrInvalidHeader for signature, got %v", err)
	}

	inside := bitmapHeader(HeaderSize)
	binary.LittleEndian.PutUint32(inside[10:14], 4)
	if _, err := Load(source(inside, 1, 2, 3), 1, 1, Options{Header: HeaderDeclared}); !errors.Is(err, ErrInvalidHeader) {
		t.Errorf("expected ErrInvalidHeader for offset, got %v", err)
	}
}

func TestRowPadding(t *testing.T) {
	// 2 pixels = 6 bytes per row, padded to 8.
	r := source(bitmapHeader(HeaderSize),
		1, 2, 3, 4, 5, 6, 0xEE, 0xEE,
		7, 8, 9, 10, 11, 12,
	)

	buf, err := Load(r, 2, 2, Options{RowPadding: true})
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		3, 2, 1, 255, 6, 5, 4, 255,
		9, 8, 7, 255, 12, 11, 10, 255,
	}
	if !bytes.Equal(buf.Pix, expected) {
		t.Fatalf("expected %v, got %v", expected, buf.Pix)
	}
}

func TestLoadEncodedBitmap(t *testing.T) {
	const w, h = 4, 3
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: uint8(x + y*10), A: 255})
		}
	}

	var encoded bytes.Buffer
	if err := bmp.Encode(&encoded, src); err != nil {
		t.Fatal(err)
	}

	for _, mode := range []HeaderMode{HeaderFixed, HeaderDeclared} {
		buf, err := Load(bytes.NewReader(encoded.Bytes()), w, h, Options{Header: mode, RowPadding: true})
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}

		// Rows come back in file order, bottom row first.
		img := buf.RGBA()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				got := img.RGBAAt(x, y)
				want := src.RGBAAt(x, h-1-y)
				if got != want {
					t.Fatalf("%s: (%d,%d) expected %v, got %v", mode, x, y, want, got)
				}
			}
		}
	}
}

func TestParseHeaderMode(t *testing.T) {
	for s, want := range map[string]HeaderMode{"": HeaderFixed, "fixed": HeaderFixed, "declared": HeaderDeclared} {
		got, err := ParseHeaderMode(s)
		if err != nil || got != want {
			t.Errorf("%q: expected %s, got %s (%v)", s, want, got, err)
		}
	}
	if _, err := ParseHeaderMode("auto"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}
