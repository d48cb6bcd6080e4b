package screen

import (
	"image/color"
)

// Mono is the two colour palette of a noise field. The index of a pixel
// matches its netpbm bit: 0 is white, 1 is black.
var Mono = color.Palette{
	rgb24Color(0xFFFFFF),
	rgb24Color(0x000000),
}

const (
	White uint8 = 0
	Black uint8 = 1
)
