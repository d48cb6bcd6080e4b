package screen

import "image/color"
import clr "github.com/lucasb-eyer/go-colorful"

// ParseColor reads a "#rrggbb" hex colour.
func ParseColor(s string) (color.RGBA, error) {
	c, err := clr.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return opaque(c), nil
}

// Gray returns the grey at the given level between 0 and 1.
func Gray(level float64) color.RGBA {
	return opaque(clr.Color{R: level, G: level, B: level}.Clamped())
}

func opaque(c clr.Color) color.RGBA {
	r, g, b := c.RGB255()
	return rgb(r, g, b)
}

type rgb24Color uint32

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
