package screen

import (
	"image"
	"math/rand"
)

// Noise returns a width x height field in which every pixel is
// independently White or Black with equal probability.
func Noise(width, height int, rng *rand.Rand) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, width, height), Mono)
	for i := range img.Pix {
		if rng.Float64() < 0.5 {
			img.Pix[i] = Black
		} else {
			img.Pix[i] = White
		}
	}
	return img
}
