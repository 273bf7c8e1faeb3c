package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Denoise applies a Gaussian blur of the given radius.
//
// The gradient stage assumes noise was removed beforehand; without it every
// speckle becomes a local maximum. A radius <= 0 returns img unchanged.
func Denoise(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
