package canny

import (
	"fmt"
	"image"
)

// Grid is a W×H matrix of 8-bit samples stored row-major.
//
// The same type carries the intensity input, the gradient magnitude and the
// edge map. Pix[y*Width+x] holds the sample at (x, y).
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid allocates a zeroed grid. Negative dimensions allocate nothing and
// produce a grid that Validate rejects.
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	if width >= 0 && height >= 0 {
		g.Pix = make([]uint8, width*height)
	}
	return g
}

// GridFromGray copies an *image.Gray into a grid. The image bounds are
// translated so that the grid origin is the image's Min point.
func GridFromGray(img *image.Gray) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(g.Pix[y*g.Width:(y+1)*g.Width], img.Pix[off:off+g.Width])
	}
	return g
}

// ToGray returns the grid as an *image.Gray anchored at (0,0).
func (g *Grid) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	copy(img.Pix, g.Pix)
	return img
}

// At returns the sample at (x, y). Coordinates must lie inside the grid.
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set stores v at (x, y). Coordinates must lie inside the grid.
func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Len returns the number of samples, Width*Height.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pix: make([]uint8, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Validate reports an ErrPrecondition for a nil grid, negative dimensions or
// a pixel buffer whose length does not match Width*Height. An empty grid is
// structurally valid; stages that cannot work on one reject it themselves.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("nil grid: %w", ErrPrecondition)
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("negative grid dimensions %dx%d: %w", g.Width, g.Height, ErrPrecondition)
	}
	if len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("grid %dx%d has %d samples: %w", g.Width, g.Height, len(g.Pix), ErrPrecondition)
	}
	return nil
}

// DirectionGrid holds gradient angles in degrees, co-indexed with a magnitude Grid.
// Values lie in (-180, 180]; border entries are 0.
type DirectionGrid struct {
	Width  int
	Height int
	Deg    []float64
}

// NewDirectionGrid allocates a zeroed direction grid. Like NewGrid, negative
// dimensions yield a grid that Validate rejects.
func NewDirectionGrid(width, height int) *DirectionGrid {
	d := &DirectionGrid{Width: width, Height: height}
	if width >= 0 && height >= 0 {
		d.Deg = make([]float64, width*height)
	}
	return d
}

// At returns the angle at (x, y).
func (d *DirectionGrid) At(x, y int) float64 {
	return d.Deg[y*d.Width+x]
}

// Set stores deg at (x, y).
func (d *DirectionGrid) Set(x, y int, deg float64) {
	d.Deg[y*d.Width+x] = deg
}

// Validate mirrors Grid.Validate.
func (d *DirectionGrid) Validate() error {
	if d == nil {
		return fmt.Errorf("nil direction grid: %w", ErrPrecondition)
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("negative direction grid dimensions %dx%d: %w", d.Width, d.Height, ErrPrecondition)
	}
	if len(d.Deg) != d.Width*d.Height {
		return fmt.Errorf("direction grid %dx%d has %d samples: %w", d.Width, d.Height, len(d.Deg), ErrPrecondition)
	}
	return nil
}
