package canny

import (
	"math/rand"
	"testing"
)

// gridFromRows builds a grid from literal rows; all rows must have equal length.
func gridFromRows(t *testing.T, rows [][]uint8) *Grid {
	t.Helper()
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width {
			t.Fatalf("row %d has %d values, want %d", y, len(row), g.Width)
		}
		copy(g.Pix[y*g.Width:], row)
	}
	return g
}

// noiseGrid returns a reproducible grid of random intensities.
func noiseGrid(width, height int, seed int64) *Grid {
	r := rand.New(rand.NewSource(seed))
	g := NewGrid(width, height)
	for i := range g.Pix {
		g.Pix[i] = uint8(r.Intn(256))
	}
	return g
}

// blocksGrid returns a piecewise-constant image with a few rectangles, which
// produces long connected edges rather than noise.
func blocksGrid(width, height int) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(30)
			if x > width/4 && x < width*3/4 && y > height/4 && y < height*3/4 {
				v = 200
			}
			if (x-width/2)*(x-width/2)+(y-height/2)*(y-height/2) < width*height/64 {
				v = 90
			}
			g.Set(x, y, v)
		}
	}
	return g
}

func rotate180(g *Grid) *Grid {
	r := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r.Set(g.Width-1-x, g.Height-1-y, g.At(x, y))
		}
	}
	return r
}
