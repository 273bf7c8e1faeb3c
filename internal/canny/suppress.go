package canny

import "fmt"

// Suppress thins a gradient field to ridges one pixel wide.
//
// Each interior pixel is compared with its two neighbours along the gradient
// direction (see Classify). It keeps its magnitude when it is >= both and is
// zeroed otherwise. Ties are retained, so a flat maximum two pixels wide
// survives on both sides. The returned grid is a new EdgeGrid; the inputs are
// not modified and no output value exceeds its input.
func Suppress(magnitude *Grid, direction *DirectionGrid) (*Grid, error) {
	return suppress(magnitude, direction, 1)
}

func suppress(magnitude *Grid, direction *DirectionGrid, workers int) (*Grid, error) {
	if err := magnitude.Validate(); err != nil {
		return nil, fmt.Errorf("suppress: %w", err)
	}
	if err := direction.Validate(); err != nil {
		return nil, fmt.Errorf("suppress: %w", err)
	}
	if magnitude.Width != direction.Width || magnitude.Height != direction.Height {
		return nil, fmt.Errorf("magnitude %dx%d and direction %dx%d differ: %w",
			magnitude.Width, magnitude.Height, direction.Width, direction.Height, ErrPrecondition)
	}
	if magnitude.Len() == 0 {
		return nil, fmt.Errorf("suppress empty grid: %w", ErrPrecondition)
	}

	w, h := magnitude.Width, magnitude.Height
	edges := NewGrid(w, h)

	err := forRows(1, h-1, workers, func(y int) error {
		for x := 1; x < w-1; x++ {
			bin, err := Classify(direction.At(x, y))
			if err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			dx1, dy1, dx2, dy2 := bin.neighbours()
			m := magnitude.At(x, y)
			if m >= magnitude.At(x+dx1, y+dy1) && m >= magnitude.At(x+dx2, y+dy2) {
				edges.Set(x, y, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return edges, nil
}
