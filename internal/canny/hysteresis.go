package canny

import (
	"fmt"
	"math"
)

// Thresholds are the adaptive hysteresis levels derived from a suppressed grid.
type Thresholds struct {
	// Low admits weak pixels connected to a strong one: mean + 1σ.
	Low uint8 `json:"low"`
	// High seeds strong pixels: mean + 2σ.
	High uint8 `json:"high"`

	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// AdaptiveThresholds computes the mean and population standard deviation of
// every sample in edges and derives Low = μ+σ and High = μ+2σ.
//
// Sums are accumulated as integers; only the final division is floating
// point. Both levels are truncated into the 8-bit range and are at least 1,
// so a zero sample never counts as an edge. An empty grid returns
// ErrNumericDegeneracy.
func AdaptiveThresholds(edges *Grid) (Thresholds, error) {
	if err := edges.Validate(); err != nil {
		return Thresholds{}, fmt.Errorf("thresholds: %w", err)
	}
	n := edges.Len()
	if n == 0 {
		return Thresholds{}, fmt.Errorf("statistics over %dx%d grid: %w",
			edges.Width, edges.Height, ErrNumericDegeneracy)
	}

	var sum, sumSq uint64
	for _, v := range edges.Pix {
		sum += uint64(v)
		sumSq += uint64(v) * uint64(v)
	}
	mean := float64(sum) / float64(n)
	variance := float64(sumSq)/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	sd := math.Sqrt(variance)

	return Thresholds{
		Low:    level8(mean + sd),
		High:   level8(mean + 2*sd),
		Mean:   mean,
		StdDev: sd,
	}, nil
}

func level8(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v < 1:
		return 1
	default:
		return uint8(v)
	}
}

// TrackEdges applies hysteresis to a suppressed grid in place.
//
// Pixels are scanned in raster order. A pixel already at 255 counts as
// finalized: it stays an edge but neither seeds nor carries the expansion.
// Every other pixel >= High is marked and its 8-connected neighbours >= Low
// that are not yet finalized are marked transitively. Expansion uses an
// explicit stack, so memory rather than call depth bounds the longest
// connected chain, and each pixel is marked at most once. Finally finalized
// pixels become 255 and everything else 0.
//
// Running TrackEdges on its own output leaves the grid unchanged.
func TrackEdges(edges *Grid) error {
	t, err := AdaptiveThresholds(edges)
	if err != nil {
		return err
	}

	w, h := edges.Width, edges.Height
	marked := make([]bool, len(edges.Pix))
	for i, v := range edges.Pix {
		marked[i] = v == 255
	}
	var stack []int

	for i, v := range edges.Pix {
		if marked[i] || v < t.High {
			continue
		}
		marked[i] = true
		stack = append(stack, i)

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			px, py := p%w, p/w

			for dy := -1; dy <= 1; dy++ {
				ny := py + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := px + dx
					if nx < 0 || nx >= w {
						continue
					}
					j := ny*w + nx
					if marked[j] || edges.Pix[j] < t.Low {
						continue
					}
					marked[j] = true
					stack = append(stack, j)
				}
			}
		}
	}

	retained := 0
	for i := range edges.Pix {
		if marked[i] {
			edges.Pix[i] = 255
			retained++
		} else {
			edges.Pix[i] = 0
		}
	}

	Logger().Debug("hysteresis applied",
		"low", t.Low, "high", t.High,
		"mean", t.Mean, "stddev", t.StdDev,
		"retained", retained)
	return nil
}
