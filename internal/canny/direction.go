package canny

import (
	"fmt"
	"math"
)

// Bin is one of the four principal gradient orientations. Each bin spans a
// 45° sector centred on its axis; opposite directions share a bin.
type Bin uint8

const (
	// BinHorizontal covers gradients near 0° and 180° (East-West).
	BinHorizontal Bin = iota
	// BinRising covers gradients near 45° and -135° (toward x+1, y+1).
	BinRising
	// BinVertical covers gradients near 90° and -90° (North-South).
	BinVertical
	// BinFalling covers gradients near 135° and -45° (toward x-1, y+1).
	BinFalling
)

func (b Bin) String() string {
	switch b {
	case BinHorizontal:
		return "horizontal"
	case BinRising:
		return "rising"
	case BinVertical:
		return "vertical"
	case BinFalling:
		return "falling"
	default:
		return fmt.Sprintf("Bin(%d)", uint8(b))
	}
}

// Classify discretizes an angle in degrees into its orientation bin.
//
// Negative angles are folded into [0, 180) by adding 180, then:
//
//	[0, 22.5) ∪ [157.5, 180]  -> BinHorizontal
//	[22.5, 67.5)              -> BinRising
//	[67.5, 112.5)             -> BinVertical
//	[112.5, 157.5)            -> BinFalling
//
// Angles outside [-180, 180], and NaN, return ErrPrecondition.
func Classify(angle float64) (Bin, error) {
	if math.IsNaN(angle) || angle < -180 || angle > 180 {
		return 0, fmt.Errorf("angle %v outside [-180, 180]: %w", angle, ErrPrecondition)
	}
	if angle < 0 {
		angle += 180
	}
	switch {
	case angle < 22.5 || angle >= 157.5:
		return BinHorizontal, nil
	case angle < 67.5:
		return BinRising, nil
	case angle < 112.5:
		return BinVertical, nil
	default:
		return BinFalling, nil
	}
}

// neighbours returns the offsets of the two pixels lying along the gradient
// direction of bin b.
func (b Bin) neighbours() (dx1, dy1, dx2, dy2 int) {
	switch b {
	case BinRising:
		return -1, -1, 1, 1
	case BinVertical:
		return 0, -1, 0, 1
	case BinFalling:
		return 1, -1, -1, 1
	default:
		return -1, 0, 1, 0
	}
}
