package canny

import (
	"fmt"
	"math"
	"strings"
)

// Operator selects the derivative kernel pair used by the gradient stage.
type Operator int

const (
	// OperatorSobel uses the 3x3 Sobel kernels. This is the default.
	OperatorSobel Operator = iota
	// OperatorScharr uses the 3x3 Scharr kernels, which weight the centre
	// row more heavily and saturate the 8-bit magnitude sooner.
	OperatorScharr
)

func (o Operator) String() string {
	switch o {
	case OperatorSobel:
		return "sobel"
	case OperatorScharr:
		return "scharr"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ParseOperator accepts "sobel" or "scharr", case-insensitively. The empty
// string selects Sobel.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sobel":
		return OperatorSobel, nil
	case "scharr":
		return OperatorScharr, nil
	default:
		return 0, fmt.Errorf("unknown operator %q: %w", s, ErrPrecondition)
	}
}

// kernelPair holds the x and y derivative kernels, indexed [dy+1][dx+1].
// The y kernel is the transpose of the x kernel, so Gy grows toward the
// bottom of the raster.
type kernelPair struct {
	x [3][3]int
	y [3][3]int
}

var (
	sobelKernels = kernelPair{
		x: [3][3]int{
			{-1, 0, 1},
			{-2, 0, 2},
			{-1, 0, 1},
		},
		y: [3][3]int{
			{-1, -2, -1},
			{0, 0, 0},
			{1, 2, 1},
		},
	}
	scharrKernels = kernelPair{
		x: [3][3]int{
			{-3, 0, 3},
			{-10, 0, 10},
			{-3, 0, 3},
		},
		y: [3][3]int{
			{-3, -10, -3},
			{0, 0, 0},
			{3, 10, 3},
		},
	}
)

func (o Operator) kernels() (*kernelPair, error) {
	switch o {
	case OperatorSobel:
		return &sobelKernels, nil
	case OperatorScharr:
		return &scharrKernels, nil
	default:
		return nil, fmt.Errorf("unknown operator %v: %w", o, ErrPrecondition)
	}
}

// apply convolves the 3x3 neighbourhood centred on (x, y). The caller
// guarantees (x, y) is an interior pixel.
func (k *kernelPair) apply(g *Grid, x, y int) (gx, gy int) {
	for dy := -1; dy <= 1; dy++ {
		row := (y + dy) * g.Width
		for dx := -1; dx <= 1; dx++ {
			v := int(g.Pix[row+x+dx])
			gx += k.x[dy+1][dx+1] * v
			gy += k.y[dy+1][dx+1] * v
		}
	}
	return gx, gy
}

// ComputeGradient estimates the gradient of every interior pixel of intensity.
//
// Returns:
//   - magnitude: round(sqrt(Gx² + Gy²)) saturated at 255
//   - direction: atan2(Gy, Gx) in degrees, in (-180, 180]
//
// Border pixels (x ∈ {0, W-1} or y ∈ {0, H-1}) keep magnitude 0 and
// direction 0 for any input. An empty or malformed grid is rejected with
// ErrPrecondition.
func ComputeGradient(intensity *Grid, op Operator) (*Grid, *DirectionGrid, error) {
	return computeGradient(intensity, op, 1)
}

func computeGradient(intensity *Grid, op Operator, workers int) (*Grid, *DirectionGrid, error) {
	if err := intensity.Validate(); err != nil {
		return nil, nil, fmt.Errorf("gradient: %w", err)
	}
	if intensity.Len() == 0 {
		return nil, nil, fmt.Errorf("gradient of empty %dx%d grid: %w",
			intensity.Width, intensity.Height, ErrPrecondition)
	}
	k, err := op.kernels()
	if err != nil {
		return nil, nil, err
	}

	w, h := intensity.Width, intensity.Height
	magnitude := NewGrid(w, h)
	direction := NewDirectionGrid(w, h)

	err = forRows(1, h-1, workers, func(y int) error {
		for x := 1; x < w-1; x++ {
			gx, gy := k.apply(intensity, x, y)
			i := y*w + x
			magnitude.Pix[i] = magnitude8(gx, gy)
			direction.Deg[i] = degrees(math.Atan2(float64(gy), float64(gx)))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	Logger().Debug("gradient computed", "width", w, "height", h, "operator", op.String())
	return magnitude, direction, nil
}

func magnitude8(gx, gy int) uint8 {
	m := math.Round(math.Sqrt(float64(gx*gx + gy*gy)))
	if m > 255 {
		return 255
	}
	return uint8(m)
}

// degrees converts an atan2 result to degrees, pinning the upper end so
// rounding never pushes π past 180.
func degrees(rad float64) float64 {
	d := rad * 180 / math.Pi
	if d > 180 {
		return 180
	}
	return d
}
