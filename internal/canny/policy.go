package canny

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Method selects how a color image becomes a gradient field.
type Method int

const (
	// MethodGrayscale converts to luminance first, then differentiates.
	MethodGrayscale Method = 0
	// MethodColor differentiates each channel and combines them.
	// It is declared but not implemented: selecting it fails with ErrUnsupportedMode.
	MethodColor Method = 1
)

func (m Method) String() string {
	switch m {
	case MethodGrayscale:
		return "grayscale"
	case MethodColor:
		return "color"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the numeric flag values "0"/"1" as well as
// "gray", "grayscale", "color" and "colour".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "gray", "grey", "grayscale", "greyscale":
		return MethodGrayscale, nil
	case "1", "color", "colour":
		return MethodColor, nil
	default:
		return 0, fmt.Errorf("unknown method %q: %w", s, ErrPrecondition)
	}
}

// GradientPolicy turns an image, or an intensity grid that is already single
// channel, into a magnitude and direction grid.
type GradientPolicy interface {
	Method() Method
	Gradient(img image.Image, op Operator) (*Grid, *DirectionGrid, error)
	GradientGrid(intensity *Grid, op Operator) (*Grid, *DirectionGrid, error)
}

// PolicyFor resolves m to its policy. Unknown methods return ErrPrecondition;
// MethodColor resolves successfully to a policy that always fails.
func PolicyFor(m Method) (GradientPolicy, error) {
	return policyFor(m, 1)
}

func policyFor(m Method, workers int) (GradientPolicy, error) {
	switch m {
	case MethodGrayscale:
		return GrayscalePolicy{Workers: workers}, nil
	case MethodColor:
		return ColorPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown method %v: %w", m, ErrPrecondition)
	}
}

// GrayscalePolicy derives a single luminance channel and runs ComputeGradient on it.
type GrayscalePolicy struct {
	// Workers bounds the row bands computed concurrently. Values below 2 run sequentially.
	Workers int
}

func (GrayscalePolicy) Method() Method { return MethodGrayscale }

func (p GrayscalePolicy) Gradient(img image.Image, op Operator) (*Grid, *DirectionGrid, error) {
	if img == nil {
		return nil, nil, fmt.Errorf("nil image: %w", ErrPrecondition)
	}
	return computeGradient(Luminance(img), op, p.Workers)
}

// GradientGrid differentiates intensity directly; it is already luminance.
func (p GrayscalePolicy) GradientGrid(intensity *Grid, op Operator) (*Grid, *DirectionGrid, error) {
	return computeGradient(intensity, op, p.Workers)
}

// ColorPolicy is the per-channel gradient. It is not implemented and reports
// ErrUnsupportedMode instead of returning a zeroed field.
type ColorPolicy struct{}

func (ColorPolicy) Method() Method { return MethodColor }

func (ColorPolicy) Gradient(image.Image, Operator) (*Grid, *DirectionGrid, error) {
	return nil, nil, fmt.Errorf("per-channel color gradient: %w", ErrUnsupportedMode)
}

// GradientGrid fails like Gradient; there is no grayscale fallback.
func (ColorPolicy) GradientGrid(*Grid, Operator) (*Grid, *DirectionGrid, error) {
	return nil, nil, fmt.Errorf("per-channel color gradient: %w", ErrUnsupportedMode)
}

// Luminance converts img to an intensity grid using ITU-R BT.601 weights
// (0.299 R + 0.587 G + 0.114 B), truncated toward zero. The sum is taken in
// integer thousandths so white maps to exactly 255. *image.Gray input is
// copied as is.
func Luminance(img image.Image) *Grid {
	if g, ok := img.(*image.Gray); ok {
		return GridFromGray(g)
	}
	src := imaging.Clone(img)
	b := src.Bounds()
	grid := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < grid.Height; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < grid.Width; x++ {
			p := row[x*4 : x*4+3]
			grid.Pix[y*grid.Width+x] = uint8((299*int(p[0]) + 587*int(p[1]) + 114*int(p[2])) / 1000)
		}
	}
	return grid
}
