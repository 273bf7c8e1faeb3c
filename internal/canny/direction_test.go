package canny

import (
	"errors"
	"math"
	"testing"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		angle float64
		want  Bin
	}{
		{-180, BinHorizontal},
		{-157.5, BinRising},
		{-112.5, BinVertical},
		{-67.5, BinFalling},
		{-22.5, BinHorizontal},
		{0, BinHorizontal},
		{22.5, BinRising},
		{67.5, BinVertical},
		{112.5, BinFalling},
		{157.5, BinHorizontal},
		{180, BinHorizontal},
	}

	for _, tt := range tests {
		got, err := Classify(tt.angle)
		if err != nil {
			t.Errorf("Classify(%v) failed: %v", tt.angle, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%v): got %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestClassify_SectorInteriors(t *testing.T) {
	tests := []struct {
		angle float64
		want  Bin
	}{
		{10, BinHorizontal},
		{-10, BinHorizontal},
		{170, BinHorizontal},
		{-170, BinHorizontal},
		{45, BinRising},
		{-135, BinRising},
		{90, BinVertical},
		{-90, BinVertical},
		{135, BinFalling},
		{-45, BinFalling},
		{22.4999, BinHorizontal},
		{157.4999, BinFalling},
	}

	for _, tt := range tests {
		got, err := Classify(tt.angle)
		if err != nil {
			t.Errorf("Classify(%v) failed: %v", tt.angle, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%v): got %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestClassify_OutOfDomain(t *testing.T) {
	for _, angle := range []float64{-180.0001, 180.0001, 360, -720, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Classify(angle); !errors.Is(err, ErrPrecondition) {
			t.Errorf("Classify(%v): got %v, want ErrPrecondition", angle, err)
		}
	}
}

func TestBinNeighboursAreOpposite(t *testing.T) {
	for _, b := range []Bin{BinHorizontal, BinRising, BinVertical, BinFalling} {
		dx1, dy1, dx2, dy2 := b.neighbours()
		if dx1 != -dx2 || dy1 != -dy2 {
			t.Errorf("%v: offsets (%d,%d) and (%d,%d) are not opposite", b, dx1, dy1, dx2, dy2)
		}
		if dx1 == 0 && dy1 == 0 {
			t.Errorf("%v: neighbour offset is the centre pixel", b)
		}
	}
}
