// Package canny implements Canny-style edge detection over single-channel rasters.
//
// The pipeline is strictly linear. Each stage consumes the previous stage's
// output and all grids of one run share the same dimensions:
//
//  1. ComputeGradient: Sobel (or Scharr) derivatives of the intensity grid,
//     producing an 8-bit magnitude grid and a direction grid in degrees
//  2. Suppress: non-maximum suppression along the gradient direction, using
//     Classify to bin each angle into one of four orientations
//  3. TrackEdges: adaptive hysteresis. Thresholds are derived from the mean and
//     standard deviation of the suppressed grid, then strong pixels pull in
//     connected weak pixels. The grid ends up strictly binary {0, 255}
//
// Detector chains the stages and resolves the grayscale-derivation policy once
// at construction.
//
// # Coordinate System
//
// Grids are row-major with (0,0) at the top-left corner. X increases rightward
// and Y increases downward. Gradient directions follow the same axes, so an
// angle of 90° points toward increasing Y.
//
// # Borders
//
// The 1-pixel border of every grid is never assigned a gradient and stays 0.
// Image borders are not reported as edges.
//
// # Errors
//
// Every failure wraps one of ErrPrecondition, ErrUnsupportedMode or
// ErrNumericDegeneracy. No stage returns a partial result alongside an error.
package canny
