package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/edgedraw/internal/canny"
)

// EdgeOptions controls one edge-detection run.
//
// The zero value runs the grayscale Sobel pipeline on the whole image with no
// pre-blur, using GOMAXPROCS workers.
type EdgeOptions struct {
	// Method selects the grayscale-derivation policy. MethodColor is declared
	// but fails with canny.ErrUnsupportedMode.
	Method canny.Method

	// Operator selects the derivative kernels (Sobel or Scharr).
	Operator canny.Operator

	// BlurRadius is the Gaussian pre-blur radius in pixels. 0 disables it.
	BlurRadius float64

	// Workers bounds concurrent row bands: 0 uses GOMAXPROCS, 1 is sequential.
	// The result does not depend on it.
	Workers int

	// Region restricts detection to a sub-rectangle. nil means the whole image.
	Region *Region
}

func (o EdgeOptions) detector() (*canny.Detector, error) {
	return canny.New(
		canny.WithMethod(o.Method),
		canny.WithOperator(o.Operator),
		canny.WithWorkers(o.Workers),
	)
}

// prepare applies the region crop and the pre-blur.
func (o EdgeOptions) prepare(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", canny.ErrPrecondition)
	}
	if o.Region != nil {
		cropped, err := CropRegion(img, *o.Region)
		if err != nil {
			return nil, err
		}
		img = cropped
	}
	return Denoise(img, o.BlurRadius), nil
}

// DetectEdges runs the Canny pipeline on img and returns the binary edge
// grid (values 0 or 255) with the dimensions of the image or region.
func DetectEdges(img image.Image, opts EdgeOptions) (*canny.Grid, error) {
	det, err := opts.detector()
	if err != nil {
		return nil, err
	}
	src, err := opts.prepare(img)
	if err != nil {
		return nil, err
	}
	return det.Detect(src)
}

// EdgeDetectResult contains an edge map encoded as base64 PNG.
//
// The image is 8-bit grayscale: 255 marks an edge pixel, 0 everything else.
type EdgeDetectResult struct {
	// Width of the output in pixels (image or region width).
	Width int `json:"width"`

	// Height of the output in pixels (image or region height).
	Height int `json:"height"`

	// EdgePixels is the number of pixels marked 255.
	EdgePixels int `json:"edge_pixels"`

	// Method and Operator echo the configuration that produced the map.
	Method   string `json:"method"`
	Operator string `json:"operator"`

	// ImageBase64 is the edge map encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EdgeDetect performs Canny edge detection and encodes the result.
//
// # Pipeline
//
//  1. Optional crop to opts.Region
//  2. Optional Gaussian pre-blur (opts.BlurRadius)
//  3. Luminance conversion (ITU-R BT.601 weights)
//  4. Sobel or Scharr gradient; the 1-pixel border is never an edge
//  5. Non-maximum suppression along the gradient direction
//  6. Hysteresis with thresholds derived from the image itself:
//     high = mean + 2σ, low = mean + σ of the suppressed magnitudes
//
// No threshold tuning is needed; a uniform image yields an all-black map.
//
// # Errors
//
//   - canny.ErrUnsupportedMode when opts.Method is canny.MethodColor
//   - canny.ErrPrecondition for an empty image or invalid options
//   - region validation errors when opts.Region lies outside the image
func EdgeDetect(img image.Image, opts EdgeOptions) (*EdgeDetectResult, error) {
	edges, err := DetectEdges(img, opts)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNG(edges.ToGray())
	if err != nil {
		return nil, fmt.Errorf("failed to encode edge image: %w", err)
	}

	return &EdgeDetectResult{
		Width:       edges.Width,
		Height:      edges.Height,
		EdgePixels:  CountEdges(edges),
		Method:      opts.Method.String(),
		Operator:    opts.Operator.String(),
		ImageBase64: encoded,
		MimeType:    pngMimeType,
	}, nil
}

// CountEdges returns the number of pixels set to 255 in a binary edge grid.
func CountEdges(g *canny.Grid) int {
	n := 0
	for _, v := range g.Pix {
		if v == 255 {
			n++
		}
	}
	return n
}

// GradientResult contains the gradient magnitude field encoded as base64 PNG.
type GradientResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// MaxMagnitude is the largest 8-bit magnitude in the field.
	MaxMagnitude int `json:"max_magnitude"`

	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// GradientImage renders the first pipeline stage: the 8-bit gradient
// magnitude before suppression and hysteresis. Useful for seeing why an
// edge was or was not retained.
func GradientImage(img image.Image, opts EdgeOptions) (*GradientResult, error) {
	det, err := opts.detector()
	if err != nil {
		return nil, err
	}
	src, err := opts.prepare(img)
	if err != nil {
		return nil, err
	}

	magnitude, _, err := det.Gradient(src)
	if err != nil {
		return nil, err
	}

	maxMag := 0
	for _, v := range magnitude.Pix {
		if int(v) > maxMag {
			maxMag = int(v)
		}
	}

	encoded, err := encodePNG(magnitude.ToGray())
	if err != nil {
		return nil, fmt.Errorf("failed to encode gradient image: %w", err)
	}

	return &GradientResult{
		Width:        magnitude.Width,
		Height:       magnitude.Height,
		MaxMagnitude: maxMag,
		ImageBase64:  encoded,
		MimeType:     pngMimeType,
	}, nil
}
