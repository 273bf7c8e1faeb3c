package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/edgedraw/internal/canny"
)

// DefaultOverlayColor is used when no overlay color is given.
const DefaultOverlayColor = "#FF0000"

// OverlayResult contains the source image with its edges painted on top.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	EdgePixels  int    `json:"edge_pixels"`
	Color       string `json:"color"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EdgeOverlay detects edges and paints them over the (cropped) source image.
//
// Parameters:
//   - img: Source image.
//   - opts: Detection options; the overlay covers opts.Region when set.
//   - hex: Edge color as "#RGB" or "#RRGGBB". Empty selects DefaultOverlayColor.
//   - opacity: Edge layer opacity in [0, 1].
func EdgeOverlay(img image.Image, opts EdgeOptions, hex string, opacity float64) (*OverlayResult, error) {
	if opacity < 0 || opacity > 1 {
		return nil, fmt.Errorf("opacity %v outside [0, 1]", opacity)
	}
	c, err := parseHexColor(hex)
	if err != nil {
		return nil, err
	}

	edges, err := DetectEdges(img, opts)
	if err != nil {
		return nil, err
	}
	background, err := opts.prepareBackground(img)
	if err != nil {
		return nil, err
	}

	composite := imaging.Overlay(background, edgeLayer(edges, c), image.Pt(0, 0), opacity)

	encoded, err := encodePNG(composite)
	if err != nil {
		return nil, fmt.Errorf("failed to encode overlay image: %w", err)
	}

	return &OverlayResult{
		Width:       edges.Width,
		Height:      edges.Height,
		EdgePixels:  CountEdges(edges),
		Color:       c.Hex(),
		ImageBase64: encoded,
		MimeType:    pngMimeType,
	}, nil
}

// prepareBackground crops like prepare but skips the blur, so the overlay
// shows the original pixels.
func (o EdgeOptions) prepareBackground(img image.Image) (image.Image, error) {
	if o.Region == nil {
		return imaging.Clone(img), nil
	}
	return CropRegion(img, *o.Region)
}

// edgeLayer turns an edge grid into an opaque-on-edges, transparent-elsewhere layer.
func edgeLayer(edges *canny.Grid, c colorful.Color) *image.NRGBA {
	r, g, b := c.RGB255()
	paint := color.NRGBA{R: r, G: g, B: b, A: 255}

	layer := image.NewNRGBA(image.Rect(0, 0, edges.Width, edges.Height))
	for y := 0; y < edges.Height; y++ {
		for x := 0; x < edges.Width; x++ {
			if edges.At(x, y) == 255 {
				layer.SetNRGBA(x, y, paint)
			}
		}
	}
	return layer
}

// parseHexColor parses "#RGB" or "#RRGGBB", with or without the leading '#'.
func parseHexColor(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		hex = DefaultOverlayColor
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, fmt.Errorf("invalid color %q: want #RGB or #RRGGBB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}
