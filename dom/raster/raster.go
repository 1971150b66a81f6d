/*
Package raster provides offscreen raster surfaces and data-URI export.

Surfaces are backed by a drawing context of github.com/fogleman/gg.
A surface is meant to be short-lived: allocate one per capture, draw,
export, drop it. Surfaces are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/png" // decoder for DecodeDataURL
	"strings"

	"github.com/fogleman/gg"
)

// Blank is the data URI exported for surfaces without pixels, in the same
// way browsers export zero-sized canvases.
const Blank = "data:,"

// PNGPrefix is the prefix of PNG data URIs.
const PNGPrefix = "data:image/png;base64,"

// ErrEmptyImage is returned when drawing an image without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// IsBlank checks if a data URI denotes a surface without pixel data.
func IsBlank(dataURL string) bool {
	return strings.TrimSpace(dataURL) == Blank
}

// Surface is an offscreen raster surface.
type Surface struct {
	dc *gg.Context
}

// NewSurface allocates a transparent surface of the given size in pixels.
// Sizes below 1 produce a surface which exports as Blank.
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		return &Surface{}
	}
	return &Surface{dc: gg.NewContext(width, height)}
}

// SurfaceFor wraps an existing image into a surface.
func SurfaceFor(img image.Image) *Surface {
	if img == nil || img.Bounds().Empty() {
		return &Surface{}
	}
	return &Surface{dc: gg.NewContextForImage(img)}
}

// Size returns the size of a surface in pixels.
func (s *Surface) Size() (width, height int) {
	if s.dc == nil {
		return 0, 0
	}
	return s.dc.Width(), s.dc.Height()
}

// DrawScaled draws an image, scaled to cover the whole surface.
func (s *Surface) DrawScaled(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if s.dc == nil {
		return nil
	}
	b := img.Bounds()
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.Scale(float64(s.dc.Width())/float64(b.Dx()), float64(s.dc.Height())/float64(b.Dy()))
	s.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	return nil
}

// Image returns the pixels of a surface, nil for empty surfaces.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// DataURL exports the pixels of a surface as a PNG data URI.
func (s *Surface) DataURL() (string, error) {
	if s.dc == nil {
		return Blank, nil
	}
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("raster: cannot encode surface: %w", err)
	}
	return PNGPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURL decodes a PNG data URI, as produced by DataURL.
func DecodeDataURL(dataURL string) (image.Image, error) {
	if !strings.HasPrefix(dataURL, PNGPrefix) {
		return nil, fmt.Errorf("raster: not a PNG data URI")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, PNGPrefix))
	if err != nil {
		return nil, fmt.Errorf("raster: invalid data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("raster: cannot decode data URI: %w", err)
	}
	return img, nil
}
