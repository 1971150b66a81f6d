package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEmptySurfaceIsBlank(t *testing.T) {
	s := NewSurface(0, 10)
	url, err := s.DataURL()
	require.NoError(t, err)
	assert.True(t, IsBlank(url))
	assert.Nil(t, s.Image())
	assert.NoError(t, s.DrawScaled(solid(1, 1, color.White)))
}

func TestDrawScaledRoundTrip(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	s := NewSurface(8, 4)
	require.NoError(t, s.DrawScaled(solid(2, 2, red)))
	url, err := s.DataURL()
	require.NoError(t, err)
	assert.Contains(t, url, PNGPrefix)
	img, err := DecodeDataURL(url)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	r, g, b, a := img.At(4, 2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestDrawEmptyImage(t *testing.T) {
	s := NewSurface(2, 2)
	assert.ErrorIs(t, s.DrawScaled(image.NewRGBA(image.Rect(0, 0, 0, 0))), ErrEmptyImage)
	assert.ErrorIs(t, s.DrawScaled(nil), ErrEmptyImage)
}

func TestSurfaceFor(t *testing.T) {
	s := SurfaceFor(solid(3, 5, color.Black))
	w, h := s.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 5, h)
	_, err := DecodeDataURL("data:text/plain,hi")
	assert.Error(t, err)
}
