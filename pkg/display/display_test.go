package display

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSetPixelXOR(t *testing.T) {
	b := New()

	// Setting an off pixel lights it, no collision.
	assert.False(t, b.SetPixel(9, 1, true))
	assert.True(t, b.Pixel(9, 1))

	// XORing it again erases it and reports a collision.
	assert.True(t, b.SetPixel(9, 1, true))
	assert.False(t, b.Pixel(9, 1))

	// An off bit is a no-op and never collides.
	assert.False(t, b.SetPixel(9, 1, false))
	assert.False(t, b.Pixel(9, 1))
}

func TestSetPixelWraps(t *testing.T) {
	b := New()
	assert.False(t, b.SetPixel(Width+3, Height+2, true))
	assert.True(t, b.Pixel(3, 2))

	assert.False(t, b.SetPixel(-1, -1, true))
	assert.True(t, b.Pixel(Width-1, Height-1))
}

func TestClear(t *testing.T) {
	b := New()
	b.SetPixel(0, 0, true)
	b.SetPixel(63, 31, true)
	b.Clear()
	assert.False(t, b.Pixel(0, 0))
	assert.False(t, b.Pixel(63, 31))
}

func TestRGBA(t *testing.T) {
	b := New()
	b.SetPixel(0, 0, true)
	pixels := b.RGBA()
	assert.Equal(t, Width*Height*4, len(pixels))

	// First pixel is lit (white), second is off (black), both opaque.
	assert.Equal(t, byte(0xFF), pixels[0])
	assert.Equal(t, byte(0xFF), pixels[3])
	assert.Equal(t, byte(0x00), pixels[4])
	assert.Equal(t, byte(0xFF), pixels[7])
}

func TestImage(t *testing.T) {
	b := New()
	b.SetPixel(5, 7, true)
	img := b.Image()
	assert.Equal(t, Width, img.Rect.Dx())
	assert.Equal(t, Height, img.Rect.Dy())

	r, _, _, _ := img.At(5, 7).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestSaveScreenshot(t *testing.T) {
	b := New()
	b.SetPixel(1, 1, true)

	name := filepath.Join(t.TempDir(), "screen.png")
	assert.NoError(t, b.SaveScreenshot(name, 4))

	f, err := os.Open(name)
	assert.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	assert.NoError(t, err)
	assert.Equal(t, Width*4, img.Bounds().Dx())
	assert.Equal(t, Height*4, img.Bounds().Dy())

	assert.Error(t, b.SaveScreenshot(name, 0))
}
