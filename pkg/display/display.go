// Package display implements the monochrome framebuffer consumed by the
// interpreter's display-effects interface and decodes it for rendering.
package display

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

const (
	// Width and Height are the screen dimensions in pixels.
	Width  = 64
	Height = 32
)

// Buffer is a bit-packed 64x32 monochrome framebuffer. Each byte holds 8
// horizontally adjacent pixels, most significant bit leftmost. Pixels are
// XOR-blended and coordinates wrap at the screen edges.
type Buffer struct {
	bits [Width * Height / 8]byte

	// On and Off are the colors used when decoding to RGBA.
	On  color.RGBA
	Off color.RGBA
}

// New creates a cleared framebuffer with white-on-black colors.
func New() *Buffer {
	return &Buffer{
		On:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Off: color.RGBA{A: 0xFF},
	}
}

// Clear switches every pixel off.
func (b *Buffer) Clear() {
	b.bits = [Width * Height / 8]byte{}
}

// SetPixel XORs on into the pixel at (x, y) and reports whether a lit pixel
// was switched off. Coordinates wrap around the screen edges.
func (b *Buffer) SetPixel(x, y int, on bool) bool {
	if !on {
		return false
	}
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height

	index := y*Width/8 + x/8
	mask := byte(0x80) >> (x % 8)

	was := b.bits[index]&mask != 0
	b.bits[index] ^= mask
	return was
}

// Pixel reports whether the pixel at (x, y) is lit.
func (b *Buffer) Pixel(x, y int) bool {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height
	return b.bits[y*Width/8+x/8]&(0x80>>(x%8)) != 0
}

// RGBA decodes the framebuffer into an RGBA8888 byte slice
// (length Width*Height*4).
func (b *Buffer) RGBA() []byte {
	pixels := make([]byte, Width*Height*4)
	for i := 0; i < Width*Height; i++ {
		c := b.Off
		if b.bits[i/8]&(0x80>>(i%8)) != 0 {
			c = b.On
		}
		pixels[i*4+0] = c.R
		pixels[i*4+1] = c.G
		pixels[i*4+2] = c.B
		pixels[i*4+3] = c.A
	}
	return pixels
}

// Image returns the framebuffer as an *image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.RGBA(),
		Stride: Width * 4,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}

// SaveScreenshot encodes the framebuffer as a PNG, upscaled by the given
// integer factor with nearest-neighbor sampling.
func (b *Buffer) SaveScreenshot(filename string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("screenshot scale must be >= 1, got %d", scale)
	}
	src := b.Image()
	dst := image.NewRGBA(image.Rect(0, 0, Width*scale, Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
