package imagediff

import (
	"image"
	"image/draw"
)

// Bitmap is a decoded image held as a flat RGBA buffer of length
// Width*Height*4. Buffers are value objects: created per comparison and
// never shared or mutated after construction.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBitmap allocates a zeroed bitmap of the given dimensions
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FromImage converts any decoded image into a Bitmap
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    rgba.Pix,
	}
}

// ToImage wraps the bitmap in an image.RGBA sharing the pixel buffer
func (b *Bitmap) ToImage() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// ZeroArea reports whether the bitmap has no pixels
func (b *Bitmap) ZeroArea() bool {
	return b.Width == 0 || b.Height == 0
}
