package imagediff

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/aleister1102/devkit/internal/common"
)

// LoadBitmap decodes a PNG, JPEG or GIF file into a Bitmap
func LoadBitmap(path string) (*Bitmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to read image file '%s'", path)
	}
	return DecodeBitmap(data)
}

// DecodeBitmap decodes raw image bytes into a Bitmap
func DecodeBitmap(data []byte) (*Bitmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, common.WrapErrorf(common.ErrUnsupportedFormat, "failed to decode image: %v", err)
	}
	return FromImage(img), nil
}

// SavePNG writes the bitmap to path as a PNG file
func SavePNG(path string, bitmap *Bitmap) error {
	if bitmap == nil {
		return common.NewValidationError("bitmap", nil, "bitmap is required")
	}

	file, err := os.Create(path)
	if err != nil {
		return common.WrapErrorf(err, "failed to create output file '%s'", path)
	}
	defer file.Close()

	if err := png.Encode(file, bitmap.ToImage()); err != nil {
		return common.WrapError(err, "failed to encode PNG")
	}
	return nil
}

// EncodePNG renders the bitmap as PNG bytes
func EncodePNG(bitmap *Bitmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, bitmap.ToImage()); err != nil {
		return nil, common.WrapError(err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}
