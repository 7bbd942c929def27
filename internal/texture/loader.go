package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/ftrvxmtrx/tga"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Decode decodes PNG, JPEG, or TGA image bytes into an NRGBA image.
// Used both for loose texture files and for images embedded in GLB
// binary buffers. Formats are dispatched on magic bytes rather than
// the image.Decode registry: TGA files have no magic number, so
// registry sniffing cannot tell the formats apart reliably.
func Decode(data []byte) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case bytes.HasPrefix(data, pngMagic):
		img, err = png.Decode(bytes.NewReader(data))
	case len(data) >= 2 && data[0] == 0xff && data[1] == 0xd8:
		img, err = jpeg.Decode(bytes.NewReader(data))
	default:
		img, err = tga.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return toNRGBA(img), nil
}

// LoadFile reads and decodes a texture file.
func LoadFile(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	return img, nil
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha, draw and set alpha to 255
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := dst.PixOffset(x, y)
				dst.Pix[i+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
