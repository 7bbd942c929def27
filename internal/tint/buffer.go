// Package tint applies luminance-preserving color tints to RGBA pixel
// buffers. Luminance is extracted per pixel and multiplied by a target
// color, so scratches, wear patterns, and paint chips survive the
// retexture; only the overall hue changes.
package tint

import (
	"fmt"
	"image"
)

// Buffer is a 2D grid of RGBA pixels stored as a flat interleaved
// float32 slice, each channel normalized to [0,1]. Len(Pix) = W*H*4.
type Buffer struct {
	Width  int
	Height int
	Pix    []float32
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]float32, w*h*4),
	}
}

// FromNRGBA converts an 8-bit NRGBA image to a normalized float buffer.
func FromNRGBA(img *image.NRGBA) *Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		out := buf.Pix[y*w*4 : (y+1)*w*4]
		for i, v := range row {
			out[i] = float32(v) / 255.0
		}
	}
	return buf
}

// ToNRGBA converts the buffer back to an 8-bit NRGBA image. Channels are
// clamped to [0,1] before quantization.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Width*4 : (y+1)*b.Width*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		for i, v := range src {
			dst[i] = quant8(v)
		}
	}
	return img
}

func quant8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// ShapeError reports a pixel buffer whose flat layout cannot be
// interpreted as width × height RGBA quads.
type ShapeError struct {
	Len    int
	Width  int
	Height int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("tint: buffer shape mismatch: %d floats for %d×%d RGBA",
		e.Len, e.Width, e.Height)
}
