package imgview

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	// ErrChannels is returned for buffers that are neither grayscale nor
	// three channel color
	ErrChannels = errors.New("unsupported channel count")
	// ErrShortBuffer is returned when Pix holds fewer bytes than the
	// dimensions require
	ErrShortBuffer = errors.New("pixel data shorter than dimensions")
)

// Buffer is an in-memory pixel buffer in row major, channel last order. A
// grayscale buffer has one channel. A color buffer has three, stored
// blue-green-red
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewGrayBuffer allocates a zeroed single channel buffer
func NewGrayBuffer(w int, h int) Buffer {
	return Buffer{
		Width:    w,
		Height:   h,
		Channels: 1,
		Pix:      make([]uint8, w*h),
	}
}

// NewBGRBuffer allocates a zeroed three channel buffer
func NewBGRBuffer(w int, h int) Buffer {
	return Buffer{
		Width:    w,
		Height:   h,
		Channels: 3,
		Pix:      make([]uint8, w*h*3),
	}
}

// BufferFromImage copies img into a new Buffer. When gray is set the result
// is single channel luma, otherwise BGR
func BufferFromImage(img image.Image, gray bool) Buffer {
	b := img.Bounds()
	if gray {
		g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(g, g.Rect, img, b.Min, draw.Src)
		return Buffer{
			Width:    b.Dx(),
			Height:   b.Dy(),
			Channels: 1,
			Pix:      g.Pix,
		}
	}
	buf := NewBGRBuffer(b.Dx(), b.Dy())
	if src, ok := img.(*image.RGBA); ok {
		// fast path: swap channels row by row, dropping alpha
		for y := 0; y < b.Dy(); y += 1 {
			srcRow := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			dstRow := buf.Pix[y*buf.Stride():]
			for x := 0; x < b.Dx(); x += 1 {
				si := x * 4
				di := x * 3
				dstRow[di+0] = srcRow[si+2]
				dstRow[di+1] = srcRow[si+1]
				dstRow[di+2] = srcRow[si+0]
			}
		}
		return buf
	}
	dst := buf.bgr()
	for y := 0; y < b.Dy(); y += 1 {
		for x := 0; x < b.Dx(); x += 1 {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			dst.SetRGBA(x, y, c)
		}
	}
	return buf
}

// Empty reports whether the buffer has no pixels
func (b Buffer) Empty() bool {
	return b.Width <= 0 || b.Height <= 0 || b.Channels <= 0 || len(b.Pix) == 0
}

// Stride is the number of bytes between two rows
func (b Buffer) Stride() int {
	return b.Width * b.Channels
}

// Validate checks that the buffer can be displayed
func (b Buffer) Validate() error {
	if b.Channels != 1 && b.Channels != 3 {
		return fmt.Errorf("%d channels: %w", b.Channels, ErrChannels)
	}
	if need := b.Stride() * b.Height; len(b.Pix) < need {
		return fmt.Errorf("%dx%dx%d needs %d bytes, have %d: %w",
			b.Width, b.Height, b.Channels, need, len(b.Pix), ErrShortBuffer)
	}
	return nil
}

func (b Buffer) gray() *image.Gray {
	return &image.Gray{
		Pix:    b.Pix,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

func (b Buffer) bgr() *BGR {
	return &BGR{
		Pix:    b.Pix,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
