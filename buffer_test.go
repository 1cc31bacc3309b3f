package imgview

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferEmpty(t *testing.T) {
	tests := []struct {
		name string
		buf  Buffer
		want bool
	}{
		{"zero value", Buffer{}, true},
		{"no width", NewGrayBuffer(0, 4), true},
		{"no height", NewBGRBuffer(4, 0), true},
		{"no pixels", Buffer{Width: 2, Height: 2, Channels: 1}, true},
		{"gray", NewGrayBuffer(1, 1), false},
		{"bgr", NewBGRBuffer(2, 3), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.buf.Empty())
		})
	}
}

func TestBufferValidate(t *testing.T) {
	assert.NoError(t, NewGrayBuffer(3, 2).Validate())
	assert.NoError(t, NewBGRBuffer(3, 2).Validate())
	assert.ErrorIs(t, Buffer{Width: 1, Height: 1, Channels: 2, Pix: []uint8{0, 0}}.Validate(), ErrChannels)
	assert.ErrorIs(t, Buffer{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 11)}.Validate(), ErrShortBuffer)
}

func TestBufferFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{10, 20, 30, 0xff})
	src.Set(6, 5, color.RGBA{200, 200, 200, 0xff})

	bgr := BufferFromImage(src, false)
	assert.Equal(t, 2, bgr.Width)
	assert.Equal(t, 1, bgr.Height)
	assert.Equal(t, 3, bgr.Channels)
	assert.Equal(t, []uint8{30, 20, 10, 200, 200, 200}, bgr.Pix)

	gray := BufferFromImage(src, true)
	assert.Equal(t, 1, gray.Channels)
	assert.Len(t, gray.Pix, 2)
	assert.Equal(t, uint8(200), gray.Pix[1])
}

func TestBufferFromImageGeneric(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0xff})
	src.SetNRGBA(1, 1, color.NRGBA{0, 0, 255, 0xff})

	buf := BufferFromImage(src, false)
	assert.NoError(t, buf.Validate())
	assert.Equal(t, []uint8{0, 0, 255}, buf.Pix[0:3])
	assert.Equal(t, []uint8{255, 0, 0}, buf.Pix[9:12])
	// unset pixels are transparent black
	assert.Equal(t, []uint8{0, 0, 0}, buf.Pix[3:6])
}
