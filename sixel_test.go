package imgview

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSixelPainter(t *testing.T) {
	w := New(nil, Options{TargetWidth: 16})
	w.Update(filledBGR(8, 4, 0, 0, 255))

	out := bytes.NewBuffer(nil)
	sp := &SixelPainter{W: out}
	w.Paint(sp)
	require.NoError(t, sp.Err)

	s := out.String()
	assert.True(t, len(s) > 5)
	// DCS introducer with the transparency parameter set
	assert.Equal(t, "\x1bP0;1", s[:5])
	assert.Equal(t, "\x1b\\", s[len(s)-2:])
}

func TestSixelPainterNoImage(t *testing.T) {
	out := bytes.NewBuffer(nil)
	sp := &SixelPainter{W: out}
	New(nil, Options{}).Paint(sp)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestSixelPainterWriteError(t *testing.T) {
	sp := &SixelPainter{W: failingWriter{}}
	sp.DrawImage(0, 0, 2, 2, NewRGB(image.Rect(0, 0, 2, 2)))
	assert.Error(t, sp.Err)
}
