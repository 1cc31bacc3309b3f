package plot

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamped(t *testing.T) {
	xs, ys := Damped(0, 3)
	require.Len(t, xs, 3)
	assert.InDeltaSlice(t, []float64{0, 2.5, 5}, xs, 1e-12)
	assert.InDeltaSlice(t, []float64{1, -1, 1}, ys, 1e-9)

	xs, ys = Damped(1, Samples)
	require.Len(t, xs, Samples)
	assert.Equal(t, 0.0, xs[0])
	assert.InDelta(t, XMax, xs[len(xs)-1], 1e-12)
	assert.InDelta(t, math.Exp(-5), ys[len(ys)-1], 1e-9)

	xs, _ = Damped(1, 1)
	assert.Equal(t, []float64{0}, xs)
}

func TestYRange(t *testing.T) {
	lo, hi := yRange([]float64{-1, 1})
	assert.InDelta(t, -1.1, lo, 1e-9)
	assert.InDelta(t, 1.1, hi, 1e-9)

	lo, hi = yRange([]float64{2, 2})
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)
}

func TestRender(t *testing.T) {
	img := Render(0.5, Width, Height)
	require.Equal(t, Width, img.Bounds().Dx())
	require.Equal(t, Height, img.Bounds().Dy())

	// background is white
	r, g, b, _ := img.At(Width-2, Height-2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})

	// the curve and text are dark
	dark := 0
	for y := 0; y < Height; y += 1 {
		for x := 0; x < Width; x += 1 {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if c.Y < 64 {
				dark += 1
			}
		}
	}
	assert.Greater(t, dark, Samples)
}

func TestFrame(t *testing.T) {
	f := Frame(-0.25)
	assert.Equal(t, Width, f.Width)
	assert.Equal(t, Height, f.Height)
	assert.Equal(t, 3, f.Channels)
	assert.NoError(t, f.Validate())
	assert.Equal(t, []uint8{255, 255, 255}, f.Pix[:3])
}

func TestOscillator(t *testing.T) {
	o := NewOscillator()
	assert.Equal(t, 1.0, o.Factor())

	// 1.01 is out of range, so the first step turns around
	assert.InDelta(t, 1.0, o.Advance(), 1e-9)
	assert.InDelta(t, 0.99, o.Advance(), 1e-9)
	assert.InDelta(t, 0.98, o.Advance(), 1e-9)

	turns := 0
	prev := o.Factor()
	dir := -1.0
	for i := 0; i < 1000; i += 1 {
		f := o.Advance()
		assert.LessOrEqual(t, math.Abs(f), 1.0+1e-9)
		if d := f - prev; d*dir < 0 {
			turns += 1
			dir = -dir
		}
		prev = f
	}
	assert.GreaterOrEqual(t, turns, 4)
}
