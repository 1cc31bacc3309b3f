package imgview

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayPalette(t *testing.T) {
	p := GrayPalette()
	require.Len(t, p, 256)
	for i, c := range p {
		v := uint8(i)
		assert.Equal(t, color.RGBA{v, v, v, 0xff}, c)
	}
	// built once and shared
	assert.Same(t, &p[0], &GrayPalette()[0])
}
