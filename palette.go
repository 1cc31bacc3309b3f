package imgview

import (
	"image/color"
	"sync"
)

var (
	grayOnce    sync.Once
	grayPalette color.Palette
)

// GrayPalette returns the 256 entry color table used for grayscale frames.
// Entry i is the opaque color (i, i, i). The table is built on first use and
// shared by every widget; callers must not modify it
func GrayPalette() color.Palette {
	grayOnce.Do(func() {
		grayPalette = make(color.Palette, 256)
		for i := range grayPalette {
			v := uint8(i)
			grayPalette[i] = color.RGBA{R: v, G: v, B: v, A: 0xff}
		}
	})
	return grayPalette
}
