package imgview

import (
	"image"
	"math"

	"git.sr.ht/~rockorager/imgview/log"

	"golang.org/x/image/draw"
)

// scaledSize returns the size of a w x h frame scaled uniformly to width.
// The height is rounded and never less than one pixel
func scaledSize(w int, h int, width int) (int, int) {
	sf := float64(width) / float64(w)
	newHeight := int(math.Round(float64(h) * sf))
	if newHeight < 1 {
		newHeight = 1
	}
	return width, newHeight
}

// resizeBuffer scales buf to width, preserving its aspect ratio and channel
// count, using bilinear interpolation. buf must be valid
func resizeBuffer(buf Buffer, width int) Buffer {
	w, h := scaledSize(buf.Width, buf.Height, width)
	log.Debug("resizing image from (%d x %d) to (%d x %d)", buf.Width, buf.Height, w, h)
	out := Buffer{
		Width:    w,
		Height:   h,
		Channels: buf.Channels,
	}
	var src image.Image
	var dst draw.Image
	switch buf.Channels {
	case 1:
		g := image.NewGray(image.Rect(0, 0, w, h))
		out.Pix = g.Pix
		src, dst = buf.gray(), g
	default:
		c := NewBGR(image.Rect(0, 0, w, h))
		out.Pix = c.Pix
		src, dst = buf.bgr(), c
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return out
}
