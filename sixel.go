package imgview

import (
	"bytes"
	"image"
	"io"

	"git.sr.ht/~rockorager/imgview/log"

	"github.com/mattn/go-sixel"
)

// SixelPainter paints frames as DEC sixel graphics to W
type SixelPainter struct {
	W io.Writer
	// Err is the first encoding or write error
	Err error
}

func (sp *SixelPainter) DrawImage(x int, y int, width int, height int, img image.Image) {
	if sp.Err != nil {
		return
	}
	r := image.Rect(x, y, x+width, y+height).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok && r != img.Bounds() {
		img = sub.SubImage(r)
	}

	buf := bytes.NewBuffer(nil)
	err := sixel.NewEncoder(buf).Encode(img)
	if err != nil {
		log.Error("couldn't encode sixel: %v", err)
		sp.Err = err
		return
	}
	// Foot requires that we set the P2 parameter = 1 in order to
	// enable transparency. This doesn't seem to affect other sixel
	// based terminals
	b := buf.Bytes()
	if len(b) > 4 {
		b[4] = 0x31
	}
	if _, err := sp.W.Write(b); err != nil {
		sp.Err = err
	}
}
