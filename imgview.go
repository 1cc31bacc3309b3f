// Package imgview displays in-memory pixel buffers. A [Widget] rescales every
// submitted frame to a fixed width, converts it to a displayable image and
// asks its [Host] to repaint. The host later hands the widget a [Painter] and
// the widget draws the stored frame onto it.
//
// A Widget is not safe for concurrent use. All calls are expected on the
// host's UI goroutine.
package imgview

import (
	"image"

	"git.sr.ht/~rockorager/imgview/log"
)

// TargetWidth is the width, in pixels, every displayed frame is scaled to
const TargetWidth = 480

// Host is the part of a UI toolkit a Widget lives in
type Host interface {
	// SetFixedSize resizes the visible bounds of the widget
	SetFixedSize(width int, height int)
	// Repaint schedules a paint cycle. It must not paint synchronously
	Repaint()
}

// Painter is a drawing surface delivered by the host during a paint cycle
type Painter interface {
	// DrawImage blits img with its top left corner at (x, y), spanning
	// width x height pixels
	DrawImage(x int, y int, width int, height int, img image.Image)
}

// Options configure a Widget at construction
type Options struct {
	// TargetWidth overrides the width frames are scaled to. Zero means
	// [TargetWidth]
	TargetWidth int
}

// Widget holds the most recently submitted frame
type Widget struct {
	host        Host
	targetWidth int
	// *image.Paletted for grayscale frames, *RGB for color. nil when
	// nothing is displayed
	img image.Image
}

type nopHost struct{}

func (nopHost) SetFixedSize(int, int) {}
func (nopHost) Repaint()              {}

// New creates a widget hosted by host. A nil host is allowed; size changes and
// repaint requests are then dropped
func New(host Host, opts Options) *Widget {
	if host == nil {
		host = nopHost{}
	}
	w := opts.TargetWidth
	if w <= 0 {
		w = TargetWidth
	}
	// build the shared palette up front rather than on the first frame
	GrayPalette()
	return &Widget{
		host:        host,
		targetWidth: w,
	}
}

// Update replaces the displayed frame with buf, scaled to the target width.
// Color buffers must be in blue-green-red order. Empty or malformed buffers
// are logged and ignored, leaving the current frame in place
func (w *Widget) Update(buf Buffer) {
	if buf.Empty() {
		log.Warn("not updating image: the provided image is empty")
		return
	}
	if err := buf.Validate(); err != nil {
		log.Error("not updating image: %v", err)
		return
	}

	scaled := resizeBuffer(buf, w.targetWidth)

	var img image.Image
	switch scaled.Channels {
	case 1:
		img = &image.Paletted{
			Pix:     scaled.Pix,
			Stride:  scaled.Stride(),
			Rect:    image.Rect(0, 0, scaled.Width, scaled.Height),
			Palette: GrayPalette(),
		}
	default:
		img = scaled.bgr().ToRGB()
	}

	w.host.SetFixedSize(scaled.Width, scaled.Height)
	w.img = img
	log.Trace("displaying %dx%d frame, %d channels", scaled.Width, scaled.Height, scaled.Channels)
	w.host.Repaint()
}

// Clear drops the displayed frame. The widget paints nothing until the next
// Update
func (w *Widget) Clear() {
	w.img = nil
	w.host.Repaint()
}

// Paint draws the displayed frame at the origin of p. Nothing is drawn when
// there is no frame
func (w *Widget) Paint(p Painter) {
	if w.img == nil {
		return
	}
	b := w.img.Bounds()
	p.DrawImage(0, 0, b.Dx(), b.Dy(), w.img)
}

// Image returns the displayed frame, or nil
func (w *Widget) Image() image.Image {
	return w.img
}

// HasImage reports whether a frame is displayed
func (w *Widget) HasImage() bool {
	return w.img != nil
}

// Size is the pixel size of the displayed frame, zero when there is none
func (w *Widget) Size() (width int, height int) {
	if w.img == nil {
		return 0, 0
	}
	b := w.img.Bounds()
	return b.Dx(), b.Dy()
}

// TargetWidth is the width frames are scaled to
func (w *Widget) TargetWidth() int {
	return w.targetWidth
}
