// Package imageview hosts an [imgview.Widget] inside a vxfw application.
// Frames are painted with half block characters: every cell shows two
// vertically stacked pixels.
package imageview

import (
	"image"
	"image/color"
	"math"

	"git.sr.ht/~rockorager/imgview"
	"git.sr.ht/~rockorager/imgview/log"
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"golang.org/x/image/draw"
)

// Alpha value that we consider to be transparent enough to use default
// background color
const transparentEnough = 50

type (
	// UpdateEvent replaces the displayed frame. Post it to the application
	// to update the view from outside the event loop
	UpdateEvent struct {
		Buffer imgview.Buffer
	}
	// ClearEvent drops the displayed frame
	ClearEvent struct{}
)

// ImageView is a vxfw.Widget displaying an [imgview.Widget]
type ImageView struct {
	widget *imgview.Widget

	// fixed size in pixels, set by the widget
	width  int
	height int
	dirty  bool
}

// New creates an empty ImageView
func New(opts imgview.Options) *ImageView {
	iv := &ImageView{}
	iv.widget = imgview.New(iv, opts)
	return iv
}

// Widget returns the hosted widget
func (iv *ImageView) Widget() *imgview.Widget {
	return iv.widget
}

// SetFixedSize implements [imgview.Host]
func (iv *ImageView) SetFixedSize(width int, height int) {
	iv.width = width
	iv.height = height
}

// Repaint implements [imgview.Host]. The view is marked dirty; the redraw is
// requested by the next command returned to the application
func (iv *ImageView) Repaint() {
	iv.dirty = true
}

// Update submits buf to the widget. The returned command must be handed to
// the application
func (iv *ImageView) Update(buf imgview.Buffer) vxfw.Command {
	iv.widget.Update(buf)
	return iv.flush()
}

// Clear drops the displayed frame. The returned command must be handed to
// the application
func (iv *ImageView) Clear() vxfw.Command {
	iv.widget.Clear()
	return iv.flush()
}

func (iv *ImageView) flush() vxfw.Command {
	if !iv.dirty {
		return nil
	}
	iv.dirty = false
	return vxfw.RedrawCmd{}
}

func (iv *ImageView) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case UpdateEvent:
		return iv.Update(ev.Buffer), nil
	case ClearEvent:
		return iv.Clear(), nil
	}
	return iv.flush(), nil
}

func (iv *ImageView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	p := &cellPainter{max: ctx.Max}
	iv.widget.Paint(p)
	if p.cells == nil {
		// Nothing painted. Keep our size but don't fill anything
		cols, rows := fit(iv.width, iv.height, ctx.Max)
		return newSurface(cols, rows, make([]vaxis.Cell, cols*rows), iv), nil
	}
	return newSurface(p.cols, p.rows, p.cells, iv), nil
}

// newSurface wraps cells without going through vxfw.NewSurface, which sizes
// its buffer with uint16 arithmetic
func newSurface(cols int, rows int, cells []vaxis.Cell, w vxfw.Widget) vxfw.Surface {
	return vxfw.Surface{
		Size: vxfw.Size{
			Width:  uint16(cols),
			Height: uint16(rows),
		},
		Widget:   w,
		Buffer:   cells,
		Children: []vxfw.SubSurface{},
	}
}

// fit returns the cell size of a w x h pixel area, shrunk to fit within max.
// The area will not be upscaled, nor will it's aspect ratio be changed
func fit(w int, h int, max vxfw.Size) (cols int, rows int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	pw, ph := fitPixels(w, h, max)
	return pw, (ph + 1) / 2
}

func fitPixels(w int, h int, max vxfw.Size) (int, int) {
	// a cell is 1x2 pixels
	maxW := float64(max.Width)
	maxH := 2 * float64(max.Height)
	if max.HasUnboundedWidth() {
		maxW = math.Inf(1)
	}
	if max.HasUnboundedHeight() {
		maxH = math.Inf(1)
	}
	sf := math.Min(maxW/float64(w), maxH/float64(h))
	if sf >= 1 {
		return w, h
	}
	newW := int(sf * float64(w))
	newH := int(sf * float64(h))
	if newW == 0 || newH == 0 {
		return 0, 0
	}
	return newW, newH
}

// cellPainter is the [imgview.Painter] used during Draw. It encodes the image
// into half block cells
type cellPainter struct {
	max   vxfw.Size
	cells []vaxis.Cell
	cols  int
	rows  int
}

func (p *cellPainter) DrawImage(x int, y int, width int, height int, img image.Image) {
	r := image.Rect(x, y, x+width, y+height).Intersect(img.Bounds())
	w, h := fitPixels(r.Dx(), r.Dy(), p.max)
	if w == 0 || h == 0 {
		return
	}
	var src image.Image = img
	if w != r.Dx() || h != r.Dy() {
		log.Debug("resizing image from (%d x %d) to (%d x %d)", r.Dx(), r.Dy(), w, h)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Rect, img, r, draw.Src, nil)
		src = dst
		r = dst.Rect
	}

	p.cols = w
	p.rows = (h + 1) / 2
	// The image will be made into an array of cells, each cell will capture
	// 1x2 pixels
	p.cells = make([]vaxis.Cell, p.cols*p.rows)
	for i := range p.cells {
		row := i / p.cols
		col := i - (row * p.cols)
		px := r.Min.X + col
		py := r.Min.Y + row*2

		top := color.RGBAModel.Convert(src.At(px, py)).(color.RGBA)
		var bot color.RGBA
		if py+1 < r.Max.Y {
			bot = color.RGBAModel.Convert(src.At(px, py+1)).(color.RGBA)
		}
		p.cells[i] = halfBlock(top, bot)
	}
}

// halfBlock returns a cell drawing top over bot. Figure out if one of the
// alpha channels is transparent "enough"
func halfBlock(top color.RGBA, bot color.RGBA) vaxis.Cell {
	switch {
	case top.A < transparentEnough && bot.A < transparentEnough:
		// Use a transparent space
		return vaxis.Cell{
			Character: vaxis.Character{
				Grapheme: " ",
				Width:    1,
			},
		}
	case top.A < transparentEnough:
		// Top is transparent. Use a lower block
		return vaxis.Cell{
			Character: vaxis.Character{
				Grapheme: "▄",
				Width:    1,
			},
			Style: vaxis.Style{
				Foreground: vaxis.RGBColor(bot.R, bot.G, bot.B),
			},
		}
	case bot.A < transparentEnough:
		// Bottom is transparent. Use an upper block
		return vaxis.Cell{
			Character: vaxis.Character{
				Grapheme: "▀",
				Width:    1,
			},
			Style: vaxis.Style{
				Foreground: vaxis.RGBColor(top.R, top.G, top.B),
			},
		}
	default:
		return vaxis.Cell{
			Character: vaxis.Character{
				Grapheme: "▀",
				Width:    1,
			},
			Style: vaxis.Style{
				Foreground: vaxis.RGBColor(top.R, top.G, top.B),
				Background: vaxis.RGBColor(bot.R, bot.G, bot.B),
			},
		}
	}
}

// Verify we meet the Widget interface
var (
	_ vxfw.Widget       = &ImageView{}
	_ vxfw.EventHandler = &ImageView{}
	_ imgview.Host      = &ImageView{}
)
