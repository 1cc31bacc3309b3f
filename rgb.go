package imgview

import (
	"image"
	"image/color"
)

// RGB is a 24 bit direct-color image. Each pixel is stored as three bytes in
// red, green, blue order and rows are 3*width bytes apart. It is the format
// the widget displays color frames in
type RGB struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewRGB returns a new RGB image with the given bounds
func NewRGB(r image.Rectangle) *RGB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &RGB{Rect: r}
	}
	return &RGB{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the opaque color of the pixel at (x, y)
func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA sets the pixel at (x, y). Alpha is dropped
func (p *RGB) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y)
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// BGR is RGB with the channel order reversed, the layout of color frames as
// they are submitted to the widget
type BGR struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewBGR returns a new BGR image with the given bounds
func NewBGR(r image.Rectangle) *BGR {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &BGR{Rect: r}
	}
	return &BGR{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

func (p *BGR) ColorModel() color.Model { return color.RGBAModel }

func (p *BGR) Bounds() image.Rectangle { return p.Rect }

func (p *BGR) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *BGR) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[2], G: s[1], B: s[0], A: 0xff}
}

func (p *BGR) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (p *BGR) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.B
	s[1] = c.G
	s[2] = c.R
}

func (p *BGR) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// ToRGB swaps the channel order of every pixel into a new RGB image
func (p *BGR) ToRGB() *RGB {
	dst := NewRGB(p.Rect)
	w := p.Rect.Dx()
	for y := 0; y < p.Rect.Dy(); y += 1 {
		src := p.Pix[y*p.Stride : y*p.Stride+3*w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+3*w]
		for i := 0; i < len(src); i += 3 {
			out[i] = src[i+2]
			out[i+1] = src[i+1]
			out[i+2] = src[i]
		}
	}
	return dst
}
