// Package plot draws the damped oscillation Y = cos(2πX)·e^(−C·X) as an
// image, giving the image view something that changes over time to show
package plot

import (
	"fmt"
	"image"
	"math"

	"git.sr.ht/~rockorager/imgview"

	"github.com/fogleman/gg"
)

const (
	// Default plot size in pixels
	Width  = 640
	Height = 480

	// Samples is the number of points on the curve
	Samples = 200
	// XMax is the end of the plotted time range. The range starts at zero
	XMax = 5.0

	marginLeft   = 70
	marginRight  = 20
	marginTop    = 50
	marginBottom = 45
	gridLines    = 5
)

// Damped samples Y = cos(2πX)·e^(−c·X) at n evenly spaced X in [0, XMax]
func Damped(c float64, n int) (xs []float64, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		x := 0.0
		if n > 1 {
			x = XMax * float64(i) / float64(n-1)
		}
		xs[i] = x
		ys[i] = math.Cos(2*math.Pi*x) * math.Exp(-c*x)
	}
	return xs, ys
}

// yRange returns the padded vertical extent of ys
func yRange(ys []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	if !(hi > lo) {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// Render draws the curve for c, with grid, axis labels and a title, on a
// white background
func Render(c float64, width int, height int) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	xs, ys := Damped(c, Samples)
	yMin, yMax := yRange(ys)

	left := float64(marginLeft)
	top := float64(marginTop)
	right := float64(width - marginRight)
	bottom := float64(height - marginBottom)
	px := func(x float64) float64 {
		return left + (x/XMax)*(right-left)
	}
	py := func(y float64) float64 {
		return bottom - (y-yMin)/(yMax-yMin)*(bottom-top)
	}

	// grid and tick labels
	dc.SetLineWidth(1)
	for i := 0; i <= gridLines; i += 1 {
		x := XMax * float64(i) / gridLines
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(px(x), top, px(x), bottom)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", x), px(x), bottom+12, 0.5, 0.5)

		y := yMin + (yMax-yMin)*float64(i)/gridLines
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(left, py(y), right, py(y))
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", y), left-6, py(y), 1, 0.5)
	}

	// frame
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(left, top, right-left, bottom-top)
	dc.Stroke()

	// curve
	dc.SetLineWidth(1.5)
	for i := range xs {
		if i == 0 {
			dc.MoveTo(px(xs[i]), py(ys[i]))
			continue
		}
		dc.LineTo(px(xs[i]), py(ys[i]))
	}
	dc.Stroke()

	// labels
	w := float64(width)
	dc.DrawStringAnchored("Cosine function plot, modulated by exponential", w/2, 14, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Equation: Y = COS(2.pi.X) . e^(-C.X) with C = %.2f", c), w/2, 30, 0.5, 0.5)
	dc.DrawStringAnchored("Time (seconds)", (left+right)/2, float64(height)-10, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 12, (top+bottom)/2)
	dc.DrawStringAnchored("Damped oscillation", 12, (top+bottom)/2, 0.5, 0.5)
	dc.Pop()

	return dc.Image()
}

// Frame renders the plot for c at the default size as a BGR buffer
func Frame(c float64) imgview.Buffer {
	return imgview.BufferFromImage(Render(c, Width, Height), false)
}

// Oscillator sweeps the damping constant back and forth between -1 and 1
type Oscillator struct {
	factor float64
	sign   float64
	step   float64
}

// NewOscillator starts at 1.0, moving by 0.01 per step
func NewOscillator() *Oscillator {
	return &Oscillator{
		factor: 1.0,
		sign:   1.0,
		step:   0.01,
	}
}

// Factor is the current damping constant
func (o *Oscillator) Factor() float64 {
	return o.factor
}

// Advance moves the constant one step and returns it. When the magnitude
// passes 1 the direction reverses
func (o *Oscillator) Advance() float64 {
	o.factor += o.sign * o.step
	if math.Abs(o.factor) > 1 {
		o.sign *= -1
		o.factor += o.sign * o.step
	}
	return o.factor
}
