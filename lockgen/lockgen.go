package lockgen

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

var ErrInvalidSize = errors.New("icon size must be positive")

var (
	Primary    = color.RGBA{R: 102, G: 126, B: 234, A: 255} // #667eea
	Secondary  = color.RGBA{R: 118, G: 75, B: 162, A: 255}  // #764ba2
	Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255} // #ffffff
)

// Hex formats c as a lowercase #rrggbb string (alpha is dropped).
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// lerpRGB truncates each channel, so t=0 is exactly a and t=1 is exactly b.
func lerpRGB(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 255,
	}
}

type ellipticalArc struct {
	rx     float64
	ry     float64
	rot    float64
	theta0 float64
	theta1 float64
}

// The path starts on the ellipse at theta0, so the center sits at (-rx, 0)
// when theta0 is 0.
func (a *ellipticalArc) Path() *canvas.Path {
	return canvas.EllipticalArc(
		a.rx, a.ry, a.rot, a.theta0, a.theta1,
	)
}

// glyph holds the lock geometry in pixels, measured from the top-left corner
// like an image would be. DrawIcon flips it into canvas coordinates.
type glyph struct {
	size        int
	center      int
	radius      int
	bodyX       int
	bodyY       int
	bodyWidth   int
	bodyHeight  int
	shackle     ellipticalArc
	strokeWidth float64
	holeRadius  int
}

func newGlyph(size int) glyph {
	center := size / 2
	bodyWidth := int(float64(size) * 0.3)
	bodyHeight := int(float64(size) * 0.4)
	shackleWidth := int(float64(size) * 0.2)
	shackleHeight := int(float64(size) * 0.15)
	return glyph{
		size:       size,
		center:     center,
		radius:     int(float64(size) * 0.4),
		bodyX:      center - bodyWidth/2,
		bodyY:      center - bodyHeight/2,
		bodyWidth:  bodyWidth,
		bodyHeight: bodyHeight,
		// Upper half of the ellipse, which is CCW from 0 to 180 degrees once
		// the y axis points up.
		shackle:     ellipticalArc{float64(shackleWidth) / 2, float64(shackleHeight), 0.0, 0.0, 180.0},
		strokeWidth: max(1.0, float64(size)/24.0),
		holeRadius:  max(1, int(float64(size)*0.08)),
	}
}

// flip converts a top-down pixel row into the canvas' bottom-up y coordinate.
func (g *glyph) flip(y float64) float64 {
	return float64(g.size) - y
}

// DrawIcon lays out the lock glyph on a size x size canvas. Anything outside
// the background circle is left transparent.
func DrawIcon(size int) *canvas.Canvas {
	c := canvas.New(float64(size), float64(size))
	ctx := canvas.NewContext(c)
	g := newGlyph(size)
	cx, cy := float64(g.center), g.flip(float64(g.center))

	// Concentric discs from the rim inwards: secondary at the edge, primary at
	// the middle.
	ctx.SetStrokeColor(canvas.Transparent)
	for r := g.radius; r > 0; r-- {
		ctx.SetFillColor(lerpRGB(Primary, Secondary, float64(r)/float64(g.radius)))
		ctx.DrawPath(cx, cy, canvas.Circle(float64(r)))
	}

	ctx.SetFillColor(Foreground)
	bodyBottom := g.flip(float64(g.bodyY + g.bodyHeight))
	ctx.DrawPath(float64(g.bodyX), bodyBottom, canvas.Rectangle(float64(g.bodyWidth), float64(g.bodyHeight)))

	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(Foreground)
	ctx.SetStrokeWidth(g.strokeWidth)
	ctx.DrawPath(cx+g.shackle.rx, g.flip(float64(g.bodyY)), g.shackle.Path())

	// Centered on the middle of the center pixel so even the 1px keyhole of
	// the smallest icon covers it fully.
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(Primary)
	ctx.DrawPath(cx+0.5, g.flip(float64(g.center)+0.5), canvas.Circle(float64(g.holeRadius)))

	return c
}

// WritePNG rasterizes the glyph at one pixel per canvas unit, so the image is
// exactly size x size.
func WritePNG(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	c := DrawIcon(size)
	pngWriter := renderers.PNG(canvas.DPMM(1.0))
	return pngWriter(w, c)
}
