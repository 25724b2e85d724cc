package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
)

// Canvas rasterizes frames into an RGBA image.
type Canvas struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
	filler *rasterx.Filler
}

// NewCanvas returns a canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
}

// Image returns the canvas' backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Draw paints f onto the canvas: the background, the control polygon, the
// curves and the placed points, in that order.
func (c *Canvas) Draw(f lab.Frame, st Style, v View) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)

	if st.ShowPolygon && len(f.Polygon) > 1 {
		c.stroke([][]spline.Point{f.Polygon}, st.PolygonWidth, st.PolygonDash, st.Polygon, v)
	}
	c.stroke(f.Curves, st.StrokeWidth, nil, st.Curve, v)
	if st.ShowPoints && len(f.Controls) > 0 {
		c.filler.Clear()
		c.filler.SetColor(st.Points)
		// Points whose disc misses the image are skipped.
		b := c.img.Bounds()
		area := spline.Rect{X1: float64(b.Dx()), Y1: float64(b.Dy())}.Inflate(st.PointRadius, st.PointRadius)
		for _, p := range f.Controls {
			q := v.Point(p)
			if !area.Contains(q) {
				continue
			}
			rasterx.AddCircle(q.X, q.Y, st.PointRadius, c.filler)
		}
		c.filler.Draw()
	}

	lab.Logger().Debug("rasterized frame",
		"width", c.img.Bounds().Dx(),
		"height", c.img.Bounds().Dy(),
		"curves", len(f.Curves),
		"points", len(f.Controls))
}

func (c *Canvas) stroke(lines [][]spline.Point, width float64, dash []float64, col color.Color, v View) {
	if width <= 0 {
		return
	}
	c.dasher.Clear()
	c.dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, dash, 0)
	c.dasher.SetColor(col)
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		p := v.Point(line[0])
		c.dasher.Start(rasterx.ToFixedP(p.X, p.Y))
		for _, q := range line[1:] {
			q = v.Point(q)
			c.dasher.Line(rasterx.ToFixedP(q.X, q.Y))
		}
		c.dasher.Stop(false)
	}
	c.dasher.Draw()
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
