package render

import (
	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
)

// View maps the world coordinates of a frame onto an image. World y grows
// upwards, image y downwards.
type View struct {
	Width, Height int
	Transform     spline.Affine
}

// NewView returns the view that fits bounds into a canvas of the given
// configuration, keeping the aspect ratio and leaving the margin free.
func NewView(bounds spline.Rect, c lab.CanvasConfig) View {
	c = c.WithDefaults()
	m := float64(*c.Margin)
	dst := spline.Rect{X1: float64(c.Width), Y1: float64(c.Height)}.Inflate(-m, -m)
	return View{
		Width:     c.Width,
		Height:    c.Height,
		Transform: spline.FitRect(bounds, dst, true),
	}
}

// FrameView returns the view fitting all of f.
func FrameView(f lab.Frame, c lab.CanvasConfig) View {
	return NewView(f.Bounds(), c)
}

// Point maps a world point to image coordinates.
func (v View) Point(p spline.Point) spline.Point {
	return p.Transform(v.Transform)
}

// World maps image coordinates back to world coordinates, for placing points
// with a pointer.
func (v View) World(p spline.Point) spline.Point {
	return p.Transform(v.Transform.Invert())
}
