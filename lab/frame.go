package lab

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"honnef.co/go/spline"
)

// Frame is everything a renderer needs to draw the current state of a
// session.
type Frame struct {
	Method spline.Method
	// Curves holds one polyline of samples per curve segment. B-splines
	// are a single polyline.
	Curves [][]spline.Point
	// Polygon is the control polygon the curves were evaluated from. It
	// includes handles implied by Settings.Expand and handles moved by the
	// continuity policy.
	Polygon []spline.Point
	// Controls are the points placed by the user.
	Controls []spline.Point
	// Joints describes the joints between Bézier segments.
	Joints []spline.Joint
	// Pending is the number of trailing points that don't yet complete a
	// segment and weren't drawn.
	Pending int
}

// Empty reports whether the frame has no curves.
func (f Frame) Empty() bool { return len(f.Curves) == 0 }

// Length returns the total length of the sampled curves.
func (f Frame) Length() float64 {
	var l float64
	for _, c := range f.Curves {
		l += spline.PolylineLength(slices.Values(c))
	}
	return l
}

// Bounds returns the smallest rectangle containing the curves, the control
// polygon and the placed points.
func (f Frame) Bounds() spline.Rect {
	var r spline.Rect
	first := true
	add := func(pts []spline.Point) {
		if len(pts) == 0 {
			return
		}
		b := spline.BoundingRect(pts)
		if first {
			r, first = b, false
		} else {
			r = r.Union(b)
		}
	}
	for _, c := range f.Curves {
		add(c)
	}
	add(f.Polygon)
	add(f.Controls)
	return r
}

// Kinks returns the joints that aren't smooth.
func (f Frame) Kinks() []spline.Joint {
	var out []spline.Joint
	for _, j := range f.Joints {
		if !j.Smooth {
			out = append(out, j)
		}
	}
	return out
}

// Frame evaluates the session's points with the selected method. Fewer than
// two points give a frame without curves. On error, the returned frame still
// holds the placed points and, where known, the control polygon and joints.
func (s *Session) Frame() (Frame, error) {
	f := Frame{
		Method:   s.settings.Method,
		Controls: slices.Clone(s.points),
	}
	log := Logger()
	if len(s.points) < 2 {
		log.Debug("frame", "method", f.Method, "points", len(s.points))
		return f, nil
	}
	var err error
	if f.Method.IsBSpline() {
		err = s.bsplineFrame(&f)
	} else {
		err = s.bezierFrame(&f)
	}
	for _, j := range f.Kinks() {
		log.Warn("kinked joint", "segment", j.Index, "point", j.Point, "angle", j.Angle)
	}
	if err != nil {
		var cerr *spline.ContinuityError
		if !errors.As(err, &cerr) {
			log.Warn("cannot evaluate curve", "method", f.Method, "points", len(s.points), "err", err)
		}
		return f, err
	}
	if f.Pending > 0 {
		log.Warn("points don't complete a segment", "pending", f.Pending, "points", len(s.points))
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("frame",
			"method", f.Method,
			"points", len(s.points),
			"curves", len(f.Curves),
			"pending", f.Pending,
			"length", f.Length())
	}
	return f, nil
}

func (s *Session) bsplineFrame(f *Frame) error {
	degree := min(s.settings.degree(), len(s.points)-1)
	sp, err := spline.NewBSpline(s.points, degree, nil)
	if err != nil {
		return err
	}
	f.Polygon = sp.ControlPolygon()
	spans := len(s.points) - degree
	f.Curves = [][]spline.Point{sp.SampleWith(f.Method, s.settings.samples()*spans)}
	return nil
}

func (s *Session) bezierFrame(f *Frame) error {
	pts := s.points
	if s.settings.Expand && len(pts) >= 4 {
		usable := len(pts) - (len(pts)-4)%2
		f.Pending = len(pts) - usable
		var err error
		if pts, err = spline.ExpandG1(pts[:usable]); err != nil {
			return err
		}
	}

	n := s.settings.Segments
	if n == 0 && len(pts) >= 4 {
		n = (len(pts) - 1) / 3
		used := 3*n + 1
		f.Pending += len(pts) - used
		pts = pts[:used]
	}
	f.Polygon = slices.Clone(pts)

	if n > 0 {
		segs, err := spline.CubicSegments(pts, n)
		if err != nil {
			return err
		}
		if g1 := s.settings.G1; g1 == spline.G1Mirror || g1 == spline.G1Align {
			if pts, err = spline.EnforceG1(pts, g1); err != nil {
				return err
			}
			f.Polygon = pts
			if segs, err = spline.CubicSegments(pts, n); err != nil {
				return err
			}
		}
		tol := s.settings.Tolerance
		f.Joints = segs.Joints(tol)
		if s.settings.G1 == spline.G1Strict {
			if err := segs.CheckG1(tol); err != nil {
				return err
			}
		}
	}

	curves, err := spline.ComposeCurve(pts, n, &spline.ComposeOptions{
		Samples: s.settings.samples(),
		Method:  f.Method,
	})
	if err != nil {
		return err
	}
	f.Curves = curves
	return nil
}
