package spline

import (
	"fmt"
	"iter"
	"slices"
)

// Bezier is a Bézier curve of arbitrary degree. The degree is one less than
// the number of control points.
//
// A Bezier never changes after construction. All methods that derive new
// curves return fresh values that don't share memory with the receiver.
//
// The zero value has no control points and isn't a valid curve; evaluating
// it panics. Use [NewBezier] or [MustBezier].
type Bezier struct {
	points []Point
}

// NewBezier returns the Bézier curve with the given control points. The
// points are copied. At least one point is required; a single point is a
// curve of degree 0.
func NewBezier(points ...Point) (Bezier, error) {
	if len(points) == 0 {
		return Bezier{}, argErrorf("NewBezier", "need at least 1 control point, got 0")
	}
	return Bezier{points: clonePoints(points)}, nil
}

// MustBezier is like [NewBezier] but panics on error. It is intended for
// curves with a fixed number of points.
func MustBezier(points ...Point) Bezier {
	b, err := NewBezier(points...)
	if err != nil {
		panic(err)
	}
	return b
}

// Degree returns the degree of the curve.
func (b Bezier) Degree() int { return len(b.points) - 1 }

// Len returns the number of control points.
func (b Bezier) Len() int { return len(b.points) }

// Point returns the i-th control point.
func (b Bezier) Point(i int) Point { return b.points[i] }

// Points returns a copy of the control points.
func (b Bezier) Points() []Point { return clonePoints(b.points) }

// ControlPolygon returns the polyline through the control points, in order.
func (b Bezier) ControlPolygon() []Point { return clonePoints(b.points) }

func (b Bezier) Start() Point { return b.points[0] }
func (b Bezier) End() Point   { return b.points[len(b.points)-1] }

func (b Bezier) String() string {
	return fmt.Sprintf("Bezier%v", b.points)
}

// Eval evaluates the curve at t using the Bernstein form. t is clamped to
// [0, 1].
func (b Bezier) Eval(t float64) Point {
	return bernstein(b.points, clamp01(t))
}

// EvalWith evaluates the curve at t using the given method, which must be
// [Bernstein] or [DeCasteljau].
func (b Bezier) EvalWith(m Method, t float64) Point {
	f, ok := m.Bezier()
	if !ok {
		panic(fmt.Sprintf("spline: %v is not a Bézier method", m))
	}
	return f(b.points, t)
}

// Pyramid returns the de Casteljau pyramid of the curve at t.
func (b Bezier) Pyramid(t float64) Pyramid {
	return buildPyramid(b.points, clamp01(t))
}

// Subdivide splits the curve at t, using de Casteljau. The first curve
// covers [0, t] and the second [t, 1] of the original; both are
// reparametrized to [0, 1].
func (b Bezier) Subdivide(t float64) (Bezier, Bezier) {
	pyr := b.Pyramid(t)
	return Bezier{pyr.Left()}, Bezier{pyr.Right()}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1]. If t1 < t0 the result runs backwards.
func (b Bezier) Subsegment(t0, t1 float64) Bezier {
	t0, t1 = clamp01(t0), clamp01(t1)
	if t1 < t0 {
		seg := b.Subsegment(t1, t0)
		slices.Reverse(seg.points)
		return seg
	}
	_, right := b.Subdivide(t0)
	if t0 == 1 {
		return right
	}
	left, _ := right.Subdivide((t1 - t0) / (1 - t0))
	return left
}

// DerivativeControlPoints returns the control points of the first derivative
// of the Bézier curve defined by points: d[i] = n·(points[i+1] − points[i]),
// where n is the degree. The result has one element less than points, and is
// empty for curves of degree 0.
func DerivativeControlPoints(points []Point) []Vec2 {
	n := len(points) - 1
	if n <= 0 {
		return []Vec2{}
	}
	d := make([]Vec2, n)
	for i := range d {
		d[i] = points[i+1].Sub(points[i]).Mul(float64(n))
	}
	return d
}

// DerivativeAt returns the tangent vector of the Bézier curve defined by
// points at t. It isn't normalized. Curves of degree 0 have a zero
// derivative everywhere.
func DerivativeAt(points []Point, t float64) (Vec2, error) {
	if len(points) == 0 {
		return Vec2{}, argErrorf("DerivativeAt", "need at least 1 control point, got 0")
	}
	return bernsteinVec(DerivativeControlPoints(points), clamp01(t)), nil
}

// DerivativeAt returns the tangent vector at t. See [DerivativeAt].
func (b Bezier) DerivativeAt(t float64) Vec2 {
	return bernsteinVec(DerivativeControlPoints(b.points), clamp01(t))
}

// Deriv returns the derivative of the curve, the hodograph, as a curve of one
// degree less whose points are to be read as vectors. The derivative of a
// curve of degree 0 is the single point (0, 0).
func (b Bezier) Deriv() Bezier {
	d := DerivativeControlPoints(b.points)
	if len(d) == 0 {
		return Bezier{points: []Point{{}}}
	}
	out := make([]Point, len(d))
	for i, v := range d {
		out[i] = Point(v)
	}
	return Bezier{points: out}
}

// Samples returns an iterator over count+1 evenly spaced (in t) points of the
// curve, including both end points. A count less than 1 is treated as 1.
func (b Bezier) Samples(count int) iter.Seq[Point] {
	return Samples(b, count)
}

// Sample is like [Bezier.Samples] but returns a slice.
func (b Bezier) Sample(count int) []Point {
	return SampleCurve(b, count)
}

// ApproximateLength approximates the arc length of the curve by the length
// of the polyline through count+1 samples. The result never exceeds the true
// length and approaches it as count grows.
func (b Bezier) ApproximateLength(count int) float64 {
	return PolylineLength(b.Samples(count))
}

// BoundingBox returns the bounding box of the control polygon, which
// contains the curve.
func (b Bezier) BoundingBox() Rect {
	return BoundingRect(b.points)
}

// Cubic converts the curve to a [CubicBez]. It reports false if the curve
// isn't of degree 3.
func (b Bezier) Cubic() (CubicBez, bool) {
	if len(b.points) != 4 {
		return CubicBez{}, false
	}
	return CubicBez{b.points[0], b.points[1], b.points[2], b.points[3]}, true
}

// Transform applies an affine transformation to the control points.
func (b Bezier) Transform(aff Affine) Bezier {
	out := make([]Point, len(b.points))
	for i, p := range b.points {
		out[i] = p.Transform(aff)
	}
	return Bezier{points: out}
}

// Sample evaluates the Bézier curve defined by points at count+1 values of t
// evenly spaced in [0, 1], including both ends.
func Sample(points []Point, count int) ([]Point, error) {
	if len(points) == 0 {
		return nil, argErrorf("Sample", "need at least 1 control point, got 0")
	}
	if count < 1 {
		return nil, argErrorf("Sample", "sample count must be at least 1, got %d", count)
	}
	return Bezier{points: points}.Sample(count), nil
}

// ApproximateLength approximates the arc length of the Bézier curve defined
// by points with count chords. See [Bezier.ApproximateLength].
func ApproximateLength(points []Point, count int) (float64, error) {
	if len(points) == 0 {
		return 0, argErrorf("ApproximateLength", "need at least 1 control point, got 0")
	}
	if count < 1 {
		return 0, argErrorf("ApproximateLength", "sample count must be at least 1, got %d", count)
	}
	return Bezier{points: points}.ApproximateLength(count), nil
}
