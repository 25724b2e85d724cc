package spline

import (
	"fmt"
	"iter"
	"math"
)

// BSpline is a B-spline curve: control points, a degree and a knot vector.
// Like [Bezier], it never changes after construction.
type BSpline struct {
	points []Point
	degree int
	knots  Knots
}

// NewBSpline returns the B-spline of the given degree over points and knots.
// A nil knot vector selects [ClampedKnots]. The points and knots are copied.
func NewBSpline(points []Point, degree int, knots Knots) (BSpline, error) {
	knots, err := validateBSpline("NewBSpline", points, degree, knots)
	if err != nil {
		return BSpline{}, err
	}
	return BSpline{
		points: clonePoints(points),
		degree: degree,
		knots:  knots.Clone(),
	}, nil
}

func validateBSpline(op string, points []Point, degree int, knots Knots) (Knots, error) {
	if len(points) == 0 {
		return nil, argErrorf(op, "need at least 1 control point, got 0")
	}
	if err := checkDegree(op, len(points), degree); err != nil {
		return nil, err
	}
	if knots == nil {
		return clampedKnots(len(points), degree), nil
	}
	if err := knots.validate(op, len(points), degree); err != nil {
		return nil, err
	}
	return knots, nil
}

// BSplineDefinitionPoint evaluates a B-spline at t as the sum of all control
// points weighted by their basis functions, Σ N_{i,degree}(t)·points[i]. A nil
// knot vector selects [ClampedKnots]. t is clamped to the domain and must not
// be NaN.
func BSplineDefinitionPoint(points []Point, degree int, knots Knots, t float64) (Point, error) {
	knots, err := validateBSpline("BSplineDefinitionPoint", points, degree, knots)
	if err != nil {
		return Point{}, err
	}
	if math.IsNaN(t) {
		return Point{}, argErrorf("BSplineDefinitionPoint", "parameter is NaN")
	}
	return bsplineDefinition(points, degree, knots, knots.clamp(degree, t)), nil
}

func bsplineDefinition(points []Point, degree int, knots Knots, t float64) Point {
	span := knots.span(degree, t)
	var x, y float64
	for i, p := range points {
		n := knots.basis(i, degree, t, span)
		x += n * p.X
		y += n * p.Y
	}
	return Point{X: x, Y: y}
}

// BSplineDeBoorPoint evaluates a B-spline at t with de Boor's algorithm, which
// blends only the degree+1 control points whose basis functions are non-zero
// in the knot span containing t. A nil knot vector selects [ClampedKnots].
// t is clamped to the domain and must not be NaN.
//
// It computes the same point as [BSplineDefinitionPoint], up to rounding.
func BSplineDeBoorPoint(points []Point, degree int, knots Knots, t float64) (Point, error) {
	knots, err := validateBSpline("BSplineDeBoorPoint", points, degree, knots)
	if err != nil {
		return Point{}, err
	}
	if math.IsNaN(t) {
		return Point{}, argErrorf("BSplineDeBoorPoint", "parameter is NaN")
	}
	return deBoor(points, degree, knots, knots.clamp(degree, t)), nil
}

func deBoor(points []Point, p int, knots Knots, t float64) Point {
	k := knots.span(p, t)
	d := make([]Point, p+1)
	copy(d, points[k-p:k+1])
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			lo := knots[j+k-p]
			hi := knots[j+1+k-r]
			var alpha float64
			if hi != lo {
				alpha = (t - lo) / (hi - lo)
			}
			d[j] = d[j-1].Lerp(d[j], alpha)
		}
	}
	return d[p]
}

// Degree returns the degree of the spline.
func (s BSpline) Degree() int { return s.degree }

// Points returns a copy of the control points.
func (s BSpline) Points() []Point { return clonePoints(s.points) }

// ControlPolygon returns the polyline through the control points, in order.
func (s BSpline) ControlPolygon() []Point { return clonePoints(s.points) }

// Knots returns a copy of the knot vector.
func (s BSpline) Knots() Knots { return s.knots.Clone() }

// Domain returns the knot parameter range the spline is defined over.
func (s BSpline) Domain() (lo, hi float64) {
	return s.knots.Domain(s.degree)
}

// param maps u ∈ [0, 1] onto the domain.
func (s BSpline) param(u float64) float64 {
	lo, hi := s.Domain()
	return lo + clamp01(u)*(hi-lo)
}

// Eval evaluates the spline at u ∈ [0, 1], which is mapped linearly onto the
// domain, using de Boor's algorithm. Use [BSpline.At] to evaluate at a knot
// parameter instead. A NaN u yields a NaN point.
func (s BSpline) Eval(u float64) Point {
	return deBoor(s.points, s.degree, s.knots, s.param(u))
}

// EvalWith is like [BSpline.Eval] but uses the given method, which must be
// [BSplineDefinition] or [BSplineDeBoor].
func (s BSpline) EvalWith(m Method, u float64) Point {
	f, ok := m.BSpline()
	if !ok {
		panic(fmt.Sprintf("spline: %v is not a B-spline method", m))
	}
	return f(s.points, s.degree, s.knots, s.param(u))
}

// At evaluates the spline at the knot parameter t, which is clamped to the
// domain.
func (s BSpline) At(t float64) Point {
	return deBoor(s.points, s.degree, s.knots, s.knots.clamp(s.degree, t))
}

func (s BSpline) Start() Point { return s.Eval(0) }
func (s BSpline) End() Point   { return s.Eval(1) }

// Samples returns an iterator over count+1 points evenly spaced in parameter
// over the domain, including both ends.
func (s BSpline) Samples(count int) iter.Seq[Point] {
	return Samples(s, count)
}

// Sample is like [BSpline.Samples] but returns a slice.
func (s BSpline) Sample(count int) []Point {
	return SampleCurve(s, count)
}

// SampleWith samples the spline like [BSpline.Sample], evaluating with the
// given B-spline method.
func (s BSpline) SampleWith(m Method, count int) []Point {
	count = max(count, 1)
	out := make([]Point, count+1)
	for i := range out {
		out[i] = s.EvalWith(m, float64(i)/float64(count))
	}
	return out
}
