package spline

import (
	"fmt"
	"strings"
)

// Method selects the algorithm used to evaluate a curve.
type Method int

const (
	// Bernstein evaluates Bézier curves as Bernstein-weighted sums.
	Bernstein Method = iota
	// DeCasteljau evaluates Bézier curves by repeated linear interpolation.
	DeCasteljau
	// BSplineDefinition evaluates B-splines by summing Cox–de Boor basis
	// functions over all control points.
	BSplineDefinition
	// BSplineDeBoor evaluates B-splines with de Boor's algorithm, touching
	// only the degree+1 control points that influence t.
	BSplineDeBoor
)

var methodNames = [...]string{
	Bernstein:         "bernstein",
	DeCasteljau:       "decasteljau",
	BSplineDefinition: "bspline-definition",
	BSplineDeBoor:     "bspline-deboor",
}

// Methods lists all methods, in declaration order.
var Methods = []Method{Bernstein, DeCasteljau, BSplineDefinition, BSplineDeBoor}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// IsBSpline reports whether m evaluates B-splines rather than Bézier curves.
func (m Method) IsBSpline() bool {
	return m == BSplineDefinition || m == BSplineDeBoor
}

// ParseMethod parses the name of a method, as returned by [Method.String].
// Matching is case-insensitive and also accepts "de-casteljau" and
// "casteljau".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bernstein":
		return Bernstein, nil
	case "decasteljau", "de-casteljau", "casteljau":
		return DeCasteljau, nil
	case "bspline-definition", "bspline-def":
		return BSplineDefinition, nil
	case "bspline-deboor", "deboor", "de-boor":
		return BSplineDeBoor, nil
	default:
		return 0, argErrorf("ParseMethod", "unknown method %q", s)
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, argErrorf("Method.MarshalText", "unknown method %d", int(m))
	}
	return []byte(methodNames[m]), nil
}

func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// BezierFunc evaluates the Bézier curve defined by points at t. points must
// not be empty; t is clamped to [0, 1].
type BezierFunc func(points []Point, t float64) Point

// BSplineFunc evaluates a B-spline at t. The arguments must have passed
// [Knots.Validate]; t is clamped to the knot vector's domain.
type BSplineFunc func(points []Point, degree int, knots Knots, t float64) Point

var bezierFuncs = [...]BezierFunc{
	Bernstein: func(points []Point, t float64) Point {
		return bernstein(points, clamp01(t))
	},
	DeCasteljau: func(points []Point, t float64) Point {
		return deCasteljau(points, clamp01(t))
	},
}

var bsplineFuncs = [...]BSplineFunc{
	BSplineDefinition: func(points []Point, degree int, knots Knots, t float64) Point {
		return bsplineDefinition(points, degree, knots, knots.clamp(degree, t))
	},
	BSplineDeBoor: func(points []Point, degree int, knots Knots, t float64) Point {
		return deBoor(points, degree, knots, knots.clamp(degree, t))
	},
}

// Bezier returns the Bézier evaluator for m. It reports false for the
// B-spline methods.
func (m Method) Bezier() (BezierFunc, bool) {
	if m < 0 || int(m) >= len(bezierFuncs) {
		return nil, false
	}
	f := bezierFuncs[m]
	return f, f != nil
}

// BSpline returns the B-spline evaluator for m. It reports false for the
// Bézier methods.
func (m Method) BSpline() (BSplineFunc, bool) {
	if m < 0 || int(m) >= len(bsplineFuncs) {
		return nil, false
	}
	f := bsplineFuncs[m]
	return f, f != nil
}
