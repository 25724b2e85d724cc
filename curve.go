package spline

import (
	"iter"
	"slices"
)

// Default sample counts. DefaultSamples is used when drawing a curve or a
// segment, DefaultCurveSamples when sampling a lone curve, and
// DefaultLengthSamples when approximating arc length.
const (
	DefaultSamples       = 100
	DefaultCurveSamples  = 50
	DefaultLengthSamples = 200
)

var _ ParametricCurve = Bezier{}
var _ ParametricCurve = CubicBez{}
var _ ParametricCurve = BSpline{}

// ParametricCurve describes a curve parametrized by a scalar in [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Values of t outside [0, 1] are
	// clamped.
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Samples returns an iterator over count+1 points of c, evaluated at
// t = i/count for i = 0, …, count. Both end points are included. A count less
// than 1 is treated as 1.
func Samples(c ParametricCurve, count int) iter.Seq[Point] {
	count = max(count, 1)
	return func(yield func(Point) bool) {
		for i := 0; i <= count; i++ {
			var pt Point
			switch i {
			case 0:
				pt = c.Start()
			case count:
				pt = c.End()
			default:
				pt = c.Eval(float64(i) / float64(count))
			}
			if !yield(pt) {
				return
			}
		}
	}
}

// SampleCurve collects [Samples] into a slice.
func SampleCurve(c ParametricCurve, count int) []Point {
	return slices.Collect(Samples(c, count))
}

// PolylineLength returns the sum of the distances between consecutive points.
func PolylineLength(seq iter.Seq[Point]) float64 {
	var l float64
	var prev option[Point]
	for pt := range seq {
		if prev.isSet {
			l += prev.value.Distance(pt)
		}
		prev.set(pt)
	}
	return l
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
