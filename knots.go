package spline

import (
	"math"
	"slices"
	"sort"
)

// Knots is a knot vector: a non-decreasing sequence of parameter values that
// delimits the pieces of a B-spline. A B-spline of degree p with n control
// points has n+p+1 knots and is defined over the domain [knots[p], knots[n]].
type Knots []float64

// ClampedKnots returns the clamped uniform knot vector for count control
// points and the given degree, normalized to [0, 1]: degree+1 zeros, equally
// spaced interior knots and degree+1 ones. Splines over a clamped knot vector
// start at their first control point and end at their last.
//
// This is the knot vector used by [NewBSpline], [BSplineDefinitionPoint] and
// [BSplineDeBoorPoint] when none is given.
func ClampedKnots(count, degree int) (Knots, error) {
	if err := checkDegree("ClampedKnots", count, degree); err != nil {
		return nil, err
	}
	return clampedKnots(count, degree), nil
}

func clampedKnots(count, degree int) Knots {
	knots := make(Knots, count+degree+1)
	spans := count - degree
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= count:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(spans)
		}
	}
	return knots
}

// UniformKnots returns the unclamped uniform knot vector knots[i] = i for
// count control points and the given degree. The resulting domain is
// [degree, count], and the spline generally doesn't pass through any control
// point.
func UniformKnots(count, degree int) (Knots, error) {
	if err := checkDegree("UniformKnots", count, degree); err != nil {
		return nil, err
	}
	knots := make(Knots, count+degree+1)
	for i := range knots {
		knots[i] = float64(i)
	}
	return knots, nil
}

func checkDegree(op string, count, degree int) error {
	if degree < 0 {
		return argErrorf(op, "degree must not be negative, got %d", degree)
	}
	if degree >= count {
		return argErrorf(op, "degree %d needs at least %d control points, got %d", degree, degree+1, count)
	}
	return nil
}

// Validate checks that k is usable for a B-spline of the given degree with
// count control points.
func (k Knots) Validate(count, degree int) error {
	return k.validate("Knots.Validate", count, degree)
}

func (k Knots) validate(op string, count, degree int) error {
	if err := checkDegree(op, count, degree); err != nil {
		return err
	}
	if want := count + degree + 1; len(k) != want {
		return argErrorf(op, "expected %d knots for %d control points of degree %d, got %d", want, count, degree, len(k))
	}
	for i, u := range k {
		if math.IsNaN(u) || math.IsInf(u, 0) {
			return argErrorf(op, "knot %d is not finite", i)
		}
		if i > 0 && u < k[i-1] {
			return argErrorf(op, "knots must not decrease, but knot %d (%g) < knot %d (%g)", i, u, i-1, k[i-1])
		}
	}
	if !(k[degree] < k[count]) {
		return argErrorf(op, "empty domain [%g, %g]", k[degree], k[count])
	}
	return nil
}

// count returns the number of control points k belongs to.
func (k Knots) count(degree int) int {
	return len(k) - degree - 1
}

// Domain returns the parameter range over which a B-spline of the given
// degree is defined.
func (k Knots) Domain(degree int) (lo, hi float64) {
	return k[degree], k[k.count(degree)]
}

func (k Knots) clamp(degree int, t float64) float64 {
	lo, hi := k.Domain(degree)
	return clamp(t, lo, hi)
}

// Span returns the index s of the knot span [k[s], k[s+1]) that contains t,
// for degree ≤ s < count. The end of the domain belongs to the last
// non-empty span. t is clamped to the domain; NaN falls in the last span.
func (k Knots) Span(degree int, t float64) int {
	return k.span(degree, k.clamp(degree, t))
}

func (k Knots) span(degree int, t float64) int {
	n := k.count(degree)
	if t >= k[n] {
		s := n - 1
		for s > degree && k[s] == k[s+1] {
			s--
		}
		return s
	}
	i := sort.Search(n-degree, func(i int) bool { return k[degree+i+1] > t })
	// Only NaN gets past the last span.
	return min(degree+i, n-1)
}

// Basis evaluates the B-spline basis function N_{i,degree} at t with the
// Cox–de Boor recursion. Terms with a zero denominator count as zero. t is
// clamped to the domain.
func (k Knots) Basis(i, degree int, t float64) float64 {
	if i < 0 || i >= k.count(degree) {
		return 0
	}
	t = k.clamp(degree, t)
	return k.basis(i, degree, t, k.span(degree, t))
}

func (k Knots) basis(i, p int, t float64, span int) float64 {
	if p == 0 {
		if i == span {
			return 1
		}
		return 0
	}
	var left, right float64
	if d := k[i+p] - k[i]; d != 0 {
		left = (t - k[i]) / d * k.basis(i, p-1, t, span)
	}
	if d := k[i+p+1] - k[i+1]; d != 0 {
		right = (k[i+p+1] - t) / d * k.basis(i+1, p-1, t, span)
	}
	return left + right
}

// Clone returns a copy of k.
func (k Knots) Clone() Knots {
	return slices.Clone(k)
}
