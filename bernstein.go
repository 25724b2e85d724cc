package spline

import "math"

// Binomials returns the binomial coefficients C(n, 0) through C(n, n).
//
// The coefficients are computed with the recurrence C(n, i+1) = C(n, i)·(n−i)/(i+1)
// instead of factorials, which keeps intermediate values in range for high
// degrees.
func Binomials(n int) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n+1)
	c := 1.0
	for i := 0; i <= n; i++ {
		out[i] = c
		c = c * float64(n-i) / float64(i+1)
	}
	return out
}

// BernsteinBasis evaluates the Bernstein polynomial B_{i,n}(t) = C(n,i)·tⁱ·(1−t)ⁿ⁻ⁱ.
// It returns 0 for i outside [0, n].
func BernsteinBasis(i, n int, t float64) float64 {
	if i < 0 || i > n {
		return 0
	}
	c := 1.0
	for k := 0; k < i; k++ {
		c = c * float64(n-k) / float64(k+1)
	}
	return c * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// BernsteinPoint evaluates the Bézier curve defined by points at t, as the
// Bernstein-weighted sum of the control points. t is clamped to [0, 1].
//
// A single point is a curve of degree 0 and evaluates to itself. An empty
// slice is rejected with [ErrInvalidArgument].
func BernsteinPoint(points []Point, t float64) (Point, error) {
	if len(points) == 0 {
		return Point{}, argErrorf("BernsteinPoint", "need at least 1 control point, got 0")
	}
	return bernstein(points, clamp01(t)), nil
}

// bernstein assumes len(points) >= 1 and t ∈ [0, 1].
func bernstein(points []Point, t float64) Point {
	n := len(points) - 1
	switch n {
	case -1:
		panic("spline: evaluating a curve without control points")
	case 0:
		return points[0]
	}
	mt := 1 - t
	var x, y float64
	c := 1.0
	for i, p := range points {
		basis := c * math.Pow(t, float64(i)) * math.Pow(mt, float64(n-i))
		x += p.X * basis
		y += p.Y * basis
		c = c * float64(n-i) / float64(i+1)
	}
	return Point{X: x, Y: y}
}

// bernsteinVec is bernstein for vectors, used for derivative control points.
func bernsteinVec(vs []Vec2, t float64) Vec2 {
	n := len(vs) - 1
	if n < 0 {
		return Vec2{}
	}
	if n == 0 {
		return vs[0]
	}
	mt := 1 - t
	var out Vec2
	c := 1.0
	for i, v := range vs {
		out = out.Add(v.Mul(c * math.Pow(t, float64(i)) * math.Pow(mt, float64(n-i))))
		c = c * float64(n-i) / float64(i+1)
	}
	return out
}

func clamp01(t float64) float64 {
	return clamp(t, 0, 1)
}

func clamp(t, lo, hi float64) float64 {
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	return t
}
