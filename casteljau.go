package spline

// Pyramid is the triangular table built by de Casteljau's algorithm. Row 0
// holds the control points, and each following row holds the pairwise
// interpolations of the row above it at a fixed t. The last row holds a single
// point, the curve point at t.
type Pyramid [][]Point

// BuildPyramid builds the de Casteljau pyramid of points at t. t is clamped to
// [0, 1]. Row 0 is a copy of points.
func BuildPyramid(points []Point, t float64) (Pyramid, error) {
	if len(points) == 0 {
		return nil, argErrorf("BuildPyramid", "need at least 1 control point, got 0")
	}
	return buildPyramid(points, clamp01(t)), nil
}

func buildPyramid(points []Point, t float64) Pyramid {
	n := len(points)
	pyr := make(Pyramid, n)
	pyr[0] = clonePoints(points)
	for r := 1; r < n; r++ {
		prev := pyr[r-1]
		row := make([]Point, len(prev)-1)
		for i := range row {
			row[i] = prev[i].Lerp(prev[i+1], t)
		}
		pyr[r] = row
	}
	return pyr
}

// Point returns the curve point, the only point in the last row.
func (pyr Pyramid) Point() Point {
	return pyr[len(pyr)-1][0]
}

// Left returns the control points of the sub-curve covering [0, t]: the left
// edge of the triangle, read from top to bottom.
func (pyr Pyramid) Left() []Point {
	out := make([]Point, len(pyr))
	for r, row := range pyr {
		out[r] = row[0]
	}
	return out
}

// Right returns the control points of the sub-curve covering [t, 1]: the
// right edge of the triangle, read from bottom to top so that the sub-curve
// keeps the orientation of the original.
func (pyr Pyramid) Right() []Point {
	n := len(pyr)
	out := make([]Point, n)
	for r := range n {
		out[r] = pyr[n-1-r][r]
	}
	return out
}

// DeCasteljauPoint evaluates the Bézier curve defined by points at t by
// repeated linear interpolation. t is clamped to [0, 1].
//
// It computes the same point as [BernsteinPoint], up to rounding.
func DeCasteljauPoint(points []Point, t float64) (Point, error) {
	if len(points) == 0 {
		return Point{}, argErrorf("DeCasteljauPoint", "need at least 1 control point, got 0")
	}
	return deCasteljau(points, clamp01(t)), nil
}

// deCasteljau evaluates without keeping the whole pyramid around.
func deCasteljau(points []Point, t float64) Point {
	row := clonePoints(points)
	for n := len(row) - 1; n > 0; n-- {
		for i := range n {
			row[i] = row[i].Lerp(row[i+1], t)
		}
	}
	return row[0]
}

// SubdividePoints splits the Bézier curve defined by points at t and returns
// the control points of both halves. Each half has the degree of the input and
// is parametrized over [0, 1].
func SubdividePoints(points []Point, t float64) (left, right []Point, err error) {
	if len(points) == 0 {
		return nil, nil, argErrorf("SubdividePoints", "need at least 1 control point, got 0")
	}
	pyr := buildPyramid(points, clamp01(t))
	return pyr.Left(), pyr.Right(), nil
}
