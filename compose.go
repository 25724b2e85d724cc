package spline

import (
	"fmt"
	"iter"
)

// InferSegments returns the number of cubic segments that count control
// points make up when consecutive segments share their end points, that is
// (count−1)/3. It fails unless count = 3n+1 for some n ≥ 1.
func InferSegments(count int) (int, error) {
	if count < 4 || (count-1)%3 != 0 {
		return 0, argErrorf("InferSegments", "%d control points don't form whole cubic segments, need 3n+1", count)
	}
	return (count - 1) / 3, nil
}

// CubicSegments splits points into n cubic Bézier segments. Segment k uses
// points[3k] through points[3k+3], so neighbouring segments share an end
// point. Exactly 3n+1 points are required.
//
// The segments own copies of their points. Whether the curve is smooth at the
// shared points depends on the input alone; see [Piecewise.Joints] and
// [EnforceG1].
func CubicSegments(points []Point, n int) (Piecewise, error) {
	if n < 1 {
		return nil, argErrorf("CubicSegments", "segment count must be at least 1, got %d", n)
	}
	if want := 3*n + 1; len(points) != want {
		return nil, argErrorf("CubicSegments", "%d segments need %d control points, got %d", n, want, len(points))
	}
	segs := make(Piecewise, n)
	for k := range segs {
		p := points[3*k:]
		segs[k] = CubicBez{p[0], p[1], p[2], p[3]}
	}
	return segs, nil
}

// ComposeOptions configures [ComposeCurve]. The zero value is usable.
type ComposeOptions struct {
	// Samples is the number of samples per segment. Zero selects
	// DefaultSamples.
	Samples int
	// Method is the Bézier method used to evaluate the segments. It must be
	// Bernstein or DeCasteljau.
	Method Method
	// G1 is the continuity policy applied at the joints before sampling.
	G1 G1Policy
	// Tolerance is the largest turning angle, in radians, that counts as
	// smooth. Zero selects DefaultG1Tolerance.
	Tolerance float64
}

func (opts *ComposeOptions) samples() int {
	if opts == nil || opts.Samples == 0 {
		return DefaultSamples
	}
	return opts.Samples
}

func (opts *ComposeOptions) tolerance() float64 {
	if opts == nil || opts.Tolerance == 0 {
		return DefaultG1Tolerance
	}
	return opts.Tolerance
}

// ComposeCurve evaluates points as n cubic Bézier segments joined end to end
// and returns one sequence of samples per segment, in segment order. Within a
// segment, samples run from t = 0 to t = 1. opts may be nil.
//
// len(points) must be 3n+1. A segment count of 0 means the caller didn't
// choose one: fewer than 4 points (but at least 2) then form a single curve of
// degree len(points)−1, and 4 or more points must form whole segments, see
// [InferSegments]. Surplus points are never dropped silently.
//
// The continuity policy in opts decides what
// happens at the joints: [G1None] uses the points as given, [G1Strict] fails
// with a [*ContinuityError] if any joint has a kink, and [G1Mirror] and
// [G1Align] move the first handle of each segment after the first to make the
// joints smooth. The caller's slice is never modified.
func ComposeCurve(points []Point, n int, opts *ComposeOptions) ([][]Point, error) {
	var method Method
	var policy G1Policy
	if opts != nil {
		method, policy = opts.Method, opts.G1
	}
	eval, ok := method.Bezier()
	if !ok {
		return nil, argErrorf("ComposeCurve", "%v cannot evaluate Bézier segments", method)
	}
	if opts.samples() < 1 {
		return nil, argErrorf("ComposeCurve", "sample count must be at least 1, got %d", opts.samples())
	}
	if tol := opts.tolerance(); !(tol > 0) {
		return nil, argErrorf("ComposeCurve", "tolerance must be positive, got %g", tol)
	}
	if n == 0 {
		switch {
		case len(points) < 2:
			return nil, argErrorf("ComposeCurve", "need at least 2 control points, got %d", len(points))
		case len(points) < 4:
			return [][]Point{sampleWith(eval, points, opts.samples())}, nil
		}
		var err error
		if n, err = InferSegments(len(points)); err != nil {
			return nil, err
		}
	}
	segs, err := CubicSegments(points, n)
	if err != nil {
		return nil, err
	}
	segs, err = segs.applyG1(policy, opts.tolerance())
	if err != nil {
		return nil, err
	}
	return segs.SampleWith(eval, opts.samples()), nil
}

// Piecewise is a sequence of cubic Bézier segments. Each segment owns its
// points; a well-formed piecewise curve has every segment start where the
// previous one ends.
type Piecewise []CubicBez

var _ ParametricCurve = Piecewise{}

// Points returns the 3n+1 control points of the curve, listing shared end
// points once.
func (p Piecewise) Points() []Point {
	if len(p) == 0 {
		return nil
	}
	out := make([]Point, 0, 3*len(p)+1)
	out = append(out, p[0].P0)
	for _, c := range p {
		out = append(out, c.P1, c.P2, c.P3)
	}
	return out
}

// Eval evaluates the curve at u ∈ [0, 1]. Each segment covers an equal share
// of the parameter range.
func (p Piecewise) Eval(u float64) Point {
	k, t := p.locate(u)
	return p[k].Eval(t)
}

func (p Piecewise) locate(u float64) (int, float64) {
	s := clamp01(u) * float64(len(p))
	k := min(int(s), len(p)-1)
	return k, s - float64(k)
}

func (p Piecewise) Start() Point { return p[0].P0 }
func (p Piecewise) End() Point   { return p[len(p)-1].P3 }

// SampleWith samples every segment at count+1 values of t with eval.
func (p Piecewise) SampleWith(eval BezierFunc, count int) [][]Point {
	out := make([][]Point, len(p))
	for k, c := range p {
		pts := c.Points()
		out[k] = sampleWith(eval, pts[:], count)
	}
	return out
}

func sampleWith(eval BezierFunc, points []Point, count int) []Point {
	count = max(count, 1)
	out := make([]Point, count+1)
	for i := range out {
		out[i] = eval(points, float64(i)/float64(count))
	}
	return out
}

// Sample samples every segment at count+1 values of t.
func (p Piecewise) Sample(count int) [][]Point {
	return p.SampleWith(bezierFuncs[Bernstein], count)
}

// All returns an iterator over the samples of all segments as one polyline.
// Shared end points are yielded once.
func (p Piecewise) All(count int) iter.Seq[Point] {
	count = max(count, 1)
	return func(yield func(Point) bool) {
		for k, c := range p {
			start := 1
			if k == 0 {
				start = 0
			}
			for i := start; i <= count; i++ {
				if !yield(c.Eval(float64(i) / float64(count))) {
					return
				}
			}
		}
	}
}

// ApproximateLength sums the chord lengths of count samples per segment.
func (p Piecewise) ApproximateLength(count int) float64 {
	return PolylineLength(p.All(count))
}

func (p Piecewise) String() string {
	return fmt.Sprintf("Piecewise%v", []CubicBez(p))
}
