// Package spline evaluates Bézier curves and B-splines in the plane. It was
// written as the curve engine of an interactive drawing lab, but it is a plain
// library: every function is a pure function of its arguments, and curves
// never change after construction, so everything may be used concurrently.
//
// # Bézier curves
//
// A [Bezier] of degree n has n+1 control points. It can be evaluated in two
// ways that agree up to rounding:
//
//   - [BernsteinPoint] sums the control points weighted by the Bernstein
//     polynomials C(n,i)·tⁱ·(1−t)ⁿ⁻ⁱ. The binomial coefficients are computed
//     with a recurrence (see [Binomials]) rather than factorials.
//   - [DeCasteljauPoint] interpolates repeatedly between neighbouring points.
//     The intermediate points form a [Pyramid], whose edges are the control
//     points of the two halves of the curve split at t (see [SubdividePoints]
//     and [Bezier.Subdivide]).
//
// The derivative of a Bézier curve is again a Bézier curve, with control
// points n·(P[i+1]−P[i]) (see [DerivativeControlPoints]). Curves are turned
// into polylines with [Bezier.Sample], which includes both end points, and
// [Bezier.ApproximateLength] measures such a polyline.
//
// Parameters outside [0, 1] are clamped.
//
// # Piecewise cubic curves
//
// Long curves are built from cubic segments. 3n+1 control points make up n
// segments that share their end points (see [CubicSegments] and
// [ComposeCurve]). Whether the result is smooth, that is G1 continuous,
// depends on the handles on both sides of each joint: the joint and its two
// neighbouring control points must be colinear, with the joint between them.
// [Piecewise.Joints] reports on each joint, and a [G1Policy] either rejects
// kinks or repairs them by moving handles. [ExpandG1] derives the implied
// handles when a user only places two points per additional segment.
//
// # B-splines
//
// A [BSpline] of degree p with n control points is defined by a knot vector
// of n+p+1 values ([Knots]). This package uses clamped uniform knot vectors
// on [0, 1] unless told otherwise (see [ClampedKnots]), so that splines start
// at their first control point and end at their last.
// [BSplineDefinitionPoint] evaluates the spline by summing Cox–de Boor basis
// functions over all control points, and [BSplineDeBoorPoint] with de Boor's
// algorithm, which only touches the p+1 points that matter at t.
//
// # Methods
//
// The four evaluation algorithms are named by [Method], which resolves to an
// evaluation function once per drawing ([Method.Bezier], [Method.BSpline])
// instead of being looked up per point.
//
// # Errors
//
// Invalid input, such as an empty list of control points, a point count that
// doesn't match a segment count, or a degree that is too high for the number
// of points, is reported as an error wrapping [ErrInvalidArgument]. Evaluators
// never make up a point for input they can't evaluate.
package spline
