package spline

import (
	"fmt"
	"strings"
)

// DefaultG1Tolerance is the default largest turning angle, in radians, at
// which a joint still counts as smooth.
const DefaultG1Tolerance = 1e-6

// symmetryEpsilon is how far, relative to the span between its handles, a
// joint may lie from their midpoint and still count as symmetric.
const symmetryEpsilon = 1e-9

// G1Policy decides how a piecewise curve treats joints whose tangent
// directions don't match.
type G1Policy int

const (
	// G1None uses the control points as given.
	G1None G1Policy = iota
	// G1Strict rejects curves with kinked joints.
	G1Strict
	// G1Mirror replaces the first handle of each segment after the first with
	// the reflection of the previous segment's last handle through the joint.
	// The joint ends up at the midpoint of its neighbours, so tangents match in
	// direction and magnitude. Where that handle lies on the joint, the first
	// handle is placed along the incoming tangent instead.
	G1Mirror
	// G1Align rotates the first handle of each segment after the first onto
	// the incoming tangent direction, keeping its length. A handle lying on
	// the joint takes the incoming tangent's length.
	G1Align
)

var g1Names = [...]string{
	G1None:   "none",
	G1Strict: "strict",
	G1Mirror: "mirror",
	G1Align:  "align",
}

func (p G1Policy) String() string {
	if p < 0 || int(p) >= len(g1Names) {
		return fmt.Sprintf("G1Policy(%d)", int(p))
	}
	return g1Names[p]
}

// ParseG1Policy parses the name of a policy, as returned by
// [G1Policy.String]. The empty string is G1None.
func ParseG1Policy(s string) (G1Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return G1None, nil
	}
	for i, name := range g1Names {
		if s == name {
			return G1Policy(i), nil
		}
	}
	return 0, argErrorf("ParseG1Policy", "unknown continuity policy %q", s)
}

func (p G1Policy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(g1Names) {
		return nil, argErrorf("G1Policy.MarshalText", "unknown continuity policy %d", int(p))
	}
	return []byte(g1Names[p]), nil
}

func (p *G1Policy) UnmarshalText(b []byte) error {
	v, err := ParseG1Policy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Joint describes the point where one segment of a piecewise curve ends and
// the next begins.
type Joint struct {
	// Index is the index of the segment starting at the joint. The joint is
	// control point 3·Index.
	Index int
	Point Point
	// In is the tangent at the end of the incoming segment, Out the tangent
	// at the start of the outgoing one.
	In, Out Vec2
	// Angle is the turning angle between In and Out, in radians.
	Angle float64
	// Smooth reports whether Angle is within the tolerance, i.e. whether the
	// curve is G1 continuous at the joint.
	Smooth bool
	// Symmetric reports whether the joint lies at the midpoint of its
	// neighbouring control points. It doesn't depend on the angle
	// tolerance.
	Symmetric bool
}

// Joints reports on every interior joint of the curve, in order. tolerance
// is the largest turning angle in radians that counts as smooth; zero
// selects DefaultG1Tolerance.
func (p Piecewise) Joints(tolerance float64) []Joint {
	if tolerance == 0 {
		tolerance = DefaultG1Tolerance
	}
	if len(p) < 2 {
		return nil
	}
	out := make([]Joint, 0, len(p)-1)
	for k := 1; k < len(p); k++ {
		prev, next := p[k-1], p[k]
		_, in := prev.Tangents()
		out0, _ := next.Tangents()
		angle := in.AngleTo(out0)
		// Symmetry is relative to the handle span.
		span := prev.P2.Distance(next.P1)
		off := prev.P2.Midpoint(next.P1).Distance(next.P0)
		out = append(out, Joint{
			Index:     k,
			Point:     next.P0,
			In:        in,
			Out:       out0,
			Angle:     angle,
			Smooth:    angle <= tolerance && prev.P3 == next.P0,
			Symmetric: off <= symmetryEpsilon*max(span, 1),
		})
	}
	return out
}

// CheckG1 returns a [*ContinuityError] listing the joints that aren't smooth,
// or nil if there are none.
func (p Piecewise) CheckG1(tolerance float64) error {
	var bad []Joint
	for _, j := range p.Joints(tolerance) {
		if !j.Smooth {
			bad = append(bad, j)
		}
	}
	if len(bad) > 0 {
		return &ContinuityError{Joints: bad}
	}
	return nil
}

// EnforceG1 returns a copy of points, which must form whole cubic segments
// (see [CubicSegments]), with the continuity policy applied. G1None
// returns an unchanged copy and G1Strict returns a copy or a
// [*ContinuityError].
func EnforceG1(points []Point, policy G1Policy) ([]Point, error) {
	n, err := InferSegments(len(points))
	if err != nil {
		return nil, err
	}
	segs, err := CubicSegments(points, n)
	if err != nil {
		return nil, err
	}
	segs, err = segs.applyG1(policy, DefaultG1Tolerance)
	if err != nil {
		return nil, err
	}
	return segs.Points(), nil
}

func (p Piecewise) applyG1(policy G1Policy, tolerance float64) (Piecewise, error) {
	switch policy {
	case G1None:
		return p, nil
	case G1Strict:
		return p, p.CheckG1(tolerance)
	case G1Mirror, G1Align:
	default:
		return nil, argErrorf("EnforceG1", "unknown continuity policy %d", int(policy))
	}
	out := make(Piecewise, len(p))
	copy(out, p)
	for k := 1; k < len(out); k++ {
		prev, next := out[k-1], &out[k]
		joint := next.P0
		_, in := prev.Tangents()
		if in.IsZero() {
			// prev collapsed to a point; any direction is smooth.
			continue
		}
		if policy == G1Mirror && prev.P2 != joint {
			next.P1 = prev.P2.Reflect(joint)
			continue
		}
		// A handle on the joint has no length to keep; borrow the
		// incoming tangent's.
		l := next.P1.Distance(joint)
		if policy == G1Mirror || l == 0 {
			l = in.Hypot()
		}
		next.P1 = joint.Translate(in.Normalize().Mul(l))
	}
	if err := out.CheckG1(tolerance); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpandG1 builds the control points of a smooth piecewise cubic from the
// points a user places by hand: all four points of the first segment, then
// two points (second handle and end point) per following segment. The first
// handle of each following segment is implied by mirroring the previous
// handle through the joint.
//
// For n segments, 2n+2 points are needed and 3n+1 points are returned.
func ExpandG1(points []Point) ([]Point, error) {
	if len(points) < 4 || (len(points)-4)%2 != 0 {
		return nil, argErrorf("ExpandG1", "need 4 points plus 2 per additional segment, got %d", len(points))
	}
	n := 1 + (len(points)-4)/2
	out := make([]Point, 0, 3*n+1)
	out = append(out, points[:4]...)
	for i := 4; i < len(points); i += 2 {
		joint := out[len(out)-1]
		handle := out[len(out)-2]
		out = append(out, handle.Reflect(joint), points[i], points[i+1])
	}
	return out, nil
}
