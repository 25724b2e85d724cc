package spline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned, wrapped in an [*ArgumentError], for empty
// control polygons, mismatched point and segment counts, invalid degrees and
// malformed knot vectors. Use [errors.Is] to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	// Op is the name of the operation that rejected the argument.
	Op string
	// Msg describes what was wrong.
	Msg string
}

func (err *ArgumentError) Error() string {
	return fmt.Sprintf("spline: %s: %s", err.Op, err.Msg)
}

func (err *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func argErrorf(op string, format string, args ...any) error {
	return &ArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ContinuityError lists the interior joints of a piecewise curve whose
// tangent directions don't match.
type ContinuityError struct {
	Joints []Joint
}

func (err *ContinuityError) Error() string {
	var sb strings.Builder
	sb.WriteString("spline: tangent discontinuity at ")
	for i, j := range err.Joints {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "joint %d %v (%.3g rad)", j.Index, j.Point, j.Angle)
	}
	return sb.String()
}
