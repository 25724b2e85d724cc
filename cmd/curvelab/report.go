package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"honnef.co/go/spline/lab"
)

// writeReport prints a summary of f. Colors are used when w is a terminal
// that supports them.
func writeReport(w io.Writer, f lab.Frame) {
	out := termenv.NewOutput(w)
	ok := func(s string) string { return out.String(s).Foreground(termenv.ANSIGreen).String() }
	warn := func(s string) string { return out.String(s).Foreground(termenv.ANSIYellow).String() }
	bad := func(s string) string { return out.String(s).Foreground(termenv.ANSIRed).Bold().String() }

	fmt.Fprintf(out, "method:  %v\n", f.Method)
	fmt.Fprintf(out, "points:  %d\n", len(f.Controls))
	if f.Empty() {
		fmt.Fprintf(out, "curves:  %s\n", warn("none"))
		return
	}
	fmt.Fprintf(out, "curves:  %d\n", len(f.Curves))
	for i, c := range f.Curves {
		fmt.Fprintf(out, "  %d: %d samples\n", i, len(c))
	}
	fmt.Fprintf(out, "length:  %.6g\n", f.Length())
	if f.Pending > 0 {
		fmt.Fprintf(out, "pending: %s\n", warn(fmt.Sprintf("%d points don't complete a segment", f.Pending)))
	}
	for _, j := range f.Joints {
		var state string
		switch {
		case !j.Smooth:
			state = bad("kinked")
		case j.Symmetric:
			state = ok("smooth, symmetric")
		default:
			state = ok("smooth")
		}
		fmt.Fprintf(out, "joint %d: %v turns %.4g rad, %s\n", j.Index, j.Point, j.Angle, state)
	}
}
