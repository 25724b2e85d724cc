package main

import (
	"fmt"
	"strconv"
	"strings"

	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
)

// parsePoints parses space-separated "x,y" pairs.
func parsePoints(s string) (lab.Points, error) {
	fields := strings.Fields(s)
	pts := make(lab.Points, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q, want x,y", field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		pts = append(pts, spline.Pt(x, y))
	}
	return pts, nil
}
