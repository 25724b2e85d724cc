package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
)

// SVGOptions specifies optional settings for [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func formatter(opts SVGOptions) func(float64) string {
	return func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
}

// PathData returns the SVG path commands for the polyline through pts, as
// one moveto followed by linetos.
func PathData(pts []spline.Point, opts SVGOptions) string {
	sb := &strings.Builder{}
	writePathData(sb, pts, opts)
	return sb.String()
}

func writePathData(w io.Writer, pts []spline.Point, opts SVGOptions) error {
	format := formatter(opts)
	for i, p := range pts {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		if _, err := fmt.Fprintf(w, "%s%s,%s", cmd, format(p.X), format(p.Y)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSVG writes f as a standalone SVG document, drawn like [Canvas.Draw].
func WriteSVG(w io.Writer, f lab.Frame, st Style, v View, opts SVGOptions) error {
	format := formatter(opts)
	var err error
	writef := func(s string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, args...)
	}
	path := func(pts []spline.Point) {
		if err != nil {
			return
		}
		img := make([]spline.Point, len(pts))
		for i, p := range pts {
			img[i] = v.Point(p)
		}
		err = writePathData(w, img, opts)
	}

	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		v.Width, v.Height, v.Width, v.Height)
	writef(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(st.Background))

	if st.ShowPolygon && len(f.Polygon) > 1 && st.PolygonWidth > 0 {
		writef(`<path class="polygon" fill="none" stroke="%s" stroke-width="%s"`, hexColor(st.Polygon), format(st.PolygonWidth))
		if len(st.PolygonDash) > 0 {
			dash := make([]string, len(st.PolygonDash))
			for i, d := range st.PolygonDash {
				dash[i] = format(d)
			}
			writef(` stroke-dasharray="%s"`, strings.Join(dash, " "))
		}
		writef(` d="`)
		path(f.Polygon)
		writef("\"/>\n")
	}
	if st.StrokeWidth > 0 {
		for _, c := range f.Curves {
			if len(c) < 2 {
				continue
			}
			writef(`<path class="curve" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round" d="`,
				hexColor(st.Curve), format(st.StrokeWidth))
			path(c)
			writef("\"/>\n")
		}
	}
	if st.ShowPoints {
		for _, p := range f.Controls {
			q := v.Point(p)
			writef(`<circle class="point" cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
				format(q.X), format(q.Y), format(st.PointRadius), hexColor(st.Points))
		}
	}
	writef("</svg>\n")
	return err
}
