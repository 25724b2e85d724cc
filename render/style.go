// Package render draws lab frames as PNG or SVG images.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"honnef.co/go/spline/lab"
)

// Style describes how a frame is drawn. Widths and radii are in pixels.
type Style struct {
	Background color.RGBA
	Curve      color.RGBA
	Polygon    color.RGBA
	Points     color.RGBA

	StrokeWidth  float64
	PolygonWidth float64
	PointRadius  float64
	// PolygonDash is the dash pattern of the control polygon, alternating
	// dash and gap lengths. Nil draws a solid line.
	PolygonDash []float64

	ShowPolygon bool
	ShowPoints  bool
}

// DefaultStyle returns the style used for settings a scene leaves empty.
func DefaultStyle() Style {
	return Style{
		Background:   colornames.White,
		Curve:        colornames.Steelblue,
		Polygon:      colornames.Darkgray,
		Points:       colornames.Crimson,
		StrokeWidth:  2,
		PolygonWidth: 1,
		PointRadius:  4,
		PolygonDash:  []float64{6, 4},
		ShowPolygon:  true,
		ShowPoints:   true,
	}
}

// StyleFromConfig returns the default style with the fields set in c
// replaced. Colors are SVG color names or hex triplets like "#4682b4".
func StyleFromConfig(c lab.StyleConfig) (Style, error) {
	st := DefaultStyle()
	for _, f := range []struct {
		name string
		dst  *color.RGBA
	}{
		{c.Background, &st.Background},
		{c.Curve, &st.Curve},
		{c.Polygon, &st.Polygon},
		{c.Points, &st.Points},
	} {
		if f.name == "" {
			continue
		}
		col, err := ParseColor(f.name)
		if err != nil {
			return Style{}, err
		}
		*f.dst = col
	}
	if c.StrokeWidth < 0 || c.PointRadius < 0 {
		return Style{}, fmt.Errorf("render: stroke width and point radius must not be negative")
	}
	if c.StrokeWidth > 0 {
		st.StrokeWidth = c.StrokeWidth
	}
	if c.PointRadius > 0 {
		st.PointRadius = c.PointRadius
	}
	if c.ShowPolygon != nil {
		st.ShowPolygon = *c.ShowPolygon
	}
	if c.ShowPoints != nil {
		st.ShowPoints = *c.ShowPoints
	}
	return st, nil
}

// ParseColor parses an SVG color name or a #rgb or #rrggbb hex triplet.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if col, ok := colornames.Map[s]; ok {
		return col, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		var r, g, b uint8
		switch len(hex) {
		case 3:
			if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err == nil {
				return color.RGBA{r * 17, g * 17, b * 17, 0xff}, nil
			}
		case 6:
			if _, err := fmt.Sscanf(hex, "%2x%2x%2x", &r, &g, &b); err == nil {
				return color.RGBA{r, g, b, 0xff}, nil
			}
		}
	}
	return color.RGBA{}, fmt.Errorf("render: unknown color %q", s)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
