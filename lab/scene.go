package lab

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/spline"
)

// Default canvas dimensions, in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultMargin = 24
)

// Scene is a lab session together with the canvas and style used to draw
// it, as stored in a YAML file:
//
//	method: decasteljau
//	g1: mirror
//	samples: 64
//	points:
//	  - [0, 0]
//	  - [1, 2]
//	  - [3, 2]
//	  - [4, 0]
//	canvas:
//	  width: 640
//	  height: 480
//	style:
//	  curve: steelblue
//	  show_polygon: false
type Scene struct {
	Settings `yaml:",inline"`
	// Finished marks the scene's session as finished.
	Finished bool         `yaml:"finished"`
	Points   Points       `yaml:"points"`
	Canvas   CanvasConfig `yaml:"canvas"`
	Style    StyleConfig  `yaml:"style"`
}

// CanvasConfig is the size of the image a scene is drawn on. A zero width or
// height and a nil margin select the defaults.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Margin is the space, in pixels, kept free around the drawing. Zero
	// draws up to the edges.
	Margin *int `yaml:"margin"`
}

// WithDefaults returns c with unset fields replaced by their defaults. The
// margin of the result is never nil.
func (c CanvasConfig) WithDefaults() CanvasConfig {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Margin == nil {
		m := DefaultMargin
		c.Margin = &m
	}
	return c
}

// StyleConfig describes how a scene is drawn. Colors are SVG color names,
// such as "steelblue". Empty fields keep the renderer's defaults.
type StyleConfig struct {
	Background  string  `yaml:"background"`
	Curve       string  `yaml:"curve"`
	Polygon     string  `yaml:"polygon"`
	Points      string  `yaml:"points"`
	StrokeWidth float64 `yaml:"stroke_width"`
	PointRadius float64 `yaml:"point_radius"`
	ShowPolygon *bool   `yaml:"show_polygon"`
	ShowPoints  *bool   `yaml:"show_points"`
}

// Points is a list of points written as [x, y] pairs.
type Points []spline.Point

func (ps *Points) UnmarshalYAML(node *yaml.Node) error {
	var raw [][]float64
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Points, len(raw))
	for i, xy := range raw {
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point %d has %d coordinates, want 2", node.Line, i, len(xy))
		}
		out[i] = spline.Pt(xy[0], xy[1])
	}
	*ps = out
	return nil
}

func (ps Points) MarshalYAML() (any, error) {
	raw := make([][2]float64, len(ps))
	for i, p := range ps {
		raw[i] = [2]float64{p.X, p.Y}
	}
	return raw, nil
}

// Validate reports scenes that can't be drawn.
func (sc *Scene) Validate() error {
	if err := sc.Settings.Validate(); err != nil {
		return err
	}
	c := sc.Canvas
	c = c.WithDefaults()
	if c.Width < 0 || c.Height < 0 || *c.Margin < 0 {
		return fmt.Errorf("lab: invalid canvas %dx%d with margin %d", c.Width, c.Height, *c.Margin)
	}
	if 2**c.Margin >= min(c.Width, c.Height) {
		return fmt.Errorf("lab: margin %d leaves no room on a %dx%d canvas", *c.Margin, c.Width, c.Height)
	}
	for i, p := range sc.Points {
		if p.IsNaN() || p.IsInf() {
			return fmt.Errorf("lab: point %d is not finite", i)
		}
	}
	return nil
}

// LoadScene decodes and validates a YAML scene. Unknown fields are errors.
// An empty document is an empty scene with default settings.
func LoadScene(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	sc := new(Scene)
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("lab: decoding scene: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ReadSceneFile loads the scene stored at path.
func ReadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := LoadScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Debug("loaded scene", "path", path, "points", len(sc.Points), "method", sc.Method)
	return sc, nil
}

// Session returns a new session holding the scene's settings and points.
func (sc *Scene) Session() (*Session, error) {
	s, err := NewSession(sc.Settings, sc.Points...)
	if err != nil {
		return nil, err
	}
	if sc.Finished {
		s.Finish()
		s.history = nil
	}
	return s, nil
}
