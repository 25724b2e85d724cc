package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"honnef.co/go/spline/lab"
)

// Format is an output image format.
type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	default:
		return 0, fmt.Errorf("render: unsupported output format %q, want .png or .svg", ext)
	}
}

// Render draws f on a canvas of the given configuration and writes it to w.
func Render(w io.Writer, f lab.Frame, st Style, c lab.CanvasConfig, format Format) error {
	v := FrameView(f, c)
	switch format {
	case PNG:
		cv := NewCanvas(v.Width, v.Height)
		cv.Draw(f, st, v)
		return cv.EncodePNG(w)
	case SVG:
		return WriteSVG(w, f, st, v, SVGOptions{MaxPrecision: 3})
	default:
		panic("unreachable")
	}
}

// WriteFile renders f into the file at path, in the format its extension
// names.
func WriteFile(path string, f lab.Frame, st Style, c lab.CanvasConfig) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Render(out, f, st, c, format); err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	lab.Logger().Debug("wrote image", "path", path, "format", format)
	return nil
}

// WriteScene evaluates sc and renders it into the file at path. The frame is
// returned even when rendering fails.
func WriteScene(path string, sc *lab.Scene) (lab.Frame, error) {
	s, err := sc.Session()
	if err != nil {
		return lab.Frame{}, err
	}
	f, err := s.Frame()
	if err != nil {
		return f, err
	}
	st, err := StyleFromConfig(sc.Style)
	if err != nil {
		return f, err
	}
	return f, WriteFile(path, f, st, sc.Canvas)
}
