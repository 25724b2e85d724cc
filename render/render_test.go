package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
)

var kinked = []spline.Point{
	spline.Pt(0, 0), spline.Pt(1, 2), spline.Pt(3, 2),
	spline.Pt(4, 0),
	spline.Pt(4, 3), spline.Pt(7, -2), spline.Pt(8, 0),
}

func testFrame(t *testing.T) lab.Frame {
	t.Helper()
	s, err := lab.NewSession(lab.Settings{}, kinked...)
	require.NoError(t, err)
	f, err := s.Frame()
	require.NoError(t, err)
	return f
}

func TestParseColor(t *testing.T) {
	tests := map[string]color.RGBA{
		"steelblue": colornames.Steelblue,
		" Crimson ": colornames.Crimson,
		"#4682b4":   {0x46, 0x82, 0xb4, 0xff},
		"#fff":      {0xff, 0xff, 0xff, 0xff},
		"#0a0":      {0, 0xaa, 0, 0xff},
	}
	for in, want := range tests {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "blurple", "#12", "#ggg", "#12345"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}

func TestStyleFromConfig(t *testing.T) {
	no := false
	st, err := StyleFromConfig(lab.StyleConfig{
		Curve:       "navy",
		Background:  "#000",
		StrokeWidth: 5,
		ShowPolygon: &no,
	})
	require.NoError(t, err)
	assert.Equal(t, colornames.Navy, st.Curve)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, st.Background)
	assert.Equal(t, 5.0, st.StrokeWidth)
	assert.False(t, st.ShowPolygon)
	assert.True(t, st.ShowPoints)
	assert.Equal(t, DefaultStyle().Points, st.Points)
	assert.Equal(t, DefaultStyle().PointRadius, st.PointRadius)

	_, err = StyleFromConfig(lab.StyleConfig{Points: "nope"})
	assert.Error(t, err)
	_, err = StyleFromConfig(lab.StyleConfig{StrokeWidth: -1})
	assert.Error(t, err)
}

func TestView(t *testing.T) {
	bounds := spline.Rect{X0: 0, Y0: 0, X1: 8, Y1: 4}
	v := NewView(bounds, lab.CanvasConfig{Width: 100, Height: 100, Margin: margin(10)})
	assert.Equal(t, 100, v.Width)
	assert.Equal(t, 100, v.Height)

	p := v.Point(spline.Pt(0, 0))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 70, p.Y, 1e-9)
	p = v.Point(spline.Pt(8, 4))
	assert.InDelta(t, 90, p.X, 1e-9)
	assert.InDelta(t, 30, p.Y, 1e-9)

	w := v.World(spline.Pt(37, 52))
	q := v.Point(w)
	assert.InDelta(t, 37, q.X, 1e-9)
	assert.InDelta(t, 52, q.Y, 1e-9)

	v = NewView(bounds, lab.CanvasConfig{})
	assert.Equal(t, lab.DefaultWidth, v.Width)
	assert.Equal(t, lab.DefaultHeight, v.Height)

	// Without a margin, bounds reach the edges.
	v = NewView(bounds, lab.CanvasConfig{Width: 80, Height: 40, Margin: margin(0)})
	p = v.Point(spline.Pt(0, 0))
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 40, p.Y, 1e-9)
	p = v.Point(spline.Pt(8, 4))
	assert.InDelta(t, 80, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func margin(m int) *int { return &m }

func TestCanvasDraw(t *testing.T) {
	f := testFrame(t)
	st := DefaultStyle()
	v := FrameView(f, lab.CanvasConfig{Width: 160, Height: 120, Margin: margin(12)})
	cv := NewCanvas(v.Width, v.Height)
	cv.Draw(f, st, v)
	img := cv.Image()

	assert.Equal(t, st.Background, img.RGBAAt(0, 0))
	assert.Equal(t, st.Background, img.RGBAAt(159, 119))

	// Halfway along the first segment, away from any control point.
	mid := f.Curves[0][len(f.Curves[0])/2]
	p := v.Point(mid)
	assert.NotEqual(t, st.Background, img.RGBAAt(int(p.X), int(p.Y)), "no curve at %v", p)

	p = v.Point(kinked[0])
	c := img.RGBAAt(int(p.X), int(p.Y))
	assert.Greater(t, c.R, c.B, "no point marker at %v: %v", p, c)

	var buf bytes.Buffer
	require.NoError(t, cv.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestCanvasDrawEmpty(t *testing.T) {
	cv := NewCanvas(10, 10)
	st := DefaultStyle()
	cv.Draw(lab.Frame{}, st, NewView(spline.Rect{}, lab.CanvasConfig{Width: 10, Height: 10, Margin: margin(1)}))
	assert.Equal(t, st.Background, cv.Image().RGBAAt(5, 5))
}

func TestCanvasDrawOffCanvasPoint(t *testing.T) {
	cv := NewCanvas(20, 20)
	st := DefaultStyle()
	v := NewView(spline.Rect{X1: 1, Y1: 1}, lab.CanvasConfig{Width: 20, Height: 20, Margin: margin(0)})
	f := lab.Frame{Controls: []spline.Point{spline.Pt(0.5, 0.5), spline.Pt(100, 100)}}
	cv.Draw(f, st, v)
	assert.NotEqual(t, st.Background, cv.Image().RGBAAt(10, 10))
	assert.Equal(t, st.Background, cv.Image().RGBAAt(0, 0))
}

func TestPathData(t *testing.T) {
	pts := []spline.Point{spline.Pt(0, 0), spline.Pt(1.5, -2), spline.Pt(10, 1.23456)}
	assert.Equal(t, "M0,0 L1.5,-2 L10,1.23456", PathData(pts, SVGOptions{}))
	assert.Equal(t, "M0,0 L1.5,-2 L10,1.23", PathData(pts, SVGOptions{MaxPrecision: 2}))
	assert.Equal(t, "M0,0", PathData([]spline.Point{spline.Pt(-0.0001, 0)}, SVGOptions{MaxPrecision: 2}))
	assert.Equal(t, "", PathData(nil, SVGOptions{}))
}

func TestWriteSVG(t *testing.T) {
	f := testFrame(t)
	st := DefaultStyle()
	var buf bytes.Buffer
	v := FrameView(f, lab.CanvasConfig{Width: 200, Height: 100})
	require.NoError(t, WriteSVG(&buf, f, st, v, SVGOptions{MaxPrecision: 2}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 2, strings.Count(out, `class="curve"`))
	assert.Equal(t, 1, strings.Count(out, `class="polygon"`))
	assert.Equal(t, len(kinked), strings.Count(out, `class="point"`))
	assert.Contains(t, out, `stroke-dasharray="6 4"`)
	assert.Contains(t, out, `stroke="#4682b4"`)

	st.ShowPolygon = false
	st.ShowPoints = false
	buf.Reset()
	require.NoError(t, WriteSVG(&buf, f, st, v, SVGOptions{}))
	assert.NotContains(t, buf.String(), `class="polygon"`)
	assert.NotContains(t, buf.String(), `class="point"`)
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{"a.png": PNG, "dir/b.PNG": PNG, "c.svg": SVG} {
		got, err := FormatFor(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFor("d.jpg")
	assert.Error(t, err)
	_, err = FormatFor("noext")
	assert.Error(t, err)
}

func TestWriteScene(t *testing.T) {
	sc, err := lab.LoadScene(strings.NewReader(`
method: bspline-deboor
points: [[0, 0], [1, 2], [2, 2], [3, 0], [4, 1]]
canvas: {width: 64, height: 48, margin: 4}
style: {curve: darkgreen}
`))
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.svg"} {
		path := filepath.Join(dir, name)
		f, err := WriteScene(path, sc)
		require.NoError(t, err)
		assert.Len(t, f.Curves, 1)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	file, err := os.Open(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	_, err = WriteScene(filepath.Join(dir, "out.gif"), sc)
	assert.Error(t, err)
}
