package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spline"
	"honnef.co/go/spline/lab"
)

const scene = `
method: decasteljau
samples: 20
points:
  - [0, 0]
  - [1, 2]
  - [3, 2]
  - [4, 0]
  - [4, 3]
  - [7, -2]
  - [8, 0]
canvas: {width: 80, height: 60}
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunReport(t *testing.T) {
	stdout, _, err := runCmd(t, "-scene", writeScene(t))
	require.NoError(t, err)
	assert.Contains(t, stdout, "method:  decasteljau")
	assert.Contains(t, stdout, "curves:  2")
	assert.Contains(t, stdout, "0: 21 samples")
	assert.Contains(t, stdout, "joint 1: (4, 0)")
	assert.Contains(t, stdout, "kinked")
}

func TestRunOverrides(t *testing.T) {
	stdout, _, err := runCmd(t, "-scene", writeScene(t), "-g1", "mirror", "-samples", "5", "-method", "bernstein")
	require.NoError(t, err)
	assert.Contains(t, stdout, "method:  bernstein")
	assert.Contains(t, stdout, "0: 6 samples")
	assert.Contains(t, stdout, "smooth, symmetric")

	_, _, err = runCmd(t, "-scene", writeScene(t), "-g1", "strict")
	var cerr *spline.ContinuityError
	assert.ErrorAs(t, err, &cerr)
}

func TestRunPoints(t *testing.T) {
	stdout, _, err := runCmd(t, "-points", "0,0 1,2 2,2 3,0 4,1", "-method", "bspline-deboor", "-samples", "4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "points:  5")
	assert.Contains(t, stdout, "curves:  1")
	assert.Contains(t, stdout, "0: 9 samples")

	stdout, _, err = runCmd(t, "-points", "0,0 1,1 2,0 3,1 4,4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pending: 1 points don't complete a segment")
}

func TestRunOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame.png", "frame.svg"} {
		out := filepath.Join(dir, name)
		stdout, stderr, err := runCmd(t, "-scene", writeScene(t), "-o", out, "-v")
		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "msg=rendered")
		assert.Contains(t, stderr, "level=DEBUG")
		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	stdout, _, err := runCmd(t, "-scene", writeScene(t), "-o", filepath.Join(dir, "r.svg"), "-report")
	require.NoError(t, err)
	assert.Contains(t, stdout, "curves:  2")
}

func TestRunErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"method":   {"-method", "nurbs"},
		"policy":   {"-g1", "sharp"},
		"segments": {"-points", "0,0 1,1 2,2 3,3 4,4 5,5", "-segments", "2"},
		"negative": {"-segments", "-1"},
		"points":   {"-points", "0,0 1"},
		"scene":    {"-scene", filepath.Join(t.TempDir(), "missing.yaml")},
		"format":   {"-points", "0,0 1,1", "-o", filepath.Join(t.TempDir(), "x.bmp")},
		"watch":    {"-watch"},
		"args":     {"extra"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCmd(t, args...)
			assert.Error(t, err)
		})
	}

	_, _, err := runCmd(t, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints(" 0,0  1.5,-2\t3,4e1 ")
	require.NoError(t, err)
	assert.Equal(t, lab.Points{spline.Pt(0, 0), spline.Pt(1.5, -2), spline.Pt(3, 40)}, pts)

	pts, err = parsePoints("")
	require.NoError(t, err)
	assert.Empty(t, pts)

	for _, in := range []string{"1", "1,", ",1", "a,b", "1;2"} {
		_, err := parsePoints(in)
		assert.Error(t, err, in)
	}
}

func TestWatch(t *testing.T) {
	path := writeScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, func() error {
			calls <- struct{}{}
			return nil
		}, lab.Logger())
	}()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("watch didn't render initially")
	}

	require.NoError(t, os.WriteFile(path, []byte(scene+"segments: 2\n"), 0o644))
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("watch didn't render after the scene changed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch didn't stop")
	}
}
