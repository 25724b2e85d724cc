// Package lab holds the state of an interactive curve lab: the points a user
// has placed, the selected evaluation method and the options that control
// how the points become curves. A [Session] turns that state into a [Frame]
// of sampled polylines for a renderer to draw.
//
// Scenes, loaded from YAML with [LoadScene], describe a session together with
// its canvas and drawing style.
package lab

import (
	"errors"
	"fmt"
	"slices"

	"honnef.co/go/spline"
)

// DefaultDegree is the B-spline degree used when Settings.Degree is zero.
const DefaultDegree = 3

// ErrFinished is returned when adding points to a finished session.
var ErrFinished = errors.New("lab: session is finished")

// Settings control how a session's points are turned into curves. The zero
// value draws Bézier curves with the Bernstein method.
type Settings struct {
	Method spline.Method `yaml:"method"`
	// Segments is the number of cubic segments. Zero draws as many complete
	// segments as the points allow, or a single curve for fewer than four
	// points.
	Segments int `yaml:"segments"`
	// Degree is the B-spline degree. Zero selects DefaultDegree. Degrees
	// that need more points than have been placed are lowered to fit.
	Degree int `yaml:"degree"`
	// Samples is the number of samples per segment, or per knot span for
	// B-splines. Zero selects spline.DefaultSamples.
	Samples int `yaml:"samples"`
	// G1 is the continuity policy for multi-segment Bézier curves.
	G1        spline.G1Policy `yaml:"g1"`
	Tolerance float64         `yaml:"tolerance"`
	// Expand makes the user place only the second handle and end point of
	// each segment after the first; the first handle is implied. See
	// spline.ExpandG1.
	Expand bool `yaml:"expand"`
}

// Validate reports settings that can't be used.
func (st Settings) Validate() error {
	switch {
	case st.Method < 0 || int(st.Method) >= len(spline.Methods):
		return fmt.Errorf("lab: unknown method %d", int(st.Method))
	case st.Segments < 0:
		return fmt.Errorf("lab: segment count must not be negative, got %d", st.Segments)
	case st.Degree < 0:
		return fmt.Errorf("lab: degree must not be negative, got %d", st.Degree)
	case st.Samples < 0:
		return fmt.Errorf("lab: sample count must not be negative, got %d", st.Samples)
	case st.Tolerance < 0:
		return fmt.Errorf("lab: tolerance must not be negative, got %g", st.Tolerance)
	}
	if _, err := st.G1.MarshalText(); err != nil {
		return fmt.Errorf("lab: %w", err)
	}
	return nil
}

func (st Settings) degree() int {
	if st.Degree == 0 {
		return DefaultDegree
	}
	return st.Degree
}

func (st Settings) samples() int {
	if st.Samples == 0 {
		return spline.DefaultSamples
	}
	return st.Samples
}

type state struct {
	points   []spline.Point
	finished bool
}

// Session is the mutable state of a lab. It is not safe for concurrent use.
type Session struct {
	settings Settings
	state
	history []state
}

// NewSession returns a session with the given settings and initial points.
func NewSession(settings Settings, points ...spline.Point) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		settings: settings,
		state:    state{points: slices.Clone(points)},
	}, nil
}

// Settings returns the current settings.
func (s *Session) Settings() Settings { return s.settings }

// SetSettings replaces the settings. Invalid settings are rejected and leave
// the session unchanged.
func (s *Session) SetSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Method returns the selected evaluation method.
func (s *Session) Method() spline.Method { return s.settings.Method }

// SetMethod selects the evaluation method for subsequent frames.
func (s *Session) SetMethod(m spline.Method) {
	Logger().Debug("method changed", "from", s.settings.Method, "to", m)
	s.settings.Method = m
}

// Points returns a copy of the placed points.
func (s *Session) Points() []spline.Point { return slices.Clone(s.points) }

// Len returns the number of placed points.
func (s *Session) Len() int { return len(s.points) }

// Finished reports whether the user has finished placing points.
func (s *Session) Finished() bool { return s.finished }

func (s *Session) save() {
	s.history = append(s.history, state{
		points:   slices.Clone(s.points),
		finished: s.finished,
	})
}

// Add appends a point. It fails with ErrFinished once the session is
// finished.
func (s *Session) Add(p spline.Point) error {
	if s.finished {
		return ErrFinished
	}
	s.save()
	s.points = append(s.points, p)
	return nil
}

// Move replaces the i-th point. Points can be moved even after the session
// is finished.
func (s *Session) Move(i int, p spline.Point) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.save()
	s.points[i] = p
	return nil
}

// Remove deletes the i-th point.
func (s *Session) Remove(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.save()
	s.points = slices.Delete(s.points, i, i+1)
	return nil
}

func (s *Session) checkIndex(i int) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("lab: point index %d out of range [0, %d)", i, len(s.points))
	}
	return nil
}

// Nearest returns the index of the placed point closest to p, or -1 if there
// are no points or none is within radius.
func (s *Session) Nearest(p spline.Point, radius float64) int {
	if radius < 0 {
		return -1
	}
	best, bestDist := -1, radius*radius
	for i, q := range s.points {
		if d := q.DistanceSquared(p); d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Finish marks the session as finished, after which no points can be added.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.save()
	s.finished = true
}

// Clear removes all points and reopens a finished session.
func (s *Session) Clear() {
	if len(s.points) == 0 && !s.finished {
		return
	}
	s.save()
	s.points = nil
	s.finished = false
}

// Undo reverts the most recent Add, Move, Remove, Finish or Clear. It
// reports whether there was anything to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	s.state = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return true
}
