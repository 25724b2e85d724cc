package spline

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestBezierImmutable(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(3, 1)}
	b, err := NewBezier(pts...)
	if err != nil {
		t.Fatal(err)
	}
	pts[1] = Pt(50, 50)
	b.Points()[1] = Pt(60, 60)
	b.ControlPolygon()[1] = Pt(70, 70)
	diff(t, Pt(1, 2), b.Point(1))
	if b.Degree() != 2 {
		t.Errorf("got degree %d, want 2", b.Degree())
	}
}

func TestNewBezierEmpty(t *testing.T) {
	if _, err := NewBezier(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}
}

func TestBezierZeroValue(t *testing.T) {
	for _, m := range []Method{Bernstein, DeCasteljau} {
		t.Run(m.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("evaluating the zero value didn't panic")
				}
			}()
			Bezier{}.EvalWith(m, 0.5)
		})
	}
}

func TestBezierEvalWith(t *testing.T) {
	b := MustBezier(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0))
	for _, m := range []Method{Bernstein, DeCasteljau} {
		diff(t, Pt(0.5, 0.75), b.EvalWith(m, 0.5), approx(1e-12))
	}
}

func TestBezierDegreeZero(t *testing.T) {
	p := Pt(4, 2)
	b := MustBezier(p)
	for _, ts := range []float64{0, 0.25, 1} {
		diff(t, p, b.Eval(ts))
		diff(t, Vec2{}, b.DerivativeAt(ts))
		d, err := DerivativeAt([]Point{p}, ts)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Vec2{}, d)
	}
	diff(t, Point{}, b.Deriv().Eval(0.5))
	diff(t, []Vec2{}, DerivativeControlPoints([]Point{p}))
}

func TestDerivativeControlPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	want := []Vec2{Vec(0, 3), Vec(3, 0), Vec(0, -3)}
	diff(t, want, DerivativeControlPoints(pts))

	d, err := DerivativeAt(pts, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec(1.5, 0), d, approx(1e-12))
}

func TestBezierDeriv(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	b := MustBezier(randomPoints(rng, 6)...)
	deriv := b.Deriv()
	if deriv.Degree() != b.Degree()-1 {
		t.Fatalf("got derivative of degree %d, want %d", deriv.Degree(), b.Degree()-1)
	}

	const n = 10
	const delta = 1e-7
	for i := range n {
		ts := float64(i) / float64(n)
		p := b.Eval(ts)
		p1 := b.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := b.DerivativeAt(ts)
		if l := d.Sub(dApprox).Hypot(); l >= 1e-3*max(1, d.Hypot()) {
			t.Errorf("t=%g: got %v, finite difference %v", ts, d, dApprox)
		}
		diff(t, Point(d), deriv.Eval(ts), pointComparer)
	}
}

func TestBezierClamp(t *testing.T) {
	b := MustBezier(Pt(0, 0), Pt(2, 3), Pt(4, 0))
	diff(t, b.Eval(0), b.Eval(-3))
	diff(t, b.Eval(1), b.Eval(1.5))
}

func TestBezierSampleEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	b := MustBezier(randomPoints(rng, 5)...)
	for _, n := range []int{1, 2, 3, 7, 50, 100} {
		pts := b.Sample(n)
		if len(pts) != n+1 {
			t.Fatalf("got %d samples, want %d", len(pts), n+1)
		}
		diff(t, b.Eval(0), pts[0])
		diff(t, b.Eval(1), pts[n])
		for i, pt := range pts {
			diff(t, b.Eval(float64(i)/float64(n)), pt, pointComparer)
		}
	}
}

func TestSample(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	got, err := Sample(pts, 4)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0), Pt(10, 0)}, got, approx(1e-12))

	if _, err := Sample(pts, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v for 0 samples, want ErrInvalidArgument", err)
	}
	if _, err := Sample(nil, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v for no points, want ErrInvalidArgument", err)
	}
}

func TestSamplesStop(t *testing.T) {
	b := MustBezier(Pt(0, 0), Pt(1, 1))
	var n int
	for range b.Samples(100) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d iterations, want 3", n)
	}
}

func TestApproximateLength(t *testing.T) {
	// Straight lines are measured exactly.
	l, err := ApproximateLength([]Point{Pt(0, 0), Pt(1, 1), Pt(3, 3)}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Hypot(3, 3); math.Abs(l-want) > 1e-12 {
		t.Errorf("got length %v, want %v", l, want)
	}

	// A quarter circle approximation; refining never shortens the polyline.
	b := MustBezier(Pt(1, 0), Pt(1, 0.5522847498), Pt(0.5522847498, 1), Pt(0, 1))
	prev := 0.0
	for n := 1; n <= 1024; n *= 2 {
		l := b.ApproximateLength(n)
		if l < prev {
			t.Fatalf("length decreased from %v to %v at %d samples", prev, l, n)
		}
		prev = l
	}
	if d := math.Abs(prev - math.Pi/2); d > 1e-3 {
		t.Errorf("got length %v, want about %v", prev, math.Pi/2)
	}
	if d := b.ApproximateLength(2048) - prev; d > 1e-6 {
		t.Errorf("length still changes by %g", d)
	}

	if _, err := ApproximateLength(nil, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}
}

func TestBezierSubsegment(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	b := MustBezier(randomPoints(rng, 5)...)
	seg := b.Subsegment(0.2, 0.7)
	for i := range 11 {
		s := float64(i) / 10
		diff(t, b.Eval(0.2+0.5*s), seg.Eval(s), pointComparer)
	}

	rev := b.Subsegment(0.7, 0.2)
	diff(t, b.Eval(0.7), rev.Start(), pointComparer)
	diff(t, b.Eval(0.2), rev.End(), pointComparer)

	end := b.Subsegment(1, 1)
	diff(t, b.End(), end.Eval(0.5), pointComparer)
}

func TestBezierBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	b := MustBezier(randomPoints(rng, 7)...)
	box := b.BoundingBox()
	for pt := range b.Samples(200) {
		if !box.Contains(pt) {
			t.Fatalf("%v lies outside the control polygon's bounding box %v", pt, box)
		}
	}
}

func TestBezierCubic(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	c, ok := MustBezier(pts...).Cubic()
	if !ok {
		t.Fatal("degree 3 curve didn't convert to a cubic")
	}
	arr := c.Points()
	diff(t, pts, arr[:])
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, MustBezier(pts...).Eval(ts), c.Eval(ts), pointComparer)
		diff(t, MustBezier(pts...).DerivativeAt(ts), c.DerivativeAt(ts), approx(1e-9))
	}
	if _, ok := MustBezier(pts[:3]...).Cubic(); ok {
		t.Error("degree 2 curve converted to a cubic")
	}
}
