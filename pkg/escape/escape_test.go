package escape

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/willbeason/mandel-sweep/pkg/transforms"
)

func TestTrajectoryInteriorRunsToCap(t *testing.T) {
	points := Trajectory(complex(-0.4, 0), 100, 2)
	if len(points) != 100 {
		t.Fatalf("got %d points, want 100", len(points))
	}
	if points[0] != complex(-0.4, 0) {
		t.Errorf("first iterate = %v, want c", points[0])
	}

	// The orbit settles on the attracting fixed point (1 - sqrt(1-4c))/2.
	fixed := (1 - math.Sqrt(2.6)) / 2
	if last := points[len(points)-1]; cmplx.Abs(last-complex(fixed, 0)) > 1e-6 {
		t.Errorf("last iterate = %v, want about %v", last, fixed)
	}
}

func TestTrajectoryStopsAfterEscape(t *testing.T) {
	// z1 = 2, z2 = 6 with |6|^2 >= 9; nothing after z2 is computed.
	points := Trajectory(2, 100, 2)
	if len(points) != 2 {
		t.Fatalf("got %v, want 2 points", points)
	}
	if points[0] != 2 || cmplx.Abs(points[1]-6) > 1e-12 {
		t.Errorf("got %v, want [2 6]", points)
	}
}

func TestTrajectoryIncludesFirstEscapedValue(t *testing.T) {
	// z1 = 3 already escapes, and is the only iterate.
	points := Trajectory(3, 100, 2.5)
	if len(points) != 1 || points[0] != 3 {
		t.Fatalf("got %v, want [3]", points)
	}
}

func TestTrajectoryCap(t *testing.T) {
	for _, maxIters := range []int{0, 1, 5} {
		points := Trajectory(0, maxIters, 2)
		if len(points) != maxIters {
			t.Errorf("maxIters %d: got %d points", maxIters, len(points))
		}
	}
}

func TestAppendReusesBuffer(t *testing.T) {
	buf := make([]complex128, 0, 10)
	buf = append(buf, 42, 42, 42)

	got := Append(buf, transforms.Mandelbrot{C: 2}, 10, Threshold)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 points", got)
	}
	if &got[0] != &buf[0] {
		t.Error("Append allocated instead of reusing dst")
	}
}

func TestAppendToleratesNonFinite(t *testing.T) {
	nan := complex(math.NaN(), 0)
	points := Trajectory(nan, 5, 2)
	// NaN never compares >= threshold, so the orbit runs to the cap.
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}
	if !cmplx.IsNaN(points[4]) {
		t.Errorf("last iterate = %v, want NaN", points[4])
	}
}
