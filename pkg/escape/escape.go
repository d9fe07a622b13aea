// Package escape generates escape-time trajectories of Mandelbrot-style recurrences.
package escape

import "github.com/willbeason/mandel-sweep/pkg/transforms"

// Threshold is the squared norm at which an orbit is considered escaped.
const Threshold = 9.0

// Trajectory iterates z <- z^pow + c from z = 0 and returns every iterate
// computed before the orbit escaped or maxIters steps ran.
func Trajectory(c complex128, maxIters int, pow float64) []complex128 {
	return Append(make([]complex128, 0, maxIters), transforms.MandelbrotN{C: c, N: pow}, maxIters, Threshold)
}

// Append runs tr from z = 0, writing the orbit into dst[:0].
//
// The escape check applies to the value before each step, so the first
// iterate at or beyond threshold is included but nothing after it.
// Non-finite iterates are kept as they are.
func Append(dst []complex128, tr transforms.Transform, maxIters int, threshold float64) []complex128 {
	dst = dst[:0]

	z := complex128(0)
	for i := 0; i < maxIters; i++ {
		if normSqr(z) >= threshold {
			break
		}
		z = tr.Next(z)
		dst = append(dst, z)
	}

	return dst
}

func normSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
