package transforms

import (
	"math"
	"math/cmplx"
)

// Mandelbrot is the classical quadratic recurrence z*z + C.
type Mandelbrot struct {
	C complex128
}

func (m Mandelbrot) Next(z complex128) complex128 {
	return z*z + m.C
}

// MandelbrotN raises z to the real power N before adding C.
type MandelbrotN struct {
	C complex128
	N float64
}

func (m MandelbrotN) Next(z complex128) complex128 {
	return Pow(z, m.N) + m.C
}

// Pow returns the principal value of z^p, |z|^p * e^(i*p*arg(z)), with
// arg(z) in (-pi, pi]. Zero raised to a positive power is zero.
func Pow(z complex128, p float64) complex128 {
	if z == 0 {
		switch {
		case p == 0:
			return 1
		case p > 0:
			return 0
		}
		return cmplx.Inf()
	}

	r := math.Pow(cmplx.Abs(z), p)
	s, c := math.Sincos(p * cmplx.Phase(z))
	return complex(r*c, r*s)
}
