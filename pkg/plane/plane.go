// Package plane maps pixel indices of a square image onto the complex plane.
package plane

// RealOffset shifts the real axis so the view is centred on the body of the set.
const RealOffset = -0.4

// Normalize maps pos in [0, size) linearly onto [-1, 1).
func Normalize(pos, size int) float64 {
	return float64(pos)*2.0/float64(size) - 1.0
}

// Constant is the recurrence constant for the pixel at (row, col). Rows run
// along the imaginary axis and columns along the real axis.
func Constant(row, col, size int) complex128 {
	return complex(Normalize(col, size)+RealOffset, Normalize(row, size))
}
