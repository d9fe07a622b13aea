package transforms

// A Transform advances a point of an orbit by one step.
type Transform interface {
	Next(z complex128) complex128
}

var (
	_ Transform = Mandelbrot{}
	_ Transform = MandelbrotN{}
)
