package colorize

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/cmplx"
)

// HueTolerance is how far outside [0, 3] a hue parameter may drift from
// rounding before it is treated as a defect.
const HueTolerance = 1e-5

var (
	ErrEmptyTrajectory = errors.New("empty trajectory")
	ErrHueOutOfRange   = errors.New("hue parameter out of range")
)

// RGB is a colour with unbounded floating-point channels.
type RGB struct {
	R, G, B float64
}

func (c RGB) Add(o RGB) RGB {
	return RGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// CubeSum is r^3 + g^3 + b^3.
func (c RGB) CubeSum() float64 {
	return c.R*c.R*c.R + c.G*c.G*c.G + c.B*c.B*c.B
}

// Bytes converts channels in [0, 1] to an opaque 8-bit colour, rounding and
// clamping anything outside that range.
func (c RGB) Bytes() color.RGBA {
	return color.RGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: 0xff}
}

func toByte(v float64) uint8 {
	v = math.Round(v * 255.0)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// NormArg maps the angle of points[0] - points[last] from [-pi, pi] onto
// [0, 3], the domain of Hue.
func NormArg(points []complex128) (float64, error) {
	if len(points) == 0 {
		return 0, ErrEmptyTrajectory
	}

	value := points[0] - points[len(points)-1]
	t := (cmplx.Phase(value) + math.Pi) / (math.Pi * 2.0 / 3.0)

	if !(t > -HueTolerance && t < 3.0+HueTolerance) {
		return t, fmt.Errorf("%w: %v from displacement %v", ErrHueOutOfRange, t, value)
	}
	return t, nil
}

// Hue is a fully saturated colour wheel over t in [0, 3]: red at 0, green
// at 1, blue at 2 and red again at 3, linear in between.
func Hue(t float64) RGB {
	switch {
	case t < 1.0:
		return RGB{R: 1.0 - t, G: t}
	case t < 2.0:
		return RGB{G: 2.0 - t, B: t - 1.0}
	default:
		return RGB{R: t - 2.0, B: 3.0 - t}
	}
}

// maxHalvings is enough halvings to bring math.MaxFloat64 below 1.
const maxHalvings = 1100

// ToneMap halves all channels together until none exceeds 1.
func ToneMap(c RGB) RGB {
	for i := 0; i < maxHalvings && (c.R > 1.0 || c.G > 1.0 || c.B > 1.0); i++ {
		c = c.Scale(0.5)
	}
	return c
}
