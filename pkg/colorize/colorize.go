// Package colorize colours a pixel by sweeping the exponent of the
// recurrence z <- z^pow + c and blending the hue of each trajectory.
package colorize

import (
	"fmt"
	"image/color"

	"github.com/willbeason/mandel-sweep/pkg/escape"
	"github.com/willbeason/mandel-sweep/pkg/plane"
	"github.com/willbeason/mandel-sweep/pkg/transforms"
)

// Intensity is the fraction of the iteration budget a trajectory of n
// points consumed.
func Intensity(n, maxIters int) float64 {
	return float64(n) / float64(maxIters)
}

// Contribution is the weighted colour of one trajectory: its hue scaled by
// intensity and divided by the hue's cube sum.
func Contribution(points []complex128, maxIters int) (RGB, error) {
	t, err := NormArg(points)
	if err != nil {
		return RGB{}, err
	}

	hue := Hue(t)
	return hue.Scale(Intensity(len(points), maxIters) / hue.CubeSum()), nil
}

// A Colorizer computes pixel colours for fixed Params. It keeps one
// trajectory buffer between samples and is not safe for concurrent use.
type Colorizer struct {
	Params Params

	path []complex128
}

func New(p Params) (*Colorizer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Colorizer{
		Params: p,
		path:   make([]complex128, 0, p.MaxIterations),
	}, nil
}

// Sample is the contribution of the trajectory of c under exponent pow.
func (cz *Colorizer) Sample(c complex128, pow float64) (RGB, error) {
	cz.path = escape.Append(cz.path, transforms.MandelbrotN{C: c, N: pow}, cz.Params.MaxIterations, cz.Params.Threshold)
	return Contribution(cz.path, cz.Params.MaxIterations)
}

// Sweep is the average contribution over all exponents of the sweep,
// before tone mapping.
func (cz *Colorizer) Sweep(c complex128) (RGB, error) {
	samples := cz.Params.Samples

	overall := RGB{}
	for i := -samples; i <= samples; i++ {
		pow := Exponent(i, samples, cz.Params.Distance)

		contribution, err := cz.Sample(c, pow)
		if err != nil {
			return RGB{}, fmt.Errorf("c=%v pow=%v: %w", c, pow, err)
		}
		overall = overall.Add(contribution)
	}

	return overall.Scale(1.0 / float64(2*samples+1)), nil
}

// Pixel is the colour of the pixel at (row, col) of a size x size image.
func (cz *Colorizer) Pixel(row, col, size int) (color.RGBA, error) {
	overall, err := cz.Sweep(plane.Constant(row, col, size))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("pixel (%d, %d): %w", row, col, err)
	}
	return ToneMap(overall).Bytes(), nil
}

// Pixel colours a single pixel without keeping a Colorizer around.
func Pixel(row, col, size int, p Params) (color.RGBA, error) {
	cz, err := New(p)
	if err != nil {
		return color.RGBA{}, err
	}
	return cz.Pixel(row, col, size)
}
