package colorize

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/mandel-sweep/pkg/escape"
)

const (
	// MaxIterations caps every trajectory of a run.
	MaxIterations = 100

	// Distance sets the sweep span: exponents range over [2/Distance, 2*Distance].
	Distance = 1.5
)

var ErrInvalidParams = errors.New("invalid parameters")

// Params are the fixed inputs of a render besides the image size.
type Params struct {
	MaxIterations int
	Threshold     float64
	Distance      float64

	// Samples is the half-width of the exponent sweep; each pixel runs
	// 2*Samples+1 trajectories.
	Samples int
}

func DefaultParams(samples int) Params {
	return Params{
		MaxIterations: MaxIterations,
		Threshold:     escape.Threshold,
		Distance:      Distance,
		Samples:       samples,
	}
}

func (p Params) Validate() error {
	switch {
	case p.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidParams, p.MaxIterations)
	case !(p.Threshold > 0):
		return fmt.Errorf("%w: escape threshold %v", ErrInvalidParams, p.Threshold)
	case !(p.Distance > 0):
		return fmt.Errorf("%w: sweep distance %v", ErrInvalidParams, p.Distance)
	case p.Samples < 0:
		return fmt.Errorf("%w: samples %d < 0", ErrInvalidParams, p.Samples)
	}
	return nil
}

// Exponent is the power used by sample i of a sweep of half-width samples.
// A sweep with no samples on either side uses exactly 2.
func Exponent(i, samples int, distance float64) float64 {
	if samples == 0 {
		return 2.0
	}
	return 2.0 * math.Pow(distance, float64(i)/float64(samples))
}
