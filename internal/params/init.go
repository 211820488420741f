package params

import (
	"math"
	"math/rand"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Initializer fills a freshly allocated parameter tensor.
type Initializer func(t *tensor.Dense, rng *rand.Rand)

// Uniform draws values from U(-scale, scale).
func Uniform(scale float64) Initializer {
	return func(t *tensor.Dense, rng *rand.Rand) {
		for i := 0; i < t.Numel(); i++ {
			t.SetAt(i, (rng.Float64()*2.0-1.0)*scale)
		}
	}
}

// Xavier draws values from the Glorot uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
//
// For a 2D weight [out, in], fanIn is the number of columns and fanOut the
// number of rows; for other shapes both default to the element count.
func Xavier() Initializer {
	return func(t *tensor.Dense, rng *rand.Rand) {
		fanIn, fanOut := t.Numel(), t.Numel()
		if shape := t.Shape(); len(shape) == 2 {
			fanOut, fanIn = shape[0], shape[1]
		}
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		for i := 0; i < t.Numel(); i++ {
			t.SetAt(i, (rng.Float64()*2.0-1.0)*bound)
		}
	}
}

// Zeros leaves the tensor zero-filled. Commonly used for biases.
func Zeros() Initializer {
	return func(t *tensor.Dense, rng *rand.Rand) {}
}

// Constant fills the tensor with v. Mostly useful in tests.
func Constant(v float64) Initializer {
	return func(t *tensor.Dense, rng *rand.Rand) {
		for i := 0; i < t.Numel(); i++ {
			t.SetAt(i, v)
		}
	}
}

// Randn draws values from N(0, stddev).
func Randn(stddev float64) Initializer {
	return func(t *tensor.Dense, rng *rand.Rand) {
		for i := 0; i < t.Numel(); i++ {
			t.SetAt(i, rng.NormFloat64()*stddev)
		}
	}
}
