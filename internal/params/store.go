// Package params implements the parameter store: the only state that
// outlives an expression-graph generation.
//
// A Store owns trainable tensors and their gradient accumulators.
// Parameters are created at model-definition time, mutated in place by an
// optimizer, and persist across training examples. The Store is not
// thread-safe; it must not be shared between concurrently running graphs.
package params

import (
	"fmt"
	"math/rand"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Handle identifies a parameter within its Store.
// Handles from one Store must not be used with another.
type Handle int

// entry is one trainable parameter: value plus equally-shaped gradient
// accumulator.
type entry struct {
	name  string
	value *tensor.Dense
	grad  *tensor.Dense
}

// Store owns trainable parameters and their accumulated gradients.
type Store struct {
	entries []entry
	dtype   tensor.DataType
	init    Initializer
	rng     *rand.Rand
	version uint64
}

// Option configures a Store.
type Option func(*Store)

// WithDType sets the element type for declared parameters.
// Default: Float32.
func WithDType(dt tensor.DataType) Option {
	return func(s *Store) { s.dtype = dt }
}

// WithSeed seeds the random source used by initializers.
func WithSeed(seed int64) Option {
	return func(s *Store) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithDefaultInit sets the initializer used when Declare is not given one.
// Default: Uniform(0.5), small random values.
func WithDefaultInit(init Initializer) Option {
	return func(s *Store) { s.init = init }
}

// NewStore creates an empty parameter store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		dtype: tensor.Float32,
		init:  Uniform(0.5),
		rng:   rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DeclareOption configures a single Declare call.
type DeclareOption func(*declareConfig)

type declareConfig struct {
	name string
	init Initializer
}

// WithName attaches a descriptive name to the parameter (e.g. "fc1.weight").
func WithName(name string) DeclareOption {
	return func(c *declareConfig) { c.name = name }
}

// WithInit overrides the store's default initializer for this parameter.
func WithInit(init Initializer) DeclareOption {
	return func(c *declareConfig) { c.init = init }
}

// Declare allocates a new parameter with the given shape. Values are drawn
// from the configured initializer; the gradient accumulator starts zeroed.
func (s *Store) Declare(shape tensor.Shape, opts ...DeclareOption) (Handle, error) {
	cfg := declareConfig{init: s.init}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = fmt.Sprintf("param%d", len(s.entries))
	}

	value, err := tensor.NewDense(shape, s.dtype)
	if err != nil {
		return 0, fmt.Errorf("declare %q: %w", cfg.name, err)
	}
	cfg.init(value, s.rng)

	grad, err := tensor.NewDense(shape, s.dtype)
	if err != nil {
		return 0, fmt.Errorf("declare %q: %w", cfg.name, err)
	}

	s.entries = append(s.entries, entry{name: cfg.name, value: value, grad: grad})
	return Handle(len(s.entries) - 1), nil
}

// lookup resolves a handle. An unknown handle is a contract violation.
func (s *Store) lookup(h Handle) *entry {
	if h < 0 || int(h) >= len(s.entries) {
		panic(fmt.Sprintf("params: unknown handle %d (store has %d parameters)", h, len(s.entries)))
	}
	return &s.entries[h]
}

// ValueOf returns the live value tensor for a parameter.
// The returned tensor is the store's own buffer: optimizers mutate it in
// place and callers must not resize it.
func (s *Store) ValueOf(h Handle) *tensor.Dense {
	return s.lookup(h).value
}

// GradOf returns the gradient accumulator for a parameter.
func (s *Store) GradOf(h Handle) *tensor.Dense {
	return s.lookup(h).grad
}

// NameOf returns the parameter's declared name.
func (s *Store) NameOf(h Handle) string {
	return s.lookup(h).name
}

// Len returns the number of declared parameters.
func (s *Store) Len() int {
	return len(s.entries)
}

// Handles returns a handle for every declared parameter, in declaration order.
func (s *Store) Handles() []Handle {
	hs := make([]Handle, len(s.entries))
	for i := range hs {
		hs[i] = Handle(i)
	}
	return hs
}

// AccumulateGrad adds g into the parameter's gradient accumulator.
// Shapes must match; the backward engine guarantees this, so a mismatch
// here is a contract violation.
func (s *Store) AccumulateGrad(h Handle, g *tensor.Dense) {
	e := s.lookup(h)
	if !e.grad.Shape().Equal(g.Shape()) {
		panic(fmt.Sprintf("params: gradient shape %v does not match parameter %q shape %v",
			g.Shape(), e.name, e.grad.Shape()))
	}
	for i := 0; i < e.grad.Numel(); i++ {
		e.grad.SetAt(i, e.grad.At(i)+g.At(i))
	}
}

// ClearGradients zeroes every accumulator and bumps the store version so
// evaluators re-read parameter values on their next pass.
func (s *Store) ClearGradients() {
	for i := range s.entries {
		s.entries[i].grad.Zero()
	}
	s.version++
}

// Version returns a counter that increases whenever parameter values may
// have changed (after each optimizer step). Graph evaluators use it to
// invalidate cached forward values that depend on parameters.
func (s *Store) Version() uint64 {
	return s.version
}
