package curves

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
)

// Default parameter range for generated curves.
const (
	DefaultMinParam = 0.1
	DefaultMaxParam = 42.0
)

// MinPopulation is the smallest population Generate accepts: one of each kind.
const MinPopulation = 3

var (
	// ErrTooFewCurves is returned by Generate when count < MinPopulation.
	ErrTooFewCurves = errors.New("population must hold at least one curve of each kind")
	// ErrInvalidRange is returned for a parameter range that is empty or not positive.
	ErrInvalidRange = errors.New("invalid parameter range")
)

// Generator builds random curve populations from an explicit random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	min, max float64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRange sets the interval [min, max) shape parameters are drawn from.
func WithRange(min, max float64) GeneratorOption {
	return func(g *Generator) {
		g.min = min
		g.max = max
	}
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(src rand.Source, opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		rng: rand.New(src),
		min: DefaultMinParam,
		max: DefaultMaxParam,
	}
	for _, opt := range opts {
		opt(g)
	}
	if !(g.min > 0) || !(g.max > g.min) {
		return nil, fmt.Errorf("[%v, %v): %w", g.min, g.max, ErrInvalidRange)
	}
	return g, nil
}

// NewSeededGenerator creates a deterministic generator; equal seeds yield
// equal populations.
func NewSeededGenerator(seed uint64, opts ...GeneratorOption) (*Generator, error) {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), opts...)
}

// NewEntropyGenerator creates a generator seeded from the operating system.
func NewEntropyGenerator(opts ...GeneratorOption) (*Generator, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read entropy: %w", err)
	}
	return NewGenerator(rand.NewChaCha8(seed), opts...)
}

// Generate returns count curves. The first three are a Circle, an Ellipse
// and a Helix in that order; the rest are chosen uniformly at random.
func (g *Generator) Generate(count int) ([]Curve, error) {
	if count < MinPopulation {
		return nil, fmt.Errorf("got count %d, need at least %d: %w", count, MinPopulation, ErrTooFewCurves)
	}

	curves := make([]Curve, 0, count)
	for _, kind := range Kinds {
		c, err := g.newCurve(kind)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}

	for len(curves) < count {
		kind := Kinds[g.rng.IntN(len(Kinds))]
		c, err := g.newCurve(kind)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}

	return curves, nil
}

func (g *Generator) draw() float64 {
	return g.min + g.rng.Float64()*(g.max-g.min)
}

func (g *Generator) newCurve(kind Kind) (Curve, error) {
	var (
		c   Curve
		err error
	)
	switch kind {
	case KindCircle:
		var circle *Circle
		circle, err = NewCircle(g.draw())
		c = circle
	case KindEllipse:
		a := g.draw()
		b := g.draw()
		var ellipse *Ellipse
		ellipse, err = NewEllipse(a, b)
		c = ellipse
	case KindHelix:
		r := g.draw()
		p := g.draw()
		var helix *Helix
		helix, err = NewHelix(r, p)
		c = helix
	default:
		return nil, fmt.Errorf("unknown curve kind %v", kind)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
