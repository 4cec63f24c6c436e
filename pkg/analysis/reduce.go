package analysis

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/philipparndt/gocurves/pkg/curves"
)

// DefaultThreshold is the largest range Parallel sums without splitting.
const DefaultThreshold = 256

// Reducer sums the radii of a slice of circles. An empty slice sums to 0.
type Reducer interface {
	SumRadii(circles []*curves.Circle) float64
}

// NewReducer returns Parallel when parallel is set, Sequential otherwise.
// Zero threshold or workers select the defaults.
func NewReducer(parallel bool, threshold, workers int) Reducer {
	if !parallel {
		return Sequential{}
	}
	return Parallel{Threshold: threshold, Workers: workers}
}

// SumRadii sums the radii left to right.
func SumRadii(circles []*curves.Circle) float64 {
	return Sequential{}.SumRadii(circles)
}

// Sequential is a left-to-right fold.
type Sequential struct{}

func (Sequential) SumRadii(circles []*curves.Circle) float64 {
	sum := 0.0
	for _, c := range circles {
		sum += c.Radius()
	}
	return sum
}

// Parallel is a fork-join reduction: ranges longer than Threshold are
// halved and both halves reduced, the left one on a new goroutine when a
// worker slot is free, then the partial sums are added. At most Workers
// goroutines, the caller included, take part in one reduction.
//
// Floating point addition is not associative, so the result can differ
// from Sequential in the last bits. The split tree depends only on
// Threshold, so the value does not depend on Workers or scheduling.
type Parallel struct {
	Threshold int
	Workers   int
}

func (p Parallel) SumRadii(circles []*curves.Circle) float64 {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	r := &forkJoin{
		threshold: threshold,
		// The calling goroutine holds the first worker slot.
		spare: semaphore.NewWeighted(int64(workers - 1)),
	}
	return r.reduce(circles)
}

type forkJoin struct {
	threshold int
	spare     *semaphore.Weighted
}

func (r *forkJoin) reduce(circles []*curves.Circle) float64 {
	if len(circles) <= r.threshold {
		return Sequential{}.SumRadii(circles)
	}

	mid := len(circles) / 2
	var left float64
	var g errgroup.Group
	if r.spare.TryAcquire(1) {
		g.Go(func() error {
			defer r.spare.Release(1)
			left = r.reduce(circles[:mid])
			return nil
		})
	} else {
		left = r.reduce(circles[:mid])
	}
	right := r.reduce(circles[mid:])
	_ = g.Wait() // reductions never fail

	return left + right
}
