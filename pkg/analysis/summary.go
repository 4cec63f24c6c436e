package analysis

import (
	"fmt"

	"github.com/philipparndt/gocurves/internal/logging"
	"github.com/philipparndt/gocurves/pkg/curves"
)

// Summary is the result of running the circle pipeline over a population.
type Summary struct {
	Curves    []curves.Curve
	Circles   []*curves.Circle // sorted by radius
	RadiusSum float64
	Counts    map[curves.Kind]int
}

// Summarize extracts the circles of cs, sorts them by radius and sums their
// radii with r. A nil reducer sums sequentially.
func Summarize(cs []curves.Curve, r Reducer) *Summary {
	if r == nil {
		r = Sequential{}
	}
	logger := logging.New("analysis")

	circles := SortByRadius(ExtractCircles(cs))
	sum := r.SumRadii(circles)

	logger.Debug("summarized population",
		"curves", len(cs),
		"circles", len(circles),
		"reducer", fmt.Sprintf("%T", r),
		"radius_sum", sum)

	return &Summary{
		Curves:    cs,
		Circles:   circles,
		RadiusSum: sum,
		Counts:    CountKinds(cs),
	}
}
