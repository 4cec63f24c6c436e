package analysis

import (
	"sort"

	"github.com/philipparndt/gocurves/pkg/curves"
)

// ExtractCircles returns the circles of cs in input order. The returned
// pointers are the population's own curves, not copies. cs is not modified.
func ExtractCircles(cs []curves.Curve) []*curves.Circle {
	circles := make([]*curves.Circle, 0, len(cs))
	for _, c := range cs {
		if circle, ok := c.(*curves.Circle); ok {
			circles = append(circles, circle)
		}
	}
	return circles
}

// SortByRadius returns the circles ordered by ascending radius. Equal radii
// may appear in any order. The input slice is left untouched.
func SortByRadius(circles []*curves.Circle) []*curves.Circle {
	sorted := make([]*curves.Circle, len(circles))
	copy(sorted, circles)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Radius() < sorted[j].Radius()
	})

	return sorted
}

// CountKinds returns how many curves of each kind cs holds.
func CountKinds(cs []curves.Curve) map[curves.Kind]int {
	counts := make(map[curves.Kind]int, len(curves.Kinds))
	for _, c := range cs {
		if kind, ok := curves.KindOf(c); ok {
			counts[kind]++
		}
	}
	return counts
}
