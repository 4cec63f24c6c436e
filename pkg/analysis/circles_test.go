package analysis_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocurves/pkg/analysis"
	"github.com/philipparndt/gocurves/pkg/curves"
)

func population(t *testing.T, seed uint64, n int) []curves.Curve {
	t.Helper()
	g, err := curves.NewSeededGenerator(seed)
	require.NoError(t, err)
	cs, err := g.Generate(n)
	require.NoError(t, err)
	return cs
}

func circle(t *testing.T, r float64) *curves.Circle {
	t.Helper()
	c, err := curves.NewCircle(r)
	require.NoError(t, err)
	return c
}

func radii(circles []*curves.Circle) []float64 {
	out := make([]float64, len(circles))
	for i, c := range circles {
		out[i] = c.Radius()
	}
	return out
}

func TestExtractCirclesOnlyCircles(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		cs := population(t, seed, 100)
		circles := analysis.ExtractCircles(cs)

		assert.LessOrEqual(t, len(circles), len(cs))
		assert.NotEmpty(t, circles, "first curve is always a circle")
		for _, c := range circles {
			assert.Equal(t, curves.KindCircle.String(), c.Name())
		}
		assert.Equal(t, analysis.CountKinds(cs)[curves.KindCircle], len(circles))
	}
}

func TestExtractCirclesAliasesAndKeepsOrder(t *testing.T) {
	c1 := circle(t, 5)
	c2 := circle(t, 1)
	e, err := curves.NewEllipse(1, 2)
	require.NoError(t, err)
	h, err := curves.NewHelix(1, 2)
	require.NoError(t, err)

	cs := []curves.Curve{e, c1, h, c2}
	circles := analysis.ExtractCircles(cs)

	require.Len(t, circles, 2)
	assert.Same(t, c1, circles[0])
	assert.Same(t, c2, circles[1])

	// Input is untouched.
	assert.Equal(t, []curves.Curve{e, c1, h, c2}, cs)
}

func TestExtractCirclesEmpty(t *testing.T) {
	circles := analysis.ExtractCircles(nil)
	assert.NotNil(t, circles)
	assert.Empty(t, circles)
}

func TestSortByRadius(t *testing.T) {
	in := []*curves.Circle{circle(t, 3), circle(t, 1), circle(t, 2), circle(t, 1)}
	sorted := analysis.SortByRadius(in)

	assert.Equal(t, []float64{1, 1, 2, 3}, radii(sorted))
	assert.Equal(t, []float64{3, 1, 2, 1}, radii(in), "input must keep its order")
}

func TestSortByRadiusIsPermutation(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		circles := analysis.ExtractCircles(population(t, seed, 500))
		sorted := analysis.SortByRadius(circles)

		require.Len(t, sorted, len(circles))
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Radius(), sorted[i].Radius())
		}

		// Same set of pointers, not copies.
		less := func(a, b *curves.Circle) bool { return a.Radius() < b.Radius() }
		if d := cmp.Diff(circles, sorted, cmpopts.SortSlices(less), cmp.Comparer(func(a, b *curves.Circle) bool { return a == b })); d != "" {
			t.Errorf("sorted output is not a permutation of input (-in +out):\n%s", d)
		}
	}
}

func TestSortByRadiusEmpty(t *testing.T) {
	assert.Empty(t, analysis.SortByRadius(nil))
}

func TestCountKinds(t *testing.T) {
	cs := population(t, 11, 3)
	want := map[curves.Kind]int{
		curves.KindCircle:  1,
		curves.KindEllipse: 1,
		curves.KindHelix:   1,
	}
	if d := cmp.Diff(want, analysis.CountKinds(cs)); d != "" {
		t.Errorf("CountKinds mismatch (-want +got):\n%s", d)
	}
}
