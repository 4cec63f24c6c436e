package curves

import (
	"math"

	"github.com/philipparndt/gocurves/pkg/geometry"
)

// Helix is a circular helix around the Z axis. Step is the rise in Z per
// unit of t (not per turn); a zero step traces the circle repeatedly.
type Helix struct {
	radius float64
	step   float64
}

var _ Curve = (*Helix)(nil)

// NewHelix creates a helix. The radius must be positive, the step finite.
func NewHelix(radius, step float64) (*Helix, error) {
	if err := requirePositive("helix", "radius", radius); err != nil {
		return nil, err
	}
	if err := requireFinite("helix", "step", step); err != nil {
		return nil, err
	}
	return &Helix{radius: radius, step: step}, nil
}

func (h *Helix) Radius() float64 { return h.radius }

func (h *Helix) Step() float64 { return h.step }

func (h *Helix) Name() string { return KindHelix.String() }

func (h *Helix) Kind() Kind { return KindHelix }

// Point returns (r cos t, r sin t, p t).
func (h *Helix) Point(t float64) geometry.Vector3 {
	sin, cos := math.Sincos(t)
	return geometry.NewVector3(h.radius*cos, h.radius*sin, h.step*t)
}

// FirstDerivative returns (-r sin t, r cos t, p).
func (h *Helix) FirstDerivative(t float64) geometry.Vector3 {
	sin, cos := math.Sincos(t)
	return geometry.NewVector3(-h.radius*sin, h.radius*cos, h.step)
}
