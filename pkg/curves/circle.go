package curves

import (
	"math"

	"github.com/philipparndt/gocurves/pkg/geometry"
)

// Circle is a circle of a given radius centered at the origin in the XY plane.
type Circle struct {
	radius float64
}

var _ Curve = (*Circle)(nil)

// NewCircle creates a circle. The radius must be positive.
func NewCircle(radius float64) (*Circle, error) {
	if err := requirePositive("circle", "radius", radius); err != nil {
		return nil, err
	}
	return &Circle{radius: radius}, nil
}

// Radius returns the radius the circle was created with.
func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) Name() string { return KindCircle.String() }

func (c *Circle) Kind() Kind { return KindCircle }

// Point returns (r cos t, r sin t, 0).
func (c *Circle) Point(t float64) geometry.Vector3 {
	sin, cos := math.Sincos(t)
	return geometry.NewVector3(c.radius*cos, c.radius*sin, 0)
}

// FirstDerivative returns (-r sin t, r cos t, 0).
func (c *Circle) FirstDerivative(t float64) geometry.Vector3 {
	sin, cos := math.Sincos(t)
	return geometry.NewVector3(-c.radius*sin, c.radius*cos, 0)
}
