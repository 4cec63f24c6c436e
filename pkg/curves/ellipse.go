package curves

import (
	"math"

	"github.com/philipparndt/gocurves/pkg/geometry"
)

// Ellipse is an axis-aligned ellipse centered at the origin in the XY plane.
// A is the semi-axis along X, B along Y; A need not be the larger one.
type Ellipse struct {
	a, b float64
}

var _ Curve = (*Ellipse)(nil)

// NewEllipse creates an ellipse. Both semi-axes must be positive.
func NewEllipse(a, b float64) (*Ellipse, error) {
	if err := requirePositive("ellipse", "semi-axis a", a); err != nil {
		return nil, err
	}
	if err := requirePositive("ellipse", "semi-axis b", b); err != nil {
		return nil, err
	}
	return &Ellipse{a: a, b: b}, nil
}

func (e *Ellipse) SemiAxisA() float64 { return e.a }

func (e *Ellipse) SemiAxisB() float64 { return e.b }

func (e *Ellipse) Name() string { return KindEllipse.String() }

func (e *Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Point(t float64) geometry.Vector3 {
	sin, cos := math.Sincos(t)
	return geometry.NewVector3(e.a*cos, e.b*sin, 0)
}

func (e *Ellipse) FirstDerivative(t float64) geometry.Vector3 {
	sin, cos := math.Sincos(t)
	return geometry.NewVector3(-e.a*sin, e.b*cos, 0)
}
