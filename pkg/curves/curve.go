// Package curves implements the parametric curve family: circles,
// ellipses and 3D helices, plus a random population generator.
package curves

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gocurves/pkg/geometry"
)

// ErrInvalidParameter is returned when a curve is constructed with a
// non-positive or non-finite shape parameter.
var ErrInvalidParameter = errors.New("invalid curve parameter")

// Curve is a parametric curve evaluated at a scalar parameter t.
//
// Implementations are immutable after construction and safe for
// concurrent use.
type Curve interface {
	// Name returns the variant label, e.g. "Circle".
	Name() string
	// Point returns the position of the curve at t.
	Point(t float64) geometry.Vector3
	// FirstDerivative returns d/dt of Point at t.
	FirstDerivative(t float64) geometry.Vector3
}

// Kind identifies a curve variant.
type Kind int

const (
	KindCircle Kind = iota
	KindEllipse
	KindHelix
)

// Kinds lists all variants in generation order.
var Kinds = []Kind{KindCircle, KindEllipse, KindHelix}

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindHelix:
		return "Helix"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the variant of c. The second result is false for curves
// that do not report a Kind.
func KindOf(c Curve) (Kind, bool) {
	if k, ok := c.(interface{ Kind() Kind }); ok {
		return k.Kind(), true
	}
	return 0, false
}

func requirePositive(curve, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s: %s must be positive, got %v: %w", curve, param, v, ErrInvalidParameter)
	}
	return nil
}

func requireFinite(curve, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s must be finite, got %v: %w", curve, param, v, ErrInvalidParameter)
	}
	return nil
}
