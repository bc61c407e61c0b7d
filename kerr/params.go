/*package kerr computes the static geometry of a rotating (Kerr) black hole:
the outer event horizon, the static limit which bounds the ergosphere, and a
set of illustrative particle paths for the Penrose process.

All lengths are geometrized (G = c = 1), so the mass, the spin and every
radius computed here share the same unit. Nothing in this package integrates
the geodesic equation: the trajectories are hand-authored spirals.
*/
package kerr

import (
	"fmt"
	"math"
)

// Params are the two physical parameters of a Kerr hole. Spin is the
// angular momentum per unit mass, a = J/M.
type Params struct {
	Mass, Spin float64
}

// DomainError is returned when a Params value does not describe a hole with
// a real outer horizon.
type DomainError struct {
	Mass, Spin float64
	Reason     string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf(
		"kerr: invalid parameters M = %g, a = %g: %s",
		e.Mass, e.Spin, e.Reason,
	)
}

// Check returns a *DomainError if p is outside 0 <= a <= M, M > 0.
func (p Params) Check() error {
	reason := ""
	switch {
	case math.IsNaN(p.Mass) || math.IsInf(p.Mass, 0):
		reason = "mass must be finite"
	case math.IsNaN(p.Spin) || math.IsInf(p.Spin, 0):
		reason = "spin must be finite"
	case p.Mass <= 0:
		reason = "mass must be positive"
	case p.Spin < 0:
		reason = "spin must be non-negative"
	case p.Spin > p.Mass:
		reason = "spin exceeds mass, so M^2 - a^2 < 0 and there is no " +
			"real outer horizon"
	}

	if reason == "" {
		return nil
	}
	return &DomainError{Mass: p.Mass, Spin: p.Spin, Reason: reason}
}

// RPlus returns the coordinate radius of the outer event horizon,
// M + sqrt(M^2 - a^2).
func (p Params) RPlus() (float64, error) {
	if err := p.Check(); err != nil {
		return 0, err
	}
	return p.rPlus(), nil
}

// RErgo returns the radius of the static limit at the polar angle theta,
// M + sqrt(M^2 - a^2 cos^2(theta)).
func (p Params) RErgo(theta float64) (float64, error) {
	if err := p.Check(); err != nil {
		return 0, err
	}
	return p.rErgo(math.Cos(theta)), nil
}

// rPlus and rErgo assume p has already passed Check.

func (p Params) rPlus() float64 {
	m, a := p.Mass, p.Spin
	return m + math.Sqrt(m*m-a*a)
}

// rErgo takes cos(theta) so that surface generation can reuse a cached
// value. a*a is rounded before it is scaled by cos^2, which keeps the
// radicand no smaller than the horizon's.
func (p Params) rErgo(cosTheta float64) float64 {
	m, a := p.Mass, p.Spin
	a2 := a * a
	return m + math.Sqrt(m*m-a2*(cosTheta*cosTheta))
}
