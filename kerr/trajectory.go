package kerr

import (
	"fmt"
	"math"
)

// Names of the three Penrose-process paths.
const (
	InboundName   = "Inbound"
	EscapingName  = "Escaping"
	InfallingName = "Infalling"
)

// TrajectorySpec describes an equatorial-ish spiral whose radius, azimuth
// and height are each sampled uniformly between a start and an end value.
// The three quantities advance together by sample index.
type TrajectorySpec struct {
	Name             string
	RStart, REnd     float64
	PhiStart, PhiEnd float64
	ZStart, ZEnd     float64
	Samples          int

	// EndsAtHorizon replaces REnd with the hole's outer horizon radius.
	EndsAtHorizon bool
}

// Check returns an error if spec cannot be sampled.
func (spec *TrajectorySpec) Check() error {
	if spec.Samples < 2 {
		return fmt.Errorf(
			"Trajectory '%s' needs at least 2 samples, but has %d.",
			spec.Name, spec.Samples,
		)
	}

	vals := []float64{spec.RStart, spec.PhiStart, spec.PhiEnd, spec.ZStart,
		spec.ZEnd}
	if !spec.EndsAtHorizon {
		vals = append(vals, spec.REnd)
	}
	for _, x := range vals {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf(
				"Trajectory '%s' has a non-finite endpoint.", spec.Name,
			)
		}
	}

	if spec.RStart < 0 || (!spec.EndsAtHorizon && spec.REnd < 0) {
		return fmt.Errorf(
			"Trajectory '%s' has a negative radius.", spec.Name,
		)
	}

	return nil
}

// end returns the final radius of the spec for a hole with parameters p.
func (spec *TrajectorySpec) end(p Params) float64 {
	if spec.EndsAtHorizon {
		return p.rPlus()
	}
	return spec.REnd
}

// Trajectory is a sampled polyline. Rs, Phis and Zs hold the cylindrical
// coordinates each point was built from.
type Trajectory struct {
	Name         string
	Rs, Phis, Zs []float64
	Points       []Vec
}

// Len returns the number of samples in the trajectory.
func (t *Trajectory) Len() int { return len(t.Points) }

// First returns the starting point of the trajectory.
func (t *Trajectory) First() Vec { return t.Points[0] }

// Last returns the final point of the trajectory.
func (t *Trajectory) Last() Vec { return t.Points[len(t.Points)-1] }

// Sample evaluates a TrajectorySpec for a hole with parameters p. Points are
// x = r cos(phi), y = r sin(phi), z = h.
func Sample(spec TrajectorySpec, p Params) (*Trajectory, error) {
	if err := p.Check(); err != nil {
		return nil, err
	} else if err := spec.Check(); err != nil {
		return nil, err
	}
	return sample(&spec, p), nil
}

func sample(spec *TrajectorySpec, p Params) *Trajectory {
	n := spec.Samples
	t := &Trajectory{
		Name:   spec.Name,
		Rs:     Linspace(spec.RStart, spec.end(p), n),
		Phis:   Linspace(spec.PhiStart, spec.PhiEnd, n),
		Zs:     Linspace(spec.ZStart, spec.ZEnd, n),
		Points: make([]Vec, n),
	}

	for i := range t.Points {
		sin, cos := math.Sincos(t.Phis[i])
		t.Points[i] = Vec{t.Rs[i] * cos, t.Rs[i] * sin, t.Zs[i]}
	}
	return t
}

// PenroseSpecs are the three paths of a Penrose split. Escaping and
// Infalling must both start where Inbound ends.
type PenroseSpecs struct {
	Inbound, Escaping, Infalling TrajectorySpec
}

// DefaultPenroseSpecs returns the reference scenario: a particle spirals in
// through the equatorial plane from r = 4 to r = 1.6, where it splits. One
// fragment is kicked out of the plane and escapes to r = 4.5, the other
// spirals quickly down onto the horizon. The infalling path only moves
// inward when r+ < 1.6, which for M = 1 means a > 0.8.
func DefaultPenroseSpecs() PenroseSpecs {
	return PenroseSpecs{
		Inbound: TrajectorySpec{
			Name:   InboundName,
			RStart: 4.0, REnd: 1.6,
			PhiStart: 0, PhiEnd: 2.5 * math.Pi,
			ZStart: 0, ZEnd: 0,
			Samples: 100,
		},
		Escaping: TrajectorySpec{
			Name:   EscapingName,
			RStart: 1.6, REnd: 4.5,
			PhiStart: 2.5 * math.Pi, PhiEnd: 3.2 * math.Pi,
			ZStart: 0, ZEnd: 0.8,
			Samples: 80,
		},
		Infalling: TrajectorySpec{
			Name:   InfallingName,
			RStart: 1.6,
			PhiStart: 2.5 * math.Pi, PhiEnd: 4.0 * math.Pi,
			ZStart: 0, ZEnd: -0.2,
			Samples:       40,
			EndsAtHorizon: true,
		},
	}
}

// checkDirection returns an error unless the radius of spec strictly
// increases (outward) or strictly decreases (!outward) for a hole with
// parameters p.
func (spec *TrajectorySpec) checkDirection(p Params, outward bool) error {
	start, end := spec.RStart, spec.end(p)
	if outward && end > start || !outward && end < start {
		return nil
	}

	dir := "inward"
	if outward {
		dir = "outward"
	}
	return fmt.Errorf(
		"Trajectory '%s' must move %s, but runs from r = %g to r = %g "+
			"(M = %g, a = %g, r+ = %g).",
		spec.Name, dir, start, end, p.Mass, p.Spin, p.rPlus(),
	)
}

// Check returns an error if any of the specs is invalid, if a path moves in
// the wrong radial direction, or if the two fragments do not start at the
// split. Inbound and Infalling move inward and Escaping moves outward.
func (specs *PenroseSpecs) Check(p Params) error {
	for _, spec := range []*TrajectorySpec{
		&specs.Inbound, &specs.Escaping, &specs.Infalling,
	} {
		if err := spec.Check(); err != nil {
			return err
		}
	}

	in := &specs.Inbound
	if err := in.checkDirection(p, false); err != nil {
		return err
	} else if err := specs.Escaping.checkDirection(p, true); err != nil {
		return err
	} else if err := specs.Infalling.checkDirection(p, false); err != nil {
		return err
	}

	for _, frag := range []*TrajectorySpec{&specs.Escaping, &specs.Infalling} {
		if frag.RStart != in.end(p) || frag.PhiStart != in.PhiEnd ||
			frag.ZStart != in.ZEnd {
			return fmt.Errorf(
				"Trajectory '%s' starts at (r, phi, z) = (%g, %g, %g), but "+
					"'%s' ends at (%g, %g, %g).",
				frag.Name, frag.RStart, frag.PhiStart, frag.ZStart,
				in.Name, in.end(p), in.PhiEnd, in.ZEnd,
			)
		}
	}

	return nil
}

// PenroseProcess holds the sampled paths of a Penrose split. Split is the
// literal final sample of Inbound.
type PenroseProcess struct {
	Inbound, Escaping, Infalling *Trajectory
	Split                        Vec
}

// Penrose samples all three paths of specs for a hole with parameters p.
func Penrose(p Params, specs PenroseSpecs) (*PenroseProcess, error) {
	if err := p.Check(); err != nil {
		return nil, err
	} else if err := specs.Check(p); err != nil {
		return nil, err
	}
	return penrose(p, &specs), nil
}

func penrose(p Params, specs *PenroseSpecs) *PenroseProcess {
	pp := &PenroseProcess{
		Inbound:   sample(&specs.Inbound, p),
		Escaping:  sample(&specs.Escaping, p),
		Infalling: sample(&specs.Infalling, p),
	}
	pp.Split = pp.Inbound.Last()
	return pp
}
