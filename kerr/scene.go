package kerr

// Scene is everything needed to draw a Penrose split around a Kerr hole. It
// is not modified after Generate returns.
type Scene struct {
	Params Params
	RPlus  float64
	Grid   *AngularGrid

	Horizon, Ergosphere *Surface
	Penrose             *PenroseProcess
}

// Generate validates p, the grid resolution and specs, and then computes the
// horizon, the ergosphere and the Penrose paths. If any input is invalid no
// geometry is computed.
func Generate(p Params, resolution int, specs PenroseSpecs) (*Scene, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	g, err := NewAngularGrid(resolution)
	if err != nil {
		return nil, err
	}
	if err := specs.Check(p); err != nil {
		return nil, err
	}

	s := &Scene{Params: p, RPlus: p.rPlus(), Grid: g}
	s.Horizon = horizon(p, g)
	s.Ergosphere = ergosphere(p, g)
	s.Penrose = penrose(p, &specs)

	return s, nil
}
