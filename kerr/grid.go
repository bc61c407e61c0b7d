package kerr

import (
	"fmt"
	"math"
)

// Vec is a three dimensional Cartesian vector.
type Vec [3]float64

// Norm2 returns the squared length of v.
func (v Vec) Norm2() float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// Linspace returns n evenly spaced values over the closed interval
// [start, stop]. The first value is start and the last value is stop,
// exactly, so that adjacent sequences can share an endpoint bit-for-bit.
func Linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 0 {
		return xs
	} else if n == 1 {
		xs[0] = start
		return xs
	}

	step := (stop - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return xs
}

// AngularGrid is the pair of angle sequences shared by both surfaces. The
// mesh it describes has one row per azimuth and one column per polar angle.
type AngularGrid struct {
	Theta, Phi []float64

	sinTheta, cosTheta []float64
	sinPhi, cosPhi     []float64
}

// NewAngularGrid creates a grid with n polar angles spanning [0, pi] and n
// azimuths spanning [0, 2 pi].
func NewAngularGrid(n int) (*AngularGrid, error) {
	if n < 2 {
		return nil, fmt.Errorf(
			"Angular grid resolution must be at least 2, but is %d.", n,
		)
	}

	g := &AngularGrid{
		Theta: Linspace(0, math.Pi, n),
		Phi:   Linspace(0, 2*math.Pi, n),
	}

	g.sinTheta, g.cosTheta = make([]float64, n), make([]float64, n)
	g.sinPhi, g.cosPhi = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		g.sinTheta[i], g.cosTheta[i] = math.Sincos(g.Theta[i])
		g.sinPhi[i], g.cosPhi[i] = math.Sincos(g.Phi[i])
	}

	return g, nil
}

// N returns the number of samples along each axis of the grid.
func (g *AngularGrid) N() int { return len(g.Theta) }

// Surface is an N x N grid of points laid over an AngularGrid. The point in
// row i, column j sits at (Theta[j], Phi[i]).
type Surface struct {
	N      int
	Points []Vec
	Radii  []float64
	Grid   *AngularGrid
}

// Len returns the number of points in the surface.
func (s *Surface) Len() int { return len(s.Points) }

// At returns the point at (Theta[j], Phi[i]).
func (s *Surface) At(i, j int) Vec { return s.Points[i*s.N+j] }

// RadiusAt returns the radius used for the point at (Theta[j], Phi[i]).
func (s *Surface) RadiusAt(i, j int) float64 { return s.Radii[i*s.N+j] }

// Row returns the points at constant azimuth Phi[i], ordered by polar angle.
func (s *Surface) Row(i int) []Vec { return s.Points[i*s.N : (i+1)*s.N] }

// Column returns the points at constant polar angle Theta[j], ordered by
// azimuth.
func (s *Surface) Column(j int) []Vec {
	col := make([]Vec, s.N)
	for i := range col {
		col[i] = s.Points[i*s.N+j]
	}
	return col
}

// Horizon generates the outer event horizon. In Boyer-Lindquist coordinates
// it is a coordinate sphere of radius r_plus.
func Horizon(p Params, g *AngularGrid) (*Surface, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	return horizon(p, g), nil
}

// Ergosphere generates the static limit. It touches the horizon at the poles
// and reaches 2M on the equator.
func Ergosphere(p Params, g *AngularGrid) (*Surface, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	return ergosphere(p, g), nil
}

func horizon(p Params, g *AngularGrid) *Surface {
	rPlus := p.rPlus()
	return newSurface(g, func(int) float64 { return rPlus })
}

func ergosphere(p Params, g *AngularGrid) *Surface {
	return newSurface(g, func(j int) float64 {
		return p.rErgo(g.cosTheta[j])
	})
}

// newSurface maps every mesh cell to Cartesian coordinates. radius takes the
// column (polar angle) index.
func newSurface(g *AngularGrid, radius func(j int) float64) *Surface {
	n := g.N()
	s := &Surface{
		N:      n,
		Points: make([]Vec, n*n),
		Radii:  make([]float64, n*n),
		Grid:   g,
	}

	rs := make([]float64, n)
	for j := range rs {
		rs[j] = radius(j)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r, k := rs[j], i*n+j
			s.Radii[k] = r
			s.Points[k] = Vec{
				r * g.sinTheta[j] * g.cosPhi[i],
				r * g.sinTheta[j] * g.sinPhi[i],
				r * g.cosTheta[j],
			}
		}
	}

	return s
}
