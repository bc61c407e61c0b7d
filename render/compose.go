package render

import (
	"fmt"

	"github.com/phil-mansfield/penrose/kerr"
)

// Color is a named RGB color. Name is understood by matplotlib.
type Color struct {
	Name    string
	R, G, B float64
}

var (
	Black   = Color{"black", 0, 0, 0}
	White   = Color{"white", 1, 1, 1}
	Cyan    = Color{"cyan", 0, 1, 1}
	DarkRed = Color{"darkred", 0.545, 0, 0}
	Yellow  = Color{"yellow", 1, 1, 0}
	Lime    = Color{"lime", 0, 1, 0}
	Red     = Color{"red", 1, 0, 0}
)

type Style int

const (
	Wireframe Style = iota
	Solid
	Line
	Dashed
	Marker
)

func (s Style) String() string {
	switch s {
	case Wireframe:
		return "Wireframe"
	case Solid:
		return "Solid"
	case Line:
		return "Line"
	case Dashed:
		return "Dashed"
	case Marker:
		return "Marker"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Layer is one styled element of the scene.
type Layer struct {
	Label string
	Style Style
	// Color is the line color, the face color of a Solid layer or the fill
	// of a Marker. Edge is only used by Solid layers.
	Color, Edge  Color
	Alpha, Width float64

	// Lines holds polylines for every style except Marker. For Solid layers
	// they trace the cell edges.
	Lines [][]kerr.Vec
	// Cells are the quadrilaterals of a Solid layer.
	Cells [][4]kerr.Vec
	// Point and Size describe a Marker. Size is a radius in pixels.
	Point kerr.Vec
	Size  float64
}

// Layers are everything a Renderer draws, in drawing order.
type Layers struct {
	Title, Subtitle string
	// Limit is the half-width of the visible cube.
	Limit      float64
	Background Color
	Items      []Layer
}

// WireframeStride is the row and column stride of the ergosphere wireframe.
const WireframeStride = 4

// Compose styles a scene for drawing. The ergosphere is a faint cyan
// wireframe, the horizon a solid black surface with dark red edges, and the
// three paths are colored by the sign of their energy at infinity.
func Compose(s *kerr.Scene, limit float64) *Layers {
	pp := s.Penrose
	return &Layers{
		Title:      "General Relativity: Penrose Process Simulation",
		Subtitle:   fmt.Sprintf("Kerr Spin Parameter a=%g", s.Params.Spin),
		Limit:      limit,
		Background: Black,
		Items: []Layer{
			{
				Label: "Ergosphere (Static Limit)", Style: Wireframe,
				Color: Cyan, Alpha: 0.15, Width: 0.5,
				Lines: gridLines(s.Ergosphere, WireframeStride),
			},
			{
				Style: Solid,
				Color: Black, Edge: DarkRed, Alpha: 0.95, Width: 0.5,
				Lines: gridLines(s.Horizon, 1),
				Cells: cells(s.Horizon),
			},
			{
				Label: "Inbound (E > 0)", Style: Line,
				Color: Yellow, Alpha: 1, Width: 2.5,
				Lines: [][]kerr.Vec{pp.Inbound.Points},
			},
			{
				Label: "Escaping (E_out > E_in)", Style: Line,
				Color: Lime, Alpha: 1, Width: 3,
				Lines: [][]kerr.Vec{pp.Escaping.Points},
			},
			{
				Label: "Negative E (Consumed)", Style: Dashed,
				Color: Red, Alpha: 1, Width: 1.5,
				Lines: [][]kerr.Vec{pp.Infalling.Points},
			},
			{
				Label: "Particle Split Event", Style: Marker,
				Color: White, Alpha: 1, Point: pp.Split, Size: 10,
			},
		},
	}
}

// strided returns 0, stride, 2*stride, ... below n, always ending on n-1.
func strided(n, stride int) []int {
	idxs := []int{}
	for i := 0; i < n; i += stride {
		idxs = append(idxs, i)
	}
	if len(idxs) > 0 && idxs[len(idxs)-1] != n-1 {
		idxs = append(idxs, n-1)
	}
	return idxs
}

// gridLines returns the constant-azimuth and constant-polar-angle lines of a
// surface.
func gridLines(s *kerr.Surface, stride int) [][]kerr.Vec {
	lines := [][]kerr.Vec{}
	for _, i := range strided(s.N, stride) {
		lines = append(lines, s.Row(i))
	}
	for _, j := range strided(s.N, stride) {
		lines = append(lines, s.Column(j))
	}
	return lines
}

func cells(s *kerr.Surface) [][4]kerr.Vec {
	n := s.N
	out := make([][4]kerr.Vec, 0, (n-1)*(n-1))
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			out = append(out, [4]kerr.Vec{
				s.At(i, j), s.At(i, j+1), s.At(i+1, j+1), s.At(i+1, j),
			})
		}
	}
	return out
}
