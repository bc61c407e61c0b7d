package render

import (
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/phil-mansfield/penrose/kerr"
)

// PNGRenderer rasterizes layers in software and writes them to Output as a
// PNG. Solid layers are painted far-to-near.
type PNGRenderer struct {
	Camera        *Camera
	Output        string
	Width, Height int
}

func (r *PNGRenderer) Render(l *Layers) error {
	dc, err := r.Draw(l)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(r.Output)
}

// Draw rasterizes l into a new context. The caller must Close it.
func (r *PNGRenderer) Draw(l *Layers) (*gg.Context, error) {
	dc := gg.NewContext(r.Width, r.Height)
	bg := l.Background
	dc.ClearWithColor(gg.RGB(bg.R, bg.G, bg.B))

	vp := newViewport(r.Camera, r.Width, r.Height, l.Limit)
	for i := range l.Items {
		layer := &l.Items[i]
		var err error
		switch layer.Style {
		case Wireframe, Line:
			err = vp.strokeLines(dc, layer)
		case Dashed:
			dc.SetDash(6, 4)
			err = vp.strokeLines(dc, layer)
			dc.SetDash()
		case Solid:
			err = vp.fillCells(dc, layer)
		case Marker:
			err = vp.star(dc, layer)
		}
		if err != nil {
			dc.Close()
			return nil, err
		}
	}

	return dc, nil
}

// viewport maps camera coordinates onto pixels. The visible cube's
// half-width fills half of the shorter image side.
type viewport struct {
	cam           *Camera
	cx, cy, scale float64
}

func newViewport(cam *Camera, width, height int, limit float64) *viewport {
	side := math.Min(float64(width), float64(height))
	return &viewport{
		cam: cam,
		cx:  float64(width) / 2, cy: float64(height) / 2,
		scale: side / (2 * limit),
	}
}

// pixel returns the pixel position and depth of v.
func (vp *viewport) pixel(v kerr.Vec) (px, py, depth float64) {
	x, y, d := vp.cam.Project(v)
	return vp.cx + x*vp.scale, vp.cy - y*vp.scale, d
}

func setColor(dc *gg.Context, c Color, alpha float64) {
	dc.SetRGBA(c.R, c.G, c.B, alpha)
}

func (vp *viewport) strokeLines(dc *gg.Context, layer *Layer) error {
	setColor(dc, layer.Color, layer.Alpha)
	dc.SetLineWidth(layer.Width)
	for _, line := range layer.Lines {
		if len(line) < 2 {
			continue
		}
		for i, v := range line {
			px, py, _ := vp.pixel(v)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

type projectedCell struct {
	xs, ys [4]float64
	depth  float64
}

func (vp *viewport) fillCells(dc *gg.Context, layer *Layer) error {
	cells := make([]projectedCell, len(layer.Cells))
	for i, cell := range layer.Cells {
		pc := &cells[i]
		for k, v := range cell {
			var d float64
			pc.xs[k], pc.ys[k], d = vp.pixel(v)
			pc.depth += d / 4
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].depth < cells[j].depth
	})

	dc.SetLineWidth(layer.Width)
	for i := range cells {
		pc := &cells[i]
		dc.MoveTo(pc.xs[0], pc.ys[0])
		for k := 1; k < 4; k++ {
			dc.LineTo(pc.xs[k], pc.ys[k])
		}
		dc.ClosePath()

		setColor(dc, layer.Color, layer.Alpha)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		setColor(dc, layer.Edge, layer.Alpha)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// star fills a five-pointed star centered on the layer's point.
func (vp *viewport) star(dc *gg.Context, layer *Layer) error {
	px, py, _ := vp.pixel(layer.Point)
	outer, inner := layer.Size, layer.Size*0.4
	for k := 0; k < 10; k++ {
		r := outer
		if k%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(k)*math.Pi/5
		x, y := px+r*math.Cos(angle), py+r*math.Sin(angle)
		if k == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	setColor(dc, layer.Color, layer.Alpha)
	return dc.Fill()
}
