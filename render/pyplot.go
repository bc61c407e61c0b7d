/*package render draws a composed Kerr scene. Compose turns a kerr.Scene
into styled Layers, and a Renderer draws them through a Camera in a single
blocking call.
*/
package render

import (
	"fmt"
	"os"
	"path/filepath"

	plt "github.com/phil-mansfield/pyplot"
)

// Renderer draws fully computed layers. Render does not return until the
// drawing is finished, which for interactive backends means the window has
// been closed.
type Renderer interface {
	Render(l *Layers) error
}

// PyplotRenderer draws through matplotlib. If Output is empty the figure is
// shown in an interactive window, otherwise it is saved to Output.
type PyplotRenderer struct {
	Camera *Camera
	Output string
}

// Render draws l. The pyplot bridge reports no errors of its own: a failed
// matplotlib script is not seen here. Render only returns an error when the
// figure cannot be written because the directory of Output does not exist.
func (r *PyplotRenderer) Render(l *Layers) error {
	if r.Output != "" {
		dir := filepath.Dir(r.Output)
		if info, err := os.Stat(dir); err != nil {
			return err
		} else if !info.IsDir() {
			return fmt.Errorf("'%s' is not a directory.", dir)
		}
	}

	plt.Reset()
	plt.Figure(plt.FigSize(14, 10))

	for i := range l.Items {
		r.plotLayer(&l.Items[i])
	}

	plt.Title(l.Title+" | "+l.Subtitle, plt.FontSize(16))
	plt.XLim(-l.Limit, +l.Limit)
	plt.YLim(-l.Limit, +l.Limit)

	if r.Output == "" {
		plt.Show()
	} else {
		plt.SaveFig(r.Output)
		plt.Execute()
	}
	return nil
}

func (r *PyplotRenderer) plotLayer(layer *Layer) {
	c := plt.C(onWhite(layer.Color).Name)

	switch layer.Style {
	case Wireframe, Line:
		for _, line := range layer.Lines {
			xs, ys := r.Camera.ProjectLine(line)
			plt.Plot(xs, ys, c, plt.LW(layer.Width))
		}
	case Solid:
		edge := plt.C(onWhite(layer.Edge).Name)
		for _, line := range layer.Lines {
			xs, ys := r.Camera.ProjectLine(line)
			plt.Plot(xs, ys, edge, plt.LW(layer.Width))
		}
	case Dashed:
		for _, line := range layer.Lines {
			xs, ys := r.Camera.ProjectLine(line)
			plt.Plot(xs, ys, "--", c, plt.LW(layer.Width))
		}
	case Marker:
		x, y, _ := r.Camera.Project(layer.Point)
		plt.Plot([]float64{x}, []float64{y}, "*", c)
	}
}

// onWhite swaps out colors which vanish on matplotlib's default white canvas.
func onWhite(c Color) Color {
	if c == White {
		return Black
	}
	return c
}
