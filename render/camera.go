package render

import (
	"math"

	"github.com/phil-mansfield/penrose/kerr"
)

// Matrix is a row-major 3 x 3 matrix.
type Matrix [9]float64

// RotationX creates a matrix which rotates vectors by angle radians around
// the x axis.
func RotationX(angle float64) *Matrix {
	sin, cos := math.Sincos(angle)
	return &Matrix{
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	}
}

// RotationZ creates a matrix which rotates vectors by angle radians around
// the z axis.
func RotationZ(angle float64) *Matrix {
	sin, cos := math.Sincos(angle)
	return &Matrix{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Mul returns the product m * n.
func (m *Matrix) Mul(n *Matrix) *Matrix {
	out := &Matrix{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[3*i+k] * n[3*k+j]
			}
			out[3*i+j] = sum
		}
	}
	return out
}

// Rotate returns v multiplied by m.
func (m *Matrix) Rotate(v kerr.Vec) kerr.Vec {
	return kerr.Vec{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Camera is an orthographic view of the scene. Elevation and Azimuth are in
// degrees and place the eye the same way matplotlib's 3D axes do: the eye
// looks at the origin from the direction
// (cos(el) cos(az), cos(el) sin(az), sin(el)).
type Camera struct {
	Elevation, Azimuth float64
	view               *Matrix
}

// NewCamera creates a camera with the given viewing angles in degrees.
func NewCamera(elevation, azimuth float64) *Camera {
	el := elevation * math.Pi / 180
	az := azimuth * math.Pi / 180

	// Spin the eye's azimuth onto -y, then tip the eye up onto +z.
	view := RotationX(el - math.Pi/2).Mul(RotationZ(-(az + math.Pi/2)))
	return &Camera{Elevation: elevation, Azimuth: azimuth, view: view}
}

// Project returns the screen coordinates of v and its depth. Larger depths
// are closer to the eye.
func (c *Camera) Project(v kerr.Vec) (x, y, depth float64) {
	u := c.view.Rotate(v)
	return u[0], u[1], u[2]
}

// ProjectLine projects every point of a polyline.
func (c *Camera) ProjectLine(line []kerr.Vec) (xs, ys []float64) {
	xs, ys = make([]float64, len(line)), make([]float64, len(line))
	for i, v := range line {
		xs[i], ys[i], _ = c.Project(v)
	}
	return xs, ys
}
