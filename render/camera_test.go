package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/penrose/kerr"
)

const testEps = 1e-12

func vecEpsEq(v1, v2 kerr.Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v1[i]-v2[i]) > eps {
			return false
		}
	}
	return true
}

func TestRotate(t *testing.T) {
	table := []struct {
		m          *Matrix
		start, end kerr.Vec
	}{
		{RotationZ(0), kerr.Vec{1, 2, 3}, kerr.Vec{1, 2, 3}},
		{RotationZ(math.Pi / 2), kerr.Vec{1, 0, 0}, kerr.Vec{0, 1, 0}},
		{RotationX(math.Pi / 2), kerr.Vec{0, 1, 0}, kerr.Vec{0, 0, 1}},
		{RotationX(math.Pi / 2), kerr.Vec{1, 0, 0}, kerr.Vec{1, 0, 0}},
		{RotationX(math.Pi).Mul(RotationZ(math.Pi)), kerr.Vec{1, 1, 1}, kerr.Vec{-1, 1, -1}},
	}

	for i, test := range table {
		v := test.m.Rotate(test.start)
		if !vecEpsEq(v, test.end, testEps) {
			t.Errorf("%d) %v rotated to %v instead of %v", i+1, test.start, v, test.end)
		}
	}
}

func TestCameraAxes(t *testing.T) {
	// Looking along +y from -y with no elevation: x is right, z is up.
	c := NewCamera(0, -90)

	x, y, d := c.Project(kerr.Vec{1, 0, 0})
	assert.True(t, vecEpsEq(kerr.Vec{x, y, d}, kerr.Vec{1, 0, 0}, testEps))
	x, y, d = c.Project(kerr.Vec{0, 0, 1})
	assert.True(t, vecEpsEq(kerr.Vec{x, y, d}, kerr.Vec{0, 1, 0}, testEps))
	x, y, d = c.Project(kerr.Vec{0, -1, 0})
	assert.True(t, vecEpsEq(kerr.Vec{x, y, d}, kerr.Vec{0, 0, 1}, testEps))

	// Straight down from above.
	c = NewCamera(90, -90)
	_, _, d = c.Project(kerr.Vec{0, 0, 1})
	assert.InDelta(t, 1, d, testEps)
}

func TestCameraOrthonormal(t *testing.T) {
	for _, angles := range [][2]float64{{30, -60}, {0, 0}, {-45, 170}, {89, 12}} {
		c := NewCamera(angles[0], angles[1])
		el, az := angles[0]*math.Pi/180, angles[1]*math.Pi/180

		eye := kerr.Vec{math.Cos(el) * math.Cos(az), math.Cos(el) * math.Sin(az), math.Sin(el)}
		x, y, d := c.Project(eye)
		assert.True(t, vecEpsEq(kerr.Vec{x, y, d}, kerr.Vec{0, 0, 1}, 1e-12), "%v", angles)

		// Lengths are preserved.
		for _, v := range []kerr.Vec{{1, 2, 3}, {-0.5, 4, 0}, {0, 0, -2}} {
			x, y, d := c.Project(v)
			assert.InDelta(t, v.Norm2(), kerr.Vec{x, y, d}.Norm2(), 1e-10)
		}

		// The z axis never points down the screen.
		_, y, _ = c.Project(kerr.Vec{0, 0, 1})
		assert.GreaterOrEqual(t, y, -testEps)
	}
}

func TestProjectLine(t *testing.T) {
	c := NewCamera(30, -60)
	line := []kerr.Vec{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	xs, ys := c.ProjectLine(line)
	assert.Len(t, xs, 3)
	assert.Len(t, ys, 3)
	for i, v := range line {
		x, y, _ := c.Project(v)
		assert.Equal(t, x, xs[i])
		assert.Equal(t, y, ys[i])
	}
}
