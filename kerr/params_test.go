package kerr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEps = 1e-12

func TestCheck(t *testing.T) {
	table := []struct {
		m, a float64
		ok   bool
	}{
		{1, 0.99, true},
		{1, 0, true},
		{1, 1, true},
		{2.5, 1.3, true},
		{1, 1.5, false},
		{1, -0.1, false},
		{0, 0, false},
		{-1, 0.5, false},
		{math.NaN(), 0.5, false},
		{1, math.NaN(), false},
		{math.Inf(1), 0.5, false},
	}

	for i, test := range table {
		err := Params{test.m, test.a}.Check()
		if test.ok && err != nil {
			t.Errorf("%d) M = %g, a = %g gave error %s", i+1, test.m, test.a, err)
		} else if !test.ok {
			var de *DomainError
			if !errors.As(err, &de) {
				t.Errorf(
					"%d) M = %g, a = %g gave %v instead of a DomainError",
					i+1, test.m, test.a, err,
				)
			}
		}
	}
}

func TestRPlusBounds(t *testing.T) {
	for _, m := range []float64{0.1, 1, 3.7, 100} {
		for _, frac := range []float64{0, 0.25, 0.5, 0.9, 0.99, 0.999999, 1} {
			r, err := Params{m, frac * m}.RPlus()
			require.NoError(t, err)
			assert.False(t, math.IsNaN(r))
			assert.GreaterOrEqual(t, r, m, "M = %g, a/M = %g", m, frac)
			assert.LessOrEqual(t, r, 2*m, "M = %g, a/M = %g", m, frac)
		}
	}
}

func TestRPlusReference(t *testing.T) {
	r, err := Params{1.0, 0.99}.RPlus()
	require.NoError(t, err)
	assert.InDelta(t, 1.0+math.Sqrt(0.0199), r, testEps)
	assert.InDelta(t, 1.1410, r, 5e-5)
}

func TestRPlusExtremal(t *testing.T) {
	r, err := Params{1.0, 1.0}.RPlus()
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	r, err = Params{0, 0}.RPlus()
	assert.Error(t, err)
	assert.Equal(t, 0.0, r)
}

func TestRErgo(t *testing.T) {
	p := Params{1.0, 0.99}
	rPlus, err := p.RPlus()
	require.NoError(t, err)

	pole, err := p.RErgo(0)
	require.NoError(t, err)
	assert.Equal(t, rPlus, pole)

	south, err := p.RErgo(math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, rPlus, south, testEps)

	eq, err := p.RErgo(math.Pi / 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, eq)

	_, err = Params{1.0, 1.5}.RErgo(math.Pi / 2)
	var de *DomainError
	assert.True(t, errors.As(err, &de))
}

func TestRErgoEnclosesHorizon(t *testing.T) {
	for _, p := range []Params{{1, 0.99}, {1, 1}, {2, 0.3}, {0.5, 0.25}} {
		rPlus, err := p.RPlus()
		require.NoError(t, err)

		eq, err := p.RErgo(math.Pi / 2)
		require.NoError(t, err)
		assert.InDelta(t, 2*p.Mass, eq, testEps)

		thetas := Linspace(0, math.Pi, 101)
		for _, theta := range thetas[1 : len(thetas)-1] {
			r, err := p.RErgo(theta)
			require.NoError(t, err)
			assert.Greater(t, r, rPlus, "%v at theta = %g", p, theta)
		}
	}
}

func TestDomainErrorMessage(t *testing.T) {
	err := Params{1.0, 1.5}.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "M = 1, a = 1.5")
	assert.Contains(t, err.Error(), "spin exceeds mass")
}
