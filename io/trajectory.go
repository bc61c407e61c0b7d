package io

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/penrose/kerr"
)

// Columns of a trajectory table. Azimuths are in units of pi.
const (
	rStartCol = iota
	rEndCol
	phiStartCol
	phiEndCol
	zStartCol
	zEndCol
	samplesCol
	trajectoryCols
)

// ReadTrajectoryTable reads the three Penrose-process paths from a
// whitespace-separated table. The rows are, in order, the inbound, escaping
// and infalling paths. A non-positive end radius means the path ends on the
// outer horizon.
func ReadTrajectoryTable(fname string) (kerr.PenroseSpecs, error) {
	colIdxs := make([]int, trajectoryCols)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return kerr.PenroseSpecs{}, err
	}

	specs, err := PenroseSpecsFromColumns(cols)
	if err != nil {
		return kerr.PenroseSpecs{}, fmt.Errorf("%s: %w", fname, err)
	}
	return specs, nil
}

// PenroseSpecsFromColumns converts the columns of a trajectory table into
// PenroseSpecs.
func PenroseSpecsFromColumns(cols [][]float64) (kerr.PenroseSpecs, error) {
	if len(cols) != trajectoryCols {
		return kerr.PenroseSpecs{}, fmt.Errorf(
			"Trajectory table has %d columns, but needs %d.",
			len(cols), trajectoryCols,
		)
	}
	for i := range cols {
		if len(cols[i]) != 3 {
			return kerr.PenroseSpecs{}, fmt.Errorf(
				"Trajectory table has %d rows, but needs exactly 3.",
				len(cols[i]),
			)
		}
	}

	names := []string{kerr.InboundName, kerr.EscapingName, kerr.InfallingName}
	specs := make([]kerr.TrajectorySpec, 3)
	for row := range specs {
		samples := cols[samplesCol][row]
		if samples != math.Trunc(samples) {
			return kerr.PenroseSpecs{}, fmt.Errorf(
				"Sample count of '%s' must be an integer, but is %g.",
				names[row], samples,
			)
		}

		specs[row] = kerr.TrajectorySpec{
			Name:     names[row],
			RStart:   cols[rStartCol][row],
			REnd:     cols[rEndCol][row],
			PhiStart: cols[phiStartCol][row] * math.Pi,
			PhiEnd:   cols[phiEndCol][row] * math.Pi,
			ZStart:   cols[zStartCol][row],
			ZEnd:     cols[zEndCol][row],
			Samples:  int(samples),
		}
		if specs[row].REnd <= 0 {
			specs[row].REnd = 0
			specs[row].EndsAtHorizon = true
		}
	}

	return kerr.PenroseSpecs{
		Inbound: specs[0], Escaping: specs[1], Infalling: specs[2],
	}, nil
}
