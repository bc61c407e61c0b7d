package io

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/penrose/kerr"
)

const (
	ExamplePenroseFile = `[Kerr]

#######################
# Required Parameters #
#######################

# Mass of the hole, M, in geometrized units. Must be positive.
Mass = 1.0

# Spin parameter, a = J/M. Must satisfy 0 <= Spin <= Mass. Spin = Mass is
# the extremal hole, where the horizon and the static limit meet at r = M on
# the poles.
Spin = 0.99

# Number of samples in both the polar and azimuthal directions of the
# horizon and ergosphere meshes. Must be at least 2.
Resolution = 80

#######################
# Optional Parameters #
#######################

# Replaces the three reference trajectories with the ones listed in a
# whitespace-separated table. Run with -ExampleConfig=Trajectories to see
# the format.
# TrajectoryFile = path/to/trajectories.txt

[Render]

# Backend must be one of [ pyplot | png ]. The pyplot backend opens an
# interactive window unless Output is set, in which case the figure is saved
# to Output. The png backend always writes to Output.
Backend = pyplot
# Output = penrose.png

# Image size in pixels for the png backend. pyplot figures are 14 x 10 inches.
# Width = 1400
# Height = 1000

# Viewing angles in degrees.
# Elevation = 30
# Azimuth = -60

# Half-width of the visible cube.
# Limit = 3.0

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleTrajectoryFile = `4.0   1.6   0.0   2.5   0.0   0.0   100
1.6   4.5   2.5   3.2   0.0   0.8   80
1.6   0.0   2.5   4.0   0.0  -0.2   40`
)

// Backend names accepted by RenderConfig.Backend.
const (
	PyplotBackend = "pyplot"
	PNGBackend    = "png"
)

type KerrConfig struct {
	// Required
	Mass       float64 `env:"PENROSE_MASS"`
	Spin       float64 `env:"PENROSE_SPIN"`
	Resolution int     `env:"PENROSE_RESOLUTION"`

	// Optional
	TrajectoryFile string `env:"PENROSE_TRAJECTORY_FILE"`
}

func (con *KerrConfig) ValidMass() bool {
	return con.Mass > 0
}
func (con *KerrConfig) ValidSpin() bool {
	return con.Spin >= 0 && con.Spin <= con.Mass
}
func (con *KerrConfig) ValidResolution() bool {
	return con.Resolution >= 2
}
func (con *KerrConfig) ValidTrajectoryFile() bool {
	return con.TrajectoryFile != ""
}

// Params returns the physical parameters described by con.
func (con *KerrConfig) Params() kerr.Params {
	return kerr.Params{Mass: con.Mass, Spin: con.Spin}
}

type RenderConfig struct {
	// Required
	Backend string `env:"PENROSE_BACKEND"`

	// Optional
	Output                    string `env:"PENROSE_OUTPUT"`
	Width, Height             int
	Elevation, Azimuth, Limit float64
	LogFile, ProfileFile      string
}

func (con *RenderConfig) ValidBackend() bool {
	b := strings.ToLower(con.Backend)
	return b == PyplotBackend || b == PNGBackend
}
func (con *RenderConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *RenderConfig) ValidSize() bool {
	return con.Width > 0 && con.Height > 0
}
func (con *RenderConfig) ValidLimit() bool {
	return con.Limit > 0
}
func (con *RenderConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *RenderConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// Interactive returns true if the render should open a window rather than
// write a file.
func (con *RenderConfig) Interactive() bool {
	return strings.ToLower(con.Backend) == PyplotBackend && !con.ValidOutput()
}

type PenroseWrapper struct {
	Kerr   KerrConfig
	Render RenderConfig
}

// DefaultPenroseWrapper returns the reference scenario: a near-extremal hole
// drawn through pyplot.
func DefaultPenroseWrapper() *PenroseWrapper {
	kc := KerrConfig{Mass: 1.0, Spin: 0.99, Resolution: 80}
	rc := RenderConfig{
		Backend: PyplotBackend,
		Width:   1400, Height: 1000,
		Elevation: 30, Azimuth: -60,
		Limit: 3.0,
	}
	return &PenroseWrapper{kc, rc}
}

// ReadConfig reads the config file fname over the defaults and then applies
// environment overrides. An empty fname skips the file.
func ReadConfig(fname string) (*PenroseWrapper, error) {
	wrap := DefaultPenroseWrapper()
	if fname != "" {
		if err := gcfg.ReadFileInto(wrap, fname); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnv(wrap); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ReadConfigString is ReadConfig for config text held in memory.
func ReadConfigString(text string) (*PenroseWrapper, error) {
	wrap := DefaultPenroseWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := ApplyEnv(wrap); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ApplyEnv overwrites fields of wrap with any PENROSE_* environment
// variables that are set.
func ApplyEnv(wrap *PenroseWrapper) error {
	if err := env.Parse(&wrap.Kerr); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(&wrap.Render); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// CheckInit returns a descriptive error for the first invalid value in wrap
// and normalizes the backend name.
func (wrap *PenroseWrapper) CheckInit() error {
	kc, rc := &wrap.Kerr, &wrap.Render

	// Mass and Spin are checked by kerr so that callers see a DomainError.
	if err := kc.Params().Check(); err != nil {
		return fmt.Errorf("Invalid [Kerr] section: %w", err)
	} else if !kc.ValidResolution() {
		return fmt.Errorf(
			"Resolution must be at least 2, but is %d.", kc.Resolution,
		)
	}

	if !rc.ValidBackend() {
		return fmt.Errorf(
			"Unrecognized 'Backend' value '%s'. Only recognized values are "+
				"'%s' and '%s'.", rc.Backend, PyplotBackend, PNGBackend,
		)
	}
	rc.Backend = strings.ToLower(rc.Backend)

	if rc.Backend == PNGBackend && !rc.ValidOutput() {
		return fmt.Errorf("The '%s' backend requires an 'Output' file.", PNGBackend)
	} else if !rc.ValidSize() {
		return fmt.Errorf(
			"Width and Height must be positive, but are %d and %d.",
			rc.Width, rc.Height,
		)
	} else if !rc.ValidLimit() {
		return fmt.Errorf("Limit must be positive, but is %g.", rc.Limit)
	}

	return nil
}
