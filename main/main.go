package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/phil-mansfield/penrose/io"
	"github.com/phil-mansfield/penrose/kerr"
	"github.com/phil-mansfield/penrose/render"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close stops profiling and closes the files inside FileGroup. Logging goes
// back to stderr.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		configFile, exampleConfig string
		backend, output           string
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Configuration file with [Kerr] and [Render] sections. If not set, "+
			"the reference scenario (M = 1, a = 0.99) is drawn.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Penrose' and 'Trajectories'.",
	)
	flag.StringVar(
		&backend, "Backend", "",
		"Overrides the config file's 'Backend' value.",
	)
	flag.StringVar(
		&output, "Output", "",
		"Overrides the config file's 'Output' value.",
	)

	flag.Parse()

	if exampleConfig != "" {
		switch exampleConfig {
		case "Penrose":
			fmt.Println(io.ExamplePenroseFile)
		case "Trajectories":
			fmt.Println(io.ExampleTrajectoryFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Penrose' and 'Trajectories'.",
			)
		}
		return
	}

	wrap, err := io.ReadConfig(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if backend != "" {
		wrap.Render.Backend = backend
	}
	if output != "" {
		wrap.Render.Output = output
	}
	if err := wrap.CheckInit(); err != nil {
		log.Fatal(err.Error())
	}

	fg := setupFiles(&wrap.Render)
	err = penroseMain(wrap)
	fg.Close()
	if err != nil {
		log.Fatal(err.Error())
	}
}

// setupFiles redirects logging and starts profiling if the config asks for
// either.
func setupFiles(con *io.RenderConfig) *FileGroup {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(f)
		fg.log = f
	}

	if con.ValidProfileFile() {
		f, err := os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err.Error())
		}
		fg.prof = f
	}

	return fg
}

// penroseMain generates the scene and hands it to the configured renderer.
// Parameters are validated before any geometry is computed.
func penroseMain(wrap *io.PenroseWrapper) error {
	kc, rc := &wrap.Kerr, &wrap.Render

	log.Println("Initializing Kerr Metric Simulation...")
	log.Printf("Mass (M): %g", kc.Mass)
	log.Printf("Spin (a): %g", kc.Spin)

	specs := kerr.DefaultPenroseSpecs()
	if kc.ValidTrajectoryFile() {
		var err error
		specs, err = io.ReadTrajectoryTable(kc.TrajectoryFile)
		if err != nil {
			return err
		}
	}

	scene, err := kerr.Generate(kc.Params(), kc.Resolution, specs)
	if err != nil {
		var de *kerr.DomainError
		if errors.As(err, &de) {
			return fmt.Errorf("Kerr parameters out of range: %s", de.Reason)
		}
		return err
	}
	log.Printf(
		"Horizon radius r+ = %.4f, static limit on the equator = %.4f.",
		scene.RPlus, 2*kc.Mass,
	)

	log.Println("Rendering 3D Spacetime Manifold...")
	layers := render.Compose(scene, rc.Limit)
	r := newRenderer(rc)
	log.Println("Visualization generated successfully.")

	if rc.Interactive() {
		log.Println("Displaying interactive window... (Close window to exit)")
	}
	if err := r.Render(layers); err != nil {
		return err
	}
	if !rc.Interactive() {
		log.Printf("Wrote %s.", rc.Output)
	}
	return nil
}

func newRenderer(con *io.RenderConfig) render.Renderer {
	cam := render.NewCamera(con.Elevation, con.Azimuth)

	switch con.Backend {
	case io.PyplotBackend:
		return &render.PyplotRenderer{Camera: cam, Output: con.Output}
	case io.PNGBackend:
		return &render.PNGRenderer{
			Camera: cam, Output: con.Output,
			Width: con.Width, Height: con.Height,
		}
	default:
		panic("Impossible")
	}
}
