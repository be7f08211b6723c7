// Command slray reads a SceneLang (.sl) scene description, renders it, and
// writes the result as PFM or tone-mapped PNG, depending on the output
// path's extension. It is a thin wrapper around the interpreter and tracer
// packages (spec.md §1 classifies the CLI surface as an external
// collaborator, not core): flag parsing, file I/O and process-boundary
// logging live here; every scene semantic comes from the packages it
// drives.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/image/colornames"

	"github.com/ochrevis/slray/camera"
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/imageio"
	"github.com/ochrevis/slray/internal/runconfig"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/lang/parser"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/progress"
	"github.com/ochrevis/slray/renderer"
	"github.com/ochrevis/slray/scene"
	"github.com/ochrevis/slray/tracer"
)

func main() {
	scenePath := flag.String("scene", "", "path to a .sl scene description (required)")
	overrides := flag.String("set", "", "comma-separated name=value identifier overrides, bound at source line 0")
	configPath := flag.String("config", "", "optional YAML file of ambient settings (output, workers, tone mapping, progress)")
	output := flag.String("o", "", "output path; overrides the -config file's output setting. \".pfm\" writes raw HDR, anything else is tone-mapped PNG")
	workers := flag.Int("workers", 0, "worker goroutines; overrides the -config file's setting. 0 means runtime.NumCPU()")
	onColorName := flag.String("on-color", "", "named fallback color (e.g. \"red\", from golang.org/x/image/colornames) used by Renderer.OnOff if the scene doesn't USING one")
	dumpAll := flag.Bool("dump", false, "print the parsed scene's variables, world, lights and settings to stderr before rendering")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this path")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			slog.Error("slray: cpu profile", "err", err)
			os.Exit(1)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(*scenePath, *overrides, *configPath, *output, *workers, *onColorName, *dumpAll); err != nil {
		slog.Error("slray: render failed", "err", err)
		os.Exit(1)
	}
}

func run(scenePath, overrides, configPath, output string, workers int, onColorName string, dumpAll bool) error {
	if scenePath == "" {
		return fmt.Errorf("slray: -scene is required")
	}
	cfg, err := runconfig.Load(configPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	src, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("slray: reading %s: %w", scenePath, err)
	}

	sc := scene.New()
	if err := scene.ParseOverrides(overrides, sc.IDs); err != nil {
		return reportDiag(err, string(src))
	}

	lex := lexer.New(strings.NewReader(string(src)), scenePath)
	parsed, err := parser.ParseScene(lex, sc, os.Stderr)
	if err != nil {
		return reportDiag(err, string(src))
	}
	if dumpAll {
		scene.DumpAll(os.Stderr, parsed)
	}

	cam := resolveCamera(parsed)
	rend, err := resolveRenderer(parsed, onColorName)
	if err != nil {
		return err
	}
	samples, rng := resolveTracer(parsed)

	img := color.NewHdrImage(parsed.ImageWidth, parsed.ImageHeight)
	it := &tracer.ImageTracer{
		Camera:         cam,
		Image:          img,
		SamplesPerSide: samples,
		Workers:        cfg.Workers,
	}
	if cfg.ProgressIntervalSeconds > 0 {
		it.Progress = progress.NewThrottled(os.Stderr, time.Duration(cfg.ProgressIntervalSeconds*float64(time.Second)))
	}
	it.Render(rend, rng)

	return writeImage(img, cfg)
}

// resolveCamera returns the scene's USING camera, or a default perspective
// camera looking down +X from the origin if the scene never set one.
func resolveCamera(sc *scene.Scene) camera.Camera {
	if sc.Camera != nil {
		return *sc.Camera
	}
	aspect := float64(sc.ImageWidth) / float64(sc.ImageHeight)
	return camera.NewPerspective(aspect, 1.0, geom.Identity)
}

// resolveRenderer builds a renderer.Renderer from the scene's USING
// Renderer.* settings, falling back to Renderer.OnOff (optionally colored
// by -on-color via golang.org/x/image/colornames) if the scene
// never set one.
func resolveRenderer(sc *scene.Scene, onColorName string) (renderer.Renderer, error) {
	if !sc.Renderer.Set {
		onColor := color.White
		if onColorName != "" {
			nc, ok := colornames.Map[onColorName]
			if !ok {
				return nil, fmt.Errorf("slray: unknown -on-color %q", onColorName)
			}
			r, g, b, _ := nc.RGBA()
			onColor = color.Color{R: float32(r) / 65535, G: float32(g) / 65535, B: float32(b) / 65535}
		}
		return renderer.OnOffRenderer{World: sc.World, HitColor: onColor, BackgroundColor: color.Black}, nil
	}
	rs := sc.Renderer
	switch rs.Kind {
	case "ONOFF":
		return renderer.OnOffRenderer{World: sc.World, HitColor: rs.OnColor, BackgroundColor: rs.OffColor}, nil
	case "FLAT":
		return renderer.FlatRenderer{World: sc.World, BackgroundColor: rs.BackgroundColor}, nil
	case "POINTLIGHT":
		return renderer.PointLightRenderer{World: sc.World, Lights: sc.Lights, BackgroundColor: rs.BackgroundColor, AmbientColor: rs.AmbientColor}, nil
	case "PATHTRACER":
		return renderer.PathTracer{World: sc.World, BackgroundColor: rs.BackgroundColor, NumRays: rs.NumRays, MaxDepth: rs.MaxDepth, RouletteDepth: rs.RouletteDepth}, nil
	default:
		return nil, fmt.Errorf("slray: unknown renderer kind %q", rs.Kind)
	}
}

// resolveTracer returns the scene's USING Tracer settings, or the spec's
// documented defaults (samples_per_side=1, a fresh Pcg()) if unset.
func resolveTracer(sc *scene.Scene) (int, *pcg.PCG) {
	if !sc.Tracer.Set {
		return 1, pcg.Default()
	}
	rng := sc.Tracer.RNG
	if rng == nil {
		rng = pcg.Default()
	}
	samples := sc.Tracer.SamplesPerSide
	if samples < 1 {
		samples = 1
	}
	return samples, rng
}

func writeImage(img *color.HdrImage, cfg runconfig.Config) error {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("slray: creating %s: %w", cfg.Output, err)
	}
	defer f.Close()

	if isPFM(cfg.Output) {
		return imageio.WritePFM(f, img)
	}
	gamma := cfg.Gamma
	if gamma <= 0 {
		gamma = 1.0
	}
	return imageio.WriteLDR(f, img, cfg.AFactor, gamma, 0, 0)
}

func isPFM(path string) bool {
	return len(path) >= 4 && path[len(path)-4:] == ".pfm"
}

// reportDiag renders err against source if it carries a diag.Error
// location, otherwise returns it unchanged.
func reportDiag(err error, source string) error {
	if de, ok := err.(*diag.Error); ok {
		return fmt.Errorf("%s", diag.Render(de, source))
	}
	return err
}
