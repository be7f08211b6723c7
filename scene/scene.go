package scene

import (
	"strconv"
	"strings"

	"github.com/ochrevis/slray/camera"
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/world"
)

// RendererSettings fixes which integrator USING selects and its
// parameters; the zero value means "not yet set", which the CLI falls
// back to a default for.
type RendererSettings struct {
	Set  bool
	Kind string // "ONOFF", "FLAT", "POINTLIGHT" or "PATHTRACER"

	OnColor, OffColor color.Color // OnOff
	BackgroundColor   color.Color // Flat, PointLight, PathTracer
	AmbientColor      color.Color // PointLight
	NumRays, MaxDepth int         // PathTracer
	RouletteDepth     int         // PathTracer
	RNG               *pcg.PCG    // PathTracer
}

// TracerSettings fixes the image tracer's sampling grid.
type TracerSettings struct {
	Set            bool
	SamplesPerSide int
	RNG            *pcg.PCG
}

// Scene is the fully parsed result of a SceneLang source file: its
// identifier table, the world and lights it spawned, and whichever of the
// optional top-level settings (image size, camera, renderer, tracer) a
// USING command fixed.
type Scene struct {
	IDs    *IdTable
	World  *world.World
	Lights *world.Lights

	ImageWidth, ImageHeight int
	Camera                  *camera.Camera
	Renderer                RendererSettings
	Tracer                  TracerSettings
	Time                    float64
}

// New returns an empty Scene ready for the parser to populate.
func New() *Scene {
	return &Scene{
		IDs:         NewIdTable(),
		World:       world.New(),
		Lights:      world.NewLights(),
		ImageWidth:  640,
		ImageHeight: 480,
	}
}

// ParseOverrides applies a comma-separated "name=value" command-line
// override string to table, binding each name as a FLOAT at source line 0
// (diag.Location's reserved "no real file" line). A script-level SET of
// the same name later silently replaces the override (see IdTable.Set);
// until then, references to the name see the override. Malformed entries are reported
// against the literal override text, since there is no source file to
// point at.
func ParseOverrides(s string, table *IdTable) error {
	if s == "" {
		return nil
	}
	for _, entry := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok {
			return diag.NewError(diag.Location{File: "<override>", Line: 0}, "malformed override %q: expected name=value", entry)
		}
		name = strings.TrimSpace(name)
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return diag.NewError(diag.Location{File: "<override>", Line: 0}, "override %q: %v", entry, err)
		}
		if err := table.Set(TypeFloat, name, f, diag.Location{File: "<override>", Line: 0}); err != nil {
			return err
		}
	}
	return nil
}
