package renderer

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/world"
)

// FlatRenderer shades each hit with the sum of its material's pigment and
// emitted radiance, evaluated at the hit's uv — no lighting, shadows, or
// secondary bounces. A cheap preview of a scene's color layout.
type FlatRenderer struct {
	World           *world.World
	BackgroundColor color.Color
}

// Render implements Renderer.
func (r FlatRenderer) Render(ry ray.Ray, _ *pcg.PCG) color.Color {
	rec, ok := r.World.Intersect(ry)
	if !ok {
		return r.BackgroundColor
	}
	m := rec.Material
	return m.BRDF.Pigment.At(rec.UV).Add(m.EmittedRadiance.At(rec.UV))
}
