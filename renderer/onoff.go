package renderer

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/world"
)

// OnOffRenderer is the cheapest possible integrator: HitColor wherever the
// ray strikes anything, BackgroundColor otherwise. Useful for sanity
// checking scene geometry before spending time on real shading.
type OnOffRenderer struct {
	World           *world.World
	HitColor        color.Color
	BackgroundColor color.Color
}

// Render implements Renderer.
func (r OnOffRenderer) Render(ry ray.Ray, _ *pcg.PCG) color.Color {
	if r.World.AnyHit(ry) {
		return r.HitColor
	}
	return r.BackgroundColor
}
