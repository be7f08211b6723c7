package renderer

import (
	"math"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/world"
)

// PathTracer is the full Monte Carlo integrator: it importance-samples the
// hit material's BRDF, recurses to gather indirect light, and uses Russian
// roulette past RouletteDepth bounces to keep the recursion's expected cost
// bounded without ever introducing bias. NumRays scattered rays are fired
// at the very first bounce (depth 0); every subsequent bounce fires exactly
// one, since by then the branching factor would otherwise blow up
// exponentially with depth.
type PathTracer struct {
	World           *world.World
	BackgroundColor color.Color
	NumRays         int
	MaxDepth        int
	RouletteDepth   int
}

// Render implements Renderer.
func (pt PathTracer) Render(ry ray.Ray, gen *pcg.PCG) color.Color {
	if ry.Depth > pt.MaxDepth {
		return color.Black
	}
	rec, ok := pt.World.Intersect(ry)
	if !ok {
		return pt.BackgroundColor
	}

	m := rec.Material
	emitted := m.EmittedRadiance.At(rec.UV)
	hitColor := m.BRDF.Pigment.At(rec.UV)

	rouletteFactor := float32(1.0)
	if ry.Depth >= pt.RouletteDepth {
		q := math.Max(0.05, float64(1-hitColor.MaxComponent()))
		if gen.NextFloat() > 1-q {
			return emitted
		}
		rouletteFactor = float32(1.0 / (1 - q))
	}

	numRays := 1
	if ry.Depth == 0 {
		numRays = pt.NumRays
	}

	gathered := color.Black
	for i := 0; i < numRays; i++ {
		scattered := m.BRDF.Scatter(gen, ry.Dir, rec.Point, rec.Normal, ry.Depth+1)
		gathered = gathered.Add(hitColor.Times(pt.Render(scattered, gen)))
	}
	if numRays > 1 {
		gathered = gathered.Mul(1 / float32(numRays))
	}
	return emitted.Add(gathered.Mul(rouletteFactor))
}
