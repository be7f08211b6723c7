// Package renderer implements the four ray-to-color integrators SceneLang
// can select: OnOff, Flat, PointLight and PathTracer.
package renderer

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
)

// Renderer evaluates the radiance arriving along r. gen supplies the
// randomness a stochastic renderer (PathTracer) needs; deterministic
// renderers ignore it. Every renderer kind implements this one method so
// tracer.ImageTracer can dispatch uniformly regardless of which was
// selected.
type Renderer interface {
	Render(r ray.Ray, gen *pcg.PCG) color.Color
}
