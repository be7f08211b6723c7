package renderer

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/world"
)

// PointLightRenderer shades a hit by summing each PointLight's contribution
// (Lambertian diffuse term, attenuated by distance and occluded by shadow
// rays) plus a flat ambient term, and adds the surface's own emitted
// radiance. It never recurses, so reflections and indirect light are
// invisible to it — that's the PathTracer's job.
type PointLightRenderer struct {
	World           *world.World
	Lights          *world.Lights
	BackgroundColor color.Color
	AmbientColor    color.Color
}

// Render implements Renderer.
func (r PointLightRenderer) Render(ry ray.Ray, _ *pcg.PCG) color.Color {
	rec, ok := r.World.Intersect(ry)
	if !ok {
		return r.BackgroundColor
	}
	m := rec.Material
	uv := rec.UV
	acc := m.EmittedRadiance.At(uv).Add(r.AmbientColor)

	for _, lt := range r.Lights.All() {
		toLight := lt.Position.Sub(rec.Point)
		dist := toLight.Norm()
		if dist < geom.Epsilon {
			continue
		}
		dir := toLight.Mul(1 / dist)

		shadowRay := ray.Ray{Origin: rec.Point, Dir: dir, TMin: 1e-3, TMax: dist - 1e-3}
		if r.World.AnyHit(shadowRay) {
			continue
		}

		cosTheta := rec.Normal.Dot(dir)
		if cosTheta <= 0 {
			continue
		}
		attenuation := 1.0 / (1.0 + lt.LinearRadius*dist)
		brdfVal := m.BRDF.Eval(rec.Normal, dir, ry.Dir.Neg().Normalized(), uv)
		acc = acc.Add(brdfVal.Times(lt.Color).Mul(float32(cosTheta * attenuation)))
	}
	return acc
}
