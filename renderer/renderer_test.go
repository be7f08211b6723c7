package renderer

import (
	"testing"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/material"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
	"github.com/ochrevis/slray/shape"
	"github.com/ochrevis/slray/world"
)

func whiteDiffuse() material.Material {
	return material.NewMaterial(material.NewDiffuseBRDF(material.NewUniformPigment(color.White)))
}

func oneSphereWorld() *world.World {
	w := world.New()
	w.Add(shape.NewSphere(geom.Identity, whiteDiffuse()))
	return w
}

func TestOnOffRenderer(t *testing.T) {
	r := OnOffRenderer{World: oneSphereWorld(), HitColor: color.White, BackgroundColor: color.Black}
	hit := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	miss := ray.New(geom.NewPoint(10, 10, 10), geom.NewVec(0, 0, -1))
	if got := r.Render(hit, nil); !got.Eq(color.White) {
		t.Errorf("hit: got %+v want White", got)
	}
	if got := r.Render(miss, nil); !got.Eq(color.Black) {
		t.Errorf("miss: got %+v want Black", got)
	}
}

func TestFlatRenderer(t *testing.T) {
	r := FlatRenderer{World: oneSphereWorld(), BackgroundColor: color.Black}
	hit := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	if got := r.Render(hit, nil); !got.Eq(color.White) {
		t.Errorf("hit: got %+v want White", got)
	}
}

func TestPointLightRendererShadow(t *testing.T) {
	w := world.New()
	w.Add(shape.NewSphere(geom.Identity, whiteDiffuse()))
	w.Add(shape.NewSphere(geom.Translation(0, 0, 3), whiteDiffuse()))
	lights := world.NewLights()
	lights.Add(world.PointLight{Position: geom.NewPoint(0, 0, 10), Color: color.White, LinearRadius: 0})

	r := PointLightRenderer{World: w, Lights: lights, BackgroundColor: color.Black, AmbientColor: color.Black}
	// Hits the far sphere's back side; the near sphere (closer to the
	// light) should fully occlude the light from this point.
	ry := ray.New(geom.NewPoint(0, 0, -5), geom.NewVec(0, 0, 1))
	got := r.Render(ry, nil)
	if got.Luminosity() > 0.01 {
		t.Errorf("expected the occluded hit to receive no direct light, got %+v", got)
	}
}

func TestPathTracerTerminatesAndEmits(t *testing.T) {
	w := world.New()
	lit := whiteDiffuse().WithEmission(material.NewUniformPigment(color.White))
	w.Add(shape.NewSphere(geom.Identity, lit))

	pt := PathTracer{World: w, BackgroundColor: color.Black, NumRays: 2, MaxDepth: 3, RouletteDepth: 2}
	ry := ray.New(geom.NewPoint(0, 0, 5), geom.NewVec(0, 0, -1))
	got := pt.Render(ry, pcg.Default())
	if got.Luminosity() <= 0 {
		t.Errorf("expected some radiance from the emissive sphere, got %+v", got)
	}
}

func TestPathTracerBackground(t *testing.T) {
	pt := PathTracer{World: world.New(), BackgroundColor: color.Color{R: 0.2, G: 0.3, B: 0.4}, NumRays: 1, MaxDepth: 3, RouletteDepth: 2}
	ry := ray.New(geom.NewPoint(0, 0, 0), geom.NewVec(0, 0, -1))
	got := pt.Render(ry, pcg.Default())
	if !got.Eq(pt.BackgroundColor) {
		t.Errorf("got %+v want background %+v", got, pt.BackgroundColor)
	}
}
