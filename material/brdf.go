package material

import (
	"math"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/ray"
)

// BRDFKind tags which scattering law a BRDF implements.
type BRDFKind int

const (
	Diffuse BRDFKind = iota
	Specular
)

// BRDF is a tagged union over BRDFKind, pairing a reflectance Pigment with
// the parameters its scattering law needs.
type BRDF struct {
	Kind      BRDFKind
	Pigment   Pigment
	ThreshAng float64 // Specular only: angle (radians) within which a mirror ray is treated as a hit
}

// NewDiffuseBRDF returns an ideal (Lambertian) diffuse BRDF.
func NewDiffuseBRDF(p Pigment) BRDF { return BRDF{Kind: Diffuse, Pigment: p} }

// NewSpecularBRDF returns an ideal mirror BRDF. threshAngle is the angular
// tolerance (radians) used when comparing a candidate direction against the
// true reflection direction.
func NewSpecularBRDF(p Pigment, threshAngle float64) BRDF {
	return BRDF{Kind: Specular, Pigment: p, ThreshAng: threshAngle}
}

// DefaultSpecularThreshold is applied when a SceneLang material leaves the
// specular threshold angle unspecified.
const DefaultSpecularThreshold = math.Pi / 1800.0

// Eval returns the BRDF value for light arriving along inDir and leaving
// along outDir at a point with the given normal and surface uv.
func (b BRDF) Eval(normal geom.Normal, inDir, outDir geom.Vec, uv geom.Vec2D) color.Color {
	switch b.Kind {
	case Diffuse:
		return b.Pigment.At(uv).Mul(float32(1.0 / math.Pi))
	case Specular:
		thetaIn := math.Acos(normal.Dot(inDir))
		thetaOut := math.Acos(normal.Dot(outDir))
		if math.Abs(thetaIn-thetaOut) < b.ThreshAng {
			return b.Pigment.At(uv)
		}
		return color.Black
	default:
		panic("material: unknown BRDF kind")
	}
}

// Scatter draws one outgoing direction from the BRDF's importance-sampling
// distribution, given the incoming ray direction, hit point, surface
// normal and depth the scattered ray should carry. gen supplies randomness
// for stochastic kinds (Diffuse); Specular is deterministic.
func (b BRDF) Scatter(gen *pcg.PCG, inDir geom.Vec, hit geom.Point, normal geom.Normal, depth int) ray.Ray {
	switch b.Kind {
	case Diffuse:
		basis := newONB(normal)
		cosTheta := math.Sqrt(1 - gen.NextFloat())
		sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
		phi := 2 * math.Pi * gen.NextFloat()
		local := geom.NewVec(math.Cos(phi)*sinTheta, math.Sin(phi)*sinTheta, cosTheta)
		dir := basis.transform(local)
		r := ray.New(hit, dir)
		r.TMin = 1e-3
		return r.WithDepth(depth)
	case Specular:
		n := normal.ToVec()
		rayDirNormalized := inDir.Normalized()
		dot := n.Dot(rayDirNormalized)
		reflected := rayDirNormalized.Sub(n.Mul(2 * dot))
		r := ray.New(hit, reflected)
		r.TMin = 1e-3
		return r.WithDepth(depth)
	default:
		panic("material: unknown BRDF kind")
	}
}

// Material pairs a scattering law with the radiance a surface emits on its
// own, independent of any incoming light.
type Material struct {
	BRDF            BRDF
	EmittedRadiance Pigment
}

// NewMaterial returns a non-emissive material with the given BRDF.
func NewMaterial(b BRDF) Material {
	return Material{BRDF: b, EmittedRadiance: NewUniformPigment(color.Black)}
}

// WithEmission returns a copy of m with its emitted-radiance pigment
// replaced, used for light-emitting surfaces.
func (m Material) WithEmission(p Pigment) Material {
	m.EmittedRadiance = p
	return m
}
