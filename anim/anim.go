// Package anim drives a sequence of frame renders from a single SceneLang
// source, sweeping scene.Scene.Time across a caller-given range and
// re-invoking the tracer once per frame. This is orchestration only — it
// has no opinion on shapes, materials or the integrator, and depends on
// nothing but the already-total tracer.ImageTracer and renderer.Renderer
// it drives, matching spec.md §1's classification of animation framing as
// a thin external wrapper around the core.
package anim

import (
	"fmt"

	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/renderer"
	"github.com/ochrevis/slray/tracer"
)

// Frame is one rendered animation frame: its index, its scene.Time value
// and the resulting image.
type Frame struct {
	Index int
	Time  float64
	Image *color.HdrImage
}

// RenderFrames renders count frames with scene.Time swept linearly from
// startTime to endTime (inclusive of both ends when count > 1). build is
// called once per frame with the frame's time value and must return a
// tracer, renderer and RNG seed freshly constructed for that time (since
// Time can affect a scene's transformations through math expressions
// evaluated at parse time, each frame re-parses or otherwise rebuilds its
// own scene rather than mutating a shared one). RenderFrames stops and
// returns the first error build produces.
func RenderFrames(count int, startTime, endTime float64, build func(time float64) (*tracer.ImageTracer, renderer.Renderer, *pcg.PCG, error)) ([]Frame, error) {
	if count <= 0 {
		return nil, fmt.Errorf("anim: count must be positive, got %d", count)
	}
	frames := make([]Frame, count)
	for i := 0; i < count; i++ {
		t := startTime
		if count > 1 {
			t = startTime + (endTime-startTime)*float64(i)/float64(count-1)
		}
		tr, rend, gen, err := build(t)
		if err != nil {
			return nil, fmt.Errorf("anim: frame %d (t=%g): %w", i, t, err)
		}
		tr.Render(rend, gen)
		frames[i] = Frame{Index: i, Time: t, Image: tr.Image}
	}
	return frames, nil
}
