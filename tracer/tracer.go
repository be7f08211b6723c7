// Package tracer drives a Renderer across every pixel of an HdrImage,
// firing one or more stratified samples per pixel and dispatching rows of
// work across a pool of goroutines — the same row-channel-plus-WaitGroup
// worker pool the teacher's own ray trace example uses, generalized to a
// reproducible per-worker PCG stream instead of a shared math/rand source.
package tracer

import (
	"runtime"
	"sync"

	"github.com/ochrevis/slray/camera"
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/progress"
	"github.com/ochrevis/slray/renderer"
)

// ImageTracer fires rays for every pixel of Image through Camera, shading
// each with a Renderer. SamplesPerSide stratifies each pixel into a
// SamplesPerSide x SamplesPerSide sub-pixel grid (spec.md §4.6); 1 disables
// stratification (a single ray at a random point inside the pixel).
type ImageTracer struct {
	Camera         camera.Camera
	Image          *color.HdrImage
	SamplesPerSide int
	Progress       progress.Reporter // optional; nil disables reporting
	Workers        int               // 0 means runtime.NumCPU()
}

// Render shades the whole image using r, seeded from base. Rows are
// dispatched to t.Workers goroutines (runtime.NumCPU() if unset); each
// worker derives its own PCG stream from base, keyed by row index, so the
// final image is identical regardless of how many workers ran or in what
// order they finished.
func (t *ImageTracer) Render(r renderer.Renderer, base *pcg.PCG) {
	procs := t.Workers
	if procs <= 0 {
		procs = runtime.NumCPU()
	}
	rows := make(chan int, t.Image.Height)
	var wg sync.WaitGroup
	wg.Add(procs)

	var done int
	var doneMu sync.Mutex
	reportRow := func() {
		if t.Progress == nil {
			return
		}
		doneMu.Lock()
		done++
		t.Progress.Report(done, t.Image.Height)
		doneMu.Unlock()
	}

	for i := 0; i < procs; i++ {
		go t.worker(r, base, rows, &wg, reportRow)
	}
	for y := 0; y < t.Image.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

func (t *ImageTracer) worker(r renderer.Renderer, base *pcg.PCG, rows <-chan int, wg *sync.WaitGroup, reportRow func()) {
	defer wg.Done()
	for y := range rows {
		gen := base.Fork(uint64(y))
		t.renderRow(r, gen, y)
		reportRow()
	}
}

func (t *ImageTracer) renderRow(r renderer.Renderer, gen *pcg.PCG, y int) {
	n := t.SamplesPerSide
	if n < 1 {
		n = 1
	}
	samples := float32(n * n)
	for x := 0; x < t.Image.Width; x++ {
		acc := color.Black
		for sy := 0; sy < n; sy++ {
			for sx := 0; sx < n; sx++ {
				u, v := t.pixelSample(x, y, sx, sy, n, gen)
				ry := t.Camera.FireRay(u, v)
				acc = acc.Add(r.Render(ry, gen))
			}
		}
		t.Image.Set(x, y, acc.Mul(1/samples))
	}
}

// pixelSample returns the normalized (u,v) image coordinate for stratum
// (sx,sy) of an n x n grid inside pixel (x,y), jittered within the
// sub-cell to avoid aliasing along exact grid lines.
func (t *ImageTracer) pixelSample(x, y, sx, sy, n int, gen *pcg.PCG) (u, v float64) {
	jx := (float64(sx) + gen.NextFloat()) / float64(n)
	jy := (float64(sy) + gen.NextFloat()) / float64(n)
	u = (float64(x) + jx) / float64(t.Image.Width)
	v = 1 - (float64(y)+jy)/float64(t.Image.Height)
	return u, v
}
