package scene

import (
	"fmt"
	"io"
	"sort"
)

// DumpSink is where DUMP output is written. Kept as a bare io.Writer
// (rather than a named interface of our own) so a caller can pass a file,
// a buffer, or os.Stdout/Stderr directly — spec.md §4.2 requires DUMP to
// go through a caller-supplied sink, never a hard-coded output.
type DumpSink = io.Writer

// DumpVariables writes every identifier currently bound in ids, sorted by
// name for reproducible output.
func DumpVariables(w DumpSink, ids *IdTable) {
	entries := ids.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s = %v\n", e.Type, e.Name, e.Value)
	}
}

// DumpWorld writes a summary line per spawned shape.
func DumpWorld(w DumpSink, s *Scene) {
	for i, sh := range s.World.Shapes() {
		fmt.Fprintf(w, "shape[%d] = %T\n", i, sh)
	}
}

// DumpLights writes a summary line per spawned light.
func DumpLights(w DumpSink, s *Scene) {
	for i, lt := range s.Lights.All() {
		fmt.Fprintf(w, "light[%d] = %+v\n", i, lt)
	}
}

// DumpCamera writes the scene's camera, if USING has set one.
func DumpCamera(w DumpSink, s *Scene) {
	if s.Camera == nil {
		fmt.Fprintln(w, "camera = <unset>")
		return
	}
	fmt.Fprintf(w, "camera = %+v\n", *s.Camera)
}

// DumpRenderer writes the scene's renderer settings.
func DumpRenderer(w DumpSink, s *Scene) {
	if !s.Renderer.Set {
		fmt.Fprintln(w, "renderer = <unset>")
		return
	}
	fmt.Fprintf(w, "renderer = %+v\n", s.Renderer)
}

// DumpTracer writes the scene's tracer settings.
func DumpTracer(w DumpSink, s *Scene) {
	if !s.Tracer.Set {
		fmt.Fprintln(w, "tracer = <unset>")
		return
	}
	fmt.Fprintf(w, "tracer = %+v\n", s.Tracer)
}

// DumpImage writes the output raster size.
func DumpImage(w DumpSink, s *Scene) {
	fmt.Fprintf(w, "image = %dx%d\n", s.ImageWidth, s.ImageHeight)
}

// DumpAll writes every section in turn.
func DumpAll(w DumpSink, s *Scene) {
	DumpVariables(w, s.IDs)
	DumpWorld(w, s)
	DumpLights(w, s)
	DumpImage(w, s)
	DumpCamera(w, s)
	DumpRenderer(w, s)
	DumpTracer(w, s)
}
