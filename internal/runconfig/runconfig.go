// Package runconfig decodes the ambient (non-DSL) settings cmd/slray
// accepts alongside a SceneLang file: output path, worker count,
// tone-mapping parameters and progress verbosity. None of these touch
// scene semantics — every shape, material, camera and light still comes
// from the SceneLang source — so they are kept out of scene.Scene
// entirely and live in their own small YAML-backed struct, the way the
// teacher's example code (eg/is.go, load/shd.go) decodes sidecar YAML
// metadata with gopkg.in/yaml.v3 rather than rolling its own parser.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that live outside the SceneLang grammar.
type Config struct {
	// Output is the path the final image is written to. The extension
	// selects the codec: ".pfm" writes the raw HDR buffer, anything else
	// is tone-mapped to LDR and written as PNG.
	Output string `yaml:"output"`

	// Workers caps the number of goroutines tracer.ImageTracer spawns.
	// Zero means "let the tracer pick runtime.NumCPU()".
	Workers int `yaml:"workers"`

	// AFactor and Gamma parametrize imageio.ToneMap/WriteLDR.
	AFactor float64 `yaml:"a_factor"`
	Gamma   float64 `yaml:"gamma"`

	// ProgressIntervalSeconds is how often (seconds) a render reports progress.
	// Zero disables progress reporting entirely.
	ProgressIntervalSeconds float64 `yaml:"progress_interval_seconds"`
}

// Default returns the settings cmd/slray uses when no -config file is
// given.
func Default() Config {
	return Config{
		Output:                  "out.png",
		Workers:                 0,
		AFactor:                 0.18,
		Gamma:                   1.0,
		ProgressIntervalSeconds: 1.0,
	}
}

// Load decodes path (a YAML file) over Default(), so an incomplete file
// only overrides the fields it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("runconfig: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("runconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}
