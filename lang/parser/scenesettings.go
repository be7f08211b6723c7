package parser

import (
	"os"

	"github.com/ochrevis/slray/camera"
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/imageio"
	"github.com/ochrevis/slray/pcg"
	"github.com/ochrevis/slray/scene"
)

// parseLoad reads `LOAD "path"`, the Command token already consumed by the
// caller, and decodes the named PFM file into an Image value. File I/O is
// the one constructor that talks to the filesystem directly, the way the
// teacher's load package resolved asset paths relative to the invoking
// process rather than the in-memory scene graph.
func (p *Parser) parseLoad(loc diag.Location) (*color.HdrImage, error) {
	path, err := p.parseString()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, diag.NewError(loc, "LOAD %q: %v", path, err)
	}
	defer f.Close()
	img, err := imageio.ReadPFM(f)
	if err != nil {
		return nil, diag.NewError(loc, "LOAD %q: %v", path, err)
	}
	return img, nil
}

// parsePcg reads a Pcg: identifier substitution, or
// "Pcg(.state s, .inc i)".
func (p *Parser) parsePcg() (*pcg.PCG, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypePcg); err != nil {
		return nil, err
	} else if ok {
		return v.(*pcg.PCG), nil
	}
	if _, err := p.expectLiteralType("Pcg"); err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	results, err := p.parseKeywordArgs(
		[]string{"state", "inc"},
		map[string]func() (any, error){
			"state": func() (any, error) { return p.parseNumber() },
			"inc":   func() (any, error) { return p.parseNumber() },
		},
		map[string]any{"state": 42.0, "inc": 54.0},
	)
	if err != nil {
		return nil, err
	}
	return pcg.New(uint64(results["state"].(float64)), uint64(results["inc"].(float64))), nil
}

// parseCamera reads "Camera" followed by
// ".Orthogonal(.aspect_ratio a, .transformation t)" or
// ".Perspective(.aspect_ratio a, .transformation t, .screen_distance d)".
func (p *Parser) parseCamera() (camera.Camera, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeCamera); err != nil {
		return camera.Camera{}, err
	} else if ok {
		return v.(camera.Camera), nil
	}
	if _, err := p.expectLiteralType("Camera"); err != nil {
		return camera.Camera{}, err
	}
	variant, err := p.expectKeyword()
	if err != nil {
		return camera.Camera{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return camera.Camera{}, err
	}
	switch variant.Text {
	case "Orthogonal":
		results, err := p.parseKeywordArgs(
			[]string{"aspect_ratio", "transformation"},
			map[string]func() (any, error){
				"aspect_ratio":   func() (any, error) { return p.parseNumber() },
				"transformation": func() (any, error) { return p.parseTransformation() },
			},
			map[string]any{"aspect_ratio": 1.0, "transformation": geom.Identity},
		)
		if err != nil {
			return camera.Camera{}, err
		}
		return camera.NewOrthogonal(results["aspect_ratio"].(float64), results["transformation"].(geom.Transformation)), nil
	case "Perspective":
		results, err := p.parseKeywordArgs(
			[]string{"aspect_ratio", "transformation", "screen_distance"},
			map[string]func() (any, error){
				"aspect_ratio":    func() (any, error) { return p.parseNumber() },
				"transformation":  func() (any, error) { return p.parseTransformation() },
				"screen_distance": func() (any, error) { return p.parseNumber() },
			},
			map[string]any{"aspect_ratio": 1.0, "transformation": geom.Identity, "screen_distance": 1.0},
		)
		if err != nil {
			return camera.Camera{}, err
		}
		return camera.NewPerspective(
			results["aspect_ratio"].(float64), results["screen_distance"].(float64), results["transformation"].(geom.Transformation),
		), nil
	default:
		return camera.Camera{}, diag.NewError(variant.Loc, "unknown Camera variant %q", variant.Text)
	}
}

// parseRendererSettings reads "Renderer" followed by ".OnOff(...)",
// ".Flat(...)", ".PointLight(...)" or ".PathTracer(...)".
func (p *Parser) parseRendererSettings() (scene.RendererSettings, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeRenderer); err != nil {
		return scene.RendererSettings{}, err
	} else if ok {
		return v.(scene.RendererSettings), nil
	}
	if _, err := p.expectLiteralType("Renderer"); err != nil {
		return scene.RendererSettings{}, err
	}
	variant, err := p.expectKeyword()
	if err != nil {
		return scene.RendererSettings{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return scene.RendererSettings{}, err
	}
	switch variant.Text {
	case "OnOff":
		results, err := p.parseKeywordArgs(
			[]string{"on_color", "off_color"},
			map[string]func() (any, error){
				"on_color":  func() (any, error) { return p.parseColor() },
				"off_color": func() (any, error) { return p.parseColor() },
			},
			map[string]any{"on_color": color.White, "off_color": color.Black},
		)
		if err != nil {
			return scene.RendererSettings{}, err
		}
		return scene.RendererSettings{
			Set: true, Kind: "ONOFF",
			OnColor: results["on_color"].(color.Color), OffColor: results["off_color"].(color.Color),
		}, nil
	case "Flat":
		results, err := p.parseKeywordArgs(
			[]string{"background_color"},
			map[string]func() (any, error){"background_color": func() (any, error) { return p.parseColor() }},
			map[string]any{"background_color": color.Black},
		)
		if err != nil {
			return scene.RendererSettings{}, err
		}
		return scene.RendererSettings{Set: true, Kind: "FLAT", BackgroundColor: results["background_color"].(color.Color)}, nil
	case "PointLight":
		results, err := p.parseKeywordArgs(
			[]string{"background_color", "ambient_color"},
			map[string]func() (any, error){
				"background_color": func() (any, error) { return p.parseColor() },
				"ambient_color":    func() (any, error) { return p.parseColor() },
			},
			map[string]any{"background_color": color.Black, "ambient_color": color.White.Mul(1e-3)},
		)
		if err != nil {
			return scene.RendererSettings{}, err
		}
		return scene.RendererSettings{
			Set: true, Kind: "POINTLIGHT",
			BackgroundColor: results["background_color"].(color.Color), AmbientColor: results["ambient_color"].(color.Color),
		}, nil
	case "PathTracer":
		results, err := p.parseKeywordArgs(
			[]string{"background_color", "rng", "n", "max_depth", "roulette_depth"},
			map[string]func() (any, error){
				"background_color": func() (any, error) { return p.parseColor() },
				"rng":              func() (any, error) { return p.parsePcg() },
				"n":                func() (any, error) { return p.parseNumber() },
				"max_depth":        func() (any, error) { return p.parseNumber() },
				"roulette_depth":   func() (any, error) { return p.parseNumber() },
			},
			map[string]any{
				"background_color": color.Black, "rng": pcg.Default(),
				"n": 10.0, "max_depth": 2.0, "roulette_depth": 3.0,
			},
		)
		if err != nil {
			return scene.RendererSettings{}, err
		}
		return scene.RendererSettings{
			Set: true, Kind: "PATHTRACER",
			BackgroundColor: results["background_color"].(color.Color),
			RNG:             results["rng"].(*pcg.PCG),
			NumRays:         int(results["n"].(float64)),
			MaxDepth:        int(results["max_depth"].(float64)),
			RouletteDepth:   int(results["roulette_depth"].(float64)),
		}, nil
	default:
		return scene.RendererSettings{}, diag.NewError(variant.Loc, "unknown Renderer variant %q", variant.Text)
	}
}

// parseTracerSettings reads "Tracer(.samples_per_side s, .rng r)".
func (p *Parser) parseTracerSettings() (scene.TracerSettings, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeTracer); err != nil {
		return scene.TracerSettings{}, err
	} else if ok {
		return v.(scene.TracerSettings), nil
	}
	if _, err := p.expectLiteralType("Tracer"); err != nil {
		return scene.TracerSettings{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return scene.TracerSettings{}, err
	}
	results, err := p.parseKeywordArgs(
		[]string{"samples_per_side", "rng"},
		map[string]func() (any, error){
			"samples_per_side": func() (any, error) { return p.parseNumber() },
			"rng":              func() (any, error) { return p.parsePcg() },
		},
		map[string]any{"samples_per_side": 1.0, "rng": pcg.Default()},
	)
	if err != nil {
		return scene.TracerSettings{}, err
	}
	return scene.TracerSettings{
		Set:            true,
		SamplesPerSide: int(results["samples_per_side"].(float64)),
		RNG:            results["rng"].(*pcg.PCG),
	}, nil
}

// parseImageSize reads "Image(.width w, .height h)", the USING-only form
// that fixes the output raster's dimensions. Unlike every other LiteralType
// constructor, its result isn't an IdTable value of type IMAGE (that type
// is reserved for textures a LOAD produces) — it writes straight into the
// Scene's ImageWidth/ImageHeight fields, so it is parsed directly by
// parseUsing rather than through parseConstructor.
func (p *Parser) parseImageSize() (width, height int, err error) {
	if _, err := p.expectLiteralType("Image"); err != nil {
		return 0, 0, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return 0, 0, err
	}
	results, kerr := p.parseKeywordArgs(
		[]string{"width", "height"},
		map[string]func() (any, error){
			"width":  func() (any, error) { return p.parseNumber() },
			"height": func() (any, error) { return p.parseNumber() },
		},
		map[string]any{"width": float64(p.scene.ImageWidth), "height": float64(p.scene.ImageHeight)},
	)
	if kerr != nil {
		return 0, 0, kerr
	}
	return int(results["width"].(float64)), int(results["height"].(float64)), nil
}
