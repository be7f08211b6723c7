package parser

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/material"
	"github.com/ochrevis/slray/scene"
)

// parsePigment reads a Pigment: identifier substitution, or
// "Pigment" followed by ".Uniform(...)"/".Checkered(...)"/".Image(...)".
func (p *Parser) parsePigment() (material.Pigment, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypePigment); err != nil {
		return material.Pigment{}, err
	} else if ok {
		return v.(material.Pigment), nil
	}
	if _, err := p.expectLiteralType("Pigment"); err != nil {
		return material.Pigment{}, err
	}
	variant, err := p.expectKeyword()
	if err != nil {
		return material.Pigment{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return material.Pigment{}, err
	}
	switch variant.Text {
	case "Uniform":
		results, err := p.parseKeywordArgs(
			[]string{"color"},
			map[string]func() (any, error){"color": func() (any, error) { return p.parseColor() }},
			map[string]any{"color": color.White},
		)
		if err != nil {
			return material.Pigment{}, err
		}
		return material.NewUniformPigment(results["color"].(color.Color)), nil
	case "Checkered":
		results, err := p.parseKeywordArgs(
			[]string{"N", "color_on", "color_off"},
			map[string]func() (any, error){
				"N":         func() (any, error) { return p.parseNumber() },
				"color_on":  func() (any, error) { return p.parseColor() },
				"color_off": func() (any, error) { return p.parseColor() },
			},
			map[string]any{"N": 2.0, "color_on": color.White, "color_off": color.Black},
		)
		if err != nil {
			return material.Pigment{}, err
		}
		return material.NewCheckeredPigment(
			results["color_on"].(color.Color), results["color_off"].(color.Color), int(results["N"].(float64)),
		), nil
	case "Image":
		results, err := p.parseKeywordArgs(
			[]string{"image"},
			map[string]func() (any, error){"image": func() (any, error) { return p.parseImageIdentifier() }},
			map[string]any{"image": color.NewHdrImage(1, 1)},
		)
		if err != nil {
			return material.Pigment{}, err
		}
		return material.NewImagePigment(results["image"].(*color.HdrImage)), nil
	default:
		return material.Pigment{}, diag.NewError(variant.Loc, "unknown Pigment variant %q", variant.Text)
	}
}

// parseImageIdentifier reads a bare identifier already bound as an IMAGE
// (typically the result of a LOAD), used as Pigment.Image's texture.
func (p *Parser) parseImageIdentifier() (*color.HdrImage, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != lexer.Identifier {
		return nil, diag.NewError(tok.Loc, "expected an IMAGE identifier, got %s %q", tok.Kind, tok.Text)
	}
	v, ok := p.scene.IDs.Lookup(scene.TypeImage, tok.Text)
	if !ok {
		return nil, diag.NewError(tok.Loc, "undefined IMAGE identifier %q", tok.Text)
	}
	return v.(*color.HdrImage), nil
}

// parseBRDF reads a BRDF: identifier substitution, or "Brdf" followed by
// ".Diffuse(...)"/".Specular(...)".
func (p *Parser) parseBRDF() (material.BRDF, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeBRDF); err != nil {
		return material.BRDF{}, err
	} else if ok {
		return v.(material.BRDF), nil
	}
	if _, err := p.expectLiteralType("Brdf"); err != nil {
		return material.BRDF{}, err
	}
	variant, err := p.expectKeyword()
	if err != nil {
		return material.BRDF{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return material.BRDF{}, err
	}
	defaultPigment := material.NewUniformPigment(color.White)
	switch variant.Text {
	case "Diffuse":
		results, err := p.parseKeywordArgs(
			[]string{"pigment"},
			map[string]func() (any, error){"pigment": func() (any, error) { return p.parsePigment() }},
			map[string]any{"pigment": defaultPigment},
		)
		if err != nil {
			return material.BRDF{}, err
		}
		return material.NewDiffuseBRDF(results["pigment"].(material.Pigment)), nil
	case "Specular":
		results, err := p.parseKeywordArgs(
			[]string{"pigment", "threshold_angle_rad"},
			map[string]func() (any, error){
				"pigment":             func() (any, error) { return p.parsePigment() },
				"threshold_angle_rad": func() (any, error) { return p.parseNumber() },
			},
			map[string]any{"pigment": defaultPigment, "threshold_angle_rad": material.DefaultSpecularThreshold},
		)
		if err != nil {
			return material.BRDF{}, err
		}
		return material.NewSpecularBRDF(results["pigment"].(material.Pigment), results["threshold_angle_rad"].(float64)), nil
	default:
		return material.BRDF{}, diag.NewError(variant.Loc, "unknown Brdf variant %q", variant.Text)
	}
}

// parseMaterial reads a Material: identifier substitution, or
// "Material(.brdf brdf, .emitted_radiance pigment)".
func (p *Parser) parseMaterial() (material.Material, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeMaterial); err != nil {
		return material.Material{}, err
	} else if ok {
		return v.(material.Material), nil
	}
	if _, err := p.expectLiteralType("Material"); err != nil {
		return material.Material{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return material.Material{}, err
	}
	results, err := p.parseKeywordArgs(
		[]string{"brdf", "emitted_radiance"},
		map[string]func() (any, error){
			"brdf":             func() (any, error) { return p.parseBRDF() },
			"emitted_radiance": func() (any, error) { return p.parsePigment() },
		},
		map[string]any{
			"brdf":             material.NewDiffuseBRDF(material.NewUniformPigment(color.White)),
			"emitted_radiance": material.NewUniformPigment(color.Black),
		},
	)
	if err != nil {
		return material.Material{}, err
	}
	m := material.NewMaterial(results["brdf"].(material.BRDF))
	return m.WithEmission(results["emitted_radiance"].(material.Pigment)), nil
}

// expectKeyword reads the next token and requires it be a Keyword (a dotted
// .Word used to select a sum-type variant).
func (p *Parser) expectKeyword() (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != lexer.Keyword {
		return tok, diag.NewError(tok.Loc, "expected a .Variant keyword, got %s %q", tok.Kind, tok.Text)
	}
	return tok, nil
}

// expectLiteralType reads the next token and requires it be the given
// LiteralType text.
func (p *Parser) expectLiteralType(name string) (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != lexer.LiteralType || tok.Text != name {
		return tok, diag.NewError(tok.Loc, "expected %s, got %s %q", name, tok.Kind, tok.Text)
	}
	return tok, nil
}
