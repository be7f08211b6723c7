package parser

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/material"
	"github.com/ochrevis/slray/scene"
	"github.com/ochrevis/slray/shape"
	"github.com/ochrevis/slray/world"
)

// defaultShapeMaterial is the "Material()" default every simple shape
// falls back to when its .material keyword is omitted (spec.md §6).
func defaultShapeMaterial() material.Material {
	return material.NewMaterial(material.NewDiffuseBRDF(material.NewUniformPigment(color.White)))
}

// parseShape reads a Shape: identifier substitution, or "Shape" followed
// by ".Sphere(...)"/".Plane(...)"/".Cube(...)"/".Cylinder(...)"/".Cone(...)".
func (p *Parser) parseShape() (shape.Shape, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeShape); err != nil {
		return nil, err
	} else if ok {
		return v.(shape.Shape), nil
	}
	if _, err := p.expectLiteralType("Shape"); err != nil {
		return nil, err
	}
	variant, err := p.expectKeyword()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	results, err := p.parseKeywordArgs(
		[]string{"material", "transformation"},
		map[string]func() (any, error){
			"material":       func() (any, error) { return p.parseMaterial() },
			"transformation": func() (any, error) { return p.parseTransformation() },
		},
		map[string]any{"material": defaultShapeMaterial(), "transformation": geom.Identity},
	)
	if err != nil {
		return nil, err
	}
	m := results["material"].(material.Material)
	t := results["transformation"].(geom.Transformation)
	switch variant.Text {
	case "Sphere":
		return shape.NewSphere(t, m), nil
	case "Plane":
		return shape.NewPlane(t, m), nil
	case "Cube":
		return shape.NewCube(t, m), nil
	case "Cylinder":
		return shape.NewCylinder(t, m), nil
	case "Cone":
		return shape.NewCone(t, m), nil
	default:
		return nil, diag.NewError(variant.Loc, "unknown Shape variant %q", variant.Text)
	}
}

// parseLight reads a Light: identifier substitution, or
// "Light(.position p, .color c, .linear_radius r)".
func (p *Parser) parseLight() (world.PointLight, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeLight); err != nil {
		return world.PointLight{}, err
	} else if ok {
		return v.(world.PointLight), nil
	}
	if _, err := p.expectLiteralType("Light"); err != nil {
		return world.PointLight{}, err
	}
	if _, err := p.expectSymbol("("); err != nil {
		return world.PointLight{}, err
	}
	results, err := p.parseKeywordArgs(
		[]string{"position", "color", "linear_radius"},
		map[string]func() (any, error){
			"position":      func() (any, error) { return p.parsePoint() },
			"color":         func() (any, error) { return p.parseColor() },
			"linear_radius": func() (any, error) { return p.parseNumber() },
		},
		map[string]any{"position": geom.NewPoint(0, 0, 0), "color": color.White, "linear_radius": 0.0},
	)
	if err != nil {
		return world.PointLight{}, err
	}
	return world.PointLight{
		Position:     results["position"].(geom.Point),
		Color:        results["color"].(color.Color),
		LinearRadius: results["linear_radius"].(float64),
	}, nil
}

// parseCSG reads "UNITE(s1, s2, ...)"/"INTERSECT(...)"/"DIFF(...)"/"FUSE(...)",
// the leading Command token already consumed by the caller, and combines
// the operands via a balanced CSG tree (spec.md §4.2/§4.4).
func (p *Parser) parseCSG(rule shape.Rule, loc diag.Location) (shape.Shape, error) {
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var operands []shape.Shape
	for {
		s, err := p.parseShape()
		if err != nil {
			return nil, err
		}
		operands = append(operands, s)
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.LiteralSymbol && tok.Text == ")" {
			break
		}
		if tok.Kind != lexer.LiteralSymbol || tok.Text != "," {
			return nil, diag.NewError(tok.Loc, "expected ',' or ')' in CSG operand list, got %s %q", tok.Kind, tok.Text)
		}
	}
	if len(operands) == 0 {
		return nil, diag.NewError(loc, "CSG operation requires at least one operand")
	}
	switch rule {
	case shape.Unite:
		return shape.UniteAll(geom.Identity, operands...), nil
	case shape.Intersect:
		return shape.IntersectAll(geom.Identity, operands...), nil
	case shape.Fuse:
		return shape.FuseAll(geom.Identity, operands...), nil
	case shape.Diff:
		return shape.DiffAll(geom.Identity, operands[0], operands[1:]...), nil
	default:
		return nil, diag.NewError(loc, "unknown CSG rule")
	}
}
