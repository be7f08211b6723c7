package parser

import (
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/scene"
	"github.com/ochrevis/slray/shape"
)

// parseConstructor peeks the next token and routes to the appropriate
// type-specific parser, returning the constructed value together with the
// TypeTag it should be registered under (spec.md §4.2's parse_constructor
// dispatch table). The peeked token is pushed back so every callee can
// consume its own leading token, the same convention parse_by_identifier
// relies on throughout this package.
func (p *Parser) parseConstructor() (any, scene.TypeTag, error) {
	tok, err := p.next()
	if err != nil {
		return nil, "", err
	}
	p.lex.UnreadToken(tok)

	switch tok.Kind {
	case lexer.Command:
		switch tok.Text {
		case "TIME":
			p.next()
			return p.scene.Time, scene.TypeFloat, nil
		case "ROTATE", "TRANSLATE", "SCALE":
			v, err := p.parseTransformation()
			return v, scene.TypeTransformation, err
		case "LOAD":
			p.next()
			v, err := p.parseLoad(tok.Loc)
			return v, scene.TypeImage, err
		case "UNITE":
			p.next()
			v, err := p.parseCSG(shape.Unite, tok.Loc)
			return v, scene.TypeShape, err
		case "INTERSECT":
			p.next()
			v, err := p.parseCSG(shape.Intersect, tok.Loc)
			return v, scene.TypeShape, err
		case "DIFF":
			p.next()
			v, err := p.parseCSG(shape.Diff, tok.Loc)
			return v, scene.TypeShape, err
		case "FUSE":
			p.next()
			v, err := p.parseCSG(shape.Fuse, tok.Loc)
			return v, scene.TypeShape, err
		default:
			return nil, "", diag.NewError(tok.Loc, "%q cannot appear in constructor position", tok.Text)
		}

	case lexer.LiteralType:
		switch tok.Text {
		case "Color":
			v, err := p.parseColor()
			return v, scene.TypeColor, err
		case "Point":
			v, err := p.parsePoint()
			return v, scene.TypePoint, err
		case "Material":
			v, err := p.parseMaterial()
			return v, scene.TypeMaterial, err
		case "Brdf":
			v, err := p.parseBRDF()
			return v, scene.TypeBRDF, err
		case "Pigment":
			v, err := p.parsePigment()
			return v, scene.TypePigment, err
		case "Shape":
			v, err := p.parseShape()
			return v, scene.TypeShape, err
		case "Light":
			v, err := p.parseLight()
			return v, scene.TypeLight, err
		case "Camera":
			v, err := p.parseCamera()
			return v, scene.TypeCamera, err
		case "Pcg":
			v, err := p.parsePcg()
			return v, scene.TypePcg, err
		case "Renderer":
			v, err := p.parseRendererSettings()
			return v, scene.TypeRenderer, err
		case "Tracer":
			v, err := p.parseTracerSettings()
			return v, scene.TypeTracer, err
		default:
			return nil, "", diag.NewError(tok.Loc, "%s has no constructor in this position", tok.Text)
		}

	case lexer.LiteralSymbol:
		switch tok.Text {
		case "<":
			v, err := p.parseColor()
			return v, scene.TypeColor, err
		case "{":
			v, err := p.parsePoint()
			return v, scene.TypePoint, err
		case "[":
			p.next()
			v, err := p.parseList()
			return v, scene.TypeList, err
		default:
			return nil, "", diag.NewError(tok.Loc, "%q cannot appear in constructor position", tok.Text)
		}

	case lexer.LiteralNumber, lexer.MathExpression:
		v, err := p.parseNumber()
		return v, scene.TypeFloat, err

	case lexer.LiteralString:
		// SceneLang has no closed LiteralType for raw strings (they only
		// appear inline, as LOAD's file path); STRING exists here purely
		// so a generic-position string still gets a self-consistent tag
		// instead of silently aliasing FLOAT.
		v, err := p.parseString()
		return v, scene.TypeTag("STRING"), err

	case lexer.Identifier:
		return nil, "", diag.NewError(tok.Loc, "identifier %q not allowed in constructor position; it can only be substituted within a typed constructor", tok.Text)

	default:
		return nil, "", diag.NewError(tok.Loc, "expected a constructor, got %s %q", tok.Kind, tok.Text)
	}
}
