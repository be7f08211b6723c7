package parser

import (
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/scene"
)

// parseTransformation reads a Transformation: identifier substitution, or
// a chain of one or more transformation atoms joined by '*', applied
// right-to-left (spec.md §4.2): "ROTATE(...) * TRANSLATE(...)" builds the
// translate-then-rotate matrix a point is actually subjected to.
func (p *Parser) parseTransformation() (geom.Transformation, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeTransformation); err != nil {
		return geom.Transformation{}, err
	} else if ok {
		return v.(geom.Transformation), nil
	}
	return p.parseTransformationChain()
}

func (p *Parser) parseTransformationChain() (geom.Transformation, error) {
	acc, err := p.parseTransformationAtom()
	if err != nil {
		return geom.Transformation{}, err
	}
	for {
		tok, err := p.next()
		if err != nil {
			return geom.Transformation{}, err
		}
		if tok.Kind != lexer.LiteralSymbol || tok.Text != "*" {
			p.lex.UnreadToken(tok)
			return acc, nil
		}
		next, err := p.parseTransformationAtom()
		if err != nil {
			return geom.Transformation{}, err
		}
		// acc represents everything composed so far, applied in source
		// order; folding new.Compose(acc) keeps the earliest-written atom
		// applied last, matching standard right-to-left matrix semantics.
		acc = next.Compose(acc)
	}
}

func (p *Parser) parseTransformationAtom() (geom.Transformation, error) {
	tok, err := p.next()
	if err != nil {
		return geom.Transformation{}, err
	}
	switch {
	case tok.Kind == lexer.Command && tok.Text == "ROTATE":
		return p.parseRotate()
	case tok.Kind == lexer.Command && tok.Text == "TRANSLATE":
		return p.parseTranslate()
	case tok.Kind == lexer.Command && tok.Text == "SCALE":
		return p.parseScale()
	case tok.Kind == lexer.LiteralSymbol && tok.Text == "[":
		return p.parseMatrixLiteral()
	case tok.Kind == lexer.Identifier:
		v, ok := p.scene.IDs.Lookup(scene.TypeTransformation, tok.Text)
		if !ok {
			return geom.Transformation{}, diag.NewError(tok.Loc, "undefined TRANSFORMATION identifier %q", tok.Text)
		}
		return v.(geom.Transformation), nil
	default:
		return geom.Transformation{}, diag.NewError(tok.Loc, "expected a transformation, got %s %q", tok.Kind, tok.Text)
	}
}

// parseRotate reads "(.AXIS degrees (* .AXIS degrees)*)", the '(' not yet
// consumed.
func (p *Parser) parseRotate() (geom.Transformation, error) {
	if _, err := p.expectSymbol("("); err != nil {
		return geom.Transformation{}, err
	}
	acc, err := p.parseRotationTerm()
	if err != nil {
		return geom.Transformation{}, err
	}
	for {
		tok, err := p.next()
		if err != nil {
			return geom.Transformation{}, err
		}
		switch {
		case tok.Kind == lexer.LiteralSymbol && tok.Text == ")":
			return acc, nil
		case tok.Kind == lexer.LiteralSymbol && tok.Text == "*":
			next, err := p.parseRotationTerm()
			if err != nil {
				return geom.Transformation{}, err
			}
			acc = next.Compose(acc)
		default:
			return geom.Transformation{}, diag.NewError(tok.Loc, "expected '*' or ')' in ROTATE, got %s %q", tok.Kind, tok.Text)
		}
	}
}

func (p *Parser) parseRotationTerm() (geom.Transformation, error) {
	tok, err := p.next()
	if err != nil {
		return geom.Transformation{}, err
	}
	if tok.Kind != lexer.Keyword {
		return geom.Transformation{}, diag.NewError(tok.Loc, "expected .X, .Y or .Z in ROTATE, got %s %q", tok.Kind, tok.Text)
	}
	deg, err := p.parseNumber()
	if err != nil {
		return geom.Transformation{}, err
	}
	rad := geom.DegToRad(deg)
	switch tok.Text {
	case "X":
		return geom.RotationX(rad), nil
	case "Y":
		return geom.RotationY(rad), nil
	case "Z":
		return geom.RotationZ(rad), nil
	default:
		return geom.Transformation{}, diag.NewError(tok.Loc, "unknown rotation axis %q", tok.Text)
	}
}

// parseTranslate reads "(.X tx, .Y ty, .Z tz)", the '(' not yet consumed.
func (p *Parser) parseTranslate() (geom.Transformation, error) {
	if _, err := p.expectSymbol("("); err != nil {
		return geom.Transformation{}, err
	}
	results, err := p.parseKeywordArgs(
		[]string{"X", "Y", "Z"},
		map[string]func() (any, error){
			"X": func() (any, error) { return p.parseNumber() },
			"Y": func() (any, error) { return p.parseNumber() },
			"Z": func() (any, error) { return p.parseNumber() },
		},
		map[string]any{"X": 0.0, "Y": 0.0, "Z": 0.0},
	)
	if err != nil {
		return geom.Transformation{}, err
	}
	return geom.Translation(results["X"].(float64), results["Y"].(float64), results["Z"].(float64)), nil
}

// parseScale reads either a bare number (uniform scaling, no parens) or
// "(.X sx, .Y sy, .Z sz)" (per-axis scaling).
func (p *Parser) parseScale() (geom.Transformation, error) {
	tok, err := p.next()
	if err != nil {
		return geom.Transformation{}, err
	}
	if tok.Kind == lexer.LiteralSymbol && tok.Text == "(" {
		results, err := p.parseKeywordArgs(
			[]string{"X", "Y", "Z"},
			map[string]func() (any, error){
				"X": func() (any, error) { return p.parseNumber() },
				"Y": func() (any, error) { return p.parseNumber() },
				"Z": func() (any, error) { return p.parseNumber() },
			},
			map[string]any{"X": 1.0, "Y": 1.0, "Z": 1.0},
		)
		if err != nil {
			return geom.Transformation{}, err
		}
		return geom.Scaling(results["X"].(float64), results["Y"].(float64), results["Z"].(float64)), nil
	}
	p.lex.UnreadToken(tok)
	k, err := p.parseNumber()
	if err != nil {
		return geom.Transformation{}, err
	}
	return geom.UniformScaling(k), nil
}

// parseMatrixLiteral reads a 16-number List as a row-major Mat4, the '['
// already consumed by the caller. A length other than 16 is InvalidSize.
func (p *Parser) parseMatrixLiteral() (geom.Transformation, error) {
	startLoc := diag.Location{}
	items, err := p.parseList()
	if err != nil {
		return geom.Transformation{}, err
	}
	if len(items) != 16 {
		return geom.Transformation{}, diag.NewError(startLoc, "transformation matrix literal must have exactly 16 elements, got %d", len(items))
	}
	vals := make([]float64, 16)
	for i, it := range items {
		f, ok := it.(float64)
		if !ok {
			return geom.Transformation{}, diag.NewError(startLoc, "transformation matrix literal element %d is not a number", i)
		}
		vals[i] = f
	}
	m := geom.Mat4{
		Xx: vals[0], Xy: vals[1], Xz: vals[2], Xw: vals[3],
		Yx: vals[4], Yy: vals[5], Yz: vals[6], Yw: vals[7],
		Zx: vals[8], Zy: vals[9], Zz: vals[10], Zw: vals[11],
		Wx: vals[12], Wy: vals[13], Wz: vals[14], Ww: vals[15],
	}
	return geom.FromMatrix(m), nil
}
