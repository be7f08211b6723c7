package parser

import (
	"github.com/ochrevis/slray/color"
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/geom"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/scene"
)

// parseNumber reads a number: a LiteralNumber, a MathExpression (evaluated
// against the current IdTable and required to reduce to a scalar), or a
// bare Identifier already bound as a FLOAT.
func (p *Parser) parseNumber() (float64, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case lexer.LiteralNumber:
		return tok.Num, nil
	case lexer.MathExpression:
		v, err := p.evalMathExpr(tok.Text, tok.Loc)
		if err != nil {
			return 0, err
		}
		if v.kind != exprNumber {
			return 0, diag.NewError(tok.Loc, "expected a number, math expression produced a different type")
		}
		return v.num, nil
	case lexer.Identifier:
		return p.scene.IDs.RequireFloat(tok.Text, tok.Loc)
	default:
		return 0, diag.NewError(tok.Loc, "expected a number, got %s %q", tok.Kind, tok.Text)
	}
}

// parseString reads a LiteralString token, used for LOAD's file path.
func (p *Parser) parseString() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}
	if tok.Kind != lexer.LiteralString {
		return "", diag.NewError(tok.Loc, "expected a string, got %s %q", tok.Kind, tok.Text)
	}
	return tok.Text, nil
}

// parseByIdentifier peeks the next token: if it is an Identifier already
// registered under typ, it is consumed and returned. An Identifier not
// registered under typ is an error. Any other token is pushed back and ok
// is false, so the caller falls through to building the value from scratch
// (spec.md §4.2's "parse_by_identifier" pattern, shared by every typed
// constructor).
func (p *Parser) parseByIdentifier(typ scene.TypeTag) (value any, ok bool, err error) {
	tok, err := p.next()
	if err != nil {
		return nil, false, err
	}
	if tok.Kind != lexer.Identifier {
		p.lex.UnreadToken(tok)
		return nil, false, nil
	}
	v, found := p.scene.IDs.Lookup(typ, tok.Text)
	if !found {
		return nil, false, diag.NewError(tok.Loc, "undefined %s identifier %q", typ, tok.Text)
	}
	return v, true, nil
}

// parseColor reads a Color: identifier substitution, the symbolic
// "<r, g, b>" form, or the named "Color(.R r, .G g, .B b)" form.
func (p *Parser) parseColor() (color.Color, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypeColor); err != nil {
		return color.Color{}, err
	} else if ok {
		return v.(color.Color), nil
	}

	tok, err := p.next()
	if err != nil {
		return color.Color{}, err
	}
	switch {
	case tok.Kind == lexer.LiteralSymbol && tok.Text == "<":
		return p.parseColorComponents("<", ">")
	case tok.Kind == lexer.LiteralType && tok.Text == "Color":
		if _, err := p.expectSymbol("("); err != nil {
			return color.Color{}, err
		}
		return p.parseColorKeywordArgs()
	default:
		return color.Color{}, diag.NewError(tok.Loc, "expected a Color, got %s %q", tok.Kind, tok.Text)
	}
}

// parseColorComponents reads "r, g, b" followed by close, the opening
// delimiter already consumed.
func (p *Parser) parseColorComponents(open, close string) (color.Color, error) {
	r, err := p.parseNumber()
	if err != nil {
		return color.Color{}, err
	}
	if _, err := p.expectSymbol(","); err != nil {
		return color.Color{}, err
	}
	g, err := p.parseNumber()
	if err != nil {
		return color.Color{}, err
	}
	if _, err := p.expectSymbol(","); err != nil {
		return color.Color{}, err
	}
	b, err := p.parseNumber()
	if err != nil {
		return color.Color{}, err
	}
	if _, err := p.expectSymbol(close); err != nil {
		return color.Color{}, err
	}
	return color.Color{R: float32(r), G: float32(g), B: float32(b)}, nil
}

func (p *Parser) parseColorKeywordArgs() (color.Color, error) {
	results, err := p.parseKeywordArgs(
		[]string{"R", "G", "B"},
		map[string]func() (any, error){
			"R": func() (any, error) { return p.parseNumber() },
			"G": func() (any, error) { return p.parseNumber() },
			"B": func() (any, error) { return p.parseNumber() },
		},
		map[string]any{"R": 0.0, "G": 0.0, "B": 0.0},
	)
	if err != nil {
		return color.Color{}, err
	}
	return color.Color{R: float32(results["R"].(float64)), G: float32(results["G"].(float64)), B: float32(results["B"].(float64))}, nil
}

// parsePoint reads a Point: identifier substitution, the symbolic
// "{x, y, z}" form, or the named "Point(.X x, .Y y, .Z z)" form.
func (p *Parser) parsePoint() (geom.Point, error) {
	if v, ok, err := p.parseByIdentifier(scene.TypePoint); err != nil {
		return geom.Point{}, err
	} else if ok {
		return v.(geom.Point), nil
	}

	tok, err := p.next()
	if err != nil {
		return geom.Point{}, err
	}
	switch {
	case tok.Kind == lexer.LiteralSymbol && tok.Text == "{":
		return p.parsePointComponents("}")
	case tok.Kind == lexer.LiteralType && tok.Text == "Point":
		if _, err := p.expectSymbol("("); err != nil {
			return geom.Point{}, err
		}
		return p.parsePointKeywordArgs()
	default:
		return geom.Point{}, diag.NewError(tok.Loc, "expected a Point, got %s %q", tok.Kind, tok.Text)
	}
}

func (p *Parser) parsePointComponents(close string) (geom.Point, error) {
	x, err := p.parseNumber()
	if err != nil {
		return geom.Point{}, err
	}
	if _, err := p.expectSymbol(","); err != nil {
		return geom.Point{}, err
	}
	y, err := p.parseNumber()
	if err != nil {
		return geom.Point{}, err
	}
	if _, err := p.expectSymbol(","); err != nil {
		return geom.Point{}, err
	}
	z, err := p.parseNumber()
	if err != nil {
		return geom.Point{}, err
	}
	if _, err := p.expectSymbol(close); err != nil {
		return geom.Point{}, err
	}
	return geom.NewPoint(x, y, z), nil
}

func (p *Parser) parsePointKeywordArgs() (geom.Point, error) {
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
		return geom.Point{}, err
	}
	return geom.NewPoint(results["X"].(float64), results["Y"].(float64), results["Z"].(float64)), nil
}

// parseList reads a bracketed, comma-separated sequence of generic
// constructors: "[" has already been consumed by the caller. Used both
// directly as a SceneLang List value and, by parseTransformation, as the
// raw representation of a 16-element row-major matrix literal.
func (p *Parser) parseList() ([]any, error) {
	var items []any
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == lexer.LiteralSymbol && tok.Text == "]" {
		return items, nil
	}
	p.lex.UnreadToken(tok)
	for {
		v, _, err := p.parseConstructor()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.LiteralSymbol && tok.Text == "]" {
			return items, nil
		}
		if tok.Kind != lexer.LiteralSymbol || tok.Text != "," {
			return nil, diag.NewError(tok.Loc, "expected ',' or ']' in list, got %s %q", tok.Kind, tok.Text)
		}
	}
}
