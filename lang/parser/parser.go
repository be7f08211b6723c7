// Package parser turns a SceneLang token stream into a populated
// scene.Scene: recursive descent with one token of lookahead, mirroring
// the grammar in spec.md §4.2. Every constructor parser attempts
// identifier substitution first, then falls back to building the value
// from scratch.
package parser

import (
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/scene"
)

// Parser drives one SceneLang source through to a scene.Scene.
type Parser struct {
	lex   *lexer.Lexer
	scene *scene.Scene
	sink  scene.DumpSink

	imageSizeSet bool
}

// New returns a Parser reading tokens from lex, populating sc, and routing
// DUMP output to sink.
func New(lex *lexer.Lexer, sc *scene.Scene, sink scene.DumpSink) *Parser {
	return &Parser{lex: lex, scene: sc, sink: sink}
}

// ParseScene consumes the entire token stream, executing each top-level
// command against the Parser's Scene, and returns the first error
// encountered (interpreter errors are fail-fast per spec.md §7).
func ParseScene(lex *lexer.Lexer, sc *scene.Scene, sink scene.DumpSink) (*scene.Scene, error) {
	p := New(lex, sc, sink)
	for {
		tok, err := p.lex.ReadToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.StopToken {
			return p.scene, nil
		}
		if tok.Kind != lexer.Command {
			return nil, diag.NewError(tok.Loc, "expected a top-level command, got %s %q", tok.Kind, tok.Text)
		}
		if err := p.dispatchTopLevel(tok); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) dispatchTopLevel(tok lexer.Token) error {
	switch tok.Text {
	case "SET":
		return p.parseSet()
	case "UNSET":
		return p.parseUnset()
	case "SPAWN":
		return p.parseSpawn()
	case "USING":
		return p.parseUsing()
	case "DUMP":
		return p.parseDump()
	default:
		return diag.NewError(tok.Loc, "%q is not a top-level command", tok.Text)
	}
}

// next reads the next token, propagating lexer errors.
func (p *Parser) next() (lexer.Token, error) { return p.lex.ReadToken() }

// expectIdentifier reads the next token and requires it be an Identifier.
func (p *Parser) expectIdentifier() (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != lexer.Identifier {
		return tok, diag.NewError(tok.Loc, "expected an identifier, got %s %q", tok.Kind, tok.Text)
	}
	return tok, nil
}

// expectSymbol reads the next token and requires it be the given
// LiteralSymbol text.
func (p *Parser) expectSymbol(sym string) (lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != lexer.LiteralSymbol || tok.Text != sym {
		return tok, diag.NewError(tok.Loc, "expected %q, got %s %q", sym, tok.Kind, tok.Text)
	}
	return tok, nil
}

// parseSet implements `SET id constr id constr ...`.
func (p *Parser) parseSet() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Kind != lexer.Identifier {
			p.lex.UnreadToken(tok)
			return nil
		}
		name, loc := tok.Text, tok.Loc
		value, typ, err := p.parseConstructor()
		if err != nil {
			return err
		}
		if err := p.scene.IDs.Set(typ, name, value, loc); err != nil {
			return err
		}
	}
}

// parseUnset implements `UNSET id id ...`.
func (p *Parser) parseUnset() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Kind != lexer.Identifier {
			p.lex.UnreadToken(tok)
			return nil
		}
		p.scene.IDs.Forget(tok.Text)
	}
}
