package parser

import (
	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/lang/lexer"
)

// parseKeywordArgs parses a comma-separated argument list already inside an
// open paren (the caller has consumed '(') up to and including the closing
// ')'. Arguments may be given positionally, by the order listed in
// positional, until the first keyword (".name value") appears; after that,
// only keyword form is accepted. parsers maps each argument name (keyword
// or positional slot) to the sub-parser that reads its value, and defaults
// seeds every name not supplied by the caller.
func (p *Parser) parseKeywordArgs(positional []string, parsers map[string]func() (any, error), defaults map[string]any) (map[string]any, error) {
	results := make(map[string]any, len(defaults))
	for k, v := range defaults {
		results[k] = v
	}
	explicit := make(map[string]bool)

	posIndex := 0
	seenKeyword := false
	first := true
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.LiteralSymbol && tok.Text == ")" {
			return results, nil
		}
		if !first {
			if tok.Kind != lexer.LiteralSymbol || tok.Text != "," {
				return nil, diag.NewError(tok.Loc, "expected ',' or ')', got %s %q", tok.Kind, tok.Text)
			}
			tok, err = p.next()
			if err != nil {
				return nil, err
			}
			if tok.Kind == lexer.LiteralSymbol && tok.Text == ")" {
				return results, nil
			}
		}
		first = false

		var name string
		if tok.Kind == lexer.Keyword {
			name = tok.Text
			seenKeyword = true
			if _, ok := parsers[name]; !ok {
				return nil, diag.NewError(tok.Loc, "unknown keyword %q", name)
			}
		} else {
			if seenKeyword {
				return nil, diag.NewError(tok.Loc, "positional argument after a keyword argument")
			}
			if posIndex >= len(positional) {
				return nil, diag.NewError(tok.Loc, "too many positional arguments")
			}
			name = positional[posIndex]
			posIndex++
			p.lex.UnreadToken(tok)
		}
		if explicit[name] {
			return nil, diag.NewError(tok.Loc, "keyword %q already supplied", name)
		}
		value, err := parsers[name]()
		if err != nil {
			return nil, err
		}
		results[name] = value
		explicit[name] = true
	}
}
