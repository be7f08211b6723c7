// Package lexer turns SceneLang source text into a stream of located
// tokens, the way the teacher's load package turns OBJ/MTL source text
// into structured records — except char-by-char rather than line-by-line,
// since SceneLang's grammar is not line-oriented.
package lexer

import "github.com/ochrevis/slray/diag"

// Kind classifies a Token. Command and LiteralType are closed sets,
// checked at lex time so the parser never has to re-validate spelling;
// Keyword is a dotted word whose validity depends on which constructor is
// being parsed, so the lexer accepts any word there and leaves validation
// to the parser.
type Kind int

const (
	// StopToken marks end of input.
	StopToken Kind = iota
	// Keyword is a dotted word: .name. Its Text holds the word without
	// the leading dot, case preserved.
	Keyword
	// Command is one of the top-level or transform/CSG statement words.
	Command
	// LiteralType is a mixed-case type name (Color, Shape, Pcg, ...).
	LiteralType
	// Identifier is a user-chosen name, to be looked up or defined.
	Identifier
	// LiteralNumber is a floating point literal.
	LiteralNumber
	// LiteralString is a double-quoted string literal.
	LiteralString
	// LiteralSymbol is single-character syntax: < > { } [ ] ( ) , * / + - ^ =
	LiteralSymbol
	// MathExpression is the raw text between a pair of $ delimiters,
	// evaluated by the parser against the identifier table in scope.
	MathExpression
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case StopToken:
		return "end of input"
	case Keyword:
		return "keyword"
	case Command:
		return "command"
	case LiteralType:
		return "type name"
	case Identifier:
		return "identifier"
	case LiteralNumber:
		return "number"
	case LiteralString:
		return "string"
	case LiteralSymbol:
		return "symbol"
	case MathExpression:
		return "math expression"
	default:
		return "unknown token"
	}
}

// Token is one lexical unit together with its source location.
type Token struct {
	Kind Kind
	Text string  // exact spelling: identifier/keyword name, symbol, raw math expression text
	Num  float64 // populated only for LiteralNumber
	Loc  diag.Location
}

// commands is the closed set of all-uppercase command words.
var commands = map[string]bool{
	"SET": true, "UNSET": true, "SPAWN": true, "USING": true, "DUMP": true,
	"ROTATE": true, "TRANSLATE": true, "SCALE": true,
	"UNITE": true, "INTERSECT": true, "DIFF": true, "FUSE": true,
	"LOAD": true, "TIME": true,
}

// literalTypes is the closed set of mixed-case type names.
var literalTypes = map[string]bool{
	"Color": true, "Point": true, "List": true, "Transformation": true,
	"Material": true, "Brdf": true, "Pigment": true, "Shape": true,
	"Light": true, "Image": true, "Renderer": true, "Camera": true,
	"Pcg": true, "Tracer": true,
}

// isAllUpper reports whether word contains no lowercase letters.
func isAllUpper(word string) bool {
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

// classifyWord returns the Kind a bare word should be lexed as, and an
// error if the word is all-uppercase or capitalized-mixed-case but not in
// its respective closed set.
func classifyWord(loc diag.Location, word string) (Kind, error) {
	first := rune(word[0])
	switch {
	case first == '_' || (first >= 'a' && first <= 'z'):
		return Identifier, nil
	case isAllUpper(word):
		if commands[word] {
			return Command, nil
		}
		return 0, diag.NewError(loc, "%q is not a recognized command", word)
	default:
		if literalTypes[word] {
			return LiteralType, nil
		}
		return 0, diag.NewError(loc, "%q is not a recognized type name", word)
	}
}
