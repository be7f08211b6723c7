package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/ochrevis/slray/diag"
)

// tabWidth is the column a tab character advances to the next multiple of,
// matching how a terminal displays SceneLang source for error reporting.
const tabWidth = 8

// Lexer scans one rune at a time from its source, with a single rune of
// pushback (needed to decide where an identifier/number/symbol ends) and a
// single Token of pushback (needed by the parser's one-token lookahead).
type Lexer struct {
	r    *bufio.Reader
	file string

	line, col int
	pending   rune
	havePend  bool

	savedTok  Token
	haveToken bool
}

// New returns a Lexer reading SceneLang source from r, reporting locations
// under the given file name (used only for diagnostics).
func New(r io.Reader, file string) *Lexer {
	return &Lexer{r: bufio.NewReader(r), file: file, line: 1, col: 1}
}

// UnreadToken pushes tok back so the next ReadToken call returns it again.
// Only one token of pushback is supported, matching the parser's one-token
// lookahead grammar.
func (l *Lexer) UnreadToken(tok Token) {
	l.savedTok, l.haveToken = tok, true
}

func (l *Lexer) loc() diag.Location { return diag.Location{File: l.file, Line: l.line, Col: l.col} }

// nextRune reads the next rune, tracking line/column, or returns io.EOF.
func (l *Lexer) nextRune() (rune, error) {
	if l.havePend {
		l.havePend = false
		return l.advance(l.pending), nil
	}
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return l.advance(ch), nil
}

func (l *Lexer) advance(ch rune) rune {
	switch ch {
	case '\n':
		l.line++
		l.col = 1
	case '\t':
		l.col = ((l.col-1)/tabWidth+1)*tabWidth + 1
	default:
		l.col++
	}
	return ch
}

func (l *Lexer) unreadRune(ch rune) {
	l.pending, l.havePend = ch, true
	switch ch {
	case '\n':
		l.line--
	default:
		l.col--
	}
}

// ReadToken returns the next token, or a StopToken at end of input.
func (l *Lexer) ReadToken() (Token, error) {
	if l.haveToken {
		l.haveToken = false
		return l.savedTok, nil
	}
	if err := l.skipWhitespaceAndComments(); err != nil {
		if err == io.EOF {
			return Token{Kind: StopToken, Loc: l.loc()}, nil
		}
		return Token{}, err
	}

	start := l.loc()
	ch, err := l.nextRune()
	if err != nil {
		if err == io.EOF {
			return Token{Kind: StopToken, Loc: start}, nil
		}
		return Token{}, err
	}

	switch {
	case ch == '"':
		return l.lexString(start)
	case ch == '$':
		return l.lexMathExpression(start)
	case ch == '.':
		return l.lexKeyword(start)
	case ch == '-':
		nxt, nerr := l.nextRune()
		if nerr == nil && unicode.IsDigit(nxt) {
			return l.lexNumber(start, string(ch)+string(nxt))
		}
		if nerr == nil {
			l.unreadRune(nxt)
		}
		return Token{Kind: LiteralSymbol, Text: "-", Loc: start}, nil
	case isSymbol(ch):
		return Token{Kind: LiteralSymbol, Text: string(ch), Loc: start}, nil
	case unicode.IsDigit(ch):
		return l.lexNumber(start, string(ch))
	case isWordStart(ch):
		l.unreadRune(ch)
		return l.lexWord(start)
	default:
		return Token{}, diag.NewError(start, "unexpected character %q", ch)
	}
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		ch, err := l.nextRune()
		if err != nil {
			return err
		}
		switch {
		case ch == '#':
			for {
				c, err := l.nextRune()
				if err != nil {
					return err
				}
				if c == '\n' {
					break
				}
			}
		case unicode.IsSpace(ch):
			// consumed
		default:
			l.unreadRune(ch)
			return nil
		}
	}
}

func isSymbol(ch rune) bool {
	return strings.ContainsRune("<>{}[](),*/+^=", ch)
}

func isWordStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isWordPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func (l *Lexer) lexWord(start diag.Location) (Token, error) {
	word := l.scanWord()
	kind, err := classifyWord(start, word)
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: kind, Text: word, Loc: start}, nil
}

func (l *Lexer) scanWord() string {
	var sb strings.Builder
	for {
		ch, err := l.nextRune()
		if err != nil {
			break
		}
		if !isWordPart(ch) {
			l.unreadRune(ch)
			break
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// lexKeyword scans a dotted word: the '.' has already been consumed by
// ReadToken. Validity of the name is checked by the parser, not here,
// since the same dotted-word syntax names both field setters (.x) and
// type variant selectors (.Sphere).
func (l *Lexer) lexKeyword(start diag.Location) (Token, error) {
	word := l.scanWord()
	if word == "" {
		return Token{}, diag.NewError(start, "expected a name after '.'")
	}
	return Token{Kind: Keyword, Text: word, Loc: start}, nil
}

// lexNumber continues a number literal whose seed text (a leading digit,
// or "-" followed by a digit) has already been consumed by ReadToken.
func (l *Lexer) lexNumber(start diag.Location, seed string) (Token, error) {
	var sb strings.Builder
	sb.WriteString(seed)
	seenDigit := strings.ContainsAny(seed, "0123456789")
	seenDot, seenExp := false, false

	ch, err := l.nextRune()
	for err == nil {
		switch {
		case unicode.IsDigit(ch):
			seenDigit = true
			sb.WriteRune(ch)
		case ch == '.' && !seenDot && !seenExp:
			seenDot = true
			sb.WriteRune(ch)
		case (ch == 'e' || ch == 'E') && !seenExp && seenDigit:
			seenExp = true
			sb.WriteRune(ch)
			ch, err = l.nextRune()
			if err == nil && (ch == '+' || ch == '-') {
				sb.WriteRune(ch)
				ch, err = l.nextRune()
			}
			continue
		default:
			l.unreadRune(ch)
			goto done
		}
		ch, err = l.nextRune()
	}
done:
	if !seenDigit {
		return Token{}, diag.NewError(start, "invalid number literal %q", sb.String())
	}
	val, perr := strconv.ParseFloat(sb.String(), 64)
	if perr != nil {
		return Token{}, diag.NewError(start, "invalid number literal %q: %v", sb.String(), perr)
	}
	return Token{Kind: LiteralNumber, Text: sb.String(), Num: val, Loc: start}, nil
}

func (l *Lexer) lexString(start diag.Location) (Token, error) {
	var sb strings.Builder
	for {
		ch, err := l.nextRune()
		if err != nil {
			return Token{}, diag.NewError(start, "unterminated string literal")
		}
		if ch == '"' {
			return Token{Kind: LiteralString, Text: sb.String(), Loc: start}, nil
		}
		if ch == '\\' {
			esc, err := l.nextRune()
			if err != nil {
				return Token{}, diag.NewError(start, "unterminated string literal")
			}
			switch esc {
			case '"', '\\':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteRune('\n')
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(ch)
	}
}

// lexMathExpression scans the raw text between a pair of $ delimiters, the
// opening one already consumed by ReadToken. The parser evaluates this
// text later against a whitelist of arithmetic operations and the
// identifier table in scope.
func (l *Lexer) lexMathExpression(start diag.Location) (Token, error) {
	var sb strings.Builder
	for {
		ch, err := l.nextRune()
		if err != nil {
			return Token{}, diag.NewError(start, "unterminated math expression")
		}
		if ch == '$' {
			return Token{Kind: MathExpression, Text: sb.String(), Loc: start}, nil
		}
		sb.WriteRune(ch)
	}
}
