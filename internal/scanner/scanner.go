package scanner

import (
	"errors"
	"strconv"

	"github.com/leonardinius/golox/internal/loxerrors"
	"github.com/leonardinius/golox/internal/token"
	"github.com/leonardinius/golox/internal/value"
)

// Scanner turns source text into a token stream.
type Scanner interface {
	// Scan returns every token of the input, always terminated by EOF.
	// Lexical errors are reported as they are found and scanning goes on;
	// the returned error joins all of them.
	Scan() ([]token.Token, error)
}

var keywords = map[string]token.TokenType{
	"and":    token.AND,
	"class":  token.CLASS,
	"else":   token.ELSE,
	"false":  token.FALSE,
	"for":    token.FOR,
	"fun":    token.FUN,
	"if":     token.IF,
	"nil":    token.NIL,
	"or":     token.OR,
	"print":  token.PRINT,
	"return": token.RETURN,
	"super":  token.SUPER,
	"this":   token.THIS,
	"true":   token.TRUE,
	"var":    token.VAR,
	"while":  token.WHILE,
}

var singleCharTokens = map[rune]token.TokenType{
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'*': token.STAR,
}

// operators that have an "<op>=" form
var equalsTokens = map[rune][2]token.TokenType{
	'!': {token.BANG, token.BANG_EQUAL},
	'=': {token.EQUAL, token.EQUAL_EQUAL},
	'<': {token.LESS, token.LESS_EQUAL},
	'>': {token.GREATER, token.GREATER_EQUAL},
}

type scanner struct {
	source   []rune
	tokens   []token.Token
	start    int
	current  int
	line     int
	errs     []error
	reporter loxerrors.ErrReporter
}

// NewScanner returns a new Scanner reporting lexical errors to reporter.
// A nil reporter only collects them.
func NewScanner(input string, reporter loxerrors.ErrReporter) Scanner {
	return &scanner{source: []rune(input), line: 1, reporter: reporter}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line))

	return s.tokens, errors.Join(s.errs...)
}

func (s *scanner) scanToken() {
	c := s.advance()

	if t, ok := singleCharTokens[c]; ok {
		s.addToken(t)
		return
	}

	if pair, ok := equalsTokens[c]; ok {
		if s.match('=') {
			s.addToken(pair[1])
		} else {
			s.addToken(pair[0])
		}
		return
	}

	switch {
	case c == '/' && s.match('/'):
		s.lineComment()
	case c == '/' && s.match('*'):
		s.blockComment()
	case c == '/':
		s.addToken(token.SLASH)
	case c == ' ' || c == '\r' || c == '\t' || c == '\n':
	case c == '"':
		s.string()
	case isDigit(c):
		s.number()
	case isAlpha(c):
		s.identifier()
	default:
		s.report(loxerrors.NewScanError(s.line, loxerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c)))
	}
}

func (s *scanner) lineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// blockComment skips a /* ... */ comment. Block comments nest.
func (s *scanner) blockComment() {
	for depth := 1; depth > 0; {
		switch {
		case s.isAtEnd():
			s.reportError(loxerrors.ErrScanUnterminatedComment)
			return
		case s.peek() == '*' && s.peekNext() == '/':
			depth--
			s.current += 2
		case s.peek() == '/' && s.peekNext() == '*':
			depth++
			s.current += 2
		default:
			s.advance()
		}
	}
}

func (s *scanner) string() {
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError(loxerrors.ErrScanUnterminatedString)
		return
	}

	s.advance()

	text := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, value.String(text))
}

func (s *scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a fractional part needs a digit after the '.'
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// a digit run too large for a float64 is still a number: ParseFloat
	// returns ±Inf with ErrRange
	n, err := strconv.ParseFloat(string(s.source[s.start:s.current]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.reportError(err)
		return
	}

	s.addTokenLiteral(token.NUMBER, value.Number(n))
}

func (s *scanner) identifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}

	tokenType, ok := keywords[string(s.source[s.start:s.current])]
	if !ok {
		tokenType = token.IDENTIFIER
	}
	s.addToken(tokenType)
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	c := s.source[s.current]
	if c == '\n' {
		s.line++
	}
	s.current++
	return c
}

func (s *scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal value.Value) {
	lexeme := string(s.source[s.start:s.current])
	s.tokens = append(s.tokens, token.NewToken(t, lexeme, literal, s.line))
}

func (s *scanner) reportError(err error) {
	s.report(loxerrors.NewScanError(s.line, err, ""))
}

func (s *scanner) report(err error) {
	s.errs = append(s.errs, err)
	if s.reporter != nil {
		s.reporter.ReportError(err)
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

var _ Scanner = (*scanner)(nil)
