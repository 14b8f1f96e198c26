package lox

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Scanner turns source text into tokens in a single left-to-right pass.
type Scanner struct {
	source   string
	reporter Reporter
	tokens   []Token

	start   int
	current int

	line        int
	column      int
	startLine   int
	startColumn int
}

func NewScanner(source string, reporter Reporter) *Scanner {
	if reporter == nil {
		reporter = NewDiagnostics(nil)
	}
	return &Scanner{source: source, reporter: reporter, line: 1}
}

// Scan is shorthand for NewScanner(source, reporter).ScanTokens().
func Scan(source string, reporter Reporter) []Token {
	return NewScanner(source, reporter).ScanTokens()
}

// ScanTokens scans the whole source. The result always ends with exactly one
// EOF token; characters that cannot start a token are reported and skipped.
func (s *Scanner) ScanTokens() []Token {
	for !s.atEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column + 1
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: TokenEOF, Line: s.line, Column: s.column + 1})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case '.':
		s.addToken(TokenDot)
	case '-':
		s.addToken(TokenMinus)
	case '+':
		s.addToken(TokenPlus)
	case ';':
		s.addToken(TokenSemicolon)
	case '*':
		s.addToken(TokenStar)
	case '!':
		s.addToken(s.pick('=', TokenBangEqual, TokenBang))
	case '=':
		s.addToken(s.pick('=', TokenEqualEqual, TokenEqual))
	case '<':
		s.addToken(s.pick('=', TokenLessEqual, TokenLess))
	case '>':
		s.addToken(s.pick('=', TokenGreaterEqual, TokenGreater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(TokenSlash)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.newline()
	case '"':
		s.readString()
	default:
		switch {
		case isDigit(c):
			s.readNumber()
		case isAlpha(c):
			s.readIdentifier()
		default:
			s.reporter.Error(s.line, s.startColumn, "", "Unexpected character.")
		}
	}
}

func (s *Scanner) readString() {
	for s.peek() != '"' && !s.atEnd() {
		if s.advance() == '\n' {
			s.newline()
		}
	}
	if s.atEnd() {
		s.reporter.Error(s.line, s.column, "", "Unterminated string.")
		return
	}
	s.advance()

	interior := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(TokenString, NewString(interior))
}

func (s *Scanner) readNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	// A trailing '.' is left for the next token.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	f, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	// Out of range literals saturate to infinity.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.reporter.Error(s.line, s.startColumn, "", "Invalid number literal.")
		return
	}
	s.addLiteralToken(TokenNumber, NewNumber(f))
}

func (s *Scanner) readIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if tt, ok := keywords[text]; ok {
		s.addToken(tt)
		return
	}
	s.addToken(TokenIdentifier)
}

func (s *Scanner) addToken(tt TokenType) {
	s.addLiteralToken(tt, NewNil())
}

// addLiteralToken records the token at the line where it ends. A token that
// spans lines gets column 1, where its text resumes on that line.
func (s *Scanner) addLiteralToken(tt TokenType, literal Value) {
	column := s.startColumn
	if s.line != s.startLine {
		column = 1
	}
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
		Column:  column,
	})
}

func (s *Scanner) pick(next rune, two, one TokenType) TokenType {
	if s.match(next) {
		return two
	}
	return one
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += w
	s.column++
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.atEnd() {
		return false
	}
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	if r != expected {
		return false
	}
	s.current += w
	s.column++
	return true
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.atEnd() {
		return 0
	}
	_, w := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+w >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+w:])
	return r
}

func (s *Scanner) newline() {
	s.line++
	s.column = 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
