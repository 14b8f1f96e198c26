package lox

import "fmt"

// ParseError describes malformed syntax at Token.
type ParseError struct {
	Token   Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error %s: %s", e.Token.Line, errorLocation(e.Token), e.Message)
}

func (p *Parser) errorAt(tok Token, msg string) *ParseError {
	return &ParseError{Token: tok, Message: msg}
}

func (p *Parser) report(err *ParseError) {
	p.reporter.Error(err.Token.Line, err.Token.Column, errorLocation(err.Token), err.Message)
}

func errorLocation(tok Token) string {
	if tok.Type == TokenEOF {
		return "at end"
	}
	return fmt.Sprintf("at '%s'", tok.Lexeme)
}
