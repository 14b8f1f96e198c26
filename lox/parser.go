package lox

import "errors"

// Parser builds statements from a token sequence by recursive descent.
//
//	program     → declaration* EOF
//	declaration → varDecl | statement
//	varDecl     → "var" IDENTIFIER ( "=" expression )? ";"
//	statement   → exprStmt | ifStmt | printStmt | block
//	ifStmt      → "if" "(" expression ")" statement ( "else" statement )?
//	block       → "{" declaration* "}"
//	expression  → assignment
//	assignment  → IDENTIFIER "=" assignment | logic_or
//	logic_or    → logic_and ( "or" logic_and )*
//	logic_and   → equality ( "and" equality )*
//	equality    → comparison ( ( "!=" | "==" ) comparison )*
//	comparison  → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term        → factor ( ( "-" | "+" ) factor )*
//	factor      → unary ( ( "/" | "*" ) unary )*
//	unary       → ( "!" | "-" ) unary | primary
//	primary     → NUMBER | STRING | "true" | "false" | "nil"
//	            | IDENTIFIER | "(" expression ")"
type Parser struct {
	tokens   []Token
	current  int
	reporter Reporter
}

// NewParser returns a parser over tokens, which must end with an EOF token as
// produced by the Scanner.
func NewParser(tokens []Token, reporter Reporter) *Parser {
	if reporter == nil {
		reporter = NewDiagnostics(nil)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(append([]Token(nil), tokens...), Token{Type: TokenEOF, Line: line})
	}
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse is shorthand for NewParser(tokens, reporter).Parse().
func Parse(tokens []Token, reporter Reporter) []Stmt {
	return NewParser(tokens, reporter).Parse()
}

// Parse returns every statement that parsed cleanly. A malformed statement is
// reported, skipped up to the next statement boundary, and left out.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) declaration() Stmt {
	var (
		stmt Stmt
		err  error
	)
	if p.match(TokenVar) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			p.report(perr)
		}
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenEqual) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(TokenPrint):
		return p.printStatement()
	case p.match(TokenLeftBrace):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: statements}, nil
	case p.match(TokenIf):
		return p.ifStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: value}, nil
}

func (p *Parser) block() ([]Stmt, error) {
	statements := []Stmt{}
	for !p.check(TokenRightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := p.consume(TokenRightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenRightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(TokenElse) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expr: expr}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(TokenEqual) {
		return expr, nil
	}

	equals := p.previous()
	// Recurse rather than loop: assignment is right-associative.
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if variable, ok := expr.(*VariableExpr); ok {
		return &AssignExpr{Name: variable.Name, Value: value}, nil
	}
	return nil, p.errorAt(equals, "Invalid assignment target.")
}

func (p *Parser) or() (Expr, error) {
	return p.logical(p.and, TokenOr)
}

func (p *Parser) and() (Expr, error) {
	return p.logical(p.equality, TokenAnd)
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, TokenSlash, TokenStar)
}

// binary folds a left-associative chain of operands parsed by next.
func (p *Parser) binary(next func() (Expr, error), operators ...TokenType) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) logical(next func() (Expr, error), operator TokenType) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(operator) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(TokenFalse):
		return &LiteralExpr{Value: NewBool(false)}, nil
	case p.match(TokenTrue):
		return &LiteralExpr{Value: NewBool(true)}, nil
	case p.match(TokenNil):
		return &LiteralExpr{Value: NewNil()}, nil
	case p.match(TokenNumber, TokenString):
		return &LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(TokenIdentifier):
		return &VariableExpr{Name: p.previous()}, nil
	case p.match(TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "Expect expression.")
}

// synchronize discards tokens until just after a ';' or just before a
// keyword that starts a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == TokenSemicolon {
			return
		}
		switch p.peek().Type {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) consume(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), msg)
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}
