/*
File    : frostri-lang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for L.

The parser converts the Lexer's token stream into a Program AST. Parsing
never aborts on a syntax error: it records a message and attempts to
recover at the next statement boundary, so a single call to ParseProgram
can surface every syntax error in the source, not just the first.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/FRostri/frostri-lang/lexer"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser drives Pratt-style expression parsing over a Lexer's token stream.
// CurrentToken and PeekToken give one token of lookahead beyond the current
// position, which is all the grammar in §4.2 requires.
type Parser struct {
	lex *lexer.Lexer

	CurrentToken lexer.Token
	PeekToken    lexer.Token

	errors []string

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser reading from lex and registers every prefix/infix
// parse function the grammar needs. It primes CurrentToken/PeekToken with
// two calls to nextToken so the parser starts already looking at the first
// real token.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex, errors: []string{}}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolean)
	p.registerPrefix(lexer.FALSE, p.parseBoolean)
	p.registerPrefix(lexer.NEGATION, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.DIVISION, p.parseInfixExpression)
	p.registerInfix(lexer.MULTIPLICATION, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LE, p.parseInfixExpression)
	p.registerInfix(lexer.GE, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Errors returns every syntax error accumulated so far, in the order they
// were encountered. A non-empty result means the Program returned by
// ParseProgram must not be evaluated.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.CurrentToken = p.PeekToken
	p.PeekToken = p.lex.NextToken()
}

// ParseProgram consumes the entire token stream and returns the resulting
// Program. It never returns nil, even when errors were recorded; callers
// must check Errors() before evaluating the result.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for p.CurrentToken.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() Statement {
	switch p.CurrentToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.CurrentToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}

	stmt.Name = &Identifier{Token: p.CurrentToken, Value: p.CurrentToken.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if p.PeekToken.Type == lexer.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.CurrentToken}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.PeekToken.Type == lexer.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.CurrentToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.PeekToken.Type == lexer.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the core of the Pratt algorithm: parse a prefix
// expression for the current token, then repeatedly fold in infix
// expressions as long as the next token binds tighter than precedence.
func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.CurrentToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.CurrentToken)
		return nil
	}
	leftExp := prefix()

	for p.PeekToken.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.PeekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.CurrentToken, Value: p.CurrentToken.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: p.CurrentToken}

	value, err := strconv.ParseInt(p.CurrentToken.Literal, 0, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("Could not parse %q as integer", p.CurrentToken.Literal))
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() Expression {
	lit := &FloatLiteral{Token: p.CurrentToken}

	value, err := strconv.ParseFloat(p.CurrentToken.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("Could not parse %q as float", p.CurrentToken.Literal))
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.CurrentToken, Value: p.CurrentToken.Literal}
}

func (p *Parser) parseBoolean() Expression {
	return &Boolean{Token: p.CurrentToken, Value: p.CurrentToken.Type == lexer.TRUE}
}

func (p *Parser) parsePrefixExpression() Expression {
	expression := &Prefix{Token: p.CurrentToken, Operator: p.CurrentToken.Literal}

	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)

	return expression
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	expression := &Infix{
		Token:    p.CurrentToken,
		Left:     left,
		Operator: p.CurrentToken.Literal,
	}

	precedence := p.currentPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) parseIfExpression() Expression {
	expression := &If{Token: p.CurrentToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlock()

	if p.PeekToken.Type == lexer.ELSE {
		p.nextToken()

		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlock()
	}

	return expression
}

// parseBlock parses statements up to a closing RBRACE. Running off the end
// of input first is a syntax error, not an empty block — the caller (the
// REPL's accumulating buffer in particular) relies on this error to keep
// reading more lines instead of silently evaluating a truncated body.
func (p *Parser) parseBlock() *Block {
	block := &Block{Token: p.CurrentToken, Statements: []Statement{}}

	p.nextToken()

	for p.CurrentToken.Type != lexer.RBRACE && p.CurrentToken.Type != lexer.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.CurrentToken.Type == lexer.EOF {
		p.unterminatedBlockError()
	}

	return block
}

// parseFunctionLiteral handles both "fun(...) {...}" and the named form
// "fun name(...) {...}"; the name, if present, is an identifier embedded in
// the Function node and is not bound into any environment by parsing alone.
func (p *Parser) parseFunctionLiteral() Expression {
	lit := &Function{Token: p.CurrentToken}

	if p.PeekToken.Type == lexer.IDENT {
		p.nextToken()
		lit.Ident = &Identifier{Token: p.CurrentToken, Value: p.CurrentToken.Literal}
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlock()

	return lit
}

func (p *Parser) parseFunctionParameters() []*Identifier {
	identifiers := []*Identifier{}

	if p.PeekToken.Type == lexer.RPAREN {
		p.nextToken()
		return identifiers
	}

	p.nextToken()

	identifiers = append(identifiers, &Identifier{Token: p.CurrentToken, Value: p.CurrentToken.Literal})

	for p.PeekToken.Type == lexer.COMMA {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &Identifier{Token: p.CurrentToken, Value: p.CurrentToken.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return identifiers
}

func (p *Parser) parseCallExpression(function Expression) Expression {
	exp := &Call{Token: p.CurrentToken, Function: function}
	exp.Arguments = p.parseExpressionList(lexer.RPAREN)
	return exp
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := []Expression{}

	if p.PeekToken.Type == end {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.PeekToken.Type == lexer.COMMA {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// expectPeek asserts that PeekToken has type t, advancing past it on
// success. On failure it records a syntax error and leaves the token
// position unchanged, letting ParseProgram's statement loop recover.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.PeekToken.Type == t {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("The next token was expected to be %s, but %s was obtained.", t, p.PeekToken.Type)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(t lexer.Token) {
	msg := fmt.Sprintf("No function found for parse '%s'", t.Literal)
	p.errors = append(p.errors, msg)
}

// unterminatedBlockError records that a block never saw its closing RBRACE
// before EOF, mirroring peekError's "expected X, but Y was obtained" shape.
func (p *Parser) unterminatedBlockError() {
	msg := fmt.Sprintf("The next token was expected to be %s, but %s was obtained.", lexer.RBRACE, lexer.EOF)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.PeekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currentPrecedence() int {
	if pr, ok := precedences[p.CurrentToken.Type]; ok {
		return pr
	}
	return LOWEST
}
