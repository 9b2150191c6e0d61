// File: parser.go
// Title: mLang Recursive Descent Parser
// Description: Implements the parsing phase of mLang compilation. Converts
//              the token stream into an Abstract Syntax Tree using recursive
//              descent with one token of lookahead. Parsing is fail-fast:
//              the first mismatch aborts with a SyntaxError and no recovery
//              is attempted.
// Author: msto63
// Version: v0.1.1
// Created: 2026-08-14
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-14 v0.1.0: Initial parser implementation
// - 2026-08-20 v0.1.1: Report end-of-input distinctly from token mismatches

package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/msto63/mLang/ast"
)

// Parser implements recursive descent parsing for mLang
type Parser struct {
	lexer    *Lexer
	current  Token // Current token (one token of lookahead)
	previous Token // Previous token
	logger   *logrus.Entry
	options  Options
}

// Options configures parser behavior
type Options struct {
	// Logger for parser operations (optional, defaults to the standard logger)
	Logger *logrus.Logger

	// MaxSourceSize limits string input length in bytes (default: 1 MiB)
	MaxSourceSize int
}

// SyntaxError represents a parsing failure. The first mismatch between
// the grammar and the token stream produces one; parsing stops there.
type SyntaxError struct {
	Message string
	Token   Token // offending token; TokenEOF when the input ended early
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// New creates a new mLang parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.MaxSourceSize == 0 {
		opts.MaxSourceSize = 1 << 20
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "mlang-parser"),
		options: opts,
	}, nil
}

// Parse reads the entire rune source and returns the program AST.
// The whole input must parse; trailing tokens after the last global
// item are a SyntaxError.
func (p *Parser) Parse(source io.RuneReader) (*ast.Program, error) {
	p.lexer = NewLexer(source)
	p.advance() // Load first token

	p.logger.Debug("parsing started")

	program, err := p.parseProgram()
	if err != nil {
		p.logger.WithField("error", err.Error()).Warn("parsing failed")
		return nil, err
	}

	p.logger.WithField("items", len(program.Items)).Debug("parsing completed")
	return program, nil
}

// ParseString parses mLang source held in a string
func (p *Parser) ParseString(source string) (*ast.Program, error) {
	if len(source) > p.options.MaxSourceSize {
		return nil, fmt.Errorf("source exceeds maximum size: %d > %d",
			len(source), p.options.MaxSourceSize)
	}
	return p.Parse(strings.NewReader(source))
}

// parseProgram parses the whole token stream into a Program node
func (p *Parser) parseProgram() (*ast.Program, error) {
	pos := p.currentPosition()

	items, err := parseRepeated(p, TokenEOF, p.parseGlobalItem)
	if err != nil {
		return nil, err
	}

	return &ast.Program{Items: items, Pos: pos}, nil
}

// parseGlobalItem parses one top-level item. Only function definitions
// may appear at the top level.
func (p *Parser) parseGlobalItem() (ast.Node, error) {
	switch p.current.Type {
	case TokenFunction:
		return p.parseFunctionDefinition()
	default:
		return nil, p.unexpected()
	}
}

// parseFunctionDefinition parses
// 'function' Identifier '(' Parameter* ')' '->' Type Block
func (p *Parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	pos := p.currentPosition()

	if _, err := p.expect(TokenFunction); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLeftParen); err != nil {
		return nil, err
	}

	parameters, err := parseRepeated(p, TokenRightParen, p.parseParameterDeclaration)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenArrow); err != nil {
		return nil, err
	}

	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{
		Name:       name.Text,
		Parameters: parameters,
		ReturnType: returnType,
		Body:       body,
		Pos:        pos,
	}, nil
}

// parseParameterDeclaration parses Identifier ':' Type [','].
// The comma after a parameter is optional, including after the last one.
func (p *Parser) parseParameterDeclaration() (*ast.ParameterDeclaration, error) {
	pos := p.currentPosition()

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}

	declaredType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenComma {
		p.advance()
	}

	return &ast.ParameterDeclaration{
		Name:         name.Text,
		DeclaredType: declaredType,
		Pos:          pos,
	}, nil
}

// parseBlock parses '{' Statement* '}' into a List node
func (p *Parser) parseBlock() (*ast.List, error) {
	brace, err := p.expect(TokenLeftBrace)
	if err != nil {
		return nil, err
	}

	statements, err := parseRepeated(p, TokenRightBrace, p.parseStatement)
	if err != nil {
		return nil, err
	}

	return &ast.List{Items: statements, Pos: tokenPosition(brace)}, nil
}

// parseStatement dispatches on the lookahead token
func (p *Parser) parseStatement() (ast.Node, error) {
	if p.current.Type == TokenLet {
		return p.parseVariableDefinition()
	}
	return p.parseExpressionStatement()
}

// parseVariableDefinition parses
// 'let' ['mut'] Identifier ':' Type '=' Expression ';'
func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	pos := p.currentPosition()

	if _, err := p.expect(TokenLet); err != nil {
		return nil, err
	}

	mutable := false
	if p.current.Type == TokenMut {
		mutable = true
		p.advance()
	}

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}

	declaredType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEquals); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}

	return &ast.VariableDefinition{
		Name:         name.Text,
		Mutable:      mutable,
		DeclaredType: declaredType,
		Value:        value,
		Pos:          pos,
	}, nil
}

// parseExpressionStatement parses Expression [';']. A trailing semicolon
// discards the expression value, which is recorded by wrapping the
// expression in an IgnoreValue node. Without the semicolon the bare
// expression stands as the statement, as in value position at the end
// of a block.
func (p *Parser) parseExpressionStatement() (ast.Node, error) {
	pos := p.currentPosition()

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenSemicolon {
		p.advance()
		return &ast.IgnoreValue{Expr: expr, Pos: pos}, nil
	}

	return expr, nil
}

// parseExpression parses an expression. Integer literals are the only
// expression form so far; this is the single place the expression
// grammar grows.
func (p *Parser) parseExpression() (ast.Expression, error) {
	switch p.current.Type {
	case TokenInteger:
		literal := &ast.IntegerLiteral{
			Value: p.current.IntValue,
			Pos:   p.currentPosition(),
		}
		p.advance()
		return literal, nil
	default:
		return nil, p.unexpected()
	}
}

// parseType parses one of the primitive type keywords
func (p *Parser) parseType() (*ast.Type, error) {
	primitive, ok := tokenPrimitives[p.current.Type]
	if !ok {
		return nil, p.unexpected()
	}

	typ := &ast.Type{Primitive: primitive, Pos: p.currentPosition()}
	p.advance()
	return typ, nil
}

// parseRepeated parses items until the end token appears in lookahead,
// then consumes the end token. Running out of input before end is a
// SyntaxError; with end set to TokenEOF the loop runs to the end of the
// stream, which is how Parse guarantees full input consumption.
func parseRepeated[T ast.Node](p *Parser, end TokenType, parseItem func() (T, error)) ([]T, error) {
	items := make([]T, 0, 4)

	for p.current.Type != end {
		if p.current.Type == TokenEOF {
			return nil, p.unexpected()
		}

		item, err := parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	p.advance() // consume end token
	return items, nil
}

// tokenPrimitives maps type keyword tokens to AST primitives
var tokenPrimitives = map[TokenType]ast.Primitive{
	TokenI8:         ast.PrimitiveI8,
	TokenI16:        ast.PrimitiveI16,
	TokenI32:        ast.PrimitiveI32,
	TokenI64:        ast.PrimitiveI64,
	TokenIPtr:       ast.PrimitiveIPtr,
	TokenU8:         ast.PrimitiveU8,
	TokenU16:        ast.PrimitiveU16,
	TokenU32:        ast.PrimitiveU32,
	TokenU64:        ast.PrimitiveU64,
	TokenUPtr:       ast.PrimitiveUPtr,
	TokenF32:        ast.PrimitiveF32,
	TokenF64:        ast.PrimitiveF64,
	TokenBool:       ast.PrimitiveBool,
	TokenCharType:   ast.PrimitiveChar,
	TokenStringType: ast.PrimitiveString,
}

// Utility methods

// advance moves to the next token
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

// expect consumes and returns the current token when it has the wanted
// type, and fails with a SyntaxError otherwise
func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.current.Type != tt {
		return Token{}, p.unexpected()
	}

	tok := p.current
	p.advance()
	return tok, nil
}

// unexpected builds the SyntaxError for the current lookahead token
func (p *Parser) unexpected() *SyntaxError {
	if p.current.Type == TokenEOF {
		return &SyntaxError{Message: "unexpected end of input", Token: p.current}
	}

	return &SyntaxError{
		Message: fmt.Sprintf("unexpected token: %s", p.current),
		Token:   p.current,
	}
}

// currentPosition returns the current token's AST position
func (p *Parser) currentPosition() ast.Position {
	return tokenPosition(p.current)
}

// tokenPosition converts token coordinates to an AST position
func tokenPosition(tok Token) ast.Position {
	return ast.Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Position,
	}
}
