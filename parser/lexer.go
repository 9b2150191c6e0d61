// File: lexer.go
// Title: mLang Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of mLang parsing.
//              Converts source text into a stream of tokens by running all
//              token matchers in parallel over a pull-based rune source and
//              picking the longest match, with registration order breaking
//              ties. Provides detailed position information for error
//              reporting.
// Author: msto63
// Version: v0.1.2
// Created: 2026-08-14
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-14 v0.1.0: Initial lexer implementation
// - 2026-08-20 v0.1.1: Latch terminal state after an illegal token
// - 2026-08-21 v0.1.2: Treat matcher-reported illegal tokens as terminal

package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer performs lexical analysis of mLang source text.
//
// The source is consumed one rune at a time with a single rune of
// lookahead; the lexer never seeks and never buffers beyond that rune.
// A Lexer is not safe for concurrent use.
type Lexer struct {
	source     io.RuneReader
	pending    rune  // lookahead rune, valid when hasPending
	hasPending bool  // pending holds an unconsumed rune
	eof        bool  // source exhausted
	readErr    error // first non-EOF error from the source
	failed     bool  // an illegal token was emitted; the stream is finished
	offset     int   // byte offset of the next unconsumed rune
	line       int   // line of the next unconsumed rune (1-based)
	column     int   // column of the next unconsumed rune (1-based)
}

// NewLexer creates a new lexer reading from the given rune source.
// Callers own the source; hand in a strings.Reader, bytes.Reader, or a
// bufio.Reader wrapped around a file.
func NewLexer(source io.RuneReader) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// NewLexerString creates a new lexer for the given input string
func NewLexerString(input string) *Lexer {
	return NewLexer(strings.NewReader(input))
}

// NextToken returns the next token from the input.
//
// At the end of input it returns TokenEOF, and keeps returning it on
// every later call. When no token can be formed, or a numeric literal
// cannot be represented, it returns a single TokenIllegal describing the
// failure; after that the stream is finished and NextToken returns
// TokenEOF forever.
func (l *Lexer) NextToken() Token {
	if l.failed {
		return Token{Type: TokenEOF, Position: l.offset, Line: l.line, Column: l.column}
	}

	l.skipWhitespace()

	startOffset := l.offset
	startLine := l.line
	startColumn := l.column

	if _, ok := l.peek(); !ok {
		if l.readErr != nil {
			l.failed = true
			return Token{
				Type:     TokenIllegal,
				Message:  fmt.Sprintf("failed to read source: %v", l.readErr),
				Position: startOffset,
				Line:     startLine,
				Column:   startColumn,
			}
		}
		return Token{Type: TokenEOF, Position: startOffset, Line: startLine, Column: startColumn}
	}

	candidates := newCandidates()
	var consumed []rune

	for {
		r, ok := l.peek()
		if !ok {
			break
		}

		next := candidates[:0]
		for _, c := range candidates {
			if successor := c.accept(r); successor != nil {
				next = append(next, successor)
			}
		}
		if len(next) == 0 {
			// r belongs to the next token; leave it pending
			break
		}

		l.read()
		consumed = append(consumed, r)
		candidates = next
	}

	// First completable candidate in registration order wins. A matcher
	// may complete with an illegal token (an out-of-range integer run);
	// that ends the stream like any other lexical error.
	for _, c := range candidates {
		if tok, ok := c.complete(); ok {
			if tok.Type == TokenIllegal {
				l.failed = true
			}
			tok.Position = startOffset
			tok.Line = startLine
			tok.Column = startColumn
			return tok
		}
	}

	l.failed = true

	if len(consumed) == 0 {
		r, _ := l.read()
		return Token{
			Type:     TokenIllegal,
			Text:     string(r),
			Message:  fmt.Sprintf("invalid character %q", r),
			Position: startOffset,
			Line:     startLine,
			Column:   startColumn,
		}
	}

	text := string(consumed)
	return Token{
		Type:     TokenIllegal,
		Text:     text,
		Message:  fmt.Sprintf("invalid token %q", text),
		Position: startOffset,
		Line:     startLine,
		Column:   startColumn,
	}
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("lexical error at line %d, column %d: %s",
				tok.Line, tok.Column, tok.Message)
		}
	}

	return tokens, nil
}

// peek returns the next rune without consuming it
func (l *Lexer) peek() (rune, bool) {
	if l.hasPending {
		return l.pending, true
	}
	if l.eof {
		return 0, false
	}

	r, _, err := l.source.ReadRune()
	if err != nil {
		l.eof = true
		if err != io.EOF {
			l.readErr = err
		}
		return 0, false
	}

	l.pending = r
	l.hasPending = true
	return r, true
}

// read consumes the next rune and advances position tracking
func (l *Lexer) read() (rune, bool) {
	r, ok := l.peek()
	if !ok {
		return 0, false
	}

	l.hasPending = false
	l.offset += utf8.RuneLen(r)
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	return r, true
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.read()
	}
}

// TokenizeString is a convenience function that tokenizes input and returns tokens or error
func TokenizeString(input string) ([]Token, error) {
	lexer := NewLexerString(input)
	return lexer.Tokenize()
}
