// File: lexer_test.go
// Title: mLang Lexer Unit Tests
// Description: Tests for the mLang tokenizer. Covers longest-match
//              resolution between overlapping token categories, literal
//              payloads, position tracking, error handling, and the
//              terminal behavior of the token stream.
// Author: msto63
// Version: v0.1.2
// Created: 2026-08-14
// Modified: 2026-08-22
//
// Change History:
// - 2026-08-14 v0.1.0: Initial lexer test suite
// - 2026-08-21 v0.1.1: Cover numeric range handling
// - 2026-08-22 v0.1.2: Cover full signature sequence and lone invalid character

package parser

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Simple function",
			input: "function add() -> i32 {}",
			expected: []Token{
				{Type: TokenFunction, Text: "function", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Text: "add", Position: 9, Line: 1, Column: 10},
				{Type: TokenLeftParen, Text: "(", Position: 12, Line: 1, Column: 13},
				{Type: TokenRightParen, Text: ")", Position: 13, Line: 1, Column: 14},
				{Type: TokenArrow, Text: "->", Position: 15, Line: 1, Column: 16},
				{Type: TokenI32, Text: "i32", Position: 18, Line: 1, Column: 19},
				{Type: TokenLeftBrace, Text: "{", Position: 22, Line: 1, Column: 23},
				{Type: TokenRightBrace, Text: "}", Position: 23, Line: 1, Column: 24},
				{Type: TokenEOF, Text: "", Position: 24, Line: 1, Column: 25},
			},
		},
		{
			name:  "Function with parameters and body",
			input: "function add(a: i32, b: i32) -> i32 { let sum: i32 = 1; }",
			expected: []Token{
				{Type: TokenFunction, Text: "function", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Text: "add", Position: 9, Line: 1, Column: 10},
				{Type: TokenLeftParen, Text: "(", Position: 12, Line: 1, Column: 13},
				{Type: TokenIdentifier, Text: "a", Position: 13, Line: 1, Column: 14},
				{Type: TokenColon, Text: ":", Position: 14, Line: 1, Column: 15},
				{Type: TokenI32, Text: "i32", Position: 16, Line: 1, Column: 17},
				{Type: TokenComma, Text: ",", Position: 19, Line: 1, Column: 20},
				{Type: TokenIdentifier, Text: "b", Position: 21, Line: 1, Column: 22},
				{Type: TokenColon, Text: ":", Position: 22, Line: 1, Column: 23},
				{Type: TokenI32, Text: "i32", Position: 24, Line: 1, Column: 25},
				{Type: TokenRightParen, Text: ")", Position: 27, Line: 1, Column: 28},
				{Type: TokenArrow, Text: "->", Position: 29, Line: 1, Column: 30},
				{Type: TokenI32, Text: "i32", Position: 32, Line: 1, Column: 33},
				{Type: TokenLeftBrace, Text: "{", Position: 36, Line: 1, Column: 37},
				{Type: TokenLet, Text: "let", Position: 38, Line: 1, Column: 39},
				{Type: TokenIdentifier, Text: "sum", Position: 42, Line: 1, Column: 43},
				{Type: TokenColon, Text: ":", Position: 45, Line: 1, Column: 46},
				{Type: TokenI32, Text: "i32", Position: 47, Line: 1, Column: 48},
				{Type: TokenEquals, Text: "=", Position: 51, Line: 1, Column: 52},
				{Type: TokenInteger, Text: "1", IntValue: 1, Position: 53, Line: 1, Column: 54},
				{Type: TokenSemicolon, Text: ";", Position: 54, Line: 1, Column: 55},
				{Type: TokenRightBrace, Text: "}", Position: 56, Line: 1, Column: 57},
				{Type: TokenEOF, Text: "", Position: 57, Line: 1, Column: 58},
			},
		},
		{
			name:  "Variable definition",
			input: "let x: i32 = 42;",
			expected: []Token{
				{Type: TokenLet, Text: "let", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Text: "x", Position: 4, Line: 1, Column: 5},
				{Type: TokenColon, Text: ":", Position: 5, Line: 1, Column: 6},
				{Type: TokenI32, Text: "i32", Position: 7, Line: 1, Column: 8},
				{Type: TokenEquals, Text: "=", Position: 11, Line: 1, Column: 12},
				{Type: TokenInteger, Text: "42", IntValue: 42, Position: 13, Line: 1, Column: 14},
				{Type: TokenSemicolon, Text: ";", Position: 15, Line: 1, Column: 16},
				{Type: TokenEOF, Text: "", Position: 16, Line: 1, Column: 17},
			},
		},
		{
			name:  "Keyword prefix continues as identifier",
			input: "lettuce let",
			expected: []Token{
				{Type: TokenIdentifier, Text: "lettuce", Position: 0, Line: 1, Column: 1},
				{Type: TokenLet, Text: "let", Position: 8, Line: 1, Column: 9},
				{Type: TokenEOF, Text: "", Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "Type keyword versus longer identifier",
			input: "i32 i32x",
			expected: []Token{
				{Type: TokenI32, Text: "i32", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Text: "i32x", Position: 4, Line: 1, Column: 5},
				{Type: TokenEOF, Text: "", Position: 8, Line: 1, Column: 9},
			},
		},
		{
			name:  "Macro call",
			input: `print!("x")`,
			expected: []Token{
				{Type: TokenMacroCall, Text: "print!", StringValue: "print", Position: 0, Line: 1, Column: 1},
				{Type: TokenLeftParen, Text: "(", Position: 6, Line: 1, Column: 7},
				{Type: TokenString, Text: `"x"`, StringValue: "x", Position: 7, Line: 1, Column: 8},
				{Type: TokenRightParen, Text: ")", Position: 10, Line: 1, Column: 11},
				{Type: TokenEOF, Text: "", Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "Arrow and minus",
			input: "-> - 5 -5",
			expected: []Token{
				{Type: TokenArrow, Text: "->", Position: 0, Line: 1, Column: 1},
				{Type: TokenMinus, Text: "-", Position: 3, Line: 1, Column: 4},
				{Type: TokenInteger, Text: "5", IntValue: 5, Position: 5, Line: 1, Column: 6},
				{Type: TokenMinus, Text: "-", Position: 7, Line: 1, Column: 8},
				{Type: TokenInteger, Text: "5", IntValue: 5, Position: 8, Line: 1, Column: 9},
				{Type: TokenEOF, Text: "", Position: 9, Line: 1, Column: 10},
			},
		},
		{
			name:  "Float forms",
			input: "1.5 1. .5",
			expected: []Token{
				{Type: TokenFloat, Text: "1.5", FloatValue: 1.5, Position: 0, Line: 1, Column: 1},
				{Type: TokenFloat, Text: "1.", FloatValue: 1, Position: 4, Line: 1, Column: 5},
				{Type: TokenDot, Text: ".", Position: 7, Line: 1, Column: 8},
				{Type: TokenInteger, Text: "5", IntValue: 5, Position: 8, Line: 1, Column: 9},
				{Type: TokenEOF, Text: "", Position: 9, Line: 1, Column: 10},
			},
		},
		{
			name:  "String with escaped quote",
			input: `"a\"b"`,
			expected: []Token{
				{Type: TokenString, Text: `"a\"b"`, StringValue: `a\"b`, Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Text: "", Position: 6, Line: 1, Column: 7},
			},
		},
		{
			name:  "Punctuation mix",
			input: "[1, 2] + x.y / 3 % 4 * 5",
			expected: []Token{
				{Type: TokenLeftBracket, Text: "[", Position: 0, Line: 1, Column: 1},
				{Type: TokenInteger, Text: "1", IntValue: 1, Position: 1, Line: 1, Column: 2},
				{Type: TokenComma, Text: ",", Position: 2, Line: 1, Column: 3},
				{Type: TokenInteger, Text: "2", IntValue: 2, Position: 4, Line: 1, Column: 5},
				{Type: TokenRightBracket, Text: "]", Position: 5, Line: 1, Column: 6},
				{Type: TokenPlus, Text: "+", Position: 7, Line: 1, Column: 8},
				{Type: TokenIdentifier, Text: "x", Position: 9, Line: 1, Column: 10},
				{Type: TokenDot, Text: ".", Position: 10, Line: 1, Column: 11},
				{Type: TokenIdentifier, Text: "y", Position: 11, Line: 1, Column: 12},
				{Type: TokenSlash, Text: "/", Position: 13, Line: 1, Column: 14},
				{Type: TokenInteger, Text: "3", IntValue: 3, Position: 15, Line: 1, Column: 16},
				{Type: TokenPercent, Text: "%", Position: 17, Line: 1, Column: 18},
				{Type: TokenInteger, Text: "4", IntValue: 4, Position: 19, Line: 1, Column: 20},
				{Type: TokenStar, Text: "*", Position: 21, Line: 1, Column: 22},
				{Type: TokenInteger, Text: "5", IntValue: 5, Position: 23, Line: 1, Column: 24},
				{Type: TokenEOF, Text: "", Position: 24, Line: 1, Column: 25},
			},
		},
		{
			name:  "Multiline input",
			input: "let x: i32 = 1;\nlet y: i32 = 2;",
			expected: []Token{
				{Type: TokenLet, Text: "let", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Text: "x", Position: 4, Line: 1, Column: 5},
				{Type: TokenColon, Text: ":", Position: 5, Line: 1, Column: 6},
				{Type: TokenI32, Text: "i32", Position: 7, Line: 1, Column: 8},
				{Type: TokenEquals, Text: "=", Position: 11, Line: 1, Column: 12},
				{Type: TokenInteger, Text: "1", IntValue: 1, Position: 13, Line: 1, Column: 14},
				{Type: TokenSemicolon, Text: ";", Position: 14, Line: 1, Column: 15},
				{Type: TokenLet, Text: "let", Position: 16, Line: 2, Column: 1},
				{Type: TokenIdentifier, Text: "y", Position: 20, Line: 2, Column: 5},
				{Type: TokenColon, Text: ":", Position: 21, Line: 2, Column: 6},
				{Type: TokenI32, Text: "i32", Position: 23, Line: 2, Column: 8},
				{Type: TokenEquals, Text: "=", Position: 27, Line: 2, Column: 12},
				{Type: TokenInteger, Text: "2", IntValue: 2, Position: 29, Line: 2, Column: 14},
				{Type: TokenSemicolon, Text: ";", Position: 30, Line: 2, Column: 15},
				{Type: TokenEOF, Text: "", Position: 31, Line: 2, Column: 16},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Text: "", Position: 0, Line: 1, Column: 1},
			},
		},
		{
			name:  "Whitespace only",
			input: "  \t\n  ",
			expected: []Token{
				{Type: TokenEOF, Text: "", Position: 6, Line: 2, Column: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexerString(tt.input)

			for i, expected := range tt.expected {
				token := lexer.NextToken()

				if token.Type != expected.Type {
					t.Errorf("Token %d: expected type %s, got %s", i, expected.Type, token.Type)
				}

				if token.Text != expected.Text {
					t.Errorf("Token %d: expected text %q, got %q", i, expected.Text, token.Text)
				}

				if token.IntValue != expected.IntValue {
					t.Errorf("Token %d: expected int value %d, got %d", i, expected.IntValue, token.IntValue)
				}

				if token.FloatValue != expected.FloatValue {
					t.Errorf("Token %d: expected float value %v, got %v", i, expected.FloatValue, token.FloatValue)
				}

				if token.StringValue != expected.StringValue {
					t.Errorf("Token %d: expected string value %q, got %q", i, expected.StringValue, token.StringValue)
				}

				if token.Position != expected.Position {
					t.Errorf("Token %d: expected position %d, got %d", i, expected.Position, token.Position)
				}

				if token.Line != expected.Line {
					t.Errorf("Token %d: expected line %d, got %d", i, expected.Line, token.Line)
				}

				if token.Column != expected.Column {
					t.Errorf("Token %d: expected column %d, got %d", i, expected.Column, token.Column)
				}
			}
		})
	}
}

func TestLexer_IllegalTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		leading  []TokenType // tokens before the illegal one
		text     string
		message  string
		position int
		line     int
		column   int
	}{
		{
			name:     "Invalid character",
			input:    "let @",
			leading:  []TokenType{TokenLet},
			text:     "@",
			message:  "invalid character '@'",
			position: 4,
			line:     1,
			column:   5,
		},
		{
			name:     "Invalid character at start",
			input:    "#comment",
			text:     "#",
			message:  "invalid character '#'",
			position: 0,
			line:     1,
			column:   1,
		},
		{
			name:     "Bare macro mark",
			input:    "!",
			text:     "!",
			message:  "invalid character '!'",
			position: 0,
			line:     1,
			column:   1,
		},
		{
			name:     "Unterminated string",
			input:    `"abc`,
			text:     `"abc`,
			message:  `invalid token "\"abc"`,
			position: 0,
			line:     1,
			column:   1,
		},
		{
			name:     "Escaped quote keeps string open",
			input:    `"a\"`,
			text:     `"a\"`,
			message:  `invalid token "\"a\\\""`,
			position: 0,
			line:     1,
			column:   1,
		},
		{
			name:     "Integer literal out of range",
			input:    "let x: u64 = 18446744073709551615;",
			leading:  []TokenType{TokenLet, TokenIdentifier, TokenColon, TokenU64, TokenEquals},
			text:     "18446744073709551615",
			message:  `integer literal out of range: "18446744073709551615"`,
			position: 13,
			line:     1,
			column:   14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexerString(tt.input)

			for i, want := range tt.leading {
				token := lexer.NextToken()
				if token.Type != want {
					t.Fatalf("Leading token %d: expected %s, got %s", i, want, token.Type)
				}
			}

			token := lexer.NextToken()
			if token.Type != TokenIllegal {
				t.Fatalf("Expected ILLEGAL token, got %s", token.Type)
			}
			if token.Text != tt.text {
				t.Errorf("Expected text %q, got %q", tt.text, token.Text)
			}
			if token.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, token.Message)
			}
			if token.Position != tt.position {
				t.Errorf("Expected position %d, got %d", tt.position, token.Position)
			}
			if token.Line != tt.line || token.Column != tt.column {
				t.Errorf("Expected %d:%d, got %d:%d", tt.line, tt.column, token.Line, token.Column)
			}

			// The stream is finished after the illegal token
			for i := 0; i < 2; i++ {
				if next := lexer.NextToken(); next.Type != TokenEOF {
					t.Errorf("Call %d after illegal token: expected EOF, got %s", i, next.Type)
				}
			}
		})
	}
}

func TestLexer_EOFIsTerminal(t *testing.T) {
	lexer := NewLexerString("let")

	if token := lexer.NextToken(); token.Type != TokenLet {
		t.Fatalf("Expected LET, got %s", token.Type)
	}

	for i := 0; i < 3; i++ {
		if token := lexer.NextToken(); token.Type != TokenEOF {
			t.Errorf("Call %d: expected EOF, got %s", i, token.Type)
		}
	}
}

func TestLexer_TextRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Function definition",
			input:    "function add(a: i32) -> i32 { 42; }",
			expected: "functionadd(a:i32)->i32{42;}",
		},
		{
			name:     "String keeps interior spacing",
			input:    `let s: string = "a b";`,
			expected: `lets:string="a b";`,
		},
		{
			name:     "Macro call",
			input:    "print!(7)",
			expected: "print!(7)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeString(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			var joined strings.Builder
			for _, token := range tokens {
				joined.WriteString(token.Text)
			}

			if joined.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, joined.String())
			}
		})
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		errMsg   string
		tokenLen int
	}{
		{
			name:     "Valid input",
			input:    "let x",
			wantErr:  false,
			tokenLen: 3, // let, x, EOF
		},
		{
			name:     "Empty input",
			input:    "",
			wantErr:  false,
			tokenLen: 1, // EOF
		},
		{
			name:     "Invalid character",
			input:    "let @",
			wantErr:  true,
			errMsg:   "lexical error at line 1, column 5: invalid character '@'",
			tokenLen: 2, // let plus the illegal token
		},
		{
			name:     "Invalid character alone",
			input:    "@",
			wantErr:  true,
			errMsg:   "lexical error at line 1, column 1: invalid character '@'",
			tokenLen: 1,
		},
		{
			name:     "Invalid token",
			input:    `"abc`,
			wantErr:  true,
			errMsg:   `lexical error at line 1, column 1: invalid token "\"abc"`,
			tokenLen: 1,
		},
		{
			name:     "Out of range integer",
			input:    "18446744073709551615",
			wantErr:  true,
			errMsg:   `lexical error at line 1, column 1: integer literal out of range: "18446744073709551615"`,
			tokenLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeString(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got nil")
				}
				if err.Error() != tt.errMsg {
					t.Errorf("Expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(tokens) != tt.tokenLen {
				t.Errorf("Expected %d tokens, got %d", tt.tokenLen, len(tokens))
			}
		})
	}
}

func TestLexer_LiteralValues(t *testing.T) {
	tokens, err := TokenizeString(`9223372036854775807 0 2.5 "hi" dbg!`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 6 {
		t.Fatalf("Expected 6 tokens, got %d", len(tokens))
	}

	if tokens[0].IntValue != 9223372036854775807 {
		t.Errorf("Expected max int64, got %d", tokens[0].IntValue)
	}
	if tokens[1].IntValue != 0 {
		t.Errorf("Expected 0, got %d", tokens[1].IntValue)
	}
	if tokens[2].FloatValue != 2.5 {
		t.Errorf("Expected 2.5, got %v", tokens[2].FloatValue)
	}
	if tokens[3].StringValue != "hi" {
		t.Errorf("Expected %q, got %q", "hi", tokens[3].StringValue)
	}
	if tokens[4].StringValue != "dbg" {
		t.Errorf("Expected macro name %q, got %q", "dbg", tokens[4].StringValue)
	}
}

func TestLexer_NumericRange(t *testing.T) {
	t.Run("Smallest overflowing integer is a lexical error", func(t *testing.T) {
		lexer := NewLexerString("9223372036854775808")

		token := lexer.NextToken()
		if token.Type != TokenIllegal {
			t.Fatalf("Expected ILLEGAL token, got %s", token.Type)
		}
		if token.Message != `integer literal out of range: "9223372036854775808"` {
			t.Errorf("Unexpected message: %q", token.Message)
		}
		if next := lexer.NextToken(); next.Type != TokenEOF {
			t.Errorf("Expected EOF after illegal token, got %s", next.Type)
		}
	})

	t.Run("Oversized float saturates to infinity", func(t *testing.T) {
		tokens, err := TokenizeString(strings.Repeat("9", 310) + ".0")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tokens) != 2 {
			t.Fatalf("Expected FLOAT and EOF, got %d tokens", len(tokens))
		}
		if tokens[0].Type != TokenFloat || !math.IsInf(tokens[0].FloatValue, 1) {
			t.Errorf("Expected FLOAT(+Inf), got %s", tokens[0])
		}
	})
}

func TestLexer_ReadFailure(t *testing.T) {
	lexer := NewLexer(&failingReader{data: "let x"})

	if token := lexer.NextToken(); token.Type != TokenLet {
		t.Fatalf("Expected LET, got %s", token.Type)
	}
	if token := lexer.NextToken(); token.Type != TokenIdentifier || token.Text != "x" {
		t.Fatalf("Expected IDENTIFIER(x), got %s", token)
	}

	token := lexer.NextToken()
	if token.Type != TokenIllegal {
		t.Fatalf("Expected ILLEGAL token, got %s", token.Type)
	}
	if token.Message != "failed to read source: read failed" {
		t.Errorf("Unexpected message: %q", token.Message)
	}

	if next := lexer.NextToken(); next.Type != TokenEOF {
		t.Errorf("Expected EOF after read failure, got %s", next.Type)
	}
}

// failingReader yields its data and then a permanent read error
type failingReader struct {
	data string
	pos  int
}

func (r *failingReader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.data) {
		return 0, 0, errors.New("read failed")
	}
	ch := rune(r.data[r.pos])
	r.pos++
	return ch, 1, nil
}

// Benchmarks

func BenchmarkLexer_SmallFunction(b *testing.B) {
	input := "function add(a: i32, b: i32) -> i32 { let sum: i32 = 1; }"

	for i := 0; i < b.N; i++ {
		lexer := NewLexerString(input)
		for {
			token := lexer.NextToken()
			if token.Type == TokenEOF {
				break
			}
		}
	}
}

func BenchmarkLexer_Tokenize(b *testing.B) {
	var builder strings.Builder
	for i := 0; i < 50; i++ {
		builder.WriteString("let x: i32 = 42;\n")
	}
	input := builder.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := TokenizeString(input); err != nil {
			b.Fatalf("Unexpected error: %v", err)
		}
	}
}
