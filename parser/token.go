// File: token.go
// Title: mLang Token Model
// Description: Defines the closed set of lexical token kinds for mLang and
//              the Token value produced by the tokenizer. Tokens carry the
//              verbatim matched source text, typed literal payloads, and
//              position information for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial token model

package parser

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // sum, field_name
	TokenMacroCall  // dbg!, print!
	TokenInteger    // 123
	TokenFloat      // 123.45
	TokenString     // "string literal"
	TokenChar       // reserved, no matcher yet

	// Punctuation
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenComma        // ,
	TokenDot          // .
	TokenColon        // :
	TokenSemicolon    // ;
	TokenPlus         // +
	TokenMinus        // -
	TokenStar         // *
	TokenSlash        // /
	TokenPercent      // %
	TokenEquals       // =
	TokenArrow        // ->

	// Keywords
	TokenFunction // function
	TokenLet      // let
	TokenMut      // mut
	TokenIf       // if
	TokenElse     // else

	// Type keywords
	TokenI8         // i8
	TokenI16        // i16
	TokenI32        // i32
	TokenI64        // i64
	TokenIPtr       // iptr
	TokenU8         // u8
	TokenU16        // u16
	TokenU32        // u32
	TokenU64        // u64
	TokenUPtr       // uptr
	TokenF32        // f32
	TokenF64        // f64
	TokenBool       // bool
	TokenCharType   // char
	TokenStringType // string
)

// Token represents a lexical token with position information
type Token struct {
	Type        TokenType // Token type
	Text        string    // Verbatim matched source text
	IntValue    int64     // Parsed value for TokenInteger
	FloatValue  float64   // Parsed value for TokenFloat
	StringValue string    // Interior for TokenString, name for TokenMacroCall
	Message     string    // Failure description for TokenIllegal
	Position    int       // Byte position in input
	Line        int       // Line number (1-based)
	Column      int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Message)
	case TokenIdentifier:
		return fmt.Sprintf("IDENTIFIER(%s)", t.Text)
	case TokenMacroCall:
		return fmt.Sprintf("MACRO_CALL(%s)", t.StringValue)
	case TokenInteger:
		return fmt.Sprintf("INTEGER(%d)", t.IntValue)
	case TokenFloat:
		return fmt.Sprintf("FLOAT(%s)", strconv.FormatFloat(t.FloatValue, 'g', -1, 64))
	case TokenString:
		return fmt.Sprintf("STRING(%q)", t.StringValue)
	case TokenChar:
		return fmt.Sprintf("CHAR(%s)", t.Text)
	default:
		// Fixed-spelling tokens render as their type name alone
		return t.Type.String()
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenMacroCall:
		return "MACRO_CALL"
	case TokenInteger:
		return "INTEGER"
	case TokenFloat:
		return "FLOAT"
	case TokenString:
		return "STRING"
	case TokenChar:
		return "CHAR"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenComma:
		return "COMMA"
	case TokenDot:
		return "DOT"
	case TokenColon:
		return "COLON"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenEquals:
		return "EQUALS"
	case TokenArrow:
		return "ARROW"
	case TokenFunction:
		return "FUNCTION"
	case TokenLet:
		return "LET"
	case TokenMut:
		return "MUT"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenI8:
		return "I8"
	case TokenI16:
		return "I16"
	case TokenI32:
		return "I32"
	case TokenI64:
		return "I64"
	case TokenIPtr:
		return "IPTR"
	case TokenU8:
		return "U8"
	case TokenU16:
		return "U16"
	case TokenU32:
		return "U32"
	case TokenU64:
		return "U64"
	case TokenUPtr:
		return "UPTR"
	case TokenF32:
		return "F32"
	case TokenF64:
		return "F64"
	case TokenBool:
		return "BOOL"
	case TokenCharType:
		return "CHAR_TYPE"
	case TokenStringType:
		return "STRING_TYPE"
	default:
		return "UNKNOWN"
	}
}

// IsKeyword reports whether the token type is a reserved word
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenFunction && tt <= TokenElse
}

// IsTypeKeyword reports whether the token type names a primitive type
func (tt TokenType) IsTypeKeyword() bool {
	return tt >= TokenI8 && tt <= TokenStringType
}
