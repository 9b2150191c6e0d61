// File: matchers.go
// Title: mLang Token Matchers
// Description: Implements the partial-match automata that recognize the
//              individual token categories. Each matcher consumes one rune
//              at a time and reports whether the text consumed so far forms
//              a complete token. The tokenizer runs all matchers in parallel
//              and resolves ties by registration order.
// Author: msto63
// Version: v0.1.1
// Created: 2026-08-14
// Modified: 2026-08-21
//
// Change History:
// - 2026-08-14 v0.1.0: Initial matcher implementations
// - 2026-08-21 v0.1.1: Range handling for numeric literals (integers out
//                      of range become lexical errors, floats saturate)

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// macroMark terminates a macro-call name (dbg! -> MACRO_CALL(dbg))
const macroMark = '!'

// matcher is a partial-match automaton for one token category.
//
// accept returns the successor state after consuming r, or nil if the
// automaton rejects r. Matchers are value types; accept never mutates
// the receiver, so candidate sets can be narrowed without aliasing.
// complete returns the token for the text consumed so far, if that text
// forms a finished token of this category.
type matcher interface {
	accept(r rune) matcher
	complete() (Token, bool)
}

// exactMatcher matches one fixed spelling (keywords, type keywords,
// punctuation, and the arrow). Spellings are ASCII.
type exactMatcher struct {
	spelling string
	ttype    TokenType
	offset   int
}

func (m exactMatcher) accept(r rune) matcher {
	if m.offset >= len(m.spelling) || rune(m.spelling[m.offset]) != r {
		return nil
	}
	m.offset++
	return m
}

func (m exactMatcher) complete() (Token, bool) {
	if m.offset != len(m.spelling) {
		return Token{}, false
	}
	return Token{Type: m.ttype, Text: m.spelling}, true
}

// identifierMatcher matches a letter or underscore followed by letters,
// digits, and underscores.
type identifierMatcher struct {
	text string
}

func (m identifierMatcher) accept(r rune) matcher {
	if m.text == "" {
		if !isIdentStart(r) {
			return nil
		}
	} else if !isIdentPart(r) {
		return nil
	}
	m.text += string(r)
	return m
}

func (m identifierMatcher) complete() (Token, bool) {
	if m.text == "" {
		return Token{}, false
	}
	return Token{Type: TokenIdentifier, Text: m.text}, true
}

// macroCallMatcher matches a run of alphanumerics and underscores that is
// immediately terminated by the macro mark. The stored name excludes the
// mark. Nothing is accepted after the mark.
type macroCallMatcher struct {
	name   string
	marked bool
}

func (m macroCallMatcher) accept(r rune) matcher {
	if m.marked {
		return nil
	}
	if r == macroMark {
		if m.name == "" {
			return nil
		}
		m.marked = true
		return m
	}
	if !isIdentPart(r) {
		return nil
	}
	m.name += string(r)
	return m
}

func (m macroCallMatcher) complete() (Token, bool) {
	if !m.marked {
		return Token{}, false
	}
	return Token{
		Type:        TokenMacroCall,
		Text:        m.name + string(macroMark),
		StringValue: m.name,
	}, true
}

// integerMatcher matches one or more ASCII digits. Runs that do not fit
// int64 complete as an illegal token carrying an out-of-range message.
type integerMatcher struct {
	digits string
}

func (m integerMatcher) accept(r rune) matcher {
	if !isDigit(r) {
		return nil
	}
	m.digits += string(r)
	return m
}

func (m integerMatcher) complete() (Token, bool) {
	if m.digits == "" {
		return Token{}, false
	}
	value, err := strconv.ParseInt(m.digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// A well-formed digit run that exceeds the 64-bit payload is
			// user input, reported as a lexical error.
			return Token{
				Type:    TokenIllegal,
				Text:    m.digits,
				Message: fmt.Sprintf("integer literal out of range: %q", m.digits),
			}, true
		}
		// The automaton only accepts ASCII digits, so any other
		// conversion failure is an internal invariant violation.
		panic(fmt.Sprintf("parser: integer matcher accepted unconvertible text %q: %v", m.digits, err))
	}
	return Token{Type: TokenInteger, Text: m.digits, IntValue: value}, true
}

// floatMatcher matches digits containing exactly one decimal point. The
// point must follow at least one digit, so ".5" is not a float. A trailing
// point is allowed ("1." reads as 1.0).
type floatMatcher struct {
	text   string
	digits int
	dotted bool
}

func (m floatMatcher) accept(r rune) matcher {
	if isDigit(r) {
		m.text += string(r)
		m.digits++
		return m
	}
	if r == '.' && !m.dotted && m.digits > 0 {
		m.text += string(r)
		m.dotted = true
		return m
	}
	return nil
}

func (m floatMatcher) complete() (Token, bool) {
	if !m.dotted || m.digits == 0 {
		return Token{}, false
	}
	value, err := strconv.ParseFloat(m.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("parser: float matcher accepted unconvertible text %q: %v", m.text, err))
	}
	// On ErrRange ParseFloat still returns the nearest representable
	// value, so an oversized literal saturates to infinity.
	return Token{Type: TokenFloat, Text: m.text, FloatValue: value}, true
}

// stringMatcher matches a double-quoted literal. A backslash sets an
// escape flag that exempts the following rune from terminating the
// literal; the interior is stored verbatim, no unescaping happens here.
// After the closing quote the matcher rejects every rune, so a complete
// literal is never extended.
type stringMatcher struct {
	text    string // verbatim, including quotes
	body    string // interior between the quotes
	opened  bool
	closed  bool
	escaped bool
}

func (m stringMatcher) accept(r rune) matcher {
	if m.closed {
		return nil
	}
	if !m.opened {
		if r != '"' {
			return nil
		}
		m.opened = true
		m.text = string(r)
		return m
	}
	m.text += string(r)
	switch {
	case m.escaped:
		m.escaped = false
		m.body += string(r)
	case r == '\\':
		m.escaped = true
		m.body += string(r)
	case r == '"':
		m.closed = true
	default:
		m.body += string(r)
	}
	return m
}

func (m stringMatcher) complete() (Token, bool) {
	if !m.closed {
		return Token{}, false
	}
	return Token{Type: TokenString, Text: m.text, StringValue: m.body}, true
}

// Character classes

// isIdentStart checks if the rune can begin an identifier
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart checks if the rune can continue an identifier
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isDigit checks if the rune is an ASCII digit
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Fixed spellings in registration order. Order decides ties between
// candidates of equal length: keywords and type keywords precede the
// identifier matcher, and the arrow precedes the single minus.

var keywordSpellings = []struct {
	spelling string
	ttype    TokenType
}{
	{"function", TokenFunction},
	{"let", TokenLet},
	{"mut", TokenMut},
	{"if", TokenIf},
	{"else", TokenElse},
}

var typeKeywordSpellings = []struct {
	spelling string
	ttype    TokenType
}{
	{"i8", TokenI8},
	{"i16", TokenI16},
	{"i32", TokenI32},
	{"i64", TokenI64},
	{"iptr", TokenIPtr},
	{"u8", TokenU8},
	{"u16", TokenU16},
	{"u32", TokenU32},
	{"u64", TokenU64},
	{"uptr", TokenUPtr},
	{"f32", TokenF32},
	{"f64", TokenF64},
	{"bool", TokenBool},
	{"char", TokenCharType},
	{"string", TokenStringType},
}

var punctuationSpellings = []struct {
	spelling string
	ttype    TokenType
}{
	{"->", TokenArrow}, // must precede "-"
	{"(", TokenLeftParen},
	{")", TokenRightParen},
	{"{", TokenLeftBrace},
	{"}", TokenRightBrace},
	{"[", TokenLeftBracket},
	{"]", TokenRightBracket},
	{",", TokenComma},
	{".", TokenDot},
	{":", TokenColon},
	{";", TokenSemicolon},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"%", TokenPercent},
	{"=", TokenEquals},
}

// newCandidates returns a fresh candidate set in registration order.
func newCandidates() []matcher {
	candidates := make([]matcher, 0,
		len(keywordSpellings)+len(typeKeywordSpellings)+len(punctuationSpellings)+5)

	for _, kw := range keywordSpellings {
		candidates = append(candidates, exactMatcher{spelling: kw.spelling, ttype: kw.ttype})
	}
	for _, tk := range typeKeywordSpellings {
		candidates = append(candidates, exactMatcher{spelling: tk.spelling, ttype: tk.ttype})
	}
	for _, p := range punctuationSpellings {
		candidates = append(candidates, exactMatcher{spelling: p.spelling, ttype: p.ttype})
	}

	candidates = append(candidates,
		identifierMatcher{},
		macroCallMatcher{},
		integerMatcher{},
		floatMatcher{},
		stringMatcher{},
	)

	return candidates
}
