// File: doc.go
// Title: mLang Parser Package Documentation
// Description: Implements the lexical analyzer and parser for mLang source
//              code. Converts source text into token streams and structured
//              AST representations with position-aware error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for mLang source code.

The tokenizer runs a set of partial-match automata in parallel over a
pull-based rune source and emits the longest recognizable token at each
step; registration order breaks ties between matches of equal length, so
keywords shadow identifiers and "->" wins over "-". Text that matches no
token becomes a single error token that ends the stream.

The parser is recursive descent with one token of lookahead. It is
fail-fast: the first grammar mismatch aborts parsing with a SyntaxError
and no recovery or multi-error collection is attempted. A successful
parse always consumes the entire input.
*/
package parser
