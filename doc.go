// File: doc.go
// Title: mLang Package Documentation
// Description: Implements the mLang compiler front end: tokenizer, parser,
//              and AST for the mLang programming language. mLang is a small,
//              statically typed language with explicit type annotations and
//              expression-oriented blocks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial mLang front end implementation

/*
Package mlang implements the compiler front end for the mLang programming language.

Package: mlang
Title: mLang Compiler Front End
Description: Provides tokenizing, parsing, and AST generation for mLang
             source files. mLang is a small, statically typed language with
             C-like syntax, explicit type annotations, and expression
             statements whose values can be kept or discarded.
Author: msto63
Version: v0.1.0
Created: 2026-08-14
Modified: 2026-08-14

Change History:
- 2026-08-14 v0.1.0: Initial mLang front end implementation

Key Features:
  • Longest-match tokenizer built from parallel candidate automata
  • Exact source positions (line, column, byte offset) on every token and node
  • Fail-fast recursive descent parser with one token of lookahead
  • Visitor-based AST traversal, validation, and rendering
  • Engine API with per-run compile IDs and optional token collection
  • TOML/YAML configuration with environment variable overrides

# mLang Language Overview

mLang is a statically typed language with explicit type annotations.
A source file is a sequence of global items; currently these are
function definitions.

## Basic Syntax Patterns

	function NAME(PARAMS) -> TYPE BLOCK    # Function definition
	let NAME: TYPE = EXPR;                 # Immutable variable
	let mut NAME: TYPE = EXPR;             # Mutable variable
	EXPR;                                  # Expression, value discarded
	EXPR                                   # Expression, value kept

## Core Language Elements

### Function Definitions

	function add(a: i32, b: i32) -> i32 {
	    let sum: i32 = 1;
	    42;
	    7
	}

Parameters are written name: type and may carry a trailing comma. The
return type follows the -> arrow. A block is a braced statement list;
an expression without a trailing semicolon keeps its value, one with a
semicolon discards it.

### Primitive Types

mLang has fifteen built-in types:

	i8  i16  i32  i64  iptr      # Signed integers
	u8  u16  u32  u64  uptr      # Unsigned integers
	f32 f64                      # Floating point
	bool char string             # Boolean, character, string

### Literals

	42           # Integer literal
	3.14         # Float literal (leading digits required: .5 is DOT, 5)
	1.           # Float literal, trailing dot allowed
	"text"       # String literal, interior taken verbatim
	print!       # Macro call token

Expression statements currently cover integer literals; the expression
grammar grows together with the later compiler stages.

# Basic Usage Examples

Initialize and use the mLang engine:

	import "github.com/msto63/mLang"

	// Create mLang engine
	engine, err := mlang.NewEngine(mlang.Options{
		CollectTokens: true,
	})
	if err != nil {
		log.Fatal("Failed to create mLang engine:", err)
	}

	// Parse a source file
	result, err := engine.ParseFile("main.ml")
	if err != nil {
		log.Printf("Compilation failed: %v", err)
		return
	}

	// Work with the AST
	fmt.Println(ast.ASTToString(result.Program))
	for _, fn := range ast.CollectNodes(result.Program).Functions {
		fmt.Printf("function %s at line %d\n", fn.Name, fn.Position().Line)
	}

An Engine is not safe for concurrent use; create one engine per
goroutine when parsing in parallel.

## Tokenizing Only

The token stream is available without parsing:

	result, err := engine.Tokenize("main.ml", source)
	for _, tok := range result.Tokens {
		fmt.Printf("%d:%d %s\n", tok.Line, tok.Column, tok)
	}

## Error Handling

Front end errors carry the source name and the compile ID of the run:

	result, err := engine.ParseString("main.ml", source)
	if err != nil {
		var mlangErr *mlang.Error
		if errors.As(err, &mlangErr) {
			fmt.Printf("run %s failed: %v\n", mlangErr.CompileID(), mlangErr)
		}

		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Printf("%s at line %d, column %d\n",
				syntaxErr.Message, syntaxErr.Token.Line, syntaxErr.Token.Column)
		}
	}

Two kinds of syntax error messages exist: "unexpected token: ..." when
the stream does not match the grammar, and "unexpected end of input"
when the source stops in the middle of a construct.

# Architecture Components

## Front End Pipeline

	Source → Lexer → Tokens → Parser → AST

### Lexer (parser package)

Tokenizes mLang input using parallel candidate automata. All token
kinds start as candidates; each rune narrows the set, and when no
candidate survives the next rune, the longest completed match wins.
Candidates registered earlier win ties, which is how keywords shadow
identifiers and "->" shadows "-".

	type Token struct {
		Type        TokenType // IDENTIFIER, INTEGER, ARROW, etc.
		Text        string    // Matched source text, verbatim
		IntValue    int64     // Decoded integer value
		FloatValue  float64   // Decoded float value
		StringValue string    // Decoded string or macro name
		Position    int       // Byte offset
		Line        int       // Line number
		Column      int       // Column number
	}

### Parser (parser package)

Builds the AST from tokens by recursive descent:

	type Parser struct {
		lexer    *Lexer
		current  Token
		previous Token
		logger   *logrus.Entry
	}

Parsing is fail-fast: the first mismatch produces a SyntaxError and no
recovery is attempted. The whole input must parse; trailing tokens
after the last global item are an error.

### AST (ast package)

Tree representation with visitor support:

	type Program struct {
		Items []Node   // Top-level items in source order
		Pos   Position // Source position
	}

	type FunctionDefinition struct {
		Name       string
		Parameters []*ParameterDeclaration
		ReturnType *Type
		Body       *List
		Pos        Position
	}

Every node renders itself back to source-like text through String(),
deep-copies through Clone(), and checks its own shape through
Validate(). Visitors traverse the tree without type switches:

	collector := ast.CollectNodes(program)
	errs := ast.ValidateAST(program)
	dump := ast.ASTToString(program)

# Performance Characteristics

The front end is built for interactive tooling:

• Lexing: ~150 ns per token
• Parsing: ~3 μs per small function
• Memory: a few KB per parsed source file

Benchmarks (typical performance):

	TokenizeString("function..."):  ~2.5 μs/op
	ParseString("function..."):     ~4 μs/op
	ASTToString(program):           ~1 μs/op

# Command Line Interface

The mlangc command wraps the engine for terminal use:

	mlangc build main.ml -O2 -o main
	mlangc tokens main.ml
	mlangc ast main.ml
	mlangc version

Configuration is read from mlangc.toml (or YAML) and every key can be
overridden through MLANG_* environment variables; see the config
package for details.
*/
package mlang
