// File: doc.go
// Title: mLang Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed mLang source files. Provides visitor
//              patterns and tree manipulation utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for mLang programs.

This package provides the node definitions, visitor patterns, and utilities
for representing and manipulating parsed mLang source files as structured
data.

The AST enables:
  • Structured representation of mLang programs
  • Program analysis and rendering
  • Later compilation stages such as type checking and code generation
  • Static analysis and validation
*/
package ast
