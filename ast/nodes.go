// File: nodes.go
// Title: mLang AST Node Definitions
// Description: Defines all AST node types produced by the mLang parser,
//              covering programs, function definitions, parameter and
//              variable declarations, types, and expressions. Provides
//              string representations, deep copying, and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact source-like representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Clone returns a deep copy of the node. The copy shares no mutable
	// state with the original; mutating one never affects the other.
	Clone() Node

	// Validate performs basic structural validation of the node
	Validate() error
}

// Expression represents the base interface for all expression nodes
type Expression interface {
	Node
	exprNode() // marker method
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Primitive identifies one of the built-in mLang types
type Primitive int

const (
	PrimitiveI8 Primitive = iota
	PrimitiveI16
	PrimitiveI32
	PrimitiveI64
	PrimitiveIPtr
	PrimitiveU8
	PrimitiveU16
	PrimitiveU32
	PrimitiveU64
	PrimitiveUPtr
	PrimitiveF32
	PrimitiveF64
	PrimitiveBool
	PrimitiveChar
	PrimitiveString
)

// String returns the source spelling of the primitive type
func (p Primitive) String() string {
	switch p {
	case PrimitiveI8:
		return "i8"
	case PrimitiveI16:
		return "i16"
	case PrimitiveI32:
		return "i32"
	case PrimitiveI64:
		return "i64"
	case PrimitiveIPtr:
		return "iptr"
	case PrimitiveU8:
		return "u8"
	case PrimitiveU16:
		return "u16"
	case PrimitiveU32:
		return "u32"
	case PrimitiveU64:
		return "u64"
	case PrimitiveUPtr:
		return "uptr"
	case PrimitiveF32:
		return "f32"
	case PrimitiveF64:
		return "f64"
	case PrimitiveBool:
		return "bool"
	case PrimitiveChar:
		return "char"
	case PrimitiveString:
		return "string"
	default:
		return "unknown"
	}
}

// Program represents a complete parsed source file
type Program struct {
	Items []Node   // Top-level items in source order
	Pos   Position // Source position
}

// FunctionDefinition represents a named function with typed parameters,
// a return type, and a braced body
type FunctionDefinition struct {
	Name       string                  // Function name
	Parameters []*ParameterDeclaration // Declared parameters in order
	ReturnType *Type                   // Declared return type
	Body       *List                   // Statements of the braced block
	Pos        Position                // Source position
}

// ParameterDeclaration represents one typed function parameter
type ParameterDeclaration struct {
	Name         string   // Parameter name
	DeclaredType *Type    // Declared parameter type
	Pos          Position // Source position
}

// VariableDefinition represents a let binding with explicit type and
// initializer
type VariableDefinition struct {
	Name         string     // Variable name
	Mutable      bool       // Declared with 'mut'
	DeclaredType *Type      // Declared variable type
	Value        Expression // Initializer expression
	Pos          Position   // Source position
}

// Type represents a reference to one of the primitive types
type Type struct {
	Primitive Primitive // Which primitive type
	Pos       Position  // Source position
}

// IgnoreValue represents an expression statement whose value is
// discarded (the expression was terminated with ';')
type IgnoreValue struct {
	Expr Expression // Wrapped expression
	Pos  Position   // Source position
}

// IntegerLiteral represents an integer literal expression
type IntegerLiteral struct {
	Value int64    // Literal value
	Pos   Position // Source position
}

// List represents an ordered sequence of child nodes, such as the
// statements of a block
type List struct {
	Items []Node   // Child nodes in order
	Pos   Position // Source position
}

// Implementation of Node interface for Program

func (p *Program) String() string {
	items := make([]string, len(p.Items))
	for i, item := range p.Items {
		items[i] = item.String()
	}
	return strings.Join(items, "\n\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return p.Pos
}

func (p *Program) Clone() Node {
	items := make([]Node, len(p.Items))
	for i, item := range p.Items {
		items[i] = item.Clone()
	}
	return &Program{Items: items, Pos: p.Pos}
}

func (p *Program) Validate() error {
	for i, item := range p.Items {
		if item == nil {
			return fmt.Errorf("item %d is nil", i)
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// Implementation of Node interface for FunctionDefinition

func (f *FunctionDefinition) String() string {
	parameters := make([]string, len(f.Parameters))
	for i, param := range f.Parameters {
		parameters[i] = param.String()
	}
	return fmt.Sprintf("function %s(%s) -> %s %s",
		f.Name, strings.Join(parameters, ", "), f.ReturnType.String(), f.Body.String())
}

func (f *FunctionDefinition) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionDefinition(f)
}

func (f *FunctionDefinition) Position() Position {
	return f.Pos
}

func (f *FunctionDefinition) Clone() Node {
	parameters := make([]*ParameterDeclaration, len(f.Parameters))
	for i, param := range f.Parameters {
		parameters[i] = param.Clone().(*ParameterDeclaration)
	}

	var returnType *Type
	if f.ReturnType != nil {
		returnType = f.ReturnType.Clone().(*Type)
	}

	var body *List
	if f.Body != nil {
		body = f.Body.Clone().(*List)
	}

	return &FunctionDefinition{
		Name:       f.Name,
		Parameters: parameters,
		ReturnType: returnType,
		Body:       body,
		Pos:        f.Pos,
	}
}

func (f *FunctionDefinition) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("function name is required")
	}

	for i, param := range f.Parameters {
		if param == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
		if err := param.Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}

	if f.ReturnType == nil {
		return fmt.Errorf("return type is required")
	}
	if err := f.ReturnType.Validate(); err != nil {
		return fmt.Errorf("return type: %w", err)
	}

	if f.Body == nil {
		return fmt.Errorf("function body is required")
	}
	if err := f.Body.Validate(); err != nil {
		return fmt.Errorf("body: %w", err)
	}

	return nil
}

// Implementation of Node interface for ParameterDeclaration

func (pd *ParameterDeclaration) String() string {
	return fmt.Sprintf("%s: %s", pd.Name, pd.DeclaredType.String())
}

func (pd *ParameterDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitParameterDeclaration(pd)
}

func (pd *ParameterDeclaration) Position() Position {
	return pd.Pos
}

func (pd *ParameterDeclaration) Clone() Node {
	var declaredType *Type
	if pd.DeclaredType != nil {
		declaredType = pd.DeclaredType.Clone().(*Type)
	}
	return &ParameterDeclaration{Name: pd.Name, DeclaredType: declaredType, Pos: pd.Pos}
}

func (pd *ParameterDeclaration) Validate() error {
	if strings.TrimSpace(pd.Name) == "" {
		return fmt.Errorf("parameter name is required")
	}
	if pd.DeclaredType == nil {
		return fmt.Errorf("parameter type is required")
	}
	return pd.DeclaredType.Validate()
}

// Implementation of Node interface for VariableDefinition

func (vd *VariableDefinition) String() string {
	if vd.Mutable {
		return fmt.Sprintf("let mut %s: %s = %s;",
			vd.Name, vd.DeclaredType.String(), vd.Value.String())
	}
	return fmt.Sprintf("let %s: %s = %s;",
		vd.Name, vd.DeclaredType.String(), vd.Value.String())
}

func (vd *VariableDefinition) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableDefinition(vd)
}

func (vd *VariableDefinition) Position() Position {
	return vd.Pos
}

func (vd *VariableDefinition) Clone() Node {
	var declaredType *Type
	if vd.DeclaredType != nil {
		declaredType = vd.DeclaredType.Clone().(*Type)
	}

	var value Expression
	if vd.Value != nil {
		value = vd.Value.Clone().(Expression)
	}

	return &VariableDefinition{
		Name:         vd.Name,
		Mutable:      vd.Mutable,
		DeclaredType: declaredType,
		Value:        value,
		Pos:          vd.Pos,
	}
}

func (vd *VariableDefinition) Validate() error {
	if strings.TrimSpace(vd.Name) == "" {
		return fmt.Errorf("variable name is required")
	}

	if vd.DeclaredType == nil {
		return fmt.Errorf("variable type is required")
	}
	if err := vd.DeclaredType.Validate(); err != nil {
		return fmt.Errorf("type: %w", err)
	}

	if vd.Value == nil {
		return fmt.Errorf("initializer is required")
	}
	if err := vd.Value.Validate(); err != nil {
		return fmt.Errorf("initializer: %w", err)
	}

	return nil
}

// Implementation of Node interface for Type

func (t *Type) String() string {
	return t.Primitive.String()
}

func (t *Type) Accept(visitor Visitor) interface{} {
	return visitor.VisitType(t)
}

func (t *Type) Position() Position {
	return t.Pos
}

func (t *Type) Clone() Node {
	return &Type{Primitive: t.Primitive, Pos: t.Pos}
}

func (t *Type) Validate() error {
	if t.Primitive < PrimitiveI8 || t.Primitive > PrimitiveString {
		return fmt.Errorf("unknown primitive type: %d", t.Primitive)
	}
	return nil
}

// Implementation of Node interface for IgnoreValue

func (iv *IgnoreValue) String() string {
	return iv.Expr.String() + ";"
}

func (iv *IgnoreValue) Accept(visitor Visitor) interface{} {
	return visitor.VisitIgnoreValue(iv)
}

func (iv *IgnoreValue) Position() Position {
	return iv.Pos
}

func (iv *IgnoreValue) Clone() Node {
	var expr Expression
	if iv.Expr != nil {
		expr = iv.Expr.Clone().(Expression)
	}
	return &IgnoreValue{Expr: expr, Pos: iv.Pos}
}

func (iv *IgnoreValue) Validate() error {
	if iv.Expr == nil {
		return fmt.Errorf("wrapped expression is required")
	}
	return iv.Expr.Validate()
}

// Implementation of Node interface for IntegerLiteral

func (il *IntegerLiteral) String() string {
	return strconv.FormatInt(il.Value, 10)
}

func (il *IntegerLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitIntegerLiteral(il)
}

func (il *IntegerLiteral) Position() Position {
	return il.Pos
}

func (il *IntegerLiteral) Clone() Node {
	return &IntegerLiteral{Value: il.Value, Pos: il.Pos}
}

func (il *IntegerLiteral) Validate() error {
	return nil
}

func (il *IntegerLiteral) exprNode() {}

// Implementation of Node interface for List

func (l *List) String() string {
	if len(l.Items) == 0 {
		return "{}"
	}

	items := make([]string, len(l.Items))
	for i, item := range l.Items {
		items[i] = item.String()
	}
	return fmt.Sprintf("{ %s }", strings.Join(items, " "))
}

func (l *List) Accept(visitor Visitor) interface{} {
	return visitor.VisitList(l)
}

func (l *List) Position() Position {
	return l.Pos
}

func (l *List) Clone() Node {
	items := make([]Node, len(l.Items))
	for i, item := range l.Items {
		items[i] = item.Clone()
	}
	return &List{Items: items, Pos: l.Pos}
}

func (l *List) Validate() error {
	for i, item := range l.Items {
		if item == nil {
			return fmt.Errorf("item %d is nil", i)
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
