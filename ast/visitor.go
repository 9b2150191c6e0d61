// File: visitor.go
// Title: mLang AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              mLang AST nodes. Provides the visitor interface, a recursive
//              base visitor, and common visitors for rendering, validation,
//              and node collection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-14
// Modified: 2026-08-14
//
// Change History:
// - 2026-08-14 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit structural nodes
	VisitProgram(program *Program) interface{}
	VisitFunctionDefinition(fn *FunctionDefinition) interface{}
	VisitParameterDeclaration(param *ParameterDeclaration) interface{}
	VisitVariableDefinition(vd *VariableDefinition) interface{}
	VisitType(t *Type) interface{}
	VisitList(list *List) interface{}

	// Visit expression nodes
	VisitIgnoreValue(iv *IgnoreValue) interface{}
	VisitIntegerLiteral(lit *IntegerLiteral) interface{}
}

// BaseVisitor provides default implementations for all visitor methods
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(program *Program) interface{} {
	for _, item := range program.Items {
		item.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunctionDefinition(fn *FunctionDefinition) interface{} {
	for _, param := range fn.Parameters {
		param.Accept(bv)
	}

	if fn.ReturnType != nil {
		fn.ReturnType.Accept(bv)
	}

	if fn.Body != nil {
		fn.Body.Accept(bv)
	}

	return nil
}

func (bv *BaseVisitor) VisitParameterDeclaration(param *ParameterDeclaration) interface{} {
	if param.DeclaredType != nil {
		return param.DeclaredType.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitVariableDefinition(vd *VariableDefinition) interface{} {
	if vd.DeclaredType != nil {
		vd.DeclaredType.Accept(bv)
	}

	if vd.Value != nil {
		vd.Value.Accept(bv)
	}

	return nil
}

func (bv *BaseVisitor) VisitType(t *Type) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitList(list *List) interface{} {
	for _, item := range list.Items {
		item.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIgnoreValue(iv *IgnoreValue) interface{} {
	if iv.Expr != nil {
		return iv.Expr.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIntegerLiteral(lit *IntegerLiteral) interface{} {
	return nil // Terminal node
}

// TreeVisitor creates an indented tree representation of the AST
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
}

func (tv *TreeVisitor) VisitProgram(program *Program) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString("Program:\n")
	tv.indent++

	for _, item := range program.Items {
		item.Accept(tv)
	}

	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitFunctionDefinition(fn *FunctionDefinition) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("FunctionDefinition: %s -> %s\n", fn.Name, fn.ReturnType.String()))
	tv.indent++

	for _, param := range fn.Parameters {
		param.Accept(tv)
	}

	tv.writeIndent()
	tv.buffer.WriteString("Body:\n")
	tv.indent++
	fn.Body.Accept(tv)
	tv.indent--

	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitParameterDeclaration(param *ParameterDeclaration) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Parameter: %s\n", param.String()))
	return nil
}

func (tv *TreeVisitor) VisitVariableDefinition(vd *VariableDefinition) interface{} {
	tv.writeIndent()
	if vd.Mutable {
		tv.buffer.WriteString(fmt.Sprintf("VariableDefinition: let mut %s: %s\n", vd.Name, vd.DeclaredType.String()))
	} else {
		tv.buffer.WriteString(fmt.Sprintf("VariableDefinition: let %s: %s\n", vd.Name, vd.DeclaredType.String()))
	}

	tv.indent++
	vd.Value.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitType(t *Type) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("Type: %s\n", t.Primitive.String()))
	return nil
}

func (tv *TreeVisitor) VisitList(list *List) interface{} {
	for _, item := range list.Items {
		item.Accept(tv)
	}
	return nil
}

func (tv *TreeVisitor) VisitIgnoreValue(iv *IgnoreValue) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString("IgnoreValue:\n")
	tv.indent++
	iv.Expr.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitIntegerLiteral(lit *IntegerLiteral) interface{} {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf("IntegerLiteral: %d\n", lit.Value))
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitProgram(program *Program) interface{} {
	if err := program.Validate(); err != nil {
		vv.addError(fmt.Errorf("program validation failed: %w", err))
	}

	// Continue with base visitor behavior
	vv.BaseVisitor.VisitProgram(program)
	return nil
}

func (vv *ValidationVisitor) VisitFunctionDefinition(fn *FunctionDefinition) interface{} {
	if err := fn.Validate(); err != nil {
		vv.addError(fmt.Errorf("function definition validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitFunctionDefinition(fn)
}

func (vv *ValidationVisitor) VisitParameterDeclaration(param *ParameterDeclaration) interface{} {
	if err := param.Validate(); err != nil {
		vv.addError(fmt.Errorf("parameter validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitParameterDeclaration(param)
}

func (vv *ValidationVisitor) VisitVariableDefinition(vd *VariableDefinition) interface{} {
	if err := vd.Validate(); err != nil {
		vv.addError(fmt.Errorf("variable definition validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitVariableDefinition(vd)
}

func (vv *ValidationVisitor) VisitType(t *Type) interface{} {
	if err := t.Validate(); err != nil {
		vv.addError(fmt.Errorf("type validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitType(t)
}

func (vv *ValidationVisitor) VisitList(list *List) interface{} {
	if err := list.Validate(); err != nil {
		vv.addError(fmt.Errorf("list validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitList(list)
}

func (vv *ValidationVisitor) VisitIgnoreValue(iv *IgnoreValue) interface{} {
	if err := iv.Validate(); err != nil {
		vv.addError(fmt.Errorf("ignore value validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitIgnoreValue(iv)
}

func (vv *ValidationVisitor) VisitIntegerLiteral(lit *IntegerLiteral) interface{} {
	if err := lit.Validate(); err != nil {
		vv.addError(fmt.Errorf("integer literal validation failed: %w", err))
	}

	return vv.BaseVisitor.VisitIntegerLiteral(lit)
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Functions []*FunctionDefinition
	Variables []*VariableDefinition
	Literals  []*IntegerLiteral
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Functions: make([]*FunctionDefinition, 0),
		Variables: make([]*VariableDefinition, 0),
		Literals:  make([]*IntegerLiteral, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Functions = cv.Functions[:0]
	cv.Variables = cv.Variables[:0]
	cv.Literals = cv.Literals[:0]
}

// All traversal methods recurse through the collector itself so nested
// nodes keep dispatching back here

func (cv *CollectorVisitor) VisitProgram(program *Program) interface{} {
	for _, item := range program.Items {
		item.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitFunctionDefinition(fn *FunctionDefinition) interface{} {
	cv.Functions = append(cv.Functions, fn)

	for _, param := range fn.Parameters {
		param.Accept(cv)
	}
	if fn.ReturnType != nil {
		fn.ReturnType.Accept(cv)
	}
	if fn.Body != nil {
		fn.Body.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitParameterDeclaration(param *ParameterDeclaration) interface{} {
	if param.DeclaredType != nil {
		return param.DeclaredType.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitVariableDefinition(vd *VariableDefinition) interface{} {
	cv.Variables = append(cv.Variables, vd)

	if vd.DeclaredType != nil {
		vd.DeclaredType.Accept(cv)
	}
	if vd.Value != nil {
		vd.Value.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitList(list *List) interface{} {
	for _, item := range list.Items {
		item.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitIgnoreValue(iv *IgnoreValue) interface{} {
	if iv.Expr != nil {
		return iv.Expr.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitIntegerLiteral(lit *IntegerLiteral) interface{} {
	cv.Literals = append(cv.Literals, lit)
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to an indented tree representation
func ASTToString(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects specific types of nodes from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
