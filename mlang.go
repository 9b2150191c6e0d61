// File: mlang.go
// Title: mLang Main Interface and Engine
// Description: Provides the main mLang engine interface and high-level API
//              for tokenizing and parsing mLang source files. Integrates the
//              parser and AST components behind a single front end entry
//              point.
// Author: msto63
// Version: v0.1.1
// Created: 2026-08-14
// Modified: 2026-08-22
//
// Change History:
// - 2026-08-14 v0.1.0: Initial mLang engine implementation
// - 2026-08-22 v0.1.1: Log Tokenize runs like ParseString

package mlang

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/msto63/mLang/ast"
	"github.com/msto63/mLang/parser"
)

// Engine represents the main mLang engine that coordinates tokenizing
// and parsing
type Engine struct {
	parser  *parser.Parser
	logger  *logrus.Entry
	options Options
}

// Options configures the mLang engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to the standard logger)
	Logger *logrus.Logger

	// MaxSourceSize limits input source size in bytes (default: 1 MiB)
	MaxSourceSize int

	// CollectTokens records the full token stream of every run in the
	// result (default: false)
	CollectTokens bool
}

// Result represents the result of an mLang front end run
type Result struct {
	// Success indicates if the source was processed successfully
	Success bool

	// Program is the parsed AST representation
	Program *ast.Program

	// Tokens contains the token stream when token collection is enabled
	Tokens []parser.Token

	// SourceName names the processed source, usually a file path
	SourceName string

	// CompileID uniquely identifies this run
	CompileID string

	// Duration is the time taken by the run
	Duration time.Duration
}

// Error represents an mLang-specific error with additional context
type Error struct {
	Err        error
	sourceName string
	compileID  string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "mLang error"
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Error methods for mLang-specific error information
func (e *Error) SourceName() string { return e.sourceName }
func (e *Error) CompileID() string  { return e.compileID }

// NewEngine creates a new mLang engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:        logrus.StandardLogger(),
		MaxSourceSize: 1 << 20,
		CollectTokens: false,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxSourceSize > 0 {
			options.MaxSourceSize = provided.MaxSourceSize
		}
		options.CollectTokens = provided.CollectTokens
	}

	// Create logger with engine context
	logger := options.Logger.WithField("component", "mlang-engine")

	// Create parser
	p, err := parser.New(parser.Options{
		Logger:        options.Logger,
		MaxSourceSize: options.MaxSourceSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mLang parser: %w", err)
	}

	engine := &Engine{
		parser:  p,
		logger:  logger,
		options: options,
	}

	logger.WithFields(logrus.Fields{
		"maxSourceSize": options.MaxSourceSize,
		"collectTokens": options.CollectTokens,
	}).Debug("mLang engine initialized")

	return engine, nil
}

// ParseString tokenizes and parses mLang source held in a string.
// The returned result carries the parsed program on success; on failure
// it still names the source and run so callers can report both.
func (e *Engine) ParseString(sourceName, source string) (*Result, error) {
	compileID := uuid.NewString()
	start := time.Now()

	logger := e.logger.WithFields(logrus.Fields{
		"source":    sourceName,
		"compileId": compileID,
	})
	logger.Debug("compilation started")

	if err := e.validateSource(source); err != nil {
		return nil, &Error{Err: err, sourceName: sourceName, compileID: compileID}
	}

	result := &Result{
		SourceName: sourceName,
		CompileID:  compileID,
	}

	// Record the raw token stream first when requested
	if e.options.CollectTokens {
		tokens, err := parser.TokenizeString(source)
		result.Tokens = tokens
		if err != nil {
			result.Duration = time.Since(start)
			logger.WithField("error", err.Error()).Warn("tokenizing failed")
			return result, e.wrapError(err, sourceName, compileID)
		}
	}

	program, err := e.parser.ParseString(source)
	if err != nil {
		result.Duration = time.Since(start)
		logger.WithField("error", err.Error()).Warn("compilation failed")
		return result, e.wrapError(err, sourceName, compileID)
	}

	result.Success = true
	result.Program = program
	result.Duration = time.Since(start)

	logger.WithFields(logrus.Fields{
		"items":    len(program.Items),
		"duration": result.Duration,
	}).Debug("compilation completed")

	return result, nil
}

// ParseFile tokenizes and parses an mLang source file
func (e *Engine) ParseFile(path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Err:        fmt.Errorf("failed to read source file: %w", err),
			sourceName: path,
		}
	}

	return e.ParseString(path, string(content))
}

// Tokenize produces the token stream of an mLang source without parsing
// it. On a lexical error the tokens read up to the failure are still
// returned alongside the error.
func (e *Engine) Tokenize(sourceName, source string) (*Result, error) {
	compileID := uuid.NewString()
	start := time.Now()

	logger := e.logger.WithFields(logrus.Fields{
		"source":    sourceName,
		"compileId": compileID,
	})
	logger.Debug("tokenizing started")

	if err := e.validateSource(source); err != nil {
		return nil, &Error{Err: err, sourceName: sourceName, compileID: compileID}
	}

	tokens, err := parser.TokenizeString(source)
	result := &Result{
		SourceName: sourceName,
		CompileID:  compileID,
		Tokens:     tokens,
		Duration:   time.Since(start),
	}
	if err != nil {
		logger.WithField("error", err.Error()).Warn("tokenizing failed")
		return result, e.wrapError(err, sourceName, compileID)
	}

	result.Success = true
	logger.WithFields(logrus.Fields{
		"tokens":   len(tokens),
		"duration": result.Duration,
	}).Debug("tokenizing completed")

	return result, nil
}

// Validate checks if mLang source is syntactically valid
func (e *Engine) Validate(source string) error {
	_, err := e.ParseString("<memory>", source)
	return err
}

// validateSource validates the input source string. An empty source is
// valid and parses to an empty program.
func (e *Engine) validateSource(source string) error {
	if len(source) > e.options.MaxSourceSize {
		return fmt.Errorf("source exceeds maximum size: %d > %d",
			len(source), e.options.MaxSourceSize)
	}
	return nil
}

// wrapError wraps front end errors with run context
func (e *Engine) wrapError(err error, sourceName, compileID string) error {
	return &Error{
		Err:        err,
		sourceName: sourceName,
		compileID:  compileID,
	}
}

// String returns a string representation of the result
func (r *Result) String() string {
	if !r.Success {
		return fmt.Sprintf("FAILED: %s", r.SourceName)
	}

	return fmt.Sprintf("SUCCESS: %s (Items: %d, Duration: %v)",
		r.SourceName, r.ItemCount(), r.Duration)
}

// ItemCount returns the number of top-level items in the parsed program
func (r *Result) ItemCount() int {
	if r.Program == nil {
		return 0
	}
	return len(r.Program.Items)
}

// TokenCount returns the number of collected tokens
func (r *Result) TokenCount() int {
	return len(r.Tokens)
}
