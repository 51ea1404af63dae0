// File: polycallfile.go
// Title: Polycallfile Main Interface and Engine
// Description: Provides the main Polycallfile engine interface and
//              high-level API for parsing and processing configuration
//              sources. Integrates parser, AST, macro, and eval components.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial Polycallfile engine implementation

package polycallfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
	"github.com/msto63/polycall/foundation/polycallfile/eval"
	"github.com/msto63/polycall/foundation/polycallfile/macro"
	"github.com/msto63/polycall/foundation/polycallfile/parser"
	"github.com/msto63/polycall/foundation/utils/filex"
)

// Engine is the main entry point for processing Polycallfile sources.
// It ties the parser, macro expander, evaluator and conditional reducer
// together into a single pipeline.
type Engine struct {
	parser  *parser.Parser
	logger  *pclog.Logger
	options Options
}

// Options configures the Polycallfile engine
type Options struct {
	// Logger receives processing logs; defaults to the package default
	Logger *pclog.Logger

	// LogLevel overrides the logger threshold when set; the zero value
	// leaves the logger unchanged
	LogLevel pclog.Level

	// MaxInputLength bounds the accepted source size in bytes
	MaxInputLength int

	// MaxExpansionDepth bounds chained macro substitutions
	MaxExpansionDepth int

	// StrictEval makes unresolved references inside expressions an
	// evaluation error; when false they evaluate to Null
	StrictEval bool
}

// NewEngine creates a new Polycallfile engine with the given options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:            pclog.GetDefault(),
		MaxInputLength:    parser.DefaultMaxInputLength,
		MaxExpansionDepth: macro.DefaultMaxExpansionDepth,
		StrictEval:        true,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel > pclog.LevelTrace {
			options.LogLevel = provided.LogLevel
			options.Logger = options.Logger.WithLevel(provided.LogLevel)
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		if provided.MaxExpansionDepth > 0 {
			options.MaxExpansionDepth = provided.MaxExpansionDepth
		}
		options.StrictEval = provided.StrictEval
	}

	logger := options.Logger.WithField("component", "polycallfile-engine")

	p, err := parser.New(parser.Options{
		Logger:         options.Logger,
		MaxInputLength: options.MaxInputLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize parser: %w", err)
	}

	engine := &Engine{
		parser:  p,
		logger:  logger,
		options: options,
	}

	logger.Info("Polycallfile engine initialized", pclog.Fields{
		"max_input_length":    options.MaxInputLength,
		"max_expansion_depth": options.MaxExpansionDepth,
		"strict_eval":         options.StrictEval,
	})

	return engine, nil
}

// Process runs the full pipeline on a source string: parse, macro
// definition collection, macro expansion and conditional reduction. The
// returned tree contains no define directives, no macro references and
// no if directives. A syntax error discards the partial tree and returns
// the first recorded diagnostic; ParseErrors lists the rest.
func (e *Engine) Process(source string) (*ast.Node, error) {
	requestID := uuid.New().String()
	logger := e.logger.WithRequestID(requestID)

	timer := logger.StartTimer("polycallfile_processing")
	defer timer.Stop()

	if err := e.validateInput(source); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	root, err := e.parser.Parse(source)
	if err != nil {
		wrapped := e.wrapParseError(err)
		timer.StopWithError(wrapped)
		logger.Warn("processing aborted by syntax errors", pclog.Fields{
			"error":       wrapped.Error(),
			"error_count": len(e.parser.Errors()),
		})
		return nil, wrapped
	}
	timer.Checkpoint("parsed")

	table := macro.NewTable(macro.Options{Logger: logger})
	defined, err := macro.CollectDefinitions(table, root)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	expander := macro.NewExpander(table, macro.ExpandOptions{
		Logger:   logger,
		MaxDepth: e.options.MaxExpansionDepth,
	})
	if err := expander.Expand(root); err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.Checkpoint("macros_expanded")

	if err := Reduce(root, ReduceOptions{
		Logger:  logger,
		Lenient: !e.options.StrictEval,
	}); err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.Checkpoint("reduced")

	logger.Info("source processed", pclog.Fields{
		"macros_defined":      defined,
		"macro_substitutions": expander.Count(),
		"nodes":               ast.Count(root),
	})

	return root, nil
}

// ProcessFile reads a configuration file and processes its contents.
// This is the only place the package touches the filesystem.
func (e *Engine) ProcessFile(path string) (*ast.Node, error) {
	source, err := filex.ReadString(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, pcerror.Wrap(err, fmt.Sprintf("configuration file not found: %s", path)).
				WithCode(pcerror.CodeFileNotFound)
		}
		return nil, pcerror.Wrap(err, fmt.Sprintf("failed to read configuration file: %s", path)).
			WithCode(pcerror.CodeIOError)
	}

	e.logger.Debug("configuration file read", pclog.Fields{
		"path": path,
		"size": filex.FormatSize(int64(len(source))),
	})

	return e.Process(source)
}

// Parse parses a source string into its syntax tree without macro
// expansion or conditional reduction. Directives remain in the tree
// exactly as written.
func (e *Engine) Parse(source string) (*ast.Node, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	root, err := e.parser.Parse(source)
	if err != nil {
		return nil, e.wrapParseError(err)
	}
	return root, nil
}

// Tokenize scans a source string into its token stream. On a lexical
// error the stream is still returned in full alongside the diagnostic.
func (e *Engine) Tokenize(source string) ([]parser.Token, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	tokens, err := parser.TokenizeInput(source)
	if err != nil {
		for _, tok := range tokens {
			if tok.Type == parser.TokenError {
				return tokens, pcerror.NewLex(tok.Value, tok.Line, tok.Column)
			}
		}
		return tokens, pcerror.New(err.Error()).WithCode(pcerror.CodeLexError)
	}
	return tokens, nil
}

// Evaluate resolves a single dotted path inside a processed tree and
// returns its typed value. Strictness follows the engine options.
func (e *Engine) Evaluate(root *ast.Node, path string) (eval.Value, error) {
	evaluator := eval.NewEvaluator(root, eval.Options{
		Logger:  e.options.Logger,
		Lenient: !e.options.StrictEval,
	})
	return evaluator.Evaluate(ast.New(ast.KindIdentifier, path))
}

// Print renders a tree back to canonical source text
func (e *Engine) Print(root *ast.Node) string {
	return ast.PrintSource(root)
}

// ParseErrors returns the syntax errors recorded by the most recent
// Parse or Process call
func (e *Engine) ParseErrors() []*parser.ParseError {
	return e.parser.Errors()
}

// validateInput applies the engine-level input checks. An empty source
// is valid and parses to an empty tree.
func (e *Engine) validateInput(source string) error {
	if len(source) > e.options.MaxInputLength {
		return pcerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d",
			len(source), e.options.MaxInputLength)).
			WithCode(pcerror.CodeInvalidInput)
	}
	return nil
}

// wrapParseError converts parser diagnostics into the structured error
// type shared across the platform
func (e *Engine) wrapParseError(err error) error {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return pcerror.NewSyntax(parseErr.Message, parseErr.Line, parseErr.Column)
	}

	var pcErr *pcerror.Error
	if errors.As(err, &pcErr) {
		return pcErr
	}

	return pcerror.Wrap(err, "parsing failed").WithCode(pcerror.CodeSyntaxError)
}
