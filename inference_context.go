// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package sysf

import (
	"errors"

	"github.com/tliron/commonlog"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/internal/typeutil"
	"github.com/wdamron/sysf/types"
)

// InferenceContext is a reusable context for type inference.
//
// Each call to Infer is an independent inference run with its own metavariables and
// skolem constants, whose ids restart at zero. An inference context cannot be used
// concurrently; create one context per goroutine (see InferAll).
type InferenceContext struct {
	tracker    typeutil.VarTracker
	log        commonlog.Logger
	trace      bool
	needsReset bool

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{} }

func (ti *InferenceContext) reset() {
	ti.tracker.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Trace each step of inference (unification, subsumption, checking and synthesis) at the
// debug level. Tracing is disabled by default.
func (ti *InferenceContext) EnableTracing(enabled bool) { ti.trace = enabled }

// Set the logger used for tracing. By default, the "sysf" logger is used.
func (ti *InferenceContext) SetLogger(log commonlog.Logger) { ti.log = log }

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Get the number of metavariables allocated by the most recent inference run.
func (ti *InferenceContext) MetaCount() int { return ti.tracker.MetaCount() }

// Infer the type of expr within env.
//
// Solved metavariables are pruned from the returned type. Unsolved metavariables may
// remain; they are only meaningful within the run which created them.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if expr == nil {
		ti.err = errors.New("Empty expression")
		return nil, ti.err
	}
	if env == nil {
		ti.err = errors.New("Empty type-environment")
		return nil, ti.err
	}
	if ti.trace && ti.log == nil {
		ti.log = commonlog.GetLogger("sysf")
	}
	t, err := ti.synth(scope{global: env}, types.EmptyScope, expr)
	if err != nil {
		return nil, err
	}
	return ti.tracker.Prune(t), nil
}

// Record the first failure of an inference run, along with the expression being inferred.
func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	if ti.err == nil {
		ti.err, ti.invalid = err, e
	}
	return err
}

func (ti *InferenceContext) tracef(format string, args ...interface{}) {
	if ti.trace && ti.log != nil {
		ti.log.Debugf(format, args...)
	}
}

// scope is the term-level environment of an inference run.
type scope struct {
	global *TypeEnv
	locals typeutil.Bindings
}

func (s scope) lookup(name string) (types.Type, bool) {
	if t, ok := s.locals.Lookup(name); ok {
		return t, true
	}
	return s.global.Lookup(name)
}

func (s scope) bind(name string, t types.Type) scope {
	return scope{global: s.global, locals: s.locals.Bind(name, t)}
}
