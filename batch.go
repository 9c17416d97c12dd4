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
	"context"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/types"
)

// Result of inferring the type of a single expression with InferAll.
type Result struct {
	Expr ast.Expr
	// Type is the inferred type, or nil if inference failed.
	Type types.Type
	// Err is the error which caused inference to fail.
	Err error
	// Invalid is the expression which caused inference to fail.
	Invalid ast.Expr
}

// Options for InferAll.
type BatchOptions struct {
	// Limit is the maximum number of concurrent inference runs. Zero or less means no limit.
	Limit int
	// Trace each step of inference at the debug level.
	Trace bool
	// Logger is used for tracing. By default, the "sysf" logger is used.
	Logger commonlog.Logger
}

// InferAll infers the types of independent expressions within env concurrently, using one
// inference context per expression. Results are returned in the order of exprs.
//
// Inference failures are reported within each result. An error is returned only if ctx
// is cancelled before all expressions have been inferred; results for expressions which
// were not inferred are left empty.
func InferAll(ctx context.Context, env *TypeEnv, exprs []ast.Expr, opts BatchOptions) ([]Result, error) {
	results := make([]Result, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}
	for i, expr := range exprs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ti := NewContext()
			ti.EnableTracing(opts.Trace)
			if opts.Logger != nil {
				ti.SetLogger(opts.Logger)
			}
			t, err := ti.Infer(expr, env)
			results[i] = Result{Expr: expr, Type: t, Err: err, Invalid: ti.InvalidExpr()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
