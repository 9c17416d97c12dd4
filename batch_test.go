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

package sysf_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/wdamron/sysf"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/prelude"
	"github.com/wdamron/sysf/types"
)

func exampleExprs(examples []prelude.Example) []ast.Expr {
	exprs := make([]ast.Expr, len(examples))
	for i, ex := range examples {
		exprs[i] = ex.Expr
	}
	return exprs
}

func TestInferAll(t *testing.T) {
	env := prelude.Env()
	examples := prelude.Examples()
	exprs := exampleExprs(examples)

	for _, opts := range []BatchOptions{{}, {Limit: 1}, {Limit: 3, Trace: true}} {
		results, err := InferAll(context.Background(), env, exprs, opts)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != len(exprs) {
			t.Fatalf("results: %d, expected: %d", len(results), len(exprs))
		}

		ctx := NewContext()
		for i, res := range results {
			ex := examples[i]
			if res.Expr != exprs[i] {
				t.Fatalf("%s: result out of order", ex.Name)
			}
			ty, err := ctx.Infer(ex.Expr, env)
			if (err == nil) != (res.Err == nil) {
				t.Fatalf("%s: concurrent error: %v, sequential error: %v", ex.Name, res.Err, err)
			}
			if err != nil {
				if res.Invalid == nil || res.Err.Error() != err.Error() {
					t.Fatalf("%s: concurrent error: %v, sequential error: %v", ex.Name, res.Err, err)
				}
				continue
			}
			if types.TypeString(ty) != types.TypeString(res.Type) || types.TypeString(ty) != ex.Want {
				t.Fatalf("%s: concurrent type: %s, sequential type: %s", ex.Name, types.TypeString(res.Type), types.TypeString(ty))
			}
		}
	}
}

func TestInferAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := InferAll(ctx, prelude.Env(), exampleExprs(prelude.Examples()), BatchOptions{Limit: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got: %v", err)
	}
	for _, res := range results {
		if res.Type != nil {
			t.Fatalf("expected no inference after cancellation")
		}
	}

	results, err = InferAll(context.Background(), prelude.Env(), nil, BatchOptions{})
	if err != nil || len(results) != 0 {
		t.Fatalf("results: %v, error: %v", results, err)
	}
}
