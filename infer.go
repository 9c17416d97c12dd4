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
	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/internal/typeutil"
	"github.com/wdamron/sysf/types"
)

// Check that e has type t.
func (ti *InferenceContext) check(env scope, tvs types.Scope, e ast.Expr, t types.Type) error {
	if ti.trace {
		ti.tracef("check %s : %s", ast.ExprString(e), types.TypeString(t))
	}
	if m, ok := t.(*types.Meta); ok {
		if sol := ti.tracker.Solution(m); sol != nil {
			return ti.check(env, tvs, e, sol)
		}
	}
	if f, ok := t.(*types.Forall); ok {
		sk := ti.tracker.NewSkolem()
		return ti.check(env, tvs.Extend(sk.Id()), e, ti.tracker.Open(f, sk))
	}

	switch e := e.(type) {
	case *ast.Func:
		if arrow, ok := t.(*types.Arrow); ok {
			return ti.check(env.bind(e.ArgName, arrow.Param), tvs, e.Body, arrow.Return)
		}

	case *ast.App:
		head, args := ast.Spine(e)
		ft, err := ti.synth(env, tvs, head)
		if err != nil {
			return err
		}
		ret, pending, err := ti.collect(tvs, ft, args)
		if err != nil {
			return ti.fail(e, err)
		}
		// The result type is matched with the expected type before any argument is checked.
		if err := ti.subsume(tvs, ret, t); err != nil {
			return ti.fail(e, err)
		}
		return ti.checkArgs(env, tvs, pending)
	}

	inferred, err := ti.synth(env, tvs, e)
	if err != nil {
		return err
	}
	if err := ti.subsume(tvs, inferred, t); err != nil {
		return ti.fail(e, err)
	}
	return nil
}

// Synthesize a type for e.
func (ti *InferenceContext) synth(env scope, tvs types.Scope, e ast.Expr) (types.Type, error) {
	if ti.trace {
		ti.tracef("synth %s", ast.ExprString(e))
	}
	switch e := e.(type) {
	case *ast.Var:
		t, ok := env.lookup(e.Name)
		if !ok {
			return nil, ti.fail(e, &UnboundVariableError{Name: e.Name})
		}
		return t, nil

	case *ast.Ann:
		if e.Type == nil {
			break
		}
		if err := ti.check(env, tvs, e.Expr, e.Type); err != nil {
			return nil, err
		}
		return e.Type, nil

	case *ast.App:
		head, args := ast.Spine(e)
		ft, err := ti.synth(env, tvs, head)
		if err != nil {
			return nil, err
		}
		ret, pending, err := ti.collect(tvs, ft, args)
		if err != nil {
			return nil, ti.fail(e, err)
		}
		if err := ti.checkArgs(env, tvs, pending); err != nil {
			return nil, err
		}
		return ret, nil

	case *ast.Func:
		param, ret := ti.tracker.NewMeta(tvs), ti.tracker.NewMeta(tvs)
		if err := ti.check(env.bind(e.ArgName, param), tvs, e.Body, ret); err != nil {
			return nil, err
		}
		return &types.Arrow{Param: param, Return: ret}, nil
	}

	return nil, ti.fail(e, &UnsynthesizableError{Expr: e})
}

// Match the arguments of an application with the parameters of the function type t,
// returning the result type of the application and the arguments paired with their
// expected types. Quantifiers are instantiated as they are encountered, and an unsolved
// metavariable is solved with a function type when arguments remain.
func (ti *InferenceContext) collect(tvs types.Scope, t types.Type, args []ast.Expr) (types.Type, typeutil.PendingArgs, error) {
	var pending typeutil.PendingArgs
	for len(args) > 0 {
		switch ft := t.(type) {
		case *types.Forall:
			t = ti.tracker.Open(ft, ti.tracker.NewMeta(tvs))
			continue

		case *types.Arrow:
			pending = pending.Append(args[0], ft.Param)
			t, args = ft.Return, args[1:]
			continue

		case *types.Meta:
			if sol := ti.tracker.Solution(ft); sol != nil {
				t = sol
				continue
			}
			arrow := &types.Arrow{Param: ti.tracker.NewMeta(ft.Scope()), Return: ti.tracker.NewMeta(ft.Scope())}
			if err := ti.tracker.Bind(ft, arrow); err != nil {
				return nil, pending, err
			}
			t = arrow
			continue
		}
		return nil, pending, &NotAFunctionError{Type: ti.tracker.Prune(t), Args: args}
	}
	return t, pending, nil
}

func (ti *InferenceContext) checkArgs(env scope, tvs types.Scope, pending typeutil.PendingArgs) error {
	var err error
	pending.Range(func(i int, p typeutil.PendingArg) bool {
		err = ti.check(env, tvs, p.Arg, p.Type)
		return err == nil
	})
	return err
}
