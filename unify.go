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
	"github.com/wdamron/sysf/types"
)

func (ti *InferenceContext) unify(a, b types.Type) error {
	if ti.trace {
		ti.tracef("unify %s ~ %s", types.TypeString(a), types.TypeString(b))
	}
	if a == b {
		return nil
	}

	switch a := a.(type) {
	case *types.Var:
		if b, ok := b.(*types.Var); ok && a.Name == b.Name {
			return nil
		}

	case *types.Skolem:
		if b, ok := b.(*types.Skolem); ok && a.Id() == b.Id() {
			return nil
		}

	case *types.Arrow:
		if b, ok := b.(*types.Arrow); ok {
			if err := ti.unify(a.Param, b.Param); err != nil {
				return err
			}
			return ti.unify(a.Return, b.Return)
		}

	case *types.App:
		if b, ok := b.(*types.App); ok {
			if err := ti.unify(a.Func, b.Func); err != nil {
				return err
			}
			return ti.unify(a.Arg, b.Arg)
		}

	case *types.Forall:
		// quantified types are equal if their bodies are equal for an arbitrary bound type
		if b, ok := b.(*types.Forall); ok {
			sk := ti.tracker.NewSkolem()
			return ti.unify(ti.tracker.Open(a, sk), ti.tracker.Open(b, sk))
		}
	}

	if m, ok := a.(*types.Meta); ok {
		return ti.solve(m, b)
	}
	if m, ok := b.(*types.Meta); ok {
		return ti.solve(m, a)
	}
	return &UnificationMismatchError{A: ti.tracker.Prune(a), B: ti.tracker.Prune(b)}
}

// Solve m with t, or unify the existing solution of m with t.
func (ti *InferenceContext) solve(m *types.Meta, t types.Type) error {
	if ti.trace {
		ti.tracef("solve %s%s := %s", types.TypeString(m), m.Scope().String(), types.TypeString(t))
	}
	if t == types.Type(m) {
		return nil
	}
	if sol := ti.tracker.Solution(m); sol != nil {
		return ti.unify(sol, t)
	}
	if tm, ok := t.(*types.Meta); ok {
		if sol := ti.tracker.Solution(tm); sol != nil {
			return ti.solve(m, sol)
		}
	}
	if reason, ok := ti.checkSolution(m, t); !ok {
		return &ScopeEscapeError{Meta: m, Solution: ti.tracker.Prune(t), Reason: reason}
	}
	return ti.tracker.Bind(m, t)
}

// Check if m may be solved with t. A solution must not contain m, must only mention skolem
// constants within the scope of m, and must only mention unsolved metavariables with the
// same scope as m.
func (ti *InferenceContext) checkSolution(m *types.Meta, t types.Type) (EscapeReason, bool) {
	switch t := t.(type) {
	case *types.Meta:
		if t == m {
			return OccursCheck, false
		}
		if sol := ti.tracker.Solution(t); sol != nil {
			return ti.checkSolution(m, sol)
		}
		if !m.Scope().Equal(t.Scope()) {
			return ScopeMismatch, false
		}

	case *types.Skolem:
		if !m.Scope().Contains(t.Id()) {
			return SkolemEscape, false
		}

	case *types.Arrow:
		if reason, ok := ti.checkSolution(m, t.Param); !ok {
			return reason, false
		}
		return ti.checkSolution(m, t.Return)

	case *types.App:
		if reason, ok := ti.checkSolution(m, t.Func); !ok {
			return reason, false
		}
		return ti.checkSolution(m, t.Arg)

	case *types.Forall:
		return ti.checkSolution(m, t.Body)
	}
	return 0, true
}
