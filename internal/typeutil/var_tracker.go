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

package typeutil

import (
	"errors"
	"strconv"

	"github.com/wdamron/sysf/types"
)

// VarTracker allocates metavariables and skolem constants for a single inference run,
// and owns the solution table for the metavariables it allocated.
//
// Each metavariable's slot starts empty and may be filled once. Afterwards the slot
// only changes when Prune shortens a chain of solved metavariables in place.
type VarTracker struct {
	NextMetaId   int
	NextSkolemId int
	metas        []*types.Meta
	solutions    []types.Type
}

// Reset discards all metavariables and skolem constants, and restarts both id counters at zero.
func (vt *VarTracker) Reset() {
	for i := range vt.metas {
		vt.metas[i], vt.solutions[i] = nil, nil
	}
	vt.NextMetaId, vt.NextSkolemId = 0, 0
	vt.metas, vt.solutions = vt.metas[:0], vt.solutions[:0]
}

// Create an unsolved metavariable which may only be solved with types mentioning
// skolem constants from the given scope.
func (vt *VarTracker) NewMeta(scope types.Scope) *types.Meta {
	m := types.NewMeta(vt.NextMetaId, scope)
	vt.NextMetaId++
	vt.metas, vt.solutions = append(vt.metas, m), append(vt.solutions, nil)
	return m
}

// Create a skolem constant which is distinct from all others in the run.
func (vt *VarTracker) NewSkolem() *types.Skolem {
	s := types.NewSkolem(vt.NextSkolemId)
	vt.NextSkolemId++
	return s
}

// MetaCount returns the number of metavariables allocated since the last reset.
func (vt *VarTracker) MetaCount() int { return len(vt.metas) }

func (vt *VarTracker) owns(m *types.Meta) bool {
	id := m.Id()
	return id >= 0 && id < len(vt.metas) && vt.metas[id] == m
}

// Solution returns the type which m was solved with, or nil if m is unsolved.
// Metavariables allocated by other runs are always unsolved.
func (vt *VarTracker) Solution(m *types.Meta) types.Type {
	if !vt.owns(m) {
		return nil
	}
	return vt.solutions[m.Id()]
}

// IsSolved returns true if m has a solution.
func (vt *VarTracker) IsSolved(m *types.Meta) bool { return vt.Solution(m) != nil }

// Bind fills the solution slot of an unsolved metavariable. A slot may only be filled once.
//
// Bind does not check the solution; see the unifier for scope and occurs checks.
func (vt *VarTracker) Bind(m *types.Meta, t types.Type) error {
	switch {
	case !vt.owns(m):
		return errors.New("Metavariable '_" + strconv.Itoa(m.Id()) + " was not allocated by this inference run")
	case t == nil:
		return errors.New("Cannot solve metavariable '_" + strconv.Itoa(m.Id()) + " with a nil type")
	case vt.solutions[m.Id()] != nil:
		return errors.New("Metavariable '_" + strconv.Itoa(m.Id()) + " is already solved")
	}
	vt.solutions[m.Id()] = t
	return nil
}

// Resolve follows a chain of solved metavariables. The result is either not a
// metavariable, or an unsolved metavariable.
func (vt *VarTracker) Resolve(t types.Type) types.Type {
	for {
		m, ok := t.(*types.Meta)
		if !ok {
			return t
		}
		sol := vt.Solution(m)
		if sol == nil {
			return t
		}
		t = sol
	}
}

// Prune replaces every solved metavariable within t with its (pruned) solution.
//
// Solution chains are shortened in place, so later prunes of the same metavariable
// do not walk the chain again. Unchanged sub-trees are returned as-is.
func (vt *VarTracker) Prune(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Meta:
		sol := vt.Solution(t)
		if sol == nil {
			return t
		}
		pruned := vt.Prune(sol)
		vt.solutions[t.Id()] = pruned
		return pruned

	case *types.Arrow:
		param, ret := vt.Prune(t.Param), vt.Prune(t.Return)
		if param == t.Param && ret == t.Return {
			return t
		}
		return &types.Arrow{Param: param, Return: ret}

	case *types.App:
		fn, arg := vt.Prune(t.Func), vt.Prune(t.Arg)
		if fn == t.Func && arg == t.Arg {
			return t
		}
		return &types.App{Func: fn, Arg: arg}

	case *types.Forall:
		body := vt.Prune(t.Body)
		if body == t.Body {
			return t
		}
		return &types.Forall{Name: t.Name, Body: body}
	}
	return t
}

// Open returns the body of a Forall with each occurrence of its bound variable
// replaced by the given type.
func (vt *VarTracker) Open(f *types.Forall, with types.Type) types.Type {
	return vt.Subst(f.Name, with, f.Body)
}

// Subst replaces free occurrences of the named type-variable within t. Solved
// metavariables are replaced by their substituted solutions, and a nested Forall
// which re-binds the name is left unchanged.
func (vt *VarTracker) Subst(name string, with types.Type, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if t.Name == name {
			return with
		}
		return t

	case *types.Meta:
		if sol := vt.Solution(t); sol != nil {
			return vt.Subst(name, with, sol)
		}
		return t

	case *types.Arrow:
		return &types.Arrow{Param: vt.Subst(name, with, t.Param), Return: vt.Subst(name, with, t.Return)}

	case *types.App:
		return &types.App{Func: vt.Subst(name, with, t.Func), Arg: vt.Subst(name, with, t.Arg)}

	case *types.Forall:
		if t.Name == name {
			return t
		}
		return &types.Forall{Name: t.Name, Body: vt.Subst(name, with, t.Body)}
	}
	return t
}
