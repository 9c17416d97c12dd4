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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/types"
)

var (
	intType  = &types.Var{Name: "Int"}
	boolType = &types.Var{Name: "Bool"}
	listType = &types.Var{Name: "List"}
)

// compare metavariables and skolem constants by id
var typeComparers = cmp.Options{
	cmp.Comparer(func(a, b *types.Meta) bool { return a.Id() == b.Id() }),
	cmp.Comparer(func(a, b *types.Skolem) bool { return a.Id() == b.Id() }),
}

func TestVarTrackerIds(t *testing.T) {
	var vt VarTracker
	m0, m1 := vt.NewMeta(types.EmptyScope), vt.NewMeta(types.NewScope(0))
	s0, s1 := vt.NewSkolem(), vt.NewSkolem()
	if m0.Id() != 0 || m1.Id() != 1 || s0.Id() != 0 || s1.Id() != 1 {
		t.Fatalf("ids: %d, %d, %d, %d", m0.Id(), m1.Id(), s0.Id(), s1.Id())
	}
	if !m1.Scope().Equal(types.NewScope(0)) {
		t.Fatalf("scope: %s", m1.Scope())
	}
	if err := vt.Bind(m0, intType); err != nil {
		t.Fatal(err)
	}

	vt.Reset()
	if vt.MetaCount() != 0 {
		t.Fatalf("expected no metavariables after reset")
	}
	if vt.Solution(m0) != nil {
		t.Fatalf("metavariables from a previous run must be unsolved")
	}
	if m := vt.NewMeta(types.EmptyScope); m.Id() != 0 || vt.Solution(m) != nil {
		t.Fatalf("expected an unsolved metavariable with id 0")
	}
	if err := vt.Bind(m0, intType); err == nil {
		t.Fatalf("expected an error when binding a metavariable from a previous run")
	}
	if s := vt.NewSkolem(); s.Id() != 0 {
		t.Fatalf("skolem id: %d", s.Id())
	}
}

func TestVarTrackerBindOnce(t *testing.T) {
	var vt VarTracker
	m := vt.NewMeta(types.EmptyScope)
	if vt.IsSolved(m) {
		t.Fatalf("expected an unsolved metavariable")
	}
	if err := vt.Bind(m, nil); err == nil {
		t.Fatalf("expected an error when binding a nil type")
	}
	if err := vt.Bind(m, intType); err != nil {
		t.Fatal(err)
	}
	if err := vt.Bind(m, boolType); err == nil {
		t.Fatalf("expected an error when binding a solved metavariable")
	}
	if vt.Solution(m) != types.Type(intType) {
		t.Fatalf("solution: %s", types.TypeString(vt.Solution(m)))
	}
}

func TestPrune(t *testing.T) {
	var vt VarTracker
	m0, m1, m2 := vt.NewMeta(types.EmptyScope), vt.NewMeta(types.EmptyScope), vt.NewMeta(types.EmptyScope)
	// m0 := m1 := List m2, m2 unsolved
	if err := vt.Bind(m0, m1); err != nil {
		t.Fatal(err)
	}
	if err := vt.Bind(m1, &types.App{Func: listType, Arg: m2}); err != nil {
		t.Fatal(err)
	}
	typ := &types.Arrow{Param: m0, Return: &types.Forall{Name: "t", Body: &types.Arrow{Param: &types.Var{Name: "t"}, Return: m1}}}

	pruned := vt.Prune(typ)
	if s := types.TypeString(pruned); s != "List '_2 -> forall t. t -> List '_2" {
		t.Fatalf("type: %s", s)
	}
	if diff := cmp.Diff(pruned, vt.Prune(pruned), typeComparers); diff != "" {
		t.Fatalf("pruning is not idempotent (-once +twice):\n%s", diff)
	}
	// the chain from m0 is shortened to the pruned solution
	if _, ok := vt.Solution(m0).(*types.App); !ok {
		t.Fatalf("solution: %s", types.TypeString(vt.Solution(m0)))
	}
	if vt.Resolve(m0) != vt.Solution(m0) || vt.Resolve(m2) != types.Type(m2) {
		t.Fatalf("unexpected resolved types")
	}

	// types without solved metavariables are returned as-is
	plain := &types.Arrow{Param: intType, Return: &types.App{Func: listType, Arg: m2}}
	if vt.Prune(plain) != types.Type(plain) {
		t.Fatalf("expected an unchanged type")
	}
}

func TestSubst(t *testing.T) {
	var vt VarTracker
	tv, u := &types.Var{Name: "t"}, &types.Var{Name: "u"}
	m := vt.NewMeta(types.EmptyScope)
	if err := vt.Bind(m, &types.Arrow{Param: tv, Return: u}); err != nil {
		t.Fatal(err)
	}
	sk := vt.NewSkolem()

	// forall t. t -> (forall t. t) -> '_0 -> u
	f := &types.Forall{Name: "t", Body: &types.Arrow{
		Param: tv,
		Return: &types.Arrow{
			Param:  &types.Forall{Name: "t", Body: tv},
			Return: &types.Arrow{Param: m, Return: u},
		},
	}}
	opened := vt.Open(f, sk)
	if s := types.TypeString(opened); s != "#0 -> (forall t. t) -> (#0 -> u) -> u" {
		t.Fatalf("type: %s", s)
	}
	if s := types.TypeString(vt.Subst("u", intType, opened)); s != "#0 -> (forall t. t) -> (#0 -> Int) -> Int" {
		t.Fatalf("type: %s", s)
	}
}

func TestBindings(t *testing.T) {
	var empty Bindings
	x := empty.Bind("x", intType)
	shadowed := x.Bind("x", boolType)

	if _, ok := empty.Lookup("x"); ok || empty.Len() != 0 {
		t.Fatalf("binding must not modify existing bindings")
	}
	if typ, ok := x.Lookup("x"); !ok || typ != types.Type(intType) {
		t.Fatalf("expected x : Int")
	}
	if typ, ok := shadowed.Lookup("x"); !ok || typ != types.Type(boolType) || shadowed.Len() != 1 {
		t.Fatalf("expected x : Bool")
	}
}

func TestPendingArgs(t *testing.T) {
	var p PendingArgs
	a, b := &ast.Var{Name: "a"}, &ast.Var{Name: "b"}
	p1 := p.Append(a, intType)
	p2 := p1.Append(b, boolType)
	if p.Len() != 0 || p1.Len() != 1 || p2.Len() != 2 {
		t.Fatalf("lengths: %d, %d, %d", p.Len(), p1.Len(), p2.Len())
	}
	if p2.Get(1).Arg != ast.Expr(b) || p2.Get(1).Type != types.Type(boolType) {
		t.Fatalf("unexpected pending argument")
	}
	var names []string
	p2.Range(func(i int, arg PendingArg) bool {
		names = append(names, arg.Arg.(*ast.Var).Name)
		return true
	})
	if diff := cmp.Diff([]string{"a", "b"}, names); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
}
