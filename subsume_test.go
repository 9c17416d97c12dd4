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
	"testing"

	. "github.com/wdamron/sysf/construct"

	"github.com/wdamron/sysf/types"
)

func TestSubsume(t *testing.T) {
	a, b, x, Int := TVar("a"), TVar("b"), TVar("x"), TVar("Int")

	ok := []struct{ a, b types.Type }{
		{identityType(), TForall("a", TArrow(a, a))},
		{identityType(), TArrow(Int, Int)},
		{identityType(), identityType()},
		{TForall("a", TArrow(a, identityType())), TForall("a", TArrow(a, identityType()))},
		{TForalls([]string{"a", "b"}, TArrow(a, b, a)), TForall("x", TArrow(x, Int, x))},
		{TArrow(Int, Int), TArrow(Int, Int)},
	}
	for _, test := range ok {
		ti := NewContext()
		if err := ti.subsume(types.EmptyScope, test.a, test.b); err != nil {
			t.Fatalf("%s <: %s: %v", types.TypeString(test.a), types.TypeString(test.b), err)
		}
	}

	fail := []struct{ a, b types.Type }{
		{TArrow(Int, Int), identityType()},
		{TForall("a", TArrow(a, Int)), identityType()},
		{TForall("a", TArrow(a, a, a)), TForalls([]string{"a", "b"}, TArrow(a, b, a))},
	}
	for _, test := range fail {
		ti := NewContext()
		if err := ti.subsume(types.EmptyScope, test.a, test.b); err == nil {
			t.Fatalf("expected %s <: %s to fail", types.TypeString(test.a), types.TypeString(test.b))
		}
	}
}

func TestSubsumeInstantiates(t *testing.T) {
	ti := NewContext()
	m := ti.tracker.NewMeta(types.EmptyScope)
	if err := ti.subsume(types.EmptyScope, identityType(), m); err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(ti.tracker.Prune(m)); s != "'_1 -> '_1" {
		t.Fatalf("solution: %s", s)
	}
}

func TestSubsumeSkolemEscape(t *testing.T) {
	ti := NewContext()
	m := ti.tracker.NewMeta(types.EmptyScope)
	expectEscape(t, ti.subsume(types.EmptyScope, TArrow(m, m), identityType()), SkolemEscape)

	// metavariables created beneath a skolemized quantifier may mention its skolem constant
	ti = NewContext()
	if err := ti.subsume(types.EmptyScope, TForall("a", TArrow(TVar("a"), TVar("a"))), identityType()); err != nil {
		t.Fatal(err)
	}
	if ti.MetaCount() != 1 {
		t.Fatalf("metavariables: %d", ti.MetaCount())
	}
}
