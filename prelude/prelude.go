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

// prelude provides a builtin type-environment and a suite of example expressions which
// exercise impredicative instantiation, spine checking and skolem escape.
package prelude

import (
	. "github.com/wdamron/sysf/construct"

	"github.com/wdamron/sysf"
	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/types"
)

var (
	Int  = TVar("Int")
	Bool = TVar("Bool")
	t    = TVar("t")
	a    = TVar("a")
	b    = TVar("b")
	s    = TVar("s")

	// forall t. t -> t
	Identity = TForall("t", TArrow(t, t))
)

// List t
func List(elem types.Type) types.Type { return TApp(TVar("List"), elem) }

// ST s t
func ST(state, result types.Type) types.Type { return TApp(TVar("ST"), state, result) }

// Pair a b
func Pair(fst, snd types.Type) types.Type { return TApp(TVar("Pair"), fst, snd) }

// Declare the builtin bindings within env.
func Declare(env *sysf.TypeEnv) {
	env.Declare("head", TForall("t", TArrow(List(t), t)))
	env.Declare("tail", TForall("t", TArrow(List(t), List(t))))
	env.Declare("Nil", TForall("t", List(t)))
	env.Declare("Cons", TForall("t", TArrow(t, List(t), List(t))))
	env.Declare("single", TForall("t", TArrow(t, List(t))))
	env.Declare("append", TForall("t", TArrow(List(t), List(t), List(t))))
	env.Declare("length", TForall("t", TArrow(List(t), Int)))
	env.Declare("runST", TForall("t", TArrow(TForall("s", ST(s, t)), t)))
	env.Declare("argST", TForall("s", ST(s, Int)))
	env.Declare("pair", TForalls([]string{"a", "b"}, TArrow(a, b, Pair(a, b))))
	env.Declare("pair2", TForalls([]string{"b", "a"}, TArrow(a, b, Pair(a, b))))
	env.Declare("id", Identity)
	env.Declare("ids", List(Identity))
	env.Declare("inc", TArrow(Int, Int))
	env.Declare("choose", TForall("t", TArrow(t, t, t)))
	env.Declare("poly", TArrow(Identity, Pair(Int, Bool)))
	env.Declare("auto", TArrow(Identity, Identity))
	env.Declare("auto2", TForall("b", TArrow(Identity, b, b)))
	env.Declare("map", TForalls([]string{"a", "b"}, TArrow(TArrow(a, b), List(a), List(b))))
	env.Declare("app", TForalls([]string{"a", "b"}, TArrow(TArrow(a, b), a, b)))
	env.Declare("revapp", TForalls([]string{"a", "b"}, TArrow(a, TArrow(a, b), b)))
	env.Declare("f", TForall("t", TArrow(TArrow(t, t), List(t), t)))
	env.Declare("g", TForall("t", TArrow(List(t), List(t), t)))
	env.Declare("k", TForall("t", TArrow(t, List(t), t)))
	env.Declare("h", TArrow(Int, Identity))
	env.Declare("l", List(TForall("t", TArrow(Int, t, t))))
	env.Declare("r", TArrow(TForall("a", TArrow(a, Identity)), Int))
}

// Create a type-environment containing the builtin bindings.
func Env() *sysf.TypeEnv {
	env := sysf.NewTypeEnv(nil)
	Declare(env)
	return env
}

// Example is an expression with the expected outcome of inferring its type within Env.
type Example struct {
	Name string
	Expr ast.Expr
	// Want is the printed type which should be inferred, if inference should succeed.
	Want string
	// Fails is true if inference should fail.
	Fails bool
}

func ok(name string, e ast.Expr, want string) Example { return Example{Name: name, Expr: e, Want: want} }
func fails(name string, e ast.Expr) Example        { return Example{Name: name, Expr: e, Fails: true} }

// Examples returns the example suite. Each call returns freshly constructed expressions.
func Examples() []Example {
	v := Var
	idToId := TArrow(Identity, Identity)
	return []Example{
		// A: polymorphic instantiation
		ok("A1", Funcs([]string{"x", "y"}, v("x")), "'_3 -> '_2 -> '_3"),
		ok("A2", App(v("choose"), v("id")), "('_1 -> '_1) -> '_1 -> '_1"),
		ok("A3", Ann(App(v("choose"), v("id")), idToId), "(forall t. t -> t) -> forall t. t -> t"),
		ok("A4", App(v("choose"), v("Nil"), v("ids")), "List (forall t. t -> t)"),
		ok("A5", App(v("id"), v("auto")), "(forall t. t -> t) -> forall t. t -> t"),
		ok("A6", App(v("id"), v("auto2")), "(forall t. t -> t) -> '_1 -> '_1"),
		ok("A7", App(v("choose"), v("id"), v("auto")), "(forall t. t -> t) -> forall t. t -> t"),
		fails("A8", App(v("choose"), v("id"), v("auto2"))),
		fails("A9", App(v("f"), App(v("choose"), v("id")), v("ids"))),
		ok("A10", App(v("f"), Ann(App(v("choose"), v("id")), idToId), v("ids")), "forall t. t -> t"),
		ok("A11", App(v("poly"), v("id")), "Pair Int Bool"),
		ok("A12", App(v("poly"), Func("x", v("x"))), "Pair Int Bool"),
		ok("A13", App(v("id"), v("poly"), Func("x", v("x"))), "Pair Int Bool"),

		// C: functions on polymorphic lists
		ok("C1", App(v("length"), v("ids")), "Int"),
		ok("C2", App(v("tail"), v("ids")), "List (forall t. t -> t)"),
		ok("C3", App(v("head"), v("ids")), "forall t. t -> t"),
		ok("C4", App(v("single"), v("id")), "List ('_1 -> '_1)"),
		ok("C5", Ann(App(v("single"), v("id")), List(Identity)), "List (forall t. t -> t)"),
		// rejected without a target type: id is instantiated before ids is checked
		fails("C6", App(v("Cons"), v("id"), v("ids"))),
		fails("C7", App(v("Cons"), Func("x", v("x")), v("ids"))),
		ok("C8", App(v("append"), App(v("single"), v("inc")), App(v("single"), v("id"))), "List (Int -> Int)"),
		fails("C9", App(v("g"), App(v("single"), v("id")), v("ids"))),
		ok("C10", App(v("g"), Ann(App(v("single"), v("id")), List(Identity)), v("ids")), "forall t. t -> t"),
		ok("C11", App(v("map"), v("poly"), App(v("single"), v("id"))), "List (Pair Int Bool)"),
		ok("C12", App(v("map"), v("head"), App(v("single"), v("ids"))), "List (forall t. t -> t)"),
		ok("C13", Ann(App(v("Cons"), v("id"), v("ids")), List(Identity)), "List (forall t. t -> t)"),

		// D: application functions
		ok("D1", App(v("app"), v("poly"), v("id")), "Pair Int Bool"),
		fails("D2", App(v("revapp"), v("id"), v("poly"))),
		ok("D3", App(v("runST"), v("argST")), "Int"),
		ok("D4", App(v("app"), v("runST"), v("argST")), "Int"),
		fails("D5", App(v("revapp"), v("argST"), v("runST"))),

		// E: rank-n arguments
		fails("E1", App(v("k"), v("h"), v("l"))),
		fails("E2", App(v("k"), Func("x", App(v("h"), v("x"))), v("l"))),
		ok("E3", App(v("r"), Funcs([]string{"x", "y"}, v("y"))), "Int"),
	}
}
