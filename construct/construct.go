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

package construct

import (
	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/types"
)

// Types

// Rigid type-variable or type constant: `t`, `Int`, `List`
func TVar(name string) *types.Var {
	return &types.Var{Name: name}
}

// Universal quantification: `forall t. t -> t`
func TForall(name string, body types.Type) *types.Forall {
	return &types.Forall{Name: name, Body: body}
}

// Nested universal quantification: `forall a. forall b. a -> b`
func TForalls(names []string, body types.Type) types.Type {
	for i := len(names) - 1; i >= 0; i-- {
		body = &types.Forall{Name: names[i], Body: body}
	}
	return body
}

// Function type: `a -> b`
func TArrow1(param, ret types.Type) *types.Arrow {
	return &types.Arrow{Param: param, Return: ret}
}

// Curried function type: `a -> b -> c`. The last type is the return type.
func TArrow(param types.Type, rest ...types.Type) types.Type {
	if len(rest) == 0 {
		return param
	}
	return &types.Arrow{Param: param, Return: TArrow(rest[0], rest[1:]...)}
}

// Type application: `List a`, `Pair a b`
func TApp(constructor types.Type, args ...types.Type) types.Type {
	for _, arg := range args {
		constructor = &types.App{Func: constructor, Arg: arg}
	}
	return constructor
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Abstraction: `fn x -> x`
func Func(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgName: arg, Body: body}
}

// Curried abstraction: `fn x -> fn y -> x`
func Funcs(args []string, body ast.Expr) ast.Expr {
	for i := len(args) - 1; i >= 0; i-- {
		body = &ast.Func{ArgName: args[i], Body: body}
	}
	return body
}

// Application: `f x y`
func App(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.App{Func: f, Arg: arg}
	}
	return f
}

// Type annotation: `(e : T)`
func Ann(e ast.Expr, t types.Type) *ast.Ann {
	return &ast.Ann{Expr: e, Type: t}
}
