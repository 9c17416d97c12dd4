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

package ast

import (
	"github.com/wdamron/sysf/types"
)

// Expr is the base for all expressions.
//
// Expressions are immutable; inference never modifies them.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Ann)(nil)
)

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Abstraction: `fn x -> x`
type Func struct {
	ArgName string
	Body    Expr
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

// Application: `f x`
type App struct {
	Func Expr
	Arg  Expr
}

// "App"
func (e *App) ExprName() string { return "App" }

// Type annotation: `(e : T)`
//
// Annotations are checked against their type, and are the only way to supply an
// impredicative instantiation directly.
type Ann struct {
	Expr Expr
	Type types.Type
}

// "Ann"
func (e *Ann) ExprName() string { return "Ann" }
