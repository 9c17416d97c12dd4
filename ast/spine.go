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

// Spine flattens a chain of applications into the function at its head and its
// arguments, in application order: `f a b` is flattened into `f` and `[a, b]`.
//
// For an expression which is not an application, the expression itself is returned
// with no arguments.
func Spine(e Expr) (head Expr, args []Expr) {
	n := 0
	for app, ok := e.(*App); ok; app, ok = app.Func.(*App) {
		n++
	}
	if n == 0 {
		return e, nil
	}
	args = make([]Expr, n)
	for i := n - 1; i >= 0; i-- {
		app := e.(*App)
		args[i], e = app.Arg, app.Func
	}
	return e, args
}
