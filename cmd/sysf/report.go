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

package main

import (
	"fmt"
	"io"

	"github.com/wdamron/sysf"
	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/prelude"
	"github.com/wdamron/sysf/types"
)

// Write one line per example, and return the number of examples whose outcome differs
// from the expected outcome.
func report(w io.Writer, examples []prelude.Example, results []sysf.Result) int {
	unexpected := 0
	fmt.Fprintln(w, title("Examples"))
	for i, ex := range examples {
		res := results[i]
		expr := ast.ExprString(ex.Expr)
		if res.Err != nil {
			line := fmt.Sprintf("%-4s %s => %s", ex.Name, code(expr), res.Err.Error())
			if ex.Fails {
				fmt.Fprintln(w, line, extra("rejected"))
			} else {
				unexpected++
				fmt.Fprintln(w, conflict(line), extra("expected "+ex.Want))
			}
			continue
		}
		got := types.TypeString(res.Type)
		line := fmt.Sprintf("%-4s %s : %s", ex.Name, code(expr), got)
		switch {
		case ex.Fails:
			unexpected++
			fmt.Fprintln(w, conflict(line), extra("expected failure"))
		case got != ex.Want:
			unexpected++
			fmt.Fprintln(w, conflict(line), extra("expected "+ex.Want))
		default:
			fmt.Fprintln(w, success(line))
		}
	}
	return unexpected
}
