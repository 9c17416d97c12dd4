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
	"strings"

	"github.com/wdamron/sysf/types"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, false, e)
	return sb.String()
}

// simple is set for the argument of an application; head is set for its function.
func exprString(sb *strings.Builder, simple, head bool, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Func:
		parens := simple || head
		if parens {
			sb.WriteByte('(')
		}
		sb.WriteString("fn ")
		sb.WriteString(et.ArgName)
		sb.WriteString(" -> ")
		exprString(sb, false, false, et.Body)
		if parens {
			sb.WriteByte(')')
		}

	case *App:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, false, true, et.Func)
		sb.WriteByte(' ')
		exprString(sb, true, false, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Ann:
		sb.WriteByte('(')
		exprString(sb, false, false, et.Expr)
		sb.WriteString(" : ")
		sb.WriteString(types.TypeString(et.Type))
		sb.WriteByte(')')

	case nil:
		sb.WriteString("<nil>")

	default:
		sb.WriteString("<" + e.ExprName() + ">")
	}
}
