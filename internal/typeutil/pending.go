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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/types"
)

var emptyPending = immutable.NewList()

// PendingArg pairs an argument of an application with the type it must be checked against.
type PendingArg struct {
	Arg  ast.Expr
	Type types.Type
}

// PendingArgs is an immutable list of arguments awaiting checks, in application order.
type PendingArgs struct {
	l *immutable.List
}

func (p PendingArgs) list() *immutable.List {
	if p.l == nil {
		return emptyPending
	}
	return p.l
}

// Get the number of pending arguments.
func (p PendingArgs) Len() int { return p.list().Len() }

// Get the pending argument at index i.
func (p PendingArgs) Get(i int) PendingArg { return p.list().Get(i).(PendingArg) }

// Append an argument and its expected type, without mutating the existing list.
func (p PendingArgs) Append(arg ast.Expr, t types.Type) PendingArgs {
	return PendingArgs{p.list().Append(PendingArg{Arg: arg, Type: t})}
}

// Iterate over pending arguments in application order.
// If f returns false, iteration will be stopped.
func (p PendingArgs) Range(f func(int, PendingArg) bool) {
	iter := p.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(PendingArg)) {
			return
		}
	}
}
