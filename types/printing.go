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

package types

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// Printing positions, from loosest to tightest binding.
type position int

const (
	topPos    position = iota
	paramPos           // left of an arrow
	appFunPos          // head of a type application
	appArgPos          // argument of a type application
)

// TypeString returns a string representation of a Type.
//
// Unsolved metavariables are printed as `'_N` and skolem constants as `#N`, where N
// is the unique id of the variable within its inference run.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, topPos, t)
	s := p.sb.String()
	p.Release()
	return s
}

func typeString(p *typePrinter, pos position, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(t.Name)

	case *Meta:
		p.sb.WriteString("'_")
		p.sb.WriteString(strconv.Itoa(t.Id()))

	case *Skolem:
		p.sb.WriteByte('#')
		p.sb.WriteString(strconv.Itoa(t.Id()))

	case *Forall:
		parens := pos != topPos
		if parens {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString("forall ")
		p.sb.WriteString(t.Name)
		p.sb.WriteString(". ")
		typeString(p, topPos, t.Body)
		if parens {
			p.sb.WriteByte(')')
		}

	case *Arrow:
		parens := pos != topPos
		if parens {
			p.sb.WriteByte('(')
		}
		typeString(p, paramPos, t.Param)
		p.sb.WriteString(" -> ")
		typeString(p, topPos, t.Return)
		if parens {
			p.sb.WriteByte(')')
		}

	case *App:
		parens := pos == appArgPos
		if parens {
			p.sb.WriteByte('(')
		}
		typeString(p, appFunPos, t.Func)
		p.sb.WriteByte(' ')
		typeString(p, appArgPos, t.Arg)
		if parens {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
