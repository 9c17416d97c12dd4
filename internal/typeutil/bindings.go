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

	"github.com/wdamron/sysf/types"
)

var emptyBindings = immutable.NewSortedMap(nil)

// Bindings is an immutable mapping from identifiers to types, for variables bound
// by abstractions during inference. Binding a name returns a new mapping and leaves
// the existing mapping unchanged, so bindings never leak out of the abstraction
// which introduced them.
type Bindings struct {
	m *immutable.SortedMap
}

func (b Bindings) sorted() *immutable.SortedMap {
	if b.m == nil {
		return emptyBindings
	}
	return b.m
}

// Get the number of bound identifiers.
func (b Bindings) Len() int { return b.sorted().Len() }

// Bind an identifier to a type, shadowing any existing binding for the identifier.
func (b Bindings) Bind(name string, t types.Type) Bindings {
	return Bindings{b.sorted().Set(name, t)}
}

// Lookup the type bound to an identifier.
func (b Bindings) Lookup(name string) (types.Type, bool) {
	t, ok := b.sorted().Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}
