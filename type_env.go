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
	"sort"

	"golang.org/x/exp/maps"

	"github.com/wdamron/sysf/types"
)

// TypeEnv is a type-environment containing mappings from identifiers to declared types.
//
// Inference never modifies a type-environment; variables bound by abstractions are kept
// separately for each inference run. A type-environment may be shared by concurrent
// inference runs, as long as it is not modified while they are in progress.
type TypeEnv struct {
	// Predeclared types in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to declared types in the current type-environment
	Types map[string]types.Type
}

// Create a type-environment. The new environment will inherit bindings from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	return &TypeEnv{
		Parent: parent,
		Types:  make(map[string]types.Type),
	}
}

// Declare a type for an identifier within the type environment.
func (e *TypeEnv) Declare(name string, t types.Type) { e.Types[name] = t }

// Remove the declared type for an identifier within the type environment. Parent environment(s) will not be affected,
// and the identifier's type will still be visible if declared in a parent environment.
func (e *TypeEnv) Remove(name string) { delete(e.Types, name) }

// Lookup the type for an identifier in the environment or its parent environment(s).
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	for env := e; env != nil; env = env.Parent {
		if t, ok := env.Types[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Names returns the identifiers visible in the environment, in sorted order.
func (e *TypeEnv) Names() []string {
	seen := make(map[string]struct{})
	for env := e; env != nil; env = env.Parent {
		for _, name := range maps.Keys(env.Types) {
			seen[name] = struct{}{}
		}
	}
	names := maps.Keys(seen)
	sort.Strings(names)
	return names
}
