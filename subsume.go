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
	"github.com/wdamron/sysf/types"
)

// Check that a value of type a may be used where a value of type b is expected (a <: b).
//
// Quantifiers of b are skolemized before quantifiers of a are instantiated, so that the
// metavariables which instantiate a may be solved with the skolem constants of b. Once
// neither side is quantified, a and b must be equal.
func (ti *InferenceContext) subsume(tvs types.Scope, a, b types.Type) error {
	if ti.trace {
		ti.tracef("subsume %s <: %s", types.TypeString(a), types.TypeString(b))
	}
	if fb, ok := b.(*types.Forall); ok {
		sk := ti.tracker.NewSkolem()
		return ti.subsume(tvs.Extend(sk.Id()), a, ti.tracker.Open(fb, sk))
	}
	if fa, ok := a.(*types.Forall); ok {
		return ti.subsume(tvs, ti.tracker.Open(fa, ti.tracker.NewMeta(tvs)), b)
	}
	return ti.unify(a, b)
}
