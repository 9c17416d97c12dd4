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

	"github.com/benbjohnson/immutable"
)

var emptyScopeMap = immutable.NewSortedMap(nil)

// EmptyScope contains no skolem constants.
var EmptyScope = Scope{emptyScopeMap}

// Scope is an immutable, ordered set of skolem constant ids.
//
// Scopes are extended whenever a Forall is opened for checking, and are attached to
// each metavariable created while the scope is active.
type Scope struct {
	m *immutable.SortedMap
}

// Create a scope containing the given skolem constant ids.
func NewScope(ids ...int) Scope {
	s := EmptyScope
	for _, id := range ids {
		s = s.Extend(id)
	}
	return s
}

func (s Scope) sorted() *immutable.SortedMap {
	if s.m == nil {
		return emptyScopeMap
	}
	return s.m
}

// Get the number of skolem constants in the scope.
func (s Scope) Len() int { return s.sorted().Len() }

// Check if the scope contains the skolem constant with the given id.
func (s Scope) Contains(id int) bool {
	_, ok := s.sorted().Get(id)
	return ok
}

// Extend the scope with a skolem constant id, without mutating the existing scope.
func (s Scope) Extend(id int) Scope {
	if s.Contains(id) {
		return s
	}
	return Scope{s.sorted().Set(id, struct{}{})}
}

// Iterate over skolem constant ids in ascending order.
// If f returns false, iteration will be stopped.
func (s Scope) Range(f func(id int) bool) {
	iter := s.sorted().Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		if !f(k.(int)) {
			return
		}
	}
}

// Ids returns the skolem constant ids in ascending order.
func (s Scope) Ids() []int {
	ids := make([]int, 0, s.Len())
	s.Range(func(id int) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// SubsetOf returns true if every skolem constant in s is contained in other.
func (s Scope) SubsetOf(other Scope) bool {
	if s.Len() > other.Len() {
		return false
	}
	subset := true
	s.Range(func(id int) bool {
		subset = other.Contains(id)
		return subset
	})
	return subset
}

// Equal returns true if both scopes contain the same skolem constants.
func (s Scope) Equal(other Scope) bool {
	return s.Len() == other.Len() && s.SubsetOf(other)
}

func (s Scope) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	s.Range(func(id int) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(id))
		i++
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
