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
	"strings"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/types"
)

var (
	_ error = (*UnboundVariableError)(nil)
	_ error = (*UnificationMismatchError)(nil)
	_ error = (*ScopeEscapeError)(nil)
	_ error = (*NotAFunctionError)(nil)
	_ error = (*UnsynthesizableError)(nil)
)

// UnboundVariableError is returned when a variable is not bound in the environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Variable " + e.Name + " not found" }

// UnificationMismatchError is returned when two types are structurally incompatible.
type UnificationMismatchError struct {
	A, B types.Type
}

func (e *UnificationMismatchError) Error() string {
	return "Failed to unify " + types.TypeString(e.A) + " with " + types.TypeString(e.B)
}

// Reasons for rejecting the solution of a metavariable
type EscapeReason int

const (
	// The solution mentions a skolem constant outside of the metavariable's scope.
	SkolemEscape EscapeReason = iota
	// The solution contains the metavariable itself.
	OccursCheck
	// The solution is an unsolved metavariable with a different scope.
	ScopeMismatch
)

// ScopeEscapeError is returned when a metavariable cannot be solved with a type.
type ScopeEscapeError struct {
	Meta     *types.Meta
	Solution types.Type
	Reason   EscapeReason
}

func (e *ScopeEscapeError) Error() string {
	var reason string
	switch e.Reason {
	case OccursCheck:
		reason = "Implicitly recursive types are not supported"
	case ScopeMismatch:
		reason = "Metavariable scopes differ"
	default:
		reason = "Skolem constant escapes its scope"
	}
	return reason + ": cannot solve " + types.TypeString(e.Meta) + e.Meta.Scope().String() + " := " + types.TypeString(e.Solution)
}

// NotAFunctionError is returned when arguments are applied to a type which is not a function.
type NotAFunctionError struct {
	Type types.Type
	Args []ast.Expr
}

func (e *NotAFunctionError) Error() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = ast.ExprString(arg)
	}
	return "Cannot apply " + types.TypeString(e.Type) + " to arguments [" + strings.Join(args, ", ") + "]"
}

// UnsynthesizableError is returned when no type can be synthesized for an expression.
type UnsynthesizableError struct {
	Expr ast.Expr
}

func (e *UnsynthesizableError) Error() string {
	if e.Expr == nil {
		return "Cannot synthesize a type for an empty expression"
	}
	return "Cannot synthesize a type for " + e.Expr.ExprName() + " expression " + ast.ExprString(e.Expr)
}
