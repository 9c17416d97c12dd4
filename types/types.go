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

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*Forall)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*App)(nil)
	_ Type = (*Meta)(nil)
	_ Type = (*Skolem)(nil)
)

func (t *Var) TypeName() string    { return "Var" }
func (t *Forall) TypeName() string { return "Forall" }
func (t *Arrow) TypeName() string  { return "Arrow" }
func (t *App) TypeName() string    { return "App" }
func (t *Meta) TypeName() string   { return "Meta" }
func (t *Skolem) TypeName() string { return "Skolem" }

// Rigid type-variable: `t`, or a type constant such as `Int` or `List`.
//
// A Var is bound by the nearest enclosing Forall with the same name. Unbound
// variables behave as type constants.
type Var struct {
	Name string
}

// Universal quantification: `forall t. t -> t`
type Forall struct {
	Name string
	Body Type
}

// Function type: `a -> b`
type Arrow struct {
	Param  Type
	Return Type
}

// Type application: `List a`
type App struct {
	Func Type
	Arg  Type
}

// Metavariable (unification variable).
//
// A metavariable stands for a type which has not been determined yet. Its id is
// unique within a single inference run, and its scope holds the skolem constants
// which its solution may mention. Neither changes after creation. Solutions are
// not stored in the metavariable; they are kept by the inference run which created it.
type Meta struct {
	id    int
	scope Scope
}

// Create a new metavariable. Metavariables should be allocated by the inference run
// which will solve them.
func NewMeta(id int, scope Scope) *Meta { return &Meta{id: id, scope: scope} }

// Id returns the unique identifier of the metavariable.
func (m *Meta) Id() int { return m.id }

// Scope returns the skolem constants which the metavariable's solution may mention.
func (m *Meta) Scope() Scope { return m.scope }

// Skolem constant: an opaque type standing for the bound variable of an opened Forall.
// Skolem constants are equal only to themselves.
type Skolem struct {
	id int
}

// Create a new skolem constant.
func NewSkolem(id int) *Skolem { return &Skolem{id: id} }

// Id returns the unique identifier of the skolem constant.
func (s *Skolem) Id() int { return s.id }
