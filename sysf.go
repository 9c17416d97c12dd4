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

// sysf provides type inference for an invariant System F with partial support for
// impredicative (rank-n) polymorphism.
//
// Inference is bidirectional: expressions are either checked against an expected type
// or have their type synthesized. Applications are checked as spines, so the result type
// of a call is matched against the expected type before its arguments are checked; this
// allows polymorphic types to flow from the context into the arguments. Polymorphic
// types are compared with deep skolemization and instantiation, and metavariables are
// scoped so that skolem constants cannot escape the quantifiers which introduced them.
//
// There is no backtracking: once a metavariable is solved, the solution is final, and
// some expressions which would type-check with a different solving order are rejected.
// Impredicative instantiations can always be supplied with annotations.
//
//
// Supported Features:
//
//   * Rank-n polymorphic types, with quantifiers at any position
//   * Deep skolemization/instantiation when comparing polymorphic types
//   * Alpha-equivalence of quantified types during unification
//   * Impredicative instantiation guided by annotations and expected result types
//   * Inference of function types for unannotated abstractions and applied variables
//
//
// Links:
//
// A quick look at impredicativity (Serrano et al., 2020): https://www.microsoft.com/en-us/research/publication/a-quick-look-at-impredicativity/
//
// Practical type inference for arbitrary-rank types (Peyton Jones et al., 2007): https://www.microsoft.com/en-us/research/publication/practical-type-inference-for-arbitrary-rank-types/
//
// System F: https://en.wikipedia.org/wiki/System_F
package sysf
