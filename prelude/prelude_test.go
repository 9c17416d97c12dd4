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

package prelude_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/wdamron/sysf/ast"
	"github.com/wdamron/sysf/prelude"
	"github.com/wdamron/sysf/types"
)

func TestEnv(t *testing.T) {
	env := prelude.Env()
	names := env.Names()
	if len(names) != 27 {
		t.Fatalf("builtins: %d", len(names))
	}

	var sb strings.Builder
	for _, name := range names {
		typ, _ := env.Lookup(name)
		sb.WriteString(name + " : " + types.TypeString(typ) + "\n")
	}
	snaps.MatchSnapshot(t, strings.TrimSuffix(sb.String(), "\n"))
}

func TestExamples(t *testing.T) {
	seen := make(map[string]bool)
	var sb strings.Builder
	for _, ex := range prelude.Examples() {
		if seen[ex.Name] {
			t.Fatalf("duplicate example: %s", ex.Name)
		}
		seen[ex.Name] = true
		if ex.Fails == (ex.Want != "") {
			t.Fatalf("%s: an example either fails or has an expected type", ex.Name)
		}
		want := ex.Want
		if ex.Fails {
			want = "<fails>"
		}
		sb.WriteString(ex.Name + ": " + ast.ExprString(ex.Expr) + " => " + want + "\n")
	}
	snaps.MatchSnapshot(t, strings.TrimSuffix(sb.String(), "\n"))

	// each call constructs new expressions
	a, b := prelude.Examples(), prelude.Examples()
	if a[0].Expr == b[0].Expr {
		t.Fatalf("expected fresh expressions")
	}
}
