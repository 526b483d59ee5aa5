// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package lower_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/onestmt/internal/check"
	. "fillmore-labs.com/onestmt/internal/lower"
	"fillmore-labs.com/onestmt/internal/syntax"
	"fillmore-labs.com/onestmt/internal/testsource"
)

// find returns the first node of the given kind in depth-first order.
func find(n *syntax.Node, kind syntax.Kind) *syntax.Node {
	if n == nil {
		return nil
	}

	if n.Kind() == kind {
		return n
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if found := find(c, kind); found != nil {
			return found
		}
	}

	return nil
}

func childKinds(n *syntax.Node) []syntax.Kind {
	var kinds []syntax.Kind
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		kinds = append(kinds, c.Kind())
	}

	return kinds
}

func TestForHeaderShape(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, `for i := 0; i < 3; i++ {
	_ = i
}`)

	loop := find(File(fset, f), syntax.For)
	if loop == nil {
		t.Fatal("No for node in lowered tree")
	}

	want := []syntax.Kind{
		syntax.ForInitializer,
		syntax.StatementTerminator,
		syntax.ForCondition,
		syntax.StatementTerminator,
		syntax.ForIterator,
		syntax.StatementBlock,
	}

	if got := childKinds(loop); !slices.Equal(got, want) {
		t.Errorf("For children = %v, want %v", got, want)
	}
}

func TestWhileFormHasNoHeaderClauses(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, `for true {
	break
}`)

	loop := find(File(fset, f), syntax.For)
	if loop == nil {
		t.Fatal("No for node in lowered tree")
	}

	want := []syntax.Kind{syntax.StatementBlock}
	if got := childKinds(loop); !slices.Equal(got, want) {
		t.Errorf("For children = %v, want %v", got, want)
	}
}

func TestLambdaIsFirstArgumentListChild(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, `go func() {
	_ = 1
}()`)

	args := find(File(fset, f), syntax.ArgumentList)
	if args == nil {
		t.Fatal("No argument list in lowered tree")
	}

	// The function literal is the callee here, not an argument.
	if first := args.FirstChild(); first != nil {
		t.Errorf("Argument list first child = %v, want none", first.Kind())
	}

	fset, f = testsource.Parse(t, `run(func() {
	_ = 1
})`)

	args = find(File(fset, f), syntax.ArgumentList)
	if args == nil {
		t.Fatal("No argument list in lowered tree")
	}

	first := args.FirstChild()
	if first == nil || first.Kind() != syntax.Lambda {
		t.Fatalf("Argument list first child = %v, want Lambda", first)
	}

	if body := first.FirstChild(); body == nil || body.Kind() != syntax.StatementBlock {
		t.Errorf("Lambda first child = %v, want StatementBlock", body)
	}
}

func TestTerminatorLines(t *testing.T) {
	t.Parallel()

	fset, f := testsource.Parse(t, `a := 1
b := first(
	2)
_, _ = a, b`)

	var lines []int

	var collect func(n *syntax.Node)
	collect = func(n *syntax.Node) {
		if n.Kind() == syntax.StatementTerminator {
			lines = append(lines, n.Line())
		}

		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			collect(c)
		}
	}
	collect(File(fset, f))

	first := testsource.HeaderLines + 1

	want := []int{first, first + 2, first + 3}
	if !slices.Equal(lines, want) {
		t.Errorf("Terminator lines = %v, want %v", lines, want)
	}
}

// collector records violation lines, implementing [check.Reporter].
type collector struct {
	lines []int
}

func (c *collector) Report(v check.Violation) {
	c.lines = append(c.lines, v.Node.Line())
}

// TestLoweredCheck runs the statement-line check over lowered source
// fragments end to end.
func TestLoweredCheck(t *testing.T) {
	t.Parallel()

	first := testsource.HeaderLines + 1

	tests := []struct {
		name string
		src  string
		want []int
	}{
		{
			name: "TwoAssignments",
			src:  "a := 1; b := 2\n_, _ = a, b",
			want: []int{first},
		},
		{
			name: "SeparateLines",
			src:  "a := 1\nb := 2\n_, _ = a, b",
			want: nil,
		},
		{
			name: "CallThenFor",
			src:  "a := 0; for i := 0; i < 3; i++ { a++ }\n_ = a",
			want: []int{first},
		},
		{
			name: "SecondStatementInForBody",
			src:  "a := 0\nfor i := 0; i < 3; i++ { a++; a-- }\n_ = a",
			want: []int{first + 1},
		},
		{
			name: "ForBodyOnOwnLines",
			src:  "for i := 0; i < 3; i++ {\n\t_ = i\n}",
			want: nil,
		},
		{
			name: "LambdaSameLine",
			src:  "run(func() { _ = 1 }); a := 2\n_ = a",
			want: []int{first},
		},
		{
			name: "LambdaAlone",
			src:  "run(func() { _ = 1 })",
			want: nil,
		},
		{
			name: "TwoStatementsInLambdaBody",
			src:  "a := 0\nrun(func() { a++; a-- })\n_ = a",
			want: []int{first + 1},
		},
		{
			name: "EmptyStatements",
			src:  "a := 1;; b := 2\n_, _ = a, b",
			want: []int{first, first},
		},
		{
			name: "MultiLineStatement",
			src:  "a := first(\n\t1); b := 2\n_, _ = a, b",
			want: []int{first + 1},
		},
		{
			name: "IfHeaderNotFlagged",
			src:  "if a := 1; a > 0 {\n\t_ = a\n}",
			want: nil,
		},
		{
			name: "SwitchCaseStatements",
			src:  "switch a := 1; a {\ncase 1:\n\ta++; a--\n}",
			want: []int{first + 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := testsource.Parse(t, tt.src)

			col := &collector{}
			c := check.New(col)
			c.BeginTree()

			syntax.Walk(File(fset, f), c)

			if !slices.Equal(col.lines, tt.want) {
				t.Errorf("Got violations on lines %v, want %v", col.lines, tt.want)
			}
		})
	}
}

// TestTopLevelDeclarations checks that declaration groups at file scope are
// treated as statements.
func TestTopLevelDeclarations(t *testing.T) {
	t.Parallel()

	fset, f := testsource.ParseFile(t, "package test\n\nvar a = 1; var b = 2\n")

	col := &collector{}
	c := check.New(col)
	c.BeginTree()

	syntax.Walk(File(fset, f), c)

	want := []int{3}
	if !slices.Equal(col.lines, want) {
		t.Errorf("Got violations on lines %v, want %v", col.lines, want)
	}
}
