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

// Package check implements the statement-per-line analysis.
//
// The check consumes the depth-first enter/leave event stream of a lowered
// [syntax.Node] tree and reports every statement terminator that begins a
// statement on the source line where the previous statement ended. The
// separators of three-clause for headers, the closer of do-while constructs
// and single-line lambda bodies are recognized and exempted.
package check

import "fillmore-labs.com/onestmt/internal/syntax"

// MessageKey identifies the "multiple statements on one line" violation.
const MessageKey = "multiple.statements.line"

// noLine is the lastStatementEnd value before any statement has closed.
const noLine = -1

// Violation locates one source line that carries more than one statement.
type Violation struct {
	// Node is the terminator that begins the colliding statement.
	Node *syntax.Node
	// Key is the fixed message key, [MessageKey].
	Key string
}

// Reporter consumes violations as they are found.
type Reporter interface {
	Report(v Violation)
}

// StatementLine detects more than one statement on a single source line.
//
// One instance serves one traversal at a time. Call [StatementLine.BeginTree]
// before each tree; the instance must not be shared across concurrent
// traversals.
type StatementLine struct {
	reporter Reporter

	// lastStatementEnd is the line where the most recently closed
	// statement ended.
	lastStatementEnd int

	// lambda is the lambda currently in scope for the same-line
	// exemption, cleared when its enclosing statement closes.
	lambda *syntax.Node
}

// New creates a [StatementLine] check reporting to r.
func New(r Reporter) *StatementLine {
	return &StatementLine{reporter: r, lastStatementEnd: noLine}
}

// Interest implements [syntax.Visitor]. The walker must deliver all
// occurrences of these kinds.
func (c *StatementLine) Interest() syntax.KindSet {
	return syntax.NewKindSet(syntax.StatementTerminator, syntax.EmptyStatement, syntax.ArgumentList)
}

// BeginTree resets the per-tree state. It must be called before processing
// each independent tree.
func (c *StatementLine) BeginTree() {
	c.lastStatementEnd = noLine
	c.lambda = nil
}

// Enter implements [syntax.Visitor].
func (c *StatementLine) Enter(n *syntax.Node) {
	switch n.Kind() {
	case syntax.StatementTerminator, syntax.EmptyStatement:
	default:
		return
	}

	if c.skipTerminator(n) {
		return
	}

	if stmt := multilineStatement(n); c.onSameLine(stmt) {
		c.reporter.Report(Violation{Node: n, Key: MessageKey})
	}
}

// Leave implements [syntax.Visitor].
func (c *StatementLine) Leave(n *syntax.Node) {
	switch n.Kind() {
	case syntax.StatementTerminator, syntax.EmptyStatement:
		// The separator after a for-header initializer does not end an
		// independent statement.
		if prev := n.PrevSibling(); prev != nil && prev.Kind() != syntax.ForInitializer {
			c.lastStatementEnd = n.Line()
		}

		c.lambda = nil

	case syntax.ArgumentList:
		if first := n.FirstChild(); first != nil && first.Kind() == syntax.Lambda {
			c.lambda = first
		}
	}
}

// skipTerminator reports whether n is a separator inside a for header, the
// closer of a do-while, or the exempt first statement of a for body, rather
// than the end of an independent statement. The same terminator kind serves
// all these roles in the lowered tree.
func (c *StatementLine) skipTerminator(n *syntax.Node) bool {
	// Separators inside 'for (;;)' headers and the closer of
	// 'do { } while ()' have a header clause among the siblings before the
	// previous statement boundary.
	for sibling := range syntax.PrevSiblings(n) {
		if isTerminator(sibling) {
			break
		}

		switch sibling.Kind() {
		case syntax.ForCondition, syntax.ForIterator, syntax.DoWhileTrailer:
			return true
		}
	}

	parent := n.Parent()
	if parent == nil || parent.Kind() != syntax.StatementBlock {
		return false
	}

	// The first statement of a 'for (;;) { }' body follows the header
	// clauses on the same conceptual line group.
	skip := false

	for sibling := range syntax.PrevSiblings(parent) {
		if isTerminator(sibling) {
			break
		}

		if sibling.Kind() == syntax.ForIterator {
			skip = true

			break
		}
	}

	if !skip {
		return false
	}

	// A second statement in the same body is checked normally.
	for sibling := range syntax.PrevSiblings(n) {
		if isTerminator(sibling) {
			return false
		}
	}

	return true
}

// onSameLine reports whether stmt begins on the line where the previous
// statement ended. A statement sharing its line with the lambda currently in
// scope is exempt.
func (c *StatementLine) onSameLine(stmt *syntax.Node) bool {
	return c.lastStatementEnd == stmt.Line() &&
		(c.lambda == nil || stmt.Line() != c.lambda.Line())
}

// multilineStatement returns the node whose line decides the collision
// check. A terminator pushed onto its own line by a multi-line statement is
// judged by its previous sibling instead of itself.
func multilineStatement(n *syntax.Node) *syntax.Node {
	if prev := n.PrevSibling(); prev != nil && prev.Line() != n.Line() && n.Parent() != nil {
		return prev
	}

	return n
}

// isTerminator reports whether n marks a statement boundary.
func isTerminator(n *syntax.Node) bool {
	return n.Kind() == syntax.StatementTerminator || n.Kind() == syntax.EmptyStatement
}
