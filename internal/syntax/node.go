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

// Package syntax defines the statement-oriented syntax tree consumed by the
// onestmt check, together with a depth-first walker over it.
package syntax

import (
	"go/token"
	"iter"
)

// Node is a node of the lowered, statement-oriented syntax tree.
//
// Nodes are linked to their parent and siblings so that checks can scan
// backwards through the children of one parent. A tree is built once by a
// lowering frontend and is read-only afterwards; all link accessors return
// nil for absent relatives.
type Node struct {
	kind Kind
	line int
	pos  token.Pos

	parent      *Node
	prevSibling *Node
	nextSibling *Node
	firstChild  *Node
	lastChild   *Node
}

// NewNode creates an unattached node with the given kind, 1-based source
// line and position.
func NewNode(kind Kind, line int, pos token.Pos) *Node {
	return &Node{kind: kind, line: line, pos: pos}
}

// Kind returns the node's syntactic role.
func (n *Node) Kind() Kind { return n.kind }

// Line returns the 1-based source line the node starts on.
func (n *Node) Line() int { return n.line }

// Pos returns the node's source position for diagnostics.
func (n *Node) Pos() token.Pos { return n.pos }

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// PrevSibling returns the preceding node among the children of the same
// parent, or nil if n is the first child.
func (n *Node) PrevSibling() *Node { return n.prevSibling }

// NextSibling returns the following node among the children of the same
// parent, or nil if n is the last child.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// FirstChild returns the node's first child, or nil if it has none.
func (n *Node) FirstChild() *Node { return n.firstChild }

// Append attaches child as the last child of n.
func (n *Node) Append(child *Node) {
	child.parent = n
	child.prevSibling = n.lastChild

	if n.lastChild == nil {
		n.firstChild = child
	} else {
		n.lastChild.nextSibling = child
	}

	n.lastChild = child
}

// PrevSiblings yields n's previous siblings, nearest first.
func PrevSiblings(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for s := n.prevSibling; s != nil; s = s.prevSibling {
			if !yield(s) {
				return
			}
		}
	}
}
