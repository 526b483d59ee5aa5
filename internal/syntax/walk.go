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

package syntax

// Visitor receives enter and leave events during a depth-first traversal.
//
// Enter is delivered before any event of the node's descendants and Leave
// after all of them. Both are restricted to the kinds named by Interest;
// occurrences of those kinds are never filtered.
type Visitor interface {
	Interest() KindSet
	Enter(n *Node)
	Leave(n *Node)
}

// Walk traverses the tree rooted at root depth-first, delivering enter and
// leave events to v. Processing is strictly sequential; v owns its state for
// the duration of the traversal.
func Walk(root *Node, v Visitor) {
	walk(root, v, v.Interest())
}

func walk(n *Node, v Visitor, interest KindSet) {
	if n == nil {
		return
	}

	interested := interest.Contains(n.kind)
	if interested {
		v.Enter(n)
	}

	for c := n.firstChild; c != nil; c = c.nextSibling {
		walk(c, v, interest)
	}

	if interested {
		v.Leave(n)
	}
}
