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

import "fillmore-labs.com/onestmt/internal/config"

// Kind tags a [Node] with its syntactic role.
type Kind uint8

//go:generate go tool stringer -type=Kind

const (
	// Invalid is the zero [Kind]; it never appears in a lowered tree.
	Invalid Kind = iota

	// StatementTerminator marks the end of an individual statement.
	StatementTerminator

	// EmptyStatement is a terminator with no preceding statement content.
	EmptyStatement

	// ArgumentList is the parenthesized argument group of a call.
	ArgumentList

	// ForInitializer is the first clause of a three-clause for header.
	ForInitializer

	// ForCondition is the second clause of a three-clause for header.
	ForCondition

	// ForIterator is the third clause of a three-clause for header.
	ForIterator

	// DoWhileTrailer is the trailing while clause of a do-while construct.
	DoWhileTrailer

	// StatementBlock is a braced statement list or a clause body.
	StatementBlock

	// Lambda is an inline function literal.
	Lambda

	// Expression is generic statement or expression content.
	Expression

	// For is a loop construct.
	For
)

// KindSet is a set of node kinds, used to declare walker interest.
type KindSet struct {
	mask config.BitMask[uint16]
}

// NewKindSet returns a [KindSet] containing the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s.mask.Enable(1 << k)
	}

	return s
}

// Contains reports whether k is in the set.
func (s KindSet) Contains(k Kind) bool {
	return s.mask.Enabled(1 << k)
}
