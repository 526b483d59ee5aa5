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

// Package analyzer implements the onestmt static analysis pass.
//
// # Overview
//
// OneStmt reports source lines that carry more than one independent
// statement.
//
// # Example
//
// Flagged:
//
//	a := 1; b := 2
//	good(); bad()
//	x := first(
//		input); y := 2 // the second statement resumes on the closing line
//
// Not flagged:
//
//	for i := 0; i < 3; i++ { once() } // header separators and the first body statement
//	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] }) // single-line function literal body
//
// The separators of a three-clause for header are not statement boundaries,
// the first statement of a for body shares the header's line group, and a
// short function literal passed as the first call argument may share its
// line with the enclosing call statement.
package analyzer
