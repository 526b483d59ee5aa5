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

package a

func assignments() {
	a := 1; b := 2 // want `More than one statement on this line`
	_, _ = a, b
}

func separateLines() {
	a := 1
	b := 2
	_, _ = a, b
}

func sameLineCalls() {
	good()
	good(); bad() // want `More than one statement on this line`
}

func forLoops() {
	good(); for i := 0; i < 3; i++ { bad() } // want `More than one statement on this line`

	for i := 0; i < 3; i++ { good(); bad() } // want `More than one statement on this line`

	for i := 0; i < 3; i++ {
		good()
	}
}

func lambdas() {
	run(func() { good() })
	run(func() { good() }); bad() // want `More than one statement on this line`
}

func multiline() {
	v := first(
		1); w := 2 // want `More than one statement on this line`
	_, _ = v, w
}

func empties() {
	a := 1;; b := 2 // want `More than one statement on this line` `More than one statement on this line`
	_, _ = a, b
}

func suppressed() {
	a := 1; b := 2 //nolint:onestmt
	_, _ = a, b
}

func good() {}

func bad() {}

func run(f func()) { f() }

func first(n int) int { return n }
