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

// Package report renders statement-line violations as analyzer diagnostics.
package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/onestmt/internal/astutil"
	"fillmore-labs.com/onestmt/internal/check"
)

// messages maps violation keys to diagnostic texts.
var messages = map[string]string{
	check.MessageKey: "More than one statement on this line (os:msl)",
}

// Sink forwards check violations to an analysis pass, honoring nolint
// suppression comments. It implements [check.Reporter].
type Sink struct {
	pass *analysis.Pass
	file astutil.CurrentFile
}

// NewSink creates a [Sink] reporting to p for the given file.
func NewSink(p *analysis.Pass, file astutil.CurrentFile) *Sink {
	return &Sink{pass: p, file: file}
}

// Report implements [check.Reporter].
func (s *Sink) Report(v check.Violation) {
	pos := v.Node.Pos()
	if s.file.NoLintComment(pos) {
		return
	}

	message, ok := messages[v.Key]
	if !ok {
		message = v.Key
	}

	s.pass.Report(analysis.Diagnostic{Pos: pos, End: pos, Message: message})
}
