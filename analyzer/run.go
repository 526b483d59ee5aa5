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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/onestmt/internal/astutil"
	"fillmore-labs.com/onestmt/internal/check"
	"fillmore-labs.com/onestmt/internal/config"
	"fillmore-labs.com/onestmt/internal/lower"
	"fillmore-labs.com/onestmt/internal/report"
	"fillmore-labs.com/onestmt/internal/syntax"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the onestmt analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("onestmt: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "OneStmt")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	includeGenerated := r.behavior.Enabled(config.IncludeGenerated)

	// Loop over all files of the package
	root, types := in.Root(), []ast.Node{
		(*ast.File)(nil),
	}

	root.Inspect(types, func(i inspector.Cursor) bool {
		file, ok := i.Node().(*ast.File)
		if !ok {
			astutil.InternalError(p, i.Node(), "Unexpected node type: %T", i.Node())

			return false
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() || (!includeGenerated && currentFile.Generated()) {
			return false
		}

		analyzeFile(ctx, p, currentFile, file)

		return false
	})

	return nil, nil
}

// analyzeFile lowers one file into a statement-oriented syntax tree and runs
// the statement-line check over its enter/leave event stream. Each file is an
// independent tree; the check state is reset before the traversal.
func analyzeFile(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, file *ast.File) {
	defer trace.StartRegion(ctx, "File").End()

	tree := lower.File(p.Fset, file)

	c := check.New(report.NewSink(p, currentFile))
	c.BeginTree()

	syntax.Walk(tree, c)
}
