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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/astutil"
	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/config"
	"fillmore-labs.com/builderconcat/internal/report"
	"fillmore-labs.com/builderconcat/internal/safety"
	"fillmore-labs.com/builderconcat/internal/scope"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the builderconcat analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("builderconcat: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	m, err := o.Model()
	if err != nil {
		return nil, fmt.Errorf("builderconcat: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "BuilderConcat")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	s := stages{
		classifier: chain.Classifier{Info: p.TypesInfo, Model: m},
		safety:     safety.Analyzer{Info: p.TypesInfo, Model: m, Scopes: scope.NewIndex(p.TypesInfo)},
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			body := c.ChildAt(edge.FuncDecl_Body, -1)

			// Stages 1 and 2: classify chains and prove them safe
			candidates := s.collect(ctx, currentFile, body)

			// Stage 3: synthesize replacements and report diagnostics with suggested fixes
			report.ProcessDiagnostics(ctx, p, currentFile, candidates, o.Behavior)
		}
	}

	return nil, nil
}
