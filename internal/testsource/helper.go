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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It handles the boilerplate of parsing and type-checking statement-level Go source
// fragments for the builderconcat stages.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Source is a parsed test fragment.
type Source struct {
	Fset    *token.FileSet
	File    *ast.File
	Func    *ast.FuncDecl
	Body    inspector.Cursor
	Content []byte
}

// Parse parses a Go source code fragment into an AST.
// The provided source `src` is wrapped in a function body `func _() { ... }`
// within a package `test` importing the given packages. Comments are retained.
//
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string, imports ...string) Source {
	tb.Helper()

	fset := token.NewFileSet()
	content := wrapSource(src, imports)

	f, err := parser.ParseFile(fset, filename, content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body := firstFuncDecl(f)
	if fn == nil {
		tb.Fatal("Can't find function")
	}

	return Source{Fset: fset, File: f, Func: fn, Body: body, Content: content}
}

// Check performs type checking on the parsed source.
// It creates and returns a fully type-checked *types.Package and *types.Info.
func Check(tb testing.TB, s Source) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, s.Fset, []*ast.File{s.File}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// TokenFile returns the [token.File] of the parsed source.
func (s Source) TokenFile() *token.File {
	return s.Fset.File(s.File.FileStart)
}

// Find returns the cursor of the first node in the function body matching the predicate.
func (s Source) Find(tb testing.TB, match func(ast.Node) bool) inspector.Cursor {
	tb.Helper()

	for c := range s.Body.Preorder() {
		if match(c.Node()) {
			return c
		}
	}

	tb.Fatal("Can't find node")

	return s.Body
}

func wrapSource(src string, imports []string) []byte {
	var srcFile strings.Builder

	srcFile.WriteString("package " + testpkg + "\n\n") // ignore error

	for _, path := range imports {
		srcFile.WriteString("import " + strconv.Quote(path) + "\n") // ignore error
	}

	srcFile.WriteString("\nfunc _() {\n") // ignore error
	srcFile.WriteString(src)               // ignore error
	srcFile.WriteString("\n}\n")            // ignore error

	return []byte(srcFile.String())
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
