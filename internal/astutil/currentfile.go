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

package astutil

import (
	"go/ast"
	"go/token"
	"os"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// builderconcat is the name of the linter.
const builderconcat = "builderconcat"

// CurrentFile holds file information and source text for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	content   []byte
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] for an *[ast.File] of the pass.
// The source text is read with [analysis.Pass.ReadFile] when available.
func NewCurrentFile(p *analysis.Pass, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := p.Fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	content, err := readFile(handle.Name())
	if err != nil || len(content) != handle.Size() {
		return CurrentFile{}
	}

	return NewCurrentFileContent(handle, file, content)
}

// NewCurrentFileContent creates a [CurrentFile] from already loaded source text.
func NewCurrentFileContent(handle *token.File, file *ast.File, content []byte) CurrentFile {
	return CurrentFile{file, handle, content, ast.IsGenerated(file)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle and its content.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// File returns the syntax tree of the file.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// Handle returns the [token.File] of the file.
func (c CurrentFile) Handle() *token.File {
	return c.handle
}

// Text returns the source text between two positions.
func (c CurrentFile) Text(pos, end token.Pos) string {
	return string(c.content[c.handle.Offset(pos):c.handle.Offset(end)])
}

// NodeText returns the source text of a node.
func (c CurrentFile) NodeText(n ast.Node) string {
	return c.Text(n.Pos(), n.End())
}

// Line returns the line number of a position.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// LineStart returns the position of the first character of the line containing pos.
func (c CurrentFile) LineStart(pos token.Pos) token.Pos {
	return c.handle.LineStart(c.Line(pos))
}

// LineEnd returns the position of the newline ending the line containing pos, or the end of file.
func (c CurrentFile) LineEnd(pos token.Pos) token.Pos {
	line := c.Line(pos)
	if line >= c.handle.LineCount() {
		return token.Pos(c.handle.Base() + c.handle.Size())
	}

	return c.handle.LineStart(line+1) - 1
}

// Indent returns the leading white space of the line containing pos.
func (c CurrentFile) Indent(pos token.Pos) string {
	start := c.handle.Offset(c.LineStart(pos))

	end := start
	for end < len(c.content) && (c.content[end] == ' ' || c.content[end] == '\t') {
		end++
	}

	return string(c.content[start:end])
}

// Blank reports whether the source text between two positions is only white space.
func (c CurrentFile) Blank(pos, end token.Pos) bool {
	return strings.TrimSpace(c.Text(pos, end)) == ""
}

// Comments returns all comments of the file contained in [pos, end), in source order.
func (c CurrentFile) Comments(pos, end token.Pos) []*ast.Comment {
	if c.file == nil {
		return nil
	}

	var comments []*ast.Comment

	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.End() - p) })
	for _, group := range c.file.Comments[i:] {
		if group.Pos() >= end {
			break
		}

		for _, comment := range group.List {
			if pos <= comment.Pos() && comment.End() <= end {
				comments = append(comments, comment)
			}
		}
	}

	return comments
}

// NoLintComment checks if a line is followed by a //nolint:builderconcat comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.Line(comment.Pos()) != c.Line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

// NoLintFile checks whether the file is excluded by a //nolint:builderconcat comment before the package clause.
func (c CurrentFile) NoLintFile() bool {
	if c.file == nil {
		return false
	}

	for _, group := range c.file.Comments {
		if group.Pos() >= c.file.Package {
			break
		}

		if slices.ContainsFunc(group.List, CommentHasNoLint) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:builderconcat` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == builderconcat || l == "all" {
			return true
		}
	}

	return false
}
