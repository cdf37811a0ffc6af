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

// Package trivia relocates comments of rewritten source ranges into or around the replacement text.
package trivia

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Relocator holds comments not yet placed, ordered by position.
//
// Every queued comment is placed exactly once: leading, inline or trailing.
type Relocator struct {
	file    *token.File
	newline string
	queue   []*ast.Comment
	leading []string
	line    int
}

// New creates a [Relocator] for comments of the given file.
func New(file *token.File, comments ...*ast.Comment) *Relocator {
	r := &Relocator{file: file, newline: "\n"}
	r.Add(comments...)

	return r
}

// Indent sets the indentation of continuation lines.
func (r *Relocator) Indent(indent string) {
	r.newline = "\n" + indent
}

// Add queues comments.
func (r *Relocator) Add(comments ...*ast.Comment) {
	for _, c := range comments {
		if !slices.Contains(r.queue, c) {
			r.queue = append(r.queue, c)
		}
	}

	slices.SortFunc(r.queue, func(a, b *ast.Comment) int { return cmp.Compare(a.Pos(), b.Pos()) })
}

// Pending returns the number of comments not yet placed.
func (r *Relocator) Pending() int {
	return len(r.queue)
}

// Skip drops queued comments within [pos, end), they are part of spliced source text.
func (r *Relocator) Skip(pos, end token.Pos) {
	r.queue = slices.DeleteFunc(r.queue, func(c *ast.Comment) bool { return pos <= c.Pos() && c.End() <= end })
}

// Track records the source line of the text last written.
func (r *Relocator) Track(pos token.Pos) {
	r.line = r.file.Line(pos)
}

// Place drains the queued comments before anchor.
//
// While out is still empty the comments are deferred to the leading list.
// Otherwise they are written inline, starting on a new line when their source line
// differs from the tracked line. It returns true when comments were written to out.
func (r *Relocator) Place(out *strings.Builder, anchor token.Pos) bool {
	i, _ := slices.BinarySearchFunc(r.queue, anchor, func(c *ast.Comment, p token.Pos) int { return cmp.Compare(c.Pos(), p) })
	if i == 0 {
		return false
	}

	drained := r.queue[:i]
	r.queue = slices.Clone(r.queue[i:])

	if out.Len() == 0 {
		for _, c := range drained {
			r.leading = append(r.leading, c.Text)
		}

		return false
	}

	for _, c := range drained {
		r.Separate(out, c.Pos())
		out.WriteString(c.Text) // ignore error

		if strings.HasPrefix(c.Text, "//") {
			out.WriteString(r.newline) // ignore error
		}

		r.line = r.file.Line(c.End())
	}

	return true
}

// Separate writes the white space before the text starting at pos, after comments were placed.
func (r *Relocator) Separate(out *strings.Builder, pos token.Pos) {
	switch {
	case strings.HasSuffix(out.String(), r.newline):

	case r.file.Line(pos) != r.line:
		out.WriteString(r.newline) // ignore error

	default:
		out.WriteByte(' ') // ignore error
	}
}

// Leading returns the comments to be placed before the replacement.
func (r *Relocator) Leading() []string {
	return r.leading
}

// Trailing drains the remaining comments, to be placed after the replacement.
func (r *Relocator) Trailing() []string {
	trailing := make([]string, 0, len(r.queue))
	for _, c := range r.queue {
		trailing = append(trailing, c.Text)
	}

	r.queue = nil

	return trailing
}
