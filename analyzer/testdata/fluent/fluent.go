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

// Package fluent is a builder with a fluent API for tests.
package fluent

import (
	"slices"
	"strings"
	"unicode/utf8"
)

type Builder struct{ buf []byte }

func New() *Builder { return &Builder{} }

func WithCapacity(n int) *Builder { return &Builder{buf: make([]byte, 0, n)} }

func From(s string) *Builder { return &Builder{buf: []byte(s)} }

func (b *Builder) Append(s string) *Builder {
	b.buf = append(b.buf, s...)

	return b
}

func (b *Builder) AppendByte(c byte) *Builder {
	b.buf = append(b.buf, c)

	return b
}

func (b *Builder) AppendRune(r rune) *Builder {
	b.buf = utf8.AppendRune(b.buf, r)

	return b
}

func (b *Builder) AppendBytes(p []byte) *Builder {
	b.buf = append(b.buf, p...)

	return b
}

func (b *Builder) AppendRange(p []byte, off, n int) *Builder {
	b.buf = append(b.buf, p[off:off+n]...)

	return b
}

func (b *Builder) Grow(n int) *Builder {
	b.buf = slices.Grow(b.buf, n)

	return b
}

func (b *Builder) String() string { return string(b.buf) }

type Joiner struct {
	sep   string
	parts []string
}

func NewJoiner(sep string) *Joiner { return &Joiner{sep: sep} }

func (j *Joiner) Add(s string) *Joiner {
	j.parts = append(j.parts, s)

	return j
}

func (j *Joiner) String() string { return strings.Join(j.parts, j.sep) }
