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

import (
	"bytes"
	"fmt"
	"strings"
)

func greeting(name string) string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.WriteString("Hello, ")
	b.WriteString(name)
	b.WriteByte('!')
	return b.String()
}

func commented(first, last string) string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.WriteString(first) // first name
	b.WriteByte(' ')
	b.WriteString(last)
	s := b.String()
	return s
}

func separated(x, y string) {
	var sb strings.Builder // want "Variable 'sb' of type strings.Builder can be replaced with a string expression"
	sb.WriteString(x)
	// separator
	sb.WriteString(y)
	fmt.Println(sb.String())
}

func buffer(s string) string {
	b := bytes.NewBufferString("x=") // want "Variable 'b' of type \\*bytes.Buffer can be replaced with a string expression"
	b.WriteString(s)
	return b.String()
}

func slice(arr []byte) string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.Write(arr[0:3])
	return b.String()
}

func runes(r rune, c byte) string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.WriteRune(r)
	b.WriteByte(c)
	b.WriteRune('€')
	return b.String()
}

func sliced(x, y string) string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.WriteString(x)
	b.WriteString(y)
	return b.String()[1:]
}

func empty() string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	return b.String()
}

func grown(s string) string {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.Grow(len(s) + 1)
	b.WriteString(s)
	b.WriteByte('\n')
	return b.String()
}

func nested(s string) string {
	if s != "" {
		b := new(strings.Builder) // want "Variable 'b' of type \\*strings.Builder can be replaced with a string expression"
		b.WriteString(s)
		b.WriteString(".")
		return b.String()
	}

	return ""
}

func suppressed() string {
	var b strings.Builder //nolint:builderconcat
	b.WriteString("x")
	return b.String()
}

func sideEffect(x, y string) string {
	var b strings.Builder
	b.WriteString(x)
	fmt.Println()
	b.WriteString(y)
	return b.String()
}

func interleaved(x, y string) (string, string) {
	var b strings.Builder // want "Variable 'b' of type strings.Builder can be replaced with a string expression"
	b.WriteString(x)
	var c strings.Builder // want "Variable 'c' of type strings.Builder can be replaced with a string expression"
	c.WriteString(y)
	s := b.String()
	return s, c.String()
}
