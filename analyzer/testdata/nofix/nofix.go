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

package nofix

import (
	"fmt"
	"strconv"
	"strings"

	"test/fluent"
)

var global = "g"

func reused() (string, string) {
	var b strings.Builder
	b.WriteString("a")
	s := b.String()
	return s, b.String()
}

func escaped() string {
	var b strings.Builder
	b.WriteString("a")
	fill(&b)
	return b.String()
}

func fill(b *strings.Builder) { b.WriteString("b") }

func tiered(ok bool) string {
	var b strings.Builder
	if ok {
		b.WriteString("a")
	}
	return b.String()
}

func looped(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

func noTerminal() {
	var b strings.Builder
	b.WriteString("a")
}

func assigned(x string) string {
	var b strings.Builder
	b.WriteString(x)
	x = "y"
	b.WriteString(x)
	return b.String()
}

func methodValue() string {
	var b strings.Builder
	write := b.WriteString
	_, _ = write("a")
	return b.String()
}

func ordered() string {
	var b strings.Builder
	b.WriteString(global)
	b.WriteString(strconv.Itoa(len(global)))
	return b.String()
}

func hinted() string {
	var b strings.Builder
	b.Grow(len(fmt.Sprint(1)))
	b.WriteString("x")
	return b.String()
}

func deferred() string {
	var b strings.Builder
	b.WriteString("a")
	defer fmt.Println("done")
	b.WriteString("b")
	return b.String()
}

func separator(x, y string) string {
	return fluent.NewJoiner(", ").Add(x).Add(y).String()
}

func unordered(x int) string {
	return fluent.New().Append(global).Append(fmt.Sprint(x)).String()
}

func notTerminated() *fluent.Builder {
	return fluent.New().Append("a")
}

//nolint:builderconcat
func suppressed() string {
	var b strings.Builder
	b.WriteString("a")
	return b.String()
}

func bump() string {
	global = "b"

	return ""
}

func bumpedAfter() string {
	var b strings.Builder
	b.WriteString(global)
	return b.String() + bump()
}

func bumpedChain() string {
	return fluent.New().Append(global).String() + bump()
}

func bumpedArgument() {
	var b strings.Builder
	b.WriteString(global)
	fmt.Println(b.String(), bump())
}
