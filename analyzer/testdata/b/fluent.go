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

package b

import "test/fluent"

func chained(s string) string {
	return fluent.New().Append("a").AppendRune('1').Append(s).String() // want "Construction of \\*fluent.Builder can be replaced with a string expression"
}

func seeded(s string) string {
	return fluent.From(s).Append("!").String() // want "Construction of \\*fluent.Builder can be replaced with a string expression"
}

func capacity(s string) int {
	return len(fluent.WithCapacity(10).Append(s).AppendByte('.').String()) // want "Construction of \\*fluent.Builder can be replaced with a string expression"
}

func ranged(arr []byte, off, n int) (string, string) {
	head := fluent.New().AppendRange(arr, 0, 3).String() // want "Construction of \\*fluent.Builder can be replaced with a string expression"

	tail := fluent.New().AppendRange(arr, off, n).String() // want "Construction of \\*fluent.Builder can be replaced with a string expression"

	return head, tail
}

func joined(x, y string) string {
	return fluent.NewJoiner("").Add(x).Add(y).String() // want "Construction of \\*fluent.Joiner can be replaced with a string expression"
}

func separator(x, y string) string {
	return fluent.NewJoiner(", ").Add(x).Add(y).String()
}

func variable(a string) string {
	b := fluent.New().Append("<") // want "Variable 'b' of type \\*fluent.Builder can be replaced with a string expression"
	b.Append(a).Append(">")
	return b.String()
}

func method(a string) string {
	return fluent.New().Append(a).String()[1:] // want "Construction of \\*fluent.Builder can be replaced with a string expression"
}

func binary(a, c string) string {
	return fluent.New().Append(a).Append("-").String()[1:] + c // want "Construction of \\*fluent.Builder can be replaced with a string expression"
}

func shifted(arr []byte, off, n int) string {
	return fluent.New().AppendRange(arr, off+1, n).String() // want "Construction of \\*fluent.Builder can be replaced with a string expression"
}
