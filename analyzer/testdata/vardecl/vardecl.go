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

package vardecl

import "strings"

func explicit(a, b string) {
	var sb strings.Builder // want "Variable 'sb' of type strings.Builder can be replaced with a string expression"
	sb.WriteString(a) // first
	sb.WriteString(b)
	println(sb.String())
}

func initializer(a, b string) string {
	var sb strings.Builder // want "Variable 'sb' of type strings.Builder can be replaced with a string expression"
	sb.WriteString(a) // first
	sb.WriteString(b)
	var s = sb.String()
	return s
}

func upper(s string) string {
	return strings.ToUpper(s)
}
