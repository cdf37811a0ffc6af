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

// Package analyzer implements the builderconcat static analysis pass.
//
// # Overview
//
// builderconcat detects string builders that are constructed, appended to a fixed number
// of times and converted to a string without any other observable effect in between.
// Such sequences can be replaced with a single string concatenation expression.
//
// # Example
//
// Before:
//
//	func greeting(name string) string {
//	    var b strings.Builder
//	    b.WriteString("Hello, ")
//	    b.WriteString(name)
//	    b.WriteByte('!')
//	    return b.String()
//	}
//
// After applying builderconcat's suggested fix:
//
//	func greeting(name string) string {
//	    return "Hello, " + name + "!"
//	}
//
// # Supported Types
//
// [strings.Builder] and [bytes.Buffer] are supported out of the box. Further builder types
// with a fluent API can be described in a TOML or YAML file passed with -concatenators:
//
//	[[concatenator]]
//	type = "example.com/fluent.Builder"
//	kind = "builder"
//	constructors = ["New"]
//	append = ["Append", "AppendRune"]
//	terminal = "String"
//
// # Safety
//
// A chain is only reported when the builder is used in its declaring block, every use
// feeds an append or the terminal call, no call or assignment with a possible side effect
// happens before the string is built, and Go's evaluation order of the operands of the
// resulting expression can't change the result.
package analyzer
