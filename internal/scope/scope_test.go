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

package scope_test

import (
	"go/ast"
	"go/types"
	"testing"

	. "fillmore-labs.com/builderconcat/internal/scope"
	"fillmore-labs.com/builderconcat/internal/testsource"
)

func TestSameTier(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want bool
	}{
		{"same_block", `x := 1; _ = x`, true},
		{"nested_block", `x := 1; { _ = x }`, false},
		{"if_cond", `x := 1; if x > 0 { }`, false},
		{"if_body", `x := 1; if true { _ = x }`, false},
		{"for_body", `x := 1; for range 3 { _ = x }`, false},
		{"func_lit", `x := 1; _ = func() int { return x }`, false},
		{"switch_tag", `x := 1; switch x { }`, false},
		{"case_body", `switch { case true: x := 1; _ = x }`, true},
		{"case_expr", `x := 1; switch { case x > 0: }`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, tt.src)
			_, info := testsource.Check(t, src)

			var (
				x   *types.Var
				use *ast.Ident
			)

			for id, obj := range info.Defs {
				if v, ok := obj.(*types.Var); ok && id.Name == "x" {
					x = v
				}
			}

			for id, obj := range info.Uses {
				if obj == x && (use == nil || id.Pos() > use.Pos()) {
					use = id
				}
			}

			if x == nil || use == nil {
				t.Fatal("Can't find variable x or its use")
			}

			index := NewIndex(info)
			if got := index.SameTier(x, use.Pos()); got != tt.want {
				t.Errorf("SameTier() = %t, want %t", got, tt.want)
			}
		})
	}
}
