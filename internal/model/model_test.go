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

package model_test

import (
	"go/ast"
	"testing"

	. "fillmore-labs.com/builderconcat/internal/model"
	"fillmore-labs.com/builderconcat/internal/testsource"
)

func TestConstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
		seed bool
	}{
		{"new", `_ = new(strings.Builder)`, true, false},
		{"composite", `_ = strings.Builder{}`, true, false},
		{"address", `_ = &strings.Builder{}`, true, false},
		{"buffer_nil", `_ = bytes.NewBuffer(nil)`, true, false},
		{"buffer_make", `_ = bytes.NewBuffer(make([]byte, 0, 64))`, true, false},
		{"buffer_seed", `_ = bytes.NewBuffer([]byte("x"))`, true, true},
		{"buffer_string", `_ = bytes.NewBufferString("x")`, true, true},
		{"new_pointer", `_ = new(*strings.Builder)`, false, false},
		{"other", `_ = strings.NewReader("x")`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, "_ = strings.ToUpper\n_ = bytes.ToUpper\n"+tt.src, "bytes", "strings")
			_, info := testsource.Check(t, src)

			m, err := New()
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			stmts := src.Func.Body.List
			rhs := stmts[len(stmts)-1].(*ast.AssignStmt).Rhs[0]

			cons, ok := m.Construction(info, rhs)
			if ok != tt.want {
				t.Fatalf("Construction() = %t, want %t", ok, tt.want)
			}

			if got := cons.Seed != nil; ok && got != tt.seed {
				t.Errorf("Construction() seed = %t, want %t", got, tt.seed)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      string
		want      CallKind
		arg       ArgKind
		chainable bool
	}{
		{"write_string", `b.WriteString("x")`, CallAppend, ArgString, false},
		{"write_byte", `b.WriteByte('x')`, CallAppend, ArgByte, false},
		{"write_rune", `b.WriteRune('x')`, CallAppend, ArgRune, false},
		{"write", `b.Write(nil)`, CallAppend, ArgBytes, false},
		{"grow", `b.Grow(10)`, CallHint, ArgInt, false},
		{"string", `_ = b.String()`, CallTerminal, ArgInvalid, false},
		{"len", `_ = b.Len()`, CallOther, ArgInvalid, false},
		{"reset", `b.Reset()`, CallOther, ArgInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, "var b strings.Builder\n"+tt.call, "strings")
			_, info := testsource.Check(t, src)

			m, err := New()
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			c := src.Find(t, func(n ast.Node) bool { _, ok := n.(*ast.CallExpr); return ok })

			got := m.Classify(info, c.Node().(*ast.CallExpr))
			if got.Kind != tt.want {
				t.Fatalf("Classify() = %s, want %s", got.Kind, tt.want)
			}

			if got.Chainable != tt.chainable {
				t.Errorf("Classify() chainable = %t, want %t", got.Chainable, tt.chainable)
			}

			if len(got.Args) > 0 && got.Args[0].Kind != tt.arg {
				t.Errorf("Classify() arg = %s, want %s", got.Args[0].Kind, tt.arg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		typ     Type
		wantErr bool
	}{
		{"builtin", Builtin[0], false},
		{"unqualified", Type{Name: "Builder", Append: []string{"Append"}, Terminal: "String"}, true},
		{"no_terminal", Type{Name: "x.Builder", Append: []string{"Append"}}, true},
		{"no_append", Type{Name: "x.Builder", Terminal: "String"}, true},
		{"joiner", Type{Name: "x.Joiner", Kind: SeparatorJoiner, Add: []string{"Add"}, Terminal: "String"}, true},
		{"joiner_ok", Type{Name: "x.Joiner", Kind: SeparatorJoiner, Constructors: []string{"New"}, Add: []string{"Add"}, Terminal: "String"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.typ.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestKindText(t *testing.T) {
	t.Parallel()

	for _, k := range [...]Kind{PlainBuilder, SeparatorJoiner} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) failed: %v", k, err)
		}

		var got Kind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}

		if got != k {
			t.Errorf("UnmarshalText(%q) = %s, want %s", text, got, k)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("splitter")); err == nil {
		t.Error("UnmarshalText(\"splitter\") expected error")
	}
}
