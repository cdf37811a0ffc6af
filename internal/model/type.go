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

package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidType is returned for an incomplete concatenator type description.
var ErrInvalidType = errors.New("invalid concatenator type")

// Type describes a concatenator type and the calls it supports.
type Type struct {
	// Name is the import path and the type name, e.g. "strings.Builder".
	Name string `toml:"type" yaml:"type"`

	// Kind is the family of the type.
	Kind Kind `toml:"kind" yaml:"kind"`

	// Constructors are package-level functions returning the type or a pointer to it.
	Constructors []string `toml:"constructors" yaml:"constructors"`

	// Append are the method names extending the content by one value or a slice range.
	Append []string `toml:"append" yaml:"append"`

	// Add are the method names adding one element to a joiner.
	Add []string `toml:"add" yaml:"add"`

	// Hint are the method names taking a capacity hint.
	Hint []string `toml:"hint" yaml:"hint"`

	// Terminal is the method name returning the built string.
	Terminal string `toml:"terminal" yaml:"terminal"`

	// ZeroValue reports whether the zero value is ready to use.
	ZeroValue bool `toml:"zero-value" yaml:"zero-value"`
}

// Builtin are the standard library concatenator types.
var Builtin = []Type{
	{
		Name:      "strings.Builder",
		Kind:      PlainBuilder,
		Append:    []string{"WriteString", "WriteByte", "WriteRune", "Write"},
		Hint:      []string{"Grow"},
		Terminal:  "String",
		ZeroValue: true,
	},
	{
		Name:         "bytes.Buffer",
		Kind:         PlainBuilder,
		Constructors: []string{"NewBuffer", "NewBufferString"},
		Append:       []string{"WriteString", "WriteByte", "WriteRune", "Write"},
		Hint:         []string{"Grow"},
		Terminal:     "String",
		ZeroValue:    true,
	},
}

// Path returns the import path of the package declaring the type.
func (t *Type) Path() string {
	path, _ := t.split()

	return path
}

// TypeName returns the unqualified name of the type.
func (t *Type) TypeName() string {
	_, name := t.split()

	return name
}

func (t *Type) split() (path, name string) {
	i := strings.LastIndexByte(t.Name, '.')
	if i < 0 {
		return "", t.Name
	}

	return t.Name[:i], t.Name[i+1:]
}

// Validate checks the description for completeness.
func (t *Type) Validate() error {
	path, name := t.split()
	switch {
	case path == "" || name == "":
		return fmt.Errorf("%w: %q is not a qualified type name", ErrInvalidType, t.Name)

	case t.Terminal == "":
		return fmt.Errorf("%w: %s has no terminal method", ErrInvalidType, t.Name)

	case len(t.Append) == 0 && len(t.Add) == 0:
		return fmt.Errorf("%w: %s has no append or add methods", ErrInvalidType, t.Name)

	case t.Kind == SeparatorJoiner && len(t.Constructors) == 0:
		return fmt.Errorf("%w: joiner %s needs a constructor", ErrInvalidType, t.Name)

	case t.Kind == SeparatorJoiner && t.ZeroValue:
		return fmt.Errorf("%w: joiner %s has no usable zero value", ErrInvalidType, t.Name)
	}

	return nil
}

func (t *Type) family(method string) CallKind {
	switch {
	case method == t.Terminal:
		return CallTerminal

	case slices.Contains(t.Append, method):
		return CallAppend

	case slices.Contains(t.Add, method):
		return CallAdd

	case slices.Contains(t.Hint, method):
		return CallHint

	default:
		return CallOther
	}
}
