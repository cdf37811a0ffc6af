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
	"fmt"
	"strings"
)

// Kind distinguishes the two families of concatenator types.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// PlainBuilder is a string buffer with an optional seed or capacity hint.
	PlainBuilder Kind = iota // builder

	// SeparatorJoiner joins its elements with a separator given at construction.
	SeparatorJoiner // joiner
)

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case PlainBuilder, SeparatorJoiner:
		return []byte(k.String()), nil

	default:
		return nil, fmt.Errorf("unknown concatenator kind %d", k)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "builder":
		*k = PlainBuilder

	case "joiner":
		*k = SeparatorJoiner

	default:
		return fmt.Errorf("unknown concatenator kind %q", string(text))
	}

	return nil
}
