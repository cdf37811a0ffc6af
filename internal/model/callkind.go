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

// CallKind classifies a call in relation to a concatenator type.
type CallKind uint8

//go:generate go tool stringer -type CallKind -linecomment
const (
	// CallOther is any call not taking part in a chain.
	CallOther CallKind = iota // other

	// CallConstruct creates a new concatenator.
	CallConstruct // construct

	// CallAppend extends the content by one value.
	CallAppend // append

	// CallAppendRanged extends the content by the range (offset, length) of a slice.
	CallAppendRanged // append-ranged

	// CallAdd adds one element to a joiner.
	CallAdd // add

	// CallHint is a capacity hint without effect on the content.
	CallHint // hint

	// CallTerminal returns the built string.
	CallTerminal // terminal
)

// Link reports whether the call can continue a chain before the terminal.
func (k CallKind) Link() bool {
	switch k {
	case CallAppend, CallAppendRanged, CallAdd, CallHint:
		return true

	default:
		return false
	}
}

// ArgKind is the type category of an argument, taken from the method's parameter type.
type ArgKind uint8

//go:generate go tool stringer -type ArgKind -linecomment
const (
	// ArgInvalid is an unsupported parameter type.
	ArgInvalid ArgKind = iota // invalid

	// ArgString is the predeclared string type.
	ArgString // string

	// ArgNamedString is a defined type with underlying type string.
	ArgNamedString // named-string

	// ArgByte is a single byte.
	ArgByte // byte

	// ArgRune is a single rune.
	ArgRune // rune

	// ArgBytes is a byte slice.
	ArgBytes // bytes

	// ArgRunes is a rune slice.
	ArgRunes // runes

	// ArgInt is any integer type, used for capacity hints, offsets and lengths.
	ArgInt // int
)

// Content reports whether an argument of this kind contributes to the built string.
func (k ArgKind) Content() bool {
	switch k {
	case ArgString, ArgNamedString, ArgByte, ArgRune, ArgBytes, ArgRunes:
		return true

	default:
		return false
	}
}
