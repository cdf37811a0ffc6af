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

package safety

// Status indicates whether a chain can be replaced and why not.
type Status uint8

//go:generate go tool stringer -type Status -linecomment
const (
	// Replaceable indicates the chain can be replaced by a string expression.
	Replaceable Status = iota // rep

	// BlockedNoTerminal indicates the built string is never retrieved.
	BlockedNoTerminal // trm

	// BlockedTier indicates a use in a nested block, branch, loop or function literal.
	// A single path from the declaration to the terminal call cannot be proven.
	BlockedTier // tie

	// BlockedReuse indicates a use after the terminal call.
	BlockedReuse // dup

	// BlockedSideEffect indicates an append or terminal call after a possible side effect.
	// Moving the appended values across an opaque call could change their values.
	BlockedSideEffect // sfx

	// BlockedShape indicates a use not feeding an append or terminal call, e.g. passing the builder around.
	BlockedShape // shp

	// BlockedOrder indicates the rewritten expression would have an unspecified evaluation order
	// between a call in one operand and a read of mutable state in another.
	BlockedOrder // ord
)

// Replaceable indicates the chain can be replaced.
func (s Status) Replaceable() bool { return s == Replaceable }
