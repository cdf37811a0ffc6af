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

// State is the monotonic state of the walk over a variable's scope.
//
// possibleSideEffect and terminalSeen only switch from false to true,
// the status only switches from [Replaceable] to a blocked status.
type State struct {
	possibleSideEffect bool
	terminalSeen       bool
	status             Status
}

// SideEffect records a statement or call that could observe or mutate state.
func (s *State) SideEffect() { s.possibleSideEffect = true }

// Terminal records the terminal call.
func (s *State) Terminal() { s.terminalSeen = true }

// Block records the first reason the chain cannot be replaced.
func (s *State) Block(reason Status) {
	if s.status == Replaceable {
		s.status = reason
	}
}

// PossibleSideEffect reports whether a possible side effect has been seen.
func (s State) PossibleSideEffect() bool { return s.possibleSideEffect }

// TerminalSeen reports whether the terminal call has been seen.
func (s State) TerminalSeen() bool { return s.terminalSeen }

// Blocked reports whether the chain is known to be irreplaceable.
func (s State) Blocked() bool { return s.status != Replaceable }

// Status returns the final verdict: replaceable iff never blocked and the terminal call was seen.
func (s State) Status() Status {
	if s.status == Replaceable && !s.terminalSeen {
		return BlockedNoTerminal
	}

	return s.status
}
