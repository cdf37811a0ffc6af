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

package gclplugin

import "fillmore-labs.com/builderconcat/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// VarDecl declares extracted multi-line expressions with `var`.
	VarDecl *bool `json:"var-decl,omitzero"`
	// Concatenators is the path of a TOML or YAML file with additional concatenator types.
	Concatenators *string `json:"concatenators,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the builderconcat analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.VarDecl, analyzer.WithVarDecl)
	opts = appendOption(opts, s.Concatenators, analyzer.WithConcatenators)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
