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

package run

import (
	"fmt"
	"sync"

	"fillmore-labs.com/builderconcat/internal/config"
	"fillmore-labs.com/builderconcat/internal/model"
)

// Options represent configuration options for the builderconcat analyzer.
type Options struct {
	// Behavior holds layout and behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Concatenators is the path of a file with additional concatenator type definitions.
	Concatenators string

	model func() (*model.Model, error)
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	o := &Options{}
	o.model = sync.OnceValues(o.loadModel)

	return o
}

// Model returns the concatenator model, loading the definition file on first use.
func (o *Options) Model() (*model.Model, error) {
	if o.model == nil {
		return o.loadModel()
	}

	return o.model()
}

func (o *Options) loadModel() (*model.Model, error) {
	var custom []model.Type

	if o.Concatenators != "" {
		var err error
		if custom, err = config.LoadConcatenators(o.Concatenators); err != nil {
			return nil, fmt.Errorf("loading concatenators: %w", err)
		}
	}

	return model.New(custom...)
}
