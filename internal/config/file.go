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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/builderconcat/internal/model"
)

// ErrUnknownFormat is returned for definition files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown definition file format")

// definitions is the content of a concatenator definition file.
type definitions struct {
	Concatenators []model.Type `toml:"concatenator" yaml:"concatenators"`
}

// LoadConcatenators reads custom concatenator types from a TOML or YAML file.
func LoadConcatenators(path string) ([]model.Type, error) {
	var (
		defs definitions
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(path, &defs)

	case ".yaml", ".yml":
		err = decodeYAML(path, &defs)

	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}

	if err != nil {
		return nil, err
	}

	for i := range defs.Concatenators {
		if err := defs.Concatenators[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return defs.Concatenators, nil
}

func decodeTOML(path string, defs *definitions) error {
	meta, err := toml.DecodeFile(path, defs)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}

	return nil
}

func decodeYAML(path string, defs *definitions) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(defs); err != nil {
		return fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}

	return nil
}
