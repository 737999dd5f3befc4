// Copyright 2022-2023 FrescoDB, Inc.
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

package sql

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// DefaultMaxExpressionDepth bounds recursion over pathological trees
// when no explicit limit is configured.
const DefaultMaxExpressionDepth = 1000

// Config holds the session knobs honored by the expression interpreter.
type Config struct {
	// MaxExpressionDepth is the deepest expression tree the interpreter
	// will walk before failing with ErrExpressionTooDeep.
	MaxExpressionDepth int `yaml:"max_expression_depth"`
	// TimeZone names the zone datetime parts are computed in. Only
	// "UTC" is supported at present.
	TimeZone string `yaml:"time_zone"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		MaxExpressionDepth: DefaultMaxExpressionDepth,
		TimeZone:           "UTC",
	}
}

// ParseConfig reads a Config from YAML, filling absent fields with
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpressionDepth <= 0 {
		cfg.MaxExpressionDepth = DefaultMaxExpressionDepth
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = "UTC"
	}
	return cfg, nil
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}
