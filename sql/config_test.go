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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseConfig([]byte("max_expression_depth: 64\ntime_zone: UTC\n"))
	require.NoError(err)
	require.Equal(64, cfg.MaxExpressionDepth)
	require.Equal("UTC", cfg.TimeZone)
}

func TestParseConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseConfig(nil)
	require.NoError(err)
	require.Equal(DefaultConfig(), cfg)

	cfg, err = ParseConfig([]byte("max_expression_depth: 0\n"))
	require.NoError(err)
	require.Equal(DefaultMaxExpressionDepth, cfg.MaxExpressionDepth)
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := ParseConfig([]byte("{not yaml"))
	require.Error(t, err)
}
