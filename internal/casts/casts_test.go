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

package casts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frescodb/fresco/sql"
)

func TestTo(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		in       sql.Value
		expected sql.Value
		err      bool
	}{
		{"long to boolean", "BOOLEAN", sql.NewLongValue(2), sql.NewBooleanValue(true), false},
		{"zero to boolean", "BOOLEAN", sql.NewLongValue(0), sql.NewBooleanValue(false), false},
		{"string to boolean", "boolean", sql.NewStringValue("TRUE"), sql.NewBooleanValue(true), false},
		{"bad string to boolean", "BOOLEAN", sql.NewStringValue("yep"), sql.NullValue, true},
		{"long to varchar", "VARCHAR", sql.NewLongValue(-42), sql.NewStringValue("-42"), false},
		{"double to varchar", "VARCHAR", sql.NewDoubleValue(1.5), sql.NewStringValue("1.5"), false},
		{"bool to varchar", "VARCHAR", sql.NewBooleanValue(true), sql.NewStringValue("true"), false},
		{"string to double", "DOUBLE", sql.NewStringValue("2.25"), sql.NewDoubleValue(2.25), false},
		{"long to double", "DOUBLE", sql.NewLongValue(3), sql.NewDoubleValue(3), false},
		{"bool to bigint", "BIGINT", sql.NewBooleanValue(true), sql.NewLongValue(1), false},
		{"double to bigint truncates", "BIGINT", sql.NewDoubleValue(3.9), sql.NewLongValue(3), false},
		{"string to bigint", "BIGINT", sql.NewStringValue(" 17 "), sql.NewLongValue(17), false},
		{"bad string to bigint", "BIGINT", sql.NewStringValue("x"), sql.NullValue, true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			out, err := To(tt.target, tt.in)
			if tt.err {
				require.Error(err)
			} else {
				require.NoError(err)
				require.Equal(tt.expected, out)
			}
		})
	}
}

func TestToUnknownTarget(t *testing.T) {
	_, err := To("DECIMAL", sql.NewLongValue(1))
	require.Error(t, err)
	require.True(t, sql.ErrUnsupportedFeature.Is(err))
}

func TestSupported(t *testing.T) {
	require := require.New(t)
	require.True(Supported("varchar"))
	require.True(Supported("BIGINT"))
	require.False(Supported("DECIMAL"))
}
