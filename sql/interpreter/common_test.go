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

package interpreter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/function"
)

func background() context.Context { return context.Background() }

// interpret evaluates e against a row and requires success.
func interpret(t *testing.T, e sql.Expression, row sql.Row) sql.Value {
	t.Helper()
	v, err := NewInterpreter(row, function.Defaults()).Evaluate(sql.NewEmptyContext(), e)
	require.NoError(t, err)
	return v
}

// optimize folds e against the given symbol bindings and requires
// success.
func optimize(t *testing.T, e sql.Expression, symbols sql.SymbolResolver) sql.Value {
	t.Helper()
	v, err := NewOptimizer(symbols, function.Defaults()).Evaluate(sql.NewEmptyContext(), e)
	require.NoError(t, err)
	return v
}

// residualString folds e and requires a residual result, returning its
// serialized form for shape assertions.
func residualString(t *testing.T, e sql.Expression, symbols sql.SymbolResolver) string {
	t.Helper()
	v := optimize(t, e, symbols)
	require.True(t, v.IsResidual(), "expected residual, got %s", v)
	return v.Residual().String()
}
