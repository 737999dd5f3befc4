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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

func branches(pairs ...sql.Expression) []expression.CaseBranch {
	var out []expression.CaseBranch
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, expression.CaseBranch{Cond: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestSearchedCase(t *testing.T) {
	testCases := []struct {
		name     string
		expr     sql.Expression
		expected sql.Value
	}{
		{
			"first true branch wins",
			expression.NewCase(nil,
				branches(boolean(false), long(1), boolean(true), long(2)),
				long(3)),
			sql.NewLongValue(2),
		},
		{
			"else taken when no branch matches",
			expression.NewCase(nil,
				branches(boolean(false), long(1)),
				long(3)),
			sql.NewLongValue(3),
		},
		{
			"null condition is not a match",
			expression.NewCase(nil,
				branches(null(), long(1), boolean(true), long(2)),
				nil),
			sql.NewLongValue(2),
		},
		{
			"no match and no else is null",
			expression.NewCase(nil, branches(boolean(false), long(1)), nil),
			sql.NullValue,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, interpret(t, tt.expr, nil))
		})
	}
}

func TestSimpleCase(t *testing.T) {
	testCases := []struct {
		name     string
		selector sql.Expression
		expected sql.Value
	}{
		{"first arm", long(1), sql.NewLongValue(10)},
		{"second arm", long(2), sql.NewLongValue(20)},
		{"no match falls to else", long(9), sql.NewLongValue(30)},
		{"null selector falls to else", null(), sql.NewLongValue(30)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			e := expression.NewCase(tt.selector,
				branches(long(1), long(10), long(2), long(20)),
				long(30))
			require.Equal(t, tt.expected, interpret(t, e, nil))
		})
	}
}

func TestCaseResidualStaysUnreduced(t *testing.T) {
	testCases := []struct {
		name string
		expr *expression.Case
	}{
		{
			"residual WHEN condition",
			expression.NewCase(nil,
				branches(symbol("x"), long(1)),
				long(2)),
		},
		{
			"residual selector",
			expression.NewCase(symbol("x"),
				branches(long(1), long(10)),
				nil),
		},
		{
			"residual selected result",
			expression.NewCase(nil,
				branches(boolean(true), symbol("x")),
				nil),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			v := optimize(t, tt.expr, nil)
			require.True(t, v.IsResidual())
			// Conservative: the original node comes back untouched.
			require.True(t, v.Residual() == sql.Expression(tt.expr))
		})
	}
}

func TestCoalesce(t *testing.T) {
	require := require.New(t)

	require.Equal(sql.NewStringValue("x"),
		interpret(t, expression.NewCoalesce(null(), null(), str("x")), nil))
	require.Equal(sql.NullValue,
		interpret(t, expression.NewCoalesce(null(), null()), nil))
	require.Equal(sql.NewLongValue(1),
		interpret(t, expression.NewCoalesce(long(1), long(2)), nil))
}

func TestCoalesceIsLazy(t *testing.T) {
	// The division would fail, but the first non-null operand before it
	// must short-circuit evaluation.
	e := expression.NewCoalesce(
		null(), null(), str("x"),
		expression.NewDiv(long(1), long(0)),
	)
	require.Equal(t, sql.NewStringValue("x"), interpret(t, e, nil))
}

func TestCoalesceResidualStaysUnreduced(t *testing.T) {
	e := expression.NewCoalesce(null(), symbol("x"), str("fallback"))
	v := optimize(t, e, nil)
	require.True(t, v.IsResidual())
	require.True(t, v.Residual() == sql.Expression(e))
}

func TestNullIf(t *testing.T) {
	testCases := []struct {
		name     string
		expr     sql.Expression
		expected sql.Value
	}{
		{"equal operands", expression.NewNullIf(long(1), long(1)), sql.NullValue},
		{"distinct operands", expression.NewNullIf(long(1), long(2)), sql.NewLongValue(1)},
		{"null second returns first", expression.NewNullIf(long(1), null()), sql.NewLongValue(1)},
		{"null first is null", expression.NewNullIf(null(), long(1)), sql.NullValue},
		{"both null is null", expression.NewNullIf(null(), null()), sql.NullValue},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, interpret(t, tt.expr, nil))
		})
	}
}

func TestIf(t *testing.T) {
	testCases := []struct {
		name     string
		expr     sql.Expression
		expected sql.Value
	}{
		{"true takes then", expression.NewIf(boolean(true), long(1), long(2)), sql.NewLongValue(1)},
		{"false takes else", expression.NewIf(boolean(false), long(1), long(2)), sql.NewLongValue(2)},
		{"null takes else", expression.NewIf(null(), long(1), long(2)), sql.NewLongValue(2)},
		{"false without else is null", expression.NewIf(boolean(false), long(1), nil), sql.NullValue},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, interpret(t, tt.expr, nil))
		})
	}
}

func TestIfResidualConditionOptimizesBranches(t *testing.T) {
	e := expression.NewIf(symbol("c"),
		expression.NewPlus(long(1), long(2)),
		expression.NewMult(long(2), long(3)))

	s := residualString(t, e, nil)
	require.Equal(t, "IF(c, 3, 6)", s)
}

func TestIfFailingBranchKeptSymbolic(t *testing.T) {
	// A branch that cannot be optimized is deferred to runtime as its
	// original subtree instead of failing the whole expression.
	failing := expression.NewDiv(long(1), long(0))
	e := expression.NewIf(symbol("c"), failing, long(2))

	s := residualString(t, e, nil)
	require.Equal(t, "IF(c, (1 / 0), 2)", s)
}
