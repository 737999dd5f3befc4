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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
	"github.com/frescodb/fresco/sql/function"
)

func TestFunctionCall(t *testing.T) {
	testCases := []struct {
		name     string
		expr     sql.Expression
		expected sql.Value
	}{
		{
			"concat",
			expression.NewFunctionCall("concat", str("foo"), str("bar")),
			sql.NewStringValue("foobar"),
		},
		{
			"upper",
			expression.NewFunctionCall("upper", str("abc")),
			sql.NewStringValue("ABC"),
		},
		{
			"length",
			expression.NewFunctionCall("length", str("abcd")),
			sql.NewLongValue(4),
		},
		{
			"abs picks the BIGINT overload",
			expression.NewFunctionCall("abs", long(-3)),
			sql.NewLongValue(3),
		},
		{
			"abs picks the DOUBLE overload",
			expression.NewFunctionCall("abs", double(-1.5)),
			sql.NewDoubleValue(1.5),
		},
		{
			"BIGINT argument widens into a DOUBLE formal",
			expression.NewFunctionCall("sqrt", long(9)),
			sql.NewDoubleValue(3),
		},
		{
			"null argument short-circuits to null",
			expression.NewFunctionCall("concat", str("a"), null()),
			sql.NullValue,
		},
		{
			"substr",
			expression.NewFunctionCall("substr", str("hello"), long(2), long(3)),
			sql.NewStringValue("ell"),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, interpret(t, tt.expr, nil))
		})
	}
}

func TestFunctionNotFound(t *testing.T) {
	testCases := []struct {
		name string
		expr sql.Expression
	}{
		{"unknown name", expression.NewFunctionCall("no_such_fn", long(1))},
		{"wrong arity", expression.NewFunctionCall("concat", str("a"))},
		{"wrong types", expression.NewFunctionCall("length", long(1))},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterpreter(nil, function.Defaults()).
				Evaluate(sql.NewEmptyContext(), tt.expr)
			require.Error(t, err)
			require.True(t, sql.ErrFunctionNotFound.Is(err))
		})
	}
}

func TestFunctionFailureIsWrapped(t *testing.T) {
	reg := function.Defaults()
	reg.MustRegister(&sql.FunctionDescriptor{
		Name:          "boom",
		Deterministic: true,
		Fn: func(_ sql.Session, _ []sql.Value) (sql.Value, error) {
			return sql.NullValue, errors.New("scalar exploded")
		},
	})

	_, err := NewInterpreter(nil, reg).
		Evaluate(sql.NewEmptyContext(), expression.NewFunctionCall("boom"))
	require.Error(t, err)
	require.True(t, sql.ErrEvaluation.Is(err))
}

func TestRuntimeErrorPassesThrough(t *testing.T) {
	reg := function.Defaults()
	reg.MustRegister(&sql.FunctionDescriptor{
		Name:          "kindboom",
		Deterministic: true,
		Fn: func(_ sql.Session, _ []sql.Value) (sql.Value, error) {
			return sql.NullValue, sql.ErrDivisionByZero.New()
		},
	})

	_, err := NewInterpreter(nil, reg).
		Evaluate(sql.NewEmptyContext(), expression.NewFunctionCall("kindboom"))
	require.Error(t, err)
	require.True(t, sql.ErrDivisionByZero.Is(err))
}

func TestNonDeterministicNotFolded(t *testing.T) {
	require := require.New(t)

	e := expression.NewFunctionCall("rand")

	// The optimizer rebuilds the call instead of running it.
	s := residualString(t, e, nil)
	require.Equal("rand()", s)

	// The interpreter runs it.
	v := interpret(t, e, nil)
	require.Equal(sql.KindDouble, v.Kind())
}

func TestNonDeterministicArgsStillFold(t *testing.T) {
	e := expression.NewFunctionCall("rand")
	wrapped := expression.NewFunctionCall("sqrt",
		expression.NewPlus(long(2), long(2)))
	call := expression.NewPlus(wrapped, e)

	s := residualString(t, call, nil)
	require.Equal(t, "(2.0 + rand())", s)
}

func TestSessionBoundFunction(t *testing.T) {
	require := require.New(t)

	now := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	sess := sql.NewSessionAt(now, sql.DefaultConfig())
	ctx := sql.NewContext(context.Background(), sql.WithSession(sess))

	v, err := NewOptimizer(nil, function.Defaults()).
		Evaluate(ctx, expression.NewFunctionCall("now"))
	require.NoError(err)
	require.Equal(sql.NewLongValue(now.Unix()), v)

	v, err = NewInterpreter(nil, function.Defaults()).
		Evaluate(ctx, expression.NewFunctionCall("connection_id"))
	require.NoError(err)
	require.Equal(sql.NewStringValue(sess.ID()), v)
}

func TestWindowAndDistinctCallsUnsupported(t *testing.T) {
	testCases := []*expression.FunctionCall{
		{Name: "count", Window: true},
		{Name: "count", Distinct: true},
	}

	for _, e := range testCases {
		_, err := NewInterpreter(nil, function.Defaults()).
			Evaluate(sql.NewEmptyContext(), e)
		require.Error(t, err)
		require.True(t, sql.ErrUnsupportedFeature.Is(err))
	}
}
