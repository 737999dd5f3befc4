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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
	"github.com/frescodb/fresco/sql/function"
)

func long(v int64) sql.Expression      { return expression.NewLongLiteral(v) }
func double(v float64) sql.Expression  { return expression.NewDoubleLiteral(v) }
func str(v string) sql.Expression      { return expression.NewStringLiteral(v) }
func boolean(v bool) sql.Expression    { return expression.NewBooleanLiteral(v) }
func null() sql.Expression             { return expression.NewNullLiteral() }
func symbol(name string) sql.Expression {
	return expression.NewQualifiedNameReference(name)
}

func TestArithmetic(t *testing.T) {
	testCases := []struct {
		name     string
		expr     sql.Expression
		expected sql.Value
	}{
		{
			"integer addition and multiplication stay integer",
			expression.NewMult(expression.NewPlus(long(3), long(4)), long(2)),
			sql.NewLongValue(14),
		},
		{
			"one double operand widens the whole operation",
			expression.NewMult(expression.NewPlus(long(3), double(4)), long(2)),
			sql.NewDoubleValue(14),
		},
		{
			"integer division truncates",
			expression.NewDiv(long(7), long(2)),
			sql.NewLongValue(3),
		},
		{
			"double division",
			expression.NewDiv(double(7), long(2)),
			sql.NewDoubleValue(3.5),
		},
		{
			"modulo",
			expression.NewMod(long(7), long(4)),
			sql.NewLongValue(3),
		},
		{
			"double modulo",
			expression.NewMod(double(7.5), double(2)),
			sql.NewDoubleValue(1.5),
		},
		{
			"subtraction",
			expression.NewMinus(long(3), long(5)),
			sql.NewLongValue(-2),
		},
		{
			"null operand is null",
			expression.NewPlus(long(3), null()),
			sql.NullValue,
		},
		{
			"negation of long",
			expression.NewNegative(long(42)),
			sql.NewLongValue(-42),
		},
		{
			"negation of double",
			expression.NewNegative(double(1.5)),
			sql.NewDoubleValue(-1.5),
		},
		{
			"negation of null",
			expression.NewNegative(null()),
			sql.NullValue,
		},
		{
			"integer overflow wraps",
			expression.NewPlus(long(math.MaxInt64), long(1)),
			sql.NewLongValue(math.MinInt64),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, interpret(t, tt.expr, nil))
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	testCases := []struct {
		name string
		expr sql.Expression
		kind *errors.Kind
	}{
		{
			"integer division by zero",
			expression.NewDiv(long(1), long(0)),
			sql.ErrDivisionByZero,
		},
		{
			"integer modulo by zero",
			expression.NewMod(long(1), long(0)),
			sql.ErrDivisionByZero,
		},
		{
			"string operand",
			expression.NewPlus(long(1), str("x")),
			sql.ErrInvalidType,
		},
		{
			"negation of string",
			expression.NewNegative(str("x")),
			sql.ErrInvalidType,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			_, err := NewInterpreter(nil, function.Defaults()).
				Evaluate(sql.NewEmptyContext(), tt.expr)
			require.Error(err)
			require.True(tt.kind.Is(err))
		})
	}
}

func TestDoubleDivisionByZeroFlows(t *testing.T) {
	require := require.New(t)

	v := interpret(t, expression.NewDiv(double(1), double(0)), nil)
	require.True(math.IsInf(v.Double(), 1))

	v = interpret(t, expression.NewDiv(double(0), double(0)), nil)
	require.True(math.IsNaN(v.Double()))
}

func TestArithmeticResidual(t *testing.T) {
	// x + 0 stays residual arithmetic: no algebraic identities beyond
	// literal folding are applied.
	s := residualString(t, expression.NewPlus(symbol("x"), long(0)), nil)
	require.Equal(t, "(x + 0)", s)

	s = residualString(t,
		expression.NewMult(symbol("x"), expression.NewPlus(long(3), long(4))), nil)
	require.Equal(t, "(x * 7)", s)
}
