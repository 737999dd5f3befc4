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
	"bytes"
	"fmt"
	"math"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

func (i *Interpreter) evalNegative(ctx *sql.Context, e *expression.Negative, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Child, depth)
	if err != nil {
		return sql.NullValue, err
	}

	switch v.Kind() {
	case sql.KindNull:
		return sql.NullValue, nil
	case sql.KindResidual:
		return sql.NewResidualValue(expression.NewNegative(valueToExpression(v))), nil
	case sql.KindLong:
		return sql.NewLongValue(-v.Long()), nil
	case sql.KindDouble:
		return sql.NewDoubleValue(-v.Double()), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(fmt.Sprintf("-%s", v.Kind()))
}

func (i *Interpreter) evalArithmetic(ctx *sql.Context, e *expression.Arithmetic, depth int) (sql.Value, error) {
	l, err := i.eval(ctx, e.Left, depth)
	if err != nil {
		return sql.NullValue, err
	}
	r, err := i.eval(ctx, e.Right, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if l.IsNull() || r.IsNull() {
		return sql.NullValue, nil
	}

	if l.IsResidual() || r.IsResidual() {
		return sql.NewResidualValue(expression.NewArithmetic(
			valueToExpression(l), valueToExpression(r), e.Op)), nil
	}

	if !l.IsNumeric() || !r.IsNumeric() {
		return sql.NullValue, sql.ErrInvalidType.New(
			fmt.Sprintf("%s %s %s", l.Kind(), e.Op, r.Kind()))
	}

	// Integer arithmetic stays in int64; a single double operand widens
	// the whole operation.
	if l.Kind() == sql.KindLong && r.Kind() == sql.KindLong {
		return longArithmetic(e.Op, l.Long(), r.Long())
	}
	return doubleArithmetic(e.Op, l.AsDouble(), r.AsDouble()), nil
}

func longArithmetic(op expression.ArithmeticOp, l, r int64) (sql.Value, error) {
	switch op {
	case expression.Add:
		return sql.NewLongValue(l + r), nil
	case expression.Subtract:
		return sql.NewLongValue(l - r), nil
	case expression.Multiply:
		return sql.NewLongValue(l * r), nil
	case expression.Divide:
		if r == 0 {
			return sql.NullValue, sql.ErrDivisionByZero.New()
		}
		return sql.NewLongValue(l / r), nil
	case expression.Modulo:
		if r == 0 {
			return sql.NullValue, sql.ErrDivisionByZero.New()
		}
		return sql.NewLongValue(l % r), nil
	}
	panic("interpreter: unknown arithmetic operator")
}

func doubleArithmetic(op expression.ArithmeticOp, l, r float64) sql.Value {
	switch op {
	case expression.Add:
		return sql.NewDoubleValue(l + r)
	case expression.Subtract:
		return sql.NewDoubleValue(l - r)
	case expression.Multiply:
		return sql.NewDoubleValue(l * r)
	case expression.Divide:
		return sql.NewDoubleValue(l / r)
	case expression.Modulo:
		return sql.NewDoubleValue(math.Mod(l, r))
	}
	panic("interpreter: unknown arithmetic operator")
}

// compareValues orders two concrete scalars when an ordering rule
// exists: integer compare for two longs, widened double compare for
// mixed numerics, lexicographic byte compare for two strings.
func compareValues(l, r sql.Value) (int, bool) {
	switch {
	case l.Kind() == sql.KindLong && r.Kind() == sql.KindLong:
		a, b := l.Long(), r.Long()
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	case l.IsNumeric() && r.IsNumeric():
		a, b := l.AsDouble(), r.AsDouble()
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	case l.Kind() == sql.KindVarchar && r.Kind() == sql.KindVarchar:
		return bytes.Compare(l.Varchar(), r.Varchar()), true
	}
	return 0, false
}

func (i *Interpreter) evalComparison(ctx *sql.Context, e *expression.Comparison, depth int) (sql.Value, error) {
	if e.Op == expression.IsDistinctFrom {
		return i.evalIsDistinctFrom(ctx, e, depth)
	}

	l, err := i.eval(ctx, e.Left, depth)
	if err != nil {
		return sql.NullValue, err
	}
	r, err := i.eval(ctx, e.Right, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if l.IsNull() || r.IsNull() {
		return sql.NullValue, nil
	}
	if l.IsResidual() || r.IsResidual() {
		return sql.NewResidualValue(expression.NewComparison(
			valueToExpression(l), valueToExpression(r), e.Op)), nil
	}

	switch e.Op {
	case expression.Equals, expression.NotEquals:
		if l.Kind() == sql.KindBoolean && r.Kind() == sql.KindBoolean {
			eq := l.Boolean() == r.Boolean()
			return sql.NewBooleanValue(eq == (e.Op == expression.Equals)), nil
		}
		if cmp, ok := compareValues(l, r); ok {
			return sql.NewBooleanValue((cmp == 0) == (e.Op == expression.Equals)), nil
		}
	default:
		if l.Kind() == sql.KindBoolean || r.Kind() == sql.KindBoolean {
			return sql.NullValue, sql.ErrUnsupportedFeature.New(
				"ordered comparison on BOOLEAN")
		}
		if cmp, ok := compareValues(l, r); ok {
			return sql.NewBooleanValue(orderedResult(e.Op, cmp)), nil
		}
	}

	// No rule for this tag combination. At compile time the comparison
	// is deferred to runtime as a residual; at runtime it is fatal.
	if i.optimizing() {
		return sql.NewResidualValue(expression.NewComparison(
			valueToExpression(l), valueToExpression(r), e.Op)), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(
		fmt.Sprintf("%s %s %s", l.Kind(), e.Op, r.Kind()))
}

func orderedResult(op expression.ComparisonOp, cmp int) bool {
	switch op {
	case expression.LessThan:
		return cmp < 0
	case expression.LessOrEqual:
		return cmp <= 0
	case expression.GreaterThan:
		return cmp > 0
	case expression.GreaterOrEqual:
		return cmp >= 0
	}
	panic("interpreter: unknown ordered operator")
}

// evalIsDistinctFrom is total over nulls: (null, null) is false and
// (null, x) is true, so null operands never propagate.
func (i *Interpreter) evalIsDistinctFrom(ctx *sql.Context, e *expression.Comparison, depth int) (sql.Value, error) {
	l, err := i.eval(ctx, e.Left, depth)
	if err != nil {
		return sql.NullValue, err
	}
	r, err := i.eval(ctx, e.Right, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if l.IsResidual() || r.IsResidual() {
		return sql.NewResidualValue(expression.NewIsDistinctFrom(
			valueToExpression(l), valueToExpression(r))), nil
	}

	switch {
	case l.IsNull() && r.IsNull():
		return sql.NewBooleanValue(false), nil
	case l.IsNull() || r.IsNull():
		return sql.NewBooleanValue(true), nil
	}

	eq, err := l.Equals(r)
	if err != nil {
		return sql.NullValue, err
	}
	return sql.NewBooleanValue(!eq), nil
}

func (i *Interpreter) evalBetween(ctx *sql.Context, e *expression.Between, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Val, depth)
	if err != nil {
		return sql.NullValue, err
	}
	lo, err := i.eval(ctx, e.Lower, depth)
	if err != nil {
		return sql.NullValue, err
	}
	hi, err := i.eval(ctx, e.Upper, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if v.IsNull() || lo.IsNull() || hi.IsNull() {
		return sql.NullValue, nil
	}
	if v.IsResidual() || lo.IsResidual() || hi.IsResidual() {
		exprs := residualize(v, lo, hi)
		return sql.NewResidualValue(expression.NewBetween(exprs[0], exprs[1], exprs[2])), nil
	}

	cmpLo, ok := compareValues(lo, v)
	if !ok {
		return sql.NullValue, sql.ErrInvalidType.New(e.String())
	}
	cmpHi, ok := compareValues(v, hi)
	if !ok {
		return sql.NullValue, sql.ErrInvalidType.New(e.String())
	}
	return sql.NewBooleanValue(cmpLo <= 0 && cmpHi <= 0), nil
}
