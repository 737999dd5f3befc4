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
	"fmt"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

// isFalse reports whether the value is the concrete boolean false.
func isFalse(v sql.Value) bool {
	return v.Kind() == sql.KindBoolean && !v.Boolean()
}

// isTrue reports whether the value is the concrete boolean true.
func isTrue(v sql.Value) bool {
	return v.Kind() == sql.KindBoolean && v.Boolean()
}

func checkLogicOperand(v sql.Value, op string) error {
	switch v.Kind() {
	case sql.KindBoolean, sql.KindNull, sql.KindResidual:
		return nil
	}
	return sql.ErrInvalidType.New(fmt.Sprintf("%s operand of kind %s", op, v.Kind()))
}

// evalAnd implements the three-valued conjunction: false dominates,
// null absorbs true, and a residual side survives only when the other
// side cannot decide the result alone.
func (i *Interpreter) evalAnd(ctx *sql.Context, e *expression.And, depth int) (sql.Value, error) {
	l, err := i.eval(ctx, e.Left, depth)
	if err != nil {
		return sql.NullValue, err
	}
	r, err := i.eval(ctx, e.Right, depth)
	if err != nil {
		return sql.NullValue, err
	}
	if err := checkLogicOperand(l, "AND"); err != nil {
		return sql.NullValue, err
	}
	if err := checkLogicOperand(r, "AND"); err != nil {
		return sql.NullValue, err
	}

	if isFalse(l) || isFalse(r) {
		return sql.NewBooleanValue(false), nil
	}
	if isTrue(l) && isTrue(r) {
		return sql.NewBooleanValue(true), nil
	}

	if !l.IsResidual() && !r.IsResidual() {
		// Remaining concrete combinations all involve a null.
		return sql.NullValue, nil
	}

	// TRUE is the identity of AND, so a residual side passes through.
	if l.IsResidual() && isTrue(r) {
		return l, nil
	}
	if r.IsResidual() && isTrue(l) {
		return r, nil
	}

	return sql.NewResidualValue(expression.NewAnd(
		valueToExpression(l), valueToExpression(r))), nil
}

// evalOr is the dual of evalAnd: true dominates and FALSE is the
// identity.
func (i *Interpreter) evalOr(ctx *sql.Context, e *expression.Or, depth int) (sql.Value, error) {
	l, err := i.eval(ctx, e.Left, depth)
	if err != nil {
		return sql.NullValue, err
	}
	r, err := i.eval(ctx, e.Right, depth)
	if err != nil {
		return sql.NullValue, err
	}
	if err := checkLogicOperand(l, "OR"); err != nil {
		return sql.NullValue, err
	}
	if err := checkLogicOperand(r, "OR"); err != nil {
		return sql.NullValue, err
	}

	if isTrue(l) || isTrue(r) {
		return sql.NewBooleanValue(true), nil
	}
	if isFalse(l) && isFalse(r) {
		return sql.NewBooleanValue(false), nil
	}

	if !l.IsResidual() && !r.IsResidual() {
		return sql.NullValue, nil
	}

	if l.IsResidual() && isFalse(r) {
		return l, nil
	}
	if r.IsResidual() && isFalse(l) {
		return r, nil
	}

	return sql.NewResidualValue(expression.NewOr(
		valueToExpression(l), valueToExpression(r))), nil
}

func (i *Interpreter) evalNot(ctx *sql.Context, e *expression.Not, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Child, depth)
	if err != nil {
		return sql.NullValue, err
	}

	switch v.Kind() {
	case sql.KindNull:
		return sql.NullValue, nil
	case sql.KindBoolean:
		return sql.NewBooleanValue(!v.Boolean()), nil
	case sql.KindResidual:
		return sql.NewResidualValue(expression.NewNot(valueToExpression(v))), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(fmt.Sprintf("NOT %s", v.Kind()))
}

func (i *Interpreter) evalIsNull(ctx *sql.Context, e *expression.IsNull, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Child, depth)
	if err != nil {
		return sql.NullValue, err
	}
	if v.IsResidual() {
		return sql.NewResidualValue(expression.NewIsNull(valueToExpression(v))), nil
	}
	return sql.NewBooleanValue(v.IsNull()), nil
}

func (i *Interpreter) evalIsNotNull(ctx *sql.Context, e *expression.IsNotNull, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Child, depth)
	if err != nil {
		return sql.NullValue, err
	}
	if v.IsResidual() {
		return sql.NewResidualValue(expression.NewIsNotNull(valueToExpression(v))), nil
	}
	return sql.NewBooleanValue(!v.IsNull()), nil
}
