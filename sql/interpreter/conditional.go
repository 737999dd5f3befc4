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

// evalCase handles both CASE forms. Any residual selector, WHEN operand
// or selected result returns the node unreduced; partial reduction of
// individual arms is left to future work.
func (i *Interpreter) evalCase(ctx *sql.Context, e *expression.Case, depth int) (sql.Value, error) {
	var selector sql.Value
	if e.Expr != nil {
		var err error
		selector, err = i.eval(ctx, e.Expr, depth)
		if err != nil {
			return sql.NullValue, err
		}
		if selector.IsResidual() {
			return sql.NewResidualValue(e), nil
		}
	}

	for _, branch := range e.Branches {
		cond, err := i.eval(ctx, branch.Cond, depth)
		if err != nil {
			return sql.NullValue, err
		}
		if cond.IsResidual() {
			return sql.NewResidualValue(e), nil
		}

		var hit bool
		if e.Expr == nil {
			switch cond.Kind() {
			case sql.KindBoolean:
				hit = cond.Boolean()
			case sql.KindNull:
			default:
				return sql.NullValue, sql.ErrInvalidType.New(
					fmt.Sprintf("CASE condition of kind %s", cond.Kind()))
			}
		} else if !selector.IsNull() && !cond.IsNull() {
			hit, err = selector.Equals(cond)
			if err != nil {
				return sql.NullValue, err
			}
		}

		if hit {
			return i.evalCaseResult(ctx, e, branch.Value, depth)
		}
	}

	if e.Else != nil {
		return i.evalCaseResult(ctx, e, e.Else, depth)
	}
	return sql.NullValue, nil
}

func (i *Interpreter) evalCaseResult(ctx *sql.Context, e *expression.Case, result sql.Expression, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, result, depth)
	if err != nil {
		return sql.NullValue, err
	}
	if v.IsResidual() {
		return sql.NewResidualValue(e), nil
	}
	return v, nil
}

// evalCoalesce picks the first non-null operand without touching the
// ones after it. A residual seen before any definite non-null keeps
// the whole node symbolic.
func (i *Interpreter) evalCoalesce(ctx *sql.Context, e *expression.Coalesce, depth int) (sql.Value, error) {
	for _, arg := range e.Args {
		v, err := i.eval(ctx, arg, depth)
		if err != nil {
			return sql.NullValue, err
		}
		if v.IsResidual() {
			return sql.NewResidualValue(e), nil
		}
		if !v.IsNull() {
			return v, nil
		}
	}
	return sql.NullValue, nil
}

func (i *Interpreter) evalNullIf(ctx *sql.Context, e *expression.NullIf, depth int) (sql.Value, error) {
	a, err := i.eval(ctx, e.Left, depth)
	if err != nil {
		return sql.NullValue, err
	}
	b, err := i.eval(ctx, e.Right, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if a.IsResidual() || b.IsResidual() {
		return sql.NewResidualValue(expression.NewNullIf(
			valueToExpression(a), valueToExpression(b))), nil
	}

	if b.IsNull() {
		return a, nil
	}
	if a.IsNull() {
		return sql.NullValue, nil
	}

	eq, err := a.Equals(b)
	if err != nil {
		return sql.NullValue, err
	}
	if eq {
		return sql.NullValue, nil
	}
	return a, nil
}

func (i *Interpreter) evalIf(ctx *sql.Context, e *expression.If, depth int) (sql.Value, error) {
	cond, err := i.eval(ctx, e.Cond, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if cond.IsResidual() {
		var elseExpr sql.Expression
		if e.Else != nil {
			elseExpr = i.optimizeBranch(ctx, e.Else, depth)
		}
		return sql.NewResidualValue(expression.NewIf(
			valueToExpression(cond),
			i.optimizeBranch(ctx, e.Then, depth),
			elseExpr,
		)), nil
	}

	var taken bool
	switch cond.Kind() {
	case sql.KindBoolean:
		taken = cond.Boolean()
	case sql.KindNull:
	default:
		return sql.NullValue, sql.ErrInvalidType.New(
			fmt.Sprintf("IF condition of kind %s", cond.Kind()))
	}

	if taken {
		return i.eval(ctx, e.Then, depth)
	}
	if e.Else != nil {
		return i.eval(ctx, e.Else, depth)
	}
	return sql.NullValue, nil
}

// optimizeBranch reduces an untaken IF branch as far as it will go.
// This is the single place an evaluation failure is swallowed: a branch
// that fails to optimize is kept as its original subtree and deferred
// to runtime.
func (i *Interpreter) optimizeBranch(ctx *sql.Context, e sql.Expression, depth int) sql.Expression {
	v, err := i.eval(ctx, e, depth)
	if err != nil {
		return e
	}
	return valueToExpression(v)
}
