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

// Package interpreter walks typed expression trees and reduces them to
// scalar values. In interpretation mode every evaluation yields a
// concrete scalar or fails; in optimization mode subtrees that depend
// on unbound symbols survive as residual expressions with everything
// statically determinable folded to literals around them.
package interpreter

import (
	"regexp"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

// Mode selects between evaluation against live input tuples and
// compile-time constant folding.
type Mode byte

const (
	// Interpretation evaluates against an input row and always yields a
	// concrete scalar.
	Interpretation Mode = iota
	// Optimization folds against symbol bindings and may yield a
	// residual expression.
	Optimization
)

// Interpreter evaluates expressions over a fixed AST. It owns two
// caches keyed by node identity, valid only for its own lifetime and
// tree; it is not safe for concurrent use.
type Interpreter struct {
	mode     Mode
	symbols  sql.SymbolResolver
	inputs   sql.InputResolver
	registry *sql.FunctionRegistry

	likeCache map[*expression.Like]*regexp.Regexp
	inCache   map[*expression.InList]*inSet
}

// NewInterpreter creates an interpretation-mode evaluator reading input
// references from the given resolver. A sql.Row is the usual resolver.
func NewInterpreter(inputs sql.InputResolver, registry *sql.FunctionRegistry) *Interpreter {
	return &Interpreter{
		mode:      Interpretation,
		inputs:    inputs,
		registry:  registry,
		likeCache: map[*expression.Like]*regexp.Regexp{},
		inCache:   map[*expression.InList]*inSet{},
	}
}

// NewOptimizer creates an optimization-mode evaluator resolving bare
// symbols through the given resolver, which may be nil to keep every
// symbol free.
func NewOptimizer(symbols sql.SymbolResolver, registry *sql.FunctionRegistry) *Interpreter {
	return &Interpreter{
		mode:      Optimization,
		symbols:   symbols,
		registry:  registry,
		likeCache: map[*expression.Like]*regexp.Regexp{},
		inCache:   map[*expression.InList]*inSet{},
	}
}

// BindRow points the evaluator at a new input row. The caches survive,
// so driving many rows through one fixed AST reuses compiled LIKE
// patterns and IN sets.
func (i *Interpreter) BindRow(row sql.Row) {
	i.inputs = row
}

// Evaluate reduces the expression. In interpretation mode the result is
// a concrete scalar or NULL; in optimization mode it may be a residual
// wrapping a semantically equivalent, maximally folded subtree.
func (i *Interpreter) Evaluate(ctx *sql.Context, e sql.Expression) (sql.Value, error) {
	span, ctx := ctx.Span("interpreter.Evaluate")
	defer span.Finish()

	v, err := i.eval(ctx, e, 0)
	if err != nil {
		return sql.NullValue, err
	}

	if i.mode == Interpretation && v.IsResidual() {
		return sql.NullValue, sql.ErrInvalidType.New("residual result in interpretation mode")
	}
	return v, nil
}

func (i *Interpreter) optimizing() bool {
	return i.mode == Optimization
}

func (i *Interpreter) maxDepth(ctx *sql.Context) int {
	if d := ctx.Config().MaxExpressionDepth; d > 0 {
		return d
	}
	return sql.DefaultMaxExpressionDepth
}

// eval is the single recursive descent implementing the operator
// semantics. depth tracks recursion against the configured guard.
func (i *Interpreter) eval(ctx *sql.Context, e sql.Expression, depth int) (sql.Value, error) {
	if depth > i.maxDepth(ctx) {
		return sql.NullValue, sql.ErrExpressionTooDeep.New(i.maxDepth(ctx))
	}
	depth++

	switch e := e.(type) {
	case *expression.LongLiteral:
		return sql.NewLongValue(e.Value), nil
	case *expression.DoubleLiteral:
		return sql.NewDoubleValue(e.Value), nil
	case *expression.StringLiteral:
		return sql.NewVarcharValue(e.Value), nil
	case *expression.BooleanLiteral:
		return sql.NewBooleanValue(e.Value), nil
	case *expression.NullLiteral:
		return sql.NullValue, nil
	case *expression.DatetimeLiteral:
		return sql.NewLongValue(e.Seconds), nil
	case *expression.IntervalLiteral:
		if e.YearToMonth {
			return sql.NullValue, sql.ErrUnsupportedFeature.New("year-to-month interval")
		}
		return sql.NewLongValue(e.Seconds), nil
	case *expression.CurrentTime:
		return i.evalCurrentTime(ctx, e)
	case *expression.InputReference:
		return i.evalInputReference(e)
	case *expression.QualifiedNameReference:
		return i.evalNameReference(e)
	case *expression.Negative:
		return i.evalNegative(ctx, e, depth)
	case *expression.Arithmetic:
		return i.evalArithmetic(ctx, e, depth)
	case *expression.Comparison:
		return i.evalComparison(ctx, e, depth)
	case *expression.Between:
		return i.evalBetween(ctx, e, depth)
	case *expression.And:
		return i.evalAnd(ctx, e, depth)
	case *expression.Or:
		return i.evalOr(ctx, e, depth)
	case *expression.Not:
		return i.evalNot(ctx, e, depth)
	case *expression.IsNull:
		return i.evalIsNull(ctx, e, depth)
	case *expression.IsNotNull:
		return i.evalIsNotNull(ctx, e, depth)
	case *expression.In:
		return i.evalIn(ctx, e, depth)
	case *expression.Coalesce:
		return i.evalCoalesce(ctx, e, depth)
	case *expression.NullIf:
		return i.evalNullIf(ctx, e, depth)
	case *expression.If:
		return i.evalIf(ctx, e, depth)
	case *expression.Case:
		return i.evalCase(ctx, e, depth)
	case *expression.FunctionCall:
		return i.evalFunctionCall(ctx, e, depth)
	case *expression.Like:
		return i.evalLike(ctx, e, depth)
	case *expression.Extract:
		return i.evalExtract(ctx, e, depth)
	case *expression.Cast:
		return i.evalCast(ctx, e, depth)
	}

	return sql.NullValue, sql.ErrUnsupportedFeature.New(e.String())
}

func (i *Interpreter) evalCurrentTime(ctx *sql.Context, e *expression.CurrentTime) (sql.Value, error) {
	if e.Unit != expression.UnitTimestamp || e.Precision != 0 {
		return sql.NullValue, sql.ErrUnsupportedFeature.New(e.String())
	}
	return sql.NewLongValue(ctx.CurrentTimestamp().Unix()), nil
}

func (i *Interpreter) evalInputReference(e *expression.InputReference) (sql.Value, error) {
	if i.inputs != nil {
		return i.inputs.Input(e.Index)
	}
	if i.optimizing() {
		return sql.NewResidualValue(e), nil
	}
	return sql.NullValue, sql.ErrUnresolvedSymbol.New(e.String())
}

func (i *Interpreter) evalNameReference(e *expression.QualifiedNameReference) (sql.Value, error) {
	if !i.optimizing() {
		return sql.NullValue, sql.ErrUnresolvedSymbol.New(e.Name())
	}

	// A prefixed name is not a symbol; it stays symbolic untouched.
	if !e.IsBareSymbol() || i.symbols == nil {
		return sql.NewResidualValue(e), nil
	}

	v, ok, err := i.symbols.Resolve(e.Name())
	if err != nil {
		return sql.NullValue, err
	}
	if !ok {
		return sql.NewResidualValue(e), nil
	}
	return v, nil
}
