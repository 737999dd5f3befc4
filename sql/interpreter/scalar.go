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
	"regexp"
	"strings"

	"github.com/frescodb/fresco/internal/casts"
	"github.com/frescodb/fresco/internal/dates"
	"github.com/frescodb/fresco/internal/like"
	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

// evalFunctionCall is strict in nulls: every registered scalar sees
// only concrete non-null arguments.
func (i *Interpreter) evalFunctionCall(ctx *sql.Context, e *expression.FunctionCall, depth int) (sql.Value, error) {
	if e.Window {
		return sql.NullValue, sql.ErrUnsupportedFeature.New("window function call")
	}
	if e.Distinct {
		return sql.NullValue, sql.ErrUnsupportedFeature.New("DISTINCT function call")
	}

	args := make([]sql.Value, len(e.Args))
	anyNull, anyResidual := false, false
	for n, arg := range e.Args {
		v, err := i.eval(ctx, arg, depth)
		if err != nil {
			return sql.NullValue, err
		}
		args[n] = v
		anyNull = anyNull || v.IsNull()
		anyResidual = anyResidual || v.IsResidual()
	}

	if anyNull {
		return sql.NullValue, nil
	}
	if anyResidual {
		return i.rebuildCall(e, args), nil
	}

	argTypes := make([]sql.Type, len(args))
	for n, v := range args {
		t, err := v.Type()
		if err != nil {
			return sql.NullValue, err
		}
		argTypes[n] = t
	}

	fn, err := i.registry.Function(e.Name, argTypes)
	if err != nil {
		return sql.NullValue, err
	}

	// Results of non-deterministic functions differ between planning
	// and execution, so the optimizer leaves the call in place.
	if i.optimizing() && !fn.Deterministic {
		ctx.Logger().Debugf("not folding non-deterministic function %s", e.Name)
		return i.rebuildCall(e, args), nil
	}

	// Overload resolution may have widened a BIGINT argument into a
	// DOUBLE formal; the value must follow.
	for n, formal := range fn.ArgTypes {
		if formal == sql.Double && argTypes[n] == sql.Bigint {
			args[n] = sql.NewDoubleValue(float64(args[n].Long()))
		}
	}

	var sess sql.Session
	if fn.BindSession {
		sess = ctx.Session
	}

	result, err := fn.Fn(sess, args)
	if err != nil {
		if sql.IsRuntimeError(err) {
			return sql.NullValue, err
		}
		return sql.NullValue, sql.ErrEvaluation.Wrap(err, err.Error())
	}
	return result, nil
}

func (i *Interpreter) rebuildCall(e *expression.FunctionCall, args []sql.Value) sql.Value {
	return sql.NewResidualValue(&expression.FunctionCall{
		Name:     e.Name,
		Args:     residualize(args...),
		Distinct: e.Distinct,
		Window:   e.Window,
	})
}

func (i *Interpreter) evalLike(ctx *sql.Context, e *expression.Like, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Value, depth)
	if err != nil {
		return sql.NullValue, err
	}
	p, err := i.eval(ctx, e.Pattern, depth)
	if err != nil {
		return sql.NullValue, err
	}

	var esc sql.Value
	if e.Escape != nil {
		esc, err = i.eval(ctx, e.Escape, depth)
		if err != nil {
			return sql.NullValue, err
		}
	}

	if v.IsNull() || p.IsNull() || (e.Escape != nil && esc.IsNull()) {
		return sql.NullValue, nil
	}

	patternKnown := p.Kind() == sql.KindVarchar &&
		(e.Escape == nil || esc.Kind() == sql.KindVarchar)

	if !patternKnown {
		if p.IsResidual() || (e.Escape != nil && esc.IsResidual()) {
			return i.rebuildLike(e, v, p, esc), nil
		}
		return sql.NullValue, sql.ErrInvalidType.New(
			fmt.Sprintf("LIKE pattern of kind %s", p.Kind()))
	}

	pattern := string(p.Varchar())

	// A wildcard-free pattern without an escape clause is an equality.
	if e.Escape == nil && !like.HasWildcards(pattern) {
		if v.IsResidual() {
			return sql.NewResidualValue(expression.NewEquals(
				valueToExpression(v), expression.NewBytesLiteral(p.Varchar()))), nil
		}
		if v.Kind() != sql.KindVarchar {
			return sql.NullValue, sql.ErrInvalidType.New(
				fmt.Sprintf("%s LIKE", v.Kind()))
		}
		return sql.NewBooleanValue(bytes.Equal(v.Varchar(), p.Varchar())), nil
	}

	if v.IsResidual() {
		return i.rebuildLike(e, v, p, esc), nil
	}
	if v.Kind() != sql.KindVarchar {
		return sql.NullValue, sql.ErrInvalidType.New(fmt.Sprintf("%s LIKE", v.Kind()))
	}

	re, err := i.likePattern(e, pattern, esc)
	if err != nil {
		return sql.NullValue, err
	}
	return sql.NewBooleanValue(re.Match(v.Varchar())), nil
}

// likePattern compiles the matcher, caching it on the LIKE node when
// pattern and escape are literal so repeated rows reuse it.
func (i *Interpreter) likePattern(e *expression.Like, pattern string, esc sql.Value) (*regexp.Regexp, error) {
	escape := ""
	if e.Escape != nil {
		escape = string(esc.Varchar())
	}

	_, literalPattern := e.Pattern.(*expression.StringLiteral)
	if literalPattern && e.Escape != nil {
		_, literalPattern = e.Escape.(*expression.StringLiteral)
	}

	if !literalPattern {
		re, err := like.Compile(pattern, escape)
		if err != nil {
			return nil, sql.ErrEvaluation.Wrap(err, err.Error())
		}
		return re, nil
	}

	if re, ok := i.likeCache[e]; ok {
		return re, nil
	}
	re, err := like.Compile(pattern, escape)
	if err != nil {
		return nil, sql.ErrEvaluation.Wrap(err, err.Error())
	}
	i.likeCache[e] = re
	return re, nil
}

func (i *Interpreter) rebuildLike(e *expression.Like, v, p, esc sql.Value) sql.Value {
	if e.Escape == nil {
		return sql.NewResidualValue(expression.NewLike(
			valueToExpression(v), valueToExpression(p)))
	}
	return sql.NewResidualValue(expression.NewLikeWithEscape(
		valueToExpression(v), valueToExpression(p), valueToExpression(esc)))
}

func (i *Interpreter) evalExtract(ctx *sql.Context, e *expression.Extract, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Child, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if v.IsNull() {
		return sql.NullValue, nil
	}
	if v.IsResidual() {
		return sql.NewResidualValue(
			expression.NewExtract(e.Field, valueToExpression(v))), nil
	}
	if v.Kind() != sql.KindLong {
		return sql.NullValue, sql.ErrInvalidType.New(
			fmt.Sprintf("EXTRACT from %s", v.Kind()))
	}

	// The engine models every datetime in UTC, so the zone offset
	// fields are constant.
	switch strings.ToUpper(e.Field) {
	case "TIMEZONE_HOUR", "TIMEZONE_MINUTE":
		return sql.NewLongValue(0), nil
	}

	field, ok := dates.ParseField(e.Field)
	if !ok {
		return sql.NullValue, sql.ErrUnsupportedFeature.New("EXTRACT field " + e.Field)
	}
	return sql.NewLongValue(dates.Extract(field, v.Long())), nil
}

func (i *Interpreter) evalCast(ctx *sql.Context, e *expression.Cast, depth int) (sql.Value, error) {
	if !casts.Supported(e.TypeName) {
		return sql.NullValue, sql.ErrUnsupportedFeature.New("CAST to " + e.TypeName)
	}

	v, err := i.eval(ctx, e.Child, depth)
	if err != nil {
		return sql.NullValue, err
	}

	if v.IsNull() {
		return sql.NullValue, nil
	}
	if v.IsResidual() {
		return sql.NewResidualValue(
			expression.NewCast(valueToExpression(v), e.TypeName)), nil
	}
	return casts.To(e.TypeName, v)
}
