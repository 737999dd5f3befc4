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
	"math"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

// valueToExpression is the inverse of evaluation: it turns a scalar
// back into a literal node so a residual parent can embed it. Residual
// values pass through unchanged. Doubles without a literal spelling map
// to the nan()/infinity() function calls.
func valueToExpression(v sql.Value) sql.Expression {
	switch v.Kind() {
	case sql.KindNull:
		return expression.NewNullLiteral()
	case sql.KindLong:
		return expression.NewLongLiteral(v.Long())
	case sql.KindDouble:
		f := v.Double()
		switch {
		case math.IsNaN(f):
			return expression.NewFunctionCall("nan")
		case math.IsInf(f, 1):
			return expression.NewFunctionCall("infinity")
		case math.IsInf(f, -1):
			return expression.NewNegative(expression.NewFunctionCall("infinity"))
		}
		return expression.NewDoubleLiteral(f)
	case sql.KindVarchar:
		return expression.NewBytesLiteral(v.Varchar())
	case sql.KindBoolean:
		return expression.NewBooleanLiteral(v.Boolean())
	case sql.KindResidual:
		return v.Residual()
	}
	panic(fmt.Sprintf("interpreter: no literal form for %s value", v.Kind()))
}

// residualize re-literalizes a list of reduced child values for
// embedding into a rebuilt node.
func residualize(vs ...sql.Value) []sql.Expression {
	out := make([]sql.Expression, len(vs))
	for i, v := range vs {
		out[i] = valueToExpression(v)
	}
	return out
}
