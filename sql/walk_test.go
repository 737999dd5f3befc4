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

package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

type visitor func(sql.Expression) sql.Visitor

func (f visitor) Visit(n sql.Expression) sql.Visitor {
	return f(n)
}

func TestWalk(t *testing.T) {
	lit1 := expression.NewLongLiteral(1)
	lit2 := expression.NewLongLiteral(2)
	col := expression.NewQualifiedNameReference("foo")
	fn := expression.NewFunctionCall("bar", lit1, lit2)
	and := expression.NewAnd(col, fn)
	e := expression.NewNot(and)

	var f visitor
	var visited []sql.Expression
	f = func(node sql.Expression) sql.Visitor {
		visited = append(visited, node)
		return f
	}

	sql.Walk(f, e)

	require.Equal(t,
		[]sql.Expression{e, and, col, nil, fn, lit1, nil, lit2, nil, nil, nil, nil},
		visited,
	)

	visited = nil
	f = func(node sql.Expression) sql.Visitor {
		visited = append(visited, node)
		if _, ok := node.(*expression.FunctionCall); ok {
			return nil
		}
		return f
	}

	sql.Walk(f, e)

	require.Equal(t,
		[]sql.Expression{e, and, col, nil, fn, nil, nil},
		visited,
	)
}

func TestInspect(t *testing.T) {
	lit := expression.NewLongLiteral(1)
	neg := expression.NewNegative(lit)

	var count int
	sql.Inspect(neg, func(e sql.Expression) bool {
		if e != nil {
			count++
		}
		return true
	})
	require.Equal(t, 2, count)
}
