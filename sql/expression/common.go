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

// Package expression holds the closed set of AST node variants the
// interpreter consumes. Nodes are immutable after construction and are
// always handled through pointers, so node identity is stable and can
// key per-tree caches.
package expression

import "github.com/frescodb/fresco/sql"

// UnaryExpression is an expression with one child.
type UnaryExpression struct {
	Child sql.Expression
}

// Children implements the sql.Expression interface.
func (e *UnaryExpression) Children() []sql.Expression {
	return []sql.Expression{e.Child}
}

// BinaryExpression is an expression with two children.
type BinaryExpression struct {
	Left  sql.Expression
	Right sql.Expression
}

// Children implements the sql.Expression interface.
func (e *BinaryExpression) Children() []sql.Expression {
	return []sql.Expression{e.Left, e.Right}
}
