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

package expression

import (
	"fmt"

	"github.com/frescodb/fresco/sql"
)

// And is a logical conjunction under SQL three-valued logic.
type And struct {
	BinaryExpression
}

// NewAnd creates an AND expression.
func NewAnd(left, right sql.Expression) *And {
	return &And{BinaryExpression{left, right}}
}

func (e *And) String() string {
	return fmt.Sprintf("(%s AND %s)", e.Left, e.Right)
}

// Or is a logical disjunction under SQL three-valued logic.
type Or struct {
	BinaryExpression
}

// NewOr creates an OR expression.
func NewOr(left, right sql.Expression) *Or {
	return &Or{BinaryExpression{left, right}}
}

func (e *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", e.Left, e.Right)
}

// Not is a logical negation under SQL three-valued logic.
type Not struct {
	UnaryExpression
}

// NewNot creates a NOT expression.
func NewNot(child sql.Expression) *Not {
	return &Not{UnaryExpression{child}}
}

func (e *Not) String() string {
	return fmt.Sprintf("(NOT %s)", e.Child)
}
