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
	"strings"

	"github.com/frescodb/fresco/sql"
)

// Coalesce returns its first non-null operand.
type Coalesce struct {
	Args []sql.Expression
}

// NewCoalesce creates a COALESCE expression.
func NewCoalesce(args ...sql.Expression) *Coalesce {
	return &Coalesce{Args: args}
}

// Children implements the sql.Expression interface.
func (e *Coalesce) Children() []sql.Expression { return e.Args }

func (e *Coalesce) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return "COALESCE(" + strings.Join(parts, ", ") + ")"
}

// NullIf yields NULL when both operands are equal, and the first
// operand otherwise.
type NullIf struct {
	BinaryExpression
}

// NewNullIf creates a NULLIF expression.
func NewNullIf(left, right sql.Expression) *NullIf {
	return &NullIf{BinaryExpression{left, right}}
}

func (e *NullIf) String() string {
	return fmt.Sprintf("NULLIF(%s, %s)", e.Left, e.Right)
}

// If is the IF(cond, then, else) conditional. Else may be nil, in
// which case a false or null condition yields NULL.
type If struct {
	Cond sql.Expression
	Then sql.Expression
	Else sql.Expression
}

// NewIf creates an IF expression. elseExpr may be nil.
func NewIf(cond, then, elseExpr sql.Expression) *If {
	return &If{Cond: cond, Then: then, Else: elseExpr}
}

// Children implements the sql.Expression interface.
func (e *If) Children() []sql.Expression {
	children := []sql.Expression{e.Cond, e.Then}
	if e.Else != nil {
		children = append(children, e.Else)
	}
	return children
}

func (e *If) String() string {
	if e.Else == nil {
		return fmt.Sprintf("IF(%s, %s)", e.Cond, e.Then)
	}
	return fmt.Sprintf("IF(%s, %s, %s)", e.Cond, e.Then, e.Else)
}
