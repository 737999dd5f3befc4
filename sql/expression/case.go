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
	"bytes"

	"github.com/frescodb/fresco/sql"
)

// CaseBranch is a single WHEN ... THEN ... arm.
type CaseBranch struct {
	Cond  sql.Expression
	Value sql.Expression
}

// Case covers both CASE forms: with Expr set it is the simple form
// comparing the selector to each WHEN operand, with Expr nil it is the
// searched form evaluating each WHEN operand as a predicate.
type Case struct {
	Expr     sql.Expression
	Branches []CaseBranch
	Else     sql.Expression
}

// NewCase creates a CASE expression. expr and elseExpr may be nil.
func NewCase(expr sql.Expression, branches []CaseBranch, elseExpr sql.Expression) *Case {
	return &Case{Expr: expr, Branches: branches, Else: elseExpr}
}

// Children implements the sql.Expression interface.
func (e *Case) Children() []sql.Expression {
	var children []sql.Expression
	if e.Expr != nil {
		children = append(children, e.Expr)
	}
	for _, b := range e.Branches {
		children = append(children, b.Cond, b.Value)
	}
	if e.Else != nil {
		children = append(children, e.Else)
	}
	return children
}

func (e *Case) String() string {
	var buf bytes.Buffer
	buf.WriteString("CASE")
	if e.Expr != nil {
		buf.WriteString(" ")
		buf.WriteString(e.Expr.String())
	}
	for _, b := range e.Branches {
		buf.WriteString(" WHEN ")
		buf.WriteString(b.Cond.String())
		buf.WriteString(" THEN ")
		buf.WriteString(b.Value.String())
	}
	if e.Else != nil {
		buf.WriteString(" ELSE ")
		buf.WriteString(e.Else.String())
	}
	buf.WriteString(" END")
	return buf.String()
}
