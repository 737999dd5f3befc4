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

// ComparisonOp is a binary comparison operator.
type ComparisonOp byte

const (
	// Equals is the = operator.
	Equals ComparisonOp = iota
	// NotEquals is the <> operator.
	NotEquals
	// LessThan is the < operator.
	LessThan
	// LessOrEqual is the <= operator.
	LessOrEqual
	// GreaterThan is the > operator.
	GreaterThan
	// GreaterOrEqual is the >= operator.
	GreaterOrEqual
	// IsDistinctFrom is the null-tolerant inequality operator.
	IsDistinctFrom
)

func (op ComparisonOp) String() string {
	switch op {
	case Equals:
		return "="
	case NotEquals:
		return "<>"
	case LessThan:
		return "<"
	case LessOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterOrEqual:
		return ">="
	case IsDistinctFrom:
		return "IS DISTINCT FROM"
	}
	return "?"
}

// Comparison is a binary comparison expression.
type Comparison struct {
	BinaryExpression
	Op ComparisonOp
}

// NewComparison creates a comparison expression.
func NewComparison(left, right sql.Expression, op ComparisonOp) *Comparison {
	return &Comparison{BinaryExpression{left, right}, op}
}

// NewEquals creates an = expression.
func NewEquals(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, Equals)
}

// NewNotEquals creates a <> expression.
func NewNotEquals(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, NotEquals)
}

// NewLessThan creates a < expression.
func NewLessThan(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, LessThan)
}

// NewLessOrEqual creates a <= expression.
func NewLessOrEqual(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, LessOrEqual)
}

// NewGreaterThan creates a > expression.
func NewGreaterThan(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, GreaterThan)
}

// NewGreaterOrEqual creates a >= expression.
func NewGreaterOrEqual(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, GreaterOrEqual)
}

// NewIsDistinctFrom creates an IS DISTINCT FROM expression.
func NewIsDistinctFrom(left, right sql.Expression) *Comparison {
	return NewComparison(left, right, IsDistinctFrom)
}

func (e *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}
