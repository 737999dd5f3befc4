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

// ArithmeticOp is a binary arithmetic operator.
type ArithmeticOp byte

const (
	// Add is the + operator.
	Add ArithmeticOp = iota
	// Subtract is the - operator.
	Subtract
	// Multiply is the * operator.
	Multiply
	// Divide is the / operator.
	Divide
	// Modulo is the % operator.
	Modulo
)

func (op ArithmeticOp) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	}
	return "?"
}

// Arithmetic is a binary arithmetic expression over numeric operands.
type Arithmetic struct {
	BinaryExpression
	Op ArithmeticOp
}

// NewArithmetic creates an arithmetic expression.
func NewArithmetic(left, right sql.Expression, op ArithmeticOp) *Arithmetic {
	return &Arithmetic{BinaryExpression{left, right}, op}
}

// NewPlus creates a + expression.
func NewPlus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, Add)
}

// NewMinus creates a - expression.
func NewMinus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, Subtract)
}

// NewMult creates a * expression.
func NewMult(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, Multiply)
}

// NewDiv creates a / expression.
func NewDiv(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, Divide)
}

// NewMod creates a % expression.
func NewMod(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, Modulo)
}

func (e *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// Negative is the unary minus.
type Negative struct {
	UnaryExpression
}

// NewNegative creates a unary minus expression.
func NewNegative(child sql.Expression) *Negative {
	return &Negative{UnaryExpression{child}}
}

func (e *Negative) String() string {
	return fmt.Sprintf("-%s", e.Child)
}
