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

// InList is the value list of an IN predicate.
type InList struct {
	Values []sql.Expression
}

// NewInList creates a value list.
func NewInList(values ...sql.Expression) *InList {
	return &InList{Values: values}
}

// Children implements the sql.Expression interface.
func (e *InList) Children() []sql.Expression { return e.Values }

// IsConstant reports whether every element of the list is a literal, in
// which case the interpreter may build a hashed membership set keyed by
// this node's identity.
func (e *InList) IsConstant() bool {
	for _, v := range e.Values {
		switch v.(type) {
		case *LongLiteral, *DoubleLiteral, *StringLiteral, *BooleanLiteral,
			*NullLiteral, *DatetimeLiteral:
		default:
			return false
		}
	}
	return true
}

func (e *InList) String() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// In is the IN membership predicate.
type In struct {
	Value sql.Expression
	List  sql.Expression
}

// NewIn creates an IN expression. The list is normally an *InList; any
// other list form is unsupported at interpretation time.
func NewIn(value, list sql.Expression) *In {
	return &In{Value: value, List: list}
}

// Children implements the sql.Expression interface.
func (e *In) Children() []sql.Expression {
	return []sql.Expression{e.Value, e.List}
}

func (e *In) String() string {
	return fmt.Sprintf("(%s IN %s)", e.Value, e.List)
}
