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

// Like is the LIKE pattern match predicate. Escape may be nil.
type Like struct {
	Value   sql.Expression
	Pattern sql.Expression
	Escape  sql.Expression
}

// NewLike creates a LIKE expression without an escape clause.
func NewLike(value, pattern sql.Expression) *Like {
	return &Like{Value: value, Pattern: pattern}
}

// NewLikeWithEscape creates a LIKE ... ESCAPE expression.
func NewLikeWithEscape(value, pattern, escape sql.Expression) *Like {
	return &Like{Value: value, Pattern: pattern, Escape: escape}
}

// Children implements the sql.Expression interface.
func (e *Like) Children() []sql.Expression {
	children := []sql.Expression{e.Value, e.Pattern}
	if e.Escape != nil {
		children = append(children, e.Escape)
	}
	return children
}

func (e *Like) String() string {
	if e.Escape == nil {
		return fmt.Sprintf("(%s LIKE %s)", e.Value, e.Pattern)
	}
	return fmt.Sprintf("(%s LIKE %s ESCAPE %s)", e.Value, e.Pattern, e.Escape)
}
