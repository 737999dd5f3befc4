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

// Between checks whether a value lies in the closed range
// [Lower, Upper].
type Between struct {
	Val   sql.Expression
	Lower sql.Expression
	Upper sql.Expression
}

// NewBetween creates a BETWEEN expression.
func NewBetween(val, lower, upper sql.Expression) *Between {
	return &Between{Val: val, Lower: lower, Upper: upper}
}

// Children implements the sql.Expression interface.
func (e *Between) Children() []sql.Expression {
	return []sql.Expression{e.Val, e.Lower, e.Upper}
}

func (e *Between) String() string {
	return fmt.Sprintf("(%s BETWEEN %s AND %s)", e.Val, e.Lower, e.Upper)
}
