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

// Cast converts its operand to the named target type.
type Cast struct {
	UnaryExpression
	TypeName string
}

// NewCast creates a CAST expression.
func NewCast(child sql.Expression, typeName string) *Cast {
	return &Cast{UnaryExpression{child}, typeName}
}

func (e *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", e.Child, e.TypeName)
}
