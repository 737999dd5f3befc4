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

// Extract pulls a datetime field out of a datetime scalar.
type Extract struct {
	Field string
	UnaryExpression
}

// NewExtract creates an EXTRACT expression.
func NewExtract(field string, child sql.Expression) *Extract {
	return &Extract{Field: field, UnaryExpression: UnaryExpression{child}}
}

func (e *Extract) String() string {
	return fmt.Sprintf("EXTRACT(%s FROM %s)", e.Field, e.Child)
}
