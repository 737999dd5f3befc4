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

// IsNull is the IS NULL predicate. It never yields NULL itself.
type IsNull struct {
	UnaryExpression
}

// NewIsNull creates an IS NULL expression.
func NewIsNull(child sql.Expression) *IsNull {
	return &IsNull{UnaryExpression{child}}
}

func (e *IsNull) String() string {
	return fmt.Sprintf("(%s IS NULL)", e.Child)
}

// IsNotNull is the IS NOT NULL predicate.
type IsNotNull struct {
	UnaryExpression
}

// NewIsNotNull creates an IS NOT NULL expression.
func NewIsNotNull(child sql.Expression) *IsNotNull {
	return &IsNotNull{UnaryExpression{child}}
}

func (e *IsNotNull) String() string {
	return fmt.Sprintf("(%s IS NOT NULL)", e.Child)
}
