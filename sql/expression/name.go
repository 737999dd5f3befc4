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
	"strconv"
	"strings"

	"github.com/frescodb/fresco/sql"
)

// QualifiedNameReference is a possibly-qualified name. A single-part
// name may resolve as a symbol during optimization; a prefixed name
// never does and stays symbolic.
type QualifiedNameReference struct {
	Parts []string
}

// NewQualifiedNameReference creates a name reference from its parts.
func NewQualifiedNameReference(parts ...string) *QualifiedNameReference {
	return &QualifiedNameReference{Parts: parts}
}

// IsBareSymbol reports whether the name has no qualifier.
func (e *QualifiedNameReference) IsBareSymbol() bool {
	return len(e.Parts) == 1
}

// Name returns the dotted form of the reference.
func (e *QualifiedNameReference) Name() string {
	return strings.Join(e.Parts, ".")
}

func (e *QualifiedNameReference) Children() []sql.Expression { return nil }

func (e *QualifiedNameReference) String() string { return e.Name() }

// InputReference is a positional slot into the current input row.
type InputReference struct {
	Index int
}

// NewInputReference creates a reference to the given row slot.
func NewInputReference(index int) *InputReference {
	return &InputReference{Index: index}
}

func (e *InputReference) Children() []sql.Expression { return nil }

func (e *InputReference) String() string {
	return "$" + strconv.Itoa(e.Index)
}
