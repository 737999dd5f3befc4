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
	"strings"

	"github.com/frescodb/fresco/sql"
)

// FunctionCall invokes a scalar function from the registry. Window and
// Distinct calls are carried through from the analyzer but are not
// evaluable by the interpreter.
type FunctionCall struct {
	Name     string
	Args     []sql.Expression
	Distinct bool
	Window   bool
}

// NewFunctionCall creates a plain scalar function call.
func NewFunctionCall(name string, args ...sql.Expression) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}

// Children implements the sql.Expression interface.
func (e *FunctionCall) Children() []sql.Expression { return e.Args }

func (e *FunctionCall) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	distinct := ""
	if e.Distinct {
		distinct = "DISTINCT "
	}
	return e.Name + "(" + distinct + strings.Join(parts, ", ") + ")"
}
