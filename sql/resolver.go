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

package sql

// SymbolResolver supplies compile-time bindings for bare name
// references during optimization. A binding may itself be a residual
// value, substituting one symbolic expression for another.
type SymbolResolver interface {
	// Resolve looks up a bare symbol. ok is false when the symbol has
	// no binding and must stay symbolic.
	Resolve(name string) (v Value, ok bool, err error)
}

// InputResolver supplies values for positional input references during
// interpretation. It always yields a concrete scalar or NULL; failures
// are fatal.
type InputResolver interface {
	// Input returns the value of the given slot of the current row.
	Input(index int) (Value, error)
}

// MapResolver is a SymbolResolver over a fixed set of bindings.
type MapResolver map[string]Value

// Resolve implements the SymbolResolver interface.
func (m MapResolver) Resolve(name string) (Value, bool, error) {
	v, ok := m[name]
	return v, ok, nil
}

// Row is a tuple of scalar values. It implements InputResolver, making
// it the canonical row source for interpretation.
type Row []Value

// NewRow creates a row from the given values.
func NewRow(values ...Value) Row {
	row := make(Row, len(values))
	copy(row, values)
	return row
}

// Input implements the InputResolver interface.
func (r Row) Input(index int) (Value, error) {
	if index < 0 || index >= len(r) {
		return NullValue, ErrColumnOutOfRange.New(index)
	}
	return r[index], nil
}
