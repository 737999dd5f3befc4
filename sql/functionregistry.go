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

import (
	"fmt"
	"strings"
	"sync"
)

// ScalarFunction is the invocation handle of a registered function. The
// session argument is non-nil only for descriptors with BindSession.
type ScalarFunction func(sess Session, args []Value) (Value, error)

// FunctionDescriptor describes one overload of a scalar function as
// resolved from the metadata registry.
type FunctionDescriptor struct {
	// Name is the lowercase function name.
	Name string
	// ArgTypes are the formal parameter types, session excluded.
	ArgTypes []Type
	// Deterministic is false for functions whose result depends on
	// anything beyond the arguments and the bound session, e.g. random
	// number sources. The optimizer never folds those.
	Deterministic bool
	// BindSession asks the interpreter to pass the current session as
	// the first parameter of Fn.
	BindSession bool
	// Fn is the implementation.
	Fn ScalarFunction
}

func (d *FunctionDescriptor) signature() string {
	names := make([]string, len(d.ArgTypes))
	for i, t := range d.ArgTypes {
		names[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", d.Name, strings.Join(names, ", "))
}

// FunctionRegistry resolves scalar function descriptors by name and
// argument types. It is safe for concurrent readers by contract with
// the enclosing engine; registration happens before any evaluation.
type FunctionRegistry struct {
	mu  sync.RWMutex
	fns map[string][]*FunctionDescriptor
}

// NewFunctionRegistry creates an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{fns: map[string][]*FunctionDescriptor{}}
}

// Register adds a descriptor, rejecting duplicate signatures.
func (r *FunctionRegistry) Register(d *FunctionDescriptor) error {
	name := strings.ToLower(d.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.fns[name] {
		if typesEqual(reg.ArgTypes, d.ArgTypes) {
			return fmt.Errorf("function %s already registered", d.signature())
		}
	}

	r.fns[name] = append(r.fns[name], d)
	return nil
}

// MustRegister adds descriptors and panics on duplicates. Meant for
// built-in registration at init time.
func (r *FunctionRegistry) MustRegister(ds ...*FunctionDescriptor) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Function resolves the descriptor for a name and concrete argument
// types. Resolution prefers an exact signature; failing that, the first
// registered overload reachable by widening BIGINT arguments to DOUBLE
// formals.
func (r *FunctionRegistry) Function(name string, argTypes []Type) (*FunctionDescriptor, error) {
	name = strings.ToLower(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	overloads := r.fns[name]
	if len(overloads) == 0 {
		return nil, ErrFunctionNotFound.New(name)
	}

	for _, d := range overloads {
		if typesEqual(d.ArgTypes, argTypes) {
			return d, nil
		}
	}

	for _, d := range overloads {
		if typesWiden(d.ArgTypes, argTypes) {
			return d, nil
		}
	}

	return nil, ErrFunctionNotFound.New(
		(&FunctionDescriptor{Name: name, ArgTypes: argTypes}).signature())
}

func typesEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func typesWiden(formals, actuals []Type) bool {
	if len(formals) != len(actuals) {
		return false
	}
	for i := range formals {
		if formals[i] == actuals[i] {
			continue
		}
		if formals[i] == Double && actuals[i] == Bigint {
			continue
		}
		return false
	}
	return true
}
