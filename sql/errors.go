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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnsupportedFeature is thrown when a construct is outside what
	// the interpreter implements. It is always fatal.
	ErrUnsupportedFeature = errors.NewKind("unsupported feature: %s")

	// ErrInvalidType is thrown when an operator meets a runtime type
	// combination for which no rule exists.
	ErrInvalidType = errors.NewKind("invalid type: %v")

	// ErrFunctionNotFound is thrown when the registry has no function
	// matching a name and argument type list.
	ErrFunctionNotFound = errors.NewKind("function not found: %s")

	// ErrDivisionByZero is thrown on integer division or modulo by zero.
	ErrDivisionByZero = errors.NewKind("division by zero")

	// ErrEvaluation wraps a failure raised by a scalar function or cast.
	ErrEvaluation = errors.NewKind("expression evaluation failed: %s")

	// ErrColumnOutOfRange is thrown when an input reference points past
	// the end of the current row.
	ErrColumnOutOfRange = errors.NewKind("column index %d out of range")

	// ErrUnresolvedSymbol is thrown in interpretation mode when a name
	// reference cannot be resolved to a concrete value.
	ErrUnresolvedSymbol = errors.NewKind("unresolved symbol: %s")

	// ErrExpressionTooDeep is thrown when an expression tree exceeds the
	// configured maximum depth.
	ErrExpressionTooDeep = errors.NewKind("expression tree deeper than %d levels")
)

// IsRuntimeError reports whether err already carries one of this
// package's error kinds. Such errors propagate unchanged; anything else
// raised by a scalar implementation gets wrapped in ErrEvaluation.
func IsRuntimeError(err error) bool {
	_, ok := err.(*errors.Error)
	return ok
}
