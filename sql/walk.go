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

// Visitor visits expression nodes in the tree.
type Visitor interface {
	// Visit method is invoked for each expression encountered by Walk.
	// If the result Visitor is not nil, Walk visits each of the children
	// of the expression with that visitor, followed by a call of
	// Visit(nil) to the returned visitor.
	Visit(expression Expression) Visitor
}

// Walk traverses the expression tree in depth-first order. It starts by
// calling v.Visit(expression); expression must not be nil. If the
// visitor returned by v.Visit(expression) is not nil, Walk is invoked
// recursively with the returned visitor for each children of the
// expression, followed by a call of v.Visit(nil) to the returned
// visitor.
func Walk(v Visitor, expression Expression) {
	if v = v.Visit(expression); v == nil {
		return
	}

	for _, child := range expression.Children() {
		Walk(v, child)
	}

	v.Visit(nil)
}

type inspector func(Expression) bool

func (f inspector) Visit(expression Expression) Visitor {
	if f(expression) {
		return f
	}
	return nil
}

// Inspect traverses the expression in depth-first order: It starts by
// calling f(expression); expression must not be nil. If f returns true,
// Inspect invokes f recursively for each of the children of expression,
// followed by a call of f(nil).
func Inspect(expression Expression, f func(Expression) bool) {
	Walk(inspector(f), expression)
}
