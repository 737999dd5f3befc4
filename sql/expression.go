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

import "fmt"

// Expression is a node of a typed SQL expression tree produced by the
// analyzer. Nodes are immutable once constructed; the concrete variants
// live in the expression package and form a closed set. All nodes are
// pointer types, so reference identity of a node is stable and may be
// used as a cache key for the lifetime of the tree.
type Expression interface {
	fmt.Stringer
	// Children returns the immediate sub-expressions of this node.
	Children() []Expression
}
