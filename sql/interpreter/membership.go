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

package interpreter

import (
	"github.com/mitchellh/hashstructure"

	"github.com/frescodb/fresco/sql"
	"github.com/frescodb/fresco/sql/expression"
)

// inSet is the hashed membership set built for a constant IN list. The
// unusable sentinel marks lists with at least one non-literal element,
// so repeated encounters skip the constancy probe.
type inSet struct {
	unusable bool
	hasNull  bool
	values   map[uint64][]sql.Value
}

// hashValue hashes a concrete non-null scalar. String payloads hash by
// content, so equal byte slices collide into the same bucket.
func hashValue(v sql.Value) (uint64, error) {
	var key struct {
		Kind byte
		Long int64
		Dbl  float64
		Bool bool
		Str  string
	}

	key.Kind = byte(v.Kind())
	switch v.Kind() {
	case sql.KindLong:
		key.Long = v.Long()
	case sql.KindDouble:
		key.Dbl = v.Double()
	case sql.KindBoolean:
		key.Bool = v.Boolean()
	case sql.KindVarchar:
		key.Str = string(v.Varchar())
	}

	return hashstructure.Hash(key, nil)
}

func (s *inSet) add(v sql.Value) error {
	if v.IsNull() {
		s.hasNull = true
		return nil
	}
	h, err := hashValue(v)
	if err != nil {
		return err
	}
	s.values[h] = append(s.values[h], v)
	return nil
}

// contains probes for v, then for its numeric widening twin so that 5
// finds 5.0 and vice versa.
func (s *inSet) contains(v sql.Value) (bool, error) {
	probes := []sql.Value{v}
	if v.Kind() == sql.KindLong {
		probes = append(probes, sql.NewDoubleValue(float64(v.Long())))
	}
	if v.Kind() == sql.KindDouble && v.Double() == float64(int64(v.Double())) {
		probes = append(probes, sql.NewLongValue(int64(v.Double())))
	}

	for _, probe := range probes {
		h, err := hashValue(probe)
		if err != nil {
			return false, err
		}
		for _, member := range s.values[h] {
			eq, err := member.Equals(v)
			if err != nil {
				continue
			}
			if eq {
				return true, nil
			}
		}
	}
	return false, nil
}

// constantSet returns the membership set for the list, building and
// caching it on first encounter. The cache key is the node's identity:
// a syntactically equal but distinct list gets its own set.
func (i *Interpreter) constantSet(ctx *sql.Context, list *expression.InList, depth int) (*inSet, error) {
	if s, ok := i.inCache[list]; ok {
		return s, nil
	}

	s := &inSet{values: map[uint64][]sql.Value{}}
	if !list.IsConstant() {
		s.unusable = true
		i.inCache[list] = s
		return s, nil
	}

	for _, elem := range list.Values {
		v, err := i.eval(ctx, elem, depth)
		if err != nil {
			return nil, err
		}
		if err := s.add(v); err != nil {
			return nil, err
		}
	}

	i.inCache[list] = s
	return s, nil
}

func (i *Interpreter) evalIn(ctx *sql.Context, e *expression.In, depth int) (sql.Value, error) {
	v, err := i.eval(ctx, e.Value, depth)
	if err != nil {
		return sql.NullValue, err
	}
	if v.IsNull() {
		return sql.NullValue, nil
	}

	list, ok := e.List.(*expression.InList)
	if !ok {
		if i.optimizing() {
			return sql.NewResidualValue(expression.NewIn(valueToExpression(v), e.List)), nil
		}
		return sql.NullValue, sql.ErrUnsupportedFeature.New("IN over a non-list value set")
	}

	if !v.IsResidual() {
		set, err := i.constantSet(ctx, list, depth)
		if err != nil {
			return sql.NullValue, err
		}
		if !set.unusable {
			found, err := set.contains(v)
			if err != nil {
				return sql.NullValue, err
			}
			switch {
			case found:
				return sql.NewBooleanValue(true), nil
			case set.hasNull:
				return sql.NullValue, nil
			}
			return sql.NewBooleanValue(false), nil
		}
	}

	// General path. All elements are evaluated even after a match, so
	// the rebuilt residual list keeps a stable shape.
	var (
		matched    bool
		sawNull    bool
		unresolved = v.IsResidual()
		reduced    = make([]sql.Expression, 0, len(list.Values))
	)

	for _, elem := range list.Values {
		ev, err := i.eval(ctx, elem, depth)
		if err != nil {
			return sql.NullValue, err
		}
		reduced = append(reduced, valueToExpression(ev))

		switch {
		case ev.IsNull():
			sawNull = true
		case ev.IsResidual():
			unresolved = true
		case !v.IsResidual():
			eq, err := v.Equals(ev)
			if err != nil {
				return sql.NullValue, err
			}
			if eq {
				matched = true
			}
		}
	}

	switch {
	case matched:
		return sql.NewBooleanValue(true), nil
	case unresolved:
		return sql.NewResidualValue(expression.NewIn(
			valueToExpression(v), expression.NewInList(reduced...))), nil
	case sawNull:
		return sql.NullValue, nil
	}
	return sql.NewBooleanValue(false), nil
}
