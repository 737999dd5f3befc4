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

// Package casts implements CAST conversions between the four scalar
// types.
package casts

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/frescodb/fresco/sql"
)

// Supported reports whether the target type name is castable to.
func Supported(typeName string) bool {
	switch strings.ToUpper(typeName) {
	case "BOOLEAN", "VARCHAR", "DOUBLE", "BIGINT":
		return true
	}
	return false
}

// To converts a concrete non-null scalar to the named target type.
// Unknown targets are unsupported; conversion failures are evaluation
// failures.
func To(typeName string, v sql.Value) (sql.Value, error) {
	switch strings.ToUpper(typeName) {
	case "BOOLEAN":
		return toBoolean(v)
	case "VARCHAR":
		return toVarchar(v)
	case "DOUBLE":
		return toDouble(v)
	case "BIGINT":
		return toBigint(v)
	}
	return sql.NullValue, sql.ErrUnsupportedFeature.New("CAST to " + typeName)
}

func toBoolean(v sql.Value) (sql.Value, error) {
	switch v.Kind() {
	case sql.KindBoolean:
		return v, nil
	case sql.KindLong:
		return sql.NewBooleanValue(v.Long() != 0), nil
	case sql.KindDouble:
		return sql.NewBooleanValue(v.Double() != 0), nil
	case sql.KindVarchar:
		b, err := cast.ToBoolE(strings.ToLower(string(v.Varchar())))
		if err != nil {
			return sql.NullValue, sql.ErrEvaluation.New(err.Error())
		}
		return sql.NewBooleanValue(b), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(v.Kind())
}

func toVarchar(v sql.Value) (sql.Value, error) {
	switch v.Kind() {
	case sql.KindVarchar:
		return v, nil
	case sql.KindLong:
		return sql.NewStringValue(strconv.FormatInt(v.Long(), 10)), nil
	case sql.KindDouble:
		return sql.NewStringValue(strconv.FormatFloat(v.Double(), 'G', -1, 64)), nil
	case sql.KindBoolean:
		return sql.NewStringValue(strconv.FormatBool(v.Boolean())), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(v.Kind())
}

func toDouble(v sql.Value) (sql.Value, error) {
	switch v.Kind() {
	case sql.KindDouble:
		return v, nil
	case sql.KindLong:
		return sql.NewDoubleValue(float64(v.Long())), nil
	case sql.KindBoolean:
		if v.Boolean() {
			return sql.NewDoubleValue(1), nil
		}
		return sql.NewDoubleValue(0), nil
	case sql.KindVarchar:
		f, err := cast.ToFloat64E(string(v.Varchar()))
		if err != nil {
			return sql.NullValue, sql.ErrEvaluation.New(err.Error())
		}
		return sql.NewDoubleValue(f), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(v.Kind())
}

func toBigint(v sql.Value) (sql.Value, error) {
	switch v.Kind() {
	case sql.KindLong:
		return v, nil
	case sql.KindDouble:
		return sql.NewLongValue(int64(v.Double())), nil
	case sql.KindBoolean:
		if v.Boolean() {
			return sql.NewLongValue(1), nil
		}
		return sql.NewLongValue(0), nil
	case sql.KindVarchar:
		i, err := cast.ToInt64E(strings.TrimSpace(string(v.Varchar())))
		if err != nil {
			return sql.NullValue, sql.ErrEvaluation.New(err.Error())
		}
		return sql.NewLongValue(i), nil
	}
	return sql.NullValue, sql.ErrInvalidType.New(v.Kind())
}
