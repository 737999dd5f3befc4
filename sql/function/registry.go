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

// Package function registers the built-in scalar functions. All of
// them are strict: the interpreter never passes a NULL argument.
package function

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strconv"

	"github.com/frescodb/fresco/sql"
)

// Defaults returns a registry loaded with the built-in functions.
func Defaults() *sql.FunctionRegistry {
	r := sql.NewFunctionRegistry()
	Register(r)
	return r
}

// Register adds the built-in functions to an existing registry.
func Register(r *sql.FunctionRegistry) {
	r.MustRegister(
		&sql.FunctionDescriptor{
			Name:          "concat",
			ArgTypes:      []sql.Type{sql.Varchar, sql.Varchar},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				var buf bytes.Buffer
				buf.Write(args[0].Varchar())
				buf.Write(args[1].Varchar())
				return sql.NewVarcharValue(buf.Bytes()), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "lower",
			ArgTypes:      []sql.Type{sql.Varchar},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewVarcharValue(bytes.ToLower(args[0].Varchar())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "upper",
			ArgTypes:      []sql.Type{sql.Varchar},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewVarcharValue(bytes.ToUpper(args[0].Varchar())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "length",
			ArgTypes:      []sql.Type{sql.Varchar},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewLongValue(int64(len(args[0].Varchar()))), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "abs",
			ArgTypes:      []sql.Type{sql.Bigint},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				v := args[0].Long()
				if v == math.MinInt64 {
					return sql.NullValue, errors.New("abs overflows BIGINT")
				}
				if v < 0 {
					v = -v
				}
				return sql.NewLongValue(v), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "abs",
			ArgTypes:      []sql.Type{sql.Double},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.Abs(args[0].Double())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "ceil",
			ArgTypes:      []sql.Type{sql.Double},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.Ceil(args[0].Double())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "floor",
			ArgTypes:      []sql.Type{sql.Double},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.Floor(args[0].Double())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "power",
			ArgTypes:      []sql.Type{sql.Double, sql.Double},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.Pow(
					args[0].AsDouble(), args[1].AsDouble())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "sqrt",
			ArgTypes:      []sql.Type{sql.Double},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.Sqrt(args[0].AsDouble())), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "nan",
			ArgTypes:      nil,
			Deterministic: true,
			Fn: func(_ sql.Session, _ []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.NaN()), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "infinity",
			ArgTypes:      nil,
			Deterministic: true,
			Fn: func(_ sql.Session, _ []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(math.Inf(1)), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "rand",
			ArgTypes:      nil,
			Deterministic: false,
			Fn: func(_ sql.Session, _ []sql.Value) (sql.Value, error) {
				return sql.NewDoubleValue(rand.Float64()), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "now",
			ArgTypes:      nil,
			Deterministic: true,
			BindSession:   true,
			Fn: func(sess sql.Session, _ []sql.Value) (sql.Value, error) {
				return sql.NewLongValue(sess.CurrentTimestamp().Unix()), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "connection_id",
			ArgTypes:      nil,
			Deterministic: true,
			BindSession:   true,
			Fn: func(sess sql.Session, _ []sql.Value) (sql.Value, error) {
				return sql.NewStringValue(sess.ID()), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "mod",
			ArgTypes:      []sql.Type{sql.Bigint, sql.Bigint},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				if args[1].Long() == 0 {
					return sql.NullValue, sql.ErrDivisionByZero.New()
				}
				return sql.NewLongValue(args[0].Long() % args[1].Long()), nil
			},
		},
		&sql.FunctionDescriptor{
			Name:          "substr",
			ArgTypes:      []sql.Type{sql.Varchar, sql.Bigint, sql.Bigint},
			Deterministic: true,
			Fn: func(_ sql.Session, args []sql.Value) (sql.Value, error) {
				s := args[0].Varchar()
				start, length := args[1].Long(), args[2].Long()
				if start < 1 || length < 0 {
					return sql.NullValue, errors.New(
						"substr start is 1-based and length must not be negative: " +
							strconv.FormatInt(start, 10))
				}
				from := start - 1
				if from >= int64(len(s)) {
					return sql.NewVarcharValue(nil), nil
				}
				to := from + length
				if to > int64(len(s)) {
					to = int64(len(s))
				}
				return sql.NewVarcharValue(s[from:to]), nil
			},
		},
	)
}
