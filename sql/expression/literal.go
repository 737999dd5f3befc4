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
	"time"

	"github.com/frescodb/fresco/sql"
)

// LongLiteral is a signed 64-bit integer literal.
type LongLiteral struct {
	Value int64
}

// NewLongLiteral creates a new integer literal.
func NewLongLiteral(v int64) *LongLiteral {
	return &LongLiteral{Value: v}
}

func (l *LongLiteral) Children() []sql.Expression { return nil }

func (l *LongLiteral) String() string {
	return strconv.FormatInt(l.Value, 10)
}

// DoubleLiteral is an IEEE-754 double literal.
type DoubleLiteral struct {
	Value float64
}

// NewDoubleLiteral creates a new floating point literal.
func NewDoubleLiteral(v float64) *DoubleLiteral {
	return &DoubleLiteral{Value: v}
}

func (l *DoubleLiteral) Children() []sql.Expression { return nil }

func (l *DoubleLiteral) String() string {
	s := strconv.FormatFloat(l.Value, 'G', -1, 64)
	if !strings.ContainsAny(s, ".E") {
		s += ".0"
	}
	return s
}

// StringLiteral is a UTF-8 string literal. The byte slice is immutable.
type StringLiteral struct {
	Value []byte
}

// NewStringLiteral creates a new string literal from a Go string.
func NewStringLiteral(v string) *StringLiteral {
	return &StringLiteral{Value: []byte(v)}
}

// NewBytesLiteral creates a new string literal owning the given bytes.
func NewBytesLiteral(v []byte) *StringLiteral {
	return &StringLiteral{Value: v}
}

func (l *StringLiteral) Children() []sql.Expression { return nil }

func (l *StringLiteral) String() string {
	return "'" + strings.Replace(string(l.Value), "'", "''", -1) + "'"
}

// BooleanLiteral is a boolean literal.
type BooleanLiteral struct {
	Value bool
}

// NewBooleanLiteral creates a new boolean literal.
func NewBooleanLiteral(v bool) *BooleanLiteral {
	return &BooleanLiteral{Value: v}
}

func (l *BooleanLiteral) Children() []sql.Expression { return nil }

func (l *BooleanLiteral) String() string {
	return strconv.FormatBool(l.Value)
}

// NullLiteral is the literal NULL.
type NullLiteral struct{}

// NewNullLiteral creates a new NULL literal.
func NewNullLiteral() *NullLiteral {
	return &NullLiteral{}
}

func (l *NullLiteral) Children() []sql.Expression { return nil }

func (l *NullLiteral) String() string { return "NULL" }

// DatetimeUnit distinguishes the three datetime literal forms, all of
// which carry seconds since the Unix epoch.
type DatetimeUnit byte

const (
	// UnitDate is a DATE literal.
	UnitDate DatetimeUnit = iota
	// UnitTime is a TIME literal.
	UnitTime
	// UnitTimestamp is a TIMESTAMP literal.
	UnitTimestamp
)

func (u DatetimeUnit) String() string {
	switch u {
	case UnitDate:
		return "DATE"
	case UnitTime:
		return "TIME"
	case UnitTimestamp:
		return "TIMESTAMP"
	}
	return "INVALID"
}

// DatetimeLiteral is a date, time or timestamp literal holding seconds
// since the epoch, UTC.
type DatetimeLiteral struct {
	Unit    DatetimeUnit
	Seconds int64
}

// NewDateLiteral creates a DATE literal.
func NewDateLiteral(seconds int64) *DatetimeLiteral {
	return &DatetimeLiteral{Unit: UnitDate, Seconds: seconds}
}

// NewTimeLiteral creates a TIME literal.
func NewTimeLiteral(seconds int64) *DatetimeLiteral {
	return &DatetimeLiteral{Unit: UnitTime, Seconds: seconds}
}

// NewTimestampLiteral creates a TIMESTAMP literal.
func NewTimestampLiteral(seconds int64) *DatetimeLiteral {
	return &DatetimeLiteral{Unit: UnitTimestamp, Seconds: seconds}
}

func (l *DatetimeLiteral) Children() []sql.Expression { return nil }

func (l *DatetimeLiteral) String() string {
	ts := time.Unix(l.Seconds, 0).UTC()
	return l.Unit.String() + " '" + ts.Format("2006-01-02 15:04:05") + "'"
}

// IntervalLiteral is a day-to-second interval in seconds. The
// year-to-month form is carried for completeness but the interpreter
// rejects it as unsupported.
type IntervalLiteral struct {
	Seconds     int64
	YearToMonth bool
}

// NewIntervalLiteral creates a day-to-second interval literal.
func NewIntervalLiteral(seconds int64) *IntervalLiteral {
	return &IntervalLiteral{Seconds: seconds}
}

// NewYearToMonthInterval creates a year-to-month interval literal.
func NewYearToMonthInterval(months int64) *IntervalLiteral {
	return &IntervalLiteral{Seconds: months, YearToMonth: true}
}

func (l *IntervalLiteral) Children() []sql.Expression { return nil }

func (l *IntervalLiteral) String() string {
	if l.YearToMonth {
		return "INTERVAL '" + strconv.FormatInt(l.Seconds, 10) + "' MONTH"
	}
	return "INTERVAL '" + strconv.FormatInt(l.Seconds, 10) + "' SECOND"
}
