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

	"github.com/frescodb/fresco/sql"
)

// CurrentTime reads the session clock. Only the TIMESTAMP unit without
// an explicit precision is evaluable; the other forms are carried for
// the analyzer's benefit and rejected by the interpreter.
type CurrentTime struct {
	Unit      DatetimeUnit
	Precision int
}

// NewCurrentTimestamp creates a CURRENT_TIMESTAMP expression.
func NewCurrentTimestamp() *CurrentTime {
	return &CurrentTime{Unit: UnitTimestamp}
}

// NewCurrentTime creates a current-time reference for the given unit
// and precision. Precision zero means none was written.
func NewCurrentTime(unit DatetimeUnit, precision int) *CurrentTime {
	return &CurrentTime{Unit: unit, Precision: precision}
}

// Children implements the sql.Expression interface.
func (e *CurrentTime) Children() []sql.Expression { return nil }

func (e *CurrentTime) String() string {
	name := "CURRENT_" + e.Unit.String()
	if e.Unit == UnitDate {
		name = "CURRENT_DATE"
	}
	if e.Precision > 0 {
		return name + "(" + strconv.Itoa(e.Precision) + ")"
	}
	return name
}
