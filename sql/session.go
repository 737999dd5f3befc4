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
	"time"

	uuid "github.com/satori/go.uuid"
)

// Session carries the query-time settings an evaluation runs under. It
// is opaque to the interpreter core except for the clock, and may be
// bound as the first argument of scalar functions that request it.
type Session interface {
	// ID returns the unique identifier of this session.
	ID() string
	// CurrentTimestamp returns the clock reading used for
	// CURRENT_TIMESTAMP and session-bound time functions. It must be
	// stable for the lifetime of a single query.
	CurrentTimestamp() time.Time
	// Config returns the session configuration.
	Config() Config
}

// BaseSession is the default Session implementation. The timestamp is
// pinned at construction so repeated reads within one query agree.
type BaseSession struct {
	id  string
	now time.Time
	cfg Config
}

// NewBaseSession creates a session with a fresh id, the current wall
// clock and the default configuration.
func NewBaseSession() *BaseSession {
	return &BaseSession{
		id:  uuid.NewV4().String(),
		now: time.Now().UTC(),
		cfg: DefaultConfig(),
	}
}

// NewSessionAt creates a session whose clock is pinned to the given
// instant. Used by planners that must fold CURRENT_TIMESTAMP
// deterministically, and by tests.
func NewSessionAt(now time.Time, cfg Config) *BaseSession {
	return &BaseSession{
		id:  uuid.NewV4().String(),
		now: now.UTC(),
		cfg: cfg,
	}
}

// ID implements the Session interface.
func (s *BaseSession) ID() string { return s.id }

// CurrentTimestamp implements the Session interface.
func (s *BaseSession) CurrentTimestamp() time.Time { return s.now }

// Config implements the Session interface.
func (s *BaseSession) Config() Config { return s.cfg }
