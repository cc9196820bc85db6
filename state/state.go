// This file is part of seo2 - https://github.com/seo2-lang/seo2
//
// Copyright 2026 The seo2 Authors
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

// Package state implements the evaluator's lexical scope stack: a deque
// of scope tables with a distinguished global table bound at the base
// under the reserved name _ENV, plus the monotonic table-identity
// generator shared by every table the evaluator creates.
package state

import "github.com/seo2-lang/seo2/value"

// EnvName is the reserved binding under which the global table is
// stored in the base scope.
const EnvName = "_ENV"

// State owns the scope stack and the table-identity generator for a
// single evaluation. It is not safe for concurrent use: like
// db47h/ngaro's vm.Instance, a State is meant to be driven by exactly
// one goroutine at a time.
type State struct {
	global *value.Table
	scopes []*value.Table // index 0 is innermost
	nextID value.TableID
}

// New creates a new State: a global table (id 0), a base scope, and a
// binding of _ENV to the global table in that base scope.
func New() *State {
	s := &State{}
	global := value.New(s.nextTableID())
	s.global = global
	s.PushScope()
	s.scopes[0].SetString(EnvName, value.FromTable(global))
	return s
}

func (s *State) nextTableID() value.TableID {
	id := s.nextID
	s.nextID++
	return id
}

// NextTableID mints a fresh, monotonically increasing table identity
// for a new table created during evaluation (e.g. a table literal).
func (s *State) NextTableID() value.TableID { return s.nextTableID() }

// Global returns the distinguished global table.
func (s *State) Global() *value.Table { return s.global }

// PushScope pushes a new, empty scope as the innermost scope.
func (s *State) PushScope() {
	s.scopes = append([]*value.Table{value.New(s.nextTableID())}, s.scopes...)
}

// PopScope pops the innermost scope. Popping an empty stack is a fatal
// programmer error: scope push/pop must always be balanced by the
// caller (block executor), so this indicates a bug in this module, not
// in evaluated code.
func (s *State) PopScope() {
	if len(s.scopes) == 0 {
		panic("state: pop of empty scope stack")
	}
	s.scopes = s.scopes[1:]
}

// Depth returns the current scope stack depth, for balance assertions
// in tests.
func (s *State) Depth() int { return len(s.scopes) }

// LocalScope returns the innermost scope table.
func (s *State) LocalScope() *value.Table {
	return s.scopes[0]
}

// ResolveName walks the scope stack from innermost to outermost and
// returns the first scope table that has name bound, or nil if none do
// (in which case the caller falls through to the global/_ENV table).
func (s *State) ResolveName(name string) *value.Table {
	for _, scope := range s.scopes {
		if scope.ContainsKey(name) {
			return scope
		}
	}
	return nil
}
