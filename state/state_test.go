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

package state

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/seo2-lang/seo2/value"
)

func TestNewBindsEnv(t *testing.T) {
	s := New()
	env := s.ResolveName(EnvName)
	if env == nil {
		t.Fatal("expected _ENV to be bound in the base scope")
	}
	if env.GetString(EnvName).AsTable() != s.Global() {
		t.Errorf("%+v", errors.Errorf("_ENV should be bound to the global table"))
	}
}

func TestScopeShadowing(t *testing.T) {
	s := New()
	s.LocalScope().SetString("x", value.Int(1))
	s.PushScope()
	s.LocalScope().SetString("x", value.Int(2))

	scope := s.ResolveName("x")
	if scope == nil {
		t.Fatal("expected x to resolve")
	}
	if got := scope.GetString("x").AsInt(); got != 2 {
		t.Errorf("%+v", errors.Errorf("innermost scope should shadow: got %d, want 2", got))
	}
	s.PopScope()
	scope = s.ResolveName("x")
	if got := scope.GetString("x").AsInt(); got != 1 {
		t.Errorf("%+v", errors.Errorf("after popping shadow: got %d, want 1", got))
	}
}

func TestResolveNameMissingFallsThrough(t *testing.T) {
	s := New()
	if s.ResolveName("nope") != nil {
		t.Error("expected ResolveName to return nil for an unbound name")
	}
}

func TestPopEmptyScopePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected PopScope on an empty stack to panic")
		}
	}()
	s := &State{}
	s.PopScope()
}

func TestDepthTracksPushPop(t *testing.T) {
	s := New()
	d0 := s.Depth()
	s.PushScope()
	if s.Depth() != d0+1 {
		t.Errorf("%+v", errors.Errorf("Depth after PushScope: got %d, want %d", s.Depth(), d0+1))
	}
	s.PopScope()
	if s.Depth() != d0 {
		t.Errorf("%+v", errors.Errorf("Depth after PopScope: got %d, want %d", s.Depth(), d0))
	}
}
