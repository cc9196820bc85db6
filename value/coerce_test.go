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

package value

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNumCoercionInt(t *testing.T) {
	v := NumCoercion(String("42"))
	if v.Kind() != KInt || v.AsInt() != 42 {
		t.Errorf("%+v", errors.Errorf("NumCoercion(\"42\"): got %#v, want Int(42)", v))
	}
}

func TestNumCoercionFloat(t *testing.T) {
	v := NumCoercion(String("1.5"))
	if v.Kind() != KFloat || v.AsFloat() != 1.5 {
		t.Errorf("%+v", errors.Errorf("NumCoercion(\"1.5\"): got %#v, want Float(1.5)", v))
	}
}

func TestNumCoercionNonNumericStringPassesThrough(t *testing.T) {
	v := NumCoercion(String("hello"))
	if v.Kind() != KString || v.AsString() != "hello" {
		t.Errorf("%+v", errors.Errorf("NumCoercion(\"hello\"): got %#v, want unchanged string", v))
	}
}

func TestNumCoercionNonStringPassesThrough(t *testing.T) {
	v := NumCoercion(Int(7))
	if v.Kind() != KInt || v.AsInt() != 7 {
		t.Errorf("%+v", errors.Errorf("NumCoercion(Int(7)): got %#v, want Int(7) unchanged", v))
	}
}

func TestBooleanCoercion(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{Int(0), true},
		{String(""), true},
		{FromTable(New(0)), true},
	}
	for _, c := range cases {
		if got := BooleanCoercion(c.v); got != c.want {
			t.Errorf("%+v", errors.Errorf("BooleanCoercion(%#v): got %v, want %v", c.v, got, c.want))
		}
	}
}
