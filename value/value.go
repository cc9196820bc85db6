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

// Package value implements the tagged value universe shared by every
// other package in this module: nil, booleans, integer/float numbers,
// strings and reference-shared tables.
package value

import (
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KNil Kind = iota
	KBool
	KInt
	KFloat
	KString
	KTable
)

// Value is a tagged union over the language's runtime types. It is kept
// as a small value type (rather than an interface) so that copying,
// comparing and hashing scalars never allocates.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    *Table
}

// Nil is the unit value.
var Nil = Value{kind: KNil}

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{kind: KBool, b: b} }

// Int returns an integer Number value.
func Int(i int64) Value { return Value{kind: KInt, i: i} }

// Float returns a float Number value.
func Float(f float64) Value { return Value{kind: KFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KString, s: s} }

// FromTable wraps a table handle in a Value.
func FromTable(t *Table) Value { return Value{kind: KTable, t: t} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is Nil.
func (v Value) IsNil() bool { return v.kind == KNil }

// IsNumber reports whether v holds an Int or a Float.
func (v Value) IsNumber() bool { return v.kind == KInt || v.kind == KFloat }

// IsString reports whether v holds a String.
func (v Value) IsString() bool { return v.kind == KString }

// IsTable reports whether v holds a Table.
func (v Value) IsTable() bool { return v.kind == KTable }

// AsBool returns the boolean payload; only meaningful when Kind() == KBool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload; only meaningful when Kind() == KInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the float payload; only meaningful when Kind() == KFloat.
func (v Value) AsFloat() float64 { return v.f }

// AsString returns the string payload; only meaningful when Kind() == KString.
func (v Value) AsString() string { return v.s }

// AsTable returns the table handle; only meaningful when Kind() == KTable.
func (v Value) AsTable() *Table { return v.t }

// ToFloat widens an Int to Float, and returns a Float unchanged.
// Only valid for numeric values.
func (v Value) ToFloat() float64 {
	if v.kind == KInt {
		return float64(v.i)
	}
	return v.f
}

// ToInt truncates a Float toward zero, and returns an Int unchanged.
// Only valid for numeric values.
func (v Value) ToInt() int64 {
	if v.kind == KInt {
		return v.i
	}
	return int64(v.f)
}

// Truthy implements boolean coercion: every value is true except Nil and
// Boolean(false).
func (v Value) Truthy() bool {
	switch v.kind {
	case KNil:
		return false
	case KBool:
		return v.b
	default:
		return true
	}
}

// Equal implements Value equality per the language's rules: structural
// for nil/boolean/string, mathematical for numbers (an Int equals a
// Float iff the float equals that integer's value and is finite), and
// reference identity for tables.
func Equal(a, b Value) bool {
	if a.kind == KInt || a.kind == KFloat {
		if b.kind != KInt && b.kind != KFloat {
			return false
		}
		return numEqual(a, b)
	}
	if b.kind == KInt || b.kind == KFloat {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KNil:
		return true
	case KBool:
		return a.b == b.b
	case KString:
		return a.s == b.s
	case KTable:
		return a.t == b.t
	}
	return false
}

func numEqual(a, b Value) bool {
	if a.kind == KInt && b.kind == KInt {
		return a.i == b.i
	}
	af, bf := a.ToFloat(), b.ToFloat()
	if a.kind == KInt {
		return intEqualsFloat(a.i, bf)
	}
	if b.kind == KInt {
		return intEqualsFloat(b.i, af)
	}
	return af == bf
}

func intEqualsFloat(i int64, f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f) && int64(f) == i && float64(i) == f
}

// HashKey returns a string that agrees with Equal: two values that
// compare equal always produce the same hash key, including a Float
// key whose value is integral hashing identically to the matching Int.
func HashKey(v Value) string {
	switch v.kind {
	case KNil:
		return "n"
	case KBool:
		if v.b {
			return "bt"
		}
		return "bf"
	case KInt:
		return "i" + strconv.FormatInt(v.i, 10)
	case KFloat:
		if iv, ok := floatAsInt(v.f); ok {
			return "i" + strconv.FormatInt(iv, 10)
		}
		return "f" + strconv.FormatUint(math.Float64bits(v.f), 16)
	case KString:
		return "s" + v.s
	case KTable:
		return "t" + strconv.FormatUint(uint64(v.t.ID()), 16)
	}
	return ""
}

// floatAsInt reports whether f represents an exact, finite integer value.
func floatAsInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
