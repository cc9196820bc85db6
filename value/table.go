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

import "math"

// TableID is the monotonically assigned identity used for a Table's
// equality and hashing.
type TableID uint64

// Table is a reference-identity composite of a 1-origin dense sequence
// prefix and a key->value map for everything else. Cloning a *Table
// shares the underlying content: mutations made through one handle are
// observed through all of them.
type Table struct {
	id  TableID
	seq []Value
	m   map[string]entry
}

type entry struct {
	key Value
	val Value
}

// New returns an empty table with the given identity.
func New(id TableID) *Table {
	return &Table{id: id, m: make(map[string]entry)}
}

// WithCapacity returns an empty table with the given identity and a
// sequence part pre-sized for n elements.
func WithCapacity(id TableID, n int) *Table {
	return &Table{id: id, seq: make([]Value, 0, n), m: make(map[string]entry)}
}

// ID returns the table's identity.
func (t *Table) ID() TableID { return t.id }

// normalizeKey rounds an integral float key down to the equivalent
// integer key, per the spec's key-normalization rule. Returns the
// normalized key and whether it was a valid (non-nil, non-NaN) key.
func normalizeKey(key Value) (Value, bool) {
	switch key.Kind() {
	case KNil:
		return key, false
	case KFloat:
		f := key.AsFloat()
		if math.IsNaN(f) {
			return key, false
		}
		if iv, ok := floatAsInt(f); ok {
			return Int(iv), true
		}
		return key, true
	default:
		return key, true
	}
}

// Set implements the table's set(key, value) operation per spec: a
// Nil or NaN-Float key is an IndexError; a Float key equal to an
// integer is normalized to that integer first; an integer key in
// [1, len+1] writes into the sequence (appending at len+1); any other
// key goes to the map, where assigning Nil removes the entry.
func (t *Table) Set(key, val Value) error {
	nk, ok := normalizeKey(key)
	if !ok {
		if key.IsNil() {
			return newIndexError("using nil as a table index")
		}
		return newIndexError("using NaN as a table index")
	}
	if nk.Kind() == KInt {
		i := nk.AsInt()
		if i >= 1 && i <= int64(len(t.seq))+1 {
			t.sequenceSet(i, val)
			return nil
		}
	}
	t.mapSet(nk, val)
	return nil
}

func (t *Table) sequenceSet(i int64, val Value) {
	idx := int(i - 1)
	switch {
	case idx < len(t.seq):
		t.seq[idx] = val
	case idx == len(t.seq):
		t.seq = append(t.seq, val)
	}
}

func (t *Table) mapSet(key, val Value) {
	hk := HashKey(key)
	if val.IsNil() {
		delete(t.m, hk)
		return
	}
	t.m[hk] = entry{key: key, val: val}
}

// Get implements the table's get(key) operation, symmetric with Set:
// a missing key, a Nil key, a NaN-Float key, or an out-of-range integer
// key all yield Nil.
func (t *Table) Get(key Value) Value {
	nk, ok := normalizeKey(key)
	if !ok {
		return Nil
	}
	if nk.Kind() == KInt {
		i := nk.AsInt()
		if i >= 1 && i <= int64(len(t.seq)) {
			return t.seq[i-1]
		}
	}
	if e, found := t.m[HashKey(nk)]; found {
		return e.val
	}
	return Nil
}

// SetString is a convenience for string-keyed map assignment.
func (t *Table) SetString(name string, val Value) {
	t.mapSet(String(name), val)
}

// GetString is a convenience for string-keyed map lookup.
func (t *Table) GetString(name string) Value {
	if e, found := t.m[HashKey(String(name))]; found {
		return e.val
	}
	return Nil
}

// ContainsKey reports whether the table has a string key bound,
// consulting the map directly (used for scope lookup).
func (t *Table) ContainsKey(name string) bool {
	_, found := t.m[HashKey(String(name))]
	return found
}

// SequenceBorder returns the length of the table's sequence vector, used
// by the unary length operator. Setting a sequence slot to Nil does not
// truncate the vector (see spec §9 Open Question 2), so the border can
// become stale relative to a naive notion of "last non-nil index"; this
// matches the source implementation's behavior.
func (t *Table) SequenceBorder() int {
	return len(t.seq)
}

// newIndexError is a tiny indirection so this file doesn't need to
// import the eval package (which in turn depends on value); the error
// kind constants live in eval, so this returns a *KeyError that eval
// recognizes by type with errors.As. See eval/errors.go.
func newIndexError(msg string) error {
	return &KeyError{Msg: msg}
}

// KeyError reports an invalid table key (Nil or NaN). eval/errors.go
// wraps occurrences of this into the public eval.IndexError kind; it is
// exported here only so that package can recognize it without value
// importing eval (which would create an import cycle).
type KeyError struct {
	Msg string
}

func (e *KeyError) Error() string { return e.Msg }
