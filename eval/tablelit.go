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

package eval

import (
	"github.com/seo2-lang/seo2/ast"
	"github.com/seo2-lang/seo2/state"
	"github.com/seo2-lang/seo2/value"
)

// evalTableLit implements spec.md §4.4.2: positional fields consume the
// next implicit integer index in source order; expression-keyed and
// name-keyed fields never consume a positional slot.
func evalTableLit(fields []ast.Field, st *state.State) (value.Value, error) {
	t := value.New(st.NextTableID())
	nextPos := int64(1)
	for _, f := range fields {
		switch f.Kind {
		case ast.FieldPositional:
			v, err := EvalExpr(&f.Value, st)
			if err != nil {
				return value.Nil, err
			}
			if err := t.Set(value.Int(nextPos), v); err != nil {
				return value.Nil, wrapKeyError(err)
			}
			nextPos++
		case ast.FieldKeyed:
			k, err := EvalExpr(f.Key, st)
			if err != nil {
				return value.Nil, err
			}
			v, err := EvalExpr(&f.Value, st)
			if err != nil {
				return value.Nil, err
			}
			if err := t.Set(k, v); err != nil {
				return value.Nil, wrapKeyError(err)
			}
		case ast.FieldNamed:
			v, err := EvalExpr(&f.Value, st)
			if err != nil {
				return value.Nil, err
			}
			t.SetString(f.Name, v)
		default:
			return value.Nil, newOtherError("unknown table literal field kind %d", f.Kind)
		}
	}
	return value.FromTable(t), nil
}
