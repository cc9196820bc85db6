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

// Assignment is an unresolved (table, key) write target, as produced by
// ResolvePrefixExpr for the left-hand side of an assignment.
type Assignment struct {
	Table *value.Table
	Key   value.Value
}

// EvalPrefixExpr is the read entry point for a prefix expression
// (spec.md §4.6): it resolves the chain and dereferences the result.
func EvalPrefixExpr(p *ast.PrefixExpr, st *state.State) (value.Value, error) {
	a, err := ResolvePrefixExpr(p, st)
	if err != nil {
		return value.Nil, err
	}
	return a.Table.Get(a.Key), nil
}

// ResolvePrefixExpr is the write entry point: it walks the suffix chain
// and returns the final (table, key) pair without dereferencing it, so
// the caller can perform the assignment itself.
func ResolvePrefixExpr(p *ast.PrefixExpr, st *state.State) (Assignment, error) {
	suffixes := p.Suffixes
	var current value.Value

	if p.IsName {
		// Seed with the scope (or the global table) that owns the
		// name, then let the synthetic leading dot-suffix fetch the
		// actual binding.
		suffixes = append([]ast.Suffix{{Kind: ast.SuffixDot, Name: p.Name}}, suffixes...)
		if scope := st.ResolveName(p.Name); scope != nil {
			current = value.FromTable(scope)
		} else if outer := st.ResolveName(state.EnvName); outer != nil {
			current = outer.GetString(state.EnvName)
		} else {
			current = value.FromTable(st.Global())
		}
	} else {
		v, err := EvalExpr(p.Root, st)
		if err != nil {
			return Assignment{}, err
		}
		current = v
	}

	if len(suffixes) == 0 {
		return Assignment{}, newOtherError("cannot assign to a parenthesized expression with no suffix")
	}

	for i, suf := range suffixes {
		if suf.Kind == ast.SuffixCall {
			return Assignment{}, newNotImplemented("function call in prefix-expression chain")
		}
		if !current.IsTable() {
			return Assignment{}, newTypeError("attempt to index a non-table value")
		}
		key, err := suffixKey(&suf, st)
		if err != nil {
			return Assignment{}, err
		}
		if i == len(suffixes)-1 {
			return Assignment{Table: current.AsTable(), Key: key}, nil
		}
		current = current.AsTable().Get(key)
	}
	// Unreachable: the loop above always returns on the last suffix.
	return Assignment{}, newOtherError("empty suffix chain")
}

func suffixKey(suf *ast.Suffix, st *state.State) (value.Value, error) {
	if suf.Kind == ast.SuffixDot {
		return value.String(suf.Name), nil
	}
	return EvalExpr(suf.Index, st)
}
