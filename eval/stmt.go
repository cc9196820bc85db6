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

// FlowKind identifies the variant held by a Flow.
type FlowKind uint8

// Flow kinds, per spec.md §3's {None, Break, Return(values)} sum.
const (
	FlowNone FlowKind = iota
	FlowBreak
	FlowReturn
)

// Flow carries control-flow disruption (break/return) up through nested
// blocks. It is never stored in a value.Value; it only ever travels
// between ExecStatement/ExecBlock calls.
type Flow struct {
	Kind   FlowKind
	Values []value.Value
}

// ExecStatement executes a single statement and reports any resulting
// control-flow disruption (spec.md §4.7).
func ExecStatement(stmt *ast.Stmt, st *state.State) (Flow, error) {
	switch stmt.Kind {
	case ast.SLocalAssign:
		return Flow{}, execLocalAssign(stmt, st)
	case ast.SAssign:
		return Flow{}, execAssign(stmt, st)
	case ast.SSemicolon:
		return Flow{}, nil
	case ast.SIf:
		return execIf(stmt.If, st)
	case ast.SWhile:
		return execWhile(stmt.While, st)
	case ast.SRepeat:
		return execRepeat(stmt.Repeat, st)
	case ast.SBreak:
		return Flow{Kind: FlowBreak}, nil
	case ast.SReturn:
		vals, err := evalExprList(stmt.Values, st)
		if err != nil {
			return Flow{}, err
		}
		return Flow{Kind: FlowReturn, Values: vals}, nil
	case ast.SOther:
		return Flow{}, newNotImplemented("statement kind")
	default:
		return Flow{}, newOtherError("unknown statement kind %d", stmt.Kind)
	}
}

// execLocalAssign binds each name in the innermost scope to the
// corresponding RHS value, zipped pairwise: missing RHS values become
// Nil, extra RHS values are discarded (spec.md §9 Open Question 1).
func execLocalAssign(stmt *ast.Stmt, st *state.State) error {
	vals, err := evalExprList(stmt.Values, st)
	if err != nil {
		return err
	}
	scope := st.LocalScope()
	for i, name := range stmt.Names {
		scope.SetString(name, valueAt(vals, i))
	}
	return nil
}

// execAssign evaluates all RHS expressions first, then resolves and
// writes each LHS prefix-expression target in turn (spec.md §4.7).
func execAssign(stmt *ast.Stmt, st *state.State) error {
	vals, err := evalExprList(stmt.Values, st)
	if err != nil {
		return err
	}
	for i := range stmt.Targets {
		target := &stmt.Targets[i]
		if target.Kind != ast.EPrefix {
			return newOtherError("assignment target is not a prefix expression")
		}
		a, err := ResolvePrefixExpr(target.Prefix, st)
		if err != nil {
			return err
		}
		if err := a.Table.Set(a.Key, valueAt(vals, i)); err != nil {
			return wrapKeyError(err)
		}
	}
	return nil
}

func valueAt(vals []value.Value, i int) value.Value {
	if i < len(vals) {
		return vals[i]
	}
	return value.Nil
}

func evalExprList(exprs []ast.Expr, st *state.State) ([]value.Value, error) {
	vals := make([]value.Value, len(exprs))
	for i := range exprs {
		v, err := EvalExpr(&exprs[i], st)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// ExecBlock executes a block in its own scope (spec.md §4.7): statements
// run in order, stopping early on Break/Return; if nothing disrupted
// execution and the block carries a trailing return clause, that clause
// is evaluated and becomes the block's Return. The scope is always
// popped on every exit path, including the error path, to keep the
// scope stack balanced (spec.md §5).
func ExecBlock(block *ast.Block, st *state.State) (Flow, error) {
	st.PushScope()
	flow, err := execStmts(block.Stmts, st)
	if err != nil {
		st.PopScope()
		return Flow{}, err
	}
	if flow.Kind == FlowNone && block.HasReturn {
		vals, err := evalExprList(block.Return, st)
		if err != nil {
			st.PopScope()
			return Flow{}, err
		}
		flow = Flow{Kind: FlowReturn, Values: vals}
	}
	st.PopScope()
	return flow, nil
}

func execStmts(stmts []ast.Stmt, st *state.State) (Flow, error) {
	for i := range stmts {
		flow, err := ExecStatement(&stmts[i], st)
		if err != nil {
			return Flow{}, err
		}
		if flow.Kind != FlowNone {
			return flow, nil
		}
	}
	return Flow{Kind: FlowNone}, nil
}
