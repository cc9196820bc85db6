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

// execIf implements spec.md §4.7.1: the condition and elseif conditions
// are tried in order, each guarding its own block; at most one block
// runs.
func execIf(ifs *ast.IfStmt, st *state.State) (Flow, error) {
	cond, err := EvalExpr(&ifs.Cond, st)
	if err != nil {
		return Flow{}, err
	}
	if value.BooleanCoercion(cond) {
		return ExecBlock(&ifs.Then, st)
	}
	for i := range ifs.ElseIfs {
		ei := &ifs.ElseIfs[i]
		c, err := EvalExpr(&ei.Cond, st)
		if err != nil {
			return Flow{}, err
		}
		if value.BooleanCoercion(c) {
			return ExecBlock(&ei.Block, st)
		}
	}
	if ifs.Else != nil {
		return ExecBlock(ifs.Else, st)
	}
	return Flow{Kind: FlowNone}, nil
}

// execWhile implements spec.md §4.7.2: the condition is re-evaluated
// before every iteration; a Break unwinds to FlowNone, a Return
// propagates to the caller, and an ordinary pass through the body
// continues the loop.
func execWhile(w *ast.WhileStmt, st *state.State) (Flow, error) {
	for {
		cond, err := EvalExpr(&w.Cond, st)
		if err != nil {
			return Flow{}, err
		}
		if !value.BooleanCoercion(cond) {
			return Flow{Kind: FlowNone}, nil
		}
		flow, err := ExecBlock(&w.Body, st)
		if err != nil {
			return Flow{}, err
		}
		switch flow.Kind {
		case FlowBreak:
			return Flow{Kind: FlowNone}, nil
		case FlowReturn:
			return flow, nil
		}
	}
}

// execRepeat implements spec.md §4.7.3: the until-condition shares the
// body's scope (so locals declared in the body remain visible to it),
// which means the body runs without ExecBlock's usual push/pop — this
// function pushes exactly one scope per iteration and pops it on every
// exit path, after the until-condition has had its chance to read the
// body's locals.
func execRepeat(r *ast.RepeatStmt, st *state.State) (Flow, error) {
	for {
		st.PushScope()
		flow, err := execStmts(r.Body.Stmts, st)
		if err == nil && flow.Kind == FlowNone && r.Body.HasReturn {
			var vals []value.Value
			vals, err = evalExprList(r.Body.Return, st)
			if err == nil {
				flow = Flow{Kind: FlowReturn, Values: vals}
			}
		}
		if err != nil {
			st.PopScope()
			return Flow{}, err
		}

		switch flow.Kind {
		case FlowBreak:
			st.PopScope()
			return Flow{Kind: FlowNone}, nil
		case FlowReturn:
			st.PopScope()
			return flow, nil
		}

		cond, err := EvalExpr(&r.Until, st)
		st.PopScope()
		if err != nil {
			return Flow{}, err
		}
		if value.BooleanCoercion(cond) {
			return Flow{Kind: FlowNone}, nil
		}
	}
}
