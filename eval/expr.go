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

// Package eval implements the expression evaluator, the prefix-
// expression resolver, and the statement executor / flow controller:
// the components that actually walk an *ast.Block and produce values.
package eval

import (
	"github.com/seo2-lang/seo2/ast"
	"github.com/seo2-lang/seo2/state"
	"github.com/seo2-lang/seo2/value"
)

// EvalExpr is the pure function from an AST expression + evaluator
// state to a value (spec.md §4.4). Its only side effect is allocating
// new tables (for table literals), via st's id generator; it otherwise
// only reads st.
func EvalExpr(e *ast.Expr, st *state.State) (value.Value, error) {
	switch e.Kind {
	case ast.ENil:
		return value.Nil, nil
	case ast.EBool:
		return value.Bool(e.Bool), nil
	case ast.EInt:
		return value.Int(e.Int), nil
	case ast.EFloat:
		return value.Float(e.Float), nil
	case ast.EString:
		return value.String(e.Str), nil
	case ast.EBinary:
		return evalBinaryExpr(e.Left, e.Right, e.BinOp, st)
	case ast.EUnary:
		return evalUnaryExpr(e.Operand, e.UnOp, st)
	case ast.EPrefix:
		return EvalPrefixExpr(e.Prefix, st)
	case ast.ETableLit:
		return evalTableLit(e.Fields, st)
	case ast.EEllipsis:
		return value.Nil, newNotImplemented("ellipsis (...)")
	case ast.ECall:
		return value.Nil, newNotImplemented("function call")
	case ast.ELambda:
		return value.Nil, newNotImplemented("function literal")
	default:
		return value.Nil, newOtherError("unknown expression kind %d", e.Kind)
	}
}
