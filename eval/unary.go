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

// evalUnaryExpr implements spec.md §4.4.1: not, unary minus, length,
// bitwise not.
func evalUnaryExpr(operand *ast.Expr, op ast.UnOp, st *state.State) (value.Value, error) {
	v, err := EvalExpr(operand, st)
	if err != nil {
		return value.Nil, err
	}
	switch op {
	case ast.OpNot:
		return value.Bool(!value.BooleanCoercion(v)), nil
	case ast.OpNeg:
		return unaryNeg(v)
	case ast.OpLen:
		return unaryLen(v)
	case ast.OpBitNot:
		return unaryBitNot(v)
	default:
		return value.Nil, newOtherError("unknown unary operator %d", op)
	}
}

func unaryNeg(v value.Value) (value.Value, error) {
	nv := value.NumCoercion(v)
	switch nv.Kind() {
	case value.KInt:
		return value.Int(-nv.AsInt()), nil
	case value.KFloat:
		return value.Float(-nv.AsFloat()), nil
	default:
		return value.Nil, newTypeError("attempt to perform arithmetic negation on a non-numeric value")
	}
}

func unaryLen(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KString:
		return value.Int(int64(len(v.AsString()))), nil
	case value.KTable:
		return value.Int(int64(v.AsTable().SequenceBorder())), nil
	default:
		return value.Nil, newTypeError("attempt to get length of a value that is neither a string nor a table")
	}
}

func unaryBitNot(v value.Value) (value.Value, error) {
	nv := value.NumCoercion(v)
	switch nv.Kind() {
	case value.KInt:
		return value.Int(^nv.AsInt()), nil
	case value.KFloat:
		return value.Int(^nv.ToInt()), nil
	default:
		return value.Nil, newTypeError("attempt to perform bitwise negation on a non-numeric value")
	}
}
