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
	"math"

	"github.com/seo2-lang/seo2/ast"
	"github.com/seo2-lang/seo2/state"
	"github.com/seo2-lang/seo2/value"
)

// intKernel computes an arithmetic/bitwise result from two Int operands.
type intKernel func(i, j int64) (value.Value, error)

// floatKernel computes an arithmetic/bitwise result from two Float (or
// float-widened) operands.
type floatKernel func(i, j float64) (value.Value, error)

// evalBinaryExpr implements spec.md §4.5. We cannot evaluate both
// operands up front for `and`/`or`, since they short-circuit.
func evalBinaryExpr(left, right *ast.Expr, op ast.BinOp, st *state.State) (value.Value, error) {
	switch op {
	case ast.OpAnd:
		return evalAnd(left, right, st)
	case ast.OpOr:
		return evalOr(left, right, st)
	case ast.OpEq:
		return evalEquality(left, right, true, st)
	case ast.OpNe:
		return evalEquality(left, right, false, st)
	case ast.OpConcat:
		return evalConcat(left, right, st)
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return evalCompare(left, right, op, st)
	}

	lv, err := EvalExpr(left, st)
	if err != nil {
		return value.Nil, err
	}
	rv, err := EvalExpr(right, st)
	if err != nil {
		return value.Nil, err
	}
	return evalArithmetic(lv, rv, op)
}

func evalAnd(left, right *ast.Expr, st *state.State) (value.Value, error) {
	lv, err := EvalExpr(left, st)
	if err != nil {
		return value.Nil, err
	}
	if !value.BooleanCoercion(lv) {
		return lv, nil
	}
	return EvalExpr(right, st)
}

func evalOr(left, right *ast.Expr, st *state.State) (value.Value, error) {
	lv, err := EvalExpr(left, st)
	if err != nil {
		return value.Nil, err
	}
	if value.BooleanCoercion(lv) {
		return lv, nil
	}
	return EvalExpr(right, st)
}

func evalEquality(left, right *ast.Expr, wantEqual bool, st *state.State) (value.Value, error) {
	lv, err := EvalExpr(left, st)
	if err != nil {
		return value.Nil, err
	}
	rv, err := EvalExpr(right, st)
	if err != nil {
		return value.Nil, err
	}
	eq := value.Equal(lv, rv)
	if !wantEqual {
		eq = !eq
	}
	return value.Bool(eq), nil
}

func evalConcat(left, right *ast.Expr, st *state.State) (value.Value, error) {
	lv, err := EvalExpr(left, st)
	if err != nil {
		return value.Nil, err
	}
	rv, err := EvalExpr(right, st)
	if err != nil {
		return value.Nil, err
	}
	lv = value.NumCoercion(lv)
	rv = value.NumCoercion(rv)
	if !concatable(lv) || !concatable(rv) {
		return value.Nil, newTypeError("attempt to concatenate a non-string, non-numeric value")
	}
	return value.String(concatPart(lv) + concatPart(rv)), nil
}

func concatable(v value.Value) bool { return v.IsString() || v.IsNumber() }

func concatPart(v value.Value) string {
	if v.IsString() {
		return v.AsString()
	}
	return value.FormatNumber(v)
}

func evalCompare(left, right *ast.Expr, op ast.BinOp, st *state.State) (value.Value, error) {
	lv, err := EvalExpr(left, st)
	if err != nil {
		return value.Nil, err
	}
	rv, err := EvalExpr(right, st)
	if err != nil {
		return value.Nil, err
	}
	switch {
	case lv.IsString() && rv.IsString():
		return value.Bool(compareOp(op, stringCompare(lv.AsString(), rv.AsString()))), nil
	case lv.IsNumber() && rv.IsNumber():
		a, b := lv.ToFloat(), rv.ToFloat()
		c := 0
		switch {
		case a < b:
			c = -1
		case a > b:
			c = 1
		}
		return value.Bool(compareOp(op, c)), nil
	default:
		return value.Nil, newTypeError("attempt to compare incompatible values")
	}
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareOp(op ast.BinOp, c int) bool {
	switch op {
	case ast.OpLt:
		return c < 0
	case ast.OpLe:
		return c <= 0
	case ast.OpGt:
		return c > 0
	case ast.OpGe:
		return c >= 0
	}
	return false
}

func evalArithmetic(lv, rv value.Value, op ast.BinOp) (value.Value, error) {
	ik, fk, err := arithmeticKernels(op)
	if err != nil {
		return value.Nil, err
	}
	lv = value.NumCoercion(lv)
	rv = value.NumCoercion(rv)
	if lv.Kind() == value.KInt && rv.Kind() == value.KInt {
		return ik(lv.AsInt(), rv.AsInt())
	}
	if lv.IsNumber() && rv.IsNumber() {
		return fk(lv.ToFloat(), rv.ToFloat())
	}
	return value.Nil, newTypeError("attempt to perform arithmetic on a non-numeric value")
}

func arithmeticKernels(op ast.BinOp) (intKernel, floatKernel, error) {
	switch op {
	case ast.OpAdd:
		return func(i, j int64) (value.Value, error) { return value.Int(i + j), nil },
			func(i, j float64) (value.Value, error) { return value.Float(i + j), nil }, nil
	case ast.OpSub:
		return func(i, j int64) (value.Value, error) { return value.Int(i - j), nil },
			func(i, j float64) (value.Value, error) { return value.Float(i - j), nil }, nil
	case ast.OpMul:
		return func(i, j int64) (value.Value, error) { return value.Int(i * j), nil },
			func(i, j float64) (value.Value, error) { return value.Float(i * j), nil }, nil
	case ast.OpDiv:
		return func(i, j int64) (value.Value, error) {
				if j == 0 {
					return value.Nil, newArithmeticError("division by zero")
				}
				return value.Float(float64(i) / float64(j)), nil
			},
			func(i, j float64) (value.Value, error) {
				if j == 0 {
					return value.Nil, newArithmeticError("division by zero")
				}
				return value.Float(i / j), nil
			}, nil
	case ast.OpFloorDiv:
		return func(i, j int64) (value.Value, error) {
				if j == 0 {
					return value.Nil, newArithmeticError("division by zero")
				}
				return value.Int(i / j), nil
			},
			func(i, j float64) (value.Value, error) {
				if j == 0 {
					return value.Nil, newArithmeticError("division by zero")
				}
				return value.Int(int64(math.Floor(i / j))), nil
			}, nil
	case ast.OpMod:
		return func(i, j int64) (value.Value, error) {
				if j == 0 {
					return value.Nil, newArithmeticError("division by zero")
				}
				return value.Int(value.TrueMod(i, j)), nil
			},
			func(i, j float64) (value.Value, error) {
				if j == 0 {
					return value.Nil, newArithmeticError("division by zero")
				}
				return value.Float(value.FloatMod(i, j)), nil
			}, nil
	case ast.OpPow:
		return func(i, j int64) (value.Value, error) { return value.Float(math.Pow(float64(i), float64(j))), nil },
			func(i, j float64) (value.Value, error) { return value.Float(math.Pow(i, j)), nil }, nil
	case ast.OpBitAnd:
		return func(i, j int64) (value.Value, error) { return value.Int(i & j), nil },
			func(i, j float64) (value.Value, error) { return value.Int(int64(i) & int64(j)), nil }, nil
	case ast.OpBitOr:
		return func(i, j int64) (value.Value, error) { return value.Int(i | j), nil },
			func(i, j float64) (value.Value, error) { return value.Int(int64(i) | int64(j)), nil }, nil
	case ast.OpBitXor:
		return func(i, j int64) (value.Value, error) { return value.Int(i ^ j), nil },
			func(i, j float64) (value.Value, error) { return value.Int(int64(i) ^ int64(j)), nil }, nil
	case ast.OpShl:
		return func(i, j int64) (value.Value, error) { return value.Int(value.SafeShl(i, j)), nil },
			func(i, j float64) (value.Value, error) { return value.Int(value.SafeShl(int64(i), int64(j))), nil }, nil
	case ast.OpShr:
		return func(i, j int64) (value.Value, error) { return value.Int(value.SafeShr(i, j)), nil },
			func(i, j float64) (value.Value, error) { return value.Int(value.SafeShr(int64(i), int64(j))), nil }, nil
	}
	return nil, nil, newOtherError("unknown binary operator %d", op)
}
