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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seo2-lang/seo2/ast"
	"github.com/seo2-lang/seo2/state"
	"github.com/seo2-lang/seo2/value"
)

func litInt(n int64) ast.Expr   { return ast.Expr{Kind: ast.EInt, Int: n} }
func litFloat(f float64) ast.Expr { return ast.Expr{Kind: ast.EFloat, Float: f} }
func litStr(s string) ast.Expr  { return ast.Expr{Kind: ast.EString, Str: s} }
func litNil() ast.Expr          { return ast.Expr{Kind: ast.ENil} }

func neg(v ast.Expr) ast.Expr {
	return ast.Expr{Kind: ast.EUnary, UnOp: ast.OpNeg, Operand: &v}
}

func bin(op ast.BinOp, l, r ast.Expr) (value.Value, error) {
	return evalBinaryExpr(&l, &r, op, state.New())
}

// S1: arithmetic, including string->number coercion ahead of addition.
func TestS1Arithmetic(t *testing.T) {
	v, err := bin(ast.OpAdd, litInt(1), litInt(3))
	require.NoError(t, err)
	require.Equal(t, value.KInt, v.Kind())
	require.Equal(t, int64(4), v.AsInt())

	v, err = bin(ast.OpAdd, litInt(1), neg(litFloat(1.0)))
	require.NoError(t, err)
	require.Equal(t, value.KFloat, v.Kind())
	require.Equal(t, 0.0, v.AsFloat())

	v, err = bin(ast.OpAdd, litStr("1"), litInt(3))
	require.NoError(t, err)
	require.Equal(t, value.KInt, v.Kind())
	require.Equal(t, int64(4), v.AsInt())
}

// S2: modulo takes the sign of the divisor, for both int and float kernels.
func TestS2ModuloSign(t *testing.T) {
	v, err := bin(ast.OpMod, neg(litInt(4)), litInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(2), v.AsInt())

	v, err = bin(ast.OpMod, neg(litFloat(3.5)), litFloat(2.0))
	require.NoError(t, err)
	require.Equal(t, 0.5, v.AsFloat())
}

// S3: division, floor-division and modulo by zero all raise ArithmeticError.
func TestS3DivisionByZero(t *testing.T) {
	_, err := bin(ast.OpDiv, litInt(1), litInt(0))
	requireKind(t, err, ArithmeticError)

	_, err = bin(ast.OpFloorDiv, litInt(1), litInt(0))
	requireKind(t, err, ArithmeticError)

	_, err = bin(ast.OpMod, litInt(1), litInt(0))
	requireKind(t, err, ArithmeticError)
}

// S4: and/or short-circuit and yield one of their operands verbatim.
func TestS4ShortCircuitAndCoercion(t *testing.T) {
	v, err := bin(ast.OpAnd, litNil(), litFloat(1.5))
	require.NoError(t, err)
	require.True(t, v.IsNil())

	v, err = bin(ast.OpAnd, litFloat(3.5), litInt(10))
	require.NoError(t, err)
	require.Equal(t, int64(10), v.AsInt())

	v, err = bin(ast.OpOr, litNil(), litFloat(1.5))
	require.NoError(t, err)
	require.Equal(t, 1.5, v.AsFloat())

	v, err = bin(ast.OpOr, litFloat(3.5), litInt(10))
	require.NoError(t, err)
	require.Equal(t, 3.5, v.AsFloat())
}

func TestS4ShortCircuitSkipsRightOperand(t *testing.T) {
	st := state.New()
	st.Global().SetString("evaluated", value.Bool(false))
	// 1 / 0 raises ArithmeticError if it is ever evaluated.
	sideEffect := ast.Expr{Kind: ast.EBinary, BinOp: ast.OpDiv, Left: exprPtr(litInt(1)), Right: exprPtr(litInt(0))}

	falseLit := ast.Expr{Kind: ast.EBool, Bool: false}
	_, err := evalBinaryExpr(&falseLit, &sideEffect, ast.OpAnd, st)
	require.NoError(t, err)

	trueLit := ast.Expr{Kind: ast.EBool, Bool: true}
	_, err = evalBinaryExpr(&trueLit, &sideEffect, ast.OpOr, st)
	require.NoError(t, err)
}

// S5: string comparison succeeds lexicographically; mixed string/number
// comparison is a TypeError.
func TestS5ComparisonsAndTypeErrors(t *testing.T) {
	v, err := bin(ast.OpLe, litStr("abc"), litStr("bcd"))
	require.NoError(t, err)
	require.True(t, v.AsBool())

	_, err = bin(ast.OpLe, litStr("abc"), litFloat(1.0))
	requireKind(t, err, TypeError)
}

func exprPtr(e ast.Expr) *ast.Expr { return &e }

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	require.Error(t, err)
	ee, ok := err.(*Error)
	require.Truef(t, ok, "expected *eval.Error, got %T", err)
	require.Equal(t, want, ee.Kind)
}
