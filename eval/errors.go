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
	"fmt"

	"github.com/pkg/errors"
	"github.com/seo2-lang/seo2/value"
)

// Kind identifies one of the five error kinds spec.md §7 names.
type Kind uint8

// Error kinds.
const (
	TypeError Kind = iota
	IndexError
	ArithmeticError
	OtherError
	NotImplementedError
)

func (k Kind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case IndexError:
		return "IndexError"
	case ArithmeticError:
		return "ArithmeticError"
	case OtherError:
		return "OtherError"
	case NotImplementedError:
		return "NotImplementedError"
	default:
		return "UnknownError"
	}
}

// Error is the evaluator's tagged error value. Messages are
// human-readable diagnostics, not part of the contract (spec.md §7).
type Error struct {
	Kind Kind
	Msg  string
	// cause carries a stack trace (errors.New or errors.WithStack) for
	// diagnostics.
	cause error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Msg }

// Unwrap exposes the wrapped cause, if any, so errors.Is/As work across
// this boundary.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Msg: msg, cause: errors.New(msg)}
}

func newTypeError(format string, args ...interface{}) error {
	return newError(TypeError, format, args...)
}

func newArithmeticError(format string, args ...interface{}) error {
	return newError(ArithmeticError, format, args...)
}

func newOtherError(format string, args ...interface{}) error {
	return newError(OtherError, format, args...)
}

func newNotImplemented(what string) error {
	return newError(NotImplementedError, "not implemented: %s", what)
}

// wrapKeyError turns a *value.KeyError (raised by Table.Set for a Nil
// or NaN key) into the public IndexError kind, attaching a stack trace
// at the point it crossed into the eval package.
func wrapKeyError(err error) error {
	if err == nil {
		return nil
	}
	var ke *value.KeyError
	if errors.As(err, &ke) {
		return &Error{Kind: IndexError, Msg: ke.Msg, cause: errors.WithStack(err)}
	}
	return err
}
