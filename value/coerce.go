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

import "strconv"

// BooleanCoercion maps Nil and Boolean(false) to false, and every other
// value (including zero and the empty string) to true.
func BooleanCoercion(v Value) bool { return v.Truthy() }

// NumCoercion attempts to parse a string into a Number (integer first,
// then float); on failure, or for any non-string value, it returns v
// unchanged. Used ahead of arithmetic and concatenation.
func NumCoercion(v Value) Value {
	if v.Kind() != KString {
		return v
	}
	s := v.AsString()
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return v
}
