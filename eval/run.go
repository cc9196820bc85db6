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

// Run evaluates a top-level block against a fresh State and returns the
// values of the first Return it surfaces, or nil if the block falls off
// its end without one. A top-level Break is a programmer error in the
// AST (there is no enclosing loop to break out of) and is reported as
// an OtherError rather than silently discarded.
func Run(block *ast.Block) ([]value.Value, error) {
	st := state.New()
	flow, err := ExecBlock(block, st)
	if err != nil {
		return nil, err
	}
	switch flow.Kind {
	case FlowReturn:
		return flow.Values, nil
	case FlowBreak:
		return nil, newOtherError("break statement outside of a loop")
	default:
		return nil, nil
	}
}
