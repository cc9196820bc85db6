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

import (
	"testing"

	"github.com/pkg/errors"
)

func checkInt64(t *testing.T, got, want int64, desc string) {
	t.Helper()
	if got != want {
		t.Errorf("%+v", errors.Errorf("%s: got %d, want %d", desc, got, want))
	}
}

func TestTrueMod(t *testing.T) {
	checkInt64(t, TrueMod(5, 3), 2, "5 %% 3")
	checkInt64(t, TrueMod(-5, 3), 1, "-5 %% 3")
	checkInt64(t, TrueMod(5, -3), -1, "5 %% -3")
	checkInt64(t, TrueMod(-5, -3), -2, "-5 %% -3")
}

func TestSafeShl(t *testing.T) {
	checkInt64(t, SafeShl(1, 4), 16, "1 << 4")
	checkInt64(t, SafeShl(1, 64), 0, "1 << 64 saturates")
	checkInt64(t, SafeShl(1, -4), 0, "1 << -4 == 1 >> 4")
	checkInt64(t, SafeShl(256, -4), 16, "256 << -4 == 256 >> 4")
}

func TestSafeShr(t *testing.T) {
	checkInt64(t, SafeShr(16, 4), 1, "16 >> 4")
	checkInt64(t, SafeShr(1, 64), 0, "1 >> 64 saturates")
}

func TestFloatMod(t *testing.T) {
	if got := FloatMod(5.5, 2.0); got != 1.5 {
		t.Errorf("%+v", errors.Errorf("FloatMod(5.5, 2.0): got %v, want 1.5", got))
	}
	if got := FloatMod(-5.5, 2.0); got != 0.5 {
		t.Errorf("%+v", errors.Errorf("FloatMod(-5.5, 2.0): got %v, want 0.5", got))
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(Int(42)); got != "42" {
		t.Errorf("%+v", errors.Errorf("FormatNumber(Int(42)): got %q, want \"42\"", got))
	}
	if got := FormatNumber(Float(1.5)); got != "1.5" {
		t.Errorf("%+v", errors.Errorf("FormatNumber(Float(1.5)): got %q, want \"1.5\"", got))
	}
}
