// Copyright 2019 - 2025 The Samply Community
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


package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", FmtErrors(nil))
	})

	t.Run("Sorted and aligned", func(t *testing.T) {
		errs := map[string]error{
			"lennard-jones": errors.New("error in series[0]: energy search did not converge"),
			"box":           errors.New("unknown potential"),
		}
		assert.Equal(t, `box           : unknown potential
lennard-jones : error in series[0]: energy search did not converge`, FmtErrors(errs))
	})

	t.Run("Multi-line", func(t *testing.T) {
		errs := map[string]error{"a": errors.New("first\nsecond")}
		assert.Equal(t, "a : first\n    second", FmtErrors(errs))
	})
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", Indent(2, "a\nb"))
	assert.Equal(t, "a\n  b", IndentExceptFirstLine(2, "a\nb"))
}
