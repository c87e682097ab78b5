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


package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheCmd(t *testing.T) {
	t.Run("NoCacheDir", func(t *testing.T) {
		_, err := execute(t, "cache", "ls")
		assert.ErrorIs(t, err, errNoCache)
	})

	cache := filepath.Join(t.TempDir(), "cache")
	_, _, dirs := outputDirs(t)
	solve := append([]string{"solve", "harmonic-oscillator-matching", "--no-plot", "--cache-dir", cache}, dirs...)
	_, err := execute(t, solve...)
	require.NoError(t, err)

	t.Run("List", func(t *testing.T) {
		out, err := execute(t, "cache", "ls", "--cache-dir", cache)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "result/harmonic-oscillator-matching/0/"))
		assert.True(t, strings.HasPrefix(lines[1], "result/harmonic-oscillator-matching/1/"))
		assert.Contains(t, lines[0], "E = 1.")
	})

	t.Run("ListOtherScenario", func(t *testing.T) {
		out, err := execute(t, "cache", "ls", "double-well", "--cache-dir", cache)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("SolveUsesCache", func(t *testing.T) {
		out, err := execute(t, solve...)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "Duration  : cached\n"))
	})

	t.Run("Remove", func(t *testing.T) {
		out, err := execute(t, "cache", "rm", "harmonic-oscillator-matching", "--cache-dir", cache)
		require.NoError(t, err)
		assert.Equal(t, "Removed 2 cached results.\n", out)

		out, err = execute(t, "cache", "ls", "--cache-dir", cache)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
