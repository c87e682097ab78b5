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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllCmd(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d, i, dirs := outputDirs(t)
		args := append([]string{"run-all", "harmonic-oscillator-matching", "square-well-shooting-even", "--no-progress"}, dirs...)
		out, err := execute(t, args...)
		require.NoError(t, err)

		assert.Contains(t, out, "Scenario    : harmonic-oscillator-matching\n")
		assert.Contains(t, out, "Scenario    : square-well-shooting-even\n")
		assert.Contains(t, out, "Scenarios	[total, concurrency]	2, 2\n")
		assert.Contains(t, out, "100.00 %")
		assert.NotContains(t, out, "Errors:")

		for _, name := range []string{"harmonic-oscillator-matching", "square-well-shooting-even"} {
			assert.FileExists(t, filepath.Join(d, name+".txt"))
			assert.FileExists(t, filepath.Join(i, name+".png"))
		}
	})

	t.Run("PartialFailure", func(t *testing.T) {
		failing := strings.Replace(harmonicYaml, "energyStepSizeCutoff: 0.00001", "energyStepSizeCutoff: 1e-300", 1)
		filename := filepath.Join(t.TempDir(), "failing.yaml")
		require.NoError(t, os.WriteFile(filename, []byte(failing), 0644))

		d, i, dirs := outputDirs(t)
		args := append([]string{"run-all", filename, "harmonic-oscillator-matching", "--no-progress", "--no-plot", "-c", "1"}, dirs...)
		out, err := execute(t, args...)
		assert.EqualError(t, err, "1 of 2 scenarios failed")
		assert.NotContains(t, out, "Usage:")

		assert.Contains(t, out, "Scenario    : harmonic-oscillator-matching\n")
		assert.Contains(t, out, "50.00 %")
		assert.Contains(t, out, "Errors:\n  my-harmonic : error in series[0]: energy search did not converge")
		assert.FileExists(t, filepath.Join(d, "harmonic-oscillator-matching.txt"))
		assert.NoFileExists(t, filepath.Join(d, "my-harmonic.txt"))
		assert.NoFileExists(t, filepath.Join(i, "harmonic-oscillator-matching.png"))
	})

	t.Run("NoData", func(t *testing.T) {
		d, i, dirs := outputDirs(t)
		args := append([]string{"run-all", "harmonic-oscillator-matching", "--no-progress", "--no-data"}, dirs...)
		_, err := execute(t, args...)
		require.NoError(t, err)

		assert.NoFileExists(t, filepath.Join(d, "harmonic-oscillator-matching.txt"))
		assert.FileExists(t, filepath.Join(i, "harmonic-oscillator-matching.png"))
	})

	t.Run("InvalidConcurrency", func(t *testing.T) {
		_, err := execute(t, "run-all", "-c", "0")
		assert.EqualError(t, err, "concurrency has to be at least 1, got 0")
	})

	t.Run("UnknownScenario", func(t *testing.T) {
		_, err := execute(t, "run-all", "hydrogen")
		assert.ErrorContains(t, err, "unknown scenario `hydrogen`")
	})
}

func TestScenariosToRun(t *testing.T) {
	all, err := scenariosToRun(nil)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	some, err := scenariosToRun([]string{"double-well", "lennard-jones"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "lennard-jones", some[1].Name)
}
