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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	dataDir = "data"
	imgDir = "img"
	cacheDir = ""
	noProgress = false
	verbose = false
	noData = false
	noPlot = false
	noOverwrite = false
	concurrency = 2
	cleanAll = false
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// outputDirs returns the flags pointing data and images into a fresh
// temporary directory.
func outputDirs(t *testing.T) (string, string, []string) {
	dir := t.TempDir()
	d, i := filepath.Join(dir, "data"), filepath.Join(dir, "img")
	return d, i, []string{"--data-dir", d, "--img-dir", i}
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "qmctl version 0.1.0\n", out)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := execute(t, "upload")
	assert.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	t.Run("Builtin", func(t *testing.T) {
		s, err := loadScenario("double-well")
		require.NoError(t, err)
		assert.Equal(t, "double-well", s.Name)
	})

	t.Run("File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "mine.YML")
		require.NoError(t, os.WriteFile(filename, []byte(harmonicYaml), 0644))

		s, err := loadScenario(filename)
		require.NoError(t, err)
		assert.Equal(t, "my-harmonic", s.Name)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := loadScenario("hydrogen")
		assert.ErrorContains(t, err, "unknown scenario `hydrogen`. Must be one of: double-well, ")
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Equal(t, 8, bytes.Count([]byte(out), []byte("\n")))
	assert.Contains(t, out, fmt.Sprintf("%-28s : %s\n", "double-well", "Wavefunction in a double well potential using the matching method"))
}
