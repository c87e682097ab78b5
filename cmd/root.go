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
	"fmt"
	"os"

	"github.com/samply/qmctl/runner"
	"github.com/samply/qmctl/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var dataDir string
var imgDir string
var cacheDir string
var noProgress bool
var verbose bool

var logger = zap.NewNop()

// initLogger builds the production logger. Without --verbose only warnings
// and errors are logged, so that reports on stdout stay readable.
func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// openStore opens the result cache. Returns nil without error if no cache
// directory is configured.
func openStore() (*store.Store, error) {
	if cacheDir == "" {
		return nil, nil
	}
	return store.Open(cacheDir)
}

func closeStore(st *store.Store) {
	if st == nil {
		return
	}
	if err := st.Close(); err != nil {
		logger.Warn("error while closing the result cache", zap.Error(err))
	}
}

func newRunner(st *store.Store, overwrite bool) *runner.Runner {
	return &runner.Runner{
		DataDir:   dataDir,
		ImgDir:    imgDir,
		NoData:    noData,
		NoPlot:    noPlot,
		Overwrite: overwrite,
		Store:     st,
		Logger:    logger,
	}
}

var rootCmd = &cobra.Command{
	Use:   "qmctl",
	Short: "Solve the Schrödinger Equation from the Command Line",
	Long: `qmctl is a command line tool that searches energy eigenstates of the
one-dimensional time-independent Schrödinger equation.

It solves scenarios with the shooting, the matching and the variational
Monte-Carlo method, writes the wavefunctions as gnuplot data files and
renders them as PNG images.`,
	Version:           "0.1.0",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory of the data files")
	rootCmd.PersistentFlags().StringVar(&imgDir, "img-dir", "img", "directory of the images")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "directory of the result cache, empty disables the cache")
	rootCmd.PersistentFlags().BoolVarP(&noProgress, "no-progress", "", false, "don't show progress bar")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
}
