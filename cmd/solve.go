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
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/samply/qmctl/data"
	"github.com/samply/qmctl/runner"
	"github.com/spf13/cobra"
)

var noData bool
var noPlot bool
var noOverwrite bool

// loadScenario returns the built-in scenario with the name arg or reads arg
// as YAML file if it has a .yaml or .yml extension.
func loadScenario(arg string) (*data.Scenario, error) {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return data.ReadScenarioFile(arg)
	}
	s, err := data.Builtin(arg)
	if err != nil {
		return nil, fmt.Errorf("%w. Must be one of: %s", err, strings.Join(data.BuiltinNames(), ", "))
	}
	return &s, nil
}

var solveCmd = &cobra.Command{
	Use:   "solve [scenario|file.yaml]",
	Short: "Solves a Scenario",
	Long: `Solves a built-in scenario or a scenario given as YAML file.

The wavefunctions of all series are written as gnuplot data file to
<data-dir>/<name>.txt and drawn into <img-dir>/<name>.png. Energy, node
count, iterations and duration of every series are printed afterwards.

Example:

  qmctl solve double-well
  qmctl solve my-scenario.yaml --no-plot`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return data.BuiltinNames(), cobra.ShellCompDirectiveDefault
	},
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("requires exactly 1 argument: a scenario name or file")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadScenario(args[0])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(st)

		r := newRunner(st, !noOverwrite)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		result, err := r.Solve(ctx, *scenario)
		if err != nil {
			return err
		}
		return renderReport(cmd.OutOrStdout(), []*runner.Result{result})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().BoolVar(&noData, "no-data", false, "don't write the data file")
	solveCmd.Flags().BoolVar(&noPlot, "no-plot", false, "don't render the image")
	solveCmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "fail instead of replacing existing output files")
}
