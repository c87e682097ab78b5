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
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/samply/qmctl/data"
	"github.com/samply/qmctl/runner"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var concurrency int

// scenariosToRun returns all built-in scenarios if args is empty.
func scenariosToRun(args []string) ([]data.Scenario, error) {
	if len(args) == 0 {
		return data.Builtins(), nil
	}
	scenarios := make([]data.Scenario, 0, len(args))
	for _, arg := range args {
		s, err := loadScenario(arg)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *s)
	}
	return scenarios, nil
}

var runAllCmd = &cobra.Command{
	Use:   "run-all [scenario|file.yaml]...",
	Short: "Solves all Scenarios",
	Long: `Solves all built-in scenarios or the given ones concurrently and
writes their data files and images.

A failing scenario doesn't stop the others. All failures are listed in the
summary and the command exits with a non-zero status.`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return data.BuiltinNames(), cobra.ShellCompDirectiveDefault
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if concurrency < 1 {
			return fmt.Errorf("concurrency has to be at least 1, got %d", concurrency)
		}
		scenarios, err := scenariosToRun(args)
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

		out := cmd.OutOrStdout()
		var progressOut io.Writer = out
		if noProgress {
			progressOut = io.Discard
		}
		progress := mpb.New(mpb.WithOutput(progressOut))
		bar := progress.AddBar(int64(len(scenarios)),
			mpb.BarRemoveOnComplete(),
			mpb.PrependDecorators(
				decor.Name("run-all", decor.WC{W: 8}),
				decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 60, decor.WC{W: 4}), "done"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)

		start := time.Now()
		outcomes := r.RunAll(ctx, scenarios, concurrency, func(o runner.Outcome) {
			if o.Err != nil {
				bar.Increment()
			} else {
				bar.EwmaIncrement(o.Result.Duration / time.Duration(concurrency))
			}
		})
		progress.Wait()

		results := make([]*runner.Result, 0, len(outcomes))
		for _, o := range outcomes {
			if o.Err == nil {
				results = append(results, o.Result)
			}
		}
		if err := renderReport(out, results); err != nil {
			return err
		}

		stats := runner.Stats(outcomes, concurrency, time.Since(start))
		fmt.Fprintf(out, "\n%s", stats)
		if len(stats.Errors) > 0 {
			return fmt.Errorf("%d of %d scenarios failed", len(stats.Errors), len(outcomes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runAllCmd)

	runAllCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 2, "number of scenarios solved in parallel")
	runAllCmd.Flags().BoolVar(&noData, "no-data", false, "don't write the data files")
	runAllCmd.Flags().BoolVar(&noPlot, "no-plot", false, "don't render the images")
	runAllCmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "fail instead of replacing existing output files")
}
