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

	"github.com/samply/qmctl/data"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scenario|file.yaml]",
	Short: "Prints a Scenario as YAML",
	Long: `Prints a built-in scenario or a validated scenario file as YAML.

The output of a built-in scenario is a good starting point for own scenario
files:

  qmctl show double-well > my-double-well.yaml`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return data.BuiltinNames(), cobra.ShellCompDirectiveDefault
	},
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := loadScenario(args[0])
		if err != nil {
			return err
		}
		b, err := data.MarshalScenario(*scenario)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
