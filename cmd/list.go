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

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the Built-in Scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		scenarios := data.Builtins()
		var maxNameLen int
		for _, s := range scenarios {
			maxNameLen = max(maxNameLen, len(s.Name))
		}
		for _, s := range scenarios {
			fmt.Fprintf(cmd.OutOrStdout(), "%-*s : %s\n", maxNameLen, s.Name, s.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
