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
	"path/filepath"

	"github.com/spf13/cobra"
)

var cleanAll bool

// outputPatterns are the files written by solve and run-all.
func outputPatterns() []string {
	return []string{
		filepath.Join(imgDir, "*.png"),
		filepath.Join(dataDir, "*.txt"),
	}
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Deletes Generated Files",
	Long: `Deletes all images (*.png) in the image directory and all data files
(*.txt) in the data directory. With --all, the result cache is deleted as
well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var deleted int
		for _, pattern := range outputPatterns() {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return err
			}
			for _, match := range matches {
				if err := os.Remove(match); err != nil {
					return fmt.Errorf("could not delete %s: %w", match, err)
				}
				logger.Debug("deleted " + match)
				deleted++
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d files.\n", deleted)

		if cleanAll && cacheDir != "" {
			if err := os.RemoveAll(cacheDir); err != nil {
				return fmt.Errorf("could not delete the result cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted the result cache %s.\n", cacheDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "delete the result cache too")
}
