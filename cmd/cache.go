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
	"errors"
	"fmt"

	"github.com/samply/qmctl/store"
	"github.com/spf13/cobra"
)

var errNoCache = errors.New("no result cache configured. Use --cache-dir")

// cachePrefix returns the key prefix of all results or of the results of
// scenario.
func cachePrefix(args []string) []byte {
	if len(args) == 0 {
		return []byte("result/")
	}
	return []byte("result/" + args[0] + "/")
}

func withStore(fn func(st *store.Store) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	if st == nil {
		return errNoCache
	}
	defer closeStore(st)
	return fn(st)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspects the Result Cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "ls [scenario]",
	Short: "Lists cached results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			keys, err := st.Keys(cachePrefix(args))
			if err != nil {
				return err
			}
			for _, key := range keys {
				record, err := st.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  E = %.6f  %s  %s\n", key, record.Energy,
					record.SolvedAt.Format("2006-01-02 15:04:05"), record.RunID)
			}
			return nil
		})
	},
}

var cacheRemoveCmd = &cobra.Command{
	Use:   "rm [scenario]",
	Short: "Removes cached results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			keys, err := st.Keys(cachePrefix(args))
			if err != nil {
				return err
			}
			for _, key := range keys {
				if err := st.Delete(key); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached results.\n", len(keys))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheRemoveCmd)
}
