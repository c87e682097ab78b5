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


package util

import (
	"fmt"
	"sort"
	"strings"
)

// FmtErrors formats errors keyed by scenario name, one per line in key order.
// Multi-line errors are indented below their key.
func FmtErrors(errs map[string]error) string {
	names := make([]string, 0, len(errs))
	maxLen := 0
	for name := range errs {
		names = append(names, name)
		maxLen = max(maxLen, len(name))
	}
	sort.Strings(names)

	builder := strings.Builder{}
	for _, name := range names {
		builder.WriteString(fmt.Sprintf("%-*s : %s\n", maxLen, name, IndentExceptFirstLine(maxLen+3, errs[name].Error())))
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func Indent(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)
	return pad + IndentExceptFirstLine(spaces, v)
}

func IndentExceptFirstLine(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)
	return strings.ReplaceAll(v, "\n", "\n"+pad)
}
