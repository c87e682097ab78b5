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
	_ "embed"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/samply/qmctl/runner"
	"github.com/samply/qmctl/util"
)

//go:embed report.tmpl
var reportTemplate string

var reportFuncs = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"duration": util.FmtDurationHumanReadable,
	"floats": func(fs []float64) string {
		s := make([]string, len(fs))
		for i, f := range fs {
			s[i] = strconv.FormatFloat(f, 'f', 4, 64)
		}
		return strings.Join(s, ", ")
	},
}

var report = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// renderReport writes a summary of results.
func renderReport(wr io.Writer, results []*runner.Result) error {
	return report.Execute(wr, results)
}
