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
	"strings"
	"time"
)

// RunStats collects the outcome of solving a batch of scenarios.
type RunStats struct {
	Scenarios, Concurrency int
	SeriesTotal            int
	CachedSeries           int
	SolveDurations         []float64
	TotalBytesOut          int64
	TotalDuration          time.Duration
	Errors                 map[string]error
}

func (rs *RunStats) String() string {

	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Scenarios	[total, concurrency]	%d, %d\n", rs.Scenarios, rs.Concurrency))

	if rs.Scenarios > 0 {
		builder.WriteString(fmt.Sprintf("Success		[ratio]			%.2f %%\n",
			float32(rs.Scenarios-len(rs.Errors))/float32(rs.Scenarios)*100))
	}

	builder.WriteString(fmt.Sprintf("Series		[total, cached]		%d, %d\n", rs.SeriesTotal, rs.CachedSeries))
	builder.WriteString(fmt.Sprintf("Duration	[total]			%s\n", FmtDurationHumanReadable(rs.TotalDuration)))

	if len(rs.SolveDurations) > 0 {
		p := CalculateDurationStatistics(rs.SolveDurations)
		builder.WriteString(fmt.Sprintf("Solve Durations	[mean, 50, 95, 99, max]	%s, %s, %s, %s, %s\n", p.Mean, p.Q50, p.Q95, p.Q99, p.Max))
	}

	builder.WriteString(fmt.Sprintf("Bytes Out	[total]			%s\n", FmtBytesHumanReadable(float32(rs.TotalBytesOut))))

	if len(rs.Errors) > 0 {
		builder.WriteString("\nErrors:\n")
		builder.WriteString(Indent(2, FmtErrors(rs.Errors)) + "\n")
	}

	return builder.String()
}
