package util

import (
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DurationStatistics represents statistics about measured durations.
// Comprises information about the mean and max as well as different
// percentiles (50, 95 and 99).
type DurationStatistics struct {
	Mean, Q50, Q95, Q99, Max time.Duration
}

// CalculateDurationStatistics calculates statistics over durations given in
// seconds. The values are sorted in place.
func CalculateDurationStatistics(durations []float64) DurationStatistics {
	if len(durations) == 0 {
		return DurationStatistics{}
	}

	slices.Sort(durations)
	return DurationStatistics{
		Mean: seconds(floats.Sum(durations) / float64(len(durations))),
		Q50:  seconds(stat.Quantile(0.5, stat.Empirical, durations, nil)),
		Q95:  seconds(stat.Quantile(0.95, stat.Empirical, durations, nil)),
		Q99:  seconds(stat.Quantile(0.99, stat.Empirical, durations, nil)),
		Max:  seconds(durations[len(durations)-1]),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s*1000) * time.Millisecond
}

// FmtBytesHumanReadable takes an amount of bytes and returns them in a human readable form
// up to a unit of PiB.
func FmtBytesHumanReadable(bytes float32) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

	var unitIdx int
	for bytes > 1024 && unitIdx < len(units)-1 {
		bytes = bytes / 1024
		unitIdx++
	}

	return fmt.Sprintf("%.2f %s", bytes, units[unitIdx])
}

// FmtDurationHumanReadable takes a duration and returns it in a human readable form.
// This is basically equivalent to time.Duration.Round(time.Second) with the following differences:
//	- durations under a minute get printed with millisecond precision
//	- durations equal or above a minute get printed with second precision
func FmtDurationHumanReadable(d time.Duration) string {
	if d < time.Minute {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
