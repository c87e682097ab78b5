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

// Package runner solves scenarios and writes their data and image files.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/samply/qmctl/chart"
	"github.com/samply/qmctl/data"
	"github.com/samply/qmctl/physics"
	"github.com/samply/qmctl/store"
	"github.com/samply/qmctl/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SeriesResult is the solved eigenstate of one series.
type SeriesResult struct {
	Label      string
	Method     string
	Energy     float64
	Nodes      int
	Iterations int
	Duration   time.Duration
	Points     []physics.Point
	Cached     bool

	// TurningPoints are the classical turning points at Energy.
	TurningPoints []float64

	// MatchX is the matching point of the matching method.
	MatchX *float64
}

type Result struct {
	Scenario  string
	Series    []SeriesResult
	DataFile  string
	ImageFile string
	BytesOut  int64
	Duration  time.Duration
}

// Outcome is the result or error of one scenario of RunAll.
type Outcome struct {
	Scenario string
	Result   *Result
	Err      error
}

// Runner solves scenarios. The zero value solves without cache and writes
// nothing.
type Runner struct {
	DataDir, ImgDir string

	// NoData and NoPlot suppress the data and image files.
	NoData, NoPlot bool

	// Overwrite allows replacing existing output files.
	Overwrite bool

	// Store caches results if not nil.
	Store *store.Store

	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Solve solves every series of scenario and writes its output files.
func (r *Runner) Solve(ctx context.Context, scenario data.Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger().With(zap.String("scenario", scenario.Name))
	start := time.Now()

	result := &Result{Scenario: scenario.Name}
	for i, series := range scenario.Series {
		sr, err := r.solveSeries(ctx, logger, scenario.Name, i, series)
		if err != nil {
			return nil, fmt.Errorf("error in series[%d]: %w", i, err)
		}
		result.Series = append(result.Series, *sr)
	}

	if !r.NoData && r.DataDir != "" {
		result.DataFile = filepath.Join(r.DataDir, scenario.Name+".txt")
		n, err := r.writeFile(result.DataFile, func(w io.Writer) error {
			return writeData(w, result.Series)
		})
		if err != nil {
			return nil, err
		}
		result.BytesOut += n
	}

	if !r.NoPlot && r.ImgDir != "" {
		spec, err := chartSpec(scenario, result.Series)
		if err != nil {
			return nil, err
		}
		result.ImageFile = filepath.Join(r.ImgDir, scenario.Name+".png")
		n, err := r.writeFile(result.ImageFile, func(w io.Writer) error {
			return chart.Render(w, spec)
		})
		if err != nil {
			return nil, err
		}
		result.BytesOut += n
	}

	result.Duration = time.Since(start)
	logger.Info("solved scenario",
		zap.Int("series", len(result.Series)),
		zap.Duration("duration", result.Duration))
	return result, nil
}

// RunAll solves scenarios with at most concurrency scenarios at the same
// time. A failing scenario doesn't stop the others. onDone is called after
// each scenario from the solving goroutine and may be nil. Outcomes are in
// the order of scenarios.
func (r *Runner) RunAll(ctx context.Context, scenarios []data.Scenario, concurrency int, onDone func(Outcome)) []Outcome {
	outcomes := make([]Outcome, len(scenarios))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, scenario := range scenarios {
		g.Go(func() error {
			result, err := r.Solve(ctx, scenario)
			if err != nil {
				r.logger().Warn("scenario failed", zap.String("scenario", scenario.Name), zap.Error(err))
			}
			outcomes[i] = Outcome{Scenario: scenario.Name, Result: result, Err: err}
			if onDone != nil {
				onDone(outcomes[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// Stats summarizes outcomes of RunAll.
func Stats(outcomes []Outcome, concurrency int, total time.Duration) *util.RunStats {
	stats := &util.RunStats{
		Scenarios:     len(outcomes),
		Concurrency:   concurrency,
		TotalDuration: total,
		Errors:        make(map[string]error),
	}
	for _, o := range outcomes {
		if o.Err != nil {
			stats.Errors[o.Scenario] = o.Err
			continue
		}
		stats.TotalBytesOut += o.Result.BytesOut
		for _, s := range o.Result.Series {
			stats.SeriesTotal++
			if s.Cached {
				stats.CachedSeries++
				continue
			}
			stats.SolveDurations = append(stats.SolveDurations, s.Duration.Seconds())
		}
	}
	return stats
}

func (r *Runner) solveSeries(ctx context.Context, logger *zap.Logger, scenario string, index int, series data.Series) (*SeriesResult, error) {
	potential, err := physics.PotentialByName(series.Potential)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.Int("series", index), zap.String("method", series.Method))

	sr := &SeriesResult{Label: series.Label, Method: series.Method}
	if series.Method == data.MethodMatching {
		matchX := series.Matching.XMatch
		sr.MatchX = &matchX
	}

	key, err := cacheKey(scenario, index, series)
	if err != nil {
		return nil, err
	}
	if r.Store != nil {
		record, err := r.Store.Get(key)
		switch {
		case err == nil:
			logger.Debug("cache hit", zap.String("runId", record.RunID))
			sr.Energy = record.Energy
			sr.Iterations = record.Iterations
			sr.Points = record.Points
			sr.Cached = true
			r.finishSeries(logger, sr, potential)
			return sr, nil
		case !errors.Is(err, store.ErrNotFound):
			logger.Warn("error while reading the result cache", zap.Error(err))
		}
	}

	solver, err := r.newSolver(ctx, series, potential, logger)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := solver.Solve(ctx); err != nil {
		return nil, err
	}
	sr.Duration = time.Since(start)
	sr.Energy = solver.Energy()
	sr.Iterations = solver.Iterations()
	sr.Points = solver.WavefunctionPoints()
	r.finishSeries(logger, sr, potential)

	if r.Store != nil {
		record, err := store.NewRecord(sr.Energy, sr.Iterations, sr.Points)
		if err == nil {
			err = r.Store.Put(key, record)
		}
		if err != nil {
			logger.Warn("error while writing the result cache", zap.Error(err))
		}
	}
	return sr, nil
}

func (r *Runner) finishSeries(logger *zap.Logger, sr *SeriesResult, potential physics.Potential) {
	sr.Nodes = physics.Nodes(sr.Points)
	xs, _ := physics.Split(sr.Points)
	sr.TurningPoints = physics.TurningPoints(potential, sr.Energy, xs)
	logger.Debug("solved series",
		zap.Float64("energy", sr.Energy),
		zap.Int("nodes", sr.Nodes),
		zap.Int("iterations", sr.Iterations),
		zap.Float64s("turningPoints", sr.TurningPoints),
		zap.Bool("cached", sr.Cached),
		zap.Duration("duration", sr.Duration))
}

// cacheKey ignores the label, it doesn't change the result.
func cacheKey(scenario string, index int, series data.Series) ([]byte, error) {
	series.Label = ""
	return store.Key(scenario, index, series)
}

func (r *Runner) writeFile(path string, write func(io.Writer) error) (int64, error) {
	file, err := util.CreateOutputFile(path, r.Overwrite)
	if err != nil {
		return 0, err
	}
	if err := write(file); err != nil {
		file.Close()
		return 0, fmt.Errorf("error while writing %s: %w", path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return 0, err
	}
	return info.Size(), file.Close()
}

// writeData writes one block per series. Blocks are separated by two empty
// lines, so gnuplot can select them with `index`.
func writeData(w io.Writer, series []SeriesResult) error {
	for i, s := range series {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if err := physics.WritePoints(w, s.Energy, s.Points); err != nil {
			return err
		}
	}
	return nil
}

func chartSpec(scenario data.Scenario, series []SeriesResult) (chart.Spec, error) {
	spec := chart.Spec{
		Title:  scenario.Title,
		XMin:   scenario.Chart.XMin,
		XMax:   scenario.Chart.XMax,
		YMin:   scenario.Chart.YMin,
		YMax:   scenario.Chart.YMax,
		Marker: scenario.Chart.Marker,
	}
	if scenario.Reference != "" {
		reference, err := physics.ReferenceByName(scenario.Reference)
		if err != nil {
			return chart.Spec{}, err
		}
		spec.Reference = &reference
	}
	for _, s := range series {
		spec.Series = append(spec.Series, chart.Series{
			Label:  s.Label,
			Energy: s.Energy,
			Points: s.Points,
			MatchX: s.MatchX,
		})
	}
	return spec, nil
}
