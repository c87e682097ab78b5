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

package runner

import (
	"context"
	"fmt"

	"github.com/samply/qmctl/data"
	"github.com/samply/qmctl/physics"
	"go.uber.org/zap"
)

func (r *Runner) newSolver(ctx context.Context, series data.Series, potential physics.Potential, logger *zap.Logger) (physics.Solver, error) {
	switch series.Method {
	case data.MethodShooting:
		return newShootingSolver(series.Shooting, potential, logger)
	case data.MethodMatching:
		return physics.NewMatchingSolver(matchingConfig(series.Matching, potential, logger))
	case data.MethodVariational:
		return r.newVariationalSolver(ctx, series.Variational, potential, logger)
	default:
		return nil, fmt.Errorf("unknown method `%s`", series.Method)
	}
}

func newShootingSolver(params *data.Shooting, potential physics.Potential, logger *zap.Logger) (*physics.ShootingSolver, error) {
	parity, err := physics.ParseParity(params.Parity)
	if err != nil {
		return nil, err
	}
	config := physics.DefaultShootingConfig(params.Steps, params.StepSize, params.InitialEnergy, potential, parity)
	if params.InitialEnergyStepSize != 0 {
		config.InitialEnergyStepSize = params.InitialEnergyStepSize
	}
	if params.WavefunctionCutoff != 0 {
		config.WavefunctionCutoff = params.WavefunctionCutoff
	}
	if params.EnergyStepSizeCutoff != 0 {
		config.EnergyStepSizeCutoff = params.EnergyStepSizeCutoff
	}
	config.Logger = logger
	return physics.NewShootingSolver(config)
}

func matchingConfig(params *data.Matching, potential physics.Potential, logger *zap.Logger) physics.MatchingConfig {
	return physics.MatchingConfig{
		XMin:                  params.XMin,
		XMax:                  params.XMax,
		XMatch:                params.XMatch,
		StepSize:              params.StepSize,
		InitialEnergy:         params.InitialEnergy,
		InitialEnergyStepSize: params.InitialEnergyStepSize,
		EnergyStepSizeCutoff:  params.EnergyStepSizeCutoff,
		Potential:             potential,
		UsingNumerov:          params.UsingNumerov,
		GuardingScaleFactor:   params.GuardingScaleFactor,
		Logger:                logger,
	}
}

// newVariationalSolver seeds the trial wavefunction with the result of a
// matching run if the parameters ask for one.
func (r *Runner) newVariationalSolver(ctx context.Context, params *data.Variational, potential physics.Potential, logger *zap.Logger) (*physics.VariationalSolver, error) {
	solver, err := physics.NewVariationalSolver(physics.VariationalConfig{
		XMin:       params.XMin,
		XMax:       params.XMax,
		StepSize:   params.StepSize,
		Potential:  potential,
		Iterations: params.Iterations,
		MaxDelta:   params.MaxDelta,
		Seed:       params.Seed,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	if params.SeedFromMatching == nil {
		return solver, nil
	}

	seeder, err := physics.NewMatchingSolver(matchingConfig(params.SeedFromMatching, potential, logger))
	if err != nil {
		return nil, fmt.Errorf("error in the seed: %w", err)
	}
	if err := seeder.Solve(ctx); err != nil {
		return nil, fmt.Errorf("error in the seed: %w", err)
	}
	points := seeder.WavefunctionPoints()
	if params.NegateSeed {
		for i := range points {
			points[i].Psi = -points[i].Psi
		}
	}
	logger.Debug("seeded trial wavefunction", zap.Float64("seedEnergy", seeder.Energy()))
	if err := solver.SetWavefunction(points); err != nil {
		return nil, err
	}
	return solver, nil
}
