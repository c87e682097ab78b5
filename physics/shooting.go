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

package physics

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Parity of a wavefunction in a potential with V(x) = V(-x).
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// ParseParity accepts "even" and "odd".
func ParseParity(s string) (Parity, error) {
	switch s {
	case "even", "":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return Even, fmt.Errorf("invalid parity `%s`. Must be one of: even, odd", s)
	}
}

// ShootingConfig configures a ShootingSolver.
type ShootingConfig struct {
	Steps                 int
	StepSize              float64
	InitialEnergy         float64
	InitialEnergyStepSize float64
	WavefunctionCutoff    float64
	EnergyStepSizeCutoff  float64
	Potential             Potential
	Parity                Parity
	MaxIterations         int
	Logger                *zap.Logger
}

// DefaultShootingConfig returns a config with the usual energy search
// settings: an initial energy step of 10, a divergence cutoff of 300 and an
// energy resolution of 1e-6.
func DefaultShootingConfig(steps int, stepSize, energy float64, potential Potential, parity Parity) ShootingConfig {
	return ShootingConfig{
		Steps:                 steps,
		StepSize:              stepSize,
		InitialEnergy:         energy,
		InitialEnergyStepSize: 10,
		WavefunctionCutoff:    300,
		EnergyStepSizeCutoff:  1e-6,
		Potential:             potential,
		Parity:                parity,
		MaxIterations:         defaultMaxIterations,
	}
}

func (c ShootingConfig) validate() error {
	if c.Steps < 3 {
		return invalidConfig("steps must be at least 3, got %d", c.Steps)
	}
	if c.StepSize <= 0 {
		return invalidConfig("step size must be positive, got %g", c.StepSize)
	}
	if c.InitialEnergyStepSize == 0 {
		return invalidConfig("initial energy step size must not be zero")
	}
	if c.EnergyStepSizeCutoff <= 0 {
		return invalidConfig("energy step size cutoff must be positive, got %g", c.EnergyStepSizeCutoff)
	}
	if c.WavefunctionCutoff <= 0 {
		return invalidConfig("wavefunction cutoff must be positive, got %g", c.WavefunctionCutoff)
	}
	if c.Potential == nil {
		return invalidConfig("missing potential")
	}
	return nil
}

// ShootingSolver integrates the wavefunction outward from the origin and
// adjusts the energy until the tail stops diverging. Only symmetric
// potentials are supported, the negative half follows from the parity.
type ShootingSolver struct {
	config         ShootingConfig
	logger         *zap.Logger
	energy         float64
	energyStepSize float64
	lastDiverge    float64
	iterations     int
	wavefunction   []float64
}

// NewShootingSolver validates config and returns a solver in its initial
// state.
func NewShootingSolver(config ShootingConfig) (*ShootingSolver, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = defaultMaxIterations
	}
	s := &ShootingSolver{config: config, logger: config.Logger}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.Reset()
	return s, nil
}

func (s *ShootingSolver) Config() ShootingConfig {
	return s.config
}

func (s *ShootingSolver) Reset() {
	s.energy = s.config.InitialEnergy
	s.energyStepSize = s.config.InitialEnergyStepSize
	s.lastDiverge = 0
	s.iterations = 0
	s.wavefunction = make([]float64, 0, s.config.Steps)
}

func (s *ShootingSolver) Energy() float64 {
	return s.energy
}

func (s *ShootingSolver) Iterations() int {
	return s.iterations
}

// step appends the next value using the three-point finite difference
// approximation around the last value.
func (s *ShootingSolver) step() {
	i := len(s.wavefunction) - 1
	h := s.config.StepSize
	x := float64(i) * h
	next := 2*s.wavefunction[i] - s.wavefunction[i-1] -
		2*(s.energy-s.config.Potential(x))*h*h*s.wavefunction[i]
	s.wavefunction = append(s.wavefunction, next)
}

func (s *ShootingSolver) last() float64 {
	return s.wavefunction[len(s.wavefunction)-1]
}

func (s *ShootingSolver) isDiverging() bool {
	return math.Abs(s.last()) > s.config.WavefunctionCutoff
}

// resetWavefunction sets the first two values. Even wavefunctions start flat
// at one, odd ones start at zero with unit slope.
func (s *ShootingSolver) resetWavefunction() {
	s.wavefunction = s.wavefunction[:0]
	if s.config.Parity == Odd {
		s.wavefunction = append(s.wavefunction, 0, s.config.StepSize)
	} else {
		s.wavefunction = append(s.wavefunction, 1, 1)
	}
}

// computeWavefunction integrates until the requested number of steps is
// reached or the wavefunction diverges.
func (s *ShootingSolver) computeWavefunction() {
	s.resetWavefunction()
	for len(s.wavefunction) < s.config.Steps {
		if s.isDiverging() {
			break
		}
		s.step()
	}
}

func (s *ShootingSolver) Solve(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.computeWavefunction()
		s.iterations++

		if math.Abs(s.energyStepSize) <= s.config.EnergyStepSizeCutoff {
			s.logger.Debug("shooting converged",
				zap.Stringer("parity", s.config.Parity),
				zap.Float64("energy", s.energy),
				zap.Int("iterations", s.iterations))
			return nil
		}
		if s.iterations >= s.config.MaxIterations {
			return fmt.Errorf("%w: shooting stopped at E = %g after %d iterations",
				ErrNotConverged, s.energy, s.iterations)
		}

		// The tail flips its sign whenever the energy crosses an eigenvalue.
		if s.last()*s.lastDiverge < 0 {
			s.energyStepSize = -s.energyStepSize / 2
		}

		s.energy += s.energyStepSize
		if s.last() >= 0 {
			s.lastDiverge = 1
		} else {
			s.lastDiverge = -1
		}
	}
}

// WavefunctionPoints mirrors the computed half onto negative x according to
// the parity. The origin appears once.
func (s *ShootingSolver) WavefunctionPoints() []Point {
	n := len(s.wavefunction)
	if n == 0 {
		return nil
	}
	sign := 1.0
	if s.config.Parity == Odd {
		sign = -1.0
	}

	points := make([]Point, 0, 2*n-1)
	for i := n - 1; i > 0; i-- {
		points = append(points, Point{X: -float64(i) * s.config.StepSize, Psi: sign * s.wavefunction[i]})
	}
	for i, psi := range s.wavefunction {
		points = append(points, Point{X: float64(i) * s.config.StepSize, Psi: psi})
	}
	return points
}
