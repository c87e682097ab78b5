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
	"math/rand/v2"

	"github.com/samply/qmctl/numeric"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	defaultVariationalIterations = 100000
	defaultMaxDelta              = 0.01
	variationalLogInterval       = 10000
)

// VariationalConfig configures a VariationalSolver.
type VariationalConfig struct {
	XMin, XMax float64
	StepSize   float64
	Potential  Potential

	// Iterations is the number of random trial moves. Defaults to 100000.
	Iterations int

	// MaxDelta bounds the change of a single grid value per trial move.
	// Defaults to 0.01.
	MaxDelta float64

	Seed   uint64
	Logger *zap.Logger
}

func (c VariationalConfig) validate() error {
	if c.StepSize <= 0 {
		return invalidConfig("step size must be positive, got %g", c.StepSize)
	}
	if c.XMax <= c.XMin {
		return invalidConfig("x range [%g, %g] is empty", c.XMin, c.XMax)
	}
	if gridSteps(c.XMin, c.XMax, c.StepSize) < 3 {
		return invalidConfig("x range [%g, %g] needs at least 3 grid points", c.XMin, c.XMax)
	}
	if c.Potential == nil {
		return invalidConfig("missing potential")
	}
	if c.Iterations < 0 {
		return invalidConfig("iterations must not be negative, got %d", c.Iterations)
	}
	if c.MaxDelta < 0 {
		return invalidConfig("max delta must not be negative, got %g", c.MaxDelta)
	}
	return nil
}

// VariationalSolver lowers the energy expectation value of a trial
// wavefunction by random local changes, keeping only those that lower it.
type VariationalSolver struct {
	config     VariationalConfig
	logger     *zap.Logger
	steps      int
	potential  []float64
	energy     float64
	iterations int
	seed       []float64
	rnd        *rand.Rand
	delta      distuv.Uniform

	wavefunction []float64
	hpsi, psiSq  []float64
}

// NewVariationalSolver validates config and returns a solver with the default
// trial wavefunction.
func NewVariationalSolver(config VariationalConfig) (*VariationalSolver, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.Iterations == 0 {
		config.Iterations = defaultVariationalIterations
	}
	if config.MaxDelta == 0 {
		config.MaxDelta = defaultMaxDelta
	}

	steps := gridSteps(config.XMin, config.XMax, config.StepSize)
	s := &VariationalSolver{
		config:    config,
		logger:    config.Logger,
		steps:     steps,
		potential: make([]float64, steps),
		hpsi:      make([]float64, steps),
		psiSq:     make([]float64, steps),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	for i := range s.potential {
		s.potential[i] = config.Potential(s.xFromIndex(i))
	}
	s.Reset()
	return s, nil
}

func (s *VariationalSolver) Config() VariationalConfig {
	return s.config
}

func (s *VariationalSolver) xFromIndex(i int) float64 {
	return s.config.XMin + float64(i)*s.config.StepSize
}

// Reset restores the trial wavefunction, either the one given by
// SetWavefunction or the default box-shaped one, and reseeds the random
// source.
func (s *VariationalSolver) Reset() {
	if s.seed != nil {
		s.wavefunction = append(s.wavefunction[:0], s.seed...)
	} else {
		s.wavefunction = defaultTrialWavefunction(s.config.XMin, s.config.XMax, s.config.StepSize, s.steps)
	}
	s.rnd = rand.New(rand.NewPCG(s.config.Seed, s.config.Seed^0x9e3779b97f4a7c15))
	s.delta = distuv.Uniform{Min: -s.config.MaxDelta, Max: s.config.MaxDelta, Src: s.rnd}
	s.iterations = 0
	s.energy = s.rayleighQuotient()
}

// defaultTrialWavefunction is constant inside [-1, 1] and zero elsewhere. If
// the grid doesn't reach into [-1, 1], the constant covers all of it.
func defaultTrialWavefunction(xMin, xMax, h float64, steps int) []float64 {
	value := math.Sqrt(1 / (xMax - xMin))
	wavefunction := make([]float64, steps)
	var inside int
	for i := range wavefunction {
		x := xMin + float64(i)*h
		if x >= -1 && x <= 1 {
			wavefunction[i] = value
			inside++
		}
	}
	if inside == 0 {
		for i := range wavefunction {
			wavefunction[i] = value
		}
	}
	return wavefunction
}

// SetWavefunction replaces the trial wavefunction. The points are resampled
// onto the solver's grid, so they may come from a solver with another step
// size. Resets the solver.
func (s *VariationalSolver) SetWavefunction(points []Point) error {
	xs, psis := Split(points)
	grid := make([]float64, s.steps)
	for i := range grid {
		grid[i] = s.xFromIndex(i)
	}
	resampled, err := numeric.Resample(xs, psis, grid)
	if err != nil {
		return fmt.Errorf("error while seeding the trial wavefunction: %w", err)
	}
	s.seed = resampled
	s.Reset()
	return nil
}

func (s *VariationalSolver) Energy() float64 {
	return s.energy
}

func (s *VariationalSolver) Iterations() int {
	return s.iterations
}

// step perturbs a single random grid value and keeps the change only if it
// lowers the energy.
func (s *VariationalSolver) step() {
	index := s.rnd.IntN(s.steps)
	old := s.wavefunction[index]
	s.wavefunction[index] += s.delta.Rand()

	candidateEnergy := s.rayleighQuotient()
	if candidateEnergy < s.energy {
		s.energy = candidateEnergy
	} else {
		s.wavefunction[index] = old
	}
}

func (s *VariationalSolver) Solve(ctx context.Context) error {
	for i := 1; i <= s.config.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i%variationalLogInterval == 0 {
			s.logger.Debug("variational progress", zap.Int("iteration", i), zap.Float64("energy", s.energy))
		}
		s.step()
		s.iterations++
	}
	s.normalize()
	return nil
}

func (s *VariationalSolver) normalize() {
	floats.Scale(normalizationFactor(s.wavefunction, s.config.StepSize), s.wavefunction)
}

func (s *VariationalSolver) WavefunctionPoints() []Point {
	points := make([]Point, len(s.wavefunction))
	for i, psi := range s.wavefunction {
		points[i] = Point{X: s.xFromIndex(i), Psi: psi}
	}
	return points
}

func (s *VariationalSolver) rayleighQuotient() float64 {
	return rayleighQuotient(s.wavefunction, s.potential, s.config.StepSize, s.hpsi, s.psiSq)
}

// EnergyOf returns the energy expectation value <ψ|H|ψ> / <ψ|ψ> of the
// wavefunction sampled on the uniform grid starting at xMin with spacing h.
func EnergyOf(wavefunction []float64, h float64, v Potential, xMin float64) float64 {
	potential := make([]float64, len(wavefunction))
	for i := range potential {
		potential[i] = v(xMin + float64(i)*h)
	}
	return rayleighQuotient(wavefunction, potential, h,
		make([]float64, len(wavefunction)), make([]float64, len(wavefunction)))
}

// rayleighQuotient evaluates <ψ|H|ψ> / <ψ|ψ> with the kinetic term from
// finite differences. hpsi and psiSq are scratch space of the same length as
// psi.
func rayleighQuotient(psi, potential []float64, h float64, hpsi, psiSq []float64) float64 {
	n := len(psi)
	for i := range psi {
		kinetic := -0.5 * numeric.SecondDerivative(numeric.MethodAt(i, n), psi, i, h)
		hpsi[i] = psi[i] * (kinetic + potential[i]*psi[i])
		psiSq[i] = psi[i] * psi[i]
	}
	return numeric.Trapezoidal(hpsi, h) / numeric.Trapezoidal(psiSq, h)
}
