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
	"gonum.org/v1/gonum/floats"
)

// Largest accepted ratio between the left and right component at the
// matching point when GuardingScaleFactor is set.
const maxScaleFactor = 100.0

// Tiny start value (times the step size) for both components. Keeps the
// growing solutions in the classically forbidden region from overflowing.
const matchingStartValue = 1e-18

// MatchingConfig configures a MatchingSolver.
type MatchingConfig struct {
	XMin, XMax, XMatch    float64
	StepSize              float64
	InitialEnergy         float64
	InitialEnergyStepSize float64
	EnergyStepSizeCutoff  float64
	Potential             Potential
	UsingNumerov          bool
	GuardingScaleFactor   bool
	MaxIterations         int
	Logger                *zap.Logger
}

func (c MatchingConfig) validate() error {
	if c.StepSize <= 0 {
		return invalidConfig("step size must be positive, got %g", c.StepSize)
	}
	if c.XMax <= c.XMin {
		return invalidConfig("x range [%g, %g] is empty", c.XMin, c.XMax)
	}
	if c.InitialEnergyStepSize == 0 {
		return invalidConfig("initial energy step size must not be zero")
	}
	if c.EnergyStepSizeCutoff <= 0 {
		return invalidConfig("energy step size cutoff must be positive, got %g", c.EnergyStepSizeCutoff)
	}
	if c.Potential == nil {
		return invalidConfig("missing potential")
	}
	steps := gridSteps(c.XMin, c.XMax, c.StepSize)
	matchIdx := int(math.Round((c.XMatch - c.XMin) / c.StepSize))
	// Both components need three values for the slope stencils.
	if matchIdx < 2 || matchIdx > steps-3 {
		return invalidConfig("matching point %g must lie at least 2 steps inside [%g, %g]", c.XMatch, c.XMin, c.XMax)
	}
	return nil
}

// side of a component wavefunction in the matching method.
type side int

const (
	left side = iota
	right
)

// MatchingSolver integrates one component from each end of the range toward
// the matching point, joins them continuously and adjusts the energy until
// their slopes agree as well.
type MatchingSolver struct {
	config            MatchingConfig
	logger            *zap.Logger
	steps, matchIdx   int
	energy            float64
	energyStepSize    float64
	isLeftSlopeLarger *bool
	iterations        int
	leftWavefunction  []float64
	rightWavefunction []float64
}

// NewMatchingSolver validates config and returns a solver in its initial
// state.
func NewMatchingSolver(config MatchingConfig) (*MatchingSolver, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = defaultMaxIterations
	}
	s := &MatchingSolver{
		config:   config,
		logger:   config.Logger,
		steps:    gridSteps(config.XMin, config.XMax, config.StepSize),
		matchIdx: int(math.Round((config.XMatch - config.XMin) / config.StepSize)),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.Reset()
	return s, nil
}

func (s *MatchingSolver) Config() MatchingConfig {
	return s.config
}

// MatchIndex returns the grid index of the matching point.
func (s *MatchingSolver) MatchIndex() int {
	return s.matchIdx
}

func (s *MatchingSolver) Reset() {
	s.energy = s.config.InitialEnergy
	s.energyStepSize = s.config.InitialEnergyStepSize
	s.isLeftSlopeLarger = nil
	s.iterations = 0
	s.leftWavefunction = make([]float64, 0, s.matchIdx+1)
	s.rightWavefunction = make([]float64, 0, s.steps-s.matchIdx)
}

func (s *MatchingSolver) Energy() float64 {
	return s.energy
}

func (s *MatchingSolver) Iterations() int {
	return s.iterations
}

// xFromIndex returns the x value of index i into the left or right component.
func (s *MatchingSolver) xFromIndex(i int, sd side) float64 {
	if sd == left {
		return s.config.XMin + float64(i)*s.config.StepSize
	}
	return s.config.XMax - float64(i)*s.config.StepSize
}

func (s *MatchingSolver) kSqr(x float64) float64 {
	return 2 * (s.energy - s.config.Potential(x))
}

// next returns the value one step toward the matching point following the
// values at lastIndex and lastIndex-1.
func (s *MatchingSolver) next(sd side, lastIndex int, psiLast, psiSecondToLast float64) float64 {
	h := s.config.StepSize
	if s.config.UsingNumerov {
		h2 := h * h
		return (2*(1-(5.0/12.0)*h2*s.kSqr(s.xFromIndex(lastIndex, sd)))*psiLast -
			(1+(1.0/12.0)*h2*s.kSqr(s.xFromIndex(lastIndex-1, sd)))*psiSecondToLast) /
			(1 + (1.0/12.0)*h2*s.kSqr(s.xFromIndex(lastIndex+1, sd)))
	}
	return 2*(h*h*(s.config.Potential(s.xFromIndex(lastIndex, sd))-s.energy)+1)*psiLast - psiSecondToLast
}

func (s *MatchingSolver) component(sd side) []float64 {
	if sd == left {
		return s.leftWavefunction
	}
	return s.rightWavefunction
}

func (s *MatchingSolver) step(sd side) {
	f := s.component(sd)
	last := len(f) - 1
	f = append(f, s.next(sd, last, f[last], f[last-1]))
	if sd == left {
		s.leftWavefunction = f
	} else {
		s.rightWavefunction = f
	}
}

func (s *MatchingSolver) resetWavefunction() {
	start := matchingStartValue * s.config.StepSize
	s.leftWavefunction = append(s.leftWavefunction[:0], 0, start)
	s.rightWavefunction = append(s.rightWavefunction[:0], 0, start)
}

// computeWavefunction integrates both components up to the matching point and
// scales the right one to meet the left one there. Reports false if the scale
// factor is rejected by the guard, in which case the right component stays
// unscaled.
func (s *MatchingSolver) computeWavefunction() bool {
	s.resetWavefunction()
	for i := 1; i <= s.matchIdx-1; i++ {
		s.step(left)
	}
	for i := 1; i <= s.steps-s.matchIdx-2; i++ {
		s.step(right)
	}

	scaleFactor := s.leftWavefunction[len(s.leftWavefunction)-1] /
		s.rightWavefunction[len(s.rightWavefunction)-1]

	if s.config.GuardingScaleFactor &&
		(math.Abs(scaleFactor) > maxScaleFactor || 1/math.Abs(scaleFactor) > maxScaleFactor) {
		return false
	}
	floats.Scale(scaleFactor, s.rightWavefunction)
	return true
}

// componentSlope returns the slope at the matching point of one component,
// taken in the direction of integration.
func (s *MatchingSolver) componentSlope(sd side) float64 {
	f := s.component(sd)
	last := len(f) - 1

	if !s.config.UsingNumerov {
		return f[last] - f[last-1]
	}

	oneNext := s.next(sd, last, f[last], f[last-1])
	twoNext := s.next(sd, last+1, oneNext, f[last])
	return (-twoNext + 8*oneNext - 8*f[last-1] + f[last-2]) / (12 * s.config.StepSize)
}

// Slopes returns the slopes of the left and right component at the matching
// point, both with respect to increasing x.
func (s *MatchingSolver) Slopes() (leftSlope, rightSlope float64) {
	// The right component runs toward decreasing x.
	return s.componentSlope(left), -s.componentSlope(right)
}

func (s *MatchingSolver) Solve(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok := s.computeWavefunction()
		s.iterations++

		if math.Abs(s.energyStepSize) <= s.config.EnergyStepSizeCutoff {
			s.normalize()
			s.logger.Debug("matching converged",
				zap.Float64("energy", s.energy),
				zap.Int("iterations", s.iterations),
				zap.Bool("numerov", s.config.UsingNumerov))
			return nil
		}
		if s.iterations >= s.config.MaxIterations {
			return fmt.Errorf("%w: matching stopped at E = %g after %d iterations",
				ErrNotConverged, s.energy, s.iterations)
		}

		leftSlope, rightSlope := s.Slopes()
		if ok && s.isLeftSlopeLarger != nil && *s.isLeftSlopeLarger == (leftSlope < rightSlope) {
			s.energyStepSize = -s.energyStepSize / 2
		}
		larger := leftSlope >= rightSlope
		s.isLeftSlopeLarger = &larger

		s.energy += s.energyStepSize
	}
}

// normalize scales both components so that the integral of |ψ|² is one.
func (s *MatchingSolver) normalize() {
	_, psis := Split(s.WavefunctionPoints())
	factor := normalizationFactor(psis, s.config.StepSize)
	floats.Scale(factor, s.leftWavefunction)
	floats.Scale(factor, s.rightWavefunction)
}

// WavefunctionPoints joins the left component with the reversed right
// component. The matching point is taken from the left one.
func (s *MatchingSolver) WavefunctionPoints() []Point {
	points := make([]Point, 0, len(s.leftWavefunction)+len(s.rightWavefunction))
	for i, psi := range s.leftWavefunction {
		points = append(points, Point{X: s.xFromIndex(i, left), Psi: psi})
	}
	for i := len(s.rightWavefunction) - 2; i >= 0; i-- {
		points = append(points, Point{X: s.xFromIndex(i, right), Psi: s.rightWavefunction[i]})
	}
	return points
}
