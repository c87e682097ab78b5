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

// Package physics solves the one-dimensional time-independent Schrödinger
// equation
//
//	-½ ψ''(x) + V(x) ψ(x) = E ψ(x)
//
// in units where ħ = m = 1. Three methods are available: shooting from the
// origin for symmetric potentials, matching two integrations at an inner
// point and a variational Monte-Carlo search.
package physics

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/samply/qmctl/numeric"
)

var (
	// ErrInvalidConfig is returned by the solver constructors for unusable
	// parameters.
	ErrInvalidConfig = errors.New("invalid solver configuration")

	// ErrNotConverged is returned by Solve if the energy search runs out of
	// iterations.
	ErrNotConverged = errors.New("energy search did not converge")
)

const defaultMaxIterations = 10000

// Point is a single sample (x, ψ(x)) of a wavefunction.
type Point struct {
	X, Psi float64
}

// Solver searches an energy eigenstate of the Schrödinger equation.
type Solver interface {
	// Solve populates the wavefunction and determines the corresponding energy.
	// Honours cancellation of ctx between trial energies.
	Solve(ctx context.Context) error

	Energy() float64

	// Iterations returns the number of trials the last Solve needed.
	Iterations() int

	// Reset puts the solver back into its initial configuration.
	Reset()

	// WavefunctionPoints returns the (x, ψ) samples ordered by x.
	WavefunctionPoints() []Point
}

// WriteData writes energy and wavefunction of s in a form gnuplot can read.
// The first line is a '#' (gnuplot comment) followed by the energy value. Every
// other line holds an x value and the wavefunction value separated by a space.
//
//	# 22.0927734375
//	-1.3 0
//	-1.25 9.28011292465171e-09
//	-1.2 -9.554014322853878e-08
func WriteData(w io.Writer, s Solver) error {
	return WritePoints(w, s.Energy(), s.WavefunctionPoints())
}

// WritePoints writes energy and points in the format of WriteData.
func WritePoints(w io.Writer, energy float64, points []Point) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# %s\n", formatFloat(energy)); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s %s\n", formatFloat(p.X), formatFloat(p.Psi)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Split returns the x and ψ values of points as separate slices.
func Split(points []Point) (xs, psis []float64) {
	xs = make([]float64, len(points))
	psis = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		psis[i] = p.Psi
	}
	return xs, psis
}

// Nodes counts the nodes of the wavefunction given by points.
func Nodes(points []Point) int {
	_, psis := Split(points)
	return numeric.CountNodes(psis)
}

// normalizationFactor returns the factor that scales psis so that the
// integral of |ψ|² over the uniform grid with spacing h becomes one.
func normalizationFactor(psis []float64, h float64) float64 {
	sq := make([]float64, len(psis))
	for i, psi := range psis {
		sq[i] = psi * psi
	}
	integral := numeric.Trapezoidal(sq, h)
	if integral <= 0 || math.IsNaN(integral) || math.IsInf(integral, 0) {
		return 1
	}
	return math.Sqrt(1 / integral)
}

// gridSteps returns the number of points of a uniform grid from xMin to xMax
// with spacing h.
func gridSteps(xMin, xMax, h float64) int {
	return int(math.Round((xMax-xMin)/h)) + 1
}

func invalidConfig(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, a...))
}
