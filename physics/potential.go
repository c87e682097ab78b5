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
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/samply/qmctl/numeric"
)

// Potential is a one-dimensional potential energy V(x).
type Potential func(x float64) float64

// L is the half width of the square well.
const L = 0.5

const (
	boxWallHeight       = 100000.0
	doubleWellStrength  = 100.0
	doubleWellMinimum   = 0.5
	lennardJonesEpsilon = 10.0
	lennardJonesSigma   = 1.0
)

// Box is a square well of width 2L with walls high enough to stand in for an
// infinite well.
func Box(x float64) float64 {
	if math.Abs(x) < L {
		return 0
	}
	return boxWallHeight
}

// Harmonic is the harmonic oscillator potential with unit angular frequency.
func Harmonic(x float64) float64 {
	return 0.5 * x * x
}

// DoubleWell is a quartic double well with minima at ±0.5 and a barrier of
// height 6.25 at the origin.
func DoubleWell(x float64) float64 {
	d := x*x - doubleWellMinimum*doubleWellMinimum
	return doubleWellStrength * d * d
}

// LennardJones is the 12-6 potential with a well depth of 10 and the zero
// crossing at x = 1.
func LennardJones(x float64) float64 {
	r6 := math.Pow(lennardJonesSigma/x, 6)
	return 4 * lennardJonesEpsilon * (r6*r6 - r6)
}

var potentials = map[string]Potential{
	"box":           Box,
	"harmonic":      Harmonic,
	"double-well":   DoubleWell,
	"lennard-jones": LennardJones,
}

// PotentialNames returns the names accepted by PotentialByName in sorted order.
func PotentialNames() []string {
	names := make([]string, 0, len(potentials))
	for name := range potentials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PotentialByName resolves one of the built-in potentials.
func PotentialByName(name string) (Potential, error) {
	if v, ok := potentials[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("unknown potential `%s`. Must be one of: %s", name, strings.Join(PotentialNames(), ", "))
}

// TurningPoints returns the classical turning points, the positions where
// V(x) = energy, inside the range covered by xs. Each sign change of
// V - energy between neighbouring grid positions is refined with the secant
// method. Discontinuous potentials fall back to the midpoint of the bracket.
func TurningPoints(v Potential, energy float64, xs []float64) []float64 {
	f := func(x float64) float64 { return v(x) - energy }

	var points []float64
	for i := 1; i < len(xs); i++ {
		a, b := xs[i-1], xs[i]
		fa, fb := f(a), f(b)
		if math.Signbit(fa) == math.Signbit(fb) {
			continue
		}
		root, ok := numeric.FindRoot(f, a, b, 1e-12, 50)
		if !ok || root < a || root > b {
			root = 0.5 * (a + b)
		}
		points = append(points, root)
	}
	return points
}
