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
)

// Reference is an analytically known wavefunction solvers can be compared to.
type Reference struct {
	Name     string
	Energy   float64
	Function func(x float64) float64
}

// HarmonicGroundState is the normalised ground state of the harmonic
// oscillator.
func HarmonicGroundState(x float64) float64 {
	return math.Pow(1/math.Pi, 0.25) * math.Exp(-0.5*x*x)
}

// HarmonicFirstExcitedState is the normalised first excited state of the
// harmonic oscillator, with the sign convention of a wavefunction that is
// positive left of the origin.
func HarmonicFirstExcitedState(x float64) float64 {
	return -math.Pow(1/math.Pi, 0.25) * math.Sqrt2 * x * math.Exp(-0.5*x*x)
}

var references = map[string]Reference{
	"harmonic-ground": {
		Name:     "harmonic-ground",
		Energy:   0.5,
		Function: HarmonicGroundState,
	},
	"harmonic-first-excited": {
		Name:     "harmonic-first-excited",
		Energy:   1.5,
		Function: HarmonicFirstExcitedState,
	},
}

func ReferenceByName(name string) (Reference, error) {
	if r, ok := references[name]; ok {
		return r, nil
	}
	names := make([]string, 0, len(references))
	for n := range references {
		names = append(names, n)
	}
	sort.Strings(names)
	return Reference{}, fmt.Errorf("unknown reference `%s`. Must be one of: %s", name, strings.Join(names, ", "))
}
