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

package data

import (
	"fmt"
	"sort"

	"github.com/samply/qmctl/physics"
)

// Step size of the square well scenarios: 10000 steps reach 15 % into the
// wall.
const squareWellStepSize = physics.L * 1.15 / 10000

func squareWellSeries(parity string) Series {
	return Series{
		Label:     parity,
		Method:    MethodShooting,
		Potential: "box",
		Shooting: &Shooting{
			Steps:    10000,
			StepSize: squareWellStepSize,
			Parity:   parity,
		},
	}
}

func harmonicMatching(numerov bool) Series {
	label := "Numerov"
	if !numerov {
		label = "three-point"
	}
	return Series{
		Label:     label,
		Method:    MethodMatching,
		Potential: "harmonic",
		Matching: &Matching{
			XMin:                  -5,
			XMax:                  5,
			XMatch:                -1,
			StepSize:              0.1,
			InitialEnergy:         1.45,
			InitialEnergyStepSize: 0.1,
			EnergyStepSizeCutoff:  1e-5,
			UsingNumerov:          numerov,
		},
	}
}

// builtinScenarios returns fresh values on every call, so callers may modify
// them.
func builtinScenarios() []Scenario {
	return []Scenario{
		{
			Name:   "square-well-shooting-even",
			Title:  "Particle-in-a-box wavefunction using the shooting method",
			Series: []Series{squareWellSeries("even")},
			Chart:  Chart{XMin: -1, XMax: 1, YMin: -0.2, YMax: 1.2, Marker: "circle"},
		},
		{
			Name:   "square-well-shooting-odd",
			Title:  "Particle-in-a-box wavefunction using the shooting method",
			Series: []Series{squareWellSeries("odd")},
			Chart:  Chart{XMin: -1, XMax: 1, YMin: -0.4, YMax: 0.4, Marker: "triangle"},
		},
		{
			Name:   "square-well-shooting",
			Title:  "Particle-in-a-box wavefunction using the shooting method",
			Series: []Series{squareWellSeries("even"), squareWellSeries("odd")},
			Chart:  Chart{XMin: -1, XMax: 1, YMin: -0.2, YMax: 1.2, Marker: "circle"},
		},
		{
			Name:  "harmonic-oscillator-shooting",
			Title: "Harmonic oscillator wavefunction using the shooting method",
			Series: []Series{{
				Label:     "odd",
				Method:    MethodShooting,
				Potential: "harmonic",
				Shooting:  &Shooting{Steps: 10000, StepSize: 0.01, Parity: "odd"},
			}},
			Chart: Chart{XMin: -8, XMax: 8, YMin: -1.5, YMax: 1.5, Marker: "triangle"},
		},
		{
			Name:      "harmonic-oscillator-matching",
			Title:     "Harmonic oscillator wavefunction using the matching method",
			Reference: "harmonic-first-excited",
			Series:    []Series{harmonicMatching(true), harmonicMatching(false)},
			Chart:     Chart{XMin: -5, XMax: 5, YMin: -1, YMax: 1, Marker: "circle"},
		},
		{
			Name:  "lennard-jones",
			Title: "Wavefunction in a Lennard-Jones potential using the matching method",
			Series: []Series{{
				Method:    MethodMatching,
				Potential: "lennard-jones",
				Matching: &Matching{
					XMin:                  0.5,
					XMax:                  5,
					XMatch:                1.4,
					StepSize:              0.001,
					InitialEnergyStepSize: 0.1,
					EnergyStepSizeCutoff:  0.001,
					UsingNumerov:          true,
				},
			}},
			Chart: Chart{XMin: 0.5, XMax: 5, Marker: "circle"},
		},
		{
			Name:  "double-well",
			Title: "Wavefunction in a double well potential using the matching method",
			Series: []Series{{
				Method:    MethodMatching,
				Potential: "double-well",
				Matching: &Matching{
					XMin:                  -1.3,
					XMax:                  1.3,
					XMatch:                0.3,
					StepSize:              5e-4,
					InitialEnergy:         21,
					InitialEnergyStepSize: 1,
					EnergyStepSizeCutoff:  0.001,
					UsingNumerov:          true,
					GuardingScaleFactor:   true,
				},
			}},
			Chart: Chart{XMin: -1.3, XMax: 1.3, YMin: -2, YMax: 2, Marker: "circle"},
		},
		{
			Name:  "variational-lennard-jones",
			Title: "Wavefunction in a Lennard-Jones potential using the variational Monte-Carlo method",
			Series: []Series{{
				Method:    MethodVariational,
				Potential: "lennard-jones",
				Variational: &Variational{
					XMin:     0.5,
					XMax:     5,
					StepSize: 0.01,
					SeedFromMatching: &Matching{
						XMin:                  0.5,
						XMax:                  5,
						XMatch:                1.4,
						StepSize:              0.001,
						InitialEnergy:         -5,
						InitialEnergyStepSize: 0.1,
						EnergyStepSizeCutoff:  0.001,
						UsingNumerov:          true,
					},
					NegateSeed: true,
				},
			}},
			Chart: Chart{XMin: 0.5, XMax: 5, Marker: "circle"},
		},
	}
}

// Builtins returns the built-in scenarios sorted by name.
func Builtins() []Scenario {
	res := builtinScenarios()
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// BuiltinNames returns the names of the built-in scenarios in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0)
	for _, s := range Builtins() {
		names = append(names, s.Name)
	}
	return names
}

// Builtin returns the built-in scenario with name.
func Builtin(name string) (Scenario, error) {
	for _, s := range builtinScenarios() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario `%s`", name)
}
