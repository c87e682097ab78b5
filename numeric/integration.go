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

package numeric

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Trapezoidal integrates the samples f taken on a uniform grid with spacing dx
// using the composite trapezoidal rule.
func Trapezoidal(f []float64, dx float64) float64 {
	if len(f) < 2 {
		return 0
	}
	return dx * (floats.Sum(f) - 0.5*(f[0]+f[len(f)-1]))
}

// TrapezoidalPoints integrates f sampled at the increasing positions x using
// the trapezoidal rule. The grid doesn't have to be uniform.
//
// Panics if x and f differ in length or x is not sorted.
func TrapezoidalPoints(x, f []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return integrate.Trapezoidal(x, f)
}
