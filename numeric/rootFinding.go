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
	"math"
)

// FindRoot searches a root of f with the secant method, starting from the two
// guesses x0 and x1. It stops as soon as the relative change of the estimate
// drops below tolerance. Reports false if that doesn't happen within maxLoops
// iterations.
func FindRoot(f func(float64) float64, x0, x1, tolerance float64, maxLoops int) (float64, bool) {
	for i := 0; i < maxLoops; i++ {
		fx0 := f(x0)
		fx1 := f(x1)

		x2 := x1 - fx1*(x1-x0)/(fx1-fx0)
		if math.IsNaN(x2) || math.IsInf(x2, 0) {
			return 0, false
		}

		if math.Abs(x2-x1)/math.Abs(x1) < tolerance {
			return x2, true
		}

		x0 = x1
		x1 = x2
	}

	return 0, false
}
