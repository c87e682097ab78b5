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

// Clamp value for RelativeError. Keeps plots readable near nodes of the
// theoretical function.
const maxRelativeError = 1e4

// GenRange returns the values start, start+step, start+2*step, ... up to and
// including end. The step is accumulated, so the last value may fall short of
// end by rounding.
func GenRange(start, end, step float64) []float64 {
	if step <= 0 || end < start {
		return nil
	}
	ret := make([]float64, 0, int((end-start)/step)+1)
	for x := start; x <= end; x += step {
		ret = append(ret, x)
	}
	return ret
}

// RelativeError returns (observed - theoretical) / theoretical, clamped to
// ±1e4.
func RelativeError(observed, theoretical float64) float64 {
	relativeError := (observed - theoretical) / theoretical

	if math.Abs(relativeError) > maxRelativeError {
		relativeError = math.Copysign(maxRelativeError, relativeError)
	}

	return relativeError
}

// CountNodes counts the sign changes between neighbouring values of f. The
// sign is taken from the sign bit, so a negative zero counts as negative.
func CountNodes(f []float64) int {
	var nodes int
	for i := 1; i < len(f); i++ {
		if math.Signbit(f[i-1]) != math.Signbit(f[i]) {
			nodes++
		}
	}
	return nodes
}
