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
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Resample evaluates the piecewise linear interpolation of (xs, ys) at every
// position of grid. Positions outside of [xs[0], xs[len(xs)-1]] get the value
// of the nearest end point.
func Resample(xs, ys, grid []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("can't resample %d positions with %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 points to resample, got %d", len(xs))
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("error while fitting the interpolation: %w", err)
	}

	res := make([]float64, len(grid))
	for i, x := range grid {
		res[i] = pl.Predict(x)
	}
	return res, nil
}
