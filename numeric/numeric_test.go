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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = x * x
	}
	return res
}

func TestGenRange(t *testing.T) {
	t.Run("Inclusive", func(t *testing.T) {
		assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, GenRange(0, 2, 0.5))
	})

	t.Run("SmallSteps", func(t *testing.T) {
		xs := GenRange(0, 1, 0.01)
		assert.InDelta(t, 100, len(xs), 1)
		assert.Equal(t, 0.0, xs[0])
	})

	t.Run("EmptyOnInvalidInput", func(t *testing.T) {
		assert.Empty(t, GenRange(1, 0, 0.1))
		assert.Empty(t, GenRange(0, 1, 0))
		assert.Empty(t, GenRange(0, 1, -0.1))
	})
}

func TestRelativeError(t *testing.T) {
	assert.InDelta(t, 0.1, RelativeError(1.1, 1), 1e-12)
	assert.InDelta(t, -0.5, RelativeError(1, 2), 1e-12)
	assert.Equal(t, 1e4, RelativeError(1, 1e-9))
	assert.Equal(t, -1e4, RelativeError(-1, 1e-9))
}

func TestCountNodes(t *testing.T) {
	t.Run("Parabola", func(t *testing.T) {
		xs := GenRange(-2, 2, 0.01)
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = x*x - 1
		}
		assert.Equal(t, 2, CountNodes(ys))
	})

	t.Run("NegativeZero", func(t *testing.T) {
		assert.Equal(t, 0, CountNodes([]float64{math.Copysign(0, -1), -1, -2}))
		assert.Equal(t, 1, CountNodes([]float64{0, math.Copysign(0, -1)}))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, CountNodes(nil))
	})
}

func TestTrapezoidal(t *testing.T) {
	step := 0.01
	f := square(GenRange(0, 1, step))
	integral := Trapezoidal(f, step)
	assert.True(t, integral > 0.31 && integral < 0.35, "integral was %f", integral)

	assert.Equal(t, 0.0, Trapezoidal([]float64{1}, step))
}

func TestTrapezoidalPoints(t *testing.T) {
	xs := []float64{0, 0.5, 2}
	assert.InDelta(t, 4, TrapezoidalPoints(xs, []float64{2, 2, 2}), 1e-12)
	assert.Equal(t, 0.0, TrapezoidalPoints([]float64{1}, []float64{1}))
}

func TestSecondDerivative(t *testing.T) {
	step := 0.01
	f := square(GenRange(0, 1, step))

	assert.Less(t, math.Abs(RelativeError(2, SecondDerivative(ForwardDifference, f, 0, step))), 0.01)
	assert.Less(t, math.Abs(RelativeError(2, SecondDerivative(CentralDifference, f, 50, step))), 0.01)
	assert.Less(t, math.Abs(RelativeError(2, SecondDerivative(BackwardDifference, f, 99, step))), 0.01)
}

func TestMethodAt(t *testing.T) {
	assert.Equal(t, ForwardDifference, MethodAt(0, 10))
	assert.Equal(t, CentralDifference, MethodAt(5, 10))
	assert.Equal(t, BackwardDifference, MethodAt(9, 10))
	assert.Equal(t, "central", CentralDifference.String())
}

func TestFindRoot(t *testing.T) {
	t.Run("SquareRootOfTwo", func(t *testing.T) {
		root, ok := FindRoot(func(x float64) float64 { return x*x - 2 }, 1, 2, 1e-12, 100)
		require.True(t, ok)
		assert.InDelta(t, math.Sqrt2, root, 1e-9)
	})

	t.Run("Cosine", func(t *testing.T) {
		root, ok := FindRoot(math.Cos, 1, 2, 1e-12, 100)
		require.True(t, ok)
		assert.InDelta(t, math.Pi/2, root, 1e-9)
	})

	t.Run("NoRoot", func(t *testing.T) {
		_, ok := FindRoot(func(x float64) float64 { return x*x + 1 }, 1, 2, 1e-15, 5)
		assert.False(t, ok)
	})
}

func TestResample(t *testing.T) {
	t.Run("Linear", func(t *testing.T) {
		ys, err := Resample([]float64{0, 1, 2}, []float64{0, 2, 4}, []float64{0.5, 1.5})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 3}, ys, 1e-12)
	})

	t.Run("OutsideRange", func(t *testing.T) {
		ys, err := Resample([]float64{0, 1}, []float64{1, 3}, []float64{-1, 2})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 3}, ys, 1e-12)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Resample([]float64{0, 1}, []float64{1}, []float64{0})
		assert.Error(t, err)
	})

	t.Run("TooFewPoints", func(t *testing.T) {
		_, err := Resample([]float64{0}, []float64{1}, []float64{0})
		assert.Error(t, err)
	})
}
