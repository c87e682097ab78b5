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

// DifferenceMethod selects the stencil used by SecondDerivative.
type DifferenceMethod int

const (
	ForwardDifference DifferenceMethod = iota
	CentralDifference
	BackwardDifference
)

func (m DifferenceMethod) String() string {
	switch m {
	case ForwardDifference:
		return "forward"
	case CentralDifference:
		return "central"
	case BackwardDifference:
		return "backward"
	default:
		return "unknown"
	}
}

// SecondDerivative approximates f''(x_i) from samples on a uniform grid with
// spacing h. The forward stencil needs i+2 and the backward stencil i-2 to be
// valid indices; the central one needs both neighbours.
func SecondDerivative(method DifferenceMethod, f []float64, i int, h float64) float64 {
	switch method {
	case ForwardDifference:
		return (f[i+2] - 2*f[i+1] + f[i]) / (h * h)
	case BackwardDifference:
		return (f[i] - 2*f[i-1] + f[i-2]) / (h * h)
	default:
		return (f[i+1] - 2*f[i] + f[i-1]) / (h * h)
	}
}

// MethodAt returns the stencil that stays inside a grid of n points at index i.
func MethodAt(i, n int) DifferenceMethod {
	switch i {
	case 0:
		return ForwardDifference
	case n - 1:
		return BackwardDifference
	default:
		return CentralDifference
	}
}
