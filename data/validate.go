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
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/samply/qmctl/physics"
)

const (
	MethodShooting    = "shooting"
	MethodMatching    = "matching"
	MethodVariational = "variational"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks that the scenario can be solved. The name has to be usable
// as a file name, because the outputs are named after it.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("missing name")
	}
	if !namePattern.MatchString(s.Name) {
		return fmt.Errorf("invalid name `%s`: only lower case letters, digits and dashes are allowed", s.Name)
	}
	if len(s.Series) == 0 {
		return errors.New("missing series")
	}
	if s.Reference != "" {
		if _, err := physics.ReferenceByName(s.Reference); err != nil {
			return err
		}
	}
	for i, series := range s.Series {
		if err := series.Validate(); err != nil {
			return fmt.Errorf("error in series[%d]: %w", i, err)
		}
	}
	if s.Chart.XMax <= s.Chart.XMin {
		return fmt.Errorf("invalid chart x range [%g, %g]", s.Chart.XMin, s.Chart.XMax)
	}
	if s.Chart.YMax < s.Chart.YMin {
		return fmt.Errorf("invalid chart y range [%g, %g]", s.Chart.YMin, s.Chart.YMax)
	}
	return nil
}

func (s Series) Validate() error {
	if s.Potential == "" {
		return errors.New("missing potential")
	}
	if _, err := physics.PotentialByName(s.Potential); err != nil {
		return err
	}

	switch s.Method {
	case "":
		return errors.New("missing method")
	case MethodShooting:
		if s.Shooting == nil {
			return errors.New("missing shooting parameters")
		}
		if _, err := physics.ParseParity(s.Shooting.Parity); err != nil {
			return err
		}
	case MethodMatching:
		if s.Matching == nil {
			return errors.New("missing matching parameters")
		}
	case MethodVariational:
		if s.Variational == nil {
			return errors.New("missing variational parameters")
		}
	default:
		return fmt.Errorf("unknown method `%s`. Must be one of: %s, %s, %s",
			s.Method, MethodShooting, MethodMatching, MethodVariational)
	}
	return nil
}

// ReadScenarioFile reads a scenario from a YAML file and validates it.
func ReadScenarioFile(filename string) (*Scenario, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseScenario(file)
}

// ParseScenario parses a scenario from YAML and validates it.
func ParseScenario(b []byte) (*Scenario, error) {
	scenario := Scenario{}
	if err := yaml.Unmarshal(b, &scenario); err != nil {
		return nil, fmt.Errorf("error while parsing the scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// MarshalScenario renders s as YAML, the inverse of ParseScenario.
func MarshalScenario(s Scenario) ([]byte, error) {
	return yaml.Marshal(s)
}
