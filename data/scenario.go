package data

// Shooting holds the parameters of the shooting method. Zero values of the
// optional fields select the solver defaults.
type Shooting struct {
	Steps                 int     `yaml:"steps"`
	StepSize              float64 `yaml:"stepSize"`
	InitialEnergy         float64 `yaml:"initialEnergy"`
	InitialEnergyStepSize float64 `yaml:"initialEnergyStepSize,omitempty"`
	WavefunctionCutoff    float64 `yaml:"wavefunctionCutoff,omitempty"`
	EnergyStepSizeCutoff  float64 `yaml:"energyStepSizeCutoff,omitempty"`
	Parity                string  `yaml:"parity"`
}

type Matching struct {
	XMin                  float64 `yaml:"xMin"`
	XMax                  float64 `yaml:"xMax"`
	XMatch                float64 `yaml:"xMatch"`
	StepSize              float64 `yaml:"stepSize"`
	InitialEnergy         float64 `yaml:"initialEnergy"`
	InitialEnergyStepSize float64 `yaml:"initialEnergyStepSize"`
	EnergyStepSizeCutoff  float64 `yaml:"energyStepSizeCutoff"`
	UsingNumerov          bool    `yaml:"usingNumerov"`
	GuardingScaleFactor   bool    `yaml:"guardingScaleFactor"`
}

// Variational holds the parameters of the variational Monte-Carlo method. If
// SeedFromMatching is set, the trial wavefunction is the result of that
// matching run, negated if NegateSeed is set.
type Variational struct {
	XMin             float64   `yaml:"xMin"`
	XMax             float64   `yaml:"xMax"`
	StepSize         float64   `yaml:"stepSize"`
	Iterations       int       `yaml:"iterations,omitempty"`
	MaxDelta         float64   `yaml:"maxDelta,omitempty"`
	Seed             uint64    `yaml:"seed,omitempty"`
	SeedFromMatching *Matching `yaml:"seedFromMatching,omitempty"`
	NegateSeed       bool      `yaml:"negateSeed,omitempty"`
}

type Series struct {
	Label       string       `yaml:"label,omitempty"`
	Method      string       `yaml:"method"`
	Potential   string       `yaml:"potential"`
	Shooting    *Shooting    `yaml:"shooting,omitempty"`
	Matching    *Matching    `yaml:"matching,omitempty"`
	Variational *Variational `yaml:"variational,omitempty"`
}

// Chart describes the plot area. A zero y range is derived from the data.
type Chart struct {
	XMin   float64 `yaml:"xMin"`
	XMax   float64 `yaml:"xMax"`
	YMin   float64 `yaml:"yMin,omitempty"`
	YMax   float64 `yaml:"yMax,omitempty"`
	Marker string  `yaml:"marker,omitempty"`
}

type Scenario struct {
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`
	Reference string   `yaml:"reference,omitempty"`
	Series    []Series `yaml:"series"`
	Chart     Chart    `yaml:"chart"`
}
