package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

// Values of InteractionConfig.Scheme.
const (
	SchemeABPM    = "abpm"    // 2 types from the A, B, P, M parameters
	SchemeUniform = "uniform" // explicit matrix rows
	SchemeRandom  = "random"  // coefficients drawn from a seeded range
)

// Values of Config.Placement.
const (
	PlacementRandom  = "random"  // uniform over the centred cell
	PlacementLattice = "lattice" // centres of a square grid
)

// InteractionConfig selects how the initial coefficient matrix is built.
type InteractionConfig struct {
	Scheme string `json:"scheme"`

	// ABPM scheme, 2 types only
	A float64 `json:"a"`
	B float64 `json:"b"`
	P float64 `json:"p"`
	M float64 `json:"m"`

	// Uniform scheme: explicit typeCount x typeCount rows
	Matrix [][]float64 `json:"matrix,omitempty"`

	// Random scheme: coefficients drawn in [RandomMin, RandomMax)
	RandomMin float64 `json:"randomMin"`
	RandomMax float64 `json:"randomMax"`
}

// Source returns the matrix recipe described by the configuration.
func (c InteractionConfig) Source(seed uint64) (interaction.Source, error) {
	switch c.Scheme {
	case SchemeABPM, "":
		return interaction.ABPM{A: c.A, B: c.B, P: c.P, M: c.M}, nil
	case SchemeUniform:
		return interaction.Uniform{Rows: c.Matrix}, nil
	case SchemeRandom:
		return interaction.Random{Min: c.RandomMin, Max: c.RandomMax, Seed: seed}, nil
	default:
		return nil, fmt.Errorf("unknown interaction scheme %q: %w", c.Scheme, ErrInvalidConfig)
	}
}

// Config holds every setting of a run, loaded from JSON or TOML.
type Config struct {
	// Population
	NumParticles int `json:"numParticles"`
	TypeCount    int `json:"typeCount"`

	// Domain and integration
	DomainSize  float64 `json:"domainSize"`  // torus edge L
	TimeStep    float64 `json:"timeStep"`    // dt
	MinDistance float64 `json:"minDistance"` // distance floor, 0 guards exact overlaps only

	// Initial positions
	Placement string `json:"placement"`
	Seed      uint64 `json:"seed"`

	Interaction InteractionConfig `json:"interaction"`

	// Milestones, in steps. 0 disables.
	RepaintEvery      uint64 `json:"repaintEvery"`
	ReportEvery       uint64 `json:"reportEvery"`
	MatrixReportEvery uint64 `json:"matrixReportEvery"`
	StopAfter         uint64 `json:"stopAfter"`
	TrackEvery        uint64 `json:"trackEvery"`

	// Viewer
	Scale         float64 `json:"scale"`
	StepsPerFrame uint32  `json:"stepsPerFrame"`
}

// DefaultConfig returns the settings used for keys a configuration file omits.
func DefaultConfig() *Config {
	return &Config{
		NumParticles: 50,
		TypeCount:    2,
		DomainSize:   10,
		TimeStep:     0.002,
		MinDistance:  0,
		Placement:    PlacementRandom,
		Seed:         1,
		Interaction: InteractionConfig{
			Scheme:    SchemeABPM,
			A:         interaction.DefaultABPM.A,
			B:         interaction.DefaultABPM.B,
			P:         interaction.DefaultABPM.P,
			M:         interaction.DefaultABPM.M,
			RandomMin: -1,
			RandomMax: 1,
		},
		RepaintEvery:      100,
		ReportEvery:       1000,
		MatrixReportEvery: 5000,
		StopAfter:         50000,
		TrackEvery:        100,
		Scale:             10,
		StepsPerFrame:     100,
	}
}

// Validate checks the values the engine cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.NumParticles < 1:
		return fmt.Errorf("numParticles = %d: %w", c.NumParticles, ErrInvalidConfig)
	case c.TypeCount < 1 || c.TypeCount > c.NumParticles:
		return fmt.Errorf("typeCount = %d for %d particles: %w", c.TypeCount, c.NumParticles, ErrInvalidConfig)
	case !(c.DomainSize > 0) || math.IsInf(c.DomainSize, 0):
		return fmt.Errorf("domainSize = %v: %w", c.DomainSize, ErrInvalidConfig)
	case !(c.TimeStep > 0) || math.IsInf(c.TimeStep, 0):
		return fmt.Errorf("timeStep = %v: %w", c.TimeStep, ErrInvalidConfig)
	case !(c.MinDistance >= 0):
		return fmt.Errorf("minDistance = %v: %w", c.MinDistance, ErrInvalidConfig)
	case c.Placement != PlacementRandom && c.Placement != PlacementLattice:
		return fmt.Errorf("placement = %q: %w", c.Placement, ErrInvalidConfig)
	}
	return nil
}

// LoadConfig loads configuration from a JSON (or .toml) file, validates it against the
// embedded schema and applies it over DefaultConfig.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File, TOML is normalised to JSON first
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(configFile), ".toml") {
		if b, err = tomlToJSON(b); err != nil {
			return nil, err
		}
	}

	// 3. Validate
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into the defaults, missing keys keep their default value
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func tomlToJSON(b []byte) ([]byte, error) {
	var doc map[string]interface{}
	if _, err := toml.Decode(string(b), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return out, nil
}
