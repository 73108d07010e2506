package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.002, cfg.TimeStep)
	assert.Equal(t, 10.0, cfg.DomainSize)
	assert.Equal(t, SchemeABPM, cfg.Interaction.Scheme)
	assert.Equal(t, uint64(50000), cfg.StopAfter)

	src, err := cfg.Interaction.Source(cfg.Seed)
	require.NoError(t, err)
	m, err := src.Resolve(cfg.TypeCount)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, m.At(0, 1), 1e-12)
	assert.InDelta(t, 1.4, m.At(1, 0), 1e-12)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "swarm.json", `{
		"numParticles": 90,
		"typeCount": 3,
		"placement": "lattice",
		"interaction": {
			"scheme": "random",
			"randomMin": -0.5,
			"randomMax": 1.5
		},
		"stopAfter": 0
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.NumParticles)
	assert.Equal(t, 3, cfg.TypeCount)
	assert.Equal(t, PlacementLattice, cfg.Placement)
	assert.Equal(t, SchemeRandom, cfg.Interaction.Scheme)
	assert.Equal(t, 1.5, cfg.Interaction.RandomMax)
	assert.Equal(t, uint64(0), cfg.StopAfter)
	// untouched keys keep their default
	assert.Equal(t, 0.002, cfg.TimeStep)
	assert.Equal(t, uint64(1000), cfg.ReportEvery)
	assert.Equal(t, DefaultConfig().Interaction.A, cfg.Interaction.A)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeConfig(t, "swarm.toml", `
numParticles = 9
typeCount = 3
domainSize = 12.5
seed = 42

[interaction]
scheme = "uniform"
matrix = [[1.0, 0.5, 0.2], [0.1, 1.0, 0.3], [0.4, 0.6, 1.0]]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.NumParticles)
	assert.Equal(t, 12.5, cfg.DomainSize)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.Len(t, cfg.Interaction.Matrix, 3)
	assert.Equal(t, []float64{0.4, 0.6, 1.0}, cfg.Interaction.Matrix[2])

	e, err := NewEngine(cfg)
	require.NoError(t, err)
	// ids 1..3 type 0, 4..6 type 1, 7..9 type 2
	assert.Equal(t, 0.5, e.Coefficient(1, 4))
	assert.Equal(t, 0.6, e.Coefficient(9, 5))
}

func TestLoadConfig_Rejected(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"unknown key", "a.json", `{"numParticles": 10, "gravity": 9.81}`},
		{"unknown placement", "b.json", `{"placement": "spiral"}`},
		{"unknown scheme", "c.json", `{"interaction": {"scheme": "heider"}}`},
		{"zero domain", "d.json", `{"domainSize": 0}`},
		{"fractional count", "e.json", `{"numParticles": 2.5}`},
		{"not json", "f.json", `numParticles: 3`},
		{"bad toml", "g.toml", `numParticles = `},
		{"types exceed particles", "h.json", `{"numParticles": 2, "typeCount": 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_SemanticErrorIsTyped(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "swarm.json", `{"numParticles": 2, "typeCount": 3}`))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
