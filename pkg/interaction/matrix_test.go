package interaction_test

import (
	"math"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_Validation(t *testing.T) {
	_, err := interaction.NewMatrix(nil)
	require.ErrorIs(t, err, interaction.ErrEmpty)

	_, err = interaction.NewMatrix([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, interaction.ErrNonSquare)

	_, err = interaction.NewMatrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, interaction.ErrNonSquare)

	_, err = interaction.NewMatrix([][]float64{{1, math.NaN()}, {3, 4}})
	require.ErrorIs(t, err, interaction.ErrNonFinite)
}

func TestMatrix_IsNonReciprocal(t *testing.T) {
	m, err := interaction.NewMatrix([][]float64{{1, 1}, {0.5, 1.3}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())
	assert.Equal(t, 1.0, m.At(0, 1))
	assert.Equal(t, 0.5, m.At(1, 0))
	assert.Equal(t, [][]float64{{1, 1}, {0.5, 1.3}}, m.Rows())
}

func TestMatrix_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := interaction.NewMatrix(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))

	out := m.Rows()
	out[1][1] = 99
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestMatrix_EqualAndString(t *testing.T) {
	a, _ := interaction.NewMatrix([][]float64{{1, 2}, {3, 4}})
	b, _ := interaction.NewMatrix([][]float64{{1, 2}, {3, 4}})
	c, _ := interaction.NewMatrix([][]float64{{1}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	s := a.String()
	for _, v := range []string{"1", "2", "3", "4"} {
		assert.True(t, strings.Contains(s, v), "String() = %q misses %s", s, v)
	}
}

func TestABPM(t *testing.T) {
	m, err := interaction.ABPM{A: 0.8, B: 0.4, P: 0.6, M: -0.8}.Resolve(2)
	require.NoError(t, err)

	want := [][]float64{{0.8, -0.2}, {1.4, 0.4}}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			assert.InDelta(t, want[a][b], m.At(a, b), 1e-12, "K[%d][%d]", a, b)
		}
	}
	assert.Equal(t, interaction.DefaultABPM, interaction.ABPM{A: 0.8, B: 0.4, P: 0.6, M: -0.8})

	_, err = interaction.DefaultABPM.Resolve(3)
	require.ErrorIs(t, err, interaction.ErrABPMTypes)
}

func TestUniform(t *testing.T) {
	m, err := interaction.Uniform{Rows: [][]float64{{1, 1}, {0.5, 1.3}}}.Resolve(2)
	require.NoError(t, err)
	assert.Equal(t, 1.3, m.At(1, 1))

	_, err = interaction.Uniform{Rows: [][]float64{{1, 1}, {0.5, 1.3}}}.Resolve(3)
	require.ErrorIs(t, err, interaction.ErrDimensionMismatch)
}

func TestRandom(t *testing.T) {
	src := interaction.Random{Min: -1, Max: 1, Seed: 42}
	m1, err := src.Resolve(3)
	require.NoError(t, err)
	m2, err := src.Resolve(3)
	require.NoError(t, err)
	assert.True(t, m1.Equal(m2), "same seed must give the same matrix")

	for _, row := range m1.Rows() {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}

	other, err := interaction.Random{Min: -1, Max: 1, Seed: 43}.Resolve(3)
	require.NoError(t, err)
	assert.False(t, m1.Equal(other))

	_, err = interaction.Random{Min: 1, Max: -1}.Resolve(2)
	require.ErrorIs(t, err, interaction.ErrBadRange)
}
