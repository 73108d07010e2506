package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_String(t *testing.T) {
	v := Vector2D{1.23456, -5.678}
	want := "(1.2346, -5.6780)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, Vector2D{4, 6}, v1.Add(v2))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, Vector2D{-2, -2}, v1.Sub(v2))
	})

	t.Run("Mul", func(t *testing.T) {
		assert.Equal(t, Vector2D{2, 4}, v1.Mul(2))
	})
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := (Vector2D{3, 4}).Len(); got != 5 {
		t.Errorf("Len = %v; want 5", got)
	}
}

func TestVector_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		want bool
	}{
		{"finite", Vector2D{1, -2}, true},
		{"NaN X", Vector2D{math.NaN(), 0}, false},
		{"Inf Y", Vector2D{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("%v.IsFinite() = %v; want %v", tt.v, got, tt.want)
			}
		})
	}
}
