package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Arithmetic(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(3, -1)

	assert.Equal(t, Vec(4, 1), a.Add(b))
	assert.Equal(t, Vec(-2, 3), a.Sub(b))
	assert.Equal(t, Vec(2, 4), a.Scale(2))
	// значения неизменяемы
	assert.Equal(t, Vec(1, 2), a)
}

func TestVector_Cell(t *testing.T) {
	x, y := Vec(3.7, 4.2).Cell()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	x, y = Vec(-0.5, 0).Cell()
	assert.Equal(t, -1, x)
	assert.Equal(t, 0, y)
}

func TestVector_IsOrthogonallyAdjacent(t *testing.T) {
	origin := CellVector(5, 5)

	tests := []struct {
		name  string
		other Vector
		want  bool
	}{
		{"north", CellVector(5, 4), true},
		{"east", CellVector(6, 5), true},
		{"diagonal", CellVector(6, 6), false},
		{"same cell", CellVector(5, 5), false},
		{"two away", CellVector(5, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, origin.IsOrthogonallyAdjacent(tt.other))
		})
	}
}

func TestOrientationFromVector(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want Orientation
		ok   bool
	}{
		{"north", Vec(0, -1), North, true},
		{"south", Vec(0, 1), South, true},
		{"east", Vec(1, 0), East, true},
		{"west", Vec(-1, 0), West, true},
		{"diagonal", Vec(1, 1), OrientationNone, false},
		{"zero", Vec(0, 0), OrientationNone, false},
		{"too long", Vec(0, 2), OrientationNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OrientationFromVector(tt.v)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientation_RoundTrip(t *testing.T) {
	for _, o := range Orientations {
		got, ok := OrientationFromVector(o.Vector())
		assert.True(t, ok, o.String())
		assert.Equal(t, o, got)
		assert.Equal(t, o, o.Opposite().Opposite())
	}
	assert.Equal(t, "NONE", OrientationNone.String())
}
