package dimension

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

func TestSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"negative", -3},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"neg inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			err := d.Set(FieldWidth, tt.value)
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Equal(t, 10.0, d.Width, "rejected edit must keep prior value")
		})
	}
}

func TestSetUnknownField(t *testing.T) {
	d := Default()
	assert.Error(t, d.Set(Field("radius"), 5))
	assert.Equal(t, Default(), d)
}

func TestSetAppliesValidEdit(t *testing.T) {
	d := Default()
	assert.NoError(t, d.Set(FieldDepth, 3.25))
	assert.Equal(t, 3.25, d.Depth)
	assert.NoError(t, d.Set(FieldDiameter, 42))
	assert.Equal(t, 42.0, d.Diameter)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.38, Round2(1.375), "half rounds away from zero")
	assert.Equal(t, 20.0, Round2(20.000001))
	assert.Equal(t, -1.38, Round2(-1.375))
}

func TestDeriveFromAspect(t *testing.T) {
	tests := []struct {
		face      texture.FaceKey
		ratio     float64
		wantWidth float64
		wantDepth float64
	}{
		{texture.FaceFront, 2, 20, 10},
		{texture.FaceBack, 1.5, 15, 10},
		{texture.FaceLeft, 0.8, 10, 8},
		{texture.FaceRight, 1.25, 10, 12.5},
		{texture.FaceTop, 3, 10, 10},
		{texture.FaceMap, 3, 10, 10},
	}
	for _, tt := range tests {
		t.Run(string(tt.face), func(t *testing.T) {
			d := Default()
			d.DeriveFromAspect(tt.face, tt.ratio)
			assert.Equal(t, tt.wantWidth, d.Width)
			assert.Equal(t, tt.wantDepth, d.Depth)
			assert.Equal(t, 10.0, d.Height, "height is the anchor and never derived")
			assert.Equal(t, 10.0, d.Diameter)
		})
	}
}

func TestDeriveFromAspectIgnoresBadRatio(t *testing.T) {
	d := Default()
	d.DeriveFromAspect(texture.FaceFront, 0)
	d.DeriveFromAspect(texture.FaceFront, -1)
	d.DeriveFromAspect(texture.FaceFront, math.NaN())
	assert.Equal(t, Default(), d)
}

func TestDeriveRounding(t *testing.T) {
	d := Default()
	d.Height = 7
	d.DeriveFromAspect(texture.FaceFront, 1.0/3.0)
	assert.Equal(t, 2.33, d.Width)
}

func TestApplyAspectRatiosPriority(t *testing.T) {
	d := Default()
	d.ApplyAspectRatios(map[texture.FaceKey]float64{
		texture.FaceFront: 2,
		texture.FaceBack:  1.5,
		texture.FaceLeft:  0.8,
		texture.FaceRight: 1.1,
	})
	assert.Equal(t, 20.0, d.Width, "front wins over back")
	assert.Equal(t, 8.0, d.Depth, "left wins over right")
}

func TestApplyAspectRatiosFallback(t *testing.T) {
	d := Default()
	d.ApplyAspectRatios(map[texture.FaceKey]float64{
		texture.FaceBack:  1.5,
		texture.FaceRight: 0.8,
	})
	assert.Equal(t, 15.0, d.Width)
	assert.Equal(t, 8.0, d.Depth)
}

func TestApplyAspectRatiosEmpty(t *testing.T) {
	d := Default()
	d.ApplyAspectRatios(nil)
	assert.Equal(t, Default(), d)
}
