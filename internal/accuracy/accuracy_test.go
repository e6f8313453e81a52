package accuracy_test

import (
	"testing"

	"github.com/andresuchdata/dss-backend/internal/accuracy"
	"github.com/andresuchdata/dss-backend/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSquared(t *testing.T) {
	assert.InDelta(t, 0.375, accuracy.RSquared([]float64{100, 110, 120}, []float64{90, 115, 120}), 1e-12)
	assert.InDelta(t, 1.0, accuracy.RSquared([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-12)
	assert.Equal(t, 1.0, accuracy.RSquared([]float64{50, 50, 50}, []float64{50, 50, 50}))
	assert.Equal(t, 0.0, accuracy.RSquared([]float64{50, 50, 50}, []float64{50, 60, 50}))
	assert.Equal(t, 0.0, accuracy.RSquared(nil, nil))
}

func TestMAPE(t *testing.T) {
	// |10/100|, |-5/110|, 0
	want := (0.1 + 5.0/110) / 3 * 100
	assert.InDelta(t, want, accuracy.MAPE([]float64{100, 110, 120}, []float64{90, 115, 120}), 1e-12)
	assert.Equal(t, 0.0, accuracy.MAPE([]float64{4, 8}, []float64{4, 8}))
	assert.Equal(t, 0.0, accuracy.MAPE(nil, nil))
}

func TestMAPE_ZeroActual(t *testing.T) {
	got := accuracy.MAPE([]float64{0}, []float64{0})
	assert.Equal(t, 0.0, got)
}

func TestDirectional(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		want      float64
	}{
		{name: "same direction", actual: []float64{100, 110, 120}, predicted: []float64{90, 115, 120}, want: 1},
		{name: "opposite and flat", actual: []float64{100, 90, 90}, predicted: []float64{100, 110, 90}, want: 0},
		{name: "both flat", actual: []float64{5, 5}, predicted: []float64{7, 7}, want: 1},
		{name: "half", actual: []float64{1, 2, 1}, predicted: []float64{1, 2, 3}, want: 0.5},
		{name: "single period", actual: []float64{3}, predicted: []float64{9}, want: 1},
		{name: "empty", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accuracy.Directional(tt.actual, tt.predicted))
		})
	}
}

func TestEvaluate(t *testing.T) {
	m, err := generator.Generate("Resistor", "2025-09")
	require.NoError(t, err)

	got := accuracy.Evaluate(m)
	assert.Equal(t, "Resistor", got.Component)
	assert.Equal(t, "2025-09", got.Month)
	assert.Equal(t, "September 2025", got.MonthLabel)
	assert.Equal(t, 12, got.Periods)
	assert.InDelta(t, 0.3076223386157908, got.R2, 1e-9)
	assert.InDelta(t, 4.602229825727132, got.MAPEPercent, 1e-9)
	assert.InDelta(t, 800.0/11, got.DirectionalAccuracyPercent, 1e-9)
}

func TestEvaluate_Capacitor(t *testing.T) {
	m, err := generator.Generate("Capacitor", "2025-01")
	require.NoError(t, err)

	got := accuracy.Evaluate(m)
	assert.InDelta(t, 0.1761434938241221, got.R2, 1e-9)
	assert.InDelta(t, 5.1230339611983515, got.MAPEPercent, 1e-9)
	assert.InDelta(t, 700.0/11, got.DirectionalAccuracyPercent, 1e-9)
}
