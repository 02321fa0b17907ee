package widgets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaugeColour(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value float64
		want  string
	}{
		{100, Theme.Leaf},
		{61, Theme.Leaf},
		{60, Theme.Warning},
		{41, Theme.Warning},
		{40, Theme.Destructive},
		{0, Theme.Destructive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GaugeColour(tt.value), "value %v", tt.value)
		assert.Equal(t, tt.want, NewGauge(tt.value, "%").Colour, "gauge %v", tt.value)
	}
}

func TestGaugeArc(t *testing.T) {
	t.Parallel()
	c := 2 * math.Pi * 54

	tests := []struct {
		name   string
		value  float64
		offset float64
		label  string
	}{
		{"empty ring at zero", 0, c, "0"},
		{"full ring at 100", 100, 0, "100"},
		{"half ring", 50, c / 2, "50"},
		{"over range clamps arc", 140, 0, "140"},
		{"negative clamps arc", -10, c, "-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGauge(tt.value, "%")
			assert.InDelta(t, c, g.Circumference, 1e-9)
			assert.InDelta(t, tt.offset, g.Offset, 1e-9)
			assert.Equal(t, tt.label, g.Label)
		})
	}
}

func TestGaugeSweepDeclaresTransition(t *testing.T) {
	t.Parallel()
	g := NewGauge(69, "%")
	assert.Equal(t, g.Circumference, g.Sweep.From)
	assert.Equal(t, g.Offset, g.Sweep.To)
	assert.Equal(t, "animation: gauge-sweep 1s ease-out 0s both", g.Sweep.Animation("gauge-sweep"))
}
