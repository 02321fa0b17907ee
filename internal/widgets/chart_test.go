package widgets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/agrimind/internal/models"
)

func samplePoints() []models.TimeSeriesPoint {
	return []models.TimeSeriesPoint{
		{Label: "Wed", Values: map[string]float64{"a": 64.5, "b": 10}},
		{Label: "Mon", Values: map[string]float64{"a": 72, "b": 90}},
		{Label: "Tue", Values: map[string]float64{"a": 68, "b": 40}},
	}
}

func TestBuildPreservesOrderAndValues(t *testing.T) {
	t.Parallel()
	cfg, err := Build(ChartSpec{
		Points: samplePoints(),
		Keys:   []SeriesKey{{Key: "a", Name: "Field A"}, {Key: "b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Wed", "Mon", "Tue"}, cfg.Labels)
	require.Len(t, cfg.Series, 2)
	assert.Equal(t, []float64{64.5, 72, 68}, cfg.Series[0].Values)
	assert.Equal(t, []float64{10, 90, 40}, cfg.Series[1].Values)
	assert.Equal(t, "b", cfg.Series[1].Name)
	assert.Equal(t, StyleLine, cfg.Style)
}

func TestBuildSharedDomain(t *testing.T) {
	t.Parallel()
	cfg, err := Build(ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "a"}, {Key: "b"}}})
	require.NoError(t, err)
	assert.Equal(t, Domain{Min: 10, Max: 90}, cfg.Domain)

	cfg, err = Build(ChartSpec{
		Points: samplePoints(),
		Keys:   []SeriesKey{{Key: "a"}},
		Domain: &Domain{Min: 30, Max: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, Domain{Min: 30, Max: 100}, cfg.Domain)
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		spec ChartSpec
		want error
	}{
		{"no points", ChartSpec{Keys: []SeriesKey{{Key: "a"}}}, ErrNoPoints},
		{"no keys", ChartSpec{Points: samplePoints()}, ErrNoSeries},
		{"missing key", ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "c"}}}, ErrMissingValue},
		{"unknown style", ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "a"}}, Style: "pie"}, ErrChartStyle},
		{"inverted domain", ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "a"}}, Domain: &Domain{Min: 100, Max: 30}}, ErrDomain},
		{"empty domain", ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "a"}}, Domain: &Domain{Min: 50, Max: 50}}, ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.spec)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Build(ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "a"}, {Key: "b"}}, Style: StyleBar})
	assert.Error(t, err)
}

func TestRenderSVGTooltipsCarryExactValues(t *testing.T) {
	t.Parallel()
	for _, style := range []ChartStyle{StyleLine, StyleArea, StyleBar} {
		t.Run(string(style), func(t *testing.T) {
			cfg, err := Build(ChartSpec{
				Points: samplePoints(),
				Keys:   []SeriesKey{{Key: "a", Name: "Field A", Colour: Theme.Leaf}},
				Domain: &Domain{Min: 0, Max: 100},
				Style:  style,
			})
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, RenderSVG(cfg, &buf))
			out := buf.String()
			assert.Contains(t, out, "<svg")
			assert.Contains(t, out, "<title>Wed · Field A: 64.5</title>")
			assert.Contains(t, out, "<title>Mon · Field A: 72</title>")
			assert.True(t, bytes.HasSuffix(bytes.TrimSpace(buf.Bytes()), []byte("</svg>")))
		})
	}

	for _, style := range []ChartStyle{StyleLine, StyleArea, StyleBar} {
		t.Run("single point "+string(style), func(t *testing.T) {
			cfg, err := Build(ChartSpec{
				Points: samplePoints()[:1],
				Keys:   []SeriesKey{{Key: "a", Name: "Field A", Colour: Theme.Leaf}},
				Style:  style,
			})
			require.NoError(t, err)
			assert.Equal(t, []float64{64.5}, cfg.Series[0].Values)

			var buf bytes.Buffer
			require.NoError(t, RenderSVG(cfg, &buf))
			assert.Contains(t, buf.String(), "<title>Wed · Field A: 64.5</title>")
		})
	}
}

func TestRenderSVGDefaultsMissingColour(t *testing.T) {
	t.Parallel()
	for _, style := range []ChartStyle{StyleLine, StyleArea, StyleBar} {
		t.Run(string(style), func(t *testing.T) {
			cfg, err := Build(ChartSpec{Points: samplePoints(), Keys: []SeriesKey{{Key: "a"}}, Style: style})
			require.NoError(t, err)
			assert.Equal(t, Theme.Leaf, cfg.Series[0].Colour)

			var buf bytes.Buffer
			assert.NotPanics(t, func() {
				assert.NoError(t, RenderSVG(cfg, &buf))
			})
			assert.Contains(t, buf.String(), "<svg")
		})
	}
}
