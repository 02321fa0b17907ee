package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/selection"
	"github.com/lox/agrimind/internal/widgets"
)

func TestBuildOverview(t *testing.T) {
	t.Parallel()
	o, err := BuildOverview()
	require.NoError(t, err)

	assert.Len(t, o.Stats, 4)
	assert.Len(t, o.Insights, 3)
	assert.Len(t, o.Locked, 3)
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, o.Yield.Config.Labels)
	assert.True(t, o.Yield.Config.Series[1].Dashed)
	assert.Equal(t, widgets.StyleBar, o.CropHealth.Config.Style)
	assert.Equal(t, widgets.Domain{Min: 0, Max: 100}, o.CropHealth.Config.Domain)
	assert.Contains(t, string(o.Soil.SVG), "<svg")
}

func TestPrecisionFieldDrivesIrrigationAndGauge(t *testing.T) {
	t.Parallel()
	s := selection.DefaultPrecision()
	p, err := BuildPrecision(s)
	require.NoError(t, err)
	assert.Equal(t, 69.0, p.Irrigation.Gauge.Value)
	assert.Contains(t, p.Irrigation.Advice.Text, "Field A")

	require.NoError(t, s.Apply(selection.ControlField, mockdata.FieldC))
	irr, err := BuildIrrigation(s)
	require.NoError(t, err)
	assert.Equal(t, 53.0, irr.Gauge.Value)
	assert.Equal(t, widgets.Theme.Warning, irr.Gauge.Colour)
	assert.Contains(t, irr.Advice.Text, "Field C")

	// fertilizer selector is independent of the field selector
	fert, err := BuildFertilizer(s)
	require.NoError(t, err)
	assert.Equal(t, mockdata.FieldB, fert.Field)
	assert.True(t, fert.Bars[0].Over)
}

func TestPrecisionRangeDrivesTrend(t *testing.T) {
	t.Parallel()
	s := selection.DefaultPrecision()
	for _, r := range models.AllTimeRanges() {
		require.NoError(t, s.Apply(selection.ControlRange, string(r)))
		tr, err := BuildMoistureTrend(s)
		require.NoError(t, err)
		assert.Equal(t, r, tr.Range)
		assert.Equal(t, widgets.Domain{Min: 30, Max: 100}, tr.Chart.Config.Domain)
		assert.Len(t, tr.Chart.Config.Series, 3)

		selected := 0
		for _, o := range tr.Ranges {
			if o.Selected {
				selected++
				assert.Equal(t, string(r), o.Value)
			}
		}
		assert.Equal(t, 1, selected)
	}
}

func TestPrecisionSensorsAndAlertsKeepOrder(t *testing.T) {
	t.Parallel()
	p, err := BuildPrecision(selection.DefaultPrecision())
	require.NoError(t, err)
	require.Len(t, p.Sensors, 6)
	for i, c := range p.Sensors {
		assert.Equal(t, i+1, c.ID)
	}
	assert.Equal(t, 5, p.Alerts.Active)
	assert.Equal(t, 1, p.Alerts.Items[0].ID)
}

// Field A, NDVI, Weekly, then the overlay switches to Moisture: only the map
// changes.
func TestCropOverlaySwitchLeavesFieldBoundWidgets(t *testing.T) {
	t.Parallel()
	s := selection.DefaultCrop()
	require.NoError(t, s.Apply(selection.ControlField, mockdata.FieldA))

	before, err := BuildCrop(s)
	require.NoError(t, err)
	assert.Equal(t, models.OverlayNDVI, before.Map.Overlay)
	assert.Equal(t, "Low", before.Map.Map.Legend.Entries[0].Label)

	require.NoError(t, s.Apply(selection.ControlOverlay, string(models.OverlayMoisture)))
	after, err := BuildCrop(s)
	require.NoError(t, err)

	var labels []string
	for _, e := range after.Map.Map.Legend.Entries {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"Dry", "Moderate", "Wet"}, labels)
	assert.Equal(t, before.Health.Chart.Config, after.Health.Chart.Config)
	assert.Equal(t, before.Gauge, after.Gauge)
	assert.Equal(t, 69.0, after.Gauge.Gauge.Value)
	assert.Equal(t, mockdata.FieldA, after.Map.Field)
}

func TestCropFieldHighlightsMap(t *testing.T) {
	t.Parallel()
	s := selection.DefaultCrop()
	require.NoError(t, s.Apply(selection.ControlField, mockdata.FieldD))
	m := BuildFieldMap(s)
	for _, r := range m.Map.Regions {
		assert.Equal(t, r.Name == mockdata.FieldD, r.Active, r.Name)
	}
}

func TestCropHealthTrendFollowsPeriod(t *testing.T) {
	t.Parallel()
	s := selection.DefaultCrop()
	weekly, err := BuildHealthTrend(s)
	require.NoError(t, err)
	assert.Len(t, weekly.Chart.Config.Labels, 8)
	assert.Equal(t, 84.0, weekly.Latest)
	assert.Equal(t, 8.0, weekly.Change)
	assert.Equal(t, widgets.StyleLine, weekly.Chart.Config.Style)

	require.NoError(t, s.Apply(selection.ControlPeriod, string(models.PeriodMonthly)))
	monthly, err := BuildHealthTrend(s)
	require.NoError(t, err)
	assert.Len(t, monthly.Chart.Config.Labels, 6)
	assert.Equal(t, widgets.Domain{Min: 60, Max: 100}, monthly.Chart.Config.Domain)
}

func TestBuildCropCollections(t *testing.T) {
	t.Parallel()
	c, err := BuildCrop(selection.DefaultCrop())
	require.NoError(t, err)
	assert.Len(t, c.Diseases, 3)
	assert.Equal(t, "High Risk", c.Diseases[0].Badge.Label)
	assert.Len(t, c.Captures, 6)
	assert.Len(t, c.Stats, 4)
	assert.Equal(t, widgets.Theme.Destructive, c.Stats[1].TrendColour)
	assert.Equal(t, widgets.Theme.Leaf, c.Stats[2].TrendColour)
	assert.Equal(t, 61.0, c.Gauge.Gauge.Value)
}

func TestBuildPlaceholder(t *testing.T) {
	t.Parallel()
	for _, path := range []string{"/dashboard/machinery", "/dashboard/forecast", "/dashboard/ai", "/dashboard/settings"} {
		p, ok := BuildPlaceholder(path)
		assert.True(t, ok, path)
		assert.NotEmpty(t, p.Title)
	}
	_, ok := BuildPlaceholder("/dashboard/unknown")
	assert.False(t, ok)
}
