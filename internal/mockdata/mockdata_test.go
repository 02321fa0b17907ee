package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/agrimind/internal/models"
)

func TestMoistureTrendCoversEveryRange(t *testing.T) {
	t.Parallel()
	for _, r := range models.AllTimeRanges() {
		pts := MoistureTrend(r)
		require.NotEmpty(t, pts, "range %s", r)
		for _, p := range pts {
			for _, key := range []string{KeyFieldA, KeyFieldB, KeyFieldC} {
				_, ok := p.Values[key]
				assert.True(t, ok, "range %s point %s missing %s", r, p.Label, key)
			}
		}
	}
}

func TestMoistureTrend7dKeepsWeekOrder(t *testing.T) {
	t.Parallel()
	pts := MoistureTrend(models.Range7d)
	var labels []string
	for _, p := range pts {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, labels)
	assert.Equal(t, 69.0, pts[6].Values[KeyFieldA])
}

func TestHealthTrendCoversEveryCropField(t *testing.T) {
	t.Parallel()
	for _, p := range models.AllTrendPeriods() {
		for _, f := range CropFields() {
			pts, ok := HealthTrend(f, p)
			require.True(t, ok, "%s/%s", f, p)
			assert.NotEmpty(t, pts)
		}
	}
	_, ok := HealthTrend("Field Z", models.PeriodWeekly)
	assert.False(t, ok)
}

func TestPrecisionFieldsHaveAllSlices(t *testing.T) {
	t.Parallel()
	for _, f := range PrecisionFields() {
		_, ok := MoistureLevel(f)
		assert.True(t, ok, "moisture %s", f)
		n, ok := Nutrients(f)
		assert.True(t, ok, "nutrients %s", f)
		assert.Len(t, n, 3)
		_, ok = FertilizerAdvice(f)
		assert.True(t, ok, "advice %s", f)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	s := Sensors()
	s[0].Name = "mutated"
	assert.Equal(t, "Field A Sensor #1", Sensors()[0].Name)

	pts := MoistureTrend(models.Range7d)
	pts[0].Values[KeyFieldA] = -1
	assert.Equal(t, 72.0, MoistureTrend(models.Range7d)[0].Values[KeyFieldA])
}

func TestPointsPanicsOnRaggedColumns(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		points([]string{"a", "b"}, map[string][]float64{"x": {1}})
	})
}
