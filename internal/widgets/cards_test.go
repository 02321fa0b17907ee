package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

func TestBatteryTier(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pct  int
		want BatteryLevel
	}{
		{100, BatteryFull},
		{61, BatteryFull},
		{60, BatteryMedium},
		{21, BatteryMedium},
		{20, BatteryLow},
		{0, BatteryLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BatteryTier(tt.pct), "pct %d", tt.pct)
	}
}

func TestSignalGlyph(t *testing.T) {
	t.Parallel()
	assert.Equal(t, icons.WifiOff, SignalGlyph(models.SignalNone))
	for _, l := range []models.SignalLevel{models.SignalWeak, models.SignalMedium, models.SignalStrong} {
		assert.Equal(t, icons.Wifi, SignalGlyph(l), string(l))
	}
	assert.Panics(t, func() { SignalGlyph("excellent") })
}

func TestSensorCardsKeepOrderAndStatus(t *testing.T) {
	t.Parallel()
	in := []models.Sensor{
		{ID: 9, BatteryPct: 95, Signal: models.SignalNone, Status: models.StatusOffline},
		{ID: 2, BatteryPct: 10, Signal: models.SignalStrong, Status: models.StatusHealthy},
	}
	cards := SensorCards(in)
	assert.Equal(t, 9, cards[0].ID)
	assert.Equal(t, 2, cards[1].ID)
	// status is reported, never derived from battery or signal
	assert.Equal(t, "Offline", cards[0].Badge.Label)
	assert.Equal(t, "Healthy", cards[1].Badge.Label)
	assert.Equal(t, BatteryFull, cards[0].Battery)
	assert.Equal(t, Theme.Destructive, cards[1].BatteryColour())
}

func TestSensorIconColours(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pct     int
		signal  models.SignalLevel
		battery string
		wifi    string
	}{
		{"healthy", 92, models.SignalStrong, Theme.Muted, Theme.Muted},
		{"medium tier stays muted", 45, models.SignalMedium, Theme.Muted, Theme.Muted},
		{"just above threshold", 21, models.SignalWeak, Theme.Muted, Theme.Warning},
		{"at threshold", 20, models.SignalWeak, Theme.Destructive, Theme.Warning},
		{"offline", 0, models.SignalNone, Theme.Destructive, Theme.Destructive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SensorCards([]models.Sensor{{BatteryPct: tt.pct, Signal: tt.signal, Status: models.StatusHealthy}})[0]
			assert.Equal(t, tt.battery, c.BatteryIconColour())
			assert.Equal(t, tt.wifi, c.SignalColour())
		})
	}
}

func TestSeverityStyles(t *testing.T) {
	t.Parallel()
	items := AlertItems([]models.Alert{
		{ID: 3, Severity: models.SeverityError},
		{ID: 1, Severity: models.SeverityInfo},
		{ID: 2, Severity: models.SeverityWarning},
	})
	assert.Equal(t, 3, items[0].ID)
	assert.Equal(t, Theme.Destructive, items[0].Style.Border)
	assert.Equal(t, Theme.Sky, items[1].Style.Border)
	assert.Equal(t, Theme.Warning, items[2].Style.Icon)
	assert.Panics(t, func() { SeverityStyle("fatal") })
}

func TestBadges(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Badge{Label: "High Risk", Tone: models.ToneDestructive}, RiskBadge(models.RiskHigh))
	assert.Equal(t, Badge{Label: "Low Risk", Tone: models.ToneLeaf}, RiskBadge(models.RiskLow))
	assert.Equal(t, Badge{Label: "Stress", Tone: models.ToneWarning}, CaptureTagBadge(models.TagStress))
	assert.Equal(t, models.ToneLeaf, InsightTone(models.InsightSuccess))
}

func TestStatCardsInvertedTrend(t *testing.T) {
	t.Parallel()
	cards := StatCards([]models.FieldStat{
		{Label: "Health", Direction: models.TrendUp},
		{Label: "Stress", Direction: models.TrendUp, Inverted: true},
		{Label: "Pest Risk", Direction: models.TrendDown, Inverted: true},
		{Label: "Yield", Direction: models.TrendDown},
	})
	assert.Equal(t, Theme.Leaf, cards[0].TrendColour)
	assert.Equal(t, Theme.Destructive, cards[1].TrendColour)
	assert.Equal(t, Theme.Leaf, cards[2].TrendColour)
	assert.Equal(t, icons.ArrowDownRight, cards[2].TrendIcon)
	assert.Equal(t, Theme.Destructive, cards[3].TrendColour)
}

func TestNutrientBarsFlagOverOptimal(t *testing.T) {
	t.Parallel()
	bars := NutrientBars([]models.Nutrient{
		{Name: "N", Current: 101, Optimal: 90},
		{Name: "P", Current: 45, Optimal: 50},
	})
	assert.True(t, bars[0].Over)
	assert.Equal(t, 100.0, bars[0].WidthPct)
	assert.False(t, bars[1].Over)
	assert.InDelta(t, 90, bars[1].WidthPct, 1e-9)
}

func TestToneColourCoversEveryTone(t *testing.T) {
	t.Parallel()
	for _, tone := range []models.Tone{models.ToneLeaf, models.ToneSky, models.TonePrimary, models.ToneWarning, models.ToneDestructive, models.ToneAccent} {
		assert.NotEmpty(t, Theme.ToneColour(tone))
	}
	assert.Panics(t, func() { Theme.ToneColour("neon") })
}
