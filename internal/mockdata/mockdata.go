// Package mockdata holds the fixed sample datasets the dashboard renders.
//
// Everything here is compile-time constant data standing in for a future
// telemetry source. Accessors return copies so callers cannot mutate the
// shared tables.
package mockdata

import (
	"fmt"
	"slices"

	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

const (
	AllFields = "All Fields"
	FieldA    = "Field A"
	FieldB    = "Field B"
	FieldC    = "Field C"
	FieldD    = "Field D"
)

// PrecisionFields are the instrumented fields on the precision page.
func PrecisionFields() []string {
	return []string{FieldA, FieldB, FieldC}
}

// CropFields are the choices on the crop monitoring field selector.
func CropFields() []string {
	return []string{AllFields, FieldA, FieldB, FieldC, FieldD}
}

// Series keys used by the moisture trend chart.
const (
	KeyFieldA = "fieldA"
	KeyFieldB = "fieldB"
	KeyFieldC = "fieldC"
)

// points zips labels with one value column per key.
func points(labels []string, cols map[string][]float64) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(labels))
	for i, l := range labels {
		vals := make(map[string]float64, len(cols))
		for k, col := range cols {
			if len(col) != len(labels) {
				panic(fmt.Sprintf("mockdata: column %s has %d values for %d labels", k, len(col), len(labels)))
			}
			vals[k] = col[i]
		}
		out[i] = models.TimeSeriesPoint{Label: l, Values: vals}
	}
	return out
}

func clonePoints(in []models.TimeSeriesPoint) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(in))
	for i, p := range in {
		vals := make(map[string]float64, len(p.Values))
		for k, v := range p.Values {
			vals[k] = v
		}
		out[i] = models.TimeSeriesPoint{Label: p.Label, Values: vals}
	}
	return out
}

var (
	moisture7d = points(
		[]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		map[string][]float64{
			KeyFieldA: {72, 68, 64, 70, 75, 71, 69},
			KeyFieldB: {65, 62, 60, 58, 63, 66, 64},
			KeyFieldC: {58, 55, 52, 48, 45, 50, 53},
		})
	moisture30d = points(
		[]string{"Jan 19", "Jan 24", "Jan 29", "Feb 3", "Feb 8", "Feb 13", "Feb 17"},
		map[string][]float64{
			KeyFieldA: {74, 71, 67, 70, 66, 72, 69},
			KeyFieldB: {68, 66, 63, 61, 60, 62, 64},
			KeyFieldC: {62, 60, 57, 55, 51, 48, 53},
		})
	moisture90d = points(
		[]string{"Nov 24", "Dec 8", "Dec 22", "Jan 5", "Jan 19", "Feb 2", "Feb 16"},
		map[string][]float64{
			KeyFieldA: {78, 76, 73, 75, 74, 70, 69},
			KeyFieldB: {72, 70, 69, 67, 68, 62, 64},
			KeyFieldC: {70, 67, 64, 60, 62, 55, 53},
		})
)

// MoistureTrend returns the per-field soil moisture series for a window.
func MoistureTrend(r models.TimeRange) []models.TimeSeriesPoint {
	switch r {
	case models.Range7d:
		return clonePoints(moisture7d)
	case models.Range30d:
		return clonePoints(moisture30d)
	case models.Range90d:
		return clonePoints(moisture90d)
	}
	panic(fmt.Sprintf("mockdata: unknown time range %q", r))
}

var moistureLevels = map[string]float64{
	AllFields: 61,
	FieldA:    69,
	FieldB:    64,
	FieldC:    53,
	FieldD:    58,
}

// MoistureLevel is the latest soil moisture percentage for a field.
func MoistureLevel(field string) (float64, bool) {
	v, ok := moistureLevels[field]
	return v, ok
}

// KeyHealth is the single series key of the crop health trend.
const KeyHealth = "health"

var (
	weeks  = []string{"W1", "W2", "W3", "W4", "W5", "W6", "W7", "W8"}
	months = []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}

	healthWeekly = map[string][]models.TimeSeriesPoint{
		AllFields: points(weeks, map[string][]float64{KeyHealth: {76, 78, 74, 80, 82, 79, 84, 84}}),
		FieldA:    points(weeks, map[string][]float64{KeyHealth: {82, 84, 83, 85, 86, 87, 88, 88}}),
		FieldB:    points(weeks, map[string][]float64{KeyHealth: {70, 68, 66, 69, 71, 67, 70, 72}}),
		FieldC:    points(weeks, map[string][]float64{KeyHealth: {74, 76, 73, 78, 80, 79, 83, 84}}),
		FieldD:    points(weeks, map[string][]float64{KeyHealth: {78, 80, 75, 82, 84, 81, 85, 86}}),
	}
	healthMonthly = map[string][]models.TimeSeriesPoint{
		AllFields: points(months, map[string][]float64{KeyHealth: {71, 73, 75, 78, 80, 84}}),
		FieldA:    points(months, map[string][]float64{KeyHealth: {79, 81, 83, 85, 86, 88}}),
		FieldB:    points(months, map[string][]float64{KeyHealth: {66, 65, 68, 67, 69, 72}}),
		FieldC:    points(months, map[string][]float64{KeyHealth: {70, 72, 74, 77, 80, 84}}),
		FieldD:    points(months, map[string][]float64{KeyHealth: {72, 74, 76, 79, 82, 86}}),
	}
)

// HealthTrend returns the crop health index series for a field and period.
func HealthTrend(field string, p models.TrendPeriod) ([]models.TimeSeriesPoint, bool) {
	var table map[string][]models.TimeSeriesPoint
	switch p {
	case models.PeriodWeekly:
		table = healthWeekly
	case models.PeriodMonthly:
		table = healthMonthly
	default:
		panic(fmt.Sprintf("mockdata: unknown trend period %q", p))
	}
	pts, ok := table[field]
	if !ok {
		return nil, false
	}
	return clonePoints(pts), true
}

// Advice is a canned AI recommendation.
type Advice struct {
	Text       string
	Confidence int
}

var (
	nutrients = map[string][]models.Nutrient{
		FieldA: {
			{Name: "Nitrogen (N)", Current: 84, Optimal: 90, Unit: "kg/ha"},
			{Name: "Phosphorus (P)", Current: 48, Optimal: 50, Unit: "kg/ha"},
			{Name: "Potassium (K)", Current: 58, Optimal: 60, Unit: "kg/ha"},
		},
		FieldB: {
			{Name: "Nitrogen (N)", Current: 101, Optimal: 90, Unit: "kg/ha"},
			{Name: "Phosphorus (P)", Current: 45, Optimal: 50, Unit: "kg/ha"},
			{Name: "Potassium (K)", Current: 62, Optimal: 60, Unit: "kg/ha"},
		},
		FieldC: {
			{Name: "Nitrogen (N)", Current: 78, Optimal: 90, Unit: "kg/ha"},
			{Name: "Phosphorus (P)", Current: 38, Optimal: 50, Unit: "kg/ha"},
			{Name: "Potassium (K)", Current: 55, Optimal: 60, Unit: "kg/ha"},
		},
	}
	fertilizerAdvice = map[string]Advice{
		FieldA: {Text: "Nutrient levels in Field A are within 10% of optimal. No change to the fertilizer plan is needed.", Confidence: 93},
		FieldB: {Text: "Reduce nitrogen usage by 12% in Field B. Current levels exceed crop requirements, leading to potential runoff.", Confidence: 88},
		FieldC: {Text: "Raise phosphorus by 24% in Field C. Levels are below the crop requirement for the flowering stage.", Confidence: 81},
	}
)

// Nutrients returns the soil nutrient readings for a precision field.
func Nutrients(field string) ([]models.Nutrient, bool) {
	n, ok := nutrients[field]
	return slices.Clone(n), ok
}

// FertilizerAdvice returns the fertilizer recommendation for a precision field.
func FertilizerAdvice(field string) (Advice, bool) {
	a, ok := fertilizerAdvice[field]
	return a, ok
}

// IrrigationAdvice is the irrigation recommendation for a field.
func IrrigationAdvice(field string) Advice {
	return Advice{
		Text:       fmt.Sprintf("Irrigate %s at 06:00 AM for optimal moisture levels. Rain probability for tomorrow is 78%% — consider reducing irrigation volume by 30%%.", field),
		Confidence: 92,
	}
}

var sensors = []models.Sensor{
	{ID: 1, Name: "Field A Sensor #1", BatteryPct: 92, Signal: models.SignalStrong, LastSync: "2 min ago", Status: models.StatusHealthy},
	{ID: 2, Name: "Field A Sensor #2", BatteryPct: 78, Signal: models.SignalStrong, LastSync: "5 min ago", Status: models.StatusHealthy},
	{ID: 3, Name: "Field B Sensor #1", BatteryPct: 45, Signal: models.SignalMedium, LastSync: "12 min ago", Status: models.StatusWarning},
	{ID: 4, Name: "Field B Sensor #2", BatteryPct: 15, Signal: models.SignalWeak, LastSync: "1 hr ago", Status: models.StatusWarning},
	{ID: 5, Name: "Field C Sensor #1", BatteryPct: 88, Signal: models.SignalStrong, LastSync: "3 min ago", Status: models.StatusHealthy},
	{ID: 6, Name: "Field C Sensor #2", BatteryPct: 0, Signal: models.SignalNone, LastSync: "3 days ago", Status: models.StatusOffline},
}

func Sensors() []models.Sensor { return slices.Clone(sensors) }

var precisionAlerts = []models.Alert{
	{ID: 1, Icon: icons.Droplets, Message: "Low moisture detected in Field C — below 50% threshold", TimeLabel: "12 min ago", Severity: models.SeverityError},
	{ID: 2, Icon: icons.CloudRain, Message: "Rain expected tomorrow — 78% probability, consider delaying irrigation", TimeLabel: "1 hr ago", Severity: models.SeverityInfo},
	{ID: 3, Icon: icons.FlaskConical, Message: "Fertilizer levels dropping in Field B — nitrogen at 65%", TimeLabel: "2 hr ago", Severity: models.SeverityWarning},
	{ID: 4, Icon: icons.AlertTriangle, Message: "Sensor #4 battery critically low — replace within 24 hours", TimeLabel: "3 hr ago", Severity: models.SeverityWarning},
	{ID: 5, Icon: icons.Activity, Message: "Soil pH anomaly detected in Field A — recommend manual testing", TimeLabel: "5 hr ago", Severity: models.SeverityError},
}

// PrecisionAlerts is the precision page AI alert feed.
func PrecisionAlerts() []models.Alert { return slices.Clone(precisionAlerts) }

var fieldAlerts = []models.Alert{
	{ID: 1, Icon: icons.Bug, Message: "Pest risk increasing in Field C — monitoring threshold breached", TimeLabel: "15 min ago", Severity: models.SeverityWarning},
	{ID: 2, Icon: icons.Droplets, Message: "Moisture imbalance detected in north sector of Field A", TimeLabel: "1 hr ago", Severity: models.SeverityInfo},
	{ID: 3, Icon: icons.Activity, Message: "Crop stress detected in Field B — leaf temperature elevated", TimeLabel: "2 hr ago", Severity: models.SeverityError},
	{ID: 4, Icon: icons.Leaf, Message: "NDVI values improving in Field C south — recovery underway", TimeLabel: "4 hr ago", Severity: models.SeverityInfo},
	{ID: 5, Icon: icons.AlertTriangle, Message: "Unusual growth pattern in Field A row 12 — manual inspection suggested", TimeLabel: "6 hr ago", Severity: models.SeverityWarning},
}

// FieldAlerts is the crop monitoring alert feed.
func FieldAlerts() []models.Alert { return slices.Clone(fieldAlerts) }

var weatherForecast = []models.WeatherDay{
	{Day: "Today", Icon: icons.Sun, Temp: "28°C", Rain: "10%"},
	{Day: "Tomorrow", Icon: icons.CloudRain, Temp: "24°C", Rain: "78%"},
	{Day: "Wed", Icon: icons.CloudSun, Temp: "26°C", Rain: "35%"},
}

func WeatherForecast() []models.WeatherDay { return slices.Clone(weatherForecast) }

var diseaseAlerts = []models.DiseaseAlert{
	{ID: 1, Disease: "Leaf Rust", Field: FieldB, Confidence: 87, Risk: models.RiskHigh, Emoji: "🍂",
		Description: "Possible Leaf Rust detected in northern section of Field B. Early treatment recommended."},
	{ID: 2, Disease: "Powdery Mildew", Field: FieldA, Confidence: 72, Risk: models.RiskMedium, Emoji: "🌿",
		Description: "Early signs of Powdery Mildew in Field A east corner. Monitor closely."},
	{ID: 3, Disease: "Aphid Infestation", Field: FieldC, Confidence: 64, Risk: models.RiskLow, Emoji: "🐛",
		Description: "Minor aphid activity detected in Field C. No immediate action needed."},
}

func DiseaseAlerts() []models.DiseaseAlert { return slices.Clone(diseaseAlerts) }

var droneCaptures = []models.DroneCapture{
	{ID: 1, Date: "Feb 17, 2026", Field: FieldA, Tag: models.TagHealthy},
	{ID: 2, Date: "Feb 16, 2026", Field: FieldB, Tag: models.TagStress},
	{ID: 3, Date: "Feb 15, 2026", Field: FieldC, Tag: models.TagHealthy},
	{ID: 4, Date: "Feb 14, 2026", Field: FieldA, Tag: models.TagDisease},
	{ID: 5, Date: "Feb 13, 2026", Field: FieldB, Tag: models.TagHealthy},
	{ID: 6, Date: "Feb 12, 2026", Field: FieldC, Tag: models.TagStress},
}

func DroneCaptures() []models.DroneCapture { return slices.Clone(droneCaptures) }

var fieldStats = []models.FieldStat{
	{Label: "Field A Health", Value: "88", Unit: "%", Trend: "+4%", Direction: models.TrendUp, Icon: icons.Sprout},
	{Label: "Field B Stress", Value: "32", Unit: "%", Trend: "+8%", Direction: models.TrendUp, Icon: icons.AlertTriangle, Inverted: true},
	{Label: "Pest Risk Index", Value: "18", Unit: "/100", Trend: "-3", Direction: models.TrendDown, Icon: icons.Bug, Inverted: true},
	{Label: "Growth Rate", Value: "2.4", Unit: "cm/day", Trend: "+0.3", Direction: models.TrendUp, Icon: icons.TrendingUp},
}

func FieldStats() []models.FieldStat { return slices.Clone(fieldStats) }
