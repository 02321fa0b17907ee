package models

import "github.com/lox/agrimind/internal/icons"

type AccessTier string

const (
	TierFree    AccessTier = "free"
	TierPremium AccessTier = "premium"
)

type NavEntry struct {
	Label string
	Icon  icons.Icon
	Path  string
	Tier  AccessTier
}

type SignalLevel string

const (
	SignalNone   SignalLevel = "none"
	SignalWeak   SignalLevel = "weak"
	SignalMedium SignalLevel = "medium"
	SignalStrong SignalLevel = "strong"
)

type SensorStatus string

const (
	StatusHealthy SensorStatus = "healthy"
	StatusWarning SensorStatus = "warning"
	StatusOffline SensorStatus = "offline"
)

// Sensor is a soil probe. Status is reported by the fleet, not derived from
// battery or signal.
type Sensor struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	BatteryPct int          `json:"battery_pct"`
	Signal     SignalLevel  `json:"signal"`
	LastSync   string       `json:"last_sync"`
	Status     SensorStatus `json:"status"`
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alert is a feed entry. Feeds are newest first.
type Alert struct {
	ID        int        `json:"id"`
	Severity  Severity   `json:"severity"`
	Message   string     `json:"message"`
	TimeLabel string     `json:"time"`
	Icon      icons.Icon `json:"icon"`
}

// TimeSeriesPoint is one category on a chart axis with one value per series key.
type TimeSeriesPoint struct {
	Label  string
	Values map[string]float64
}

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

type FieldStat struct {
	Label     string
	Value     string
	Unit      string
	Trend     string
	Direction TrendDirection
	Icon      icons.Icon
	Inverted  bool // rising is bad (stress, pest risk)
}

type Nutrient struct {
	Name    string
	Current float64
	Optimal float64
	Unit    string
}

type WeatherDay struct {
	Day  string
	Icon icons.Icon
	Temp string
	Rain string
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type DiseaseAlert struct {
	ID          int
	Disease     string
	Field       string
	Confidence  int
	Risk        RiskLevel
	Emoji       string
	Description string
}

type CaptureTag string

const (
	TagHealthy CaptureTag = "Healthy"
	TagStress  CaptureTag = "Stress"
	TagDisease CaptureTag = "Disease"
)

type DroneCapture struct {
	ID    int
	Date  string
	Field string
	Tag   CaptureTag
}

type CropHealth struct {
	Name   string
	Health float64
}

type InsightKind string

const (
	InsightInfo    InsightKind = "info"
	InsightWarning InsightKind = "warning"
	InsightSuccess InsightKind = "success"
)

// Insight is an overview-page AI note; unlike Alert it has no timestamp.
type Insight struct {
	Icon icons.Icon
	Text string
	Kind InsightKind
}

type OverviewStat struct {
	Icon   icons.Icon
	Label  string
	Value  string
	Change string
	Tone   Tone
}

// Tone names a palette colour family used for accents.
type Tone string

const (
	ToneLeaf        Tone = "leaf"
	ToneSky         Tone = "sky"
	TonePrimary     Tone = "primary"
	ToneWarning     Tone = "warning"
	ToneDestructive Tone = "destructive"
	ToneAccent      Tone = "accent"
)
