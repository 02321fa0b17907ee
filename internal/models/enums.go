package models

// OverlayKind is a map colouring mode. Exactly one is active per map.
type OverlayKind string

const (
	OverlaySatellite   OverlayKind = "Satellite"
	OverlayNDVI        OverlayKind = "NDVI"
	OverlayMoisture    OverlayKind = "Moisture"
	OverlayTemperature OverlayKind = "Temperature"
)

func (k OverlayKind) String() string { return string(k) }

// AllOverlayKinds returns every overlay in toggle order.
func AllOverlayKinds() []OverlayKind {
	return []OverlayKind{OverlaySatellite, OverlayNDVI, OverlayMoisture, OverlayTemperature}
}

func ParseOverlayKind(s string) (OverlayKind, bool) {
	for _, k := range AllOverlayKinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// TimeRange is the precision page trend window.
type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

func AllTimeRanges() []TimeRange {
	return []TimeRange{Range7d, Range30d, Range90d}
}

// TrendPeriod is the crop page trend granularity.
type TrendPeriod string

const (
	PeriodWeekly  TrendPeriod = "Weekly"
	PeriodMonthly TrendPeriod = "Monthly"
)

func AllTrendPeriods() []TrendPeriod {
	return []TrendPeriod{PeriodWeekly, PeriodMonthly}
}
