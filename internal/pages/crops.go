package pages

import (
	"fmt"

	"github.com/lox/agrimind/internal/mockdata"
	"github.com/lox/agrimind/internal/models"
	"github.com/lox/agrimind/internal/selection"
	"github.com/lox/agrimind/internal/widgets"
)

// FieldMap is the map card: overlay toggles, field selector and the map
// itself with the selected field highlighted.
type FieldMap struct {
	Field    string
	Fields   []Option
	Overlay  models.OverlayKind
	Overlays []Option
	Map      widgets.MapView
}

// HealthTrend is the crop health index chart bound to Field and Period.
type HealthTrend struct {
	Field   string
	Period  models.TrendPeriod
	Periods []Option
	Latest  float64
	Change  float64
	Chart   ChartPanel
}

type FieldGauge struct {
	Field string
	Gauge widgets.Gauge
}

type Crop struct {
	Signals  selection.CropSignals
	Map      FieldMap
	Diseases []widgets.DiseaseCard
	Captures []widgets.CaptureTile
	Health   HealthTrend
	Gauge    FieldGauge
	Stats    []widgets.StatCard
	Alerts   AlertFeed
}

func BuildCrop(s selection.Crop) (Crop, error) {
	health, err := BuildHealthTrend(s)
	if err != nil {
		return Crop{}, err
	}
	gauge, err := BuildFieldGauge(s)
	if err != nil {
		return Crop{}, err
	}
	return Crop{
		Signals:  s.Signals(),
		Map:      BuildFieldMap(s),
		Diseases: widgets.DiseaseCards(mockdata.DiseaseAlerts()),
		Captures: widgets.CaptureTiles(mockdata.DroneCaptures()),
		Health:   health,
		Gauge:    gauge,
		Stats:    widgets.StatCards(mockdata.FieldStats()),
		Alerts:   alertFeed(mockdata.FieldAlerts()),
	}, nil
}

func BuildFieldMap(s selection.Crop) FieldMap {
	return FieldMap{
		Field:    s.Field.Current,
		Fields:   options(s.Field),
		Overlay:  s.Overlay.Current,
		Overlays: options(s.Overlay),
		Map:      widgets.RenderMap(s.Overlay.Current, s.Field.Current),
	}
}

func BuildHealthTrend(s selection.Crop) (HealthTrend, error) {
	pts, ok := mockdata.HealthTrend(s.Field.Current, s.Period.Current)
	if !ok {
		return HealthTrend{}, fmt.Errorf("no health trend for %s", s.Field.Current)
	}
	chart, err := chartPanel("Crop Health Trend", widgets.ChartSpec{
		Points: pts,
		Keys:   []widgets.SeriesKey{{Key: mockdata.KeyHealth, Name: "Health Index", Colour: widgets.Theme.Leaf}},
		Domain: &widgets.Domain{Min: 60, Max: 100},
		Style:  widgets.StyleLine,
	})
	if err != nil {
		return HealthTrend{}, err
	}
	first := pts[0].Values[mockdata.KeyHealth]
	last := pts[len(pts)-1].Values[mockdata.KeyHealth]
	return HealthTrend{
		Field:   s.Field.Current,
		Period:  s.Period.Current,
		Periods: options(s.Period),
		Latest:  last,
		Change:  last - first,
		Chart:   chart,
	}, nil
}

func BuildFieldGauge(s selection.Crop) (FieldGauge, error) {
	level, ok := mockdata.MoistureLevel(s.Field.Current)
	if !ok {
		return FieldGauge{}, fmt.Errorf("no moisture reading for %s", s.Field.Current)
	}
	return FieldGauge{Field: s.Field.Current, Gauge: widgets.NewGauge(level, "%")}, nil
}
